// Command ingest is the Boxscore data ingestion CLI.
//
// Usage:
//
//	boxscore-ingest migrate
//	boxscore-ingest load all --dir raw_data
//	boxscore-ingest load teams --file raw_data/teams.json
//	boxscore-ingest load players --file raw_data/players.json
//	boxscore-ingest load games --file raw_data/games.json
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/courtside/boxscore-data/internal/config"
	"github.com/courtside/boxscore-data/internal/db"
	"github.com/courtside/boxscore-data/internal/load"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "boxscore-ingest",
		Short: "Boxscore data ingestion CLI",
	}

	root.AddCommand(migrateCmd())
	root.AddCommand(loadCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// migrate command
// --------------------------------------------------------------------------

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the box-score schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := db.Migrate(ctx, cfg); err != nil {
				return err
			}
			logger.Info("Schema applied")
			return nil
		},
	}
}

// --------------------------------------------------------------------------
// load command
// --------------------------------------------------------------------------

func loadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load box-score JSON exports into the database",
	}
	cmd.AddCommand(loadAllCmd())
	cmd.AddCommand(loadPhaseCmd("teams", "Load teams.json",
		func(ctx context.Context, pool *db.Pool, path string) load.Result {
			return load.LoadTeams(ctx, pool.Pool, path, logger)
		}))
	cmd.AddCommand(loadPhaseCmd("players", "Load players.json",
		func(ctx context.Context, pool *db.Pool, path string) load.Result {
			return load.LoadPlayers(ctx, pool.Pool, path, logger)
		}))
	cmd.AddCommand(loadPhaseCmd("games", "Load games.json (stats and shots included)",
		func(ctx context.Context, pool *db.Pool, path string) load.Result {
			return load.LoadGames(ctx, pool.Pool, path, logger)
		}))
	return cmd
}

func loadAllCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Load teams, players, and games from a data directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPool(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				if dir == "" {
					dir = cfg.DataDir
				}
				start := time.Now()
				result := load.LoadAll(ctx, pool.Pool, load.DefaultFiles(dir), logger)
				logger.Info("Load finished",
					"duration", time.Since(start).Round(time.Millisecond),
					"summary", result.Summary())
				reportErrors(result)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Data directory (defaults to DATA_DIR)")
	return cmd
}

func loadPhaseCmd(name, short string, run func(ctx context.Context, pool *db.Pool, path string) load.Result) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPool(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				if file == "" {
					files := load.DefaultFiles(cfg.DataDir)
					switch name {
					case "teams":
						file = files.Teams
					case "players":
						file = files.Players
					case "games":
						file = files.Games
					}
				}
				start := time.Now()
				result := run(ctx, pool, file)
				logger.Info("Load finished",
					"duration", time.Since(start).Round(time.Millisecond),
					"summary", result.Summary())
				reportErrors(result)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", fmt.Sprintf("Path to %s.json (defaults to DATA_DIR/%s.json)", name, name))
	return cmd
}

// reportErrors logs every skipped record's reason. Skips never fail the run.
func reportErrors(result load.Result) {
	for _, e := range result.Errors {
		logger.Error("load error", "error", e)
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runWithPool handles config loading, DB connection, and context cancellation.
func runWithPool(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}
