// Package load reads box-score JSON exports and writes them to Postgres.
//
// A run has three phases — teams, players, games — each reading one file.
// Phases are per-record isolated: a record that fails to decode or insert is
// counted, its reason recorded, and the run continues. Each game record is
// written inside a single transaction (the game row, both sides' stat lines,
// and their shots), so a failed game leaves no partial rows behind and a
// rerun of the same file skips the whole game on its primary-key conflict.
package load

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtside/boxscore-data/internal/config"
)

// Files names the three input documents of a run.
type Files struct {
	Teams   string
	Players string
	Games   string
}

// DefaultFiles returns the conventional file names inside a data directory.
func DefaultFiles(dir string) Files {
	return Files{
		Teams:   filepath.Join(dir, "teams.json"),
		Players: filepath.Join(dir, "players.json"),
		Games:   filepath.Join(dir, "games.json"),
	}
}

// LoadAll runs all three phases in dependency order: teams and players first,
// then games, whose rows reference both.
func LoadAll(ctx context.Context, pool *pgxpool.Pool, files Files, logger *slog.Logger) Result {
	var result Result
	result.Add(LoadTeams(ctx, pool, files.Teams, logger))
	result.Add(LoadPlayers(ctx, pool, files.Players, logger))
	result.Add(LoadGames(ctx, pool, files.Games, logger))
	logger.Info("Load complete", "summary", result.Summary())
	return result
}

// LoadTeams inserts every record of teams.json. Duplicates are skipped, so a
// rerun against an already-loaded store is a no-op.
func LoadTeams(ctx context.Context, pool *pgxpool.Pool, path string, logger *slog.Logger) Result {
	var result Result

	var records []TeamRecord
	if err := decodeFile(path, &records); err != nil {
		result.AddErrorf("teams: %v", err)
		return result
	}

	logger.Info("Loading teams...", "count", len(records))
	for _, rec := range records {
		_, err := pool.Exec(ctx,
			"INSERT INTO "+config.TeamTable+" (id, name) VALUES ($1, $2)",
			rec.ID, rec.Name)
		if err != nil {
			result.Skip("team %d: %s", rec.ID, describe(err))
			continue
		}
		result.TeamsInserted++
	}
	logger.Info("Teams done", "inserted", result.TeamsInserted, "skipped", result.Skipped)
	return result
}

// LoadPlayers inserts every record of players.json with the same semantics as
// LoadTeams.
func LoadPlayers(ctx context.Context, pool *pgxpool.Pool, path string, logger *slog.Logger) Result {
	var result Result

	var records []PlayerRecord
	if err := decodeFile(path, &records); err != nil {
		result.AddErrorf("players: %v", err)
		return result
	}

	logger.Info("Loading players...", "count", len(records))
	for _, rec := range records {
		_, err := pool.Exec(ctx,
			"INSERT INTO "+config.PlayerTable+" (id, name) VALUES ($1, $2)",
			rec.ID, rec.Name)
		if err != nil {
			result.Skip("player %d: %s", rec.ID, describe(err))
			continue
		}
		result.PlayersInserted++
	}
	logger.Info("Players done", "inserted", result.PlayersInserted, "skipped", result.Skipped)
	return result
}

// LoadGames inserts every record of games.json. Each game is one transaction;
// any failure inside it (bad date, unknown team, duplicate key) rolls the
// whole record back and the run moves on to the next game.
func LoadGames(ctx context.Context, pool *pgxpool.Pool, path string, logger *slog.Logger) Result {
	var result Result

	var records []GameRecord
	if err := decodeFile(path, &records); err != nil {
		result.AddErrorf("games: %v", err)
		return result
	}

	logger.Info("Loading games...", "count", len(records))
	for _, rec := range records {
		stats, shots, err := insertGame(ctx, pool, rec)
		if err != nil {
			result.Skip("game %d: %s", rec.ID, describe(err))
			continue
		}
		result.GamesInserted++
		result.StatsInserted += stats
		result.ShotsInserted += shots
	}
	logger.Info("Games done",
		"inserted", result.GamesInserted,
		"stats", result.StatsInserted,
		"shots", result.ShotsInserted,
		"skipped", result.Skipped)
	return result
}

// insertGame writes one game record atomically and reports how many stat
// lines and shots it created.
func insertGame(ctx context.Context, pool *pgxpool.Pool, rec GameRecord) (stats, shots int, err error) {
	date, err := rec.GameDate(time.Now().UTC())
	if err != nil {
		return 0, 0, err
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		"INSERT INTO "+config.GameTable+" (id, date, away_team_id, home_team_id) VALUES ($1, $2, $3, $4)",
		rec.ID, date, rec.AwayTeam.ID, rec.HomeTeam.ID); err != nil {
		return 0, 0, err
	}

	for _, side := range []TeamSide{rec.AwayTeam, rec.HomeTeam} {
		for _, ps := range side.Players {
			stat := ps.Stat(rec.ID, side.ID, date)

			var statID int
			if err := tx.QueryRow(ctx, insertStatSQL,
				stat.Date, stat.PlayerID, stat.GameID, stat.TeamID, stat.IsStarter,
				stat.Minutes, stat.Points, stat.Assists,
				stat.OffensiveRebounds, stat.DefensiveRebounds,
				stat.Steals, stat.Blocks, stat.Turnovers,
				stat.OffensiveFouls, stat.DefensiveFouls,
				stat.FreeThrowsMade, stat.FreeThrowsAttempted,
				stat.TwoPointersMade, stat.TwoPointersAttempted,
				stat.ThreePointersMade, stat.ThreePointersAttempted,
			).Scan(&statID); err != nil {
				return 0, 0, fmt.Errorf("player %d: %w", ps.PlayerID, err)
			}
			stats++

			for _, sr := range ps.Shots {
				shot := sr.Shot(statID)
				if _, err := tx.Exec(ctx,
					"INSERT INTO "+config.ShotTable+" (is_make, location_x, location_y, player_stat_id) VALUES ($1, $2, $3, $4)",
					shot.IsMake, shot.LocationX, shot.LocationY, shot.PlayerStatID); err != nil {
					return 0, 0, fmt.Errorf("player %d shot: %w", ps.PlayerID, err)
				}
				shots++
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, 0, fmt.Errorf("commit: %w", err)
	}
	return stats, shots, nil
}

const insertStatSQL = `INSERT INTO ` + config.PlayerStatTable + ` (
		date, player_id, game_id, team_id, is_starter,
		minutes, points, assists, offensive_rebounds, defensive_rebounds,
		steals, blocks, turnovers, offensive_fouls, defensive_fouls,
		free_throws_made, free_throws_attempted,
		two_pointers_made, two_pointers_attempted,
		three_pointers_made, three_pointers_attempted
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
	RETURNING id`

// decodeFile reads and unmarshals one UTF-8 JSON document.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// describe gives integrity violations a readable label in the run report;
// everything else passes through as-is.
func describe(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return "duplicate key (already loaded)"
		case "23503": // foreign_key_violation
			return "missing referenced row: " + pgErr.Detail
		}
	}
	return err.Error()
}
