// Package summary assembles a player's career game log — one wire record per
// game, shot chart included — from stored rows.
package summary

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtside/boxscore-data/internal/keycase"
	"github.com/courtside/boxscore-data/internal/model"
)

const dateLayout = "2006-01-02"

// ErrPlayerNotFound is returned when no player row matches the requested id.
var ErrPlayerNotFound = errors.New("player not found")

// Payload is the wire response for a player summary. Game records are flat
// camelCase maps: the stat fields, a date, and a shots array.
type Payload struct {
	Name  string           `json:"name"`
	Games []map[string]any `json:"games"`
}

// Service reads summaries through the shared pool's prepared statements.
type Service struct {
	pool *pgxpool.Pool
}

// New creates a summary Service.
func New(pool *pgxpool.Pool) *Service {
	return &Service{pool: pool}
}

// PlayerSummary returns the player's name and per-game records ordered
// ascending by game date.
func (s *Service) PlayerSummary(ctx context.Context, playerID int) (*Payload, error) {
	var name string
	err := s.pool.QueryRow(ctx, "player_by_id", playerID).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrPlayerNotFound, playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("look up player %d: %w", playerID, err)
	}

	stats, err := s.playerStats(ctx, playerID)
	if err != nil {
		return nil, err
	}

	lines := make([]gameLine, 0, len(stats))
	for _, stat := range stats {
		var date time.Time
		if err := s.pool.QueryRow(ctx, "game_date_by_id", stat.GameID).Scan(&date); err != nil {
			return nil, fmt.Errorf("game %d date: %w", stat.GameID, err)
		}
		shots, err := s.shots(ctx, stat.ID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, gameLine{date: date, stat: stat, shots: shots})
	}

	return &Payload{Name: name, Games: buildGames(lines)}, nil
}

// gameLine pairs one stat line with its game date and shot chart before
// reshaping into wire form.
type gameLine struct {
	date  time.Time
	stat  model.PlayerStat
	shots []model.Shot
}

// buildGames reshapes stat lines into camelCase wire records ordered
// ascending by game date. The sort is stable, so games on the same date keep
// their fetch order.
func buildGames(lines []gameLine) []map[string]any {
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].date.Before(lines[j].date)
	})

	games := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		rec := keycase.MapToCamel(line.stat.StatFields())
		rec["date"] = line.date.Format(dateLayout)

		shots := make([]map[string]any, 0, len(line.shots))
		for _, shot := range line.shots {
			shots = append(shots, keycase.MapToCamel(shot.Fields()))
		}
		rec["shots"] = shots

		games = append(games, rec)
	}
	return games
}

// playerStats returns every stat line for the player in insertion order.
func (s *Service) playerStats(ctx context.Context, playerID int) ([]model.PlayerStat, error) {
	rows, err := s.pool.Query(ctx, "player_stats_by_player", playerID)
	if err != nil {
		return nil, fmt.Errorf("player %d stats: %w", playerID, err)
	}
	defer rows.Close()

	var stats []model.PlayerStat
	for rows.Next() {
		var st model.PlayerStat
		if err := rows.Scan(
			&st.ID, &st.GameID, &st.IsStarter,
			&st.Minutes, &st.Points, &st.Assists,
			&st.OffensiveRebounds, &st.DefensiveRebounds,
			&st.Steals, &st.Blocks, &st.Turnovers,
			&st.OffensiveFouls, &st.DefensiveFouls,
			&st.FreeThrowsMade, &st.FreeThrowsAttempted,
			&st.TwoPointersMade, &st.TwoPointersAttempted,
			&st.ThreePointersMade, &st.ThreePointersAttempted,
		); err != nil {
			return nil, fmt.Errorf("scan stat line: %w", err)
		}
		st.PlayerID = playerID
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// shots returns the shot chart for one stat line.
func (s *Service) shots(ctx context.Context, playerStatID int) ([]model.Shot, error) {
	rows, err := s.pool.Query(ctx, "shots_by_player_stat", playerStatID)
	if err != nil {
		return nil, fmt.Errorf("stat %d shots: %w", playerStatID, err)
	}
	defer rows.Close()

	var shots []model.Shot
	for rows.Next() {
		var sh model.Shot
		if err := rows.Scan(&sh.IsMake, &sh.LocationX, &sh.LocationY); err != nil {
			return nil, fmt.Errorf("scan shot: %w", err)
		}
		sh.PlayerStatID = playerStatID
		shots = append(shots, sh)
	}
	return shots, rows.Err()
}
