// Package model defines the relational entities for box-score data.
//
// Team, Player, and Game carry externally supplied integer ids; PlayerStat
// and Shot ids are assigned by the store. Rows are only ever created by the
// ingestion pipeline and removed by cascading deletes from an ancestor.
package model

import "time"

// Team is a franchise. Name is capped at 45 characters by the schema.
type Team struct {
	ID   int
	Name string
}

// Player is a person who appears in box scores.
type Player struct {
	ID   int
	Name string
}

// Game is one matchup between two teams. Both team references must resolve;
// deleting a team cascades to its games.
type Game struct {
	ID         int
	Date       time.Time
	AwayTeamID int
	HomeTeamID int
}

// PlayerStat is the aggregation root for one player's performance in one
// game: a starter flag plus sixteen non-negative counting statistics. There
// is exactly one PlayerStat per (player, game) pair in well-formed input.
type PlayerStat struct {
	ID       int
	Date     time.Time
	PlayerID int
	GameID   int
	TeamID   int

	IsStarter              bool
	Minutes                int
	Points                 int
	Assists                int
	OffensiveRebounds      int
	DefensiveRebounds      int
	Steals                 int
	Blocks                 int
	Turnovers              int
	OffensiveFouls         int
	DefensiveFouls         int
	FreeThrowsMade         int
	FreeThrowsAttempted    int
	TwoPointersMade        int
	TwoPointersAttempted   int
	ThreePointersMade      int
	ThreePointersAttempted int
}

// StatFields returns the wire-facing fields of the stat line keyed by their
// snake_case column names. The internal id, the date, and the foreign keys
// are excluded; the date is attached separately from the parent game.
func (ps PlayerStat) StatFields() map[string]any {
	return map[string]any{
		"is_starter":               ps.IsStarter,
		"minutes":                  ps.Minutes,
		"points":                   ps.Points,
		"assists":                  ps.Assists,
		"offensive_rebounds":       ps.OffensiveRebounds,
		"defensive_rebounds":       ps.DefensiveRebounds,
		"steals":                   ps.Steals,
		"blocks":                   ps.Blocks,
		"turnovers":                ps.Turnovers,
		"offensive_fouls":          ps.OffensiveFouls,
		"defensive_fouls":          ps.DefensiveFouls,
		"free_throws_made":         ps.FreeThrowsMade,
		"free_throws_attempted":    ps.FreeThrowsAttempted,
		"two_pointers_made":        ps.TwoPointersMade,
		"two_pointers_attempted":   ps.TwoPointersAttempted,
		"three_pointers_made":      ps.ThreePointersMade,
		"three_pointers_attempted": ps.ThreePointersAttempted,
	}
}

// Shot is a single shot attempt, owned by exactly one PlayerStat. Locations
// are fixed-point court coordinates with one decimal place.
type Shot struct {
	ID           int
	IsMake       bool
	LocationX    float64
	LocationY    float64
	PlayerStatID int
}

// Fields returns the wire-facing fields of the shot keyed by their snake_case
// column names, excluding the id and the back-reference.
func (s Shot) Fields() map[string]any {
	return map[string]any{
		"is_make":    s.IsMake,
		"location_x": s.LocationX,
		"location_y": s.LocationY,
	}
}
