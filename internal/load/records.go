package load

import (
	"fmt"
	"time"

	"github.com/courtside/boxscore-data/internal/model"
)

const dateLayout = "2006-01-02"

// TeamRecord is one entry of teams.json.
type TeamRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PlayerRecord is one entry of players.json.
type PlayerRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GameRecord is one entry of games.json: the game itself plus both sides'
// nested stat lines.
type GameRecord struct {
	ID       int      `json:"id"`
	Date     string   `json:"date"`
	AwayTeam TeamSide `json:"awayTeam"`
	HomeTeam TeamSide `json:"homeTeam"`
}

// TeamSide is one team's half of a game record.
type TeamSide struct {
	ID      int                `json:"id"`
	Players []PlayerStatRecord `json:"players"`
}

// PlayerStatRecord is a nested per-player stat line in camelCase wire form.
// The id field references the player. Counting fields absent from the input
// decode to their zero defaults.
type PlayerStatRecord struct {
	PlayerID  int  `json:"id"`
	IsStarter bool `json:"isStarter"`

	Minutes                int `json:"minutes"`
	Points                 int `json:"points"`
	Assists                int `json:"assists"`
	OffensiveRebounds      int `json:"offensiveRebounds"`
	DefensiveRebounds      int `json:"defensiveRebounds"`
	Steals                 int `json:"steals"`
	Blocks                 int `json:"blocks"`
	Turnovers              int `json:"turnovers"`
	OffensiveFouls         int `json:"offensiveFouls"`
	DefensiveFouls         int `json:"defensiveFouls"`
	FreeThrowsMade         int `json:"freeThrowsMade"`
	FreeThrowsAttempted    int `json:"freeThrowsAttempted"`
	TwoPointersMade        int `json:"twoPointersMade"`
	TwoPointersAttempted   int `json:"twoPointersAttempted"`
	ThreePointersMade      int `json:"threePointersMade"`
	ThreePointersAttempted int `json:"threePointersAttempted"`

	Shots []ShotRecord `json:"shots"`
}

// ShotRecord is a nested shot entry in camelCase wire form.
type ShotRecord struct {
	IsMake    bool    `json:"isMake"`
	LocationX float64 `json:"locationX"`
	LocationY float64 `json:"locationY"`
}

// GameDate parses the record's ISO date. A missing date falls back to the
// ingestion day.
func (g GameRecord) GameDate(today time.Time) (time.Time, error) {
	if g.Date == "" {
		return today.Truncate(24 * time.Hour), nil
	}
	d, err := time.Parse(dateLayout, g.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse game date %q: %w", g.Date, err)
	}
	return d, nil
}

// Stat converts the wire record into a PlayerStat row bound to its game,
// team, and date. The store assigns the row id.
func (r PlayerStatRecord) Stat(gameID, teamID int, date time.Time) model.PlayerStat {
	return model.PlayerStat{
		Date:     date,
		PlayerID: r.PlayerID,
		GameID:   gameID,
		TeamID:   teamID,

		IsStarter:              r.IsStarter,
		Minutes:                r.Minutes,
		Points:                 r.Points,
		Assists:                r.Assists,
		OffensiveRebounds:      r.OffensiveRebounds,
		DefensiveRebounds:      r.DefensiveRebounds,
		Steals:                 r.Steals,
		Blocks:                 r.Blocks,
		Turnovers:              r.Turnovers,
		OffensiveFouls:         r.OffensiveFouls,
		DefensiveFouls:         r.DefensiveFouls,
		FreeThrowsMade:         r.FreeThrowsMade,
		FreeThrowsAttempted:    r.FreeThrowsAttempted,
		TwoPointersMade:        r.TwoPointersMade,
		TwoPointersAttempted:   r.TwoPointersAttempted,
		ThreePointersMade:      r.ThreePointersMade,
		ThreePointersAttempted: r.ThreePointersAttempted,
	}
}

// Shot converts the wire record into a Shot row owned by a stat line.
func (r ShotRecord) Shot(playerStatID int) model.Shot {
	return model.Shot{
		IsMake:       r.IsMake,
		LocationX:    r.LocationX,
		LocationY:    r.LocationY,
		PlayerStatID: playerStatID,
	}
}
