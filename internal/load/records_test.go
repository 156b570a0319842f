package load

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gamesJSON = `[{
	"id": 100,
	"date": "2024-01-01",
	"awayTeam": {"id": 1, "players": [
		{"id": 10, "minutes": 30, "points": 20, "isStarter": true,
		 "shots": [{"isMake": true, "locationX": 5.0, "locationY": 3.0}]}
	]},
	"homeTeam": {"id": 2, "players": []}
}]`

func TestGameRecordDecode(t *testing.T) {
	var records []GameRecord
	require.NoError(t, json.Unmarshal([]byte(gamesJSON), &records))
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, 100, rec.ID)
	assert.Equal(t, "2024-01-01", rec.Date)
	assert.Equal(t, 1, rec.AwayTeam.ID)
	assert.Equal(t, 2, rec.HomeTeam.ID)
	assert.Empty(t, rec.HomeTeam.Players)

	require.Len(t, rec.AwayTeam.Players, 1)
	ps := rec.AwayTeam.Players[0]
	assert.Equal(t, 10, ps.PlayerID)
	assert.True(t, ps.IsStarter)
	assert.Equal(t, 30, ps.Minutes)
	assert.Equal(t, 20, ps.Points)

	// Counting fields absent from the input take their zero default.
	assert.Zero(t, ps.Assists)
	assert.Zero(t, ps.ThreePointersAttempted)

	require.Len(t, ps.Shots, 1)
	assert.Equal(t, ShotRecord{IsMake: true, LocationX: 5.0, LocationY: 3.0}, ps.Shots[0])
}

func TestGameDate(t *testing.T) {
	today := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

	t.Run("iso date", func(t *testing.T) {
		d, err := GameRecord{Date: "2024-01-01"}.GameDate(today)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("absent date falls back to ingestion day", func(t *testing.T) {
		d, err := GameRecord{}.GameDate(today)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := GameRecord{Date: "01/02/2024"}.GameDate(today)
		assert.Error(t, err)
	})
}

func TestPlayerStatRecordStat(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := PlayerStatRecord{PlayerID: 10, IsStarter: true, Minutes: 30, Points: 20}

	stat := rec.Stat(100, 1, date)

	assert.Equal(t, 10, stat.PlayerID)
	assert.Equal(t, 100, stat.GameID)
	assert.Equal(t, 1, stat.TeamID)
	assert.Equal(t, date, stat.Date)
	assert.True(t, stat.IsStarter)
	assert.Equal(t, 30, stat.Minutes)
	assert.Equal(t, 20, stat.Points)
	assert.Zero(t, stat.Turnovers)
	assert.Zero(t, stat.ID, "store assigns the id")
}

func TestShotRecordShot(t *testing.T) {
	shot := ShotRecord{IsMake: true, LocationX: -12.5, LocationY: 3.0}.Shot(7)

	assert.Equal(t, 7, shot.PlayerStatID)
	assert.True(t, shot.IsMake)
	assert.Equal(t, -12.5, shot.LocationX)
	assert.Equal(t, 3.0, shot.LocationY)
	assert.Zero(t, shot.ID, "store assigns the id")
}

func TestDecodeFileErrors(t *testing.T) {
	var v []TeamRecord

	err := decodeFile("testdata/does-not-exist.json", &v)
	assert.Error(t, err)
}
