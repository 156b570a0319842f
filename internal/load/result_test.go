package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultSkip(t *testing.T) {
	var r Result

	r.Skip("team %d: duplicate key", 1)
	r.Skip("game %d: parse game date %q", 100, "bogus")

	assert.Equal(t, 2, r.Skipped)
	assert.Equal(t, []string{
		`team 1: duplicate key`,
		`game 100: parse game date "bogus"`,
	}, r.Errors)
}

func TestResultAdd(t *testing.T) {
	a := Result{TeamsInserted: 2, Skipped: 1, Errors: []string{"x"}}
	b := Result{PlayersInserted: 3, GamesInserted: 1, StatsInserted: 4, ShotsInserted: 9}

	a.Add(b)

	assert.Equal(t, 2, a.TeamsInserted)
	assert.Equal(t, 3, a.PlayersInserted)
	assert.Equal(t, 1, a.GamesInserted)
	assert.Equal(t, 4, a.StatsInserted)
	assert.Equal(t, 9, a.ShotsInserted)
	assert.Equal(t, 1, a.Skipped)
	assert.Len(t, a.Errors, 1)
}

func TestResultSummary(t *testing.T) {
	r := Result{TeamsInserted: 2, PlayersInserted: 1, GamesInserted: 1, StatsInserted: 1, ShotsInserted: 1}
	r.AddErrorf("games: boom")

	assert.Equal(t, "teams=2 players=1 games=1 stats=1 shots=1 skipped=0 errors=1", r.Summary())
}
