package load

import "fmt"

// Result tracks inserted and skipped record counts, and the reason for every
// skip, across a load run. Skips never abort the run; they are reported so an
// operator can see what a batch left behind.
type Result struct {
	TeamsInserted   int
	PlayersInserted int
	GamesInserted   int
	StatsInserted   int
	ShotsInserted   int
	Skipped         int
	Errors          []string
}

// Add merges another Result into this one.
func (r *Result) Add(other Result) {
	r.TeamsInserted += other.TeamsInserted
	r.PlayersInserted += other.PlayersInserted
	r.GamesInserted += other.GamesInserted
	r.StatsInserted += other.StatsInserted
	r.ShotsInserted += other.ShotsInserted
	r.Skipped += other.Skipped
	r.Errors = append(r.Errors, other.Errors...)
}

// Skip records one skipped record with a formatted reason.
func (r *Result) Skip(format string, args ...any) {
	r.Skipped++
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// AddErrorf records an error that is not tied to a single record, such as an
// unreadable input file.
func (r *Result) AddErrorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the load run.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"teams=%d players=%d games=%d stats=%d shots=%d skipped=%d errors=%d",
		r.TeamsInserted, r.PlayersInserted, r.GamesInserted,
		r.StatsInserted, r.ShotsInserted, r.Skipped, len(r.Errors),
	)
}
