// Package seed writes the static league and venue records into Firestore.
package seed

import "fmt"

// Result tracks counts from a seeding operation.
type Result struct {
	LeaguesWritten int
	VenuesWritten  int
	Commits        int
}

// Add merges another Result into this one.
func (r *Result) Add(other Result) {
	r.LeaguesWritten += other.LeaguesWritten
	r.VenuesWritten += other.VenuesWritten
	r.Commits += other.Commits
}

// Summary returns a human-readable summary of the seed operation.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"leagues=%d venues=%d commits=%d",
		r.LeaguesWritten, r.VenuesWritten, r.Commits,
	)
}
