package psa

import "time"

// Feedback score convention used by the provider.
const (
	ScoreSatisfied    = 1
	ScoreDissatisfied = 2
)

// Feedback is a ticket satisfaction response cached locally. Every stored
// row references a ticket present in the local store at insert time; rows
// whose ticket is missing are dropped before upsert.
type Feedback struct {
	ID        int
	TicketID  int
	Score     *int
	Date      *time.Time
	UpdatedAt time.Time
}

// HasScore reports whether the feedback carries an opinion at all.
func (f *Feedback) HasScore() bool {
	return f.Score != nil
}

// IsSatisfied reports a score of 1.
func (f *Feedback) IsSatisfied() bool {
	return f.Score != nil && *f.Score == ScoreSatisfied
}

// IsDissatisfied reports a score of 2.
func (f *Feedback) IsDissatisfied() bool {
	return f.Score != nil && *f.Score == ScoreDissatisfied
}
