package domain

type ObjectiveStatus string

const (
	ObjectiveStatusActive ObjectiveStatus = "active"
	ObjectiveStatusPaused ObjectiveStatus = "paused"
)

// Objective represents a timed in-game event bound to a map zone.
//
// Exactly one of EndTime and RemainingSeconds is meaningful at any time,
// selected by Status: an active objective carries an absolute epoch-second
// deadline, a paused one carries the seconds still owed. The other field is
// zero and must be ignored.
type Objective struct {
	ID               int64
	Kind             string
	Zone             string
	Status           ObjectiveStatus
	EndTime          int64
	RemainingSeconds int64
}

// Expired reports whether an active objective's deadline has passed.
// Paused objectives never expire; their clock is stopped.
func (o Objective) Expired(now int64) bool {
	return o.Status == ObjectiveStatusActive && o.EndTime <= now
}
