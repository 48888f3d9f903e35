package app

// AvailabilityEvent is the debounced outcome of one status reading.
type AvailabilityEvent int

const (
	AvailabilityUnchanged AvailabilityEvent = iota
	BecameOffline
	BecameOnline
)

// Availability is the process-wide belief about whether the game server is
// reachable. It starts Online: a restart while the server is down corrects
// itself on the first poll. Repeated identical readings produce no event, so
// each transition is observed exactly once.
type Availability struct {
	online bool
}

func NewAvailability() *Availability {
	return &Availability{online: true}
}

func (a *Availability) Online() bool {
	return a.online
}

// Pending reports the edge a reading would produce without committing it.
// Callers that act on the edge commit it with Observe once their own work
// has landed, so a failed freeze or resume leaves the edge pending and the
// next reading raises it again.
func (a *Availability) Pending(online bool) AvailabilityEvent {
	switch {
	case a.online && !online:
		return BecameOffline
	case !a.online && online:
		return BecameOnline
	default:
		return AvailabilityUnchanged
	}
}

// Observe folds a successful status reading into the state machine and
// reports the edge it produced, if any. Failed readings must not be fed in
// at all; the caller holds the prior state instead.
func (a *Availability) Observe(online bool) AvailabilityEvent {
	ev := a.Pending(online)
	a.online = online
	return ev
}
