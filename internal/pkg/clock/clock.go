// Package clock abstracts the current time for view expiry.
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/pokemon-explorer/internal/pkg/clock Clock

type Clock interface {
	Now() time.Time
}

// System reads the wall clock. Times are in UTC so stored expiries compare
// the same across hosts.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}

// New returns the system clock.
func New() Clock {
	return System{}
}
