package clock

import (
	"errors"
	"time"
)

// ErrNotSet is returned when a manual clock is read before anyone has
// set it. Reading an uninitialised clock is a caller bug; it must
// never be papered over with a default instant.
var ErrNotSet = errors.New("clock: time queried before being set")

// Clock is the injected time source used by the timing record store.
type Clock interface {
	Now() (time.Time, error)
}

// System reads the wall clock.
type System struct{}

func (System) Now() (time.Time, error) { return time.Now(), nil }

// Manual is a clock driven explicitly by its owner, used for
// deterministic replay and in tests.
type Manual struct {
	current time.Time
}

// NewManual returns an unset manual clock; Now fails until Set is called.
func NewManual() *Manual { return &Manual{} }

func (m *Manual) Set(t time.Time) { m.current = t }

func (m *Manual) Advance(d time.Duration) { m.current = m.current.Add(d) }

func (m *Manual) Now() (time.Time, error) {
	if m.current.IsZero() {
		return time.Time{}, ErrNotSet
	}
	return m.current, nil
}
