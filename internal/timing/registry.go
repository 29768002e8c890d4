package timing

import (
	"sync"
	"time"

	"github.com/DavidIQ/onlytimer/internal/clock"
	"github.com/DavidIQ/onlytimer/internal/timeutil"
)

// Registry hands out the per-meeting-date Recorder. Each date is an
// independent log, so the only shared state is this map.
type Registry struct {
	mu        sync.Mutex
	clk       clock.Clock
	store     LogStore
	recorders map[time.Time]*Recorder
}

func NewRegistry(clk clock.Clock, store LogStore) *Registry {
	return &Registry{
		clk:       clk,
		store:     store,
		recorders: make(map[time.Time]*Recorder),
	}
}

// Recorder returns the recorder for the given meeting date, creating
// an empty one on first use.
func (g *Registry) Recorder(date time.Time) *Recorder {
	key := timeutil.DayKey(date)
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.recorders[key]
	if !ok {
		r = NewRecorder(key, g.clk, g.store)
		g.recorders[key] = r
	}
	return r
}

// Store exposes the persistence boundary for read-only consumers such
// as report generation.
func (g *Registry) Store() LogStore { return g.store }
