package timing

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/DavidIQ/onlytimer/internal/model"
	"github.com/DavidIQ/onlytimer/internal/timeutil"
)

// LogStore is the persistence boundary for meeting timing logs: a
// durable key-value store keyed by meeting date.
type LogStore interface {
	// UpsertLog saves the log under its meeting date; last write wins.
	UpsertLog(ctx context.Context, log model.MeetingTimingLog) error
	// ListLogs enumerates every persisted log, ordered by meeting date.
	ListLogs(ctx context.Context) ([]model.MeetingTimingLog, error)
	// DeleteAllLogs erases every persisted log.
	DeleteAllLogs(ctx context.Context) error
}

// MemoryStore is an in-process LogStore used in tests and wherever no
// database is configured.
type MemoryStore struct {
	mu   sync.Mutex
	logs map[time.Time]model.MeetingTimingLog
}

var _ LogStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{logs: make(map[time.Time]model.MeetingTimingLog)}
}

func (s *MemoryStore) UpsertLog(_ context.Context, log model.MeetingTimingLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs[timeutil.DayKey(log.MeetingDate)] = log.Clone()
	return nil
}

func (s *MemoryStore) ListLogs(_ context.Context) ([]model.MeetingTimingLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.MeetingTimingLog, 0, len(s.logs))
	for _, l := range s.logs {
		out = append(out, l.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MeetingDate.Before(out[j].MeetingDate) })
	return out, nil
}

func (s *MemoryStore) DeleteAllLogs(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = make(map[time.Time]model.MeetingTimingLog)
	return nil
}
