// Package timing records the chronological event log of a live meeting
// and persists it through the LogStore boundary.
package timing

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/DavidIQ/onlytimer/internal/clock"
	"github.com/DavidIQ/onlytimer/internal/model"
)

// Recorder is the append-only timing log for one meeting instance. The
// segment protocol is a two-state machine: Idle -> SegmentOpen -> Idle.
// Violations are rejected and leave the log untouched, so a buggy
// driver cannot corrupt recorded data. A Recorder is not safe for
// concurrent use; the live-meeting driver calls it from one goroutine.
type Recorder struct {
	date  time.Time
	clk   clock.Clock
	store LogStore

	log         model.MeetingTimingLog
	segmentOpen bool
}

// NewRecorder creates an empty log for the given meeting date.
func NewRecorder(date time.Time, clk clock.Clock, store LogStore) *Recorder {
	return &Recorder{
		date:  date,
		clk:   clk,
		store: store,
		log:   model.MeetingTimingLog{MeetingDate: date},
	}
}

// InsertMeetingStart records when the meeting actually began. Calling
// it again overwrites the prior value.
func (r *Recorder) InsertMeetingStart(ts time.Time) {
	r.log.MeetingStart = ts
}

// InsertPlannedMeetingEnd records when the meeting is meant to finish.
// Last write wins.
func (r *Recorder) InsertPlannedMeetingEnd(ts time.Time) {
	r.log.PlannedEnd = ts
}

// InsertTimerStart opens a new timed segment at the clock's current
// instant. Opening a segment while another is open is a sequencing
// violation: the prior segment is not silently closed.
func (r *Recorder) InsertTimerStart(description string, isStudentTalk bool, originalTarget, actualTarget time.Duration) error {
	if r.segmentOpen {
		return sequenceError("segment %q opened while a segment is still open", description)
	}
	now, err := r.now()
	if err != nil {
		return err
	}
	r.log.Events = append(r.log.Events, model.TimerEvent{
		Description:    description,
		IsStudentTalk:  isStudentTalk,
		StartedAt:      now,
		OriginalTarget: originalTarget,
		AdjustedTarget: actualTarget,
	})
	r.segmentOpen = true
	return nil
}

// InsertTimerStop closes the most recently opened segment.
func (r *Recorder) InsertTimerStop() error {
	if !r.segmentOpen {
		return sequenceError("timer stop with no open segment")
	}
	now, err := r.now()
	if err != nil {
		return err
	}
	ev := &r.log.Events[len(r.log.Events)-1]
	ev.StoppedAt = &now
	r.segmentOpen = false
	return nil
}

// InsertActualMeetingEnd records the meeting's actual end; it must
// follow the final timer stop.
func (r *Recorder) InsertActualMeetingEnd() error {
	if r.segmentOpen {
		return sequenceError("meeting end with a segment still open")
	}
	now, err := r.now()
	if err != nil {
		return err
	}
	r.log.ActualEnd = &now
	return nil
}

// Save flushes the log through the persistence boundary. Saving twice
// with no intervening mutation writes identical data.
func (r *Recorder) Save(ctx context.Context) error {
	if err := r.store.UpsertLog(ctx, r.log); err != nil {
		log.Error().Err(err).Time("meeting_date", r.date).Msg("saving timing log failed")
		return storageError("saving timing log", err)
	}
	return nil
}

// DeleteAllData erases every persisted log. Administrative use only;
// the recording flow never calls it.
func (r *Recorder) DeleteAllData(ctx context.Context) error {
	if err := r.store.DeleteAllLogs(ctx); err != nil {
		log.Error().Err(err).Msg("deleting timing data failed")
		return storageError("deleting timing data", err)
	}
	return nil
}

// Log returns a snapshot of the in-memory log.
func (r *Recorder) Log() model.MeetingTimingLog {
	return r.log.Clone()
}

func (r *Recorder) now() (time.Time, error) {
	now, err := r.clk.Now()
	if err != nil {
		return time.Time{}, preconditionError("reading clock", err)
	}
	return now, nil
}
