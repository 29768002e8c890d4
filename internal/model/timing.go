package model

import "time"

// TimerEvent is one recorded segment timing: when a talk actually
// started and stopped, and what it was meant to take. AdjustedTarget
// differs from OriginalTarget when the operator renegotiated an
// adaptive segment's duration before it began.
type TimerEvent struct {
	Description    string        `json:"description"`
	IsStudentTalk  bool          `json:"is_student_talk"`
	StartedAt      time.Time     `json:"started_at"`
	StoppedAt      *time.Time    `json:"stopped_at,omitempty"`
	OriginalTarget time.Duration `json:"original_target"`
	AdjustedTarget time.Duration `json:"adjusted_target"`
}

// Open reports whether the event has been started but not yet stopped.
func (e *TimerEvent) Open() bool { return e.StoppedAt == nil }

// ActualDuration is the recorded elapsed time, zero while still open.
func (e *TimerEvent) ActualDuration() time.Duration {
	if e.StoppedAt == nil {
		return 0
	}
	return e.StoppedAt.Sub(e.StartedAt)
}

// MeetingTimingLog is the persisted record of a single meeting
// instance, keyed by MeetingDate. ActualEnd stays nil until the
// meeting concludes; a log without it is incomplete (e.g. the process
// died mid-meeting) and is excluded from reports.
type MeetingTimingLog struct {
	MeetingDate  time.Time    `json:"meeting_date"`
	MeetingStart time.Time    `json:"meeting_start"`
	PlannedEnd   time.Time    `json:"planned_end"`
	ActualEnd    *time.Time   `json:"actual_end,omitempty"`
	Events       []TimerEvent `json:"events"`
}

// Complete reports whether the log covers a whole meeting and is
// therefore usable for aggregate statistics.
func (l *MeetingTimingLog) Complete() bool {
	return !l.MeetingStart.IsZero() && l.ActualEnd != nil && len(l.Events) > 0
}

// Clone returns a deep copy so that report generation never observes a
// log the live-meeting driver is still appending to.
func (l *MeetingTimingLog) Clone() MeetingTimingLog {
	out := *l
	if l.ActualEnd != nil {
		end := *l.ActualEnd
		out.ActualEnd = &end
	}
	out.Events = make([]TimerEvent, len(l.Events))
	for i, ev := range l.Events {
		if ev.StoppedAt != nil {
			stopped := *ev.StoppedAt
			ev.StoppedAt = &stopped
		}
		out.Events[i] = ev
	}
	return out
}
