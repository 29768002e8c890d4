package packets

import "time"

type SegmentResponse struct {
	TalkKind               string `json:"talk_kind"`
	DisplayName            string `json:"display_name"`
	Section                string `json:"section"`
	StartOffsetSeconds     int    `json:"start_offset_seconds"`
	PlannedDurationSeconds int    `json:"planned_duration_seconds"`
	IsStudentTalk          bool   `json:"is_student_talk"`
	BellApplicable         bool   `json:"bell_applicable"`
	AutoBell               bool   `json:"auto_bell"`
	Editable               bool   `json:"editable"`
	AllowAdaptive          bool   `json:"allow_adaptive"`
	PersistFinalTimerValue bool   `json:"persist_final_timer_value"`
}

type TimerEventResponse struct {
	Description           string     `json:"description"`
	IsStudentTalk         bool       `json:"is_student_talk"`
	StartedAt             time.Time  `json:"started_at"`
	StoppedAt             *time.Time `json:"stopped_at,omitempty"`
	OriginalTargetSeconds int        `json:"original_target_seconds"`
	AdjustedTargetSeconds int        `json:"adjusted_target_seconds"`
}

type MeetingLogResponse struct {
	MeetingDate  string               `json:"meeting_date"`
	MeetingStart *time.Time           `json:"meeting_start,omitempty"`
	PlannedEnd   *time.Time           `json:"planned_end,omitempty"`
	ActualEnd    *time.Time           `json:"actual_end,omitempty"`
	Events       []TimerEventResponse `json:"events"`
}

type ReportResponse struct {
	Path          string `json:"path"`
	MeetingCount  int    `json:"meeting_count"`
	ExcludedCount int    `json:"excluded_count"`
	EntryCount    int    `json:"entry_count"`
}
