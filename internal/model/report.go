package model

import "time"

// MeetingReportEntry is one aggregated row of the timing report: all
// recorded timings for one talk description across many meetings,
// reduced to planned-vs-actual statistics. Derived data, never stored.
type MeetingReportEntry struct {
	Description     string        `json:"description"`
	IsStudentTalk   bool          `json:"is_student_talk"`
	Count           int           `json:"count"`
	MeanDelta       time.Duration `json:"mean_delta"`
	VarianceSeconds float64       `json:"variance_seconds"`
	Overruns        int           `json:"overruns"`
}

// TimingReport is the generated report artifact content. The file it
// is written to is handed to presentation logic as-is.
type TimingReport struct {
	GeneratedAt   time.Time            `json:"generated_at"`
	MeetingCount  int                  `json:"meeting_count"`
	ExcludedCount int                  `json:"excluded_count"`
	Entries       []MeetingReportEntry `json:"entries"`
}
