package packets

import "time"

// MarkTimeRequest carries an explicit timestamp for meeting start /
// planned end, which the driver captures at the moment of the event.
type MarkTimeRequest struct {
	Timestamp time.Time `json:"timestamp" binding:"required"`
}

// TimerStartRequest opens a timed segment. AdjustedTargetSeconds is
// supplied when the operator has renegotiated an adaptive segment's
// duration; absent, it equals the original target.
type TimerStartRequest struct {
	Description           string `json:"description" binding:"required"`
	IsStudentTalk         bool   `json:"is_student_talk"`
	OriginalTargetSeconds int    `json:"original_target_seconds" binding:"required"`
	AdjustedTargetSeconds *int   `json:"adjusted_target_seconds"`
}
