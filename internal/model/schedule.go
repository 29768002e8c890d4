package model

import "time"

// MeetingKind selects which meeting template a schedule is generated from.
type MeetingKind string

const (
	Midweek MeetingKind = "midweek"
	Weekend MeetingKind = "weekend"
)

// TalkKind identifies a segment within a meeting template.
type TalkKind string

const (
	OpeningComments    TalkKind = "opening_comments"
	TreasuresTalk      TalkKind = "treasures_talk"
	DiggingTalk        TalkKind = "digging_talk"
	Reading            TalkKind = "reading"
	Ministry1          TalkKind = "ministry_1"
	Ministry2          TalkKind = "ministry_2"
	Ministry3          TalkKind = "ministry_3"
	Ministry4          TalkKind = "ministry_4"
	LivingPart1        TalkKind = "living_1"
	LivingPart2        TalkKind = "living_2"
	CongBibleStudy     TalkKind = "cong_bible_study"
	ConcludingComments TalkKind = "concluding_comments"
	CircuitServiceTalk TalkKind = "circuit_service_talk"
	PublicTalk         TalkKind = "public_talk"
	Watchtower         TalkKind = "watchtower"
)

// meeting sections (internal stable keys; the localised label is
// supplied by the presentation layer and defaults to the key).
const (
	SectionTreasures = "Treasures"
	SectionMinistry  = "Ministry"
	SectionLiving    = "Living"
	SectionWeekend   = "Weekend"
)

// ScheduleSegment is one planned agenda entry of a generated schedule.
type ScheduleSegment struct {
	TalkKind               TalkKind      `json:"talk_kind"`
	DisplayName            string        `json:"display_name"`
	SectionKey             string        `json:"section_key"`
	SectionName            string        `json:"section_name"`
	StartOffset            time.Duration `json:"start_offset"`
	PlannedDuration        time.Duration `json:"planned_duration"`
	IsStudentTalk          bool          `json:"is_student_talk"`
	BellApplicable         bool          `json:"bell_applicable"`
	AutoBell               bool          `json:"auto_bell"`
	Editable               bool          `json:"editable"`
	AllowAdaptive          bool          `json:"allow_adaptive"`
	PersistFinalTimerValue bool          `json:"persist_final_timer_value"`
}

// TalkTimer is one externally supplied talk assignment: the feed tells
// us how many minutes a ministry/living item has been given and whether
// a student delivers it.
type TalkTimer struct {
	TalkKind      TalkKind `json:"talk_kind"`
	Minutes       int      `json:"minutes"`
	IsStudentTalk bool     `json:"is_student_talk"`
}

// Meeting is the talk-data set for one midweek meeting date.
type Meeting struct {
	Date  time.Time   `json:"date"`
	Talks []TalkTimer `json:"talks"`
}

// Talk returns the timer for the given kind, or nil if the feed did not
// supply one.
func (m *Meeting) Talk(kind TalkKind) *TalkTimer {
	if m == nil {
		return nil
	}
	for i := range m.Talks {
		if m.Talks[i].TalkKind == kind {
			return &m.Talks[i]
		}
	}
	return nil
}
