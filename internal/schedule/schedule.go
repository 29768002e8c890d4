// Package schedule derives a concrete ordered agenda of timed segments
// from a meeting-type template plus optionally supplied per-segment
// talk data. Generation is a pure function of its inputs: no clock, no
// I/O, no logging.
package schedule

import (
	"fmt"
	"time"

	"github.com/DavidIQ/onlytimer/internal/model"
	"github.com/DavidIQ/onlytimer/internal/timeutil"
)

// MeetingLength is the conceptual overall meeting length callers plan
// against; no generated segment extends beyond it.
const MeetingLength = 105 * time.Minute

// ministry pads: one minute of counsel after a student talk, twenty
// seconds of speaker changeover after every ministry item.
const (
	counselTime    = time.Minute
	changeoverTime = 20 * time.Second
)

const ministryAnchor = 32*time.Minute + 20*time.Second

// Generate produces the ordered schedule for one meeting. meeting may
// be nil (no external talk data); absent ministry talks are omitted and
// living parts fall back to their defaults. Segments come out in
// nondecreasing start-offset order.
func Generate(kind model.MeetingKind, isCircuitVisit, autoBell bool, meeting *model.Meeting) []model.ScheduleSegment {
	switch kind {
	case model.Weekend:
		return weekendSchedule(isCircuitVisit)
	case model.Midweek:
		return midweekSchedule(isCircuitVisit, autoBell, meeting)
	default:
		panic(fmt.Sprintf("schedule: unknown meeting kind %q", kind))
	}
}

func midweekSchedule(isCircuitVisit, autoBell bool, meeting *model.Meeting) []model.ScheduleSegment {
	var out []model.ScheduleSegment
	out = append(out, treasuresSchedule(autoBell)...)
	out = append(out, ministrySchedule(meeting, autoBell)...)
	out = append(out, livingSchedule(isCircuitVisit, meeting)...)
	return out
}

// anchor is one fixed template row: a segment whose offset and duration
// are looked up, never computed.
type anchor struct {
	kind     model.TalkKind
	name     string
	offset   time.Duration
	duration time.Duration

	isStudentTalk bool
	bell          bool
	persistFinal  bool
	editable      bool
	allowAdaptive bool
}

var treasuresTable = []anchor{
	{kind: model.OpeningComments, name: "Opening Comments", offset: timeutil.Offset(5, 0), duration: timeutil.Minutes(3)},
	{kind: model.TreasuresTalk, name: "Treasures", offset: timeutil.Offset(8, 20), duration: timeutil.Minutes(10)},
	{kind: model.DiggingTalk, name: "Digging for Spiritual Gems", offset: timeutil.Offset(18, 40), duration: timeutil.Minutes(8)},
	{kind: model.Reading, name: "Bible Reading", offset: timeutil.Offset(27, 0), duration: timeutil.Minutes(4),
		isStudentTalk: true, bell: true, persistFinal: true},
}

// livingCloseTable holds the fixed segments that close the living
// section, indexed by the circuit-visit flag.
var livingCloseTable = map[bool][]anchor{
	true: {
		{kind: model.ConcludingComments, name: "Concluding Comments", offset: timeutil.Offset(67, 0), duration: timeutil.Minutes(3)},
		{kind: model.CircuitServiceTalk, name: "Circuit Overseer Talk", offset: timeutil.Offset(70, 0), duration: timeutil.Minutes(30)},
	},
	false: {
		{kind: model.CongBibleStudy, name: "Congregation Bible Study", offset: timeutil.Offset(67, 0), duration: timeutil.Minutes(30)},
		{kind: model.ConcludingComments, name: "Concluding Comments", offset: timeutil.Offset(97, 0), duration: timeutil.Minutes(3)},
	},
}

// weekendTable is indexed by the circuit-visit flag. On circuit visits
// the Watchtower study is halved and the circuit overseer speaks last.
var weekendTable = map[bool][]anchor{
	true: {
		{kind: model.PublicTalk, name: "Public Talk", offset: timeutil.Offset(5, 0), duration: timeutil.Minutes(30), editable: true},
		{kind: model.Watchtower, name: "Watchtower Study", offset: timeutil.Offset(40, 0), duration: timeutil.Minutes(30), editable: true, allowAdaptive: true},
		{kind: model.CircuitServiceTalk, name: "Circuit Overseer Talk", offset: timeutil.Offset(70, 0), duration: timeutil.Minutes(30), editable: true, allowAdaptive: true},
	},
	false: {
		{kind: model.PublicTalk, name: "Public Talk", offset: timeutil.Offset(5, 0), duration: timeutil.Minutes(30), editable: true},
		{kind: model.Watchtower, name: "Watchtower Study", offset: timeutil.Offset(40, 0), duration: timeutil.Minutes(60), editable: true, allowAdaptive: true},
	},
}

func treasuresSchedule(autoBell bool) []model.ScheduleSegment {
	out := make([]model.ScheduleSegment, 0, len(treasuresTable))
	for _, a := range treasuresTable {
		out = append(out, model.ScheduleSegment{
			TalkKind:               a.kind,
			DisplayName:            a.name,
			SectionKey:             model.SectionTreasures,
			SectionName:            model.SectionTreasures,
			StartOffset:            a.offset,
			PlannedDuration:        a.duration,
			IsStudentTalk:          a.isStudentTalk,
			BellApplicable:         a.bell,
			AutoBell:               autoBell,
			PersistFinalTimerValue: a.persistFinal,
		})
	}
	return out
}

// MinistryTalkKind maps a ministry slot index (0-based, at most four
// slots) to its talk kind. An index outside the template is a
// programming error.
func MinistryTalkKind(n int) model.TalkKind {
	switch n {
	case 0:
		return model.Ministry1
	case 1:
		return model.Ministry2
	case 2:
		return model.Ministry3
	case 3:
		return model.Ministry4
	}
	panic(fmt.Sprintf("schedule: ministry item %d out of range", n))
}

func ministryItemTitle(item int) string {
	if item < 1 || item > 4 {
		panic(fmt.Sprintf("schedule: ministry item %d out of range", item))
	}
	return fmt.Sprintf("Ministry Item %d", item)
}

// ministrySchedule is the one derived part of the template: each
// segment starts where the previous one ended, plus counsel time after
// student talks and a changeover pad after every item. Talks are
// consumed strictly in slot order; absent slots are omitted.
func ministrySchedule(meeting *model.Meeting, autoBell bool) []model.ScheduleSegment {
	var timers []model.TalkTimer
	for n := 0; n < 4; n++ {
		if t := meeting.Talk(MinistryTalkKind(n)); t != nil {
			timers = append(timers, *t)
		}
	}

	out := make([]model.ScheduleSegment, 0, len(timers))
	offset := ministryAnchor
	for n, t := range timers {
		out = append(out, model.ScheduleSegment{
			TalkKind:               MinistryTalkKind(n),
			DisplayName:            ministryItemTitle(n + 1),
			SectionKey:             model.SectionMinistry,
			SectionName:            model.SectionMinistry,
			StartOffset:            offset,
			PlannedDuration:        timeutil.Minutes(t.Minutes),
			IsStudentTalk:          t.IsStudentTalk,
			BellApplicable:         t.IsStudentTalk,
			AutoBell:               autoBell,
			PersistFinalTimerValue: t.IsStudentTalk,
			Editable:               true,
		})

		offset += timeutil.Minutes(t.Minutes)
		if t.IsStudentTalk {
			offset += counselTime
		}
		offset += changeoverTime
	}
	return out
}

func livingSchedule(isCircuitVisit bool, meeting *model.Meeting) []model.ScheduleSegment {
	part1Minutes := 15
	if t := meeting.Talk(model.LivingPart1); t != nil {
		part1Minutes = t.Minutes
	}
	part2Minutes := 0
	if t := meeting.Talk(model.LivingPart2); t != nil {
		part2Minutes = t.Minutes
	}

	part1Offset := timeutil.Offset(51, 40)

	out := []model.ScheduleSegment{
		livingItem(model.LivingPart1, "Living Part 1", part1Offset, timeutil.Minutes(part1Minutes)),
		livingItem(model.LivingPart2, "Living Part 2", part1Offset+timeutil.Minutes(part1Minutes), timeutil.Minutes(part2Minutes)),
	}
	for _, a := range livingCloseTable[isCircuitVisit] {
		out = append(out, livingItem(a.kind, a.name, a.offset, a.duration))
	}
	return out
}

func livingItem(kind model.TalkKind, name string, offset, duration time.Duration) model.ScheduleSegment {
	return model.ScheduleSegment{
		TalkKind:        kind,
		DisplayName:     name,
		SectionKey:      model.SectionLiving,
		SectionName:     model.SectionLiving,
		StartOffset:     offset,
		PlannedDuration: duration,
		Editable:        true,
		AllowAdaptive:   true,
	}
}

func weekendSchedule(isCircuitVisit bool) []model.ScheduleSegment {
	table := weekendTable[isCircuitVisit]
	out := make([]model.ScheduleSegment, 0, len(table))
	for _, a := range table {
		out = append(out, model.ScheduleSegment{
			TalkKind:        a.kind,
			DisplayName:     a.name,
			SectionKey:      model.SectionWeekend,
			SectionName:     model.SectionWeekend,
			StartOffset:     a.offset,
			PlannedDuration: a.duration,
			Editable:        a.editable,
			AllowAdaptive:   a.allowAdaptive,
		})
	}
	return out
}
