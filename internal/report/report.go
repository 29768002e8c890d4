// Package report aggregates saved meeting timing logs into a
// planned-vs-actual variance report artifact.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/DavidIQ/onlytimer/internal/model"
	"github.com/DavidIQ/onlytimer/internal/timing"
)

// OverrunThreshold is how far past its target a segment must run to be
// counted as an overrun in the report.
const OverrunThreshold = time.Minute

// Artifact is the generated report output: the aggregated data plus
// the document written for presentation logic to render.
type Artifact struct {
	Path   string
	Report model.TimingReport
}

// Generate scans every persisted timing log and writes a report
// document into dir. Incomplete logs (meeting started but never ended,
// or open events) are skipped; they must not poison other meetings'
// statistics. Returns nil when the store holds no logs at all.
// Generation only reads, so the caller may abandon it via ctx at any
// point without leaving state behind.
func Generate(ctx context.Context, store timing.LogStore, dir string) (*Artifact, error) {
	logs, err := store.ListLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing timing logs: %w", err)
	}
	if len(logs) == 0 {
		return nil, nil
	}

	acc := make(map[string]*accumulator)
	used, excluded := 0, 0
	for _, l := range logs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !l.Complete() {
			excluded++
			log.Debug().Time("meeting_date", l.MeetingDate).Msg("excluding incomplete timing log")
			continue
		}
		used++
		for _, ev := range l.Events {
			if ev.Open() {
				continue
			}
			a, ok := acc[ev.Description]
			if !ok {
				a = &accumulator{description: ev.Description, isStudentTalk: ev.IsStudentTalk}
				acc[ev.Description] = a
			}
			a.add(ev.ActualDuration() - ev.AdjustedTarget)
		}
	}

	rep := model.TimingReport{
		GeneratedAt:   time.Now().UTC(),
		MeetingCount:  used,
		ExcludedCount: excluded,
		Entries:       make([]model.MeetingReportEntry, 0, len(acc)),
	}
	for _, a := range acc {
		rep.Entries = append(rep.Entries, a.entry())
	}
	sort.Slice(rep.Entries, func(i, j int) bool {
		return rep.Entries[i].Description < rep.Entries[j].Description
	})

	path, err := write(rep, dir)
	if err != nil {
		return nil, err
	}
	log.Info().Int("meetings", used).Int("excluded", excluded).Str("path", path).Msg("timing report generated")
	return &Artifact{Path: path, Report: rep}, nil
}

// accumulator collects (actual - planned) deltas for one talk
// description across meetings.
type accumulator struct {
	description   string
	isStudentTalk bool
	deltas        []time.Duration
	overruns      int
}

func (a *accumulator) add(delta time.Duration) {
	a.deltas = append(a.deltas, delta)
	if delta > OverrunThreshold {
		a.overruns++
	}
}

func (a *accumulator) entry() model.MeetingReportEntry {
	var sum float64
	for _, d := range a.deltas {
		sum += d.Seconds()
	}
	mean := sum / float64(len(a.deltas))

	var sq float64
	for _, d := range a.deltas {
		sq += math.Pow(d.Seconds()-mean, 2)
	}

	return model.MeetingReportEntry{
		Description:     a.description,
		IsStudentTalk:   a.isStudentTalk,
		Count:           len(a.deltas),
		MeanDelta:       time.Duration(mean * float64(time.Second)),
		VarianceSeconds: sq / float64(len(a.deltas)),
		Overruns:        a.overruns,
	}
}

func write(rep model.TimingReport, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("timing-report-%s.json", uuid.NewString()))
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
