package timing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidIQ/onlytimer/internal/clock"
	"github.com/DavidIQ/onlytimer/internal/model"
)

var meetingDate = time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

func newTestRecorder() (*Recorder, *clock.Manual, *MemoryStore) {
	clk := clock.NewManual()
	store := NewMemoryStore()
	return NewRecorder(meetingDate, clk, store), clk, store
}

func TestRoundTrip(t *testing.T) {
	rec, clk, store := newTestRecorder()
	ctx := context.Background()

	start := meetingDate.Add(10 * time.Hour)
	clk.Set(start)

	rec.InsertMeetingStart(start)
	rec.InsertPlannedMeetingEnd(start.Add(105 * time.Minute))

	require.NoError(t, rec.InsertTimerStart("Public Talk", false, 30*time.Minute, 30*time.Minute))
	clk.Advance(31 * time.Minute)
	require.NoError(t, rec.InsertTimerStop())

	clk.Advance(200 * time.Second)

	require.NoError(t, rec.InsertTimerStart("Watchtower Study", false, 60*time.Minute, 55*time.Minute))
	clk.Advance(54 * time.Minute)
	require.NoError(t, rec.InsertTimerStop())

	require.NoError(t, rec.InsertActualMeetingEnd())
	require.NoError(t, rec.Save(ctx))

	logs, err := store.ListLogs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	got := logs[0]
	assert.Equal(t, meetingDate, got.MeetingDate)
	assert.Equal(t, start, got.MeetingStart)
	assert.Equal(t, start.Add(105*time.Minute), got.PlannedEnd)
	require.NotNil(t, got.ActualEnd)

	require.Len(t, got.Events, 2)
	first := got.Events[0]
	assert.Equal(t, "Public Talk", first.Description)
	assert.Equal(t, start, first.StartedAt)
	assert.Equal(t, 31*time.Minute, first.ActualDuration())
	assert.Equal(t, 30*time.Minute, first.OriginalTarget)

	second := got.Events[1]
	assert.Equal(t, 60*time.Minute, second.OriginalTarget)
	assert.Equal(t, 55*time.Minute, second.AdjustedTarget)
	assert.Equal(t, 54*time.Minute, second.ActualDuration())
}

func TestSaveIsIdempotent(t *testing.T) {
	rec, clk, store := newTestRecorder()
	ctx := context.Background()

	clk.Set(meetingDate.Add(19 * time.Hour))
	rec.InsertMeetingStart(meetingDate.Add(19 * time.Hour))
	require.NoError(t, rec.InsertTimerStart("Opening Comments", false, 3*time.Minute, 3*time.Minute))
	clk.Advance(3 * time.Minute)
	require.NoError(t, rec.InsertTimerStop())
	require.NoError(t, rec.InsertActualMeetingEnd())

	require.NoError(t, rec.Save(ctx))
	first, err := store.ListLogs(ctx)
	require.NoError(t, err)

	require.NoError(t, rec.Save(ctx))
	second, err := store.ListLogs(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOverlappingSegmentsRejected(t *testing.T) {
	rec, clk, _ := newTestRecorder()
	clk.Set(meetingDate.Add(19 * time.Hour))

	require.NoError(t, rec.InsertTimerStart("Treasures", false, 10*time.Minute, 10*time.Minute))

	err := rec.InsertTimerStart("Digging for Spiritual Gems", false, 8*time.Minute, 8*time.Minute)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindSequence))

	// the rejected open must not have been appended
	l := rec.Log()
	require.Len(t, l.Events, 1)
	assert.Equal(t, "Treasures", l.Events[0].Description)

	// the original segment is still open and can be closed normally
	clk.Advance(10 * time.Minute)
	assert.NoError(t, rec.InsertTimerStop())
}

func TestStopWithoutOpenSegment(t *testing.T) {
	rec, clk, _ := newTestRecorder()
	clk.Set(meetingDate.Add(19 * time.Hour))

	err := rec.InsertTimerStop()
	require.Error(t, err)
	assert.True(t, IsKind(err, KindSequence))
}

func TestMeetingEndWithOpenSegment(t *testing.T) {
	rec, clk, _ := newTestRecorder()
	clk.Set(meetingDate.Add(19 * time.Hour))

	require.NoError(t, rec.InsertTimerStart("Treasures", false, 10*time.Minute, 10*time.Minute))
	err := rec.InsertActualMeetingEnd()
	require.Error(t, err)
	assert.True(t, IsKind(err, KindSequence))
}

func TestUnsetClockIsPreconditionViolation(t *testing.T) {
	rec, _, _ := newTestRecorder()

	err := rec.InsertTimerStart("Treasures", false, 10*time.Minute, 10*time.Minute)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindPrecondition))
	assert.ErrorIs(t, err, clock.ErrNotSet)
	assert.Empty(t, rec.Log().Events)
}

func TestMeetingHeaderLastWriteWins(t *testing.T) {
	rec, _, _ := newTestRecorder()

	first := meetingDate.Add(19 * time.Hour)
	second := first.Add(5 * time.Minute)

	rec.InsertMeetingStart(first)
	rec.InsertMeetingStart(second)
	rec.InsertPlannedMeetingEnd(first.Add(105 * time.Minute))
	rec.InsertPlannedMeetingEnd(second.Add(105 * time.Minute))

	l := rec.Log()
	assert.Equal(t, second, l.MeetingStart)
	assert.Equal(t, second.Add(105*time.Minute), l.PlannedEnd)
}

func TestDeleteAllData(t *testing.T) {
	rec, clk, store := newTestRecorder()
	ctx := context.Background()

	clk.Set(meetingDate.Add(10 * time.Hour))
	rec.InsertMeetingStart(meetingDate.Add(10 * time.Hour))
	require.NoError(t, rec.Save(ctx))

	logs, err := store.ListLogs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	require.NoError(t, rec.DeleteAllData(ctx))
	logs, err = store.ListLogs(ctx)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

type failingStore struct{}

func (failingStore) UpsertLog(context.Context, model.MeetingTimingLog) error {
	return errors.New("disk full")
}
func (failingStore) ListLogs(context.Context) ([]model.MeetingTimingLog, error) {
	return nil, errors.New("disk full")
}
func (failingStore) DeleteAllLogs(context.Context) error { return errors.New("disk full") }

func TestStorageFailuresAreClassified(t *testing.T) {
	clk := clock.NewManual()
	clk.Set(meetingDate.Add(10 * time.Hour))
	rec := NewRecorder(meetingDate, clk, failingStore{})

	err := rec.Save(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindStorage))
	assert.False(t, IsKind(err, KindSequence))

	err = rec.DeleteAllData(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindStorage))
}
