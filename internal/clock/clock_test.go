package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualClockUnset(t *testing.T) {
	clk := NewManual()
	_, err := clk.Now()
	assert.ErrorIs(t, err, ErrNotSet)
}

func TestManualClockSetAndAdvance(t *testing.T) {
	clk := NewManual()
	base := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)

	clk.Set(base)
	now, err := clk.Now()
	require.NoError(t, err)
	assert.Equal(t, base, now)

	clk.Advance(90 * time.Second)
	now, err = clk.Now()
	require.NoError(t, err)
	assert.Equal(t, base.Add(90*time.Second), now)
}

func TestSystemClock(t *testing.T) {
	now, err := System{}.Now()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), now, time.Minute)
}
