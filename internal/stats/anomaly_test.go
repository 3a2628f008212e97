package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/entry"
)

func TestDetectAnomaliesDefaults(t *testing.T) {
	entries := []entry.Entry{
		e(day(2025, 9, 8), 400, "A", "x"), // overlong
		e(day(2025, 9, 9), 2, "A", "x"),   // overshort
		e(day(2025, 9, 10), 60, "A", "x"), // fine
		e(day(2025, 9, 11), 360, "A", "x"),
		e(day(2025, 9, 12), 5, "A", "x"),
	}

	flags := DetectAnomalies(entries, DefaultHighThreshold, DefaultLowThreshold)
	require.Len(t, flags, 2)

	assert.Equal(t, Overlong, flags[0].Kind)
	assert.Equal(t, 400, flags[0].Entry.Minutes)
	assert.Equal(t, Overshort, flags[1].Kind)
	assert.Equal(t, 2, flags[1].Entry.Minutes)
}

func TestDetectAnomaliesThresholdsExclusive(t *testing.T) {
	entries := []entry.Entry{e(day(2025, 9, 8), 400, "A", "x")}

	flags := DetectAnomalies(entries, 360, 5)
	require.Len(t, flags, 1)

	// A single entry carries at most one flag.
	seen := make(map[int]int)
	for _, f := range flags {
		seen[f.Entry.Minutes]++
	}
	for mins, count := range seen {
		assert.Equal(t, 1, count, "entry with %d minutes flagged twice", mins)
	}
}

func TestDailyPeakTrough(t *testing.T) {
	entries := []entry.Entry{
		e(day(2025, 9, 8), 60, "A", "x"),
		e(day(2025, 9, 8), 120, "A", "x"),
		e(day(2025, 9, 9), 300, "A", "x"),
		e(day(2025, 9, 11), 30, "A", "x"),
		// Sept 10 has no entries: excluded from peak and trough.
	}

	s := Daily(entries, 240)
	require.True(t, s.HasDays)
	require.Len(t, s.Days, 3)

	assert.Equal(t, day(2025, 9, 9), s.Peak.Date)
	assert.Equal(t, 300, s.Peak.Minutes)
	assert.Equal(t, day(2025, 9, 11), s.Trough.Date)
	assert.Equal(t, 30, s.Trough.Minutes)
}

func TestDailyStatsMoments(t *testing.T) {
	entries := []entry.Entry{
		e(day(2025, 9, 8), 100, "A", "x"),
		e(day(2025, 9, 9), 200, "A", "x"),
		e(day(2025, 9, 10), 300, "A", "x"),
	}

	s := Daily(entries, 240)
	assert.InDelta(t, 200.0, s.Mean, 1e-9)
	assert.InDelta(t, 100.0, s.Std, 1e-9) // sample stddev of 100,200,300
	require.True(t, s.CVValid)
	assert.InDelta(t, 0.5, s.CV, 1e-9)
	assert.Equal(t, 2, s.LowDays) // 100 and 200 sit under the 240 floor
}

func TestDailyEmpty(t *testing.T) {
	s := Daily(nil, 240)
	assert.False(t, s.HasDays)
	assert.Empty(t, s.Days)
	assert.False(t, s.CVValid)
}

func TestDailyCumulative(t *testing.T) {
	entries := []entry.Entry{
		e(day(2025, 9, 8), 60, "A", "x"),
		e(day(2025, 9, 9), 30, "A", "x"),
		e(day(2025, 9, 11), 90, "A", "x"),
	}

	cum := Daily(entries, 240).Cumulative()
	require.Len(t, cum, 3)
	assert.Equal(t, 60, cum[0].Minutes)
	assert.Equal(t, 90, cum[1].Minutes)
	assert.Equal(t, 180, cum[2].Minutes)
}
