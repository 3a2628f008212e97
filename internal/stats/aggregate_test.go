package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/entry"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/week"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func e(date time.Time, minutes int, project, task string) entry.Entry {
	return entry.Entry{Date: date, Minutes: minutes, Project: project, Task: task}
}

func TestBucketWeeksGroupsByMonday(t *testing.T) {
	entries := []entry.Entry{
		e(day(2025, 9, 8), 60, "A", "x"),
		e(day(2025, 9, 14), 30, "A", "y"), // Sunday, same week
		e(day(2025, 9, 15), 45, "B", "x"), // following Monday
	}

	buckets := BucketWeeks(entries)
	require.Len(t, buckets, 2)

	assert.Equal(t, day(2025, 9, 8), buckets[0].Period.Start)
	assert.Equal(t, 90, buckets[0].ByProject["A"])
	assert.Equal(t, 60, buckets[0].ByTask["x"])
	assert.Equal(t, 30, buckets[0].ByTask["y"])

	assert.Equal(t, day(2025, 9, 15), buckets[1].Period.Start)
	assert.Equal(t, 45, buckets[1].ByProject["B"])
}

func TestBucketWeeksUnspecifiedBucket(t *testing.T) {
	entries := []entry.Entry{
		e(day(2025, 9, 8), 60, "", ""),
		e(day(2025, 9, 9), 30, "A", "x"),
	}

	buckets := BucketWeeks(entries)
	require.Len(t, buckets, 1)
	assert.Equal(t, 60, buckets[0].ByProject[entry.UnspecifiedProject])
	assert.Equal(t, 60, buckets[0].ByTask[entry.UnspecifiedTask])
}

func TestBuildLongOrderingAndHours(t *testing.T) {
	entries := []entry.Entry{
		e(day(2025, 9, 15), 45, "B", "x"),
		e(day(2025, 9, 8), 60, "B", "x"),
		e(day(2025, 9, 9), 90, "A", "y"),
	}

	rows := BuildLong(BucketWeeks(entries), ByProject)
	require.Len(t, rows, 3)

	// Week ascending, then category ascending within the week.
	assert.Equal(t, "A", rows[0].Category)
	assert.Equal(t, day(2025, 9, 8), rows[0].Period.Start)
	assert.Equal(t, "B", rows[1].Category)
	assert.Equal(t, day(2025, 9, 8), rows[1].Period.Start)
	assert.Equal(t, "B", rows[2].Category)
	assert.Equal(t, day(2025, 9, 15), rows[2].Period.Start)

	assert.Equal(t, 90, rows[0].Minutes)
	assert.InDelta(t, 1.5, rows[0].Hours, 1e-9)
}

func TestBuildWideExplicitZeros(t *testing.T) {
	entries := []entry.Entry{
		e(day(2025, 9, 8), 60, "A", "x"),
		e(day(2025, 9, 15), 45, "B", "x"),
	}

	table := BuildWide(BucketWeeks(entries), ByProject)
	require.Equal(t, []string{"A", "B"}, table.Categories)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, []int{60, 0}, table.Rows[0].Minutes)
	assert.Equal(t, []int{0, 45}, table.Rows[1].Minutes)
}

func TestWideLongConsistency(t *testing.T) {
	entries := []entry.Entry{
		e(day(2025, 9, 8), 60, "A", "x"),
		e(day(2025, 9, 10), 30, "B", "y"),
		e(day(2025, 9, 16), 45, "A", "x"),
		e(day(2025, 9, 17), 15, "C", "z"),
	}

	buckets := BucketWeeks(entries)
	long := BuildLong(buckets, ByProject)
	wide := BuildWide(buckets, ByProject)

	longCell := make(map[string]int)
	for _, r := range long {
		longCell[r.Period.Label()+"|"+r.Category] = r.Minutes
	}

	for _, row := range wide.Rows {
		for i, cat := range wide.Categories {
			got, ok := longCell[row.Period.Label()+"|"+cat]
			if row.Minutes[i] == 0 {
				assert.False(t, ok, "zero cell %s/%s must not appear in long form", row.Period.Label(), cat)
			} else {
				assert.True(t, ok)
				assert.Equal(t, got, row.Minutes[i])
			}
		}
	}
}

func TestConservationOfTotals(t *testing.T) {
	entries := []entry.Entry{
		e(day(2025, 9, 8), 60, "A", "x"),
		e(day(2025, 9, 9), 180, "A", "x"),
		e(day(2025, 9, 10), 60, "B", "y"),
	}

	rows := BuildLong(BucketWeeks(entries), ByProject)

	rawTotal := 0
	for _, en := range entries {
		rawTotal += en.Minutes
	}
	aggTotal := 0
	for _, r := range rows {
		aggTotal += r.Minutes
	}
	assert.Equal(t, rawTotal, aggTotal)
}

func TestEmptyInputEmptyOutputs(t *testing.T) {
	buckets := BucketWeeks(nil)
	assert.Empty(t, buckets)

	rows := BuildLong(buckets, ByTask)
	assert.Empty(t, rows)

	table := BuildWide(buckets, ByTask)
	assert.Empty(t, table.Categories)
	assert.Empty(t, table.Rows)
}

func TestFilterWeek(t *testing.T) {
	p := week.Of(day(2025, 9, 8))
	entries := []entry.Entry{
		e(day(2025, 9, 7), 10, "A", "x"),  // Sunday before
		e(day(2025, 9, 8), 20, "A", "x"),  // Monday
		e(day(2025, 9, 14), 30, "A", "x"), // Sunday
		e(day(2025, 9, 15), 40, "A", "x"), // next Monday
	}

	got := FilterWeek(entries, p)
	require.Len(t, got, 2)
	assert.Equal(t, 20, got[0].Minutes)
	assert.Equal(t, 30, got[1].Minutes)
}
