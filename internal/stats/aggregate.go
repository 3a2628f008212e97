// Package stats holds the weekly aggregation and statistical-summary engine:
// week bucketing, project/task aggregation, concentration metrics, anomaly
// detection, and the composed weekly summary handed to renderers.
package stats

import (
	"sort"
	"time"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/entry"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/week"
)

// GroupBy selects the aggregation axis.
type GroupBy int

const (
	ByProject GroupBy = iota
	ByTask
)

// Bucket holds per-project and per-task minute totals for a single week.
// Totals are built once while bucketing and never mutated afterwards.
type Bucket struct {
	Period    week.Period
	ByProject map[string]int
	ByTask    map[string]int
}

// Totals returns the bucket's category totals for the given axis.
func (b Bucket) Totals(axis GroupBy) map[string]int {
	if axis == ByTask {
		return b.ByTask
	}
	return b.ByProject
}

// BucketWeeks groups entries into weekly buckets, sorted by week ascending.
// Entries with empty labels land in the explicit unspecified buckets.
func BucketWeeks(entries []entry.Entry) []Bucket {
	byMonday := make(map[time.Time]*Bucket)
	for _, e := range entries {
		p := week.Of(e.Date)
		b := byMonday[p.Start]
		if b == nil {
			b = &Bucket{
				Period:    p,
				ByProject: make(map[string]int),
				ByTask:    make(map[string]int),
			}
			byMonday[p.Start] = b
		}
		b.ByProject[e.ProjectLabel()] += e.Minutes
		b.ByTask[e.TaskLabel()] += e.Minutes
	}

	buckets := make([]Bucket, 0, len(byMonday))
	for _, b := range byMonday {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Period.Start.Before(buckets[j].Period.Start)
	})
	return buckets
}

// FilterWeek returns the entries whose date falls inside the period,
// preserving input order.
func FilterWeek(entries []entry.Entry, p week.Period) []entry.Entry {
	var out []entry.Entry
	for _, e := range entries {
		if p.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// LongRow is one (week, category) aggregate in long form.
type LongRow struct {
	Period   week.Period
	Category string
	Minutes  int
	Hours    float64
}

// BuildLong flattens buckets into long-form rows, sorted by week ascending
// then category name ascending. The ordering is deterministic so exports are
// reproducible run to run.
func BuildLong(buckets []Bucket, axis GroupBy) []LongRow {
	var rows []LongRow
	for _, b := range buckets {
		totals := b.Totals(axis)
		for _, name := range sortedKeys(totals) {
			mins := totals[name]
			rows = append(rows, LongRow{
				Period:   b.Period,
				Category: name,
				Minutes:  mins,
				Hours:    float64(mins) / 60.0,
			})
		}
	}
	return rows
}

// WideTable is a weeks-by-categories matrix. Missing combinations hold an
// explicit zero, not an absent cell.
type WideTable struct {
	Categories []string // sorted ascending
	Rows       []WideRow
}

// WideRow is one week's row, with minutes aligned to WideTable.Categories.
type WideRow struct {
	Period  week.Period
	Minutes []int
}

// Cell returns the minutes for a category, or zero when the category is not
// part of the table.
func (t WideTable) Cell(row WideRow, category string) int {
	for i, name := range t.Categories {
		if name == category {
			return row.Minutes[i]
		}
	}
	return 0
}

// BuildWide pivots buckets into wide form with one row per week (ascending)
// and one column per category (alphabetical).
func BuildWide(buckets []Bucket, axis GroupBy) WideTable {
	seen := make(map[string]bool)
	for _, b := range buckets {
		for name := range b.Totals(axis) {
			seen[name] = true
		}
	}
	categories := sortedKeys(seen)

	rows := make([]WideRow, 0, len(buckets))
	for _, b := range buckets {
		totals := b.Totals(axis)
		minutes := make([]int, len(categories))
		for i, name := range categories {
			minutes[i] = totals[name]
		}
		rows = append(rows, WideRow{Period: b.Period, Minutes: minutes})
	}

	return WideTable{Categories: categories, Rows: rows}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
