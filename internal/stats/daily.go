package stats

import (
	"math"
	"sort"
	"time"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/entry"
)

// DayTotal is the summed minutes for one calendar day.
type DayTotal struct {
	Date    time.Time
	Minutes int
}

// DailyStats summarizes the per-day pattern of a week's entries. Peak and
// trough consider only days that have at least one entry; a day with no
// entries is excluded, not treated as a zero trough.
type DailyStats struct {
	Days    []DayTotal // days with entries, sorted by date
	Peak    DayTotal
	Trough  DayTotal
	HasDays bool
	Mean    float64
	Std     float64 // sample standard deviation
	CV      float64 // coefficient of variation, Std/Mean
	CVValid bool
	LowDays int // days under the low-productivity threshold
}

// Daily buckets entries by calendar day and derives the weekly day pattern.
// lowProductivityMin is the minutes-per-day floor under which a day counts
// toward LowDays.
func Daily(entries []entry.Entry, lowProductivityMin int) DailyStats {
	byDay := make(map[time.Time]int)
	for _, e := range entries {
		byDay[e.Date] += e.Minutes
	}
	if len(byDay) == 0 {
		return DailyStats{}
	}

	days := make([]DayTotal, 0, len(byDay))
	for d, m := range byDay {
		days = append(days, DayTotal{Date: d, Minutes: m})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	s := DailyStats{Days: days, HasDays: true, Peak: days[0], Trough: days[0]}
	total := 0
	for _, d := range days {
		total += d.Minutes
		if d.Minutes > s.Peak.Minutes {
			s.Peak = d
		}
		if d.Minutes < s.Trough.Minutes {
			s.Trough = d
		}
		if d.Minutes < lowProductivityMin {
			s.LowDays++
		}
	}

	n := float64(len(days))
	s.Mean = float64(total) / n

	if len(days) > 1 {
		var ss float64
		for _, d := range days {
			diff := float64(d.Minutes) - s.Mean
			ss += diff * diff
		}
		s.Std = math.Sqrt(ss / (n - 1))
		if s.Mean != 0 {
			s.CV = s.Std / s.Mean
			s.CVValid = true
		}
	}

	return s
}

// Cumulative returns the running total of minutes across the days, in date
// order, for the cumulative-hours chart.
func (s DailyStats) Cumulative() []DayTotal {
	out := make([]DayTotal, len(s.Days))
	running := 0
	for i, d := range s.Days {
		running += d.Minutes
		out[i] = DayTotal{Date: d.Date, Minutes: running}
	}
	return out
}
