// Package week maps calendar dates to their enclosing Monday-Sunday week.
package week

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// Period is a half-open weekly interval [Start, Start+7d) anchored on Monday.
// Periods are never stored; they are always derived from a date via Of.
type Period struct {
	Start time.Time
}

// Of floors a date to the Monday of its week. It is idempotent and correct
// across month, year, and leap-year boundaries because it delegates to
// calendar arithmetic rather than counting days by hand.
func Of(d time.Time) Period {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return Period{Start: day.AddDate(0, 0, -offset)}
}

// End returns the period's Sunday (inclusive).
func (p Period) End() time.Time {
	return p.Start.AddDate(0, 0, 6)
}

// Until returns the exclusive upper bound, the following Monday.
func (p Period) Until() time.Time {
	return p.Start.AddDate(0, 0, 7)
}

// Contains reports whether the date falls inside the period.
func (p Period) Contains(d time.Time) bool {
	return !d.Before(p.Start) && d.Before(p.Until())
}

// Equal reports whether two periods cover the same week.
func (p Period) Equal(o Period) bool {
	return p.Start.Equal(o.Start)
}

// Label renders the period the way the review workbooks label weeks,
// e.g. "2025/09/08 ~ 2025/09/14".
func (p Period) Label() string {
	return fmt.Sprintf("%s ~ %s", p.Start.Format("2006/01/02"), p.End().Format("2006/01/02"))
}

// Range enumerates every weekly period whose Monday falls between Of(from)
// and Of(to), inclusive, so renderers can show calendar continuity even for
// weeks with no entries.
func Range(from, to time.Time) ([]Period, error) {
	start := Of(from).Start
	end := Of(to).Start
	if end.Before(start) {
		return nil, fmt.Errorf("range end %s precedes start %s", end.Format("2006/01/02"), start.Format("2006/01/02"))
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rrule.MO},
		Dtstart:   start,
	})
	if err != nil {
		return nil, err
	}

	var periods []Period
	for _, d := range r.Between(start, end, true) {
		periods = append(periods, Period{Start: time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)})
	}
	return periods, nil
}
