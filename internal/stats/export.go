package stats

import (
	"sort"
	"time"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/entry"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/week"
)

// TimesheetEntry is a single activity line in the PDF timesheet.
type TimesheetEntry struct {
	Minutes  int
	Contents string // note contents, or the task name when the note is bare
}

// TimesheetGroup groups a day's entries under one task with a subtotal.
type TimesheetGroup struct {
	Task         string
	Entries      []TimesheetEntry
	TotalMinutes int
}

// TimesheetDay holds all task groups for a single day.
type TimesheetDay struct {
	Date         time.Time
	Groups       []TimesheetGroup
	TotalMinutes int
}

// Timesheet is the detailed per-day breakdown of one week, preserving
// individual entries for the PDF export.
type Timesheet struct {
	Period       week.Period
	Days         []TimesheetDay
	TotalMinutes int
}

// BuildTimesheet groups a week's entries by day and task. Days without
// entries are omitted; groups within a day sort alphabetically and entries
// within a group keep their input order.
func BuildTimesheet(period week.Period, entries []entry.Entry) Timesheet {
	type dayTask struct {
		task    string
		entries []TimesheetEntry
		total   int
	}
	dayGroups := make(map[time.Time]map[string]*dayTask)

	for _, e := range entries {
		if !period.Contains(e.Date) {
			continue
		}
		if dayGroups[e.Date] == nil {
			dayGroups[e.Date] = make(map[string]*dayTask)
		}
		task := e.TaskLabel()
		dt := dayGroups[e.Date][task]
		if dt == nil {
			dt = &dayTask{task: task}
			dayGroups[e.Date][task] = dt
		}
		contents := e.Contents
		if contents == "" {
			contents = task
		}
		dt.entries = append(dt.entries, TimesheetEntry{Minutes: e.Minutes, Contents: contents})
		dt.total += e.Minutes
	}

	sheet := Timesheet{Period: period}
	for d := period.Start; d.Before(period.Until()); d = d.AddDate(0, 0, 1) {
		tasks, ok := dayGroups[d]
		if !ok {
			continue
		}

		var groups []TimesheetGroup
		for _, dt := range tasks {
			groups = append(groups, TimesheetGroup{
				Task:         dt.task,
				Entries:      dt.entries,
				TotalMinutes: dt.total,
			})
		}
		sort.Slice(groups, func(i, j int) bool {
			return groups[i].Task < groups[j].Task
		})

		dayTotal := 0
		for _, g := range groups {
			dayTotal += g.TotalMinutes
		}

		sheet.Days = append(sheet.Days, TimesheetDay{Date: d, Groups: groups, TotalMinutes: dayTotal})
		sheet.TotalMinutes += dayTotal
	}

	return sheet
}
