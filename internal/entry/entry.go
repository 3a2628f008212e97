package entry

import (
	"strings"
	"time"
)

// Fallback buckets for entries whose project or task label is empty.
// The labels match the ones the tracker itself uses in its exports so that
// aggregates line up with historical workbooks.
const (
	UnspecifiedProject = "未指定項目"
	UnspecifiedTask    = "未指定任務"
)

// Entry represents a single logged activity from the time-tracking CSV.
// Entries are immutable values; every field is set once at load time.
type Entry struct {
	Date     time.Time // calendar day at midnight UTC
	Minutes  int
	Project  string
	Task     string
	Note     string
	Code     string // note prefix before the first underscore
	Contents string // note remainder after the first underscore
}

// Hours returns the duration in fractional hours, unrounded.
func (e Entry) Hours() float64 {
	return float64(e.Minutes) / 60.0
}

// ProjectLabel returns the project name, falling back to the explicit
// unspecified bucket so no entry is dropped from aggregates.
func (e Entry) ProjectLabel() string {
	if e.Project == "" {
		return UnspecifiedProject
	}
	return e.Project
}

// TaskLabel returns the task name or the unspecified bucket.
func (e Entry) TaskLabel() string {
	if e.Task == "" {
		return UnspecifiedTask
	}
	return e.Task
}

// SplitNote splits a note of the form "CODE_contents" on the first underscore.
// Without an underscore the whole note is the code and contents is empty.
func SplitNote(note string) (code, contents string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return "", ""
	}
	if i := strings.Index(note, "_"); i >= 0 {
		return strings.TrimSpace(note[:i]), strings.TrimSpace(note[i+1:])
	}
	return note, ""
}
