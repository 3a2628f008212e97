package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/entry"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/stats"
)

// summaryText renders the composed weekly summary as the plain statistical
// report. The same text backs the terminal output and the Markdown file, so
// the two can never drift apart.
func summaryText(s stats.Summary, topK int) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	if s.EntryCount == 0 || s.TotalMinutes <= 0 {
		line("No valid data for %s.", s.Period.Label())
		if s.Dropped > 0 {
			line("Dropped rows: %d", s.Dropped)
		}
		return b.String()
	}

	line("[Summary]")
	line("- Total time: %.1f min (%.2f hr)", float64(s.TotalMinutes), s.TotalHours)
	daily := fmt.Sprintf("- Daily average: %.1f min; stddev: %.1f min", s.Daily.Mean, s.Daily.Std)
	if s.Daily.CVValid {
		daily += fmt.Sprintf("; CV: %.3f", s.Daily.CV)
	}
	line("%s", daily)
	if top, ok := s.TopProject(); ok {
		line("- Top project: %s (%.2f%%); %s", top.Name, top.Share*100, metricsText(s.Projects.Metrics))
	}
	if top, ok := s.TopTask(); ok {
		line("- Top task: %s (%.2f%%); %s", top.Name, top.Share*100, metricsText(s.Tasks.Metrics))
	}

	line("")
	line("[Totals]")
	line("- Entries: %d", s.EntryCount)
	line("- Average entry: %.1f min", s.AvgEntry)
	line("- Longest: %d min; shortest: %d min", s.MaxEntry, s.MinEntry)
	line("- Low-productivity days: %d", s.Daily.LowDays)

	line("")
	line("[Daily pattern]")
	if s.Daily.HasDays {
		line("- Peak day: %s (%d min)", s.Daily.Peak.Date.Format(entry.DateLayout), s.Daily.Peak.Minutes)
		line("- Trough day: %s (%d min)", s.Daily.Trough.Date.Format(entry.DateLayout), s.Daily.Trough.Minutes)
	} else {
		line("- No daily data this week")
	}

	writeAxis := func(title string, axis stats.Axis) {
		line("")
		line("[%s]", title)
		for i, cs := range axis.Top(topK) {
			line("  %d. %s: %d min (%.2f%%)", i+1, cs.Name, cs.Minutes, cs.Share*100)
		}
		line("- %s", metricsText(axis.Metrics))
	}
	writeAxis("Project analysis", s.Projects)
	writeAxis("Task analysis", s.Tasks)

	line("")
	line("[Data quality]")
	line("- Entries without note contents: %d", s.MissingContents)
	line("- Dropped rows: %d", s.Dropped)

	line("")
	line("[Anomalies]")
	if len(s.Anomalies) == 0 {
		line("- None")
	}
	for _, a := range s.Anomalies {
		line("- %s %s: %s (%s)", a.Entry.Date.Format(entry.DateLayout), a.Entry.TaskLabel(), entry.FormatMinutes(a.Entry.Minutes), a.Kind)
	}

	if len(s.Observations) > 0 {
		line("")
		line("[Observations]")
		for _, o := range s.Observations {
			line("- %s", o)
		}
	}

	return b.String()
}

// metricsText formats the concentration triple, printing N/A for weeks whose
// distribution is undefined.
func metricsText(m stats.Metrics) string {
	if !m.Valid {
		return "HHI=N/A, Entropy=N/A, Gini=N/A"
	}
	return fmt.Sprintf("HHI=%.3f, Entropy=%.3f, Gini=%.3f", m.HHI, m.Entropy, m.Gini)
}

// writeMarkdownReport saves the statistical report as a Markdown file, with
// the report body inside a preformatted block the way the review archive
// stores it.
func writeMarkdownReport(path string, s stats.Summary, topK int) error {
	var b strings.Builder
	b.WriteString("# Weekly Statistical Report\n\n")
	fmt.Fprintf(&b, "Period: %s\n\n", s.Period.Label())
	b.WriteString("```\n")
	b.WriteString(summaryText(s, topK))
	b.WriteString("```\n")

	return os.WriteFile(path, []byte(b.String()), 0644)
}
