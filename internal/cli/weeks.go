package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/config"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/entry"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/stats"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/week"
)

var weeksCmd = LeafCommand{
	Use:   "weeks",
	Short: "List every calendar week in the data span with its total",
	StrFlags: []StringFlag{
		{Name: "input", Usage: "time-tracking CSV (default: from config)"},
		{Name: "config", Default: config.DefaultFile, Usage: "settings file"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		configFlag, _ := cmd.Flags().GetString("config")
		inputFlag, _ := cmd.Flags().GetString("input")

		return runWeeks(cmd, configFlag, inputFlag)
	},
}.Build()

func runWeeks(cmd *cobra.Command, configPath, inputPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if inputPath != "" {
		cfg.InputFile = inputPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	result, err := entry.Load(cfg.InputFile)
	if err != nil {
		return err
	}
	if len(result.Entries) == 0 {
		return fmt.Errorf("no usable rows in %s", cfg.InputFile)
	}

	first, last := dataSpan(result.Entries)
	periods, err := week.Range(first, last)
	if err != nil {
		return err
	}

	totals := make(map[time.Time]int)
	for _, b := range stats.BucketWeeks(result.Entries) {
		sum := 0
		for _, mins := range b.ByProject {
			sum += mins
		}
		totals[b.Period.Start] = sum
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, Header(fmt.Sprintf("%-25s %10s %8s", "Week", "Minutes", "Hours")))
	for _, p := range periods {
		mins := totals[p.Start]
		line := fmt.Sprintf("%-25s %10d %8.1f", p.Label(), mins, float64(mins)/60.0)
		if mins == 0 {
			_, _ = fmt.Fprintln(out, Muted(line))
		} else {
			_, _ = fmt.Fprintln(out, line)
		}
	}
	if result.Dropped > 0 {
		_, _ = fmt.Fprintln(out, Warning(fmt.Sprintf("Dropped %d malformed row(s) while reading %s.", result.Dropped, cfg.InputFile)))
	}
	return nil
}

// dataSpan returns the earliest and latest entry dates.
func dataSpan(entries []entry.Entry) (time.Time, time.Time) {
	first, last := entries[0].Date, entries[0].Date
	for _, e := range entries[1:] {
		if e.Date.Before(first) {
			first = e.Date
		}
		if e.Date.After(last) {
			last = e.Date
		}
	}
	return first, last
}
