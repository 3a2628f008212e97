package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/config"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/entry"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/stats"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/week"
)

// weekStartLayout is the format the report command accepts for --week-start.
const weekStartLayout = "2006-01-02"

var reportCmd = LeafCommand{
	Use:   "report",
	Short: "Generate the weekly review report",
	StrFlags: []StringFlag{
		{Name: "week-start", Usage: "Monday of the week to review (YYYY-MM-DD, prompted if omitted)"},
		{Name: "input", Usage: "time-tracking CSV (default: from config)"},
		{Name: "config", Default: config.DefaultFile, Usage: "settings file"},
		{Name: "out", Default: ".", Usage: "directory for generated files"},
		{Name: "export", Usage: "additional export format (pdf)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "html", Usage: "also render the report to HTML"},
		{Name: "charts", Usage: "also generate chart HTML files"},
		{Name: "collect", Usage: "move generated files into the dated output directory"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		configFlag, _ := cmd.Flags().GetString("config")
		inputFlag, _ := cmd.Flags().GetString("input")
		weekFlag, _ := cmd.Flags().GetString("week-start")
		outFlag, _ := cmd.Flags().GetString("out")
		exportFlag, _ := cmd.Flags().GetString("export")
		htmlFlag, _ := cmd.Flags().GetBool("html")
		chartsFlag, _ := cmd.Flags().GetBool("charts")
		collectFlag, _ := cmd.Flags().GetBool("collect")

		return runReport(cmd, configFlag, inputFlag, weekFlag, outFlag, exportFlag, htmlFlag, chartsFlag, collectFlag, NewPromptKit(), time.Now)
	},
}.Build()

func runReport(
	cmd *cobra.Command,
	configPath, inputPath, weekStart, outDir, exportFormat string,
	htmlFlag, chartsFlag, collectFlag bool,
	pk PromptKit,
	nowFn func() time.Time,
) error {
	if exportFormat != "" && exportFormat != "pdf" {
		return fmt.Errorf("unsupported export format %q (supported: pdf)", exportFormat)
	}

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

	period, err := resolveWeek(weekStart, pk, nowFn())
	if err != nil {
		return err
	}

	summary, err := stats.Review(period, result.Entries, result.Dropped, cfg.Options())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, Title(fmt.Sprintf("Weekly review %s", period.Label())))
	_, _ = fmt.Fprintln(out, summaryText(summary, cfg.Options().TopK))
	if summary.Dropped > 0 {
		_, _ = fmt.Fprintln(out, Warning(fmt.Sprintf("Dropped %d malformed row(s) while reading %s.", summary.Dropped, cfg.InputFile)))
	}

	prefix := period.Start.Format("01-02")
	var produced []string

	mdPath := filepath.Join(outDir, prefix+"_weekly_report.md")
	if err := writeMarkdownReport(mdPath, summary, cfg.Options().TopK); err != nil {
		return err
	}
	produced = append(produced, mdPath)

	if htmlFlag {
		htmlPath := filepath.Join(outDir, prefix+"_weekly_report.html")
		if err := writeHTMLReport(htmlPath, summary, cfg.Options().TopK); err != nil {
			return err
		}
		produced = append(produced, htmlPath)
	}

	if chartsFlag {
		chartPaths, err := writeCharts(outDir, prefix, summary, cfg)
		if err != nil {
			return err
		}
		produced = append(produced, chartPaths...)
	}

	if exportFormat == "pdf" {
		sheet := stats.BuildTimesheet(period, summary.Entries)
		pdfPath := filepath.Join(outDir, prefix+"_timesheet.pdf")
		if err := renderTimesheetPDF(sheet, pdfPath); err != nil {
			return err
		}
		produced = append(produced, pdfPath)
	}

	for _, p := range produced {
		_, _ = fmt.Fprintf(out, "Saved: %s\n", p)
	}

	if collectFlag {
		target := filepath.Join(outDir, cfg.OutputDir, prefix)
		if err := collectFiles(target, produced); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Moved %d file(s) into %s\n", len(produced), target)
	}

	return nil
}

// resolveWeek parses the week-start flag, prompting when it is empty. The
// date must be a Monday and must not lie in the future.
func resolveWeek(weekStart string, pk PromptKit, now time.Time) (week.Period, error) {
	if weekStart == "" {
		answer, err := pk.Prompt(fmt.Sprintf("Week start (Monday, %s)", weekStartLayout))
		if err != nil {
			return week.Period{}, err
		}
		weekStart = answer
	}

	d, err := time.Parse(weekStartLayout, weekStart)
	if err != nil {
		return week.Period{}, fmt.Errorf("invalid week start %q (expected %s)", weekStart, weekStartLayout)
	}
	if d.Weekday() != time.Monday {
		return week.Period{}, fmt.Errorf("week start %q is a %s, expected a Monday", weekStart, d.Weekday())
	}
	if d.After(now) {
		return week.Period{}, fmt.Errorf("week start %q lies in the future", weekStart)
	}

	return week.Of(d), nil
}
