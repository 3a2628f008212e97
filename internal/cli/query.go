package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/config"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/entry"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/query"
)

// queryTopContents limits how many contents buckets the shell prints per code.
const queryTopContents = 5

var queryCmd = LeafCommand{
	Use:   "query [code]",
	Short: "Look up totals for a project code",
	Args:  cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{
		{Name: "input", Usage: "time-tracking CSV (default: from config)"},
		{Name: "config", Default: config.DefaultFile, Usage: "settings file"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		configFlag, _ := cmd.Flags().GetString("config")
		inputFlag, _ := cmd.Flags().GetString("input")

		code := ""
		if len(args) == 1 {
			code = args[0]
		}
		return runQuery(cmd, configFlag, inputFlag, code, NewPromptFunc())
	},
}.Build()

func runQuery(cmd *cobra.Command, configPath, inputPath, code string, prompt PromptFunc) error {
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

	ix := query.Build(result.Entries)
	out := cmd.OutOrStdout()

	codes := ix.Codes()
	if len(codes) == 0 {
		return fmt.Errorf("no coded entries in %s", cfg.InputFile)
	}

	// One-shot mode when the code came from the argument.
	if code != "" {
		return printQueryResult(cmd, ix, code)
	}

	_, _ = fmt.Fprintln(out, Title(fmt.Sprintf("%d project code(s) indexed", len(codes))))
	_, _ = fmt.Fprintln(out, Muted(strings.Join(codes, ", ")))
	for {
		answer, err := prompt("Project code (q to quit)")
		if err != nil {
			return err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			continue
		}
		if answer == "q" {
			return nil
		}
		if err := printQueryResult(cmd, ix, answer); err != nil {
			_, _ = fmt.Fprintln(out, Warning(err.Error()))
		}
	}
}

func printQueryResult(cmd *cobra.Command, ix *query.Index, code string) error {
	r, ok := ix.Lookup(code)
	if !ok {
		return fmt.Errorf("unknown project code %q", code)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, Header(fmt.Sprintf("[%s]", r.Code)))
	_, _ = fmt.Fprintf(out, "Total: %s (%.1f h) across %d entries\n",
		entry.FormatMinutes(r.TotalMinutes), r.TotalHours(), r.Count)

	if top := r.TopContents(queryTopContents); len(top) > 0 {
		_, _ = fmt.Fprintln(out, "Top contents:")
		for _, ct := range top {
			_, _ = fmt.Fprintf(out, "  %-30s %s\n", ct.Contents, entry.FormatMinutes(ct.Minutes))
		}
	}
	if len(r.Recent) > 0 {
		_, _ = fmt.Fprintln(out, "Recent:")
		for _, e := range r.Recent {
			label := e.Contents
			if label == "" {
				label = e.TaskLabel()
			}
			_, _ = fmt.Fprintf(out, "  %s  %-30s %s\n",
				e.Date.Format(entry.DateLayout), label, entry.FormatMinutes(e.Minutes))
		}
	}
	return nil
}
