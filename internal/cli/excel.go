package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/config"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/entry"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/stats"
)

// excelFileName is the workbook the excel command writes.
const excelFileName = "total_review.xlsx"

var excelCmd = LeafCommand{
	Use:   "excel",
	Short: "Export the full weekly split to an Excel workbook",
	StrFlags: []StringFlag{
		{Name: "input", Usage: "time-tracking CSV (default: from config)"},
		{Name: "config", Default: config.DefaultFile, Usage: "settings file"},
		{Name: "out", Default: ".", Usage: "directory for the workbook"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		configFlag, _ := cmd.Flags().GetString("config")
		inputFlag, _ := cmd.Flags().GetString("input")
		outFlag, _ := cmd.Flags().GetString("out")

		return runExcel(cmd, configFlag, inputFlag, outFlag)
	},
}.Build()

func runExcel(cmd *cobra.Command, configPath, inputPath, outDir string) error {
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

	buckets := stats.BucketWeeks(result.Entries)
	path := filepath.Join(outDir, excelFileName)
	if err := writeWorkbook(path, buckets); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, Title(fmt.Sprintf("Exported %d week(s) across %d entries", len(buckets), len(result.Entries))))
	if result.Dropped > 0 {
		_, _ = fmt.Fprintln(out, Warning(fmt.Sprintf("Dropped %d malformed row(s) while reading %s.", result.Dropped, cfg.InputFile)))
	}
	_, _ = fmt.Fprintf(out, "Saved: %s\n", path)
	return nil
}

// writeWorkbook renders the weekly split into four sheets: long and wide
// form, each for both axes.
func writeWorkbook(path string, buckets []stats.Bucket) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeLongSheet(f, "projects_long", "項目名稱", stats.BuildLong(buckets, stats.ByProject)); err != nil {
		return err
	}
	if err := writeLongSheet(f, "tasks_long", "任務名稱", stats.BuildLong(buckets, stats.ByTask)); err != nil {
		return err
	}
	if err := writeWideSheet(f, "projects_wide", stats.BuildWide(buckets, stats.ByProject)); err != nil {
		return err
	}
	if err := writeWideSheet(f, "tasks_wide", stats.BuildWide(buckets, stats.ByTask)); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func writeLongSheet(f *excelize.File, sheet, categoryHeader string, rows []stats.LongRow) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	headers := []any{"週期", categoryHeader, "總分鐘", "總小時"}
	if err := setRow(f, sheet, 1, headers); err != nil {
		return err
	}
	for i, r := range rows {
		values := []any{r.Period.Label(), r.Category, r.Minutes, r.Hours}
		if err := setRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func writeWideSheet(f *excelize.File, sheet string, table stats.WideTable) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	headers := make([]any, 0, len(table.Categories)+1)
	headers = append(headers, "週期")
	for _, c := range table.Categories {
		headers = append(headers, c)
	}
	if err := setRow(f, sheet, 1, headers); err != nil {
		return err
	}
	for i, row := range table.Rows {
		values := make([]any, 0, len(row.Minutes)+1)
		values = append(values, row.Period.Label())
		for _, mins := range row.Minutes {
			values = append(values, mins)
		}
		if err := setRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
