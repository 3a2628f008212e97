package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/config"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/stats"
)

// writeCharts generates the weekly chart HTML files: the project/task
// proportion pies, the cumulative-hours line, and the project-code detail
// bar. Returns the paths it wrote.
func writeCharts(outDir, prefix string, s stats.Summary, cfg config.Config) ([]string, error) {
	var produced []string

	proportion := filepath.Join(outDir, prefix+"_time_proportion.html")
	if err := renderProportionCharts(proportion, s, cfg); err != nil {
		return nil, err
	}
	produced = append(produced, proportion)

	cumulative := filepath.Join(outDir, prefix+"_time_aggregation_cumulative.html")
	if err := renderCumulativeChart(cumulative, s); err != nil {
		return nil, err
	}
	produced = append(produced, cumulative)

	// The detail bar only exists when coded notes with contents are present.
	if details, ok := codeTotals(s); ok {
		detailPath := filepath.Join(outDir, prefix+"_project_details.html")
		if err := renderDetailChart(detailPath, details, cfg); err != nil {
			return nil, err
		}
		produced = append(produced, detailPath)
	}

	return produced, nil
}

// renderProportionCharts writes one page holding the project and task pies.
func renderProportionCharts(path string, s stats.Summary, cfg config.Config) error {
	projectPie := charts.NewPie()
	projectPie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Time share by project"}))
	var projectItems []opts.PieData
	for _, cs := range s.Projects.Ranked {
		projectItems = append(projectItems, opts.PieData{Name: cs.Name, Value: cs.Minutes})
	}
	projectPie.AddSeries("projects", projectItems)

	taskPie := charts.NewPie()
	taskPie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Time share by task"}))
	var taskItems []opts.PieData
	for _, cs := range s.Tasks.Ranked {
		taskItems = append(taskItems, opts.PieData{
			Name:      cs.Name,
			Value:     cs.Minutes,
			ItemStyle: &opts.ItemStyle{Color: cfg.Color(cs.Name)},
		})
	}
	taskPie.AddSeries("tasks", taskItems)

	page := components.NewPage()
	page.AddCharts(projectPie, taskPie)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}

// renderCumulativeChart writes the cumulative worked-hours line over the
// week's days.
func renderCumulativeChart(path string, s stats.Summary) error {
	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Cumulative worked hours"}))

	var days []string
	var points []opts.LineData
	for _, d := range s.Daily.Cumulative() {
		days = append(days, d.Date.Format("01-02"))
		points = append(points, opts.LineData{Value: float64(d.Minutes) / 60.0})
	}
	line.SetXAxis(days).AddSeries("cumulative hours", points)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return line.Render(f)
}

// codeTotal is one project code's minutes plus the task that contributed
// most of them, which decides the bar color.
type codeTotal struct {
	Code         string
	Minutes      int
	DominantTask string
}

// codeTotals aggregates entries that carry both a project code and contents,
// sorted by minutes descending. Reports false when no entry qualifies.
func codeTotals(s stats.Summary) ([]codeTotal, bool) {
	minutes := make(map[string]int)
	byTask := make(map[string]map[string]int)
	for _, e := range s.Entries {
		if e.Code == "" || e.Contents == "" {
			continue
		}
		minutes[e.Code] += e.Minutes
		if byTask[e.Code] == nil {
			byTask[e.Code] = make(map[string]int)
		}
		byTask[e.Code][e.TaskLabel()] += e.Minutes
	}
	if len(minutes) == 0 {
		return nil, false
	}

	totals := make([]codeTotal, 0, len(minutes))
	for code, mins := range minutes {
		dominant := ""
		best := -1
		for task, taskMins := range byTask[code] {
			if taskMins > best || (taskMins == best && task < dominant) {
				dominant = task
				best = taskMins
			}
		}
		totals = append(totals, codeTotal{Code: code, Minutes: mins, DominantTask: dominant})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Minutes != totals[j].Minutes {
			return totals[i].Minutes > totals[j].Minutes
		}
		return totals[i].Code < totals[j].Code
	})
	return totals, true
}

// renderDetailChart writes the per-code bar chart, colored by each code's
// dominant task.
func renderDetailChart(path string, totals []codeTotal, cfg config.Config) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Time by project code",
		Subtitle: fmt.Sprintf("%d codes", len(totals)),
	}))

	var codes []string
	var values []opts.BarData
	for _, ct := range totals {
		codes = append(codes, ct.Code)
		values = append(values, opts.BarData{
			Value:     ct.Minutes,
			ItemStyle: &opts.ItemStyle{Color: cfg.Color(ct.DominantTask)},
		})
	}
	bar.SetXAxis(codes).AddSeries("minutes", values)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bar.Render(f)
}
