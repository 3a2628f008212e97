// Package config reads the optional weekreview.json settings file and
// applies defaults for everything it leaves out.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/stats"
)

// DefaultFile is the settings file looked up in the working directory.
const DefaultFile = "weekreview.json"

// Config holds every tunable of a review run. Flags override file values,
// file values override defaults.
type Config struct {
	InputFile          string            `json:"input_file"`
	OutputDir          string            `json:"output_dir"`
	HighThresholdMin   int               `json:"high_threshold_min"`
	LowThresholdMin    int               `json:"low_threshold_min"`
	TopK               int               `json:"top_k"`
	LowProductivityMin int               `json:"low_productivity_min"`
	TaskColors         map[string]string `json:"task_colors,omitempty"`
}

// Default returns the configuration the original review workflow used,
// including its task color palette for the charts.
func Default() Config {
	return Config{
		InputFile:          "時間軌跡.csv",
		OutputDir:          "integration",
		HighThresholdMin:   stats.DefaultHighThreshold,
		LowThresholdMin:    stats.DefaultLowThreshold,
		TopK:               5,
		LowProductivityMin: 240,
		TaskColors: map[string]string{
			"學科學習": "#1f568d",
			"課後學習": "#1d7fc4",
			"休閒閱讀": "#2d9ccc",
			"社團活動": "#a05eb7",
			"自主學習": "#b0145a",
			"創業項目": "#f18825",
			"競賽相關": "#f2b525",
			"課外籌備": "#39b5a4",
			"專題論文": "#eb4d39",
			"講座活動": "#14876b",
			"健康活動": "#19a44d",
			"有薪工作": "#9a5325",
			"媒體經營": "#9d5bb7",
			"個人專案": "#e73829",
			"應考考試": "#e04d37",
		},
	}
}

// FallbackColor is used for categories with no palette entry.
const FallbackColor = "#cccccc"

// Color returns the chart color for a task name.
func (c Config) Color(task string) string {
	if col, ok := c.TaskColors[task]; ok {
		return col
	}
	return FallbackColor
}

// Load reads the settings file at path, layered over defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return cfg, nil
}

// Options converts the config into the stats engine's option set.
func (c Config) Options() stats.Options {
	return stats.Options{
		HighThreshold:      c.HighThresholdMin,
		LowThreshold:       c.LowThresholdMin,
		TopK:               c.TopK,
		LowProductivityMin: c.LowProductivityMin,
	}
}

// Validate fails fast before any computation starts.
func (c Config) Validate() error {
	if c.InputFile == "" {
		return fmt.Errorf("input file must not be empty")
	}
	return c.Options().Validate()
}
