package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/config"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/entry"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/stats"
)

const (
	weekColWidth     = 25
	categoryColWidth = 12
)

var browseCmd = LeafCommand{
	Use:   "browse",
	Short: "Browse the week-by-category matrix interactively",
	StrFlags: []StringFlag{
		{Name: "input", Usage: "time-tracking CSV (default: from config)"},
		{Name: "config", Default: config.DefaultFile, Usage: "settings file"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		configFlag, _ := cmd.Flags().GetString("config")
		inputFlag, _ := cmd.Flags().GetString("input")

		return runBrowse(cmd, configFlag, inputFlag)
	},
}.Build()

func runBrowse(cmd *cobra.Command, configPath, inputPath string) error {
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
	m := browseModel{
		projects:   stats.BuildWide(buckets, stats.ByProject),
		tasks:      stats.BuildWide(buckets, stats.ByTask),
		axis:       stats.ByProject,
		termWidth:  120,
		termHeight: 40,
	}

	out := cmd.OutOrStdout()

	// Non-TTY fallback: print static table
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return printStaticMatrix(out, m)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err = p.Run()
	return err
}

type browseModel struct {
	projects   stats.WideTable
	tasks      stats.WideTable
	axis       stats.GroupBy
	scrollX    int // first visible category column
	scrollY    int // first visible week row
	termWidth  int
	termHeight int
}

func (m browseModel) table() stats.WideTable {
	if m.axis == stats.ByTask {
		return m.tasks
	}
	return m.projects
}

func (m browseModel) visibleCols() int {
	available := m.termWidth - weekColWidth - 3
	if available <= 0 {
		return 1
	}
	cols := available / (categoryColWidth + 3)
	if cols < 1 {
		cols = 1
	}
	if n := len(m.table().Categories); cols > n {
		cols = n
	}
	return cols
}

func (m browseModel) visibleRows() int {
	// Reserve lines for: title(1) + header(1) + separator(1) + footer(2)
	available := m.termHeight - 5
	if available < 1 {
		return 1
	}
	if n := len(m.table().Rows); available > n {
		return n
	}
	return available
}

func (m browseModel) maxScrollX() int {
	max := len(m.table().Categories) - m.visibleCols()
	if max < 0 {
		return 0
	}
	return max
}

func (m browseModel) maxScrollY() int {
	max := len(m.table().Rows) - m.visibleRows()
	if max < 0 {
		return 0
	}
	return max
}

func (m browseModel) clampScroll() browseModel {
	if m.scrollX > m.maxScrollX() {
		m.scrollX = m.maxScrollX()
	}
	if m.scrollX < 0 {
		m.scrollX = 0
	}
	if m.scrollY > m.maxScrollY() {
		m.scrollY = m.maxScrollY()
	}
	if m.scrollY < 0 {
		m.scrollY = 0
	}
	return m
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m.clampScroll(), nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.scrollX--
		case "right", "l":
			m.scrollX++
		case "up", "k":
			m.scrollY--
		case "down", "j":
			m.scrollY++
		case "pgup":
			m.scrollY -= m.visibleRows()
		case "pgdown":
			m.scrollY += m.visibleRows()
		case "home":
			m.scrollX, m.scrollY = 0, 0
		case "p":
			m.axis = stats.ByProject
		case "t":
			m.axis = stats.ByTask
		}
		return m.clampScroll(), nil
	}
	return m, nil
}

func (m browseModel) View() string {
	return renderMatrix(m.table(), m.axis, m.scrollX, m.scrollY, m.visibleCols(), m.visibleRows())
}

func printStaticMatrix(w io.Writer, m browseModel) error {
	t := m.table()
	_, err := fmt.Fprint(w, renderMatrix(t, m.axis, 0, 0, len(t.Categories), len(t.Rows)))
	return err
}
