package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/entry"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/stats"
)

var (
	matrixHeaderStyle = lipgloss.NewStyle().Bold(true)
	matrixFooterStyle = lipgloss.NewStyle().Faint(true)
	matrixDotStyle    = lipgloss.NewStyle().Faint(true)
)

// renderMatrix produces the week-by-category table string for the visible
// scroll window.
func renderMatrix(t stats.WideTable, axis stats.GroupBy, scrollX, scrollY, visibleCols, visibleRows int) string {
	var b strings.Builder

	axisLabel := "projects"
	if axis == stats.ByTask {
		axisLabel = "tasks"
	}
	b.WriteString(matrixHeaderStyle.Render(fmt.Sprintf("--- Weekly totals by %s ---", axisLabel)))
	b.WriteString("\n")

	// Header row
	b.WriteString(matrixHeaderStyle.Render(padRight("Week", weekColWidth)))
	b.WriteString(" | ")
	b.WriteString(matrixHeaderStyle.Render(padCenter("Sum", categoryColWidth)))
	endCol := scrollX + visibleCols
	if endCol > len(t.Categories) {
		endCol = len(t.Categories)
	}
	for col := scrollX; col < endCol; col++ {
		b.WriteString(" | ")
		b.WriteString(matrixHeaderStyle.Render(padCenter(t.Categories[col], categoryColWidth)))
	}
	b.WriteString("\n")

	// Separator
	b.WriteString(strings.Repeat("-", weekColWidth))
	b.WriteString("-+-")
	b.WriteString(strings.Repeat("-", categoryColWidth))
	for col := scrollX; col < endCol; col++ {
		b.WriteString("-+-")
		b.WriteString(strings.Repeat("-", categoryColWidth))
	}
	b.WriteString("\n")

	// Week rows (respecting vertical scroll)
	endRow := scrollY + visibleRows
	if endRow > len(t.Rows) {
		endRow = len(t.Rows)
	}
	for rowIdx := scrollY; rowIdx < endRow; rowIdx++ {
		row := t.Rows[rowIdx]
		b.WriteString(padRight(row.Period.Label(), weekColWidth))

		rowTotal := 0
		for _, mins := range row.Minutes {
			rowTotal += mins
		}
		b.WriteString(" | ")
		b.WriteString(padCenter(entry.FormatMinutes(rowTotal), categoryColWidth))

		for col := scrollX; col < endCol; col++ {
			b.WriteString(" | ")
			mins := row.Minutes[col]
			if mins > 0 {
				b.WriteString(padCenter(entry.FormatMinutes(mins), categoryColWidth))
			} else {
				b.WriteString(matrixDotStyle.Render(padCenter(".", categoryColWidth)))
			}
		}
		b.WriteString("\n")
	}

	// Footer
	b.WriteString("\n")
	footer := fmt.Sprintf(
		"%d week(s), %d %s  |  ←/→/↑/↓ scroll  |  p projects  |  t tasks  |  q quit",
		len(t.Rows), len(t.Categories), axisLabel,
	)
	b.WriteString(matrixFooterStyle.Render(footer))
	b.WriteString("\n")

	return b.String()
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return string([]rune(s)[:width])
	}
	return s + strings.Repeat(" ", width-n)
}

func padCenter(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return string([]rune(s)[:width])
	}
	total := width - n
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
