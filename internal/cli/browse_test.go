package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/entry"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/stats"
)

func browseFixture(t *testing.T) browseModel {
	t.Helper()
	result, err := entry.Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	buckets := stats.BucketWeeks(result.Entries)
	return browseModel{
		projects:   stats.BuildWide(buckets, stats.ByProject),
		tasks:      stats.BuildWide(buckets, stats.ByTask),
		axis:       stats.ByProject,
		termWidth:  120,
		termHeight: 40,
	}
}

func TestBrowseViewShowsMatrix(t *testing.T) {
	m := browseFixture(t)

	view := m.View()

	assert.Contains(t, view, "Weekly totals by projects")
	assert.Contains(t, view, "2025/09/08 ~ 2025/09/14")
	assert.Contains(t, view, "工作")
	assert.Contains(t, view, "學習")
}

func TestBrowseAxisToggle(t *testing.T) {
	m := browseFixture(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m = updated.(browseModel)

	assert.Equal(t, stats.ByTask, m.axis)
	assert.Contains(t, m.View(), "Weekly totals by tasks")
	assert.Contains(t, m.View(), "開發")
}

func TestBrowseScrollClamps(t *testing.T) {
	m := browseFixture(t)

	for i := 0; i < 10; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(browseModel)
	}

	assert.Equal(t, m.maxScrollY(), m.scrollY)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m = updated.(browseModel)
	assert.Zero(t, m.scrollY)
	assert.Zero(t, m.scrollX)
}

func TestBrowseQuitKeys(t *testing.T) {
	m := browseFixture(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
