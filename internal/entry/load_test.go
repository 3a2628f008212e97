package entry

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "開始日期,持續時間（分鐘）,項目名稱,任務名稱,備註\n"

func TestParseBasicRows(t *testing.T) {
	input := csvHeader +
		"2025/09/08,60,研究,論文,AP_chapter 13\n" +
		"2025/09/09,180,研究,論文,\n"

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Dropped)
	require.Len(t, result.Entries, 2)

	e := result.Entries[0]
	assert.Equal(t, time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC), e.Date)
	assert.Equal(t, 60, e.Minutes)
	assert.Equal(t, "研究", e.Project)
	assert.Equal(t, "論文", e.Task)
	assert.Equal(t, "AP", e.Code)
	assert.Equal(t, "chapter 13", e.Contents)

	assert.Equal(t, "", result.Entries[1].Note)
}

func TestParseStripsBOM(t *testing.T) {
	input := "\ufeff" + csvHeader + "2025/09/08,60,研究,論文,\n"

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, 60, result.Entries[0].Minutes)
}

func TestParseDropsMalformedRows(t *testing.T) {
	input := csvHeader +
		"2025/09/08,abc,研究,論文,\n" + // non-numeric duration
		"2025-09-09,60,研究,論文,\n" + // wrong date format
		"2025/09/10,-5,研究,論文,\n" + // negative duration
		"2025/09/11,30,研究,論文,\n"

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Dropped)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, 30, result.Entries[0].Minutes)
}

func TestParseZeroMinutesKept(t *testing.T) {
	input := csvHeader + "2025/09/08,0,研究,論文,\n"

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Dropped)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, 0, result.Entries[0].Minutes)
}

func TestParseMissingColumn(t *testing.T) {
	input := "開始日期,項目名稱,任務名稱\n2025/09/08,研究,論文\n"

	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "持續時間（分鐘）")
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does-not-exist.csv")
	require.Error(t, err)
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{30, "30m"},
		{60, "1h"},
		{90, "1h 30m"},
		{480, "8h"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.minutes))
	}
}
