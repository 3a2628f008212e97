package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/config"
)

func execExcel(t *testing.T, inputPath, outDir string) (string, error) {
	t.Helper()
	stdout := new(bytes.Buffer)
	cmd := excelCmd
	cmd.SetOut(stdout)

	err := runExcel(cmd, config.DefaultFile, inputPath, outDir)
	return stdout.String(), err
}

func TestExcelWritesWorkbook(t *testing.T) {
	twoWeeks := `開始日期,持續時間（分鐘）,項目名稱,任務名稱,備註
2025/09/08,60,工作,開發,
2025/09/10,30,學習,閱讀,
2025/09/15,90,工作,開發,
`
	input := writeSampleCSV(t, twoWeeks)
	outDir := t.TempDir()

	stdout, err := execExcel(t, input, outDir)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Exported 2 week(s)")

	path := filepath.Join(outDir, "total_review.xlsx")
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{"projects_long", "tasks_long", "projects_wide", "tasks_wide"},
		f.GetSheetList())

	// Long form: header then week-ascending, category-ascending rows.
	header, err := f.GetCellValue("projects_long", "B1")
	require.NoError(t, err)
	assert.Equal(t, "項目名稱", header)

	period, err := f.GetCellValue("projects_long", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2025/09/08 ~ 2025/09/14", period)

	// Wide form: absent combination holds an explicit zero.
	cols, err := f.GetRows("projects_wide")
	require.NoError(t, err)
	require.Len(t, cols, 3)
	assert.Equal(t, []string{"週期", "學習", "工作"}, cols[0])
	assert.Equal(t, "0", cols[2][1]) // 學習 in the second week
}

func TestExcelEmptyInput(t *testing.T) {
	input := writeSampleCSV(t, "開始日期,持續時間（分鐘）,項目名稱,任務名稱,備註\n")

	_, err := execExcel(t, input, t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable rows")
}
