package entry

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the only accepted date format in the input CSV.
const DateLayout = "2006/01/02"

// Column headers as exported by the time tracker.
const (
	colDate    = "開始日期"
	colMinutes = "持續時間（分鐘）"
	colProject = "項目名稱"
	colTask    = "任務名稱"
	colNote    = "備註"
)

// LoadResult holds the parsed entries plus a diagnostic count of rows that
// were dropped because their date or duration could not be parsed.
type LoadResult struct {
	Entries []Entry
	Dropped int
}

// Load reads and parses the time-tracking CSV at path.
// A missing or empty file is a fatal error; malformed rows are not.
func Load(path string) (LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("opening input file %q: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads CSV rows from r into entries. The first row must be the header.
// Rows with unparseable dates or durations are dropped and counted, never
// defaulted, so they cannot silently corrupt aggregates.
func Parse(r io.Reader) (LoadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return LoadResult{}, fmt.Errorf("input file is empty")
	}
	if err != nil {
		return LoadResult{}, fmt.Errorf("reading CSV header: %w", err)
	}

	// Exports prepend a UTF-8 BOM; it is not part of the first header name.
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colDate, colMinutes, colProject, colTask} {
		if _, ok := idx[required]; !ok {
			return LoadResult{}, fmt.Errorf("input is missing column %q", required)
		}
	}

	var result LoadResult
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Dropped++
			continue
		}

		e, ok := parseRecord(record, idx)
		if !ok {
			result.Dropped++
			continue
		}
		result.Entries = append(result.Entries, e)
	}

	return result, nil
}

// parseRecord converts one CSV record into an Entry. It reports false when
// the date or duration field fails to parse.
func parseRecord(record []string, idx map[string]int) (Entry, bool) {
	field := func(name string) string {
		i, ok := idx[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	date, err := time.Parse(DateLayout, field(colDate))
	if err != nil {
		return Entry{}, false
	}

	minutes, err := strconv.Atoi(field(colMinutes))
	if err != nil || minutes < 0 {
		return Entry{}, false
	}

	note := field(colNote)
	code, contents := SplitNote(note)

	return Entry{
		Date:     date,
		Minutes:  minutes,
		Project:  field(colProject),
		Task:     field(colTask),
		Note:     note,
		Code:     code,
		Contents: contents,
	}, true
}
