// Package query builds a read-only lookup index over project codes, the
// prefix part of an entry's note. Lookups are case-insensitive; the index is
// built once per run and never mutated afterwards.
package query

import (
	"sort"
	"strings"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/entry"
)

// ContentTotal is the summed minutes for one distinct note-contents value
// under a project code.
type ContentTotal struct {
	Contents string
	Minutes  int
}

// Result is everything the query shell shows for one project code.
type Result struct {
	Code         string // original casing from the first occurrence
	TotalMinutes int
	Count        int
	Contents     []ContentTotal // sorted by minutes descending
	Recent       []entry.Entry  // most recent entries, input order preserved
}

// TotalHours returns the code's total in fractional hours.
func (r Result) TotalHours() float64 {
	return float64(r.TotalMinutes) / 60.0
}

// TopContents returns the k largest contents buckets.
func (r Result) TopContents(k int) []ContentTotal {
	if k > len(r.Contents) {
		k = len(r.Contents)
	}
	return r.Contents[:k]
}

// Index maps folded project codes to their aggregated results.
type Index struct {
	byCode map[string]*Result
}

// Build indexes every entry that carries a project code. Entries without a
// code (empty note) are skipped; they have nothing to look up.
func Build(entries []entry.Entry) *Index {
	ix := &Index{byCode: make(map[string]*Result)}

	contents := make(map[string]map[string]int)
	for _, e := range entries {
		if e.Code == "" {
			continue
		}
		key := fold(e.Code)
		r := ix.byCode[key]
		if r == nil {
			r = &Result{Code: e.Code}
			ix.byCode[key] = r
			contents[key] = make(map[string]int)
		}
		r.TotalMinutes += e.Minutes
		r.Count++
		r.Recent = append(r.Recent, e)
		if e.Contents != "" {
			contents[key][e.Contents] += e.Minutes
		}
	}

	for key, r := range ix.byCode {
		for c, mins := range contents[key] {
			r.Contents = append(r.Contents, ContentTotal{Contents: c, Minutes: mins})
		}
		sort.Slice(r.Contents, func(i, j int) bool {
			if r.Contents[i].Minutes != r.Contents[j].Minutes {
				return r.Contents[i].Minutes > r.Contents[j].Minutes
			}
			return r.Contents[i].Contents < r.Contents[j].Contents
		})
		if len(r.Recent) > 3 {
			r.Recent = r.Recent[len(r.Recent)-3:]
		}
	}

	return ix
}

// Lookup resolves a code with case folding applied at lookup time.
func (ix *Index) Lookup(code string) (Result, bool) {
	r, ok := ix.byCode[fold(code)]
	if !ok {
		return Result{}, false
	}
	return *r, true
}

// Codes returns every indexed code in its original casing, sorted.
func (ix *Index) Codes() []string {
	codes := make([]string, 0, len(ix.byCode))
	for _, r := range ix.byCode {
		codes = append(codes, r.Code)
	}
	sort.Strings(codes)
	return codes
}

func fold(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
