package stats

import (
	"fmt"
	"sort"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/entry"
	"github.com/JunJie-Chang/Personal-Time-Management/internal/week"
)

// Options carries the tunable thresholds for a review run. Zero values are
// not usable; start from DefaultOptions.
type Options struct {
	HighThreshold      int // minutes above which an entry is overlong
	LowThreshold       int // minutes below which an entry is overshort
	TopK               int // categories listed per distribution
	LowProductivityMin int // minutes under which a day counts as low
}

// DefaultOptions returns the thresholds the original review workflow used.
func DefaultOptions() Options {
	return Options{
		HighThreshold:      DefaultHighThreshold,
		LowThreshold:       DefaultLowThreshold,
		TopK:               5,
		LowProductivityMin: 240,
	}
}

// Validate fails fast on threshold combinations that would let a single
// entry be flagged both overlong and overshort, or that make no sense.
func (o Options) Validate() error {
	if o.HighThreshold <= o.LowThreshold {
		return fmt.Errorf("high threshold (%d) must exceed low threshold (%d)", o.HighThreshold, o.LowThreshold)
	}
	if o.LowThreshold < 0 {
		return fmt.Errorf("low threshold must not be negative")
	}
	if o.TopK <= 0 {
		return fmt.Errorf("top-k must be positive")
	}
	if o.LowProductivityMin < 0 {
		return fmt.Errorf("low-productivity threshold must not be negative")
	}
	return nil
}

// CategoryShare is one category's slice of the weekly total.
type CategoryShare struct {
	Name    string
	Minutes int
	Share   float64 // fraction of the week's total minutes
}

// Axis holds one grouping axis (projects or tasks): raw totals, the ranked
// distribution, and its concentration metrics.
type Axis struct {
	Totals  map[string]int
	Ranked  []CategoryShare // sorted by minutes descending, name ascending
	Metrics Metrics
}

// Top returns the first k ranked categories.
func (a Axis) Top(k int) []CategoryShare {
	if k > len(a.Ranked) {
		k = len(a.Ranked)
	}
	return a.Ranked[:k]
}

// Summary is the composed weekly review consumed by every renderer.
type Summary struct {
	Period       week.Period
	Entries      []entry.Entry
	TotalMinutes int
	TotalHours   float64

	EntryCount int
	AvgEntry   float64
	MaxEntry   int
	MinEntry   int

	Daily DailyStats

	Projects Axis
	Tasks    Axis

	MissingContents int // entries whose note carries no contents part
	Anomalies       []Anomaly
	Dropped         int // malformed rows dropped at load time

	Observations []string
}

// Inputs bundles the independently computed stages handed to Compose. Every
// part must describe the same week; a mismatch is an upstream logic bug.
type Inputs struct {
	Period    week.Period
	Bucket    Bucket
	Entries   []entry.Entry
	Daily     DailyStats
	Projects  Metrics
	Tasks     Metrics
	Anomalies []Anomaly
	Dropped   int
}

// Compose assembles the weekly summary from precomputed parts. It packages
// and ranks; it does not rebucket or recompute metrics. Mismatched inputs
// are surfaced as errors immediately rather than silently coerced.
func Compose(in Inputs, opts Options) (Summary, error) {
	if !in.Bucket.Period.Equal(in.Period) {
		return Summary{}, fmt.Errorf("aggregate bucket covers %s, summary is for %s", in.Bucket.Period.Label(), in.Period.Label())
	}
	for _, e := range in.Entries {
		if !in.Period.Contains(e.Date) {
			return Summary{}, fmt.Errorf("entry dated %s is outside week %s", e.Date.Format(entry.DateLayout), in.Period.Label())
		}
	}
	if len(in.Entries) > 0 && (len(in.Bucket.ByProject) == 0 || len(in.Bucket.ByTask) == 0) {
		return Summary{}, fmt.Errorf("week %s has %d entries but an empty category set", in.Period.Label(), len(in.Entries))
	}

	s := Summary{
		Period:     in.Period,
		Entries:    in.Entries,
		EntryCount: len(in.Entries),
		Daily:      in.Daily,
		Anomalies:  in.Anomalies,
		Dropped:    in.Dropped,
		Projects:   Axis{Totals: in.Bucket.ByProject, Metrics: in.Projects},
		Tasks:      Axis{Totals: in.Bucket.ByTask, Metrics: in.Tasks},
	}

	for i, e := range in.Entries {
		s.TotalMinutes += e.Minutes
		if i == 0 || e.Minutes > s.MaxEntry {
			s.MaxEntry = e.Minutes
		}
		if i == 0 || e.Minutes < s.MinEntry {
			s.MinEntry = e.Minutes
		}
		if e.Contents == "" {
			s.MissingContents++
		}
	}
	s.TotalHours = float64(s.TotalMinutes) / 60.0
	if s.EntryCount > 0 {
		s.AvgEntry = float64(s.TotalMinutes) / float64(s.EntryCount)
	}

	if s.TotalMinutes > 0 && (!in.Projects.Valid || !in.Tasks.Valid) {
		return Summary{}, fmt.Errorf("week %s has %d logged minutes but undefined concentration metrics", in.Period.Label(), s.TotalMinutes)
	}

	s.Projects.Ranked = rankShares(in.Bucket.ByProject, s.TotalMinutes)
	s.Tasks.Ranked = rankShares(in.Bucket.ByTask, s.TotalMinutes)
	s.Observations = observations(s, opts)

	return s, nil
}

// Review runs the weekly pipeline for one period over already-normalized
// entries: filter, bucket, metrics, anomalies, daily pattern, compose.
func Review(period week.Period, all []entry.Entry, dropped int, opts Options) (Summary, error) {
	if err := opts.Validate(); err != nil {
		return Summary{}, err
	}

	entries := FilterWeek(all, period)

	bucket := Bucket{
		Period:    period,
		ByProject: make(map[string]int),
		ByTask:    make(map[string]int),
	}
	if buckets := BucketWeeks(entries); len(buckets) == 1 {
		bucket = buckets[0]
	}

	return Compose(Inputs{
		Period:    period,
		Bucket:    bucket,
		Entries:   entries,
		Daily:     Daily(entries, opts.LowProductivityMin),
		Projects:  Concentration(bucket.ByProject),
		Tasks:     Concentration(bucket.ByTask),
		Anomalies: DetectAnomalies(entries, opts.HighThreshold, opts.LowThreshold),
		Dropped:   dropped,
	}, opts)
}

// TopProject returns the largest project share, if any.
func (s Summary) TopProject() (CategoryShare, bool) {
	if len(s.Projects.Ranked) == 0 {
		return CategoryShare{}, false
	}
	return s.Projects.Ranked[0], true
}

// TopTask returns the largest task share, if any.
func (s Summary) TopTask() (CategoryShare, bool) {
	if len(s.Tasks.Ranked) == 0 {
		return CategoryShare{}, false
	}
	return s.Tasks.Ranked[0], true
}

func rankShares(totals map[string]int, totalMinutes int) []CategoryShare {
	shares := make([]CategoryShare, 0, len(totals))
	for name, mins := range totals {
		cs := CategoryShare{Name: name, Minutes: mins}
		if totalMinutes > 0 {
			cs.Share = float64(mins) / float64(totalMinutes)
		}
		shares = append(shares, cs)
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Minutes != shares[j].Minutes {
			return shares[i].Minutes > shares[j].Minutes
		}
		return shares[i].Name < shares[j].Name
	})
	return shares
}

// observations derives the rule-based remarks shown at the end of the
// report. Thresholds mirror the original review workflow.
func observations(s Summary, opts Options) []string {
	var out []string

	if top, ok := s.TopProject(); ok && top.Share > 0.5 {
		out = append(out, "Time is highly concentrated in a single project.")
	}
	if len(s.Daily.Days) > 1 && s.Daily.Std > s.Daily.Mean*0.5 {
		out = append(out, "Daily workload varies widely.")
	}
	if s.EntryCount > 0 {
		if s.AvgEntry < 30 {
			out = append(out, "Entries skew fragmented.")
		} else if s.AvgEntry > 120 {
			out = append(out, "Entries skew toward long deep-work blocks.")
		}
	}
	if s.Projects.Metrics.Valid {
		if s.Projects.Metrics.HHI > 0.30 {
			out = append(out, "Project concentration is high.")
		} else {
			out = append(out, "Projects are well diversified.")
		}
	}
	if s.Daily.LowDays > 2 {
		out = append(out, fmt.Sprintf("%d days fell under the productivity floor.", s.Daily.LowDays))
	}

	return out
}
