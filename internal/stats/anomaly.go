package stats

import "github.com/JunJie-Chang/Personal-Time-Management/internal/entry"

// Default anomaly thresholds in minutes. An entry strictly above the high
// threshold is overlong; strictly below the low threshold it is overshort.
const (
	DefaultHighThreshold = 360
	DefaultLowThreshold  = 5
)

// AnomalyKind classifies a flagged entry.
type AnomalyKind int

const (
	Overlong AnomalyKind = iota
	Overshort
)

func (k AnomalyKind) String() string {
	if k == Overshort {
		return "overshort"
	}
	return "overlong"
}

// Anomaly marks a single entry as overlong or overshort. Flags are computed
// per run and never persisted.
type Anomaly struct {
	Entry entry.Entry
	Kind  AnomalyKind
}

// DetectAnomalies flags entries whose duration exceeds high or falls below
// low. Config validation guarantees high > low, so no entry can carry both
// flags.
func DetectAnomalies(entries []entry.Entry, high, low int) []Anomaly {
	var flags []Anomaly
	for _, e := range entries {
		switch {
		case e.Minutes > high:
			flags = append(flags, Anomaly{Entry: e, Kind: Overlong})
		case e.Minutes < low:
			flags = append(flags, Anomaly{Entry: e, Kind: Overshort})
		}
	}
	return flags
}
