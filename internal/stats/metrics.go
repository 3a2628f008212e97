package stats

import "math"

// Metrics holds the concentration measures for one category distribution.
//
// Conventions are fixed across the whole report: Entropy uses the natural
// log (nats), and Gini is the pairwise mean-absolute-difference form
// Σ_i Σ_j |x_i − x_j| / (2 n Σ x).
type Metrics struct {
	HHI     float64
	Entropy float64
	Gini    float64
	Valid   bool // false when the distribution has no positive minutes
}

// Concentration computes HHI, Shannon entropy, and the Gini coefficient over
// a category→minutes distribution. Categories with zero minutes are excluded
// from the share distribution. A distribution with no positive minutes has no
// defined concentration; the zero-value sentinel (Valid=false) is returned so
// renderers can print "N/A" instead of an artifact.
func Concentration(totals map[string]int) Metrics {
	var xs []float64
	var total float64
	for _, m := range totals {
		if m > 0 {
			xs = append(xs, float64(m))
			total += float64(m)
		}
	}
	if total <= 0 {
		return Metrics{}
	}

	var hhi, entropy float64
	for _, x := range xs {
		p := x / total
		hhi += p * p
		entropy -= p * math.Log(p)
	}

	n := float64(len(xs))
	var diff float64
	for i := range xs {
		for j := range xs {
			diff += math.Abs(xs[i] - xs[j])
		}
	}
	gini := diff / (2 * n * total)

	return Metrics{HHI: hhi, Entropy: entropy, Gini: gini, Valid: true}
}
