package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcentrationTwoCategories(t *testing.T) {
	// Shares 0.8 / 0.2.
	m := Concentration(map[string]int{"A": 240, "B": 60})
	require.True(t, m.Valid)

	assert.InDelta(t, 0.68, m.HHI, 1e-9)
	assert.InDelta(t, -(0.8*math.Log(0.8) + 0.2*math.Log(0.2)), m.Entropy, 1e-9)
	assert.InDelta(t, 0.5004, m.Entropy, 1e-4)
	assert.InDelta(t, 0.3, m.Gini, 1e-9)
}

func TestConcentrationSingleCategory(t *testing.T) {
	m := Concentration(map[string]int{"A": 300})
	require.True(t, m.Valid)

	assert.InDelta(t, 1.0, m.HHI, 1e-9)
	assert.InDelta(t, 0.0, m.Entropy, 1e-9)
	assert.InDelta(t, 0.0, m.Gini, 1e-9)
}

func TestConcentrationEqualShares(t *testing.T) {
	for _, n := range []int{2, 3, 5, 8} {
		totals := make(map[string]int, n)
		for i := 0; i < n; i++ {
			totals[string(rune('A'+i))] = 60
		}
		m := Concentration(totals)
		require.True(t, m.Valid)

		assert.InDelta(t, 1.0/float64(n), m.HHI, 1e-9, "HHI for n=%d", n)
		assert.InDelta(t, math.Log(float64(n)), m.Entropy, 1e-9, "entropy for n=%d", n)
		assert.InDelta(t, 0.0, m.Gini, 1e-9, "gini for n=%d", n)
	}
}

func TestConcentrationHHIRange(t *testing.T) {
	m := Concentration(map[string]int{"A": 10, "B": 70, "C": 120})
	require.True(t, m.Valid)
	assert.GreaterOrEqual(t, m.HHI, 1.0/3.0)
	assert.LessOrEqual(t, m.HHI, 1.0)
}

func TestConcentrationGiniScaleInvariant(t *testing.T) {
	base := map[string]int{"A": 30, "B": 90, "C": 180}
	scaled := make(map[string]int, len(base))
	for k, v := range base {
		scaled[k] = v * 7
	}

	assert.InDelta(t, Concentration(base).Gini, Concentration(scaled).Gini, 1e-9)
}

func TestConcentrationZeroMinuteCategoriesExcluded(t *testing.T) {
	with := Concentration(map[string]int{"A": 240, "B": 60, "C": 0})
	without := Concentration(map[string]int{"A": 240, "B": 60})

	assert.InDelta(t, without.HHI, with.HHI, 1e-9)
	assert.InDelta(t, without.Entropy, with.Entropy, 1e-9)
	assert.InDelta(t, without.Gini, with.Gini, 1e-9)
}

func TestConcentrationUndefined(t *testing.T) {
	assert.False(t, Concentration(nil).Valid)
	assert.False(t, Concentration(map[string]int{}).Valid)
	assert.False(t, Concentration(map[string]int{"A": 0, "B": 0}).Valid)
}
