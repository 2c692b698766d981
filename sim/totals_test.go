package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotals_Complete_ChargesInputUnscaled(t *testing.T) {
	var totals Totals
	totals.Complete(MAL, FullBonus)
	totals.Complete(MMA, DoubleBonus)

	assert.Equal(t, Points{M: 30, A: 20, L: 10}, totals.Input)
	// MAL: 28/28/28, MMA: 24/12/0
	assert.Equal(t, Points{M: 52, A: 40, L: 28}, totals.Output)
}

func TestTotals_Merge(t *testing.T) {
	a := Totals{Input: Points{M: 1, A: 2, L: 3}, Output: Points{M: 4, A: 5, L: 6}}
	a.Merge(Totals{Input: Points{M: 10}, Output: Points{L: 10}})
	assert.Equal(t, Points{M: 11, A: 2, L: 3}, a.Input)
	assert.Equal(t, Points{M: 4, A: 5, L: 16}, a.Output)
}

func TestTotals_Ratios(t *testing.T) {
	totals := Totals{Input: Points{M: 30, A: 40, L: 10}, Output: Points{M: 20, A: 40, L: 14}}
	r := totals.Ratios()
	assert.InDelta(t, 0.6667, r.M, 1e-4)
	assert.Equal(t, 1.0, r.A)
	assert.InDelta(t, 1.4, r.L, 1e-12)
}

func TestTotals_Ratios_ZeroInputSentinel(t *testing.T) {
	// GIVEN totals with no A input and no L input or output
	totals := Totals{Input: Points{M: 30}, Output: Points{M: 20, A: 5}}

	// WHEN ratios are computed
	r := totals.Ratios()

	// THEN the axis with output but no input is +Inf and the empty axis is NaN
	assert.True(t, math.IsInf(r.A, 1), "A ratio = %v, want +Inf", r.A)
	assert.True(t, math.IsNaN(r.L), "L ratio = %v, want NaN", r.L)
}
