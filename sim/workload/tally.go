package workload

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/inference-sim/mixology-sim/sim"
)

// Tally counts how often each kind was drawn, indexed by Kind.
type Tally [sim.NumKinds]int64

// Add counts one draw of k.
func (t *Tally) Add(k sim.Kind) {
	t[k]++
}

// AddOrder counts every slot of o.
func (t *Tally) AddOrder(o sim.Order) {
	for _, k := range o {
		t.Add(k)
	}
}

// Merge adds another tally into t.
func (t *Tally) Merge(other Tally) {
	for i, n := range other {
		t[i] += n
	}
}

// Count returns the number of draws of k.
func (t Tally) Count(k sim.Kind) int64 {
	return t[k]
}

// Total returns the number of draws across all kinds.
func (t Tally) Total() int64 {
	var total int64
	for _, n := range t {
		total += n
	}
	return total
}

// Frequency returns the observed share of draws that were k. Zero for an empty tally.
func (t Tally) Frequency(k sim.Kind) float64 {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return float64(t[k]) / float64(total)
}

// KindStat compares the observed count of one kind with its configured weight.
type KindStat struct {
	Kind      sim.Kind `json:"kind"`
	Observed  int64    `json:"observed"`
	Expected  float64  `json:"expected"`
	Frequency float64  `json:"frequency"`
	Target    float64  `json:"target"`    // weight / total weight
	Deviation float64  `json:"deviation"` // Frequency - Target
}

// FitReport is the sanity check of a tally against catalog weights.
type FitReport struct {
	Draws      int64      `json:"draws"`
	Kinds      []KindStat `json:"kinds"`
	ChiSquare  float64    `json:"chi_square"`
	PValue     float64    `json:"p_value"`
	MaxAbsDiff float64    `json:"max_abs_deviation"`
}

// GoodnessOfFit compares the tally with the catalog frequencies weight(k)/Σweight
// using Pearson's chi-square test with NumKinds-1 degrees of freedom.
func (t Tally) GoodnessOfFit() FitReport {
	weights := sim.Weights()
	total := t.Total()
	weightSum := 0
	for _, w := range weights {
		weightSum += w
	}

	report := FitReport{Draws: total, Kinds: make([]KindStat, 0, len(weights))}
	observed := make([]float64, len(weights))
	expected := make([]float64, len(weights))
	for i, w := range weights {
		k := sim.Kind(i)
		target := float64(w) / float64(weightSum)
		ks := KindStat{
			Kind:      k,
			Observed:  t[k],
			Expected:  target * float64(total),
			Frequency: t.Frequency(k),
			Target:    target,
		}
		ks.Deviation = ks.Frequency - ks.Target
		report.MaxAbsDiff = max(report.MaxAbsDiff, math.Abs(ks.Deviation))
		report.Kinds = append(report.Kinds, ks)
		observed[i] = float64(ks.Observed)
		expected[i] = ks.Expected
	}

	if total == 0 {
		return report
	}
	report.ChiSquare = stat.ChiSquare(observed, expected)
	report.PValue = distuv.ChiSquared{K: float64(len(weights) - 1)}.Survival(report.ChiSquare)
	return report
}
