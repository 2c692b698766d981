package sim

import "math"

// Totals is the running (input, output) accumulator pair for one strategy evaluation.
// Each evaluation or shard owns its own Totals; partial Totals combine with Merge.
type Totals struct {
	Input  Points `json:"input"`
	Output Points `json:"output"`
}

// Complete records one completed slot of kind k at multiplier m.
// Input is charged unscaled; output is scaled and truncated per axis.
func (t *Totals) Complete(k Kind, m Multiplier) {
	t.Input = t.Input.Add(k.Input())
	t.Output = t.Output.Add(k.Output().Scale(m))
}

// Merge adds another partial accumulator pair into t.
func (t *Totals) Merge(other Totals) {
	t.Input = t.Input.Add(other.Input)
	t.Output = t.Output.Add(other.Output)
}

// Ratios holds the output:input ratio for each axis.
//
// An axis with zero input has no finite ratio: it is +Inf when the axis produced
// output and NaN when it produced none. Both follow IEEE-754 float division.
type Ratios struct {
	M float64 `json:"M"`
	A float64 `json:"A"`
	L float64 `json:"L"`
}

// Ratios returns output/input per axis.
func (t Totals) Ratios() Ratios {
	return Ratios{
		M: ratio(t.Output.M, t.Input.M),
		A: ratio(t.Output.A, t.Input.A),
		L: ratio(t.Output.L, t.Input.L),
	}
}

func ratio(out, in int64) float64 {
	if in == 0 {
		if out == 0 {
			return math.NaN()
		}
		return math.Inf(1)
	}
	return float64(out) / float64(in)
}
