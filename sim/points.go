package sim

import (
	"fmt"
	"math"
)

// Points is a triple of per-axis totals: Mox (M), Aga (A) and Lye (L).
type Points struct {
	M int64 `json:"M"`
	A int64 `json:"A"`
	L int64 `json:"L"`
}

// Multiplier is the reward bonus applied to a completed slot's output.
type Multiplier float64

const (
	NoBonus     Multiplier = 1.0
	DoubleBonus Multiplier = 1.2
	FullBonus   Multiplier = 1.4
)

// Add returns the component-wise sum of p and q.
func (p Points) Add(q Points) Points {
	return Points{M: p.M + q.M, A: p.A + q.A, L: p.L + q.L}
}

// Scale multiplies every axis by m and truncates each result toward zero.
func (p Points) Scale(m Multiplier) Points {
	return Points{
		M: int64(math.Trunc(float64(p.M) * float64(m))),
		A: int64(math.Trunc(float64(p.A) * float64(m))),
		L: int64(math.Trunc(float64(p.L) * float64(m))),
	}
}

// Times multiplies every axis by an integer count.
func (p Points) Times(n int64) Points {
	return Points{M: p.M * n, A: p.A * n, L: p.L * n}
}

func (p Points) String() string {
	return fmt.Sprintf("M: %d, A: %d, L: %d", p.M, p.A, p.L)
}
