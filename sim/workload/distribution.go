package workload

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/inference-sim/mixology-sim/sim"
)

// ErrInvalidWeights is returned when a sampler is built from a malformed weight list.
var ErrInvalidWeights = errors.New("invalid sampling weights")

// KindSampler draws potion kinds.
type KindSampler interface {
	// Sample returns one catalog kind. Successive calls are independent.
	Sample(rng *rand.Rand) sim.Kind
}

// AliasSampler draws indices in [0, n) with probability proportional to integer weights
// in constant time per draw (Vose's alias method).
type AliasSampler struct {
	prob  []float64 // probability of keeping column i rather than taking its alias
	alias []int
}

// NewAliasSampler builds the alias table for weights. Every weight must be positive.
func NewAliasSampler(weights []int) (*AliasSampler, error) {
	n := len(weights)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty weight list", ErrInvalidWeights)
	}
	total := int64(0)
	for i, w := range weights {
		if w <= 0 {
			return nil, fmt.Errorf("%w: weight[%d] = %d, must be positive", ErrInvalidWeights, i, w)
		}
		total += int64(w)
	}

	// Work in integers scaled by n so every column's share compares exactly against total.
	scaled := make([]int64, n)
	var small, large []int
	for i, w := range weights {
		scaled[i] = int64(w) * int64(n)
		if scaled[i] < total {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	s := &AliasSampler{prob: make([]float64, n), alias: make([]int, n)}
	for len(small) > 0 && len(large) > 0 {
		l := small[len(small)-1]
		small = small[:len(small)-1]
		g := large[len(large)-1]
		large = large[:len(large)-1]

		s.prob[l] = float64(scaled[l]) / float64(total)
		s.alias[l] = g
		scaled[g] -= total - scaled[l]
		if scaled[g] < total {
			small = append(small, g)
		} else {
			large = append(large, g)
		}
	}
	for _, i := range append(small, large...) {
		s.prob[i] = 1
		s.alias[i] = i
	}
	return s, nil
}

// Len returns the number of outcomes.
func (s *AliasSampler) Len() int {
	return len(s.prob)
}

// SampleIndex draws one index.
func (s *AliasSampler) SampleIndex(rng *rand.Rand) int {
	i := rng.Intn(s.Len())
	if rng.Float64() < s.prob[i] {
		return i
	}
	return s.alias[i]
}

// Probability returns the exact probability of drawing index i.
func (s *AliasSampler) Probability(i int) float64 {
	p := s.prob[i]
	for j, a := range s.alias {
		if a == i && j != i {
			p += 1 - s.prob[j]
		}
	}
	return p / float64(s.Len())
}

// CatalogSampler draws potion kinds according to catalog weights.
type CatalogSampler struct {
	alias *AliasSampler
}

// NewCatalogSampler builds a sampler from one weight per catalog kind, indexed by Kind.
func NewCatalogSampler(weights []int) (*CatalogSampler, error) {
	if len(weights) != sim.NumKinds {
		return nil, fmt.Errorf("%w: got %d weights for %d kinds", ErrInvalidWeights, len(weights), sim.NumKinds)
	}
	alias, err := NewAliasSampler(weights)
	if err != nil {
		return nil, err
	}
	return &CatalogSampler{alias: alias}, nil
}

// NewDefaultSampler builds a sampler from the compiled-in catalog weights.
func NewDefaultSampler() (*CatalogSampler, error) {
	return NewCatalogSampler(sim.Weights())
}

func (s *CatalogSampler) Sample(rng *rand.Rand) sim.Kind {
	return sim.Kind(s.alias.SampleIndex(rng))
}

// Probability returns the probability of drawing k.
func (s *CatalogSampler) Probability(k sim.Kind) float64 {
	return s.alias.Probability(int(k))
}
