package sim

import "fmt"

// Observer receives every decision made during an evaluation. May be nil.
type Observer func(o Order, d Decision)

// Evaluate folds the strategy over orders and returns the accumulated totals.
// Orders are scored independently, so evaluating disjoint slices and merging the
// results gives the same totals as one pass over their concatenation.
func Evaluate(orders []Order, s Strategy) (Totals, error) {
	return EvaluateObserved(orders, s, nil)
}

// EvaluateObserved is Evaluate with a per-decision hook.
func EvaluateObserved(orders []Order, s Strategy, observe Observer) (Totals, error) {
	var totals Totals
	for i, o := range orders {
		d, err := s.Decide(o)
		if err != nil {
			return Totals{}, fmt.Errorf("strategy %s, order %d: %w", s.Name(), i, err)
		}
		d.Apply(o, &totals)
		if observe != nil {
			observe(o, d)
		}
	}
	return totals, nil
}
