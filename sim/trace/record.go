// Package trace provides decision-trace recording for per-strategy branch analysis.
// This package has no dependencies on sim/ or its sub-packages; it stores pure data types.
package trace

// DecisionRecord captures a single strategy decision for one order.
type DecisionRecord struct {
	Branch     string
	Completed  int     // slots completed
	Skipped    int     // slots left undone
	Multiplier float64 // bonus applied to the completed slots
}
