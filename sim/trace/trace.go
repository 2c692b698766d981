package trace

import (
	"fmt"
	"sort"
)

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures branch statistics for every strategy decision.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// Enabled reports whether the level records anything.
func (l TraceLevel) Enabled() bool {
	return l == TraceLevelDecisions
}

// StrategyTrace aggregates the decisions one strategy made over an order sequence.
// Records are folded into counters as they arrive; individual orders are not retained.
type StrategyTrace struct {
	Strategy       string
	Orders         int64
	SlotsCompleted int64
	SlotsSkipped   int64
	Branches       map[string]int64  // branch name → orders that took it
	Multipliers    map[float64]int64 // multiplier → slots completed at it
}

// NewStrategyTrace creates an empty trace for the named strategy.
func NewStrategyTrace(strategy string) *StrategyTrace {
	return &StrategyTrace{
		Strategy:    strategy,
		Branches:    make(map[string]int64),
		Multipliers: make(map[float64]int64),
	}
}

// RecordDecision folds one decision into the trace.
func (st *StrategyTrace) RecordDecision(record DecisionRecord) {
	st.Orders++
	st.SlotsCompleted += int64(record.Completed)
	st.SlotsSkipped += int64(record.Skipped)
	st.Branches[record.Branch]++
	if record.Completed > 0 {
		st.Multipliers[record.Multiplier] += int64(record.Completed)
	}
}

// Merge folds another trace of the same strategy into st.
func (st *StrategyTrace) Merge(other *StrategyTrace) error {
	if other == nil {
		return nil
	}
	if other.Strategy != st.Strategy {
		return fmt.Errorf("cannot merge trace of %q into %q", other.Strategy, st.Strategy)
	}
	st.Orders += other.Orders
	st.SlotsCompleted += other.SlotsCompleted
	st.SlotsSkipped += other.SlotsSkipped
	for b, n := range other.Branches {
		st.Branches[b] += n
	}
	for m, n := range other.Multipliers {
		st.Multipliers[m] += n
	}
	return nil
}

// BranchNames returns the recorded branch names sorted alphabetically.
func (st *StrategyTrace) BranchNames() []string {
	names := make([]string, 0, len(st.Branches))
	for b := range st.Branches {
		names = append(names, b)
	}
	sort.Strings(names)
	return names
}

// MultiplierValues returns the recorded multipliers in ascending order.
func (st *StrategyTrace) MultiplierValues() []float64 {
	values := make([]float64, 0, len(st.Multipliers))
	for m := range st.Multipliers {
		values = append(values, m)
	}
	sort.Float64s(values)
	return values
}

// FormatMultiplier renders a multiplier for reports, e.g. "x1.4".
func FormatMultiplier(m float64) string {
	return fmt.Sprintf("x%.1f", m)
}
