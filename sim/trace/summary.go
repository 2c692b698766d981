package trace

// Share is one bucket of a distribution and the fraction that fell into it.
type Share struct {
	Name     string  `json:"name"`
	Fraction float64 `json:"fraction"`
}

// TraceSummary aggregates statistics from a StrategyTrace.
type TraceSummary struct {
	Strategy        string  `json:"strategy"`
	TotalOrders     int64   `json:"total_orders"`
	SlotsCompleted  int64   `json:"slots_completed"`
	SlotsSkipped    int64   `json:"slots_skipped"`
	CompletionRate  float64 `json:"completion_rate"`  // completed / (completed + skipped)
	MeanMultiplier  float64 `json:"mean_multiplier"`  // over completed slots
	BranchShare     []Share `json:"branch_share"`     // fraction of orders per branch, by name
	MultiplierShare []Share `json:"multiplier_share"` // fraction of completed slots per multiplier, ascending
}

// Summarize computes aggregate statistics from a StrategyTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *StrategyTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}

	summary.Strategy = st.Strategy
	summary.TotalOrders = st.Orders
	summary.SlotsCompleted = st.SlotsCompleted
	summary.SlotsSkipped = st.SlotsSkipped

	if slots := st.SlotsCompleted + st.SlotsSkipped; slots > 0 {
		summary.CompletionRate = float64(st.SlotsCompleted) / float64(slots)
	}
	if st.Orders > 0 {
		for _, b := range st.BranchNames() {
			summary.BranchShare = append(summary.BranchShare, Share{
				Name:     b,
				Fraction: float64(st.Branches[b]) / float64(st.Orders),
			})
		}
	}
	if st.SlotsCompleted > 0 {
		weighted := 0.0
		for _, m := range st.MultiplierValues() {
			n := st.Multipliers[m]
			weighted += m * float64(n)
			summary.MultiplierShare = append(summary.MultiplierShare, Share{
				Name:     FormatMultiplier(m),
				Fraction: float64(n) / float64(st.SlotsCompleted),
			})
		}
		summary.MeanMultiplier = weighted / float64(st.SlotsCompleted)
	}

	return summary
}
