package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/inference-sim/mixology-sim/sim"
	"github.com/inference-sim/mixology-sim/sim/shard"
	"github.com/inference-sim/mixology-sim/sim/trace"
	"github.com/inference-sim/mixology-sim/sim/workload"
)

// Report is everything a run prints: the generation sanity check and one entry per strategy.
type Report struct {
	Orders     int                `json:"orders"`
	Seed       int64              `json:"seed"`
	Workers    int                `json:"workers"`
	Fit        workload.FitReport `json:"generation"`
	Strategies []StrategyReport   `json:"strategies"`
	Elapsed    time.Duration      `json:"-"`
}

// StrategyReport is one strategy's totals and derived ratios.
type StrategyReport struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Totals      sim.Totals          `json:"totals"`
	Ratios      RatioReport         `json:"ratios"`
	Trace       *trace.TraceSummary `json:"trace,omitempty"`
}

// RatioReport carries per-axis ratios. Non-finite ratios (zero input on an axis)
// are encoded in JSON as the strings "+Inf" and "NaN".
type RatioReport struct {
	M ratioValue `json:"M"`
	A ratioValue `json:"A"`
	L ratioValue `json:"L"`
}

type ratioValue float64

func (r ratioValue) MarshalJSON() ([]byte, error) {
	v := float64(r)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return json.Marshal(formatRatio(v))
	}
	return json.Marshal(v)
}

func formatRatio(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// NewReport assembles a report from a generation pass and its strategy results.
func NewReport(spec *workload.WorkloadSpec, workers int, gen *workload.Generated, results []*shard.Result) *Report {
	report := &Report{
		Orders:     len(gen.Orders),
		Seed:       spec.Seed,
		Workers:    workers,
		Fit:        gen.Tally.GoodnessOfFit(),
		Strategies: make([]StrategyReport, 0, len(results)),
	}
	for _, r := range results {
		ratios := r.Ratios()
		sr := StrategyReport{
			Name:        r.Strategy.Name(),
			Description: r.Strategy.Description(),
			Totals:      r.Totals,
			Ratios:      RatioReport{M: ratioValue(ratios.M), A: ratioValue(ratios.A), L: ratioValue(ratios.L)},
		}
		if r.Trace != nil {
			sr.Trace = trace.Summarize(r.Trace)
		}
		report.Strategies = append(report.Strategies, sr)
	}
	return report
}

// Write renders the report in the given format.
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatText, "":
		return r.WriteText(w)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText writes the human-readable console report.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Generation (%s orders, seed %d) ===\n", humanize.Comma(int64(r.Orders)), r.Seed)
	for _, ks := range r.Fit.Kinds {
		fmt.Fprintf(&b, "%s was found %s times (expected %s, %+.3f%%)\n",
			ks.Kind, humanize.Comma(ks.Observed), humanize.Commaf(math.Round(ks.Expected)), ks.Deviation*100)
	}
	fmt.Fprintf(&b, "chi-square: %.3f, p-value: %.4f\n\n", r.Fit.ChiSquare, r.Fit.PValue)

	for _, s := range r.Strategies {
		fmt.Fprintf(&b, "%s:\n", s.Description)
		fmt.Fprintf(&b, "\tinput points:\n\t%s\n\n", commaPoints(s.Totals.Input))
		fmt.Fprintf(&b, "\toutput points:\n\t%s\n\n", commaPoints(s.Totals.Output))
		fmt.Fprintf(&b, "\toutput:input:\n\tM: %s, A: %s, L: %s\n\n",
			formatRatio(float64(s.Ratios.M)), formatRatio(float64(s.Ratios.A)), formatRatio(float64(s.Ratios.L)))
		if s.Trace != nil {
			writeTraceSummary(&b, s.Trace)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTraceSummary(b *strings.Builder, ts *trace.TraceSummary) {
	fmt.Fprintf(b, "\tdecisions:\n\tcompleted %s of %s slots (%.1f%%), mean multiplier %.3f\n",
		humanize.Comma(ts.SlotsCompleted), humanize.Comma(ts.SlotsCompleted+ts.SlotsSkipped),
		ts.CompletionRate*100, ts.MeanMultiplier)
	writeShares(b, "branches", ts.BranchShare)
	writeShares(b, "multipliers", ts.MultiplierShare)
	b.WriteString("\n")
}

func writeShares(b *strings.Builder, title string, shares []trace.Share) {
	if len(shares) == 0 {
		return
	}
	fmt.Fprintf(b, "\t%s:\n", title)
	for _, sh := range shares {
		fmt.Fprintf(b, "\t  %-12s %6.2f%%\n", sh.Name, sh.Fraction*100)
	}
}

func commaPoints(p sim.Points) string {
	return fmt.Sprintf("M: %s, A: %s, L: %s", humanize.Comma(p.M), humanize.Comma(p.A), humanize.Comma(p.L))
}
