// Package shard evaluates strategies over contiguous slices of a shared order sequence
// in parallel and merges the partial totals.
package shard

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/inference-sim/mixology-sim/sim"
	"github.com/inference-sim/mixology-sim/sim/trace"
)

// Range is a half-open [Start, End) slice of the order sequence.
type Range struct {
	Start, End int
}

// Len returns the number of orders in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Split partitions n orders into at most shards contiguous, near-equal ranges.
// Never returns an empty range; returns nil when n is zero.
func Split(n, shards int) []Range {
	if n <= 0 {
		return nil
	}
	shards = max(1, min(shards, n))
	ranges := make([]Range, 0, shards)
	base, extra := n/shards, n%shards
	start := 0
	for i := 0; i < shards; i++ {
		size := base
		if i < extra {
			size++
		}
		ranges = append(ranges, Range{Start: start, End: start + size})
		start += size
	}
	return ranges
}

// Result is one strategy's outcome over the whole order sequence.
type Result struct {
	Strategy sim.Strategy
	Totals   sim.Totals
	Trace    *trace.StrategyTrace // nil unless tracing is enabled
	Elapsed  time.Duration
}

// Ratios returns the output:input ratios of the result.
func (r *Result) Ratios() sim.Ratios {
	return r.Totals.Ratios()
}

// Evaluator runs strategies with a bounded number of concurrent shards.
// The order slice passed to it is only ever read.
type Evaluator struct {
	workers int
	level   trace.TraceLevel
}

// NewEvaluator creates an Evaluator. workers <= 0 uses one shard per CPU.
func NewEvaluator(workers int, level trace.TraceLevel) *Evaluator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Evaluator{workers: workers, level: level}
}

// Workers returns the shard count used per strategy.
func (e *Evaluator) Workers() int {
	return e.workers
}

// Evaluate runs one strategy over orders. The totals equal those of sim.Evaluate over
// the same orders regardless of the worker count.
func (e *Evaluator) Evaluate(ctx context.Context, orders []sim.Order, s sim.Strategy) (*Result, error) {
	start := time.Now()
	ranges := Split(len(orders), e.workers)
	partials := make([]sim.Totals, len(ranges))
	traces := make([]*trace.StrategyTrace, len(ranges))

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var observe sim.Observer
			if e.level.Enabled() {
				traces[i] = trace.NewStrategyTrace(s.Name())
				observe = recorder(traces[i])
			}
			totals, err := sim.EvaluateObserved(orders[r.Start:r.End], s, observe)
			if err != nil {
				return fmt.Errorf("shard %d [%d, %d): %w", i, r.Start, r.End, err)
			}
			partials[i] = totals
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Strategy: s}
	for _, p := range partials {
		result.Totals.Merge(p)
	}
	if e.level.Enabled() {
		result.Trace = trace.NewStrategyTrace(s.Name())
		for _, t := range traces {
			if err := result.Trace.Merge(t); err != nil {
				return nil, err
			}
		}
	}
	result.Elapsed = time.Since(start)
	logrus.Infof("evaluated %s over %d orders in %d shards (%v)", s.Name(), len(orders), len(ranges), result.Elapsed)
	return result, nil
}

// EvaluateAll runs every strategy in turn over the same orders, in the order given.
func (e *Evaluator) EvaluateAll(ctx context.Context, orders []sim.Order, strategies []sim.Strategy) ([]*Result, error) {
	results := make([]*Result, 0, len(strategies))
	for _, s := range strategies {
		r, err := e.Evaluate(ctx, orders, s)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

func recorder(st *trace.StrategyTrace) sim.Observer {
	return func(_ sim.Order, d sim.Decision) {
		completed := d.Slots()
		st.RecordDecision(trace.DecisionRecord{
			Branch:     string(d.Branch),
			Completed:  completed,
			Skipped:    sim.SlotsPerOrder - completed,
			Multiplier: float64(d.Multiplier),
		})
	}
}
