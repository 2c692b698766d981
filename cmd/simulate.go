package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/mixology-sim/sim"
	"github.com/inference-sim/mixology-sim/sim/shard"
	"github.com/inference-sim/mixology-sim/sim/trace"
	"github.com/inference-sim/mixology-sim/sim/workload"
)

// Simulate generates one shared order sequence and evaluates every selected strategy over it.
func Simulate(ctx context.Context, cfg *RunConfig) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run config: %w", err)
	}
	strategies, err := sim.SelectStrategies(cfg.Strategies)
	if err != nil {
		return nil, err
	}
	sampler, err := workload.NewDefaultSampler()
	if err != nil {
		return nil, fmt.Errorf("building sampler: %w", err)
	}

	startTime := time.Now()
	spec := &cfg.Workload
	logrus.Infof("Generating %d orders (seed=%d, chunk size=%d, workers=%d)",
		spec.NumOrders, spec.Seed, spec.ChunkSize, spec.EffectiveWorkers())
	gen, err := workload.GenerateOrders(ctx, spec, sampler)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Generated %d orders in %v", len(gen.Orders), time.Since(startTime))

	evaluator := shard.NewEvaluator(spec.Workers, trace.TraceLevel(cfg.Trace))
	results, err := evaluator.EvaluateAll(ctx, gen.Orders, strategies)
	if err != nil {
		return nil, err
	}

	report := NewReport(spec, evaluator.Workers(), gen, results)
	report.Elapsed = time.Since(startTime)
	return report, nil
}
