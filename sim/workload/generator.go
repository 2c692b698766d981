package workload

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/inference-sim/mixology-sim/sim"
)

// Generated is the output of a generation pass: the shared, read-only order
// sequence plus how often each kind was drawn.
type Generated struct {
	Orders []sim.Order
	Tally  Tally
}

// GenerateOrders draws spec.NumOrders orders of three independent kinds each.
// Deterministic given the same spec (worker count does not affect the result).
func GenerateOrders(ctx context.Context, spec *WorkloadSpec, sampler KindSampler) (*Generated, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed))
	orders := make([]sim.Order, spec.NumOrders)

	if spec.ChunkSize == 0 {
		var tally Tally
		drawOrders(orders, sampler, rng.ForSubsystem(sim.SubsystemOrders), &tally)
		return &Generated{Orders: orders, Tally: tally}, nil
	}

	numChunks := spec.NumChunks()
	tallies := make([]Tally, numChunks)
	// Derive every chunk RNG up front: PartitionedRNG is not safe for concurrent use.
	rngs := make([]*rand.Rand, numChunks)
	for i := range rngs {
		rngs[i] = rng.ForSubsystem(sim.SubsystemChunk(i))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(spec.EffectiveWorkers())
	for i := 0; i < numChunks; i++ {
		start := i * spec.ChunkSize
		end := min(start+spec.ChunkSize, spec.NumOrders)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			drawOrders(orders[start:end], sampler, rngs[i], &tallies[i])
			logrus.Debugf("generated chunk %d/%d (%d orders)", i+1, numChunks, end-start)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("generating orders: %w", err)
	}

	var tally Tally
	for _, t := range tallies {
		tally.Merge(t)
	}
	return &Generated{Orders: orders, Tally: tally}, nil
}

// GenerateOrdersFromRNG draws n orders from a caller-owned RNG on the calling goroutine.
func GenerateOrdersFromRNG(n int, sampler KindSampler, rng *rand.Rand) *Generated {
	orders := make([]sim.Order, n)
	var tally Tally
	drawOrders(orders, sampler, rng, &tally)
	return &Generated{Orders: orders, Tally: tally}
}

func drawOrders(dst []sim.Order, sampler KindSampler, rng *rand.Rand, tally *Tally) {
	for i := range dst {
		first := sampler.Sample(rng)
		second := sampler.Sample(rng)
		third := sampler.Sample(rng)
		dst[i] = sim.NewOrder(first, second, third)
		tally.AddOrder(dst[i])
	}
}
