package workload

import (
	"fmt"
	"runtime"
)

// DefaultNumOrders is the number of orders simulated when none is configured.
const DefaultNumOrders = 10_000_000

// DefaultChunkSize is the number of orders drawn per independently seeded chunk.
const DefaultChunkSize = 1 << 20

// WorkloadSpec configures order generation.
type WorkloadSpec struct {
	Seed      int64 `yaml:"seed"`
	NumOrders int   `yaml:"num_orders"`
	// ChunkSize splits generation into independently seeded chunks that may be drawn in
	// parallel. 0 draws every order from a single stream.
	ChunkSize int `yaml:"chunk_size"`
	// Workers bounds how many chunks are drawn at once. 0 uses one worker per CPU.
	Workers int `yaml:"workers"`
}

// DefaultWorkloadSpec returns the reference run: ten million orders from seed 42.
func DefaultWorkloadSpec() *WorkloadSpec {
	return &WorkloadSpec{
		Seed:      42,
		NumOrders: DefaultNumOrders,
		ChunkSize: DefaultChunkSize,
	}
}

// Validate checks that all fields in the spec are valid.
func (s *WorkloadSpec) Validate() error {
	if s.NumOrders <= 0 {
		return fmt.Errorf("num_orders must be positive, got %d", s.NumOrders)
	}
	if s.ChunkSize < 0 {
		return fmt.Errorf("chunk_size must be non-negative, got %d", s.ChunkSize)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", s.Workers)
	}
	return nil
}

// EffectiveWorkers resolves Workers, mapping 0 to the CPU count.
func (s *WorkloadSpec) EffectiveWorkers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return runtime.NumCPU()
}

// NumChunks returns how many chunks generation is split into.
func (s *WorkloadSpec) NumChunks() int {
	if s.ChunkSize == 0 || s.NumOrders <= s.ChunkSize {
		return 1
	}
	return (s.NumOrders + s.ChunkSize - 1) / s.ChunkSize
}
