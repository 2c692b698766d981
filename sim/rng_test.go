package sim

import (
	"math"
	"math/rand"
	"testing"
)

// === SimulationKey Tests ===

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// BDD: Same key+name produces same sequence
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 3; i++ {
		v1 := rng1.ForSubsystem(SubsystemChunk(3)).Float64()
		v2 := rng2.ForSubsystem(SubsystemChunk(3)).Float64()
		if v1 != v2 {
			t.Errorf("Value %d: got %v and %v, want identical", i, v1, v2)
		}
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// BDD: Drawing from chunk 0 doesn't affect chunk 1
	rngA := NewPartitionedRNG(NewSimulationKey(42))
	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemChunk(0)).Float64()
	}
	got := rngA.ForSubsystem(SubsystemChunk(1)).Float64()

	fresh := NewPartitionedRNG(NewSimulationKey(42))
	want := fresh.ForSubsystem(SubsystemChunk(1)).Float64()

	if got != want {
		t.Errorf("chunk 1 first value = %v, want %v (isolation broken)", got, want)
	}
}

func TestPartitionedRNG_ChunksDiffer(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	a := rng.ForSubsystem(SubsystemChunk(0)).Int63()
	b := rng.ForSubsystem(SubsystemChunk(1)).Int63()
	if a == b {
		t.Errorf("chunks 0 and 1 produced the same first value %d", a)
	}
}

func TestPartitionedRNG_OrdersUsesMasterSeed(t *testing.T) {
	// BDD: single-stream generation reproduces a plain rand seeded with the master seed
	seed := int64(42)
	ordersRNG := NewPartitionedRNG(NewSimulationKey(seed)).ForSubsystem(SubsystemOrders)
	directRNG := newRandFromSeed(seed)

	for i := 0; i < 10; i++ {
		got := ordersRNG.Float64()
		want := directRNG.Float64()
		if got != want {
			t.Errorf("Value %d: orders RNG = %v, direct RNG = %v", i, got, want)
		}
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	// BDD: Same name returns same *rand.Rand instance
	rng := NewPartitionedRNG(NewSimulationKey(42))

	if rng.ForSubsystem(SubsystemOrders) != rng.ForSubsystem(SubsystemOrders) {
		t.Error("ForSubsystem returned different instances for same name")
	}
}

func TestPartitionedRNG_Key(t *testing.T) {
	seed := int64(12345)
	rng := NewPartitionedRNG(NewSimulationKey(seed))

	if rng.Key() != SimulationKey(seed) {
		t.Errorf("Key() = %v, want %v", rng.Key(), seed)
	}
}

func TestPartitionedRNG_ZeroSeed(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(0))

	orders := rng.ForSubsystem(SubsystemOrders)
	chunk := rng.ForSubsystem(SubsystemChunk(0))
	if orders == nil || chunk == nil {
		t.Fatal("ForSubsystem returned nil with zero seed")
	}

	if orders.Float64() != newRandFromSeed(0).Float64() {
		t.Error("orders stream with seed 0 not matching direct RNG")
	}
}

func TestPartitionedRNG_NegativeSeed(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(math.MinInt64))

	val := rng.ForSubsystem(SubsystemChunk(7)).Float64()
	if val < 0 || val >= 1 {
		t.Errorf("Float64() returned %v, want [0, 1)", val)
	}
}

func TestPartitionedRNG_LazyInitialization(t *testing.T) {
	// BDD: Subsystems map is empty until ForSubsystem is called
	rng := NewPartitionedRNG(NewSimulationKey(42))

	if len(rng.subsystems) != 0 {
		t.Errorf("New PartitionedRNG has %d subsystems, want 0", len(rng.subsystems))
	}

	rng.ForSubsystem(SubsystemOrders)

	if len(rng.subsystems) != 1 {
		t.Errorf("After one ForSubsystem call, have %d subsystems, want 1", len(rng.subsystems))
	}
}

// === fnv1a64 Tests ===

func TestFnv1a64_Deterministic(t *testing.T) {
	input := "chunk_12"
	if fnv1a64(input) != fnv1a64(input) {
		t.Errorf("fnv1a64(%q) not deterministic", input)
	}
}

func TestFnv1a64_Collision(t *testing.T) {
	// Different subsystem names should produce different hashes (spot check)
	names := []string{SubsystemOrders, "", SubsystemChunk(0), SubsystemChunk(1), SubsystemChunk(100)}

	hashes := make(map[int64]string)
	for _, name := range names {
		h := fnv1a64(name)
		if existing, ok := hashes[h]; ok {
			t.Errorf("Hash collision: %q and %q both hash to %d", name, existing, h)
		}
		hashes[h] = name
	}
}

func TestSubsystemChunk(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{0, "chunk_0"},
		{1, "chunk_1"},
		{100, "chunk_100"},
	}

	for _, tt := range tests {
		if got := SubsystemChunk(tt.id); got != tt.want {
			t.Errorf("SubsystemChunk(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

// === Benchmark ===

func BenchmarkPartitionedRNG_ForSubsystem_CacheHit(b *testing.B) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	rng.ForSubsystem(SubsystemOrders)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rng.ForSubsystem(SubsystemOrders)
	}
}

// newRandFromSeed creates a *rand.Rand with the given seed.
func newRandFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
