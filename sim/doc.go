// Package sim provides the scoring core of the mixology order simulator.
//
// # Reading Guide
//
// Start with these files:
//   - kind.go: the fixed potion catalog (cost, reward, sampling weight, rank)
//   - order.go: the three-slot Order and its queries (Contains, Count, Best)
//   - strategy.go: the seven completion strategies and the helpers they share
//   - evaluate.go: the fold that scores a strategy over an order sequence
//
// # Architecture
//
// The sim package owns the domain types; supporting machinery lives in sub-packages:
//   - sim/workload/: alias-method sampling, order generation, per-kind tallies
//   - sim/shard/: parallel evaluation over contiguous slices of the order sequence
//   - sim/trace/: optional per-strategy decision statistics
//
// Strategies are stateless values registered in registry.go. Every strategy turns an
// Order into a Decision (which slots, which multiplier); Decision.Apply charges the
// completed slots into a Totals accumulator. Totals only ever grow by integer addition,
// so shard results merge exactly.
package sim
