package sim

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/inference-sim/mixology-sim/sim/internal/testutil"
)

func goldenOrders(t *testing.T, raw [][]string) []Order {
	t.Helper()
	orders := make([]Order, len(raw))
	for i, slots := range raw {
		if len(slots) != SlotsPerOrder {
			t.Fatalf("golden order %d has %d slots", i, len(slots))
		}
		for j, name := range slots {
			k, err := ParseKind(name)
			if err != nil {
				t.Fatalf("golden order %d: %v", i, err)
			}
			orders[i][j] = k
		}
	}
	return orders
}

func goldenTotals(g testutil.GoldenTotals) Totals {
	return Totals{
		Input:  Points{M: g.Input.M, A: g.Input.A, L: g.Input.L},
		Output: Points{M: g.Output.M, A: g.Output.A, L: g.Output.L},
	}
}

// TestEvaluate_GoldenDataset verifies every strategy against hand-checked totals
// for literal order sets.
func TestEvaluate_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)
	for _, tc := range dataset.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			orders := goldenOrders(t, tc.Orders)
			if len(tc.Expected) != len(AllStrategies()) {
				t.Fatalf("golden case covers %d strategies, want %d", len(tc.Expected), len(AllStrategies()))
			}
			for _, s := range AllStrategies() {
				want, ok := tc.Expected[s.Name()]
				if !ok {
					t.Fatalf("no golden totals for %s", s.Name())
				}
				got, err := Evaluate(orders, s)
				if err != nil {
					t.Fatalf("%s: %v", s.Name(), err)
				}
				if diff := cmp.Diff(goldenTotals(want), got); diff != "" {
					t.Errorf("%s totals mismatch (-want +got):\n%s", s.Name(), diff)
				}
			}
		})
	}
}

func TestEvaluate_EndToEndTripleMMM(t *testing.T) {
	// GIVEN a single order of three pure-M potions
	orders := []Order{NewOrder(MMM, MMM, MMM)}

	// WHEN every slot is completed at the full bonus
	all, err := Evaluate(orders, CompleteAll{})
	if err != nil {
		t.Fatal(err)
	}
	// THEN each 20*1.4 truncates to 28, three times
	if want := (Totals{Input: Points{M: 90}, Output: Points{M: 84}}); all != want {
		t.Errorf("complete-all = %+v, want %+v", all, want)
	}

	// WHEN single-axis potions are avoided (s = 3)
	skip, err := Evaluate(orders, SkipSingleAxis{})
	if err != nil {
		t.Fatal(err)
	}
	// THEN only the best slot is brewed, once, without bonus
	if want := (Totals{Input: Points{M: 30}, Output: Points{M: 20}}); skip != want {
		t.Errorf("skip-single-axis = %+v, want %+v", skip, want)
	}
	testutil.AssertFloat64Equal(t, "ratio M", 2.0/3.0, skip.Ratios().M, 1e-9)
}

func TestEvaluate_CompleteAllConservation(t *testing.T) {
	// Output per axis equals the per-slot truncated 1.4x reward summed over every slot.
	orders := []Order{
		NewOrder(MMA, AAL, LLM),
		NewOrder(MAL, AAA, MML),
		NewOrder(LLA, LLA, AAM),
	}
	var wantIn, wantOut Points
	for _, o := range orders {
		for _, k := range o {
			wantIn = wantIn.Add(k.Input())
			wantOut = wantOut.Add(k.Output().Scale(FullBonus))
		}
	}
	got, err := Evaluate(orders, CompleteAll{})
	if err != nil {
		t.Fatal(err)
	}
	if got.Input != wantIn || got.Output != wantOut {
		t.Errorf("got %+v, want input %v output %v", got, wantIn, wantOut)
	}
}

func randomOrders(seed int64, n int) []Order {
	rng := rand.New(rand.NewSource(seed))
	orders := make([]Order, n)
	for i := range orders {
		orders[i] = NewOrder(Kind(rng.Intn(NumKinds)), Kind(rng.Intn(NumKinds)), Kind(rng.Intn(NumKinds)))
	}
	return orders
}

func TestEvaluate_Linearity(t *testing.T) {
	// GIVEN a random order sequence split into two disjoint halves
	orders := randomOrders(7, 5000)
	a, b := orders[:1234], orders[1234:]

	for _, s := range AllStrategies() {
		t.Run(s.Name(), func(t *testing.T) {
			whole, err := Evaluate(orders, s)
			if err != nil {
				t.Fatal(err)
			}
			left, err := Evaluate(a, s)
			if err != nil {
				t.Fatal(err)
			}
			right, err := Evaluate(b, s)
			if err != nil {
				t.Fatal(err)
			}

			// THEN evaluating the parts and merging equals evaluating the whole
			left.Merge(right)
			if diff := cmp.Diff(whole, left); diff != "" {
				t.Errorf("merged halves differ from whole (-whole +merged):\n%s", diff)
			}
		})
	}
}

func TestEvaluate_EmptyOrders(t *testing.T) {
	got, err := Evaluate(nil, CompleteAll{})
	if err != nil {
		t.Fatal(err)
	}
	if got != (Totals{}) {
		t.Errorf("empty evaluation = %+v, want zero", got)
	}
}

func TestEvaluate_ZeroInputAxisReportsSentinel(t *testing.T) {
	// Only pure-M potions: A and L see neither input nor output.
	got, err := Evaluate([]Order{NewOrder(MMM, MMM, MMM)}, CompleteAll{})
	if err != nil {
		t.Fatal(err)
	}
	r := got.Ratios()
	if !math.IsNaN(r.A) || !math.IsNaN(r.L) {
		t.Errorf("ratios A=%v L=%v, want NaN", r.A, r.L)
	}
}

// brokenStrategy fails on orders holding its trigger kind.
type brokenStrategy struct{ trigger Kind }

func (b brokenStrategy) Name() string        { return "broken" }
func (b brokenStrategy) Description() string { return "fails on trigger" }
func (b brokenStrategy) Decide(o Order) (Decision, error) {
	if o.Contains(b.trigger) {
		return Decision{}, ErrInvariantViolation
	}
	return completeAll(NoBonus), nil
}

func TestEvaluate_InvariantViolationAborts(t *testing.T) {
	orders := []Order{NewOrder(AAA, AAA, AAA), NewOrder(MAL, AAA, AAA)}
	_, err := Evaluate(orders, brokenStrategy{trigger: MAL})
	if !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("err = %v, want ErrInvariantViolation", err)
	}
}

func TestEvaluateObserved_SeesEveryDecision(t *testing.T) {
	orders := randomOrders(3, 100)
	seen := 0
	branches := map[Branch]int{}
	_, err := EvaluateObserved(orders, BestUnlessSpecialThenAll{}, func(o Order, d Decision) {
		if o != orders[seen] {
			t.Errorf("observer got order %s at position %d, want %s", o, seen, orders[seen])
		}
		seen++
		branches[d.Branch]++
	})
	if err != nil {
		t.Fatal(err)
	}
	if seen != len(orders) {
		t.Errorf("observer called %d times, want %d", seen, len(orders))
	}
	if branches[BranchAll]+branches[BranchBest] != len(orders) {
		t.Errorf("unexpected branches %v", branches)
	}
}
