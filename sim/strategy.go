// Defines the completion strategies. A strategy looks at one order and decides which
// slots to complete and at what reward multiplier; scoring the decision is done by Evaluate.

package sim

import (
	"errors"
	"fmt"
)

// ErrInvariantViolation reports an order state that cannot arise from a three-slot order.
// It indicates a defect in generation or counting, never bad user input.
var ErrInvariantViolation = errors.New("invariant violation")

// Branch names the policy arm a strategy took for an order.
type Branch string

const (
	BranchAll         Branch = "all"          // every slot completed
	BranchSpecialOnly Branch = "special-only" // only the MAL slots completed
	BranchBest        Branch = "best-only"    // only the best-ranked slot completed
	BranchSkipSingle  Branch = "skip-single"  // single-axis slots skipped
)

// Decision is a strategy's verdict for one order.
type Decision struct {
	Branch     Branch
	Complete   [SlotsPerOrder]bool
	Multiplier Multiplier
}

// Slots returns how many slots the decision completes.
func (d Decision) Slots() int {
	n := 0
	for _, c := range d.Complete {
		if c {
			n++
		}
	}
	return n
}

// Apply scores the decision for order o into t.
func (d Decision) Apply(o Order, t *Totals) {
	for i, complete := range d.Complete {
		if complete {
			t.Complete(o[i], d.Multiplier)
		}
	}
}

// Strategy decides, per order, which slots to complete.
// Implementations are stateless across orders, so one Strategy may be shared by
// concurrent shards.
type Strategy interface {
	Name() string
	Description() string
	Decide(o Order) (Decision, error)
}

// specialMultipliers maps the number of MAL slots to the bonus for completing only those.
var specialMultipliers = map[int]Multiplier{1: NoBonus, 2: DoubleBonus, 3: FullBonus}

// singleAxisMultipliers maps the number of skipped single-axis slots to the bonus for
// the remaining ones. Counts with no entry fall back to FullBonus.
var singleAxisMultipliers = map[int]Multiplier{1: DoubleBonus}

func completeAll(m Multiplier) Decision {
	return Decision{Branch: BranchAll, Complete: [SlotsPerOrder]bool{true, true, true}, Multiplier: m}
}

func completeMatching(o Order, branch Branch, keep func(Kind) bool, m Multiplier) Decision {
	d := Decision{Branch: branch, Multiplier: m}
	for i, k := range o {
		d.Complete[i] = keep(k)
	}
	return d
}

// completeBest completes the first slot holding the best-ranked kind, with no bonus.
func completeBest(o Order) Decision {
	best := o.Best()
	d := Decision{Branch: BranchBest, Multiplier: NoBonus}
	for i, k := range o {
		if k == best {
			d.Complete[i] = true
			break
		}
	}
	return d
}

// completeSpecial completes only the MAL slots, with a bonus that grows with their count.
func completeSpecial(o Order) (Decision, error) {
	n := o.Count(Special)
	m, ok := specialMultipliers[n]
	if !ok {
		return Decision{}, fmt.Errorf("%w: order %s holds %d %s slots", ErrInvariantViolation, o, n, Special)
	}
	return completeMatching(o, BranchSpecialOnly, func(k Kind) bool { return k == Special }, m), nil
}

// skipSingleAxis completes every non-single-axis slot. The bonus shrinks when a
// single-axis slot had to be dropped.
func skipSingleAxis(o Order, singles int) Decision {
	m, ok := singleAxisMultipliers[singles]
	if !ok {
		m = FullBonus
	}
	return completeMatching(o, BranchSkipSingle, func(k Kind) bool { return !k.SingleAxis() }, m)
}

func singleAxisCount(o Order) (int, error) {
	s := o.SingleAxisCount()
	if s < 0 || s > SlotsPerOrder {
		return 0, fmt.Errorf("%w: order %s reports %d single-axis slots", ErrInvariantViolation, o, s)
	}
	return s, nil
}

// avoidSingleAxis is the shared "don't brew MMM, AAA or LLL" policy.
func avoidSingleAxis(o Order) (Decision, error) {
	s, err := singleAxisCount(o)
	if err != nil {
		return Decision{}, err
	}
	if s >= 2 {
		return completeBest(o), nil
	}
	return skipSingleAxis(o, s), nil
}

// CompleteAll completes every slot of every order at the full bonus.
type CompleteAll struct{}

func (CompleteAll) Name() string        { return "complete-all" }
func (CompleteAll) Description() string { return "Complete All Orders" }
func (CompleteAll) Decide(Order) (Decision, error) {
	return completeAll(FullBonus), nil
}

// CompleteAllUnlessSpecial completes only the MAL slots when present, otherwise everything.
type CompleteAllUnlessSpecial struct{}

func (CompleteAllUnlessSpecial) Name() string { return "complete-all-unless-mal" }
func (CompleteAllUnlessSpecial) Description() string {
	return "Complete All Orders Unless MAL, then only do MAL(s)"
}
func (CompleteAllUnlessSpecial) Decide(o Order) (Decision, error) {
	if o.Contains(Special) {
		return completeSpecial(o)
	}
	return completeAll(FullBonus), nil
}

// BestUnlessSpecial completes only the MAL slots when present, otherwise the best slot.
type BestUnlessSpecial struct{}

func (BestUnlessSpecial) Name() string { return "best-unless-mal" }
func (BestUnlessSpecial) Description() string {
	return "Complete Best Order Unless MAL, then do MAL(s)"
}
func (BestUnlessSpecial) Decide(o Order) (Decision, error) {
	if o.Contains(Special) {
		return completeSpecial(o)
	}
	return completeBest(o), nil
}

// BestUnlessSpecialThenAll completes everything when MAL is present, otherwise the best slot.
type BestUnlessSpecialThenAll struct{}

func (BestUnlessSpecialThenAll) Name() string { return "best-unless-mal-then-all" }
func (BestUnlessSpecialThenAll) Description() string {
	return "Complete Best Order Unless MAL, then do all"
}
func (BestUnlessSpecialThenAll) Decide(o Order) (Decision, error) {
	if o.Contains(Special) {
		return completeAll(FullBonus), nil
	}
	return completeBest(o), nil
}

// SkipSingleAxis never brews single-axis potions unless two or more of them leave
// nothing better to do, in which case only the best slot is completed.
type SkipSingleAxis struct{}

func (SkipSingleAxis) Name() string        { return "skip-single-axis" }
func (SkipSingleAxis) Description() string { return "Don't do MMM, AAA, or LLL" }
func (SkipSingleAxis) Decide(o Order) (Decision, error) {
	return avoidSingleAxis(o)
}

// BestUnlessSpecialThenSkipSingleAxis completes the best slot unless MAL is present,
// in which case it skips the single-axis slots.
type BestUnlessSpecialThenSkipSingleAxis struct{}

func (BestUnlessSpecialThenSkipSingleAxis) Name() string {
	return "best-unless-mal-then-skip-single-axis"
}
func (BestUnlessSpecialThenSkipSingleAxis) Description() string {
	return "Do Best Order Unless MAL, then do all but MMM, AAA, or LLL"
}
func (BestUnlessSpecialThenSkipSingleAxis) Decide(o Order) (Decision, error) {
	if !o.Contains(Special) {
		return completeBest(o), nil
	}
	s, err := singleAxisCount(o)
	if err != nil {
		return Decision{}, err
	}
	// With MAL in one slot s is at most 2; any other count takes the s == 0 arm.
	if s == 2 {
		return completeBest(o), nil
	}
	return skipSingleAxis(o, s), nil
}

// SkipSingleAxisUnlessSpecialThenAll completes everything when MAL is present and
// otherwise behaves like SkipSingleAxis.
type SkipSingleAxisUnlessSpecialThenAll struct{}

func (SkipSingleAxisUnlessSpecialThenAll) Name() string {
	return "skip-single-axis-unless-mal-then-all"
}
func (SkipSingleAxisUnlessSpecialThenAll) Description() string {
	return "Don't do MMM, AAA, or LLL, unless MAL exists then do all"
}
func (SkipSingleAxisUnlessSpecialThenAll) Decide(o Order) (Decision, error) {
	if o.Contains(Special) {
		return completeAll(FullBonus), nil
	}
	return avoidSingleAxis(o)
}
