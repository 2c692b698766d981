// Defines the Order value type: three potion slots drawn independently from the catalog.

package sim

import (
	"fmt"
	"strings"
)

// SlotsPerOrder is the number of potions in every order.
const SlotsPerOrder = 3

// Order is an immutable set of three potion slots.
// Slot position only matters to strategies that skip individual slots.
type Order [SlotsPerOrder]Kind

// NewOrder builds an order from three kinds.
func NewOrder(first, second, third Kind) Order {
	return Order{first, second, third}
}

// Contains reports whether any slot holds k.
func (o Order) Contains(k Kind) bool {
	return o[0] == k || o[1] == k || o[2] == k
}

// Count returns how many slots hold k (0 to 3).
func (o Order) Count(k Kind) int {
	n := 0
	for _, slot := range o {
		if slot == k {
			n++
		}
	}
	return n
}

// Best returns the highest-ranked kind in the order.
func (o Order) Best() Kind {
	return max(o[0], o[1], o[2])
}

// SingleAxisCount returns how many slots hold a pure single-axis kind.
func (o Order) SingleAxisCount() int {
	return o.Count(MMM) + o.Count(AAA) + o.Count(LLL)
}

func (o Order) String() string {
	return fmt.Sprintf("(%s,%s,%s)", o[0], o[1], o[2])
}

// ParseOrder parses "MMM,AAL,MAL" (parentheses and spaces optional) into an Order.
func ParseOrder(s string) (Order, error) {
	trimmed := strings.Trim(strings.TrimSpace(s), "()")
	parts := strings.Split(trimmed, ",")
	if len(parts) != SlotsPerOrder {
		return Order{}, fmt.Errorf("order %q: want %d slots, got %d", s, SlotsPerOrder, len(parts))
	}
	var o Order
	for i, part := range parts {
		k, err := ParseKind(part)
		if err != nil {
			return Order{}, fmt.Errorf("order %q slot %d: %w", s, i, err)
		}
		o[i] = k
	}
	return o, nil
}
