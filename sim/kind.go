// Defines the fixed potion catalog: ten kinds with their input cost, output value and
// sampling weight. Declaration order is rank order.

package sim

import (
	"fmt"
	"strings"
)

// Kind identifies one of the ten catalog potions.
// The numeric value is the kind's rank: a higher Kind is a more valuable potion.
type Kind uint8

const (
	AAA Kind = iota
	MMM
	LLL
	AAM
	AAL
	MMA
	MML
	LLA
	LLM
	MAL
)

// NumKinds is the number of catalog kinds.
const NumKinds = 10

// KindInfo holds the fixed attributes of a catalog kind.
type KindInfo struct {
	Name       string
	Input      Points // paste cost per completed slot
	Output     Points // reward points per completed slot before multiplier
	Weight     int    // relative sampling weight
	SingleAxis bool   // cost and reward load only one axis (MMM, AAA, LLL)
}

// catalog is indexed by Kind.
var catalog = [NumKinds]KindInfo{
	AAA: {Name: "AAA", Input: Points{A: 30}, Output: Points{A: 20}, Weight: 5, SingleAxis: true},
	MMM: {Name: "MMM", Input: Points{M: 30}, Output: Points{M: 20}, Weight: 5, SingleAxis: true},
	LLL: {Name: "LLL", Input: Points{L: 30}, Output: Points{L: 20}, Weight: 5, SingleAxis: true},
	AAM: {Name: "AAM", Input: Points{M: 10, A: 20}, Output: Points{M: 10, A: 20}, Weight: 4},
	AAL: {Name: "AAL", Input: Points{A: 20, L: 10}, Output: Points{A: 20, L: 10}, Weight: 4},
	MMA: {Name: "MMA", Input: Points{M: 20, A: 10}, Output: Points{M: 20, A: 10}, Weight: 4},
	MML: {Name: "MML", Input: Points{M: 20, L: 10}, Output: Points{M: 20, L: 10}, Weight: 4},
	LLA: {Name: "LLA", Input: Points{A: 10, L: 20}, Output: Points{A: 10, L: 20}, Weight: 4},
	LLM: {Name: "LLM", Input: Points{M: 10, L: 20}, Output: Points{M: 10, L: 20}, Weight: 4},
	MAL: {Name: "MAL", Input: Points{M: 10, A: 10, L: 10}, Output: Points{M: 20, A: 20, L: 20}, Weight: 3},
}

// Special is the triple-axis kind whose output is the full value on every axis.
const Special = MAL

// Kinds returns every catalog kind in ascending rank order.
func Kinds() []Kind {
	kinds := make([]Kind, NumKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Weights returns the sampling weight of every kind, indexed by Kind.
func Weights() []int {
	weights := make([]int, NumKinds)
	for i, info := range catalog {
		weights[i] = info.Weight
	}
	return weights
}

// TotalWeight is the sum of all catalog weights.
func TotalWeight() int {
	total := 0
	for _, info := range catalog {
		total += info.Weight
	}
	return total
}

// Info returns the catalog entry for k. Panics if k is not a catalog kind.
func (k Kind) Info() KindInfo {
	if !k.Valid() {
		panic(fmt.Sprintf("unknown potion kind %d", k))
	}
	return catalog[k]
}

// Valid reports whether k is a catalog kind.
func (k Kind) Valid() bool {
	return k < NumKinds
}

func (k Kind) Input() Points  { return catalog[k].Input }
func (k Kind) Output() Points { return catalog[k].Output }
func (k Kind) Weight() int    { return catalog[k].Weight }

// SingleAxis reports whether k is one of the pure single-axis kinds (MMM, AAA, LLL).
func (k Kind) SingleAxis() bool {
	return k.Valid() && catalog[k].SingleAxis
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return catalog[k].Name
}

// ParseKind resolves a case-insensitive kind name such as "mal" or "MMA".
func ParseKind(name string) (Kind, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, info := range catalog {
		if info.Name == upper {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown potion kind %q", name)
}

// MarshalText encodes the kind by name so reports and golden files stay readable.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown potion kind %d", k)
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
