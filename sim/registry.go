package sim

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned when a strategy name is not registered.
var ErrUnknownStrategy = errors.New("unknown strategy")

// strategies lists every strategy in report order.
var strategies = []Strategy{
	CompleteAll{},
	CompleteAllUnlessSpecial{},
	BestUnlessSpecial{},
	BestUnlessSpecialThenAll{},
	SkipSingleAxis{},
	BestUnlessSpecialThenSkipSingleAxis{},
	SkipSingleAxisUnlessSpecialThenAll{},
}

// strategyByName indexes strategies by Name.
var strategyByName = func() map[string]Strategy {
	byName := make(map[string]Strategy, len(strategies))
	for _, s := range strategies {
		byName[s.Name()] = s
	}
	return byName
}()

// ValidStrategies is the set of recognized strategy names.
var ValidStrategies = func() map[string]bool {
	valid := make(map[string]bool, len(strategies))
	for name := range strategyByName {
		valid[name] = true
	}
	return valid
}()

// IsValidStrategy returns true if name is a registered strategy.
func IsValidStrategy(name string) bool {
	return ValidStrategies[name]
}

// AllStrategies returns every strategy in report order.
func AllStrategies() []Strategy {
	return append([]Strategy(nil), strategies...)
}

// StrategyNames returns every strategy name in report order.
func StrategyNames() []string {
	names := make([]string, len(strategies))
	for i, s := range strategies {
		names[i] = s.Name()
	}
	return names
}

// NewStrategy looks up a strategy by name.
func NewStrategy(name string) (Strategy, error) {
	if !IsValidStrategy(name) {
		return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownStrategy, name, strings.Join(StrategyNames(), ", "))
	}
	return strategyByName[name], nil
}

// SelectStrategies resolves names in the order given. An empty list selects all strategies.
// Duplicate names are rejected.
func SelectStrategies(names []string) ([]Strategy, error) {
	if len(names) == 0 {
		return AllStrategies(), nil
	}
	seen := make(map[string]bool, len(names))
	selected := make([]Strategy, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if seen[name] {
			return nil, fmt.Errorf("strategy %q selected twice", name)
		}
		seen[name] = true
		s, err := NewStrategy(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, s)
	}
	return selected, nil
}
