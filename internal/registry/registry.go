// Package registry provides a global registry of named automaton rules.
// Rule sets register themselves in init() functions, allowing the CLI and
// config layer to resolve rules by name without hardcoded tables.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-grid/internal/core"
)

// RuleInfo contains metadata about a registered rule.
type RuleInfo struct {
	ID    string
	Title string
	Rule  core.Rule
}

var (
	rules = make(map[string]RuleInfo)
	mu    sync.RWMutex
)

// Register adds a named rule to the registry.
// Typically called from an init() function.
// Panics if a rule with the same ID is already registered or the notation is invalid.
func Register(id, title, notation string) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := rules[id]; exists {
		panic(fmt.Sprintf("registry: rule %q already registered", id))
	}

	rules[id] = RuleInfo{
		ID:    id,
		Title: title,
		Rule:  core.MustParseRule(notation),
	}
}

// List returns information about all registered rules, sorted by ID.
func List() []RuleInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]RuleInfo, 0, len(rules))
	for _, info := range rules {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the rule registered under id.
func Lookup(id string) (RuleInfo, error) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := rules[id]
	if !ok {
		return RuleInfo{}, fmt.Errorf("registry: unknown rule %q", id)
	}
	return info, nil
}

// Exists checks if a rule with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := rules[id]
	return ok
}

// Resolve accepts either a registered rule ID or raw B/S notation.
// Raw notation matching a registered rule resolves to that entry.
func Resolve(nameOrNotation string) (RuleInfo, error) {
	key := strings.ToLower(strings.TrimSpace(nameOrNotation))
	if info, err := Lookup(key); err == nil {
		return info, nil
	}

	rule, err := core.ParseRule(nameOrNotation)
	if err != nil {
		return RuleInfo{}, fmt.Errorf("registry: %q is neither a known rule nor valid notation: %w", nameOrNotation, err)
	}

	for _, info := range List() {
		if info.Rule == rule {
			return info, nil
		}
	}
	return RuleInfo{ID: rule.String(), Title: "Custom", Rule: rule}, nil
}
