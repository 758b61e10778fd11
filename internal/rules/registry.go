package rules

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
)

var (
	registry = make(map[string]Rule)
	mu       sync.RWMutex
)

// Register adds r to the registry. Rule packages call it from init; a
// duplicate id panics.
func Register(r Rule) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[r.ID()]; exists {
		panic(fmt.Sprintf("rule %s already registered", r.ID()))
	}
	registry[r.ID()] = r
}

// List returns every registered rule sorted by id.
func List() []Rule {
	mu.RLock()
	defer mu.RUnlock()
	return listLocked()
}

func listLocked() []Rule {
	rules := make([]Rule, 0, len(registry))
	for _, r := range registry {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID() < rules[j].ID()
	})
	return rules
}

// Lookup returns the registered rule with the given id.
func Lookup(id string) (Rule, bool) {
	mu.RLock()
	defer mu.RUnlock()
	r, ok := registry[id]
	return r, ok
}

// Resolve selects rules by a comma-separated selector. Each term is a rule
// id or "tag:<axe tag>". An empty selector selects every rule. Rules are
// returned once each, in the order their first term matched them.
func Resolve(selector string) ([]Rule, error) {
	mu.RLock()
	defer mu.RUnlock()

	if strings.TrimSpace(selector) == "" {
		return listLocked(), nil
	}

	var selected []Rule
	seen := make(map[string]bool)
	add := func(r Rule) {
		if !seen[r.ID()] {
			seen[r.ID()] = true
			selected = append(selected, r)
		}
	}

	for _, term := range strings.Split(selector, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if tag, ok := strings.CutPrefix(term, "tag:"); ok {
			matched := false
			for _, r := range listLocked() {
				if slices.Contains(r.Tags(), tag) {
					add(r)
					matched = true
				}
			}
			if !matched {
				return nil, fmt.Errorf("no rule tagged %s", tag)
			}
			continue
		}
		r, ok := registry[term]
		if !ok {
			return nil, fmt.Errorf("rule not found: %s", term)
		}
		add(r)
	}
	return selected, nil
}
