package rules

import (
	"strings"
	"testing"
)

type dummyRule struct {
	id   string
	tags []string
}

func (r *dummyRule) ID() string          { return r.id }
func (r *dummyRule) Title() string       { return "Dummy Rule" }
func (r *dummyRule) Description() string { return "Does nothing" }
func (r *dummyRule) HelpURL() string     { return "https://example.com/" + r.id }
func (r *dummyRule) Tags() []string      { return r.tags }

func resetRegistry(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := registry
	registry = make(map[string]Rule)
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		registry = saved
		mu.Unlock()
	})
}

func TestRegistry(t *testing.T) {
	resetRegistry(t)

	r1 := &dummyRule{id: "rule1"}
	r2 := &dummyRule{id: "rule2"}

	Register(r2)
	Register(r1)

	// Test List
	all := List()
	if len(all) != 2 {
		t.Fatalf("Expected 2 rules, got %d", len(all))
	}
	if all[0].ID() != "rule1" || all[1].ID() != "rule2" {
		t.Errorf("Expected rules sorted by id, got %s, %s", all[0].ID(), all[1].ID())
	}

	// Test Resolve
	selected, err := Resolve("rule1")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(selected) != 1 || selected[0].ID() != "rule1" {
		t.Errorf("Expected rule1, got %v", selected)
	}

	// Test Resolve All
	selected, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(selected) != 2 {
		t.Errorf("Expected 2 rules, got %d", len(selected))
	}

	// Test Resolve Unknown
	_, err = Resolve("unknown")
	if err == nil {
		t.Error("Expected error for unknown rule")
	}

	if _, ok := Lookup("rule2"); !ok {
		t.Error("Expected Lookup to find rule2")
	}
}

func TestRegister_DuplicatePanics(t *testing.T) {
	resetRegistry(t)
	Register(&dummyRule{id: "dup"})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate registration")
		}
	}()
	Register(&dummyRule{id: "dup"})
}

func TestResolve_Selectors(t *testing.T) {
	resetRegistry(t)
	Register(&dummyRule{id: "frame-a", tags: []string{"wcag2a", "wcag412"}})
	Register(&dummyRule{id: "heading-b", tags: []string{"best-practice"}})
	Register(&dummyRule{id: "contrast-c", tags: []string{"wcag2aa", "wcag143"}})

	tests := []struct {
		name     string
		selector string
		want     []string
		wantErr  string
	}{
		{name: "empty selects all", selector: " ", want: []string{"contrast-c", "frame-a", "heading-b"}},
		{name: "ids keep selector order", selector: "heading-b, frame-a", want: []string{"heading-b", "frame-a"}},
		{name: "tag term", selector: "tag:wcag412", want: []string{"frame-a"}},
		{name: "duplicates collapse", selector: "frame-a,tag:wcag2a,frame-a", want: []string{"frame-a"}},
		{name: "mixed", selector: "contrast-c,tag:best-practice,", want: []string{"contrast-c", "heading-b"}},
		{name: "unknown id", selector: "nope", wantErr: "rule not found: nope"},
		{name: "unknown tag", selector: "tag:wcag111", wantErr: "no rule tagged wcag111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.selector)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("Resolve(%q) error = %v, want %q", tt.selector, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.selector, err)
			}
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID())
			}
			if strings.Join(ids, ",") != strings.Join(tt.want, ",") {
				t.Fatalf("Resolve(%q) = %v, want %v", tt.selector, ids, tt.want)
			}
		})
	}
}
