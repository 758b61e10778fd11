package converter

import (
	"sort"

	"axesarif/internal/axe"
	"axesarif/internal/sarif"
	"axesarif/internal/taxonomy"
)

// RuleLink ties a rule to its position in the run's rule list and to the
// taxa it belongs to.
type RuleLink struct {
	ID           string
	Index        int
	TaxonIndices []int

	help        string
	description string
	helpURL     string
	tags        []string
}

// ruleTable holds the rule links of one conversion, in first-appearance
// order across violations, passes, incomplete and inapplicable.
type ruleTable struct {
	links []RuleLink
	byID  map[string]int
}

func linkRules(results *axe.Results, taxa *taxonomy.Index) *ruleTable {
	t := &ruleTable{byID: make(map[string]int)}
	for _, b := range axe.Buckets {
		for _, rr := range results.Bucket(b) {
			i, ok := t.byID[rr.ID]
			if !ok {
				i = len(t.links)
				t.byID[rr.ID] = i
				t.links = append(t.links, RuleLink{ID: rr.ID, Index: i})
			}
			t.links[i].absorb(rr)
		}
	}
	for i := range t.links {
		t.links[i].TaxonIndices = taxonIndices(t.links[i].tags, taxa)
	}
	return t
}

// absorb merges rule metadata seen in another bucket. The first non-empty
// value of each field wins; tags accumulate in first-seen order.
func (l *RuleLink) absorb(rr axe.RuleResult) {
	if l.help == "" {
		l.help = rr.Help
	}
	if l.description == "" {
		l.description = rr.Description
	}
	if l.helpURL == "" {
		l.helpURL = rr.HelpURL
	}
	for _, tag := range rr.Tags {
		if !containsString(l.tags, tag) {
			l.tags = append(l.tags, tag)
		}
	}
}

func taxonIndices(tags []string, taxa *taxonomy.Index) []int {
	out := []int{}
	for _, tag := range tags {
		if i, ok := taxa.IndexOf(tag); ok {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

func (t *ruleTable) indexOf(ruleID string) (int, bool) {
	i, ok := t.byID[ruleID]
	return i, ok
}

func (t *ruleTable) descriptors(taxa *taxonomy.Index) []sarif.ReportingDescriptor {
	out := make([]sarif.ReportingDescriptor, 0, len(t.links))
	for _, l := range t.links {
		d := sarif.ReportingDescriptor{
			ID:      l.ID,
			Name:    l.help,
			HelpURI: l.helpURL,
		}
		if l.description != "" {
			d.FullDescription = &sarif.MultiformatMessageString{Text: l.description}
		}
		for _, ti := range l.TaxonIndices {
			d.Relationships = append(d.Relationships, sarif.ReportingDescriptorRelationship{
				Target: sarif.ReportingDescriptorReference{
					ID:            taxa.Guideline(ti).ID,
					Index:         ti,
					ToolComponent: taxonomy.Reference(),
				},
				Kinds: []string{"superset"},
			})
		}
		out = append(out, d)
	}
	return out
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
