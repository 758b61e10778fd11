// Package taxonomy indexes the guideline tags found in an axe scan and
// renders them as a SARIF taxonomy.
package taxonomy

import (
	"sort"

	"axesarif/internal/axe"
	"axesarif/internal/sarif"
)

const (
	// ComponentName is the name results and rules use to reference the taxonomy.
	ComponentName = "WCAG"
	// ComponentIndex is the taxonomy's position in run.taxonomies.
	ComponentIndex = 0
)

// Index is a per-conversion, sorted view of the known guideline tags present
// in one scan. Positions in Tags are the taxon indices.
type Index struct {
	tags    []string
	indices map[string]int
	lookup  Lookup
}

// NewIndex collects every tag of every rule result in results that lookup
// knows about, and orders them lexicographically. Unknown tags are dropped.
func NewIndex(results *axe.Results, lookup Lookup) *Index {
	seen := make(map[string]struct{})
	var tags []string
	for _, b := range axe.Buckets {
		for _, rr := range results.Bucket(b) {
			for _, tag := range rr.Tags {
				if _, known := lookup[tag]; !known {
					continue
				}
				if _, dup := seen[tag]; dup {
					continue
				}
				seen[tag] = struct{}{}
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)

	indices := make(map[string]int, len(tags))
	for i, tag := range tags {
		indices[tag] = i
	}
	return &Index{tags: tags, indices: indices, lookup: lookup}
}

// Tags returns the ordered tags. The caller must not modify the slice.
func (x *Index) Tags() []string {
	return x.tags
}

// IndexOf returns the taxon index of tag.
func (x *Index) IndexOf(tag string) (int, bool) {
	i, ok := x.indices[tag]
	return i, ok
}

// Guideline returns the metadata of the taxon at index i.
func (x *Index) Guideline(i int) Guideline {
	return x.lookup[x.tags[i]]
}

// Len is the number of taxa.
func (x *Index) Len() int {
	return len(x.tags)
}

// Component renders the index as the WCAG taxonomy of a run.
func (x *Index) Component() sarif.ToolComponent {
	taxa := make([]sarif.ReportingDescriptor, 0, len(x.tags))
	for i := range x.tags {
		g := x.Guideline(i)
		taxa = append(taxa, sarif.ReportingDescriptor{
			ID:               g.ID,
			Name:             g.Title,
			ShortDescription: &sarif.MultiformatMessageString{Text: g.Name},
			HelpURI:          g.URL,
		})
	}
	return sarif.ToolComponent{
		Name:            ComponentName,
		FullName:        "Web Content Accessibility Guidelines (WCAG) 2.1",
		Organization:    "W3C",
		InformationURI:  "https://www.w3.org/TR/WCAG21",
		IsComprehensive: true,
		Taxa:            taxa,
	}
}

// Reference is the toolComponent reference rules use to point into this taxonomy.
func Reference() *sarif.ToolComponentReference {
	return &sarif.ToolComponentReference{Name: ComponentName, Index: ComponentIndex}
}
