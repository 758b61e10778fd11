package output

import (
	"testing"

	"axesarif/internal/sarif"

	"github.com/fatih/color"
)

func disableColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func intPtr(i int) *int { return &i }

func result(ruleID string, ruleIndex int, kind, level, target, text string) sarif.Result {
	return sarif.Result{
		RuleID:    ruleID,
		RuleIndex: ruleIndex,
		Kind:      kind,
		Level:     level,
		Message:   sarif.Message{Text: text},
		Locations: []sarif.Location{{
			PhysicalLocation: &sarif.PhysicalLocation{
				ArtifactLocation: &sarif.ArtifactLocation{URI: "https://example.com/", Index: intPtr(0)},
			},
			LogicalLocations: []sarif.LogicalLocation{{FullyQualifiedName: target, Kind: "element"}},
		}},
	}
}

// sampleLog has one run with two failing nodes for image-alt, one pass for
// document-title and one incomplete node for color-contrast.
func sampleLog() *sarif.Log {
	rel := func(id string, index int) sarif.ReportingDescriptorRelationship {
		return sarif.ReportingDescriptorRelationship{
			Target: sarif.ReportingDescriptorReference{
				ID:            id,
				Index:         index,
				ToolComponent: &sarif.ToolComponentReference{Name: "WCAG", Index: 0},
			},
			Kinds: []string{"superset"},
		}
	}
	return &sarif.Log{
		Schema:  sarif.SchemaURI,
		Version: sarif.Version,
		Runs: []sarif.Run{{
			Tool: sarif.Tool{Driver: sarif.ToolComponent{
				Name: "axe-core",
				Rules: []sarif.ReportingDescriptor{
					{
						ID:            "image-alt",
						Name:          "Images must have alternate text",
						HelpURI:       "https://dequeuniversity.com/rules/axe/image-alt",
						Relationships: []sarif.ReportingDescriptorRelationship{rel("WCAG1.1.1", 0), rel("WCAG2A", 1)},
					},
					{ID: "document-title", Name: "Documents must have <title> element", HelpURI: "https://dequeuniversity.com/rules/axe/document-title"},
					{ID: "color-contrast", Name: "Elements must have sufficient color contrast"},
				},
			}},
			Results: []sarif.Result{
				result("image-alt", 0, sarif.KindFail, sarif.LevelError, "img.logo", "Fix any of the following: Element does not have an alt attribute."),
				result("image-alt", 0, sarif.KindFail, sarif.LevelError, "#hero;img", "Fix any of the following: Element does not have an alt attribute."),
				result("document-title", 1, sarif.KindPass, sarif.LevelNone, "html", "The following tests passed: Document has a non-empty <title> element."),
				result("color-contrast", 2, sarif.KindOpen, sarif.LevelNone, "p", ""),
			},
			Taxonomies: []sarif.ToolComponent{{
				Name: "WCAG",
				Taxa: []sarif.ReportingDescriptor{
					{ID: "WCAG1.1.1", Name: "WCAG 1.1.1", ShortDescription: &sarif.MultiformatMessageString{Text: "Non-text Content"}},
					{ID: "WCAG2A", Name: "WCAG2A", ShortDescription: &sarif.MultiformatMessageString{Text: "WCAG 2.0 Level A"}},
				},
			}},
			Properties: sarif.PropertyBag{"scanName": "home"},
		}},
	}
}
