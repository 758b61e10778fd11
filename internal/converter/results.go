package converter

import (
	"fmt"
	"strings"

	"axesarif/internal/axe"
	"axesarif/internal/sarif"
)

const logicalLocationKind = "element"

type classification struct {
	bucket axe.Bucket
	kind   string
	level  string
}

// classifications is the fixed order buckets are converted in.
var classifications = []classification{
	{bucket: axe.BucketViolations, kind: sarif.KindFail, level: sarif.LevelError},
	{bucket: axe.BucketPasses, kind: sarif.KindPass, level: sarif.LevelNone},
	{bucket: axe.BucketIncomplete, kind: sarif.KindOpen, level: sarif.LevelNone},
	{bucket: axe.BucketInapplicable, kind: sarif.KindNotApplicable, level: sarif.LevelNone},
}

type projector struct {
	rules *ruleTable
	env   axe.Environment
}

func (p *projector) project(results *axe.Results) ([]sarif.Result, error) {
	out := []sarif.Result{}
	for _, c := range classifications {
		var err error
		if c.bucket == axe.BucketInapplicable {
			err = p.checkWithoutNodes(c, results.Bucket(c.bucket))
		} else {
			out, err = p.appendNodeResults(out, c, results.Bucket(c.bucket))
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (p *projector) appendNodeResults(out []sarif.Result, c classification, ruleResults []axe.RuleResult) ([]sarif.Result, error) {
	for i, rr := range ruleResults {
		ruleIndex, ok := p.rules.indexOf(rr.ID)
		if !ok {
			return nil, axe.Invalidf(fmt.Sprintf("$.%s[%d].id", c.bucket, i), "rule %q has no descriptor", rr.ID)
		}
		for _, node := range rr.Nodes {
			out = append(out, sarif.Result{
				RuleID:    rr.ID,
				RuleIndex: ruleIndex,
				Kind:      c.kind,
				Level:     c.level,
				Message:   nodeMessage(node, c.kind == sarif.KindFail),
				Locations: p.locations(node),
			})
		}
	}
	return out, nil
}

// checkWithoutNodes covers buckets that carry no per-element detail. They
// produce no results; entries are only checked for a resolvable rule. Should
// they ever be emitted, each needs the rule id and a partial fingerprint
// keyed on it.
func (p *projector) checkWithoutNodes(c classification, ruleResults []axe.RuleResult) error {
	for i, rr := range ruleResults {
		if _, ok := p.rules.indexOf(rr.ID); !ok {
			return axe.Invalidf(fmt.Sprintf("$.%s[%d].id", c.bucket, i), "rule %q has no descriptor", rr.ID)
		}
	}
	return nil
}

func (p *projector) locations(node axe.NodeResult) []sarif.Location {
	return []sarif.Location{
		{
			PhysicalLocation: &sarif.PhysicalLocation{
				ArtifactLocation: ArtifactLocation(p.env),
				Region: &sarif.Region{
					Snippet: &sarif.ArtifactContent{Text: node.HTML},
				},
			},
			LogicalLocations: []sarif.LogicalLocation{
				{
					FullyQualifiedName: strings.Join(node.Target, ";"),
					Kind:               logicalLocationKind,
				},
			},
		},
	}
}
