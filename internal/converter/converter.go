// Package converter turns axe-core scan results into SARIF 2.1.0 logs.
//
// Conversion is a pure function of its input: rule indices follow the first
// appearance of each rule id across violations, passes, incomplete and
// inapplicable, taxon indices follow the sorted set of known guideline tags,
// and results keep bucket order then input order. Identical input always
// yields byte-identical output.
package converter

import (
	"errors"
	"fmt"

	"axesarif/internal/axe"
	"axesarif/internal/sarif"
	"axesarif/internal/taxonomy"
)

type Converter struct {
	collab Collaborators
	lookup taxonomy.Lookup
}

func New(collab Collaborators, lookup taxonomy.Lookup) (*Converter, error) {
	if collab.ToolProperties == nil {
		return nil, errors.New("converter: ToolProperties is nil")
	}
	if collab.Invocations == nil {
		return nil, errors.New("converter: Invocations is nil")
	}
	if collab.ArtifactProperties == nil {
		return nil, errors.New("converter: ArtifactProperties is nil")
	}
	if collab.EnvironmentData == nil {
		return nil, errors.New("converter: EnvironmentData is nil")
	}
	if lookup == nil {
		return nil, errors.New("converter: taxonomy lookup is nil")
	}
	return &Converter{collab: collab, lookup: lookup}, nil
}

// Default returns a converter using the built-in providers and the WCAG lookup.
func Default(version string) *Converter {
	return &Converter{collab: DefaultCollaborators(version), lookup: taxonomy.WCAG}
}

// Convert produces a log with a single run for results.
func (c *Converter) Convert(results *axe.Results, opts Options) (*sarif.Log, error) {
	return c.ConvertAll([]*axe.Results{results}, opts)
}

// ConvertAll produces one log with one run per scan, in input order. It
// fails as a whole if any scan is malformed.
func (c *Converter) ConvertAll(scans []*axe.Results, opts Options) (*sarif.Log, error) {
	runs := make([]sarif.Run, 0, len(scans))
	for i, results := range scans {
		run, err := c.ConvertRun(results, opts)
		if err != nil {
			if len(scans) == 1 {
				return nil, err
			}
			return nil, fmt.Errorf("scan %d: %w", i, err)
		}
		runs = append(runs, run)
	}
	return &sarif.Log{
		Schema:  sarif.SchemaURI,
		Version: sarif.Version,
		Runs:    runs,
	}, nil
}

// ConvertRun assembles the run for one scan.
func (c *Converter) ConvertRun(results *axe.Results, opts Options) (sarif.Run, error) {
	if err := results.Validate(); err != nil {
		return sarif.Run{}, err
	}

	env := c.collab.EnvironmentData(results)
	taxa := taxonomy.NewIndex(results, c.lookup)
	rules := linkRules(results, taxa)

	driver := c.collab.ToolProperties()
	if driver.Version == "" {
		driver.Version = env.AxeVersion
	}
	driver.Rules = rules.descriptors(taxa)
	driver.SupportedTaxonomies = []sarif.ToolComponentReference{*taxonomy.Reference()}

	p := &projector{rules: rules, env: env}
	converted, err := p.project(results)
	if err != nil {
		return sarif.Run{}, err
	}

	run := sarif.Run{
		Tool:        sarif.Tool{Driver: driver},
		Invocations: c.collab.Invocations(env),
		Artifacts:   []sarif.Artifact{c.collab.ArtifactProperties(env)},
		Results:     converted,
		Taxonomies:  []sarif.ToolComponent{taxa.Component()},
		Properties:  opts.runProperties(),
	}
	if c.collab.ConversionProperties != nil {
		run.Conversion = c.collab.ConversionProperties()
	}
	return run, nil
}
