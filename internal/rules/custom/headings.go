package custom

import "axesarif/internal/rules"

// HeadingsRule collects coded headings (h1-h6 and role=heading) with their
// level, taken from aria-level when present.
type HeadingsRule struct{}

func (r *HeadingsRule) ID() string {
	return "collect-headings"
}

func (r *HeadingsRule) Title() string {
	return "Headings should describe topic or purpose"
}

func (r *HeadingsRule) Description() string {
	return "Collects every heading element and its level so that the heading structure of the page can be reviewed."
}

func (r *HeadingsRule) HelpURL() string {
	return "https://www.w3.org/WAI/WCAG21/Understanding/headings-and-labels"
}

func (r *HeadingsRule) Tags() []string {
	return []string{"wcag2aa", "wcag246"}
}

func init() {
	rules.Register(&HeadingsRule{})
}
