package rules

// Rule is metadata for an axe rule that this tool knows more about than the
// scan report itself carries (custom rules, or rules with local help pages).
type Rule interface {
	ID() string
	Title() string
	Description() string

	// HelpURL is the documentation page used in place of axe's own helpUrl.
	HelpURL() string

	// Tags are guideline tags merged into the rule's reported tags.
	Tags() []string
}
