package rules

import (
	"strings"

	"axesarif/internal/axe"
)

const defaultHelpBase = "https://dequeuniversity.com/rules/axe/"

// HelpURL resolves the documentation page for ruleID. A registered rule's
// own page wins; otherwise fallback (typically axe's helpUrl) is used, and
// if that is empty too the generic Deque page for the rule id.
func HelpURL(ruleID, fallback string) string {
	if r, ok := Lookup(ruleID); ok {
		if u := strings.TrimSpace(r.HelpURL()); u != "" {
			return u
		}
	}
	if u := strings.TrimSpace(fallback); u != "" {
		return u
	}
	return defaultHelpBase + ruleID
}

// Decorate returns a copy of results with every rule result's help URL
// resolved and, for registered rules, missing descriptive fields and tags
// filled in. results itself is left untouched.
func Decorate(results *axe.Results) *axe.Results {
	out := results.Clone()
	if out == nil {
		return nil
	}
	for _, b := range axe.Buckets {
		bucket := out.Bucket(b)
		for i := range bucket {
			decorateRuleResult(&bucket[i])
		}
	}
	return out
}

func decorateRuleResult(rr *axe.RuleResult) {
	if r, ok := Lookup(rr.ID); ok {
		if rr.Help == "" {
			rr.Help = r.Title()
		}
		if rr.Description == "" {
			rr.Description = r.Description()
		}
		rr.Tags = mergeTags(rr.Tags, r.Tags())
	}
	rr.HelpURL = HelpURL(rr.ID, rr.HelpURL)
}

func mergeTags(have, extra []string) []string {
	seen := make(map[string]struct{}, len(have))
	for _, t := range have {
		seen[t] = struct{}{}
	}
	out := have
	for _, t := range extra {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
