package output

import (
	"fmt"
	"sort"
	"strings"

	"axesarif/internal/sarif"
)

type pageStats struct {
	Page   string
	Counts map[Status]int
}

type ruleStats struct {
	RuleID   string
	Help     string
	HelpURI  string
	Elements int
	Pages    map[string]struct{}
	Criteria []string
}

type criterionStats struct {
	ID    string
	Name  string
	Rules []string
}

type logStats struct {
	Totals    map[Status]int
	PerPage   []*pageStats
	Failing   []*ruleStats
	Criteria  []*criterionStats
	RunsCount int
}

func computeLogStats(logs []*sarif.Log) logStats {
	st := logStats{Totals: make(map[Status]int)}
	pages := make(map[string]*pageStats)
	failing := make(map[string]*ruleStats)
	criteria := make(map[string]*criterionStats)

	for _, log := range logs {
		for _, run := range log.Runs {
			st.RunsCount++
			page := runPage(run)
			ps, ok := pages[page]
			if !ok {
				ps = &pageStats{Page: page, Counts: make(map[Status]int)}
				pages[page] = ps
				st.PerPage = append(st.PerPage, ps)
			}

			for _, res := range run.Results {
				status := statusFromKind(res.Kind)
				st.Totals[status]++
				ps.Counts[status]++
				if status != StatusFail {
					continue
				}

				rs, ok := failing[res.RuleID]
				if !ok {
					rs = &ruleStats{RuleID: res.RuleID, Pages: make(map[string]struct{})}
					failing[res.RuleID] = rs
					st.Failing = append(st.Failing, rs)
				}
				rs.Elements++
				rs.Pages[page] = struct{}{}

				if res.RuleIndex < 0 || res.RuleIndex >= len(run.Tool.Driver.Rules) {
					continue
				}
				desc := run.Tool.Driver.Rules[res.RuleIndex]
				if rs.Help == "" {
					rs.Help = desc.Name
				}
				if rs.HelpURI == "" {
					rs.HelpURI = desc.HelpURI
				}
				for _, rel := range desc.Relationships {
					id := rel.Target.ID
					if !containsString(rs.Criteria, id) {
						rs.Criteria = append(rs.Criteria, id)
					}
					cs, ok := criteria[id]
					if !ok {
						cs = &criterionStats{ID: id, Name: taxonName(run, rel.Target.Index, id)}
						criteria[id] = cs
						st.Criteria = append(st.Criteria, cs)
					}
					if !containsString(cs.Rules, res.RuleID) {
						cs.Rules = append(cs.Rules, res.RuleID)
					}
				}
			}
		}
	}

	sort.SliceStable(st.Failing, func(i, j int) bool {
		if st.Failing[i].Elements != st.Failing[j].Elements {
			return st.Failing[i].Elements > st.Failing[j].Elements
		}
		return st.Failing[i].RuleID < st.Failing[j].RuleID
	})
	sort.Slice(st.Criteria, func(i, j int) bool {
		return st.Criteria[i].ID < st.Criteria[j].ID
	})
	for _, cs := range st.Criteria {
		sort.Strings(cs.Rules)
	}
	for _, rs := range st.Failing {
		sort.Strings(rs.Criteria)
	}
	return st
}

func runPage(run sarif.Run) string {
	for _, a := range run.Artifacts {
		if a.Location != nil && a.Location.URI != "" {
			return a.Location.URI
		}
	}
	for _, res := range run.Results {
		for _, loc := range res.Locations {
			if pl := loc.PhysicalLocation; pl != nil && pl.ArtifactLocation != nil && pl.ArtifactLocation.URI != "" {
				return pl.ArtifactLocation.URI
			}
		}
	}
	return "(unknown page)"
}

func taxonName(run sarif.Run, index int, id string) string {
	for _, tax := range run.Taxonomies {
		if index >= 0 && index < len(tax.Taxa) && tax.Taxa[index].ID == id {
			if sd := tax.Taxa[index].ShortDescription; sd != nil && sd.Text != "" {
				return sd.Text
			}
			return tax.Taxa[index].Name
		}
	}
	return ""
}

// formatList renders "a, b, c" or "a, b, c, +N more".
func formatList(items []string, max int) string {
	if len(items) <= max {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s, +%d more", strings.Join(items[:max], ", "), len(items)-max)
}

// escapeCell keeps Markdown table cells on one line and unbroken.
func escapeCell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
