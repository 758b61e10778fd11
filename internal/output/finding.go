package output

import (
	"axesarif/internal/sarif"
)

// Status is the console-facing name of a SARIF result kind.
type Status string

const (
	StatusFail          Status = "FAIL"
	StatusPass          Status = "PASS"
	StatusIncomplete    Status = "INCOMPLETE"
	StatusNotApplicable Status = "NOT_APPLICABLE"
)

// Statuses lists every status in the order results are converted.
var Statuses = []Status{StatusFail, StatusPass, StatusIncomplete, StatusNotApplicable}

func statusFromKind(kind string) Status {
	switch kind {
	case sarif.KindFail:
		return StatusFail
	case sarif.KindPass:
		return StatusPass
	case sarif.KindOpen:
		return StatusIncomplete
	default:
		return StatusNotApplicable
	}
}

// Finding is one SARIF result flattened for human and line-oriented output.
type Finding struct {
	Run      int    `json:"run"`
	ScanName string `json:"scan_name,omitempty"`
	Page     string `json:"page,omitempty"`
	RuleID   string `json:"rule_id"`
	Status   Status `json:"status"`
	Target   string `json:"target,omitempty"`
	Message  string `json:"message,omitempty"`
	HelpURI  string `json:"help_uri,omitempty"`
}

// Findings flattens every result of log in run then result order.
func Findings(log *sarif.Log) []Finding {
	if log == nil {
		return nil
	}
	var out []Finding
	for i, run := range log.Runs {
		scanName, _ := run.Properties["scanName"].(string)
		rules := run.Tool.Driver.Rules
		for _, res := range run.Results {
			f := Finding{
				Run:      i,
				ScanName: scanName,
				RuleID:   res.RuleID,
				Status:   statusFromKind(res.Kind),
				Message:  res.Message.Text,
			}
			if res.RuleIndex >= 0 && res.RuleIndex < len(rules) {
				f.HelpURI = rules[res.RuleIndex].HelpURI
			}
			if len(res.Locations) > 0 {
				loc := res.Locations[0]
				if pl := loc.PhysicalLocation; pl != nil && pl.ArtifactLocation != nil {
					f.Page = pl.ArtifactLocation.URI
				}
				if len(loc.LogicalLocations) > 0 {
					f.Target = loc.LogicalLocations[0].FullyQualifiedName
				}
			}
			out = append(out, f)
		}
	}
	return out
}
