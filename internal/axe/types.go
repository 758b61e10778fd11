package axe

// Bucket names one classification of rule results in an axe scan.
type Bucket string

const (
	BucketViolations   Bucket = "violations"
	BucketPasses       Bucket = "passes"
	BucketIncomplete   Bucket = "incomplete"
	BucketInapplicable Bucket = "inapplicable"
)

// Buckets lists every bucket in conversion order.
var Buckets = []Bucket{BucketViolations, BucketPasses, BucketIncomplete, BucketInapplicable}

// Results is a (decorated) axe-core scan report.
type Results struct {
	Violations   []RuleResult `json:"violations"`
	Passes       []RuleResult `json:"passes"`
	Incomplete   []RuleResult `json:"incomplete"`
	Inapplicable []RuleResult `json:"inapplicable"`

	Timestamp       string          `json:"timestamp,omitempty"`
	URL             string          `json:"url,omitempty"`
	TargetPageTitle string          `json:"targetPageTitle,omitempty"`
	TestEngine      TestEngine      `json:"testEngine"`
	TestRunner      TestRunner      `json:"testRunner"`
	TestEnvironment TestEnvironment `json:"testEnvironment"`
}

type TestEngine struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

type TestRunner struct {
	Name string `json:"name,omitempty"`
}

type TestEnvironment struct {
	UserAgent        string `json:"userAgent,omitempty"`
	WindowWidth      int    `json:"windowWidth,omitempty"`
	WindowHeight     int    `json:"windowHeight,omitempty"`
	OrientationAngle int    `json:"orientationAngle,omitempty"`
	OrientationType  string `json:"orientationType,omitempty"`
}

// RuleResult is the outcome of one rule in one bucket.
type RuleResult struct {
	ID          string       `json:"id"`
	Impact      string       `json:"impact,omitempty"`
	Tags        []string     `json:"tags"`
	Description string       `json:"description,omitempty"`
	Help        string       `json:"help,omitempty"`
	HelpURL     string       `json:"helpUrl,omitempty"`
	Nodes       []NodeResult `json:"nodes"`
}

// NodeResult is the evaluation of a rule against a single element.
type NodeResult struct {
	Target []string      `json:"target"`
	HTML   string        `json:"html"`
	Impact string        `json:"impact,omitempty"`
	All    []CheckResult `json:"all"`
	Any    []CheckResult `json:"any"`
	None   []CheckResult `json:"none"`
}

// CheckResult is one already-evaluated check. Message may be empty.
type CheckResult struct {
	ID      string `json:"id"`
	Impact  string `json:"impact,omitempty"`
	Message string `json:"message,omitempty"`
}

// Bucket returns the rule results filed under b.
func (r *Results) Bucket(b Bucket) []RuleResult {
	if r == nil {
		return nil
	}
	switch b {
	case BucketViolations:
		return r.Violations
	case BucketPasses:
		return r.Passes
	case BucketIncomplete:
		return r.Incomplete
	case BucketInapplicable:
		return r.Inapplicable
	default:
		return nil
	}
}

// Clone copies r deeply enough that rule-level fields of the copy can be
// rewritten without touching r. Nodes are shared.
func (r *Results) Clone() *Results {
	if r == nil {
		return nil
	}
	out := *r
	out.Violations = cloneRuleResults(r.Violations)
	out.Passes = cloneRuleResults(r.Passes)
	out.Incomplete = cloneRuleResults(r.Incomplete)
	out.Inapplicable = cloneRuleResults(r.Inapplicable)
	return &out
}

func cloneRuleResults(in []RuleResult) []RuleResult {
	if in == nil {
		return nil
	}
	out := make([]RuleResult, len(in))
	for i, rr := range in {
		rr.Tags = append([]string(nil), rr.Tags...)
		out[i] = rr
	}
	return out
}
