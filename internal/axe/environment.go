package axe

import (
	"strings"
	"time"
)

// timestampLayout is the UTC form SARIF date-time properties expect.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Environment is the scan context derived from a results document.
type Environment struct {
	Timestamp       string
	TargetPageURL   string
	TargetPageTitle string
	AxeVersion      string
	BrowserSpec     string
}

// EnvironmentData derives the scan environment from r. An unparseable
// timestamp is dropped rather than copied through.
func EnvironmentData(r *Results) Environment {
	if r == nil {
		return Environment{}
	}
	return Environment{
		Timestamp:       normalizeTimestamp(r.Timestamp),
		TargetPageURL:   strings.TrimSpace(r.URL),
		TargetPageTitle: strings.TrimSpace(r.TargetPageTitle),
		AxeVersion:      strings.TrimSpace(r.TestEngine.Version),
		BrowserSpec:     strings.TrimSpace(r.TestEnvironment.UserAgent),
	}
}

func normalizeTimestamp(raw string) string {
	ts := strings.TrimSpace(raw)
	if ts == "" {
		return ""
	}
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ""
	}
	return parsed.UTC().Format(timestampLayout)
}
