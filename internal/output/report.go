package output

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"axesarif/internal/sarif"
)

// ReportSink writes a Markdown summary of every log it receives on Close.
type ReportSink struct {
	path string
	file *os.File
	mu   sync.Mutex
	logs []*sarif.Log
}

func NewReportSink(path string) (*ReportSink, error) {
	if path == "" {
		return nil, fmt.Errorf("report path required")
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}

	return &ReportSink{path: path, file: f}, nil
}

func (s *ReportSink) Write(log *sarif.Log) error {
	if log == nil {
		return fmt.Errorf("sarif log is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, log)
	return nil
}

func (s *ReportSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeErr := func(err error) error {
		_ = s.file.Close()
		return err
	}

	report, err := renderReport(s.logs)
	if err != nil {
		return writeErr(err)
	}
	if _, err := s.file.WriteString(report); err != nil {
		return writeErr(fmt.Errorf("failed to write report: %w", err))
	}
	return s.file.Close()
}

func renderReport(logs []*sarif.Log) (string, error) {
	st := computeLogStats(logs)

	var b strings.Builder
	b.WriteString("# Accessibility Scan Report\n\n")

	// --- Summary ---
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "Scanned %d page(s).\n\n", st.RunsCount)
	b.WriteString("| Status | Elements |\n")
	b.WriteString("| --- | ---: |\n")
	for _, status := range Statuses {
		if status == StatusNotApplicable {
			continue
		}
		fmt.Fprintf(&b, "| %s | %d |\n", status, st.Totals[status])
	}
	b.WriteString("\n")

	// --- Failing rules ---
	b.WriteString("## Failing rules\n\n")
	if len(st.Failing) == 0 {
		b.WriteString("No violations found.\n\n")
	} else {
		b.WriteString("| Rule | Elements | Pages | WCAG | Help |\n")
		b.WriteString("| --- | ---: | ---: | --- | --- |\n")
		for _, rs := range st.Failing {
			help := escapeCell(rs.Help)
			if rs.HelpURI != "" {
				if help == "" {
					help = rs.HelpURI
				}
				help = fmt.Sprintf("[%s](%s)", help, rs.HelpURI)
			}
			fmt.Fprintf(&b, "| `%s` | %d | %d | %s | %s |\n",
				rs.RuleID, rs.Elements, len(rs.Pages), formatList(rs.Criteria, 3), help)
		}
		b.WriteString("\n")
	}

	// --- WCAG criteria ---
	b.WriteString("## WCAG criteria with violations\n\n")
	if len(st.Criteria) == 0 {
		b.WriteString("None.\n\n")
	} else {
		for _, cs := range st.Criteria {
			name := ""
			if cs.Name != "" {
				name = " " + escapeCell(cs.Name)
			}
			fmt.Fprintf(&b, "- **%s**%s: %s\n", cs.ID, name, formatList(cs.Rules, 5))
		}
		b.WriteString("\n")
	}

	// --- Per page ---
	b.WriteString("## Per-page status\n\n")
	b.WriteString("| Page | FAIL | PASS | INCOMPLETE |\n")
	b.WriteString("| --- | ---: | ---: | ---: |\n")
	for _, ps := range st.PerPage {
		fmt.Fprintf(&b, "| %s | %d | %d | %d |\n", escapeCell(ps.Page),
			ps.Counts[StatusFail], ps.Counts[StatusPass], ps.Counts[StatusIncomplete])
	}
	b.WriteString("\n")

	// --- Digests ---
	b.WriteString("## Log digest\n\n")
	b.WriteString("SHA-256 of the RFC 8785 canonical form of each log.\n\n")
	for i, log := range logs {
		digest, err := sarif.Digest(log)
		if err != nil {
			return "", fmt.Errorf("digest log %d: %w", i, err)
		}
		fmt.Fprintf(&b, "- `sha256:%s`\n", digest)
	}

	return b.String(), nil
}

func (s *ReportSink) String() string { return "report " + s.path }
