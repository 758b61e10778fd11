package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"axesarif/internal/sarif"
)

func TestMarkdownReportContract(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "report.md")

	s, err := NewReportSink(reportPath)
	if err != nil {
		t.Fatalf("NewReportSink failed: %v", err)
	}
	log := sampleLog()
	if err := s.Write(log); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	b, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	out := string(b)

	digest, err := sarif.Digest(log)
	if err != nil {
		t.Fatalf("Digest failed: %v", err)
	}

	required := []string{
		"# Accessibility Scan Report",
		"## Summary",
		"Scanned 1 page(s).",
		"| FAIL | 2 |",
		"| PASS | 1 |",
		"| INCOMPLETE | 1 |",
		"## Failing rules",
		"| `image-alt` | 2 | 1 | WCAG1.1.1, WCAG2A | [Images must have alternate text](https://dequeuniversity.com/rules/axe/image-alt) |",
		"## WCAG criteria with violations",
		"- **WCAG1.1.1** Non-text Content: image-alt",
		"## Per-page status",
		"| https://example.com/ | 2 | 1 | 1 |",
		"## Log digest",
		"`sha256:" + digest + "`",
	}
	for _, want := range required {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n---\n%s", want, out)
		}
	}
	if strings.Contains(out, "document-title") {
		t.Errorf("passing rules must not be listed as failing:\n%s", out)
	}
}

func TestMarkdownReport_NoViolations(t *testing.T) {
	log := &sarif.Log{Version: sarif.Version, Runs: []sarif.Run{{Results: []sarif.Result{}}}}
	out, err := renderReport([]*sarif.Log{log})
	if err != nil {
		t.Fatalf("renderReport failed: %v", err)
	}
	for _, want := range []string{"No violations found.", "None.", "| (unknown page) | 0 | 0 | 0 |"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n---\n%s", want, out)
		}
	}
}

func TestFormatList(t *testing.T) {
	tests := []struct {
		items []string
		max   int
		want  string
	}{
		{items: nil, max: 3, want: ""},
		{items: []string{"a", "b"}, max: 3, want: "a, b"},
		{items: []string{"a", "b", "c", "d", "e"}, max: 3, want: "a, b, c, +2 more"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatList(tt.items, tt.max); got != tt.want {
				t.Fatalf("formatList = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscapeCell(t *testing.T) {
	if got := escapeCell("a | <b>\n c"); got != `a \| &lt;b&gt; c` {
		t.Fatalf("escapeCell = %q", got)
	}
}
