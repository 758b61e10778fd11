package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestConsoleSink_Text(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, "text", nil)
	if err := sink.Write(sampleLog()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	want := "[FAIL] https://example.com/: image-alt (img.logo) - Fix any of the following: Element does not have an alt attribute."
	if lines[0] != want {
		t.Fatalf("line 0:\n got: %q\nwant: %q", lines[0], want)
	}
	if lines[3] != "[INCOMPLETE] https://example.com/: color-contrast (p)" {
		t.Fatalf("unexpected line 3: %q", lines[3])
	}
}

func TestConsoleSink_Filtering(t *testing.T) {
	disableColor(t)
	tests := []struct {
		name           string
		format         string
		filterStatuses []string
		want           int
	}{
		{name: "text - no filter", format: "text", want: 4},
		{name: "text - filter FAIL", format: "text", filterStatuses: []string{"FAIL"}, want: 2},
		{name: "text - filter case-insensitive", format: "text", filterStatuses: []string{"pass"}, want: 1},
		{name: "text - filter PASS,INCOMPLETE", format: "text", filterStatuses: []string{"PASS", "INCOMPLETE"}, want: 2},
		{name: "text - filter NOT_APPLICABLE", format: "text", filterStatuses: []string{"NOT_APPLICABLE"}, want: 0},
		{name: "json - filter FAIL", format: "json", filterStatuses: []string{"FAIL"}, want: 2},
		{name: "ndjson - filter INCOMPLETE", format: "ndjson", filterStatuses: []string{"INCOMPLETE"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			sink := NewConsoleSink(&buf, tt.format, tt.filterStatuses)
			if err := sink.Write(sampleLog()); err != nil {
				t.Fatalf("Write error: %v", err)
			}

			if tt.format == "json" {
				if len(sink.findings) != tt.want {
					t.Fatalf("expected %d findings buffered, got %d", tt.want, len(sink.findings))
				}
				return
			}
			got := 0
			if out := strings.TrimSpace(buf.String()); out != "" {
				got = len(strings.Split(out, "\n"))
			}
			if got != tt.want {
				t.Fatalf("expected %d lines, got %d:\n%s", tt.want, got, buf.String())
			}
		})
	}
}

func TestConsoleSink_JSON(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, "json", []string{"FAIL"})
	if err := sink.Write(sampleLog()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("json output must be deferred to Close, got: %s", buf.String())
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	var got []Finding
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[1].Target != "#hero;img" || got[1].ScanName != "home" {
		t.Fatalf("unexpected findings: %+v", got)
	}
	if got[0].HelpURI != "https://dequeuniversity.com/rules/axe/image-alt" {
		t.Fatalf("unexpected help uri: %q", got[0].HelpURI)
	}
}

func TestConsoleSink_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, "json", nil)
	if err := sink.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("expected empty array, got: %s", buf.String())
	}
}

func TestConsoleSink_NDJSON(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, "ndjson", []string{"PASS"})
	if err := sink.Write(sampleLog()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(buf.String(), `"status":"PASS"`) || !strings.Contains(buf.String(), `"rule_id":"document-title"`) {
		t.Fatalf("unexpected ndjson output: %s", buf.String())
	}
}

func TestConsoleSink_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, "xml", nil)
	if err := sink.Write(sampleLog()); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
	if err := sink.Close(); err == nil {
		t.Fatalf("expected error on Close for unsupported format")
	}
}
