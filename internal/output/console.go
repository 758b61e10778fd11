package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"axesarif/internal/sarif"

	"github.com/fatih/color"
)

var statusColors = map[Status]*color.Color{
	StatusFail:          color.New(color.FgRed, color.Bold),
	StatusPass:          color.New(color.FgGreen),
	StatusIncomplete:    color.New(color.FgYellow),
	StatusNotApplicable: color.New(color.Faint),
}

type ConsoleSink struct {
	writer          io.Writer
	format          string // "text", "json", "ndjson"
	mu              sync.Mutex
	findings        []Finding // For JSON array output
	allowedStatuses map[Status]bool
}

func NewConsoleSink(w io.Writer, format string, filterStatuses []string) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	if format == "" {
		format = "text"
	}

	s := &ConsoleSink{
		writer:   w,
		format:   format,
		findings: []Finding{},
	}

	if len(filterStatuses) > 0 {
		s.allowedStatuses = make(map[Status]bool)
		for _, st := range filterStatuses {
			s.allowedStatuses[Status(strings.ToUpper(strings.TrimSpace(st)))] = true
		}
	}

	return s
}

func (s *ConsoleSink) Write(log *sarif.Log) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range Findings(log) {
		if len(s.allowedStatuses) > 0 && !s.allowedStatuses[f.Status] {
			continue
		}
		if err := s.writeLocked(f); err != nil {
			return err
		}
	}
	return flushIfPossible(s.writer)
}

func (s *ConsoleSink) writeLocked(f Finding) error {
	switch s.format {
	case "json":
		s.findings = append(s.findings, f)
		return nil
	case "ndjson":
		return json.NewEncoder(s.writer).Encode(f)
	case "text":
		label := fmt.Sprintf("[%s]", f.Status)
		if c, ok := statusColors[f.Status]; ok {
			label = c.Sprint(label)
		}
		line := fmt.Sprintf("%s %s: %s", label, f.Page, f.RuleID)
		if f.Target != "" {
			line += fmt.Sprintf(" (%s)", f.Target)
		}
		if f.Message != "" {
			line += " - " + f.Message
		}
		_, err := fmt.Fprintln(s.writer, line)
		return err
	default:
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
}

func (s *ConsoleSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.format == "json" {
		encoder := json.NewEncoder(s.writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(s.findings); err != nil {
			return err
		}
		return flushIfPossible(s.writer)
	}
	if s.format != "text" && s.format != "ndjson" {
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
	return nil
}

// flushIfPossible flushes buffered writers such as *bufio.Writer.
func flushIfPossible(w io.Writer) error {
	if f, ok := w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

func (s *ConsoleSink) String() string { return "console (" + s.format + ")" }
