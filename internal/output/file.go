package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"axesarif/internal/sarif"
)

// FileSink writes converted logs to a file.
//
// Formats:
//   - sarif: the SARIF log itself, written on Close; runs of repeated writes are appended
//   - ndjson: one Finding per line, streamed on Write
type FileSink struct {
	path   string
	format string
	file   *os.File
	mu     sync.Mutex
	log    *sarif.Log
}

func NewFileSink(path string, format string) (*FileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("output path required")
	}

	if format == "" {
		ext := strings.ToLower(filepath.Ext(path))
		switch ext {
		case ".sarif", ".json":
			format = "sarif"
		case ".ndjson", ".jsonl":
			format = "ndjson"
		default:
			return nil, fmt.Errorf("cannot infer output format from file extension %q", ext)
		}
	}

	if format != "sarif" && format != "ndjson" {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &FileSink{
		path:   path,
		format: format,
		file:   f,
	}, nil
}

func (s *FileSink) Write(log *sarif.Log) error {
	if log == nil {
		return fmt.Errorf("sarif log is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.format {
	case "sarif":
		if s.log == nil {
			s.log = &sarif.Log{Schema: log.Schema, Version: log.Version}
		}
		s.log.Runs = append(s.log.Runs, log.Runs...)
		return nil
	case "ndjson":
		encoder := json.NewEncoder(s.file)
		encoder.SetEscapeHTML(false)
		for _, f := range Findings(log) {
			if err := encoder.Encode(f); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if s.format == "sarif" && s.log != nil {
		var data []byte
		data, err = sarif.Marshal(s.log)
		if err == nil {
			_, err = s.file.Write(data)
		}
	}

	if closeErr := s.file.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

func (s *FileSink) String() string { return "file " + s.path }
