package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// stdinName is the input path that reads results from standard input.
const stdinName = "-"

// Source is one axe results document to convert.
type Source struct {
	// Path is the file path, or "-" for stdin.
	Path string
}

func (s Source) String() string {
	if s.Path == stdinName {
		return "<stdin>"
	}
	return s.Path
}

// expandInputs resolves input paths to sources in the order given. A
// directory expands to its *.json files in lexical order (not recursive).
func expandInputs(paths []string) ([]Source, error) {
	var out []Source
	for _, p := range paths {
		if p == stdinName {
			out = append(out, Source{Path: stdinName})
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", p, err)
		}
		if !info.IsDir() {
			out = append(out, Source{Path: p})
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", p, err)
		}
		var files []string
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
				continue
			}
			files = append(files, filepath.Join(p, e.Name()))
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("input %s: directory contains no .json files", p)
		}
		sort.Strings(files)
		for _, f := range files {
			out = append(out, Source{Path: f})
		}
	}
	return out, nil
}
