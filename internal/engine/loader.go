package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"axesarif/internal/axe"

	"golang.org/x/sync/singleflight"
)

// Loader reads and parses axe results. The same file named more than once
// (directly or through a directory) is read and parsed once.
type Loader struct {
	stdin io.Reader
	group singleflight.Group
	cache sync.Map // key -> *axe.Results
}

func NewLoader(stdin io.Reader) *Loader {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Loader{stdin: stdin}
}

// Load returns the parsed results of src. Callers must not mutate the
// returned value; it may be shared between sources naming the same file.
func (l *Loader) Load(ctx context.Context, src Source) (*axe.Results, error) {
	if ctx == nil {
		return nil, fmt.Errorf("Load: nil context")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := src.Path
	if key != stdinName {
		if abs, err := filepath.Abs(key); err == nil {
			key = abs
		}
	}
	if v, ok := l.cache.Load(key); ok {
		return v.(*axe.Results), nil
	}

	v, err, _ := l.group.Do(key, func() (interface{}, error) {
		if v, ok := l.cache.Load(key); ok {
			return v, nil
		}
		payload, err := l.read(src)
		if err != nil {
			return nil, err
		}
		results, err := axe.Parse(payload)
		if err != nil {
			return nil, err
		}
		l.cache.Store(key, results)
		return results, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src, err)
	}
	return v.(*axe.Results), nil
}

func (l *Loader) read(src Source) ([]byte, error) {
	if src.Path == stdinName {
		return io.ReadAll(l.stdin)
	}
	return os.ReadFile(src.Path)
}
