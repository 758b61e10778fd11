package axe

import "fmt"

// InvalidInputError reports a scan document that cannot be converted without
// producing dangling references. Path is a JSON-path-like location.
type InvalidInputError struct {
	Path   string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Path == "" {
		return "invalid axe results: " + e.Reason
	}
	return fmt.Sprintf("invalid axe results: %s: %s", e.Path, e.Reason)
}

// Invalidf builds an *InvalidInputError.
func Invalidf(path, format string, args ...any) error {
	return &InvalidInputError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
