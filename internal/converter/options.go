package converter

import "axesarif/internal/sarif"

// Options are per-conversion settings. A nil field was not supplied and
// leaves no trace in the output.
type Options struct {
	ScanName   *string
	TestCaseID *string

	// ScanID is accepted for compatibility and currently ignored.
	ScanID *string
}

func (o Options) runProperties() sarif.PropertyBag {
	props := sarif.PropertyBag{}
	if o.ScanName != nil {
		props["scanName"] = *o.ScanName
	}
	if o.TestCaseID != nil {
		props["testCaseId"] = *o.TestCaseID
	}
	if len(props) == 0 {
		return nil
	}
	return props
}
