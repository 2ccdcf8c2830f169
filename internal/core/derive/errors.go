package derive

import "fmt"

// MalformedPathError reports an asset path that does not match the
// <folder>/<file>.svg shape. It is a per-asset failure: reconciliation
// records it and keeps going.
type MalformedPathError struct {
	Path   string
	Reason string
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("malformed asset path %q: %s", e.Path, e.Reason)
}

// DerivationError reports a filename that cannot be tokenized into
// underscore-delimited words. Also a per-asset failure.
type DerivationError struct {
	Filename string
	Reason   string
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("cannot derive key from %q: %s", e.Filename, e.Reason)
}
