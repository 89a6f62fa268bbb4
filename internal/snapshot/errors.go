package snapshot

import "fmt"

// MalformedPathError reports a path that lacks a prefix or suffix a
// transform requires.
type MalformedPathError struct {
	Path    string
	Missing string
	Reason  string
}

// Error implements the error interface for MalformedPathError.
func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("malformed path %q: %s %q", e.Path, e.Reason, e.Missing)
}
