// SPDX-License-Identifier: MPL-2.0

package libdoc

import (
	"errors"
	"fmt"
)

// ErrData is the sentinel error wrapped by DataError. Callers use
// errors.Is(err, libdoc.ErrData) to distinguish documentation parse
// failures from filesystem failures.
var ErrData = errors.New("library documentation error")

type (
	// Extractor introspects a path as an automation library or resource and
	// reports how many keywords it exposes. Implementations return a
	// DataError when the source exists but cannot be understood as a
	// keyword source; filesystem errors are returned as-is.
	Extractor interface {
		ExtractKeywords(path string) (int, error)
	}

	// DataError reports that a candidate path could not be introspected as
	// a keyword source. It wraps ErrData for errors.Is() compatibility.
	DataError struct {
		// Path is the candidate that failed introspection.
		Path string
		// Reason describes what was malformed.
		Reason string
		// Cause is the underlying error, if any.
		Cause error
	}
)

// Error returns the error message for DataError.
func (e *DataError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("introspecting %s: %s: %v", e.Path, e.Reason, e.Cause)
	}
	return fmt.Sprintf("introspecting %s: %s", e.Path, e.Reason)
}

// Unwrap returns the underlying cause, if any.
func (e *DataError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrData, so that a DataError matches
// errors.Is(err, ErrData) without requiring callers to unwrap manually.
func (e *DataError) Is(target error) bool {
	return target == ErrData
}

// newDataError builds a DataError for path with a formatted reason.
func newDataError(path, format string, args ...any) *DataError {
	return &DataError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
