// SPDX-License-Identifier: MPL-2.0

// Package libdoc extracts keyword documentation from automation library and
// resource sources.
//
// The Extractor interface is the seam between discovery and introspection:
// the finder asks "how many keywords does this path expose" and never cares
// how the answer was produced. The production Introspector answers by static
// inspection only; tests substitute stubs.
//
// Failures split into two kinds. A DataError (wrapping ErrData) means the
// source exists but is not a usable keyword source; callers are expected to
// treat it as "no keywords here" and move on. Any other error is a
// filesystem problem and propagates.
package libdoc
