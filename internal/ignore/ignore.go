// SPDX-License-Identifier: MPL-2.0

// Package ignore decides which candidate paths discovery must skip. A Set
// combines exact paths, bare-name blacklist entries, and doublestar glob
// patterns; it is built once per run and never mutated afterwards, so
// matching needs no locking.
package ignore

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrInvalidPattern is the sentinel error wrapped by InvalidPatternError.
var ErrInvalidPattern = errors.New("invalid ignore pattern")

type (
	// Options configures a Set.
	Options struct {
		// Paths are exact paths to ignore. They are canonicalized with
		// filepath.Abs before matching, so relative and absolute spellings
		// of the same location are equivalent.
		Paths []string
		// Names are bare file or directory names ignored anywhere in the
		// tree (the blacklist).
		Names []string
		// Globs are doublestar patterns matched against the slash form of
		// each candidate's canonical path.
		Globs []string
	}

	// Set answers whether a path must be skipped during discovery.
	Set struct {
		paths map[string]struct{}
		names map[string]struct{}
		globs []string
	}

	// InvalidPatternError is returned when a glob in Options.Globs does not
	// parse. It wraps ErrInvalidPattern for errors.Is() compatibility.
	InvalidPatternError struct {
		Pattern string
	}
)

// Error returns the error message for InvalidPatternError.
func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid ignore pattern %q", e.Pattern)
}

// Unwrap returns ErrInvalidPattern.
func (e *InvalidPatternError) Unwrap() error {
	return ErrInvalidPattern
}

// New builds a Set from opts. Glob patterns are validated eagerly so a typo
// fails the run up front instead of silently matching nothing.
func New(opts Options) (*Set, error) {
	s := &Set{
		paths: make(map[string]struct{}, len(opts.Paths)),
		names: make(map[string]struct{}, len(opts.Names)),
	}

	for _, p := range opts.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("canonicalizing ignore path %q: %w", p, err)
		}
		s.paths[abs] = struct{}{}
	}
	for _, n := range opts.Names {
		if n != "" {
			s.names[n] = struct{}{}
		}
	}
	for _, g := range opts.Globs {
		if !doublestar.ValidatePattern(g) {
			return nil, &InvalidPatternError{Pattern: g}
		}
		s.globs = append(s.globs, g)
	}
	return s, nil
}

// Match reports whether path is ignored, by exact canonical path, by bare
// name, or by glob. Matching a directory implies its whole subtree is
// skipped; enforcing that is the caller's job.
func (s *Set) Match(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}

	if _, ok := s.paths[abs]; ok {
		return true
	}
	if _, ok := s.names[filepath.Base(abs)]; ok {
		return true
	}

	slashed := filepath.ToSlash(abs)
	for _, g := range s.globs {
		if ok, _ := doublestar.Match(g, slashed); ok {
			return true
		}
	}
	return false
}

// Empty reports whether the Set contains no entries at all.
func (s *Set) Empty() bool {
	return len(s.paths) == 0 && len(s.names) == 0 && len(s.globs) == 0
}
