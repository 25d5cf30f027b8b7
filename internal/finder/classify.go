// SPDX-License-Identifier: MPL-2.0

package finder

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"libscout/internal/libdoc"
)

// initResourceNames are reserved initializer resource names that never
// qualify as resource files themselves.
var initResourceNames = map[string]struct{}{
	"__init__.robot": {},
	"__init__.txt":   {},
}

var (
	// keywordHeaderRe detects a Keywords or User Keywords section header.
	keywordHeaderRe = regexp.MustCompile(`(?im)^\*+\s*(?:User )?Keywords?`)

	// taskHeaderRe detects a Test Cases or Tasks section header. Files
	// containing either are test suites, not resources, even when they
	// also declare keywords.
	taskHeaderRe = regexp.MustCompile(`(?im)^\*+\s*(?:Test Cases?|Tasks?)`)
)

// isModuleLibrary reports whether dir is a code-backed library package: it
// holds an initializer file and introspection finds at least one keyword.
func (f *Finder) isModuleLibrary(dir string) (bool, error) {
	info, err := os.Stat(filepath.Join(dir, libdoc.InitFileName))
	if err != nil || !info.Mode().IsRegular() {
		return false, nil
	}
	return f.hasKeywords(dir)
}

// isKeywordFile reports whether path is a library file or a resource file.
func (f *Finder) isKeywordFile(path string) (bool, error) {
	ok, err := f.isLibraryFile(path)
	if err != nil || ok {
		return ok, err
	}
	return f.isResourceFile(path)
}

// isLibraryFile reports whether path is a script-based library: a script
// file, not a package initializer, exposing at least one keyword.
func (f *Finder) isLibraryFile(path string) (bool, error) {
	if filepath.Ext(path) != libdoc.ScriptExtension {
		return false, nil
	}
	if filepath.Base(path) == libdoc.InitFileName {
		return false, nil
	}
	return f.hasKeywords(path)
}

// isResourceFile reports whether path is a declarative keyword collection:
// a recognized textual automation source declaring keywords and no test
// cases or tasks.
func (f *Finder) isResourceFile(path string) (bool, error) {
	if _, reserved := initResourceNames[filepath.Base(path)]; reserved {
		return false, nil
	}
	if _, ok := f.extensions[filepath.Ext(path)]; !ok {
		return false, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	// Permissive decoding: invalid byte sequences are dropped so a binary
	// file simply fails to match, it never aborts the run.
	data := strings.ToValidUTF8(string(raw), "")

	return keywordHeaderRe.MatchString(data) && !taskHeaderRe.MatchString(data), nil
}

// hasKeywords asks the extractor whether path exposes any keywords.
// DataErrors propagate to the traversal loop, which logs and skips.
func (f *Finder) hasKeywords(path string) (bool, error) {
	count, err := f.extractor.ExtractKeywords(path)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
