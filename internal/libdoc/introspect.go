// SPDX-License-Identifier: MPL-2.0

package libdoc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// InitFileName marks a directory as a code-backed library package.
	InitFileName = "__init__.py"

	// ScriptExtension is the extension of script-based library files.
	ScriptExtension = ".py"
)

var (
	// defRe matches a function definition at any indentation. Group 1 is
	// the function name.
	defRe = regexp.MustCompile(`(?m)^[ \t]*def[ \t]+([A-Za-z_][A-Za-z0-9_]*)[ \t]*\(`)

	// keywordDecoratorRe matches Robot Framework's @keyword decorator,
	// with or without arguments.
	keywordDecoratorRe = regexp.MustCompile(`(?m)^[ \t]*@keyword\b`)

	// malformedDefRe matches a def statement with no name, which the
	// documentation tooling rejects outright.
	malformedDefRe = regexp.MustCompile(`(?m)^[ \t]*def[ \t]*\(`)

	// sectionHeaderRe matches any Robot Framework section header line.
	sectionHeaderRe = regexp.MustCompile(`(?i)^\*+\s*(settings?|variables?|test cases?|tasks?|(?:user )?keywords?|comments?)`)

	// keywordSectionRe matches the header opening a keyword section.
	keywordSectionRe = regexp.MustCompile(`(?i)^\*+\s*(?:user )?keywords?`)
)

// Introspector is the production Extractor. It statically inspects library
// and resource sources for documented keywords; nothing is imported or
// executed.
type Introspector struct{}

// NewIntrospector creates an Introspector.
func NewIntrospector() *Introspector {
	return &Introspector{}
}

// ExtractKeywords reports the number of keywords exposed by path. A
// directory is introspected as a module library (its initializer plus
// direct-child scripts); a script file as a static library; a textual
// automation source by its keyword section. Sources that exist but cannot
// be understood yield a DataError.
func (in *Introspector) ExtractKeywords(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("introspecting %s: %w", path, err)
	}

	if info.IsDir() {
		return in.extractFromModule(path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ScriptExtension:
		return in.extractFromScript(path)
	case ".robot", ".resource", ".txt":
		return in.extractFromResource(path)
	default:
		return 0, newDataError(path, "unsupported library source %q", filepath.Ext(path))
	}
}

// extractFromModule sums the keywords of the package initializer and every
// direct-child script. Robot Framework packages commonly re-export keywords
// defined in sibling modules, so the initializer alone is not authoritative.
func (in *Introspector) extractFromModule(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("introspecting %s: %w", dir, err)
	}

	total := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ScriptExtension) {
			continue
		}
		n, err := in.extractFromScript(filepath.Join(dir, entry.Name()))
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// extractFromScript counts keyword definitions in a script-based library:
// public functions and methods, plus anything carrying the @keyword
// decorator regardless of visibility.
func (in *Introspector) extractFromScript(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("introspecting %s: %w", path, err)
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return 0, newDataError(path, "not a text file")
	}
	if malformedDefRe.Match(data) {
		return 0, newDataError(path, "malformed function definition")
	}

	count := len(keywordDecoratorRe.FindAll(data, -1))
	for _, m := range defRe.FindAllSubmatch(data, -1) {
		name := string(m[1])
		if !strings.HasPrefix(name, "_") {
			count++
		}
	}
	return count, nil
}

// extractFromResource counts entries in the keyword section of a textual
// automation source. An entry is a line starting in column zero that is
// neither a section header nor a comment.
func (in *Introspector) extractFromResource(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("introspecting %s: %w", path, err)
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return 0, newDataError(path, "not a text file")
	}

	count := 0
	inKeywords := false
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if sectionHeaderRe.MatchString(line) {
			inKeywords = keywordSectionRe.MatchString(line)
			continue
		}
		if strings.HasPrefix(line, "*") {
			return 0, newDataError(path, "unrecognized section header %q", strings.TrimSpace(line))
		}
		if !inKeywords || line == "" {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' || line[0] == '#' {
			continue
		}
		count++
	}
	return count, nil
}
