// SPDX-License-Identifier: MPL-2.0

package finder

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"libscout/internal/config"
	"libscout/internal/ignore"
	"libscout/internal/libdoc"

	"github.com/charmbracelet/log"
)

type (
	// Options configures a Finder. Zero-value fields get production
	// defaults from New.
	Options struct {
		// Logger receives per-candidate trace output. Defaults to a
		// discard logger.
		Logger *log.Logger
		// Extractor introspects candidates for documented keywords.
		// Defaults to the static libdoc.Introspector.
		Extractor libdoc.Extractor
		// Ignore is the ignore set checked before any classification.
		// Defaults to an empty set.
		Ignore *ignore.Set
		// ResourceExtensions are the recognized textual automation-source
		// extensions. Defaults to config.DefaultResourceExtensions.
		ResourceExtensions []string
	}

	// Finder discovers keyword libraries beneath a set of root paths. One
	// Finder serves one invocation's configuration; Find may be called
	// repeatedly and independent Finders may run concurrently, since no
	// state outlives a Find call.
	Finder struct {
		logger     *log.Logger
		extractor  libdoc.Extractor
		ignore     *ignore.Set
		extensions map[string]struct{}
	}

	// resultSet accumulates accepted paths, deduplicated by canonical
	// (absolute, cleaned) path. Display strings keep whatever spelling the
	// traversal used, so relative roots yield relative results.
	resultSet struct {
		byCanonical map[string]string
	}
)

// New creates a Finder from opts, filling in production defaults for any
// zero-value field.
func New(opts Options) *Finder {
	f := &Finder{
		logger:    opts.Logger,
		extractor: opts.Extractor,
		ignore:    opts.Ignore,
	}
	if f.logger == nil {
		f.logger = log.New(io.Discard)
	}
	if f.extractor == nil {
		f.extractor = libdoc.NewIntrospector()
	}
	if f.ignore == nil {
		f.ignore, _ = ignore.New(ignore.Options{})
	}

	exts := opts.ResourceExtensions
	if exts == nil {
		exts = config.DefaultResourceExtensions()
	}
	f.extensions = make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		f.extensions[ext] = struct{}{}
	}
	return f
}

// Find walks the trees rooted at roots and returns every discovered keyword
// source, deduplicated and sorted lexicographically. Filesystem errors
// (unreadable root, unreadable directory) abort the walk; documentation
// parse errors only disqualify the candidate they occurred on.
func (f *Finder) Find(roots []string) ([]string, error) {
	results := newResultSet()

	queue := make([]string, len(roots))
	copy(queue, roots)

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		f.logger.Debug("checking", "path", path)

		if f.ignore.Match(path) {
			f.logger.Debug("ignoring", "path", path)
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		if info.IsDir() {
			children, err := f.processDir(path, results)
			if err != nil {
				if errors.Is(err, libdoc.ErrData) {
					f.logger.Info("parsing failed", "err", err)
					continue
				}
				return nil, err
			}
			queue = append(queue, children...)
			continue
		}

		ok, err := f.isKeywordFile(path)
		if err != nil {
			if errors.Is(err, libdoc.ErrData) {
				f.logger.Info("parsing failed", "err", err)
				continue
			}
			return nil, err
		}
		if ok {
			results.add(path)
		}
	}

	return results.sorted(), nil
}

// processDir classifies one directory. A module library is recorded as a
// unit, along with any resource files beneath it; any other directory
// yields its direct children for later evaluation.
func (f *Finder) processDir(dir string, results *resultSet) ([]string, error) {
	isModule, err := f.isModuleLibrary(dir)
	if err != nil {
		return nil, err
	}

	if isModule {
		results.add(dir)
		if err := f.collectResources(dir, results); err != nil {
			return nil, err
		}
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	children := make([]string, 0, len(entries))
	for _, entry := range entries {
		children = append(children, filepath.Join(dir, entry.Name()))
	}
	return children, nil
}

// collectResources records every resource file beneath a module library.
// The ignore set still applies: ignored subtrees are pruned, not descended.
func (f *Finder) collectResources(dir string, results *resultSet) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if f.ignore.Match(path) {
			f.logger.Debug("ignoring", "path", path)
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ok, err := f.isResourceFile(path)
		if err != nil {
			return err
		}
		if ok {
			results.add(path)
		}
		return nil
	})
}

func newResultSet() *resultSet {
	return &resultSet{byCanonical: make(map[string]string)}
}

// add records path unless an equivalent path was already recorded.
func (r *resultSet) add(path string) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = filepath.Clean(path)
	}
	if _, ok := r.byCanonical[key]; !ok {
		r.byCanonical[key] = path
	}
}

// sorted materializes the set as a lexicographically ascending slice. The
// slice is never nil, so an empty result serializes as [] rather than null.
func (r *resultSet) sorted() []string {
	paths := make([]string, 0, len(r.byCanonical))
	for _, p := range r.byCanonical {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
