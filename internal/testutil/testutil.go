// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error
// handling. Common helpers include fixture tree construction (MustWriteTree,
// MustWriteFile, MustMkdirAll) and directory changes (MustChdir).
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// MustWriteFile writes content to path, creating parent directories as
// needed. The test fails immediately on error.
func MustWriteFile(t testing.TB, path, content string) {
	t.Helper()
	MustMkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// MustMkdirAll creates dir and any missing parents. The test fails
// immediately on error.
func MustMkdirAll(t testing.TB, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}
}

// MustWriteTree materializes a fixture tree under root. Keys are
// slash-separated relative paths; a key ending in "/" creates an empty
// directory, any other key creates a file with the given content.
func MustWriteTree(t testing.TB, root string, tree map[string]string) {
	t.Helper()
	for rel, content := range tree {
		target := filepath.Join(root, filepath.FromSlash(rel))
		if len(rel) > 0 && rel[len(rel)-1] == '/' {
			MustMkdirAll(t, target)
			continue
		}
		MustWriteFile(t, target, content)
	}
}

// MustChdir changes the current working directory to dir. It returns a
// cleanup function that restores the original directory. The test fails
// immediately if the directory change fails.
func MustChdir(t testing.TB, dir string) func() {
	t.Helper()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get current directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory to %s: %v", dir, err)
	}
	return func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Errorf("failed to restore directory to %s: %v", originalWd, err)
		}
	}
}
