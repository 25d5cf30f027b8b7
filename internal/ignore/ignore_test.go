// SPDX-License-Identifier: MPL-2.0

package ignore

import (
	"errors"
	"path/filepath"
	"testing"

	"libscout/internal/testutil"
)

func TestMatch_ExactPath(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "build")

	s, err := New(Options{Paths: []string{target}})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if !s.Match(target) {
		t.Error("absolute spelling should match")
	}
	if s.Match(filepath.Join(tmpDir, "src")) {
		t.Error("sibling path should not match")
	}
	if s.Match(filepath.Join(target, "nested")) {
		t.Error("exact-path matching does not extend to descendants; pruning is the walker's job")
	}
}

func TestMatch_RelativeAndAbsoluteAreEquivalent(t *testing.T) {
	tmpDir := t.TempDir()
	restore := testutil.MustChdir(t, tmpDir)
	defer restore()

	s, err := New(Options{Paths: []string{"build"}})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if !s.Match(filepath.Join(tmpDir, "build")) {
		t.Error("relative ignore entry should match the absolute candidate")
	}
	if !s.Match("build") {
		t.Error("relative ignore entry should match the relative candidate")
	}
}

func TestMatch_BareNames(t *testing.T) {
	s, err := New(Options{Names: []string{"__pycache__", ""}})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if !s.Match("/some/deep/__pycache__") {
		t.Error("blacklisted bare name should match anywhere")
	}
	if s.Match("/some/deep/__pycache__2") {
		t.Error("bare-name match must be exact, not a prefix")
	}
}

func TestMatch_Globs(t *testing.T) {
	s, err := New(Options{Globs: []string{"**/tmp", "**/*.bak"}})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if !s.Match("/work/project/tmp") {
		t.Error("directory glob should match")
	}
	if !s.Match("/work/project/old.bak") {
		t.Error("extension glob should match")
	}
	if s.Match("/work/project/src") {
		t.Error("non-matching path should pass")
	}
}

func TestNew_InvalidGlob(t *testing.T) {
	_, err := New(Options{Globs: []string{"[unclosed"}})
	if err == nil {
		t.Fatal("New() should reject an invalid pattern")
	}
	if !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("error should match ErrInvalidPattern, got: %v", err)
	}
	var patErr *InvalidPatternError
	if !errors.As(err, &patErr) || patErr.Pattern != "[unclosed" {
		t.Errorf("error should carry the offending pattern, got: %v", err)
	}
}

func TestEmpty(t *testing.T) {
	s, err := New(Options{})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if !s.Empty() {
		t.Error("a Set built from zero options should be empty")
	}
	if s.Match("/anything") {
		t.Error("an empty Set should match nothing")
	}

	s, err = New(Options{Names: []string{"x"}})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if s.Empty() {
		t.Error("a Set with entries should not report empty")
	}
}
