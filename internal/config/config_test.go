// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"libscout/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !slices.Contains(cfg.Blacklist, "__pycache__") {
		t.Errorf("default blacklist should include __pycache__, got %v", cfg.Blacklist)
	}
	want := []string{".robot", ".resource", ".txt"}
	if !slices.Equal(cfg.ResourceExtensions, want) {
		t.Errorf("default extensions = %v, want %v", cfg.ResourceExtensions, want)
	}
	if cfg.Verbose {
		t.Error("verbose should default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	testutil.MustWriteFile(t, path, `
blacklist:
  - dist
ignore_globs:
  - "**/tmp"
verbose: true
`)

	cfg, err := Load(LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if !slices.Equal(cfg.Blacklist, []string{"dist"}) {
		t.Errorf("blacklist = %v, want [dist]", cfg.Blacklist)
	}
	if !slices.Equal(cfg.IgnoreGlobs, []string{"**/tmp"}) {
		t.Errorf("ignore_globs = %v, want [**/tmp]", cfg.IgnoreGlobs)
	}
	if !cfg.Verbose {
		t.Error("verbose should be true")
	}
	// File settings replace only the keys they name; extensions keep defaults.
	if !slices.Equal(cfg.ResourceExtensions, DefaultResourceExtensions()) {
		t.Errorf("extensions = %v, want defaults", cfg.ResourceExtensions)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(LoadOptions{ConfigFilePath: filepath.Join(t.TempDir(), "nope.yaml")})
	if err == nil {
		t.Fatal("Load() should fail when the --config file does not exist")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	restore := testutil.MustChdir(t, t.TempDir())
	defer restore()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LIBSCOUT_VERBOSE", "true")

	cfg, err := Load(LoadOptions{})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if !cfg.Verbose {
		t.Error("LIBSCOUT_VERBOSE=true should enable verbose")
	}
}

func TestValidate_BadExtension(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ResourceExtensions = append(cfg.ResourceExtensions, "robot")

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
	}
}

func TestMergedBlacklist(t *testing.T) {
	cfg := &Config{Blacklist: []string{"dist", "__pycache__"}}

	merged := cfg.MergedBlacklist()
	if !slices.Contains(merged, "dist") {
		t.Errorf("merged blacklist should include user entries, got %v", merged)
	}
	if !slices.Contains(merged, "__pycache__") {
		t.Errorf("merged blacklist should include defaults, got %v", merged)
	}

	count := 0
	for _, name := range merged {
		if name == "__pycache__" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("merged blacklist should deduplicate, got %v", merged)
	}
}

func TestConfigDir(t *testing.T) {
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	if filepath.Base(dir) != AppName {
		t.Errorf("ConfigDir() = %q, want a %q-suffixed path", dir, AppName)
	}
}
