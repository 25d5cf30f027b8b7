// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for libscout.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug-level logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// outputPath is the file the JSON result is written to ("" means stdout)
	outputPath string
	// ignorePaths are exact paths excluded from discovery
	ignorePaths []string
	// ignoreGlobs are doublestar patterns excluded from discovery
	ignoreGlobs []string

	// rootCmd represents the base command; libscout has a single verb, so
	// discovery runs directly on the root.
	rootCmd = &cobra.Command{
		Use:   "libscout PATH...",
		Short: "Discover keyword libraries in directory trees",
		Long: TitleStyle.Render("libscout") + SubtitleStyle.Render(" - Discover keyword libraries in directory trees") + `

libscout walks one or more root paths and reports every reusable keyword
source it finds: module libraries (initializer-marked packages exposing
documented keywords), script-based library files, and declarative resource
files. Test suite files and caches are skipped.

The result is a JSON array of paths, sorted lexicographically, printed to
standard output or written to a file.

` + SubtitleStyle.Render("Examples:") + `
  libscout .                          Discover under the current directory
  libscout libs/ resources/           Multiple roots
  libscout . -i build -i dist         Ignore exact paths
  libscout . --ignore-glob '**/tmp'   Ignore by pattern
  libscout . -o libraries.json        Write the result to a file`,
		Args: cobra.MinimumNArgs(1),
		RunE: runDiscover,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the JSON result to this file instead of stdout")
	rootCmd.Flags().StringArrayVarP(&ignorePaths, "ignore", "i", nil, "ignore the given path (repeatable)")
	rootCmd.Flags().StringArrayVar(&ignoreGlobs, "ignore-glob", nil, "ignore paths matching the given doublestar pattern (repeatable)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "be more talkative (debug-level logging)")
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/libscout/config.yaml)")
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
