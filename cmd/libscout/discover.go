// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"

	"libscout/internal/config"
	"libscout/internal/finder"
	"libscout/internal/ignore"
	"libscout/internal/issue"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// runDiscover wires config, logger, ignore set, and finder together and
// runs one discovery pass over the positional root paths.
func runDiscover(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		if cfgFile != "" {
			return &ExitError{Code: 1, Err: issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(cfgFile).
				WithSuggestion("Check the config file syntax (YAML)").
				Wrap(err).
				BuildError()}
		}
		// A broken default config file degrades to defaults; an explicitly
		// requested one does not.
		fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render("Warning: ")+err.Error())
		cfg = config.DefaultConfig()
	}

	logger := newLogger(cmd, verbose || cfg.Verbose)

	ignoreSet, err := ignore.New(ignore.Options{
		Paths: ignorePaths,
		Names: cfg.MergedBlacklist(),
		Globs: append(cfg.IgnoreGlobs, ignoreGlobs...),
	})
	if err != nil {
		return &ExitError{Code: 1, Err: issue.NewErrorContext().
			WithOperation("build ignore set").
			WithSuggestion("Check --ignore-glob patterns for doublestar syntax").
			Wrap(err).
			BuildError()}
	}

	f := finder.New(finder.Options{
		Logger:             logger,
		Ignore:             ignoreSet,
		ResourceExtensions: cfg.ResourceExtensions,
	})

	paths, err := f.Find(args)
	if err != nil {
		return &ExitError{Code: 1, Err: issue.NewErrorContext().
			WithOperation("discover keyword libraries").
			WithSuggestion("Check that every root path exists and is readable").
			Wrap(err).
			BuildError()}
	}

	return writeResult(cmd, paths)
}

// newLogger builds the per-invocation logger the finder traces to. Output
// goes to the command's stdout so log ordering interleaves with the result
// exactly as the run produced it.
func newLogger(cmd *cobra.Command, debug bool) *log.Logger {
	logger := log.NewWithOptions(cmd.OutOrStdout(), log.Options{
		ReportTimestamp: true,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// writeResult serializes paths as a 2-space indented JSON array and writes
// it to the user-supplied output file, or stdout when none was given.
func writeResult(cmd *cobra.Command, paths []string) error {
	data, err := json.MarshalIndent(paths, "", "  ")
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("serializing result: %w", err)}
	}
	data = append(data, '\n')

	if outputPath == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return &ExitError{Code: 1, Err: fmt.Errorf("writing result: %w", err)}
		}
		return nil
	}

	if err := writeOutputFile(outputPath, data); err != nil {
		return &ExitError{Code: 1, Err: issue.NewErrorContext().
			WithOperation("write output file").
			WithResource(outputPath).
			WithSuggestion("Check that the parent directory exists and is writable").
			Wrap(err).
			BuildError()}
	}
	return nil
}
