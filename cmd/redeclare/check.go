// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"fillmore-labs.com/redeclare/internal/cache"
	"fillmore-labs.com/redeclare/internal/checker"
	"fillmore-labs.com/redeclare/internal/config"
	"fillmore-labs.com/redeclare/internal/report"
	"fillmore-labs.com/redeclare/internal/run"
)

const appName = "redeclare"

var (
	// ErrFailed is returned when error level diagnostics were reported.
	ErrFailed = errors.New("redeclarations found")

	// ErrTooManyWarnings is returned when the warnings exceed --max-warnings.
	ErrTooManyWarnings = errors.New("too many warnings")
)

// newRootCmd creates the redeclare command with its subcommands.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "redeclare [flags] <file|dir>...",
		Short:         "Report redeclared JavaScript variables",
		Long:          `redeclare reports variables that are declared more than once in the same JavaScript scope`,
		Args:          cobra.MinimumNArgs(1),
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCheck,
	}

	flags := cmd.Flags()
	flags.Bool("builtin-globals", false, "report declarations of built-in globals")
	flags.Bool("generated", false, "check generated files")
	flags.Bool("suggest-fixes", true, "show suggested fixes")
	flags.String("level", "warn", "rule level (off|warn|error)")
	flags.String("config", "", "configuration file (default: nearest "+config.FileName+")")
	flags.String("format", "pretty", "output format (pretty|short|json)")
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Int("jobs", 0, "max parallel workers (0=auto)")
	flags.Bool("cache", false, "cache results in the user cache directory")
	flags.Int("max-warnings", -1, "fail when the number of warnings exceeds this (-1=unlimited)")
	flags.BoolP("verbose", "v", false, "log debug output")

	cmd.AddCommand(newVersionCmd(), newGlobalsCmd(), newCleanCacheCmd())

	return cmd
}

// settings is the effective configuration of a check run.
type settings struct {
	options     *run.Options
	filter      *config.File
	jobs        int
	format      report.Format
	color       bool
	useCache    bool
	maxWarnings int
}

// configure merges defaults, the configuration file and the command line flags.
func configure(flags *pflag.FlagSet, out io.Writer, logger *slog.Logger) (settings, error) {
	s := settings{options: run.DefaultOptions()}

	path, err := flags.GetString("config")
	if err != nil {
		return s, fmt.Errorf("failed to get config flag: %w", err)
	}

	if path == "" {
		found, ok, err := config.Find(".")
		if err != nil {
			return s, err
		}

		if ok {
			path = found
		}
	}

	if path != "" {
		file, err := config.Load(path)
		if err != nil {
			return s, err
		}

		logger.Debug("Loaded configuration", slog.String("path", path))

		s.filter = file
		file.Apply(&s.options.Behavior)

		if file.Level != nil {
			s.options.Level = *file.Level
		}

		if file.Jobs != nil {
			s.jobs = *file.Jobs
		}
	}

	for name, behavior := range map[string]config.Behavior{
		"builtin-globals": config.BuiltinGlobals,
		"generated":       config.IncludeGenerated,
		"suggest-fixes":   config.SuggestFixes,
	} {
		if !flags.Changed(name) {
			continue
		}

		value, err := flags.GetBool(name)
		if err != nil {
			return s, fmt.Errorf("failed to get %s flag: %w", name, err)
		}

		s.options.Behavior.Set(behavior, value)
	}

	if flags.Changed("level") {
		str, err := flags.GetString("level")
		if err != nil {
			return s, fmt.Errorf("failed to get level flag: %w", err)
		}

		if err := s.options.Level.UnmarshalText([]byte(str)); err != nil {
			return s, err
		}
	}

	if flags.Changed("jobs") {
		if s.jobs, err = flags.GetInt("jobs"); err != nil {
			return s, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}

	format, err := flags.GetString("format")
	if err != nil {
		return s, fmt.Errorf("failed to get format flag: %w", err)
	}

	if err := s.format.Set(format); err != nil {
		return s, err
	}

	colorMode, err := flags.GetString("color")
	if err != nil {
		return s, fmt.Errorf("failed to get color flag: %w", err)
	}

	if s.color, err = useColor(colorMode, out); err != nil {
		return s, err
	}

	if s.useCache, err = flags.GetBool("cache"); err != nil {
		return s, fmt.Errorf("failed to get cache flag: %w", err)
	}

	if s.maxWarnings, err = flags.GetInt("max-warnings"); err != nil {
		return s, fmt.Errorf("failed to get max-warnings flag: %w", err)
	}

	return s, nil
}

// useColor resolves the --color mode for out.
func useColor(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "on", "always":
		return true, nil

	case "off", "never":
		return false, nil

	case "auto":
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false, nil
		}

		f, ok := out.(*os.File)

		return ok && term.IsTerminal(int(f.Fd())), nil

	default:
		return false, fmt.Errorf("unknown color mode %q, expected auto, on or off", mode)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// runCheck executes the root command: it checks all files and prints the diagnostics.
func runCheck(cmd *cobra.Command, args []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), verbose)

	s, err := configure(cmd.Flags(), cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}

	logger.Debug("Configuration",
		slog.Any("options", s.options),
		slog.String("format", s.format.String()),
		slog.Int("jobs", s.jobs))

	var c *cache.Cache
	if s.useCache {
		if c, err = cache.Open(appName); err != nil {
			return err
		}

		logger.Debug("Using cache", slog.String("dir", c.Dir()))
	}

	ch := &checker.Checker{
		Options: s.options,
		Filter:  s.filter,
		Cache:   c,
		Jobs:    s.jobs,
		Logger:  logger,
	}

	files, err := ch.Collect(args)
	if err != nil {
		return err
	}

	logger.Debug("Discovered files", slog.Int("count", len(files)))

	result, err := ch.Check(cmd.Context(), files)
	if err != nil {
		return err
	}

	diagnostics := result.Diagnostics()

	printer := &report.Printer{
		Format: s.format,
		Color:  s.color,
		Fset:   result.Fset,
		Source: result.Source,
	}

	if err := printer.Print(cmd.OutOrStdout(), diagnostics); err != nil {
		return err
	}

	return verdict(diagnostics, s.maxWarnings)
}

// verdict returns an error when the run failed.
func verdict(diagnostics []report.Diagnostic, maxWarnings int) error {
	var errs, warnings int

	for _, d := range diagnostics {
		if d.Severity == report.Error {
			errs++
		} else {
			warnings++
		}
	}

	switch {
	case errs > 0:
		return fmt.Errorf("%w: %d errors, %d warnings", ErrFailed, errs, warnings)

	case maxWarnings >= 0 && warnings > maxWarnings:
		return fmt.Errorf("%w: %d warnings, at most %d allowed", ErrTooManyWarnings, warnings, maxWarnings)

	default:
		return nil
	}
}
