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

// Package checker runs the redeclare pipeline over files and directories outside of a Go package.
package checker

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/trace"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/redeclare/internal/cache"
	"fillmore-labs.com/redeclare/internal/config"
	"fillmore-labs.com/redeclare/internal/report"
	"fillmore-labs.com/redeclare/internal/run"
)

// ErrNoInput is returned when no JavaScript files were found.
var ErrNoInput = errors.New("no JavaScript files found")

// Checker checks JavaScript files concurrently.
type Checker struct {
	// Options configures the analysis.
	Options *run.Options

	// Filter selects files found in directories, nil selects all.
	Filter *config.File

	// Cache stores results between runs, nil disables caching.
	Cache *cache.Cache

	// Jobs limits the number of files checked in parallel, zero means GOMAXPROCS.
	Jobs int

	// Logger receives debug output, nil discards it.
	Logger *slog.Logger
}

// FileResult is the outcome for a single file.
type FileResult struct {
	Path        string
	Source      []byte
	Cached      bool
	Skipped     bool
	Diagnostics []report.Diagnostic
}

// Result is the outcome of a [Checker.Check] run, with files in input order.
type Result struct {
	Fset  *token.FileSet
	Files []FileResult
}

// Diagnostics returns all diagnostics in file order.
func (r *Result) Diagnostics() []report.Diagnostic {
	var diagnostics []report.Diagnostic
	for _, f := range r.Files {
		diagnostics = append(diagnostics, f.Diagnostics...)
	}

	return diagnostics
}

// Source returns the content of a checked file.
func (r *Result) Source(filename string) ([]byte, bool) {
	for _, f := range r.Files {
		if f.Path == filename {
			return f.Source, true
		}
	}

	return nil, false
}

func (c *Checker) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return c.Logger
}

// Collect expands paths into the list of JavaScript files to check.
// Files named explicitly are always included, directories are walked
// skipping hidden directories and node_modules.
func (c *Checker) Collect(paths []string) ([]string, error) {
	var files []string

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, root)

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && (d.Name() == "node_modules" || strings.HasPrefix(d.Name(), ".")) {
					return filepath.SkipDir
				}

				return nil
			}

			if !d.Type().IsRegular() || !run.IsScript(path) {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}

			if c.Filter.Matches(filepath.ToSlash(rel)) {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("can't walk %s: %w", root, err)
		}
	}

	if len(files) == 0 {
		return nil, ErrNoInput
	}

	return files, nil
}

// Check checks files concurrently. Results are stored in per-file slots, so their
// order is the input order regardless of scheduling.
func (c *Checker) Check(ctx context.Context, files []string) (*Result, error) {
	ctx, task := trace.NewTask(ctx, "Check")
	defer task.End()

	if len(files) == 0 {
		return nil, ErrNoInput
	}

	options := c.Options
	if options == nil {
		options = run.DefaultOptions()
	}

	fingerprint := options.LogValue().String()

	jobs := c.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	result := &Result{Fset: token.NewFileSet(), Files: make([]FileResult, len(files))}

	var hits atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			r, err := c.checkFile(gctx, options, result.Fset, fingerprint, path)
			if err != nil {
				return err
			}

			if r.Cached {
				hits.Add(1)
			}

			result.Files[i] = r

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger().LogAttrs(ctx, slog.LevelDebug, "Checked files",
		slog.Int("files", len(files)),
		slog.Int64("cached", hits.Load()),
		slog.Int("jobs", jobs))

	return result, nil
}

func (c *Checker) checkFile(ctx context.Context, o *run.Options, fset *token.FileSet, fingerprint, path string) (FileResult, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, err
	}

	key := cache.NewKey(fingerprint, path, src)

	if r, ok := c.lookup(ctx, fset, key, path, src); ok {
		return r, nil
	}

	checked, err := o.CheckFile(ctx, fset, path, src)
	if err != nil {
		return FileResult{}, err
	}

	r := FileResult{Path: path, Source: src, Skipped: checked.Skipped, Diagnostics: checked.Diagnostics}

	if c.Cache != nil {
		c.store(ctx, fset.File(checked.File.Pos()), key, r)
	}

	return r, nil
}

// lookup returns the cached result for key. Cache failures are logged and treated as misses.
func (c *Checker) lookup(ctx context.Context, fset *token.FileSet, key cache.Key, path string, src []byte) (FileResult, bool) {
	e, ok, err := c.Cache.Get(key)
	if err != nil {
		c.logger().LogAttrs(ctx, slog.LevelDebug, "Ignoring cache entry", slog.String("file", path), slog.Any("error", err))

		return FileResult{}, false
	}

	if !ok {
		return FileResult{}, false
	}

	handle := fset.AddFile(path, -1, len(src))
	handle.SetLinesForContent(src)

	diagnostics, err := e.Report(handle)
	if err != nil {
		c.logger().LogAttrs(ctx, slog.LevelDebug, "Ignoring cache entry", slog.String("file", path), slog.Any("error", err))

		return FileResult{}, false
	}

	return FileResult{Path: path, Source: src, Cached: true, Skipped: e.Skipped, Diagnostics: diagnostics}, true
}

func (c *Checker) store(ctx context.Context, handle *token.File, key cache.Key, r FileResult) {
	if handle == nil {
		return
	}

	e, err := cache.NewEntry(handle, r.Skipped, r.Diagnostics)
	if err == nil {
		err = c.Cache.Put(key, e)
	}

	if err != nil {
		c.logger().LogAttrs(ctx, slog.LevelWarn, "Can't cache result", slog.String("file", r.Path), slog.Any("error", err))
	}
}
