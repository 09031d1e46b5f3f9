// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package run drives the redeclare pipeline: parse, resolve, classify and report.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/redeclare/analyzer/level"
	"fillmore-labs.com/redeclare/internal/astutil"
	"fillmore-labs.com/redeclare/internal/config"
	"fillmore-labs.com/redeclare/internal/js/ast"
	"fillmore-labs.com/redeclare/internal/js/parser"
	"fillmore-labs.com/redeclare/internal/report"
	"fillmore-labs.com/redeclare/internal/resolve"
)

// ErrNoFileInfo is returned when a parsed file is not part of its file set.
var ErrNoFileInfo = errors.New("file without position information")

// Extensions are the file name extensions of checked JavaScript sources.
var Extensions = []string{".js", ".mjs", ".cjs"}

// IsScript reports whether filename names a JavaScript source.
func IsScript(filename string) bool {
	return slices.Contains(Extensions, filepath.Ext(filename))
}

// Result is the outcome of checking a single file.
type Result struct {
	// File is the parsed file, partial when it has syntax errors.
	File *ast.File

	// Skipped is set for generated files that are not checked.
	Skipped bool

	// Diagnostics are the findings, ordered by group and member.
	Diagnostics []report.Diagnostic
}

// CheckFile parses src, adds it to fset and returns the redeclarations found.
//
// Syntax errors are returned as diagnostics, the redeclaration analysis is skipped for such files.
func (o *Options) CheckFile(ctx context.Context, fset *token.FileSet, filename string, src []byte) (Result, error) {
	defer trace.StartRegion(ctx, "CheckFile").End()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return Result{File: f, Diagnostics: syntaxErrors(fset.File(f.Pos()), err)}, nil
	}

	currentFile := astutil.NewCurrentFile(fset, f)
	if !currentFile.Valid() {
		return Result{File: f}, fmt.Errorf("%s: %w", filename, ErrNoFileInfo)
	}

	// Skip generated files
	if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
		return Result{File: f, Skipped: true}, nil
	}

	if o.Level == level.Off {
		return Result{File: f}, nil
	}

	classifier := o.Classifier()

	region := trace.StartRegion(ctx, "Resolve")
	program := resolve.File(f, classifier.Predeclared())
	region.End()

	diagnostics := classifier.Classify(ctx, program.Groups)

	defer trace.StartRegion(ctx, "Report").End()

	kept := diagnostics[:0]
	for _, d := range diagnostics {
		if currentFile.Suppressed(d.Span().Pos) {
			continue
		}

		if o.Level == level.Error {
			d.Severity = report.Error
		}

		kept = append(kept, d)
	}

	return Result{File: f, Diagnostics: kept}, nil
}

func syntaxErrors(handle *token.File, err error) []report.Diagnostic {
	list := parser.ParseErrors(err)
	if len(list) == 0 || handle == nil {
		return []report.Diagnostic{report.SyntaxError(token.NoPos, err.Error())}
	}

	diagnostics := make([]report.Diagnostic, 0, len(list))
	for _, e := range list {
		offset := min(max(e.Pos.Offset, 0), handle.Size())
		diagnostics = append(diagnostics, report.SyntaxError(handle.Pos(offset), e.Msg))
	}

	return diagnostics
}

// Run executes the redeclare analyzer's pipeline on the JavaScript files of a package.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "Redeclare")
	defer task.End()

	if p.Pkg != nil {
		trace.Log(ctx, "package", p.Pkg.Path())
	}

	for _, filename := range o.scripts(p) {
		src, err := o.readFile(p, filename)
		if err != nil {
			return nil, fmt.Errorf("redeclare: %w", err)
		}

		result, err := o.CheckFile(ctx, p.Fset, filename, src)
		if err != nil {
			astutil.InternalError(p.Report, result.File, err)

			continue
		}

		for _, d := range result.Diagnostics {
			p.Report(d.Analysis())
		}
	}

	return nil, nil
}

// scripts returns the JavaScript files of the package: the non-Go files of the pass and,
// with [config.PackageScripts], those in the directories of its Go files.
func (o *Options) scripts(p *analysis.Pass) []string {
	var scripts []string

	for _, name := range p.OtherFiles {
		if IsScript(name) {
			scripts = append(scripts, name)
		}
	}

	if !o.Behavior.Enabled(config.PackageScripts) {
		return scripts
	}

	var dirs []string

	for _, f := range p.Files {
		if handle := p.Fset.File(f.Pos()); handle != nil {
			if dir := filepath.Dir(handle.Name()); !slices.Contains(dirs, dir) {
				dirs = append(dirs, dir)
			}
		}
	}

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue // a missing directory has no scripts
		}

		for _, e := range entries {
			name := filepath.Join(dir, e.Name())
			if e.Type().IsRegular() && IsScript(name) && !slices.Contains(scripts, name) {
				scripts = append(scripts, name)
			}
		}
	}

	return scripts
}

func (o *Options) readFile(p *analysis.Pass, filename string) ([]byte, error) {
	if p.ReadFile != nil && slices.Contains(p.OtherFiles, filename) {
		return p.ReadFile(filename)
	}

	return os.ReadFile(filename)
}
