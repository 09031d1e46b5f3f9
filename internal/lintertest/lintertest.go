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

// Package lintertest runs an analyzer over JavaScript fixtures stored in txtar archives.
//
// Each archive holds the files of one package. Expected diagnostics are given by
// comments of the form
//
//	var a; // want "regexp" "regexp"
//
// on the line the diagnostic is reported on. An archive member named "x.js.golden"
// holds the content of "x.js" after applying all suggested fixes.
package lintertest

import (
	"bytes"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/txtar"
)

const goldenSuffix = ".golden"

// Result holds the diagnostics of a run over one archive.
type Result struct {
	Fset        *token.FileSet
	Dir         string
	Diagnostics []analysis.Diagnostic
}

// Run runs a over the files of the archive and checks the expectations.
func Run(t *testing.T, a *analysis.Analyzer, archive string) Result {
	t.Helper()

	ar, err := txtar.ParseFile(archive)
	if err != nil {
		t.Fatalf("Can't read archive: %v", err)
	}

	dir := t.TempDir()

	var (
		files  []string
		golden = make(map[string][]byte)
	)

	for _, f := range ar.Files {
		if name, ok := strings.CutSuffix(f.Name, goldenSuffix); ok {
			golden[filepath.Join(dir, name)] = f.Data

			continue
		}

		path := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, f.Data, 0o600); err != nil {
			t.Fatal(err)
		}

		files = append(files, path)
	}

	result := Result{Fset: token.NewFileSet(), Dir: dir}

	p := &analysis.Pass{
		Analyzer:   a,
		Fset:       result.Fset,
		OtherFiles: files,
		ReadFile:   os.ReadFile,
		ResultOf:   make(map[*analysis.Analyzer]any),
		Report:     func(d analysis.Diagnostic) { result.Diagnostics = append(result.Diagnostics, d) },
	}

	if _, err := a.Run(p); err != nil {
		t.Fatalf("Analyzer %s failed: %v", a.Name, err)
	}

	check(t, result.Fset, files, result.Diagnostics)

	for path, want := range golden {
		checkGolden(t, result.Fset, path, want, result.Diagnostics)
	}

	return result
}

type key struct {
	file string
	line int
}

func check(t *testing.T, fset *token.FileSet, files []string, diagnostics []analysis.Diagnostic) {
	t.Helper()

	want := make(map[key][]*regexp.Regexp)

	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}

		for i, line := range strings.Split(string(src), "\n") {
			patterns, err := Expectations(line)
			if err != nil {
				t.Errorf("%s:%d: %v", filepath.Base(file), i+1, err)

				continue
			}

			if len(patterns) > 0 {
				want[key{file, i + 1}] = patterns
			}
		}
	}

	for _, d := range diagnostics {
		pos := fset.Position(d.Pos)
		k := key{pos.Filename, pos.Line}

		patterns := want[k]

		idx := slices.IndexFunc(patterns, func(re *regexp.Regexp) bool { return re.MatchString(d.Message) })
		if idx < 0 {
			t.Errorf("%s:%d:%d: unexpected diagnostic: %s", filepath.Base(pos.Filename), pos.Line, pos.Column, d.Message)

			continue
		}

		want[k] = slices.Delete(patterns, idx, idx+1)
	}

	for k, patterns := range want {
		for _, re := range patterns {
			t.Errorf("%s:%d: no diagnostic was reported matching %q", filepath.Base(k.file), k.line, re)
		}
	}
}

var (
	wantComment = regexp.MustCompile(`//\s*want\s+(.*)$`)
	quoted      = regexp.MustCompile("^\\s*(\"(?:[^\"\\\\]|\\\\.)*\"|`[^`]*`)")
)

// Expectations returns the patterns of a "// want" comment in line.
func Expectations(line string) ([]*regexp.Regexp, error) {
	m := wantComment.FindStringSubmatch(line)
	if m == nil {
		return nil, nil
	}

	var patterns []*regexp.Regexp

	for rest := m[1]; strings.TrimSpace(rest) != ""; {
		q := quoted.FindStringSubmatch(rest)
		if q == nil {
			return nil, fmt.Errorf("malformed expectation %q", rest)
		}

		rest = rest[len(q[0]):]

		s, err := strconv.Unquote(q[1])
		if err != nil {
			return nil, fmt.Errorf("malformed expectation %s: %w", q[1], err)
		}

		re, err := regexp.Compile(s)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", s, err)
		}

		patterns = append(patterns, re)
	}

	return patterns, nil
}

func checkGolden(t *testing.T, fset *token.FileSet, path string, want []byte, diagnostics []analysis.Diagnostic) {
	t.Helper()

	src, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Golden file without source: %v", err)
	}

	var edits []analysis.TextEdit

	for _, d := range diagnostics {
		if fset.Position(d.Pos).Filename != path {
			continue
		}

		for _, fix := range d.SuggestedFixes {
			edits = append(edits, fix.TextEdits...)
		}
	}

	got, err := ApplyEdits(fset, src, edits)
	if err != nil {
		t.Fatalf("%s: %v", filepath.Base(path), err)
	}

	if !bytes.Equal(got, want) {
		t.Errorf("%s: fixed source mismatch:\n-- got --\n%s-- want --\n%s", filepath.Base(path), got, want)
	}
}

// ApplyEdits applies non-overlapping edits to src.
func ApplyEdits(fset *token.FileSet, src []byte, edits []analysis.TextEdit) ([]byte, error) {
	edits = slices.Clone(edits)
	slices.SortStableFunc(edits, func(a, b analysis.TextEdit) int { return int(a.Pos - b.Pos) })

	var (
		out  bytes.Buffer
		last int
	)

	for _, e := range edits {
		start, end := fset.Position(e.Pos).Offset, fset.Position(e.End).Offset
		if start < last || end < start || end > len(src) {
			return nil, fmt.Errorf("invalid or overlapping edit [%d, %d)", start, end)
		}

		out.Write(src[last:start])
		out.Write(e.NewText)
		last = end
	}

	out.Write(src[last:])

	return out.Bytes(), nil
}
