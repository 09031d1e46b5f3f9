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

package checker_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/redeclare/internal/cache"
	. "fillmore-labs.com/redeclare/internal/checker"
	"fillmore-labs.com/redeclare/internal/config"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

func relative(t *testing.T, dir string, files []string) []string {
	t.Helper()

	r := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(dir, f)
		if err != nil {
			t.Fatal(err)
		}

		r = append(r, filepath.ToSlash(rel))
	}

	return r
}

func TestCollect(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"a.js":                  "",
		"b.mjs":                 "",
		"c.cjs":                 "",
		"d.ts":                  "",
		"lib/e.js":              "",
		"lib/e.min.js":          "",
		"node_modules/m/m.js":   "",
		".git/hooks/h.js":       "",
		"vendor/v.js":           "",
		"vendor/nested/deep.js": "",
	})

	filter := &config.File{Exclude: []string{"*.min.js", "vendor/*"}}

	files, err := (&Checker{Filter: filter}).Collect([]string{dir})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	want := []string{"a.js", "b.mjs", "c.cjs", "lib/e.js", "vendor/nested/deep.js"}
	if diff := cmp.Diff(want, relative(t, dir, files)); diff != "" {
		t.Errorf("Collect mismatch (-want +got):\n%s", diff)
	}

	// Explicit files bypass the filter
	explicit := filepath.Join(dir, "lib", "e.min.js")

	files, err = (&Checker{Filter: filter}).Collect([]string{explicit})
	if err != nil || len(files) != 1 {
		t.Errorf("Got %v, %v, expected %s", files, err, explicit)
	}
}

func TestCollectEmpty(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"README.md": ""})

	if _, err := (&Checker{}).Collect([]string{dir}); !errors.Is(err, ErrNoInput) {
		t.Errorf("Got error %v, expected %v", err, ErrNoInput)
	}
}

func summary(r *Result) []string {
	var s []string

	for _, f := range r.Files {
		for _, d := range f.Diagnostics {
			pos := r.Fset.Position(d.Span().Pos)
			s = append(s, fmt.Sprintf("%s:%d:%d %s", filepath.Base(pos.Filename), pos.Line, pos.Column, d.Message))
		}
	}

	return s
}

func TestCheck(t *testing.T) {
	t.Parallel()

	files := map[string]string{"generated.js": "// @generated\nvar a; var a;\n"}
	for i := range 20 {
		files[fmt.Sprintf("f%02d.js", i)] = fmt.Sprintf("var v%d;\nvar v%d;\n", i, i)
	}

	dir := writeFiles(t, files)

	c, err := cache.OpenDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	ch := &Checker{Cache: c, Jobs: 4}

	paths, err := ch.Collect([]string{dir})
	if err != nil {
		t.Fatal(err)
	}

	first, err := ch.Check(t.Context(), paths)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	var want []string
	for i := range 20 {
		want = append(want, fmt.Sprintf("f%02d.js:2:5 'v%d' is already defined.", i, i))
	}

	if diff := cmp.Diff(want, summary(first)); diff != "" {
		t.Errorf("Diagnostics mismatch (-want +got):\n%s", diff)
	}

	last := first.Files[len(first.Files)-1]
	if filepath.Base(last.Path) != "generated.js" || !last.Skipped {
		t.Errorf("Expected skipped generated file, got %+v", last)
	}

	second, err := ch.Check(t.Context(), paths)
	if err != nil {
		t.Fatalf("Cached check failed: %v", err)
	}

	for _, f := range second.Files {
		if !f.Cached {
			t.Errorf("Expected cached result for %s", f.Path)
		}
	}

	if diff := cmp.Diff(want, summary(second)); diff != "" {
		t.Errorf("Cached diagnostics mismatch (-want +got):\n%s", diff)
	}

	if src, ok := second.Source(paths[0]); !ok || len(src) == 0 {
		t.Errorf("Missing source for %s", paths[0])
	}
}

func TestCheckCanceled(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"a.js": "var a;"})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := (&Checker{}).Check(ctx, []string{filepath.Join(dir, "a.js")})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Got error %v, expected %v", err, context.Canceled)
	}
}

func TestCheckMissingFile(t *testing.T) {
	t.Parallel()

	_, err := (&Checker{}).Check(t.Context(), []string{filepath.Join(t.TempDir(), "missing.js")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Got error %v, expected %v", err, os.ErrNotExist)
	}
}
