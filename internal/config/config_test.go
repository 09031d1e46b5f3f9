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

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/redeclare/analyzer/level"
	. "fillmore-labs.com/redeclare/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(BuiltinGlobals, SuggestFixes)
	b.Set(IncludeGenerated, true)
	b.Set(SuggestFixes, false)

	if diff := cmp.Diff([]string{"builtinGlobals", "generated"}, Names(b)); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}

	if b.Enabled(PackageScripts) {
		t.Error("Expected package scripts to be disabled")
	}
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Can't write configuration: %v", err)
	}

	return path
}

func TestFind(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")

	if err := os.MkdirAll(nested, 0o700); err != nil {
		t.Fatal(err)
	}

	want := writeConfig(t, root, "")

	got, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find failed: %t, %v", ok, err)
	}

	if got != want {
		t.Errorf("Got %q, expected %q", got, want)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), `
builtinGlobals = true
level = "error"
jobs = 4
exclude = ["*.min.js", "vendor/*"]
`)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if f.BuiltinGlobals == nil || !*f.BuiltinGlobals {
		t.Error("Expected builtinGlobals to be set")
	}

	if f.Level == nil || *f.Level != level.Error {
		t.Errorf("Got level %v, expected error", f.Level)
	}

	if f.Generated != nil {
		t.Error("Expected generated to be unset")
	}

	var b BitMask[Behavior]
	f.Apply(&b)

	if !b.Enabled(BuiltinGlobals) || b.Enabled(IncludeGenerated) {
		t.Errorf("Unexpected behavior %v", Names(b))
	}

	tests := [...]struct {
		rel  string
		want bool
	}{
		{"src/app.js", true},
		{"dist/app.min.js", false},
		{"vendor/lib.js", false},
		{"src/vendor/lib.js", true},
	}

	for _, tt := range tests {
		if got := f.Matches(tt.rel); got != tt.want {
			t.Errorf("Matches(%q) = %t, expected %t", tt.rel, got, tt.want)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name    string
		content string
		is      error
	}{
		{"unknown_key", "builtinGlobal = true", ErrUnknownKey},
		{"syntax", "builtinGlobals = ", nil},
		{"bad_level", `level = "fatal"`, nil},
		{"negative_jobs", "jobs = -1", nil},
		{"bad_pattern", `include = ["["]`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, t.TempDir(), tt.content))
			if err == nil {
				t.Fatal("Expected error")
			}

			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Got error %v, expected %v", err, tt.is)
			}
		})
	}
}
