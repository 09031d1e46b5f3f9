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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())

	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.js", "var a;\nvar a;\nvar Object;\n")
	cfg := writeFile(t, dir, "empty.toml", "")

	tests := [...]struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{
			name: "default",
			want: "a.js:2:5: warning: 'a' is already defined. [redeclare]\n",
		},
		{
			name: "builtins",
			args: []string{"--builtin-globals"},
			want: "a.js:2:5: warning: 'a' is already defined. [redeclare]\n" +
				"a.js:3:5: warning: 'Object' is already defined as a built-in global variable. [redeclare-builtin]\n",
		},
		{
			name:    "error_level",
			args:    []string{"--level=error"},
			want:    "a.js:2:5: error: 'a' is already defined. [redeclare]\n",
			wantErr: ErrFailed,
		},
		{
			name:    "max_warnings",
			args:    []string{"--max-warnings=0"},
			want:    "a.js:2:5: warning: 'a' is already defined. [redeclare]\n",
			wantErr: ErrTooManyWarnings,
		},
		{
			name: "off",
			args: []string{"--level=off"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"--format=short", "--color=off", "--config=" + cfg}, tt.args...)
			args = append(args, dir)

			out, err := execute(t, args...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Got error %v, expected %v", err, tt.wantErr)
			}

			got := strings.ReplaceAll(out, dir+string(filepath.Separator), "")
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.js", "var undefined;\n")
	writeFile(t, dir, "b.min.js", "var a; var a;\n")
	cfg := writeFile(t, dir, "redeclare.toml", "builtinGlobals = true\nexclude = [\"*.min.js\"]\n")

	out, err := execute(t, "--format=short", "--config="+cfg, dir)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	want := "a.js:1:5: warning: 'undefined' is already defined as a built-in global variable. [redeclare-builtin]\n"
	if diff := cmp.Diff(want, strings.ReplaceAll(out, dir+string(filepath.Separator), "")); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}

	// Flags override the file
	out, err = execute(t, "--format=short", "--config="+cfg, "--builtin-globals=false", dir)
	if err != nil || out != "" {
		t.Errorf("Got %q, %v, expected no output", out, err)
	}
}

func TestInvalidFlags(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.js", "")
	cfg := writeFile(t, dir, "empty.toml", "")

	for _, args := range [][]string{
		{"--format=sarif"},
		{"--color=sometimes"},
		{"--level=fatal"},
		{"--config=" + filepath.Join(dir, "missing.toml")},
		{},
	} {
		full := append([]string{"--config=" + cfg}, args...)
		if len(args) > 0 {
			full = append(full, dir)
		}

		if _, err := execute(t, full...); err == nil {
			t.Errorf("Expected error for %v", args)
		}
	}
}

func TestGlobals(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "globals")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	for _, name := range []string{"Object", "globalThis", "undefined"} {
		found := false
		for _, l := range lines {
			found = found || l == name
		}

		if !found {
			t.Errorf("Missing %s in %q", name, out)
		}
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "version")
	if err != nil || !strings.HasPrefix(out, appName+" ") {
		t.Errorf("Got %q, %v", out, err)
	}
}
