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

package report_test

import (
	"encoding/json"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/redeclare/internal/js/ast"
	. "fillmore-labs.com/redeclare/internal/report"
)

const printSrc = "var a;\n\tvar a;\nvar 变量; var 变量;\n"

func printerFixture(t *testing.T) (*token.FileSet, []Diagnostic) {
	t.Helper()

	fset := token.NewFileSet()
	handle := fset.AddFile("test.js", -1, len(printSrc))
	handle.SetLinesForContent([]byte(printSrc))

	span := func(needle string, n int) ast.Span {
		off := 0
		for i := 0; ; i++ {
			idx := strings.Index(printSrc[off:], needle)
			if idx < 0 {
				t.Fatalf("Occurrence %d of %q not found", n, needle)
			}

			if i == n {
				start := off + idx

				return ast.Span{Pos: handle.Pos(start), End: handle.Pos(start + len(needle))}
			}

			off += idx + len(needle)
		}
	}

	at := func(offset, length int) ast.Span {
		return ast.Span{Pos: handle.Pos(offset), End: handle.Pos(offset + length)}
	}

	return fset, []Diagnostic{
		Redeclared("a", at(12, 1), at(4, 1)),
		BuiltinShadow("变量", span("变量", 1)),
	}
}

func TestPrintShort(t *testing.T) {
	t.Parallel()

	fset, ds := printerFixture(t)

	var b strings.Builder
	if err := (&Printer{Format: FormatShort, Fset: fset}).Print(&b, ds); err != nil {
		t.Fatal(err)
	}

	want := `test.js:2:6: warning: 'a' is already defined. [redeclare]
test.js:3:17: warning: '变量' is already defined as a built-in global variable. [redeclare-builtin]
`
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintPretty(t *testing.T) {
	t.Parallel()

	fset, ds := printerFixture(t)

	p := &Printer{
		Format: FormatPretty,
		Fset:   fset,
		Source: func(string) ([]byte, bool) { return []byte(printSrc), true },
	}

	var b strings.Builder
	if err := p.Print(&b, ds[:1]); err != nil {
		t.Fatal(err)
	}

	want := `warning[redeclare]: 'a' is already defined.
  --> test.js:2:6
  |
2 |     var a;
  |         ^ 'a' cannot be redeclared here.
  |
1 | var a;
  |     ^ 'a' is already defined here.
`
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}

	b.Reset()

	if err := p.Print(&b, ds[1:]); err != nil {
		t.Fatal(err)
	}

	// Wide characters occupy two columns each
	if !strings.Contains(b.String(), "\n  |               ^^^^ ") {
		t.Errorf("Unexpected caret line in:\n%s", b.String())
	}
}

func TestPrintPrettyNoSource(t *testing.T) {
	t.Parallel()

	fset, ds := printerFixture(t)

	var b strings.Builder
	if err := (&Printer{Fset: fset}).Print(&b, ds[:1]); err != nil {
		t.Fatal(err)
	}

	want := `warning[redeclare]: 'a' is already defined.
  --> test.js:2:6
  = note: test.js:1:5: 'a' is already defined here.
`
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintJSON(t *testing.T) {
	t.Parallel()

	fset, ds := printerFixture(t)

	var b strings.Builder
	if err := (&Printer{Format: FormatJSON, Fset: fset}).Print(&b, ds); err != nil {
		t.Fatal(err)
	}

	var got []struct {
		File     string `json:"file"`
		Rule     string `json:"rule"`
		Severity string `json:"severity"`
		Labels   []struct {
			Line, Column int
		} `json:"labels"`
	}

	if err := json.Unmarshal([]byte(b.String()), &got); err != nil {
		t.Fatalf("Invalid JSON %q: %v", b.String(), err)
	}

	if len(got) != 2 || got[0].Rule != "redeclare" || got[1].Rule != "redeclare-builtin" || got[0].Severity != "warning" {
		t.Fatalf("Unexpected output %+v", got)
	}

	if l := got[0].Labels; len(l) != 2 || l[0].Line != 2 || l[0].Column != 6 || l[1].Line != 1 {
		t.Errorf("Unexpected labels %+v", l)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	var f Format

	if err := f.Set("JSON"); err != nil || f != FormatJSON {
		t.Errorf("Got %s, %v, expected json", f, err)
	}

	if err := f.Set("sarif"); err == nil {
		t.Error("Expected error for unknown format")
	}

	if got := Format(7).String(); got != "Format(7)" {
		t.Errorf("Got %q", got)
	}
}
