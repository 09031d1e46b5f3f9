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

package report_test

import (
	"testing"

	"fillmore-labs.com/redeclare/internal/js/ast"
	. "fillmore-labs.com/redeclare/internal/report"
	"fillmore-labs.com/redeclare/internal/testsource"
)

func TestAssignInstead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected string // source after applying the fix, empty for no fix
	}{
		{
			name:     "Initializer",
			src:      "var a = 10;",
			expected: "a = 10;",
		},
		{
			name:     "ForHead",
			src:      "for (var a = 0;;) break;",
			expected: "for (a = 0;;) break;",
		},
		{
			name: "NoInitializer",
			src:  "var a;",
		},
		{
			name: "Lexical",
			src:  "let a = 1;",
		},
		{
			name: "MultipleDeclarators",
			src:  "var a = 1, b = 2;",
		},
		{
			name: "Destructuring",
			src:  "var {a} = o;",
		},
		{
			name: "Exported",
			src:  "export var a = 1;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, p := testsource.Resolve(t, tt.src, nil)

			var decl *ast.VarDecl

			var id *ast.Ident

			for _, b := range p.Bindings {
				if b.Name == "a" {
					decl, id = b.Stmt, b.Ident

					break
				}
			}

			if id == nil {
				t.Fatal("Binding 'a' not found")
			}

			fixes := AssignInstead(decl, id)

			if tt.expected == "" {
				if len(fixes) != 0 {
					t.Errorf("Got %d fixes, expected none", len(fixes))
				}

				return
			}

			if len(fixes) != 1 || len(fixes[0].TextEdits) != 1 {
				t.Fatalf("Got fixes %v, expected a single edit", fixes)
			}

			edit := fixes[0].TextEdits[0]
			start, end := fset.Position(edit.Pos).Offset, fset.Position(edit.End).Offset

			got := tt.src[:start] + string(edit.NewText) + tt.src[end:]
			if got != tt.expected {
				t.Errorf("Got %q, expected %q", got, tt.expected)
			}
		})
	}
}
