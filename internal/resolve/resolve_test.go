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

package resolve_test

import (
	"fmt"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/redeclare/internal/resolve"
	"fillmore-labs.com/redeclare/internal/scope"
	"fillmore-labs.com/redeclare/internal/testsource"
)

// summary renders each group as its name followed by the source offsets of its members, "-" for implicit anchors.
func summary(fset *token.FileSet, p *Program) []string {
	result := make([]string, 0, len(p.Groups))
	for _, g := range p.Groups {
		var b strings.Builder

		b.WriteString(g.Name)

		for m := range g.Members() {
			if m.Ident == nil {
				b.WriteString(" -")

				continue
			}

			fmt.Fprintf(&b, " %d", fset.Position(m.Ident.Pos()).Offset)
		}

		result = append(result, b.String())
	}

	return result
}

func isBuiltin(name string) bool { return name == "globalThis" || name == "Object" }

func TestGroups(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name        string
		src         string
		predeclared func(string) bool
		want        []string
	}{
		// keep-sorted start
		{"arrow_body", "const x = () => { var x; };", nil, []string{}},
		{"arrow_parameter", "((a) => { var a; });", nil, []string{"a 2 14"}},
		{"assignment", "var a = 3; a = 10;", nil, []string{}},
		{"catch_and_let", "try {} catch (e) { let e; }", nil, []string{"e 14 23"}},
		{"catch_and_var", "try {} catch (e) { var e; }", nil, []string{}},
		{"destructuring", "var {a, b: c} = o; var c;", nil, []string{"c 11 23"}},
		{"export", "export var a; var a;", nil, []string{"a 11 18"}},
		{"for_head", "for (var a, a;;);", nil, []string{"a 9 12"}},
		{"for_let_and_body", "for (let i = 0;;) { let i; }", nil, []string{}},
		{"function_declarations", "function a() {} function a() {}", nil, []string{"a 9 25"}},
		{"function_expression_name", "var f = function a() { var a; };", nil, []string{}},
		{"import", "import a from 'x'; var a;", nil, []string{"a 7 23"}},
		{"let_in_same_block", "{ let b; let b; }", nil, []string{"b 6 13"}},
		{"let_in_sibling_blocks", "if (x) { let b; } else { let b; }", nil, []string{}},
		{"let_in_static_block", "class C { static { var a; { let a; } } }", nil, []string{}},
		{"nested_block_in_static_block", "class C { static { { var a; } var a; } }", nil, []string{"a 25 34"}},
		{"parameter_and_var", "function f(a) { var a; }", nil, []string{"a 11 20"}},
		{"predeclared_disabled", "var Object = 0;", nil, []string{}},
		{"predeclared_in_function", "function f() { var Object; }", isBuiltin, []string{}},
		{"predeclared_let_in_block", "{ let Object; }", isBuiltin, []string{}},
		{"predeclared_single", "var globalThis = foo;", isBuiltin, []string{"globalThis - 4"}},
		{"predeclared_twice", "var Object; var Object;", isBuiltin, []string{"Object - 4 16"}},
		{"separate_static_blocks", "class C { static { var a; } static { var a; } }", nil, []string{}},
		{"static_block", "class C { static { var a; var a; } }", nil, []string{"a 23 30"}},
		{"static_block_and_global", "var a; class C { static { var a; } }", nil, []string{}},
		{"switch", "switch(foo) { case a: var b = 3;\ncase b: var b = 4}", nil, []string{"b 26 45"}},
		{"var_in_function", "function f() { var a; var a; }", nil, []string{"a 19 26"}},
		{"var_in_nested_block", "function f() { var a; if (test) { var a; } }", nil, []string{"a 19 38"}},
		{"var_in_nested_function", "var a = 3; var b = function() { var a = 10; };", nil, []string{}},
		{"var_in_other_function", "var a; function g() { var a; }", nil, []string{}},
		{"var_twice", "var a; var a;", nil, []string{"a 4 11"}},
		// keep-sorted end
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, p := testsource.Resolve(t, tt.src, tt.predeclared)

			if diff := cmp.Diff(tt.want, summary(fset, p)); diff != "" {
				t.Errorf("Groups mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBindings(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name        string
		src         string
		binding     string
		kind        BindingKind
		scope       scope.Kind
		target      scope.Kind
		wantLexical bool
	}{
		{"var_in_block", "function f() { { var a; } }", "a", VariableDeclarator, scope.Block, scope.Function, false},
		{"let_in_block", "{ let a; }", "a", VariableDeclarator, scope.Block, scope.Block, true},
		{"for_of_let", "for (let a of xs) {}", "a", VariableDeclarator, scope.ForHead, scope.ForHead, true},
		{"for_in_var", "for (var a in o) {}", "a", VariableDeclarator, scope.Global, scope.Global, false},
		{"parameter", "function f(a) {}", "a", FormalParameter, scope.Function, scope.Function, false},
		{"rest_parameter", "function f(...a) {}", "a", FormalParameter, scope.Function, scope.Function, false},
		{"function_in_block", "{ function a() {} }", "a", FunctionDeclaration, scope.Block, scope.Block, true},
		{"function_in_static_block", "class C { static { function a() {} } }", "a", FunctionDeclaration, scope.ClassStaticBlock, scope.ClassStaticBlock, false},
		{"class", "class a {}", "a", ClassDeclaration, scope.Global, scope.Global, true},
		{"catch", "try {} catch ({ a }) {}", "a", CatchParameter, scope.Catch, scope.Catch, true},
		{"import", "import { x as a } from 'm';", "a", Import, scope.Global, scope.Global, true},
		{"case", "switch (x) { case 1: let a; }", "a", VariableDeclarator, scope.Switch, scope.Switch, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, p := testsource.Resolve(t, tt.src, nil)

			var found *Binding

			for _, b := range p.Bindings {
				if b.Name == tt.binding {
					found = b

					break
				}
			}

			if found == nil {
				t.Fatalf("Binding %q not found", tt.binding)
			}

			if got, want := found.Kind, tt.kind; got != want {
				t.Errorf("Got kind %s, expected %s", got, want)
			}

			if got, want := found.Scope.Kind, tt.scope; got != want {
				t.Errorf("Got scope %s, expected %s", got, want)
			}

			if got, want := found.Target.Kind, tt.target; got != want {
				t.Errorf("Got target %s, expected %s", got, want)
			}

			if got, want := found.Lexical, tt.wantLexical; got != want {
				t.Errorf("Got lexical %t, expected %t", got, want)
			}

			if !found.Scope.Within(found.Target) {
				t.Errorf("Scope %s is not within target %s", found.Scope, found.Target)
			}
		})
	}
}

func TestScopes(t *testing.T) {
	t.Parallel()

	const src = "function f(a) { { let b; } try {} catch (e) {} }\nclass C { static {} }\n(() => 1);"

	_, p := testsource.Resolve(t, src, nil)

	got := make([]string, 0, len(p.Scopes))
	for _, s := range p.Scopes {
		got = append(got, s.Kind.String())
	}

	// the try block precedes the catch scope
	want := []string{"global", "function", "block", "block", "catch", "class static block", "function"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scopes mismatch (-want +got):\n%s", diff)
	}

	if p.Global != p.Scopes[0] || p.Global.Node != p.File {
		t.Error("Expected the first scope to be the global scope of the file")
	}
}

func TestSpan(t *testing.T) {
	t.Parallel()

	fset, p := testsource.Resolve(t, "var globalThis;", isBuiltin)
	if len(p.Groups) != 1 {
		t.Fatalf("Got %d groups, expected 1", len(p.Groups))
	}

	g := p.Groups[0]
	if g.Anchor.Kind != PredeclaredGlobal || g.Anchor.Span().Pos.IsValid() {
		t.Errorf("Expected an implicit anchor without position, got %s", g.Anchor.Kind)
	}

	span := g.Redeclared[0].Span()
	if got, want := fset.Position(span.Pos).Offset, 4; got != want {
		t.Errorf("Got span start %d, expected %d", got, want)
	}

	if got, want := int(span.End-span.Pos), len("globalThis"); got != want {
		t.Errorf("Got span length %d, expected %d", got, want)
	}
}

func TestBindingOrder(t *testing.T) {
	t.Parallel()

	const src = "function f(a, b = () => { var c; }) { var d; } class C { static { let e; } } var g;"

	fset, p := testsource.Resolve(t, src, func(string) bool { return true })

	var got []string
	for _, b := range p.Bindings {
		got = append(got, fmt.Sprintf("%s@%d", b.Name, fset.Position(b.Span().Pos).Offset))
	}

	want := []string{"f@9", "a@11", "b@14", "c@30", "d@42", "C@53", "e@70", "g@81"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Bindings mismatch (-want +got):\n%s", diff)
	}
}
