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

package parser_test

import (
	"go/token"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/redeclare/internal/js/ast"
	. "fillmore-labs.com/redeclare/internal/js/parser"
)

func parse(t *testing.T, src string) *ast.File {
	t.Helper()

	fset := token.NewFileSet()

	f, err := ParseFile(fset, "test.js", []byte(src), ParseComments)
	if err != nil {
		t.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return f
}

func TestParseValid(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
	}{
		{"var", "var a = 3; var b = function() { var a = 10; };"},
		{"let_const", "let a = 1; const b = 2, c = 3;"},
		{"let_identifier", "let = 5; let\n"},
		{"asi", "var a = 1\nvar b = 2\na\n++b"},
		{"destructuring", "var { a, b: [c, , d = 1, ...e], ...f } = obj;"},
		{"assign_destructuring", "[a, b] = [b, a]; ({ a, b: c.d } = obj);"},
		{"arrow", "const f = (a, { b }, [c] = [], ...d) => a + b; const g = x => x * 2;"},
		{"async_arrow", "const f = async x => await x; const g = async (a, b) => a;"},
		{"async_function", "async function f() { await g(); for await (const x of y) {} }"},
		{"generator", "function* g() { yield; yield* h(); const x = yield 1; }"},
		{"class", "class A extends B { #x = 1; static y; static { var z; } get a() { return this.#x; } set a(v) {} static async *m() {} constructor() { super(); } }"},
		{"class_static_method", "class C { static() {} static = 1; get; set; async }"},
		{"object", "const o = { a, b: 1, [c]: 2, ...d, get e() {}, set e(v) {}, async f() {}, *g() {}, 'h': 3, 4: 5 };"},
		{"switch", "switch (a) { case 0: let b; break; default: var c; }"},
		{"for", "for (var i = 0, j; i < 10; i++) {} for (const k in o) {} for (let [a, b] of c) {} for (;;) break;"},
		{"for_in_expression", "for (a.b in c); for (x of y);"},
		{"try", "try { a(); } catch { b(); } try {} catch ({ message }) {} finally {}"},
		{"labels", "outer: for (;;) { inner: while (true) { continue outer; } }"},
		{"regexp", "const re = /[/]+/g; a = b / c / d; x = y.replace(/a/, '');"},
		{"template", "const t = `a${b}c${`nested ${d}`}e`; tag`x${y}`;"},
		{"optional_chaining", "a?.b?.[c]?.(d); a ?? b; a ||= b; a &&= b; a ??= b;"},
		{"new", "new A; new A(); new A.b.C(d); new.target; new (f())();"},
		{"operators", "a = b ** c ** d; e = typeof f === 'g' && !h || void 0; i = j instanceof K; l = 'm' in n;"},
		{"conditional", "a = b ? c : d ? e : f; g = h ? i => i : j;"},
		{"module", "import a, { b as c, d } from 'e'; import * as f from 'g'; import 'h'; export { a as default, c }; export const x = 1; export default function () {} export * from 'i';"},
		{"export_default_expression", "export default a + b;"},
		{"import_meta", "const u = import.meta.url; import('x').then(m => m);"},
		{"with", "with (obj) { a = b; }"},
		{"html_comment", "<!-- comment\nvar a;\n--> comment"},
		{"top_level_return", "if (done) return;"},
		{"numbers", "a = 0x1F + 0o7 + 0b1 + 1_000 + 1e3 + .5 + 10n;"},
		{"do_while", "do x++; while (x < 10) y();"},
		{"getter_in_pattern", "const { get, set } = obj;"},
		{"private_in", "class A { #x; static has(o) { return #x in o; } }"},
		{"comments", "// line\n/* block */ var a; /** doc */"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset := token.NewFileSet()
			if _, err := ParseFile(fset, "test.js", []byte(tt.src), 0); err != nil {
				t.Errorf("Unexpected error parsing %q: %v", tt.src, err)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
	}{
		{"missing_paren", "if (a { b(); }"},
		{"unterminated_block", "function f() {"},
		{"bad_arrow", "a + b => c;"},
		{"empty_parens", "x = ();"},
		{"rest_not_arrow", "x = (...a);"},
		{"bad_target", "1 = 2;"},
		{"missing_catch", "try {}"},
		{"unterminated_string", "var a = 'abc"},
		{"stray_token", "var a = ;"},
		{"two_expressions", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset := token.NewFileSet()

			f, err := ParseFile(fset, "test.js", []byte(tt.src), 0)
			if err == nil {
				t.Fatalf("Expected error parsing %q", tt.src)
			}

			if f == nil {
				t.Errorf("Expected partial AST for %q", tt.src)
			}

			if len(ParseErrors(err)) == 0 {
				t.Errorf("Expected scanner.ErrorList, got %T", err)
			}
		})
	}
}

func TestModuleDetection(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name     string
		filename string
		src      string
		want     bool
	}{
		{"script", "a.js", "var a;", false},
		{"import", "a.js", "import a from 'a';", true},
		{"export", "a.js", "export const a = 1;", true},
		{"mjs", "a.mjs", "var a;", true},
		{"dynamic_import", "a.js", "import('a');", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset := token.NewFileSet()

			f, err := ParseFile(fset, tt.filename, []byte(tt.src), 0)
			if err != nil {
				t.Fatalf("Failed to parse source %q: %v", tt.src, err)
			}

			if got := f.Module; got != tt.want {
				t.Errorf("Got Module = %t, expected %t", got, tt.want)
			}
		})
	}
}

func TestStatementTypes(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want ast.Stmt
	}{
		{"var", "var a;", (*ast.VarDecl)(nil)},
		{"let", "let a;", (*ast.VarDecl)(nil)},
		{"let_expression", "let;", (*ast.ExprStmt)(nil)},
		{"function", "function f() {}", (*ast.FuncDecl)(nil)},
		{"async_function", "async function f() {}", (*ast.FuncDecl)(nil)},
		{"async_call", "async\nfunction f() {}", (*ast.ExprStmt)(nil)},
		{"class", "class A {}", (*ast.ClassDecl)(nil)},
		{"labeled", "a: ;", (*ast.LabeledStmt)(nil)},
		{"for_of", "for (const a of b);", (*ast.ForInStmt)(nil)},
		{"for", "for (let a = 0;;);", (*ast.ForStmt)(nil)},
		{"export", "export var a;", (*ast.ExportDecl)(nil)},
		{"import", "import a from 'a';", (*ast.ImportDecl)(nil)},
		{"import_call", "import('a');", (*ast.ExprStmt)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := parse(t, tt.src)
			if len(f.Body) == 0 {
				t.Fatal("Expected at least one statement")
			}

			if got, want := reflect.TypeOf(f.Body[0]), reflect.TypeOf(tt.want); got != want {
				t.Errorf("Got %s, expected %s", got, want)
			}
		})
	}
}

func TestArrowParams(t *testing.T) {
	t.Parallel()

	f := parse(t, "(a, { b }, [c] = [], ...d) => a;")

	stmt, ok := f.Body[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("Got %T, expected *ast.ExprStmt", f.Body[0])
	}

	fn, ok := stmt.X.(*ast.ArrowFunc)
	if !ok {
		t.Fatalf("Got %T, expected *ast.ArrowFunc", stmt.X)
	}

	var got []string
	for _, param := range fn.Params {
		got = append(got, reflect.TypeOf(param.Target).String())
	}

	want := []string{"*ast.Ident", "*ast.ObjectPattern", "*ast.ArrayPattern", "*ast.Ident"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Params mismatch (-want +got):\n%s", diff)
	}

	if fn.Params[2].Default == nil {
		t.Error("Expected default for third parameter")
	}

	if !fn.Params[3].Ellipsis.IsValid() {
		t.Error("Expected rest parameter")
	}
}

func TestArrowParamDefaults(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want string
	}{
		{"identifier", "((a = 1) => { var a; });", "*ast.Ident"},
		{"object", "({a} = {}) => a;", "*ast.ObjectPattern"},
		{"array", "([a, b] = []) => a;", "*ast.ArrayPattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := parse(t, tt.src)

			var fn *ast.ArrowFunc

			ast.Inspect(f, func(n ast.Node) bool {
				if a, ok := n.(*ast.ArrowFunc); ok && fn == nil {
					fn = a
				}

				return fn == nil
			})

			if fn == nil {
				t.Fatal("Arrow function not found")
			}

			if len(fn.Params) != 1 {
				t.Fatalf("Got %d parameters, expected 1", len(fn.Params))
			}

			if got := reflect.TypeOf(fn.Params[0].Target).String(); got != tt.want {
				t.Errorf("Got parameter %s, expected %s", got, tt.want)
			}

			if fn.Params[0].Default == nil {
				t.Error("Expected default value")
			}
		})
	}
}

func TestArrowParamInvalidDefault(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()

	if _, err := ParseFile(fset, "test.js", []byte("(a.b = 1) => a;"), 0); err == nil {
		t.Error("Expected error for member expression parameter")
	}
}

func TestIdentPositions(t *testing.T) {
	t.Parallel()

	const src = "var abc = 1;\nlet \\u0078 = 2;"

	fset := token.NewFileSet()

	f, err := ParseFile(fset, "test.js", []byte(src), 0)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	var idents []*ast.Ident

	ast.Inspect(f, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok {
			idents = append(idents, id)
		}

		return true
	})

	if got, want := len(idents), 2; got != want {
		t.Fatalf("Got %d identifiers, expected %d", got, want)
	}

	tests := [...]struct {
		name       string
		line, col  int
		endCol     int
		identifier *ast.Ident
	}{
		{"abc", 1, 5, 8, idents[0]},
		{"x", 2, 5, 11, idents[1]},
	}

	for _, tt := range tests {
		id := tt.identifier

		if id.Name != tt.name {
			t.Errorf("Got name %q, expected %q", id.Name, tt.name)
		}

		pos, end := fset.Position(id.Pos()), fset.Position(id.End())
		if pos.Line != tt.line || pos.Column != tt.col || end.Column != tt.endCol {
			t.Errorf("Got %s-%d for %q, expected %d:%d-%d", pos, end.Column, tt.name, tt.line, tt.col, tt.endCol)
		}
	}
}

func TestComments(t *testing.T) {
	t.Parallel()

	f := parse(t, "// eslint-disable-next-line no-redeclare\nvar a; /* b */")

	var got []string
	for _, c := range f.Comments {
		got = append(got, c.Text)
	}

	want := []string{"// eslint-disable-next-line no-redeclare", "/* b */"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Comments mismatch (-want +got):\n%s", diff)
	}
}
