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

// Package testsource provides utilities for parsing and resolving JavaScript source code in tests.
//
// It is designed to simplify testing of the redeclare analyzer by handling common
// boilerplate code for parsing and resolving source fragments.
package testsource

import (
	"go/token"
	"strings"
	"testing"

	"fillmore-labs.com/redeclare/internal/js/ast"
	"fillmore-labs.com/redeclare/internal/js/parser"
	"fillmore-labs.com/redeclare/internal/resolve"
)

const filename = "test.js"

// Parse parses a JavaScript source fragment as a script.
// Fragments containing import or export declarations are parsed as modules.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
func Parse(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, []byte(src), parser.ParseComments)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// Resolve parses and resolves a JavaScript source fragment.
// predeclared is passed to [resolve.File] and may be nil.
func Resolve(tb testing.TB, src string, predeclared func(string) bool) (*token.FileSet, *resolve.Program) {
	tb.Helper()

	fset, f := Parse(tb, src)

	return fset, resolve.File(f, predeclared)
}

// Offset returns the position of the n-th (zero based) occurrence of needle in the source of f.
// It fails the test when there is no such occurrence.
func Offset(tb testing.TB, fset *token.FileSet, f *ast.File, src, needle string, n int) token.Pos {
	tb.Helper()

	handle := fset.File(f.Pos())
	if handle == nil {
		tb.Fatal("File not found in file set")
	}

	off := 0
	for i := 0; ; i++ {
		idx := strings.Index(src[off:], needle)
		if idx < 0 {
			tb.Fatalf("Occurrence %d of %q not found in %q", n, needle, src)
		}

		if i == n {
			return handle.Pos(off + idx)
		}

		off += idx + len(needle)
	}
}
