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

// Package parser implements a parser for JavaScript source files.
//
// The parser accepts ECMAScript 2022+ scripts and modules and produces
// a syntax tree that is detailed enough for binding analysis. It is
// deliberately lenient: early errors that do not affect bindings are
// not reported.
package parser

import (
	"errors"
	"go/scanner"
	"go/token"
	"path/filepath"

	"fillmore-labs.com/redeclare/internal/js/ast"
)

// A Mode value is a set of flags (or 0).
// They control the amount of source code parsed and other optional
// parser functionality.
type Mode uint

const (
	ParseComments Mode = 1 << iota // parse comments and add them to AST
	Module                         // parse as ECMAScript module; .mjs files are modules regardless
	AllErrors                      // report all errors (not just the first 10 on different lines)
)

// ParseFile parses the source code of a single JavaScript source file and returns
// the corresponding [ast.File] node.
//
// The file is added to fset. If syntax errors were found, the result is a partial AST
// and the returned error is a [scanner.ErrorList] sorted by source position.
func ParseFile(fset *token.FileSet, filename string, src []byte, mode Mode) (f *ast.File, err error) {
	if fset == nil {
		panic("parser.ParseFile: no token.FileSet provided (fset == nil)")
	}

	if filepath.Ext(filename) == ".mjs" {
		mode |= Module
	}

	var p parser

	defer func() {
		if e := recover(); e != nil {
			// resume same panic if it's not a bailout
			if _, ok := e.(bailout); !ok {
				panic(e)
			}
		}

		// set result values
		if f == nil {
			// source is not a valid JavaScript source file - satisfy
			// ParseFile API and return a valid (but) empty *ast.File
			f = &ast.File{
				Name:   filename,
				Start:  token.Pos(p.file.Base()),
				EndPos: token.Pos(p.file.Base() + p.file.Size()),
			}
		}

		p.errors.Sort()
		err = p.errors.Err()
	}()

	p.init(fset, filename, src, mode)
	f = p.parseFile()

	return f, err
}

// ParseErrors returns the individual errors of err when it was returned by [ParseFile].
func ParseErrors(err error) scanner.ErrorList {
	var list scanner.ErrorList
	if errors.As(err, &list) {
		return list
	}

	return nil
}
