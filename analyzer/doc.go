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

// Package analyzer implements the redeclare static analysis pass.
//
// # Overview
//
// Redeclare reports JavaScript variables that are declared more than once in
// the same scope. A var declaration is hoisted to the enclosing function,
// class static block or program, so it conflicts with every other var and
// parameter of the same name there:
//
//	function f(a) {
//	    var a;               // 'a' is already defined.
//	    if (test) {
//	        var b = 1;
//	    }
//	    var b = 2;           // 'b' is already defined.
//	}
//
// Block scoped declarations (let, const, class) conflict only within their
// own block.
//
// # Built-in Globals
//
// With -builtin-globals, declarations of ECMAScript built-in globals such as
// Object or undefined are reported even when they appear only once.
//
// # Suppressions
//
// Diagnostics are suppressed by eslint-disable-line, eslint-disable-next-line
// and eslint-disable/eslint-enable comments naming no-redeclare, redeclare,
// all, or no rule at all.
//
// # Input Files
//
// The analyzer checks the .js, .mjs and .cjs files listed as other files of a
// package and, with -package-scripts (the default), those in the package
// directories.
package analyzer
