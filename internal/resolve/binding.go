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

package resolve

import (
	"iter"

	"fillmore-labs.com/redeclare/internal/js/ast"
	"fillmore-labs.com/redeclare/internal/scope"
)

//go:generate go tool stringer -type BindingKind -linecomment

// BindingKind is the syntax construct that introduced a [Binding].
type BindingKind uint8

const (
	// VariableDeclarator is a name bound by a var, let or const declarator.
	VariableDeclarator BindingKind = iota // variable declarator
	// FormalParameter is a function or arrow function parameter.
	FormalParameter // formal parameter
	// FunctionDeclaration is the name of a function declaration.
	FunctionDeclaration // function declaration
	// ClassDeclaration is the name of a class declaration.
	ClassDeclaration // class declaration
	// Import is a default, namespace or named import.
	Import // import
	// CatchParameter is a name bound by a catch clause.
	CatchParameter // catch parameter
	// PredeclaredGlobal is an implicit binding of the environment, without source position.
	PredeclaredGlobal // predeclared global
)

// Binding is a single declaration of a name.
type Binding struct {
	Name    string
	Ident   *ast.Ident   // declaring identifier, nil for PredeclaredGlobal
	Kind    BindingKind  // originating construct
	Decl    ast.Node     // *ast.VarDeclarator, *ast.Param, *ast.FuncDecl, *ast.ClassDecl, *ast.ImportSpec, *ast.CatchClause or nil
	Stmt    *ast.VarDecl // declaration holding a VariableDeclarator, nil when exported
	Scope   *scope.Scope // literal scope of the declaration
	Target  *scope.Scope // scope the binding is hoisted to
	Lexical bool         // block scoped: let, const, class, catch parameter, import or a function declared in a block
}

// Span returns the source range of the declaring identifier.
func (b *Binding) Span() ast.Span {
	if b.Ident == nil {
		return ast.Span{}
	}

	return ast.SpanOf(b.Ident)
}

// compatible reports whether b conflicts with an earlier binding a of the same name and target.
func compatible(a, b *Binding) bool {
	return (!a.Lexical && !b.Lexical) || a.Scope == b.Scope
}

// Group is a set of bindings sharing a name and an effective declarative scope.
type Group struct {
	Name       string
	Anchor     *Binding   // first declaration in source order
	Redeclared []*Binding // later declarations in source order
}

// Members yields the anchor followed by all redeclarations.
func (g Group) Members() iter.Seq[*Binding] {
	return func(yield func(*Binding) bool) {
		if g.Anchor != nil && !yield(g.Anchor) {
			return
		}

		for _, b := range g.Redeclared {
			if !yield(b) {
				return
			}
		}
	}
}
