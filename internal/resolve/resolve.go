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

// Package resolve builds the scope tree of a JavaScript program and groups
// declarations of the same name that occupy the same effective declarative scope.
//
// Hoisting follows ECMAScript: var declarations and function declarations directly
// in a function body, a class static block or the program body belong to that
// hoisting target. Formal parameters live in the function scope. Everything else
// (let, const, class, catch parameters, imports and block level function
// declarations) belongs to its literal scope.
package resolve

import (
	"cmp"
	"slices"

	"fillmore-labs.com/redeclare/internal/astutil"
	"fillmore-labs.com/redeclare/internal/js/ast"
	"fillmore-labs.com/redeclare/internal/scope"
)

// Program is the resolved model of a single file.
type Program struct {
	File     *ast.File
	Global   *scope.Scope
	Scopes   []*scope.Scope // in creation order
	Bindings []*Binding     // in source order
	Groups   []Group        // ordered by the position of their first declaration
}

// File resolves the bindings of f.
//
// If predeclared is non-nil, names bound in the global hoisting target that it accepts
// are grouped behind an implicit [PredeclaredGlobal] anchor, so that even a single
// declaration of such a name appears as a redeclaration.
func File(f *ast.File, predeclared func(name string) bool) *Program {
	r := resolver{}
	global := r.scopes.New(scope.Global, nil, f)

	v := visitor{r: &r, scope: global}
	for _, stmt := range f.Body {
		ast.Walk(v, stmt)
	}

	slices.SortStableFunc(r.bindings, func(a, b *Binding) int { return cmp.Compare(a.Span().Pos, b.Span().Pos) })

	return &Program{
		File:     f,
		Global:   global,
		Scopes:   r.scopes.All(),
		Bindings: r.bindings,
		Groups:   group(r.bindings, global, predeclared),
	}
}

type resolver struct {
	scopes   scope.Factory
	bindings []*Binding
}

func (r *resolver) declare(id *ast.Ident, kind BindingKind, decl ast.Node, s, target *scope.Scope, lexical bool) {
	r.bindings = append(r.bindings, &Binding{
		Name:    id.Name,
		Ident:   id,
		Kind:    kind,
		Decl:    decl,
		Scope:   s,
		Target:  target,
		Lexical: lexical,
	})
}

// declarePattern declares every identifier bound by p.
func (r *resolver) declarePattern(p ast.Pattern, kind BindingKind, decl ast.Node, s, target *scope.Scope, lexical bool) {
	for id := range astutil.BoundIdents(p) {
		r.declare(id, kind, decl, s, target, lexical)
	}
}

// visitor records declarations into its current scope.
type visitor struct {
	r     *resolver
	scope *scope.Scope
}

func (v visitor) nested(kind scope.Kind, node ast.Node) visitor {
	return visitor{r: v.r, scope: v.r.scopes.New(kind, v.scope, node)}
}

func (v visitor) walkStmts(list []ast.Stmt) {
	for _, stmt := range list {
		ast.Walk(v, stmt)
	}
}

func (v visitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case nil:
		return nil

	case *ast.VarDecl:
		v.varDecl(n, n)

	case *ast.ExportDecl:
		if d, ok := n.Decl.(*ast.VarDecl); ok {
			v.varDecl(d, nil)

			for _, decl := range d.List {
				ast.Walk(v, decl)
			}

			return nil
		}

	case *ast.FuncDecl:
		if id := n.Func.Name; id != nil {
			v.r.declare(id, FunctionDeclaration, n, v.scope, v.scope, !v.scope.IsHoistTarget())
		}

	case *ast.ClassDecl:
		if id := n.Class.Name; id != nil {
			v.r.declare(id, ClassDeclaration, n, v.scope, v.scope, true)
		}

	case *ast.ImportDecl:
		for _, spec := range n.Specs {
			v.r.declare(spec.Local, Import, spec, v.scope, v.scope, true)
		}

		return nil

	case *ast.Function:
		v.function(n, n.Params, n.Body)

		return nil

	case *ast.ArrowFunc:
		v.function(n, n.Params, n.Body)

		return nil

	case *ast.StaticBlock:
		return v.nested(scope.ClassStaticBlock, n)

	case *ast.BlockStmt:
		return v.nested(scope.Block, n)

	case *ast.SwitchStmt:
		ast.Walk(v, n.Tag)

		w := v.nested(scope.Switch, n)
		for _, c := range n.Cases {
			ast.Walk(w, c)
		}

		return nil

	case *ast.ForStmt:
		if d, ok := n.Init.(*ast.VarDecl); ok && d.IsLexical() {
			return v.nested(scope.ForHead, n)
		}

	case *ast.ForInStmt:
		if d, ok := n.Left.(*ast.VarDecl); ok && d.IsLexical() {
			return v.nested(scope.ForHead, n)
		}

	case *ast.CatchClause:
		w := v.nested(scope.Catch, n)
		if n.Param != nil {
			w.r.declarePattern(n.Param, CatchParameter, n, w.scope, w.scope, true)
			ast.Walk(w, n.Param)
		}

		w.walkStmts(n.Body.List)

		return nil
	}

	return v
}

// varDecl declares the bindings of d. stmt is d, or nil for exported declarations.
func (v visitor) varDecl(d, stmt *ast.VarDecl) {
	s, target, lexical := v.scope, v.scope, true
	if !d.IsLexical() {
		target, lexical = v.scope.HoistTarget(), false
	}

	for _, decl := range d.List {
		for id := range astutil.BoundIdents(decl.Target) {
			v.r.bindings = append(v.r.bindings, &Binding{
				Name:    id.Name,
				Ident:   id,
				Kind:    VariableDeclarator,
				Decl:    decl,
				Stmt:    stmt,
				Scope:   s,
				Target:  target,
				Lexical: lexical,
			})
		}
	}
}

// function resolves a function or arrow function: parameters and body share one scope.
func (v visitor) function(node ast.Node, params []*ast.Param, body ast.Node) {
	w := v.nested(scope.Function, node)

	for _, p := range params {
		w.r.declarePattern(p.Target, FormalParameter, p, w.scope, w.scope, false)
		ast.Walk(w, p)
	}

	switch b := body.(type) {
	case *ast.BlockStmt:
		if b != nil {
			w.walkStmts(b.List)
		}

	case ast.Expr:
		ast.Walk(w, b) // concise arrow body
	}
}

type groupKey struct {
	target *scope.Scope
	name   string
}

// group partitions bindings by target and name, then by compatibility with the
// first binding of each partition.
func group(bindings []*Binding, global *scope.Scope, predeclared func(string) bool) []Group {
	var (
		groups []*Group
		index  = make(map[groupKey][]*Group)
	)

	for _, b := range bindings {
		key := groupKey{b.Target, b.Name}

		candidates, seen := index[key]
		if !seen && predeclared != nil && b.Target == global && predeclared(b.Name) {
			g := &Group{Name: b.Name, Anchor: &Binding{
				Name:   b.Name,
				Kind:   PredeclaredGlobal,
				Scope:  global,
				Target: global,
			}}
			groups = append(groups, g)
			candidates = append(candidates, g)
			index[key] = candidates
		}

		joined := false

		for _, g := range candidates {
			if compatible(g.Anchor, b) {
				g.Redeclared = append(g.Redeclared, b)
				joined = true

				break
			}
		}

		if joined {
			continue
		}

		g := &Group{Name: b.Name, Anchor: b}
		groups = append(groups, g)
		index[key] = append(candidates, g)
	}

	result := make([]Group, 0, len(groups))
	for _, g := range groups {
		if len(g.Redeclared) == 0 {
			continue
		}

		result = append(result, *g)
	}

	return result
}
