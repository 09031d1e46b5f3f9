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

// Package redeclare decides which members of a redeclaration group are reportable.
package redeclare

import (
	"context"
	"runtime/trace"

	"fillmore-labs.com/redeclare/internal/globals"
	"fillmore-labs.com/redeclare/internal/js/ast"
	"fillmore-labs.com/redeclare/internal/report"
	"fillmore-labs.com/redeclare/internal/resolve"
)

// Classifier turns redeclaration groups into diagnostics. It holds no state besides its configuration
// and is safe for concurrent use.
type Classifier struct {
	// CheckBuiltinGlobals reports declarations of built-in global names.
	CheckBuiltinGlobals bool

	// SuggestFixes attaches a fix rewriting `var a = x` redeclarations into assignments.
	SuggestFixes bool
}

// Predeclared returns the predicate for implicit global anchors passed to [resolve.File],
// nil unless built-in globals are checked.
func (c Classifier) Predeclared() func(name string) bool {
	if !c.CheckBuiltinGlobals {
		return nil
	}

	return globals.IsBuiltin
}

// Classify returns the diagnostics for groups, ordered by group and then by member.
func (c Classifier) Classify(ctx context.Context, groups []resolve.Group) []report.Diagnostic {
	defer trace.StartRegion(ctx, "Classify").End()

	var diagnostics []report.Diagnostic

	for _, g := range groups {
		if g.Anchor == nil || len(g.Redeclared) == 0 {
			continue // not a redeclaration
		}

		for _, m := range g.Redeclared {
			if d, ok := c.classify(g, m); ok {
				diagnostics = append(diagnostics, d)
			}
		}
	}

	return diagnostics
}

func (c Classifier) classify(g resolve.Group, m *resolve.Binding) (report.Diagnostic, bool) {
	id, ok := reportedIdent(m)
	if !ok {
		return report.Diagnostic{}, false
	}

	if id.Name != g.Name {
		return report.Diagnostic{}, false // keyed under a different name
	}

	at, anchor := ast.SpanOf(id), g.Anchor.Span()
	if at == anchor {
		return report.Diagnostic{}, false // the anchor itself
	}

	if c.CheckBuiltinGlobals && globals.IsBuiltin(g.Name) {
		return report.BuiltinShadow(g.Name, at), true
	}

	if g.Anchor.Kind == resolve.PredeclaredGlobal {
		return report.Diagnostic{}, false // no source location to refer to
	}

	d := report.Redeclared(g.Name, at, anchor)
	if c.SuggestFixes && !m.Lexical && !g.Anchor.Lexical {
		d.Fixes = report.AssignInstead(m.Stmt, id)
	}

	return d, true
}

// reportedIdent returns the identifier of a reportable binding: a variable declarator or
// formal parameter binding a plain identifier.
func reportedIdent(m *resolve.Binding) (*ast.Ident, bool) {
	switch m.Kind {
	case resolve.VariableDeclarator:
		d, ok := m.Decl.(*ast.VarDeclarator)
		if !ok {
			return nil, false
		}

		id, ok := d.Target.(*ast.Ident)

		return id, ok

	case resolve.FormalParameter:
		p, ok := m.Decl.(*ast.Param)
		if !ok {
			return nil, false
		}

		id, ok := p.Target.(*ast.Ident)

		return id, ok

	case resolve.FunctionDeclaration,
		resolve.ClassDeclaration,
		resolve.Import,
		resolve.CatchParameter,
		resolve.PredeclaredGlobal:
		return nil, false // reported by other rules
	}

	return nil, false // not a BindingKind
}
