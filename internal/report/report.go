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

// Package report shapes redeclaration findings into diagnostics.
package report

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/redeclare/internal/js/ast"
)

// URL documents the rule.
const URL = "https://pkg.go.dev/fillmore-labs.com/redeclare"

//go:generate go tool stringer -type Variant -linecomment

// Variant distinguishes the kinds of diagnostics.
type Variant uint8

const (
	// VariantRedeclared is an ordinary redeclaration.
	VariantRedeclared Variant = iota // redeclare
	// VariantBuiltinShadow is a declaration shadowing a built-in global.
	VariantBuiltinShadow // redeclare-builtin
	// VariantSyntax is a syntax error preventing analysis.
	VariantSyntax // syntax
)

// Severity of a [Diagnostic].
type Severity uint8

const (
	// Warning does not fail a run by itself.
	Warning Severity = iota
	// Error fails a run.
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}

	return "warning"
}

// Label attaches a message to a source range.
type Label struct {
	Span    ast.Span
	Message string
}

// Diagnostic is a single finding with one or more labeled spans.
// The first label is the primary location.
type Diagnostic struct {
	Variant  Variant
	Severity Severity
	Name     string // affected binding name, empty for syntax errors
	Message  string
	Labels   []Label
	Fixes    []analysis.SuggestedFix
}

// Redeclared reports that name at is already declared at anchor.
func Redeclared(name string, at, anchor ast.Span) Diagnostic {
	return Diagnostic{
		Variant:  VariantRedeclared,
		Severity: Warning,
		Name:     name,
		Message:  fmt.Sprintf("'%s' is already defined.", name),
		Labels: []Label{
			{Span: at, Message: fmt.Sprintf("'%s' cannot be redeclared here.", name)},
			{Span: anchor, Message: fmt.Sprintf("'%s' is already defined here.", name)},
		},
	}
}

// BuiltinShadow reports that name at shadows a built-in global.
func BuiltinShadow(name string, at ast.Span) Diagnostic {
	msg := fmt.Sprintf("'%s' is already defined as a built-in global variable.", name)

	return Diagnostic{
		Variant:  VariantBuiltinShadow,
		Severity: Warning,
		Name:     name,
		Message:  msg,
		Labels:   []Label{{Span: at, Message: msg}},
	}
}

// SyntaxError reports a parse error at pos.
func SyntaxError(pos token.Pos, msg string) Diagnostic {
	return Diagnostic{
		Variant:  VariantSyntax,
		Severity: Error,
		Message:  msg,
		Labels:   []Label{{Span: ast.Span{Pos: pos, End: pos}, Message: msg}},
	}
}

// Span returns the primary location.
func (d Diagnostic) Span() ast.Span {
	if len(d.Labels) == 0 {
		return ast.Span{}
	}

	return d.Labels[0].Span
}

// Analysis converts d into an [analysis.Diagnostic]. Secondary labels become related information.
func (d Diagnostic) Analysis() analysis.Diagnostic {
	span := d.Span()

	diagnostic := analysis.Diagnostic{
		Pos:            span.Pos,
		End:            span.End,
		Category:       d.Variant.String(),
		Message:        d.Message,
		URL:            URL,
		SuggestedFixes: d.Fixes,
	}

	if len(d.Labels) > 1 {
		diagnostic.Related = make([]analysis.RelatedInformation, 0, len(d.Labels)-1)
		for _, l := range d.Labels[1:] {
			diagnostic.Related = append(diagnostic.Related, analysis.RelatedInformation{
				Pos:     l.Span.Pos,
				End:     l.Span.End,
				Message: l.Message,
			})
		}
	}

	return diagnostic
}
