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

package parser

import (
	"fillmore-labs.com/redeclare/internal/js/ast"
	"fillmore-labs.com/redeclare/internal/js/lexer"
)

// parseBindingTarget parses an identifier or destructuring pattern in declarations and parameters.
func (p *parser) parseBindingTarget() ast.Pattern {
	switch p.tok {
	case lexer.LBRACE:
		return p.parseObjectPattern()

	case lexer.LBRACK:
		return p.parseArrayPattern()
	}

	return p.parseBindingIdent()
}

func (p *parser) parseBindingDefault() ast.Expr {
	if p.tok != lexer.ASSIGN {
		return nil
	}

	p.next()

	restore := p.allowIn()
	defer restore()

	return p.parseAssign()
}

func (p *parser) parseObjectPattern() *ast.ObjectPattern {
	pat := &ast.ObjectPattern{Lbrace: p.expect(lexer.LBRACE)}

	for p.tok != lexer.RBRACE && p.tok != lexer.EOF {
		if p.tok == lexer.ELLIPSIS {
			p.next()

			pat.Rest = p.parseBindingIdent()

			break
		}

		key, computed := p.parsePropertyKey()
		prop := &ast.PatternProp{Key: key, Computed: computed}

		if p.tok == lexer.COLON {
			p.next()

			prop.Value = p.parseBindingTarget()
		} else {
			id, ok := key.(*ast.Ident)
			if !ok || computed || p.isReservedWord(id.Name) {
				p.errorExpected(p.pos, "':'")
			}

			prop.Value = &ast.Ident{NamePos: key.Pos(), NameEnd: key.End(), Name: identName(key)}
		}

		prop.Default = p.parseBindingDefault()
		pat.Props = append(pat.Props, prop)

		if p.tok != lexer.COMMA {
			break
		}

		p.next()
	}

	pat.Rbrace = p.pos
	p.expect(lexer.RBRACE)

	return pat
}

func (p *parser) parseArrayPattern() *ast.ArrayPattern {
	pat := &ast.ArrayPattern{Lbrack: p.expect(lexer.LBRACK)}

	for p.tok != lexer.RBRACK && p.tok != lexer.EOF {
		if p.tok == lexer.COMMA {
			pat.Elems = append(pat.Elems, nil) // hole
			p.next()

			continue
		}

		if p.tok == lexer.ELLIPSIS {
			p.next()

			pat.Rest = p.parseBindingTarget()

			break
		}

		elem := &ast.PatternElem{Value: p.parseBindingTarget()}
		elem.Default = p.parseBindingDefault()
		pat.Elems = append(pat.Elems, elem)

		if p.tok != lexer.COMMA {
			break
		}

		p.next()
	}

	pat.Rbrack = p.pos
	p.expect(lexer.RBRACK)

	return pat
}

func identName(x ast.Expr) string {
	if id, ok := x.(*ast.Ident); ok {
		return id.Name
	}

	return "_"
}

// toBinding converts an expression parsed with the cover grammar to a binding pattern,
// as used in arrow function parameters.
func (p *parser) toBinding(x ast.Expr) ast.Pattern {
	return p.convertPattern(x, true, true)
}

// toPattern converts the left-hand side of an assignment or for-in/of head to a pattern.
// Destructuring is only permitted for plain assignment.
func (p *parser) toPattern(x ast.Expr, destructure bool) ast.Pattern {
	return p.convertPattern(x, destructure, false)
}

func (p *parser) convertPattern(x ast.Expr, destructure, binding bool) ast.Pattern {
	switch x := x.(type) {
	case *ast.Ident:
		return x

	case *ast.MemberExpr:
		if binding || x.Optional {
			break
		}

		return &ast.AssignTarget{X: x}

	case *ast.ParenExpr:
		if binding || x.X == nil {
			break
		}

		switch x.X.(type) {
		case *ast.Ident, *ast.MemberExpr, *ast.ParenExpr:
			return p.convertPattern(x.X, false, false)
		}

	case *ast.ObjectLit:
		if destructure {
			return p.objectPattern(x, binding)
		}

	case *ast.ArrayLit:
		if destructure {
			return p.arrayPattern(x, binding)
		}
	}

	p.error(x.Pos(), "invalid assignment target")

	return &ast.AssignTarget{X: x}
}

// patternWithDefault splits "target = default" inside destructuring.
func (p *parser) patternWithDefault(x ast.Expr, binding bool) (ast.Pattern, ast.Expr) {
	if a, ok := x.(*ast.AssignExpr); ok && a.Op == lexer.ASSIGN {
		if binding {
			// the target was converted for assignment, redo it for binding
			if t, ok := a.Target.(*ast.AssignTarget); ok {
				p.error(t.Pos(), "invalid destructuring target")
			}
		}

		return a.Target, a.Value
	}

	return p.convertPattern(x, true, binding), nil
}

func (p *parser) objectPattern(x *ast.ObjectLit, binding bool) *ast.ObjectPattern {
	pat := &ast.ObjectPattern{Lbrace: x.Lbrace, Rbrace: x.Rbrace}

	for i, prop := range x.Props {
		switch prop := prop.(type) {
		case *ast.Spread:
			if i != len(x.Props)-1 {
				p.error(prop.Pos(), "rest element must be last element")
			}

			pat.Rest = p.convertPattern(prop.X, false, binding)

		case *ast.Property:
			if prop.Kind != ast.PropInit {
				p.error(prop.Pos(), "invalid destructuring target")

				continue
			}

			pp := &ast.PatternProp{Key: prop.Key, Computed: prop.Computed}

			if prop.Shorthand {
				pp.Value, pp.Default = prop.Value.(*ast.Ident), prop.Default
			} else {
				pp.Value, pp.Default = p.patternWithDefault(prop.Value, binding)
			}

			pat.Props = append(pat.Props, pp)
		}
	}

	return pat
}

func (p *parser) arrayPattern(x *ast.ArrayLit, binding bool) *ast.ArrayPattern {
	pat := &ast.ArrayPattern{Lbrack: x.Lbrack, Rbrack: x.Rbrack}

	for i, elem := range x.Elems {
		switch elem := elem.(type) {
		case nil:
			pat.Elems = append(pat.Elems, nil)

		case *ast.Spread:
			if i != len(x.Elems)-1 {
				p.error(elem.Pos(), "rest element must be last element")
			}

			pat.Rest = p.convertPattern(elem.X, true, binding)

		default:
			value, def := p.patternWithDefault(elem, binding)
			pat.Elems = append(pat.Elems, &ast.PatternElem{Value: value, Default: def})
		}
	}

	return pat
}
