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
	"go/token"

	"fillmore-labs.com/redeclare/internal/js/ast"
	"fillmore-labs.com/redeclare/internal/js/lexer"
)

// parseExpr parses a comma separated expression.
func (p *parser) parseExpr() ast.Expr {
	x := p.parseAssign()
	if p.tok != lexer.COMMA {
		return x
	}

	list := []ast.Expr{x}
	for p.tok == lexer.COMMA {
		p.next()

		list = append(list, p.parseAssign())
	}

	return &ast.SeqExpr{List: list}
}

// parseAssign parses an AssignmentExpression, including arrow functions and yield.
func (p *parser) parseAssign() ast.Expr {
	if p.inGen && p.isContextual("yield") {
		return p.parseYield()
	}

	start := p.pos

	if p.isContextual("async") {
		// async x => ...
		if la := p.peek(); la.tok == lexer.IDENT && !la.newline {
			p.next()

			param := &ast.Param{Target: p.parseBindingIdent()}

			return p.parseArrow(start, true, []*ast.Param{param})
		}
	}

	x := p.parseConditional()

	if p.tok == lexer.ARROW {
		params, async, ok := p.arrowParams(x)
		if !ok || p.newline {
			p.error(p.pos, "unexpected '=>'")
		}

		return p.parseArrow(start, async, params)
	}

	if !p.tok.IsAssign() {
		return x
	}

	op, opPos := p.tok, p.pos
	target := p.toPattern(x, op == lexer.ASSIGN)
	p.next()

	value := p.parseAssign()

	return &ast.AssignExpr{Target: target, OpPos: opPos, Op: op, Value: value}
}

func (p *parser) parseYield() ast.Expr {
	y := &ast.YieldExpr{Yield: p.pos}
	p.next()

	if p.newline {
		return y
	}

	switch p.tok {
	case lexer.RPAREN, lexer.RBRACK, lexer.RBRACE, lexer.COMMA, lexer.COLON,
		lexer.SEMICOLON, lexer.EOF, lexer.IN:
		return y

	case lexer.MUL:
		y.Delegate = true

		p.next()
	}

	y.X = p.parseAssign()

	return y
}

// arrowParams converts the cover grammar of an arrow function head to parameters.
func (p *parser) arrowParams(x ast.Expr) (params []*ast.Param, async, ok bool) {
	switch x := x.(type) {
	case *ast.Ident:
		return []*ast.Param{{Target: x}}, false, true

	case *ast.ParenExpr:
		switch inner := x.X.(type) {
		case nil:
			return nil, false, true

		case *ast.SeqExpr:
			return p.toParams(inner.List), false, true

		default:
			return p.toParams([]ast.Expr{inner}), false, true
		}

	case *ast.CallExpr:
		if fun, isIdent := x.Fun.(*ast.Ident); isIdent && fun.Name == "async" && !x.Optional {
			return p.toParams(x.Args), true, true
		}
	}

	return nil, false, false
}

func (p *parser) toParams(list []ast.Expr) []*ast.Param {
	params := make([]*ast.Param, 0, len(list))

	for _, x := range list {
		switch x := x.(type) {
		case *ast.Spread:
			params = append(params, &ast.Param{Ellipsis: x.Ellipsis, Target: p.toBinding(x.X)})

		case *ast.AssignExpr:
			if x.Op != lexer.ASSIGN {
				p.error(x.OpPos, "invalid parameter default")
			}

			// the target was already converted for assignment
			target := x.Target
			switch t := target.(type) {
			case ast.Expr:
				target = p.toBinding(t)

			case *ast.AssignTarget:
				p.error(t.Pos(), "invalid parameter")
			}

			params = append(params, &ast.Param{Target: target, Default: x.Value})

		default:
			params = append(params, &ast.Param{Target: p.toBinding(x)})
		}
	}

	return params
}

func (p *parser) parseArrow(start token.Pos, async bool, params []*ast.Param) *ast.ArrowFunc {
	p.expect(lexer.ARROW)

	fn := &ast.ArrowFunc{Start: start, Async: async, Params: params}

	restore := p.enterFunction(async, false)

	if p.tok == lexer.LBRACE {
		fn.Body = p.parseBlock()
	} else {
		fn.Body = p.parseAssign()
	}

	restore()

	return fn
}

func (p *parser) parseConditional() ast.Expr {
	x := p.parseBinary(lexer.LowestPrec + 1)
	if p.tok != lexer.QUESTION {
		return x
	}

	p.next()

	restore := p.allowIn()
	then := p.parseAssign()

	restore()
	p.expect(lexer.COLON)

	return &ast.CondExpr{Cond: x, Then: then, Else: p.parseAssign()}
}

func (p *parser) parseBinary(prec1 int) ast.Expr {
	x := p.parseUnary()

	for {
		op, oprec := p.tok, p.tok.Precedence()
		if oprec < prec1 || op == lexer.IN && p.noIn {
			return x
		}

		pos := p.pos
		p.next()

		var y ast.Expr
		if op == lexer.EXP {
			y = p.parseBinary(oprec) // right associative
		} else {
			y = p.parseBinary(oprec + 1)
		}

		x = &ast.BinaryExpr{X: x, OpPos: pos, Op: op, Y: y}
	}
}

func (p *parser) parseUnary() ast.Expr {
	switch p.tok {
	case lexer.NOT, lexer.BNOT, lexer.ADD, lexer.SUB, lexer.TYPEOF, lexer.VOID, lexer.DELETE:
		pos, op := p.pos, p.tok
		p.next()

		return &ast.UnaryExpr{OpPos: pos, Op: op, X: p.parseUnary()}

	case lexer.INC, lexer.DEC:
		pos, op := p.pos, p.tok
		p.next()

		return &ast.UpdateExpr{OpPos: pos, Op: op, Prefix: true, X: p.parseUnary()}

	case lexer.IDENT:
		if p.lit == "await" && p.awaitAllowed() {
			pos := p.pos
			p.next()

			return &ast.AwaitExpr{Await: pos, X: p.parseUnary()}
		}
	}

	x := p.parseLeftHandSide()

	if (p.tok == lexer.INC || p.tok == lexer.DEC) && !p.newline {
		x = &ast.UpdateExpr{OpPos: p.pos, Op: p.tok, X: x}
		p.next()
	}

	return x
}

// awaitAllowed reports whether 'await' is an operator in the current context.
func (p *parser) awaitAllowed() bool {
	return p.inAsync || p.funcDepth == 0 && p.module
}

// parseLeftHandSide parses member, call and new expressions.
func (p *parser) parseLeftHandSide() ast.Expr {
	var x ast.Expr

	switch p.tok {
	case lexer.NEW:
		x = p.parseNew()

	case lexer.SUPER:
		x = &ast.Super{Keyword: p.pos}
		p.next()

	case lexer.IMPORT:
		x = p.parseImportMeta()

	default:
		x = p.parsePrimary()
	}

	return p.parseSuffixes(x, true)
}

func (p *parser) parseNew() ast.Expr {
	pos := p.expect(lexer.NEW)

	if p.tok == lexer.DOT {
		p.next()

		meta := &ast.Ident{NamePos: pos, NameEnd: pos + 3, Name: "new"}

		return &ast.MetaProperty{Meta: meta, Property: p.parseIdentName()}
	}

	var callee ast.Expr

	switch p.tok {
	case lexer.NEW:
		callee = p.parseNew()

	case lexer.SUPER:
		callee = &ast.Super{Keyword: p.pos}
		p.next()

	case lexer.IMPORT:
		callee = p.parseImportMeta()

	default:
		callee = p.parsePrimary()
	}

	n := &ast.NewExpr{New: pos, X: p.parseSuffixes(callee, false)}

	if p.tok == lexer.LPAREN {
		n.Args, n.Rparen = p.parseArgs()
	}

	return n
}

func (p *parser) parseImportMeta() ast.Expr {
	pos := p.expect(lexer.IMPORT)

	if p.tok == lexer.DOT {
		p.next()

		meta := &ast.Ident{NamePos: pos, NameEnd: pos + 6, Name: "import"}

		return &ast.MetaProperty{Meta: meta, Property: p.parseIdentName()}
	}

	args, rparen := p.parseArgs()

	return &ast.ImportCall{Import: pos, Args: args, Rparen: rparen}
}

func (p *parser) parseSuffixes(x ast.Expr, allowCall bool) ast.Expr {
	for {
		switch p.tok {
		case lexer.DOT:
			p.next()

			x = &ast.MemberExpr{X: x, Prop: p.parseMemberName(), EndPos: p.prevEnd}

		case lexer.QUESTION_DOT:
			if !allowCall {
				p.error(p.pos, "optional chain in new expression")
			}

			p.next()

			switch p.tok {
			case lexer.LPAREN:
				lparen := p.pos
				args, rparen := p.parseArgs()
				x = &ast.CallExpr{Fun: x, Optional: true, Lparen: lparen, Args: args, Rparen: rparen}

			case lexer.LBRACK:
				x = p.parseIndex(x, true)

			default:
				x = &ast.MemberExpr{X: x, Optional: true, Prop: p.parseMemberName(), EndPos: p.prevEnd}
			}

		case lexer.LBRACK:
			x = p.parseIndex(x, false)

		case lexer.LPAREN:
			if !allowCall {
				return x
			}

			lparen := p.pos
			args, rparen := p.parseArgs()
			x = &ast.CallExpr{Fun: x, Lparen: lparen, Args: args, Rparen: rparen}

		case lexer.TEMPLATE, lexer.TEMPLATE_HEAD:
			x = p.parseTemplate(x)

		default:
			return x
		}
	}
}

func (p *parser) parseMemberName() ast.Expr {
	if p.tok == lexer.PRIVATE {
		name := &ast.PrivateName{NamePos: p.pos, Name: p.lit}
		p.next()

		return name
	}

	return p.parseIdentName()
}

func (p *parser) parseIndex(x ast.Expr, optional bool) ast.Expr {
	p.expect(lexer.LBRACK)

	restore := p.allowIn()
	index := p.parseExpr()

	restore()
	p.expect(lexer.RBRACK)

	return &ast.MemberExpr{X: x, Optional: optional, Computed: true, Prop: index, EndPos: p.prevEnd}
}

func (p *parser) parseArgs() (args []ast.Expr, rparen token.Pos) {
	p.expect(lexer.LPAREN)
	defer p.allowIn()()

	for p.tok != lexer.RPAREN && p.tok != lexer.EOF {
		args = append(args, p.parseSpreadOrAssign())

		if p.tok != lexer.COMMA {
			break
		}

		p.next()
	}

	rparen = p.pos
	p.expect(lexer.RPAREN)

	return args, rparen
}

func (p *parser) parseSpreadOrAssign() ast.Expr {
	if p.tok != lexer.ELLIPSIS {
		return p.parseAssign()
	}

	pos := p.pos
	p.next()

	return &ast.Spread{Ellipsis: pos, X: p.parseAssign()}
}

func (p *parser) parsePrimary() ast.Expr {
	switch p.tok {
	case lexer.IDENT:
		if p.isAsyncFunction() {
			start := p.pos
			p.next()

			return &ast.FuncLit{Func: p.parseFunction(start, true)}
		}

		x := p.ident()
		p.next()

		return x

	case lexer.NUMBER, lexer.STRING, lexer.NULL, lexer.TRUE, lexer.FALSE:
		x := &ast.BasicLit{ValuePos: p.pos, Kind: p.tok, Raw: p.lit}
		p.next()

		return x

	case lexer.TEMPLATE, lexer.TEMPLATE_HEAD:
		return p.parseTemplate(nil)

	case lexer.QUO, lexer.QUO_ASSIGN:
		p.rescan(p.lexer.RescanRegExp(p.pos))
		x := &ast.BasicLit{ValuePos: p.pos, Kind: lexer.REGEXP, Raw: p.lit}
		p.next()

		return x

	case lexer.THIS:
		x := &ast.This{Keyword: p.pos}
		p.next()

		return x

	case lexer.PRIVATE:
		x := &ast.PrivateName{NamePos: p.pos, Name: p.lit}
		p.next()

		return x

	case lexer.LPAREN:
		return p.parseParen()

	case lexer.LBRACK:
		return p.parseArrayLit()

	case lexer.LBRACE:
		return p.parseObjectLit()

	case lexer.FUNCTION:
		return &ast.FuncLit{Func: p.parseFunction(p.pos, false)}

	case lexer.CLASS:
		return &ast.ClassLit{Class: p.parseClass()}
	}

	pos := p.pos
	p.errorExpected(pos, "expression")

	return &ast.BadExpr{From: pos, To: pos}
}

// parseParen parses a parenthesized expression or the head of an arrow function.
func (p *parser) parseParen() ast.Expr {
	lparen := p.expect(lexer.LPAREN)
	restore := p.allowIn()

	var (
		list     []ast.Expr
		coverErr token.Pos // position of syntax only valid in arrow parameters
	)

	for p.tok != lexer.RPAREN && p.tok != lexer.EOF {
		if p.tok == lexer.ELLIPSIS && !coverErr.IsValid() {
			coverErr = p.pos
		}

		list = append(list, p.parseSpreadOrAssign())

		if p.tok != lexer.COMMA {
			break
		}

		p.next()

		if p.tok == lexer.RPAREN && !coverErr.IsValid() {
			coverErr = p.pos // trailing comma
		}
	}

	restore()

	rparen := p.pos
	p.expect(lexer.RPAREN)

	if len(list) == 0 {
		coverErr = rparen
	}

	if coverErr.IsValid() && p.tok != lexer.ARROW {
		p.errorExpected(coverErr, "expression")
	}

	x := &ast.ParenExpr{Lparen: lparen, Rparen: rparen}

	switch len(list) {
	case 0:
	case 1:
		x.X = list[0]
	default:
		x.X = &ast.SeqExpr{List: list}
	}

	return x
}

func (p *parser) parseArrayLit() *ast.ArrayLit {
	lbrack := p.expect(lexer.LBRACK)
	defer p.allowIn()()

	var elems []ast.Expr

	for p.tok != lexer.RBRACK && p.tok != lexer.EOF {
		if p.tok == lexer.COMMA {
			elems = append(elems, nil) // hole
			p.next()

			continue
		}

		elems = append(elems, p.parseSpreadOrAssign())

		if p.tok != lexer.COMMA {
			break
		}

		p.next()
	}

	rbrack := p.pos
	p.expect(lexer.RBRACK)

	return &ast.ArrayLit{Lbrack: lbrack, Elems: elems, Rbrack: rbrack}
}

func (p *parser) parseObjectLit() *ast.ObjectLit {
	lbrace := p.expect(lexer.LBRACE)
	defer p.allowIn()()

	var props []ast.Expr

	for p.tok != lexer.RBRACE && p.tok != lexer.EOF {
		if p.tok == lexer.ELLIPSIS {
			pos := p.pos
			p.next()

			props = append(props, &ast.Spread{Ellipsis: pos, X: p.parseAssign()})
		} else {
			props = append(props, p.parseProperty())
		}

		if p.tok != lexer.COMMA {
			break
		}

		p.next()
	}

	rbrace := p.pos
	p.expect(lexer.RBRACE)

	return &ast.ObjectLit{Lbrace: lbrace, Props: props, Rbrace: rbrace}
}

func (p *parser) parseProperty() *ast.Property {
	async, generator, kind := p.parseMethodModifiers()

	key, computed := p.parsePropertyKey()

	if p.tok == lexer.LPAREN || async || generator || kind != ast.PropInit {
		if kind == ast.PropInit {
			kind = ast.PropMethod
		}

		fn := p.parseFunctionRest(key.Pos(), async, generator, nil)

		return &ast.Property{Key: key, Computed: computed, Kind: kind, Value: &ast.FuncLit{Func: fn}}
	}

	if p.tok == lexer.COLON {
		p.next()

		return &ast.Property{Key: key, Computed: computed, Value: p.parseAssign()}
	}

	// shorthand property
	id, ok := key.(*ast.Ident)
	if !ok || computed {
		p.errorExpected(p.pos, "':'")

		return &ast.Property{Key: key, Computed: computed, Value: &ast.BadExpr{From: p.pos, To: p.pos}}
	}

	prop := &ast.Property{Key: id, Shorthand: true, Value: id}

	if p.tok == lexer.ASSIGN {
		// only valid when the literal turns out to be a pattern
		p.next()

		prop.Default = p.parseAssign()
	}

	return prop
}

// parsePropertyKey parses a property name of an object literal, pattern or class.
func (p *parser) parsePropertyKey() (key ast.Expr, computed bool) {
	switch {
	case p.tok == lexer.STRING, p.tok == lexer.NUMBER:
		key = &ast.BasicLit{ValuePos: p.pos, Kind: p.tok, Raw: p.lit}
		p.next()

		return key, false

	case p.tok == lexer.PRIVATE:
		key = &ast.PrivateName{NamePos: p.pos, Name: p.lit}
		p.next()

		return key, false

	case p.tok == lexer.LBRACK:
		p.next()

		restore := p.allowIn()
		key = p.parseAssign()

		restore()
		p.expect(lexer.RBRACK)

		return key, true
	}

	return p.parseIdentName(), false
}

func (p *parser) parseTemplate(tag ast.Expr) ast.Expr {
	start := p.pos

	if p.tok == lexer.TEMPLATE {
		raw, closing := p.lit, p.end-1
		p.next()

		if tag == nil {
			return &ast.BasicLit{ValuePos: start, Kind: lexer.TEMPLATE, Raw: raw}
		}

		return &ast.TemplateLit{Tag: tag, Start: start, Quasis: []string{raw}, Close: closing}
	}

	t := &ast.TemplateLit{Tag: tag, Start: start, Quasis: []string{p.lit}}
	p.next()

	restore := p.allowIn()
	defer restore()

	for {
		t.Exprs = append(t.Exprs, p.parseExpr())

		if p.tok != lexer.RBRACE {
			p.errorExpected(p.pos, "'}'")

			t.Close = p.pos

			return t
		}

		p.rescan(p.lexer.RescanTemplate(p.pos))
		t.Quasis = append(t.Quasis, p.lit)

		if p.tok != lexer.TEMPLATE_MIDDLE {
			t.Close = p.end - 1
			p.next()

			return t
		}

		p.next()
	}
}
