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

// parseStatementList parses statements until EOF or a token for which isEnd returns true.
func (p *parser) parseStatementList(isEnd func(lexer.Token) bool) []ast.Stmt {
	var list []ast.Stmt

	for p.tok != lexer.EOF && !isEnd(p.tok) {
		before := p.pos

		list = append(list, p.parseStatement())

		if p.pos == before {
			// no progress, skip the offending token
			p.next()
		}
	}

	return list
}

func isRbrace(tok lexer.Token) bool { return tok == lexer.RBRACE }

func (p *parser) parseStatement() ast.Stmt {
	switch p.tok {
	case lexer.LBRACE:
		return p.parseBlock()

	case lexer.SEMICOLON:
		s := &ast.EmptyStmt{Semicolon: p.pos}
		p.next()

		return s

	case lexer.VAR, lexer.CONST:
		return p.parseVarStmt()

	case lexer.FUNCTION:
		return &ast.FuncDecl{Func: p.parseFunction(p.pos, false)}

	case lexer.CLASS:
		return &ast.ClassDecl{Class: p.parseClass()}

	case lexer.IF:
		return p.parseIfStmt()

	case lexer.FOR:
		return p.parseForStmt()

	case lexer.WHILE:
		return p.parseWhileStmt()

	case lexer.DO:
		return p.parseDoWhileStmt()

	case lexer.RETURN:
		return p.parseReturnStmt()

	case lexer.BREAK, lexer.CONTINUE:
		return p.parseBranchStmt()

	case lexer.THROW:
		return p.parseThrowStmt()

	case lexer.TRY:
		return p.parseTryStmt()

	case lexer.SWITCH:
		return p.parseSwitchStmt()

	case lexer.WITH:
		return p.parseWithStmt()

	case lexer.DEBUGGER:
		s := &ast.DebuggerStmt{Debugger: p.pos}
		p.next()
		p.semicolon()
		s.EndPos = p.prevEnd

		return s

	case lexer.IMPORT:
		if la := p.peek(); la.tok != lexer.LPAREN && la.tok != lexer.DOT {
			return p.parseImportDecl()
		}

	case lexer.EXPORT:
		return p.parseExportDecl()

	case lexer.IDENT:
		switch {
		case p.isLetDecl():
			return p.parseVarStmt()

		case p.isAsyncFunction():
			start := p.pos
			p.next()

			return &ast.FuncDecl{Func: p.parseFunction(start, true)}
		}

		if la := p.peek(); la.tok == lexer.COLON {
			return p.parseLabeledStmt()
		}
	}

	return p.parseExprStmt()
}

// isLetDecl reports whether the current 'let' starts a lexical declaration.
func (p *parser) isLetDecl() bool {
	if !p.isContextual("let") {
		return false
	}

	switch p.peek().tok {
	case lexer.IDENT, lexer.LBRACK, lexer.LBRACE:
		return true
	}

	return false
}

// isAsyncFunction reports whether the current token starts "async function" without line break.
func (p *parser) isAsyncFunction() bool {
	if !p.isContextual("async") {
		return false
	}

	la := p.peek()

	return la.tok == lexer.FUNCTION && !la.newline
}

func (p *parser) parseBlock() *ast.BlockStmt {
	lbrace := p.expect(lexer.LBRACE)
	list := p.parseStatementList(isRbrace)
	rbrace := p.pos
	p.expect(lexer.RBRACE)

	return &ast.BlockStmt{Lbrace: lbrace, List: list, Rbrace: rbrace}
}

func (p *parser) parseVarStmt() *ast.VarDecl {
	d := p.parseVarDecl()
	p.semicolon()
	d.EndPos = p.prevEnd

	return d
}

// parseVarDecl parses a var, let or const declaration without the terminating semicolon.
func (p *parser) parseVarDecl() *ast.VarDecl {
	d := &ast.VarDecl{DeclPos: p.pos, Kind: p.tok}
	p.next()

	for {
		target := p.parseBindingTarget()

		var init ast.Expr
		if p.tok == lexer.ASSIGN {
			p.next()

			init = p.parseAssign()
		}

		d.List = append(d.List, &ast.VarDeclarator{Target: target, Init: init})

		if p.tok != lexer.COMMA {
			break
		}

		p.next()
	}

	d.EndPos = p.prevEnd

	return d
}

func (p *parser) parseParenCond() ast.Expr {
	p.expect(lexer.LPAREN)
	defer p.allowIn()()

	x := p.parseExpr()
	p.expect(lexer.RPAREN)

	return x
}

func (p *parser) parseIfStmt() *ast.IfStmt {
	s := &ast.IfStmt{If: p.expect(lexer.IF)}
	s.Cond = p.parseParenCond()
	s.Then = p.parseStatement()

	if p.tok == lexer.ELSE {
		p.next()

		s.Else = p.parseStatement()
	}

	return s
}

func (p *parser) parseForStmt() ast.Stmt {
	forPos := p.expect(lexer.FOR)

	await := false
	if p.isContextual("await") {
		await = true

		p.next()
	}

	p.expect(lexer.LPAREN)

	var (
		init ast.Node
		decl *ast.VarDecl
		x    ast.Expr
	)

	restore := p.allowIn()
	p.noIn = true

	switch {
	case p.tok == lexer.SEMICOLON:

	case p.tok == lexer.VAR, p.tok == lexer.CONST, p.isLetDecl():
		decl = p.parseVarDecl()
		init = decl

	default:
		x = p.parseExpr()
		init = x
	}

	p.noIn = false

	if init != nil && (p.tok == lexer.IN || p.isContextual("of")) {
		s := &ast.ForInStmt{For: forPos, Await: await, Of: p.tok != lexer.IN}
		p.next()

		if decl != nil {
			s.Left = decl
		} else {
			s.Left = p.toPattern(x, true)
		}

		if s.Of {
			s.Right = p.parseAssign()
		} else {
			s.Right = p.parseExpr()
		}

		restore()
		p.expect(lexer.RPAREN)
		s.Body = p.parseStatement()

		return s
	}

	s := &ast.ForStmt{For: forPos, Init: init}
	p.expect(lexer.SEMICOLON)

	if p.tok != lexer.SEMICOLON {
		s.Cond = p.parseExpr()
	}

	p.expect(lexer.SEMICOLON)

	if p.tok != lexer.RPAREN {
		s.Post = p.parseExpr()
	}

	restore()
	p.expect(lexer.RPAREN)
	s.Body = p.parseStatement()

	return s
}

func (p *parser) parseWhileStmt() *ast.WhileStmt {
	s := &ast.WhileStmt{While: p.expect(lexer.WHILE)}
	s.Cond = p.parseParenCond()
	s.Body = p.parseStatement()

	return s
}

func (p *parser) parseDoWhileStmt() *ast.DoWhileStmt {
	s := &ast.DoWhileStmt{Do: p.expect(lexer.DO)}
	s.Body = p.parseStatement()
	p.expect(lexer.WHILE)
	s.Cond = p.parseParenCond()

	// a semicolon is always inserted after do-while
	if p.tok == lexer.SEMICOLON {
		p.next()
	}

	s.EndPos = p.prevEnd

	return s
}

// canContinueStatement reports whether the current token may continue a restricted production.
func (p *parser) canContinueStatement() bool {
	switch p.tok {
	case lexer.SEMICOLON, lexer.RBRACE, lexer.EOF:
		return false
	}

	return !p.newline
}

func (p *parser) parseReturnStmt() *ast.ReturnStmt {
	// top level return is accepted, CommonJS modules are wrapped in a function
	s := &ast.ReturnStmt{Return: p.expect(lexer.RETURN)}

	if p.canContinueStatement() {
		s.Result = p.parseExpr()
	}

	p.semicolon()
	s.EndPos = p.prevEnd

	return s
}

func (p *parser) parseBranchStmt() *ast.BranchStmt {
	s := &ast.BranchStmt{TokPos: p.pos, Tok: p.tok}
	p.next()

	if p.tok == lexer.IDENT && !p.newline {
		s.Label = p.ident()
		p.next()
	}

	p.semicolon()
	s.EndPos = p.prevEnd

	return s
}

func (p *parser) parseThrowStmt() *ast.ThrowStmt {
	s := &ast.ThrowStmt{Throw: p.expect(lexer.THROW)}
	if p.newline {
		p.error(p.pos, "illegal newline after throw")
	}

	s.X = p.parseExpr()
	p.semicolon()
	s.EndPos = p.prevEnd

	return s
}

func (p *parser) parseTryStmt() *ast.TryStmt {
	s := &ast.TryStmt{Try: p.expect(lexer.TRY)}
	s.Body = p.parseBlock()

	if p.tok == lexer.CATCH {
		c := &ast.CatchClause{Catch: p.pos}
		p.next()

		if p.tok == lexer.LPAREN {
			p.next()

			c.Param = p.parseBindingTarget()
			p.expect(lexer.RPAREN)
		}

		c.Body = p.parseBlock()
		s.Handler = c
	}

	if p.tok == lexer.FINALLY {
		p.next()

		s.Finally = p.parseBlock()
	}

	if s.Handler == nil && s.Finally == nil {
		p.errorExpected(p.pos, "catch or finally")
	}

	return s
}

func isCaseEnd(tok lexer.Token) bool {
	return tok == lexer.CASE || tok == lexer.DEFAULT || tok == lexer.RBRACE
}

func (p *parser) parseSwitchStmt() *ast.SwitchStmt {
	s := &ast.SwitchStmt{Switch: p.expect(lexer.SWITCH)}
	s.Tag = p.parseParenCond()
	p.expect(lexer.LBRACE)

	for p.tok != lexer.RBRACE && p.tok != lexer.EOF {
		c := &ast.CaseClause{Case: p.pos}

		switch p.tok {
		case lexer.CASE:
			p.next()

			c.Test = p.parseExpr()

		case lexer.DEFAULT:
			p.next()

		default:
			p.errorExpected(p.pos, "case or default")
			p.next()

			continue
		}

		c.Colon = p.expect(lexer.COLON)
		c.Body = p.parseStatementList(isCaseEnd)
		s.Cases = append(s.Cases, c)
	}

	s.Rbrace = p.pos
	p.expect(lexer.RBRACE)

	return s
}

func (p *parser) parseWithStmt() *ast.WithStmt {
	s := &ast.WithStmt{With: p.expect(lexer.WITH)}
	s.Object = p.parseParenCond()
	s.Body = p.parseStatement()

	return s
}

func (p *parser) parseLabeledStmt() *ast.LabeledStmt {
	label := p.ident()
	p.next()
	p.expect(lexer.COLON)

	return &ast.LabeledStmt{Label: label, Body: p.parseStatement()}
}

func (p *parser) parseExprStmt() ast.Stmt {
	x := p.parseExpr()
	p.semicolon()

	return &ast.ExprStmt{X: x, EndPos: p.prevEnd}
}

// ----------------------------------------------------------------------------
// Modules

func (p *parser) parseImportDecl() *ast.ImportDecl {
	s := &ast.ImportDecl{Import: p.expect(lexer.IMPORT)}
	p.module = true

	if p.tok == lexer.STRING {
		s.Source = p.parseStringLit()
		p.parseImportAttributes()
		p.semicolon()
		s.EndPos = p.prevEnd

		return s
	}

	if p.tok == lexer.IDENT {
		s.Specs = append(s.Specs, &ast.ImportSpec{Local: p.parseBindingIdent(), Default: true})

		if p.tok == lexer.COMMA {
			p.next()
		}
	}

	switch p.tok {
	case lexer.MUL:
		p.next()
		p.expectContextual("as")
		s.Specs = append(s.Specs, &ast.ImportSpec{Local: p.parseBindingIdent(), Star: true})

	case lexer.LBRACE:
		p.next()

		for p.tok != lexer.RBRACE && p.tok != lexer.EOF {
			s.Specs = append(s.Specs, p.parseImportSpec())

			if p.tok != lexer.COMMA {
				break
			}

			p.next()
		}

		p.expect(lexer.RBRACE)
	}

	p.expectContextual("from")
	s.Source = p.parseStringLit()
	p.parseImportAttributes()
	p.semicolon()
	s.EndPos = p.prevEnd

	return s
}

func (p *parser) parseImportSpec() *ast.ImportSpec {
	imported := p.parseModuleExportName()

	if p.isContextual("as") {
		p.next()

		return &ast.ImportSpec{Imported: imported, Local: p.parseBindingIdent()}
	}

	local, ok := imported.(*ast.Ident)
	if !ok || p.isReservedWord(local.Name) {
		p.error(imported.Pos(), "expected 'as' after imported name")

		local = &ast.Ident{NamePos: imported.Pos(), NameEnd: imported.End(), Name: "_"}
	}

	return &ast.ImportSpec{Imported: imported, Local: local}
}

func (p *parser) isReservedWord(name string) bool {
	return lexer.Lookup(name) != lexer.IDENT
}

// parseImportAttributes skips "with { type: 'json' }" clauses.
func (p *parser) parseImportAttributes() {
	if p.tok != lexer.WITH && !(p.isContextual("assert") && !p.newline) {
		return
	}

	p.next()
	p.parseObjectLit()
}

// parseModuleExportName parses an IdentifierName or string literal.
func (p *parser) parseModuleExportName() ast.Expr {
	if p.tok == lexer.STRING {
		return p.parseStringLit()
	}

	return p.parseIdentName()
}

func (p *parser) parseStringLit() *ast.BasicLit {
	lit := &ast.BasicLit{ValuePos: p.pos, Kind: lexer.STRING, Raw: p.lit}
	if p.tok != lexer.STRING {
		p.errorExpected(p.pos, "string literal")

		lit.Raw = `""`

		return lit
	}

	p.next()

	return lit
}

func (p *parser) parseExportDecl() ast.Stmt {
	export := p.expect(lexer.EXPORT)
	p.module = true

	switch {
	case p.tok == lexer.MUL:
		s := &ast.ExportAll{Export: export}
		p.next()

		if p.isContextual("as") {
			p.next()

			switch name := p.parseModuleExportName().(type) {
			case *ast.Ident:
				s.Alias = name
			case *ast.BasicLit:
				s.Alias = &ast.Ident{NamePos: name.Pos(), NameEnd: name.End(), Name: name.Raw}
			}
		}

		p.expectContextual("from")
		s.Source = p.parseStringLit()
		p.parseImportAttributes()
		p.semicolon()
		s.EndPos = p.prevEnd

		return s

	case p.tok == lexer.DEFAULT:
		s := &ast.ExportDefault{Export: export}
		p.next()

		switch {
		case p.tok == lexer.FUNCTION:
			s.Decl = &ast.FuncDecl{Func: p.parseFunction(p.pos, false)}

		case p.isAsyncFunction():
			start := p.pos
			p.next()
			s.Decl = &ast.FuncDecl{Func: p.parseFunction(start, true)}

		case p.tok == lexer.CLASS:
			s.Decl = &ast.ClassDecl{Class: p.parseClass()}

		default:
			s.Decl = p.parseAssign()
			p.semicolon()
		}

		s.EndPos = p.prevEnd

		return s

	case p.tok == lexer.LBRACE:
		s := &ast.ExportNamed{Export: export}
		p.next()

		for p.tok != lexer.RBRACE && p.tok != lexer.EOF {
			spec := &ast.ExportSpec{Local: p.parseModuleExportName()}
			spec.Exported = spec.Local

			if p.isContextual("as") {
				p.next()

				spec.Exported = p.parseModuleExportName()
			}

			s.Specs = append(s.Specs, spec)

			if p.tok != lexer.COMMA {
				break
			}

			p.next()
		}

		p.expect(lexer.RBRACE)

		if p.isContextual("from") {
			p.next()

			s.Source = p.parseStringLit()
			p.parseImportAttributes()
		}

		p.semicolon()
		s.EndPos = p.prevEnd

		return s

	case p.tok == lexer.VAR, p.tok == lexer.CONST, p.tok == lexer.FUNCTION, p.tok == lexer.CLASS,
		p.isLetDecl(), p.isAsyncFunction():
		return &ast.ExportDecl{Export: export, Decl: p.parseStatement()}
	}

	p.errorExpected(p.pos, "declaration")

	return &ast.BadStmt{From: export, To: p.pos}
}

// ----------------------------------------------------------------------------
// Functions and classes

// parseFunction parses "function [*] [name] (params) { body }"; async was already consumed.
func (p *parser) parseFunction(start token.Pos, async bool) *ast.Function {
	p.expect(lexer.FUNCTION)

	generator := false
	if p.tok == lexer.MUL {
		generator = true

		p.next()
	}

	var name *ast.Ident
	if p.tok == lexer.IDENT {
		name = p.ident()
		p.next()
	}

	return p.parseFunctionRest(start, async, generator, name)
}

func (p *parser) parseFunctionRest(start token.Pos, async, generator bool, name *ast.Ident) *ast.Function {
	defer p.enterFunction(async, generator)()

	params := p.parseParams()
	body := p.parseBlock()

	return &ast.Function{
		Start:     start,
		Async:     async,
		Generator: generator,
		Name:      name,
		Params:    params,
		Body:      body,
	}
}

func (p *parser) parseParams() []*ast.Param {
	p.expect(lexer.LPAREN)

	var params []*ast.Param

	for p.tok != lexer.RPAREN && p.tok != lexer.EOF {
		param := &ast.Param{}

		if p.tok == lexer.ELLIPSIS {
			param.Ellipsis = p.pos
			p.next()
		}

		param.Target = p.parseBindingTarget()

		if p.tok == lexer.ASSIGN {
			p.next()

			param.Default = p.parseAssign()
		}

		params = append(params, param)

		if p.tok != lexer.COMMA {
			break
		}

		p.next()
	}

	p.expect(lexer.RPAREN)

	return params
}

func (p *parser) parseClass() *ast.Class {
	c := &ast.Class{Start: p.expect(lexer.CLASS)}

	if p.tok == lexer.IDENT {
		c.Name = p.ident()
		p.next()
	}

	if p.tok == lexer.EXTENDS {
		p.next()

		c.Super = p.parseLeftHandSide()
	}

	p.expect(lexer.LBRACE)

	defer p.allowIn()()

	for p.tok != lexer.RBRACE && p.tok != lexer.EOF {
		if p.tok == lexer.SEMICOLON {
			p.next()

			continue
		}

		before := p.pos

		if m := p.parseClassMember(); m != nil {
			c.Members = append(c.Members, m)
		}

		if p.pos == before {
			p.next()
		}
	}

	c.Rbrace = p.pos
	p.expect(lexer.RBRACE)

	return c
}

// isPropertyKeyStart reports whether la can start a property name, which distinguishes
// modifiers like "static" or "get" from members of the same name.
func isPropertyKeyStart(la lookahead) bool {
	switch la.tok {
	case lexer.IDENT, lexer.STRING, lexer.NUMBER, lexer.LBRACK, lexer.PRIVATE, lexer.MUL:
		return true
	}

	return la.tok.IsKeyword()
}

func (p *parser) parseClassMember() ast.Node {
	start := p.pos

	static := false
	if p.isContextual("static") {
		switch la := p.peek(); {
		case la.tok == lexer.LBRACE:
			p.next()

			return p.parseStaticBlock(start)

		case isPropertyKeyStart(la):
			static = true

			p.next()
		}
	}

	async, generator, kind := p.parseMethodModifiers()

	key, computed := p.parsePropertyKey()

	if p.tok == lexer.LPAREN || async || generator || kind != ast.PropInit {
		if kind == ast.PropInit {
			kind = ast.PropMethod
		}

		fn := p.parseFunctionRest(key.Pos(), async, generator, nil)

		return &ast.MethodDef{Static: static, Key: key, Computed: computed, Kind: kind, Value: &ast.FuncLit{Func: fn}}
	}

	f := &ast.FieldDef{Static: static, Key: key, Computed: computed}

	if p.tok == lexer.ASSIGN {
		p.next()

		restore := p.enterFunction(false, false)
		f.Value = p.parseAssign()

		restore()
	}

	p.semicolon()
	f.EndPos = p.prevEnd

	return f
}

func (p *parser) parseStaticBlock(start token.Pos) *ast.StaticBlock {
	p.expect(lexer.LBRACE)

	restore := p.enterFunction(false, false)
	body := p.parseStatementList(isRbrace)

	restore()

	rbrace := p.pos
	p.expect(lexer.RBRACE)

	return &ast.StaticBlock{Static: start, Body: body, Rbrace: rbrace}
}

// parseMethodModifiers consumes async, get, set and * prefixes of methods.
func (p *parser) parseMethodModifiers() (async, generator bool, kind ast.PropKind) {
	if p.tok == lexer.IDENT {
		switch p.lit {
		case "async":
			if la := p.peek(); isPropertyKeyStart(la) && !la.newline {
				async = true

				p.next()
			}

		case "get", "set":
			if la := p.peek(); isPropertyKeyStart(la) && la.tok != lexer.MUL {
				kind = ast.PropGet
				if p.lit == "set" {
					kind = ast.PropSet
				}

				p.next()
			}
		}
	}

	if p.tok == lexer.MUL {
		generator = true

		p.next()
	}

	return async, generator, kind
}
