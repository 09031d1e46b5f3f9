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
	"go/scanner"
	"go/token"

	"fillmore-labs.com/redeclare/internal/js/ast"
	"fillmore-labs.com/redeclare/internal/js/lexer"
)

// The parser structure holds the parser's internal state.
type parser struct {
	file   *token.File
	errors scanner.ErrorList
	lexer  lexer.Lexer
	mode   Mode
	quiet  bool // suppress lexer errors during lookahead

	// Next token
	pos     token.Pos   // token position
	end     token.Pos   // position immediately after the token
	tok     lexer.Token // one token look-ahead
	lit     string      // token literal
	newline bool        // a line terminator precedes the token
	prevEnd token.Pos   // end of the previous token

	// Context
	module    bool // import and export declarations seen or requested
	funcDepth int  // function nesting level
	inAsync   bool // await is an operator
	inGen     bool // yield is an operator
	noIn      bool // 'in' is not a binary operator (for loop heads)
}

func (p *parser) init(fset *token.FileSet, filename string, src []byte, mode Mode) {
	p.file = fset.AddFile(filename, -1, len(src))
	p.mode = mode
	p.module = mode&Module != 0

	eh := func(pos token.Position, msg string) {
		if !p.quiet {
			p.errors.Add(pos, msg)
		}
	}
	p.lexer.Init(p.file, src, eh)

	p.next()
}

// ----------------------------------------------------------------------------
// Parsing support

// Advance to the next token.
func (p *parser) next() {
	p.prevEnd = p.end
	p.pos, p.tok, p.lit = p.lexer.Scan()
	p.end = p.lexer.End()
	p.newline = p.lexer.NewlineBefore()
}

// lookahead describes the token following the current one.
type lookahead struct {
	tok     lexer.Token
	lit     string
	newline bool
}

// peek returns the token after the current one without consuming anything.
func (p *parser) peek() lookahead {
	saved := p.lexer

	p.quiet = true
	_, tok, lit := p.lexer.Scan()
	la := lookahead{tok: tok, lit: lit, newline: p.lexer.NewlineBefore()}
	p.quiet = false

	p.lexer = saved

	return la
}

// rescan replaces the current token with a context dependent reinterpretation.
func (p *parser) rescan(tok lexer.Token, lit string) {
	p.tok, p.lit = tok, lit
	p.end = p.lexer.End()
}

// A bailout panic is raised to indicate early termination.
type bailout struct{}

func (p *parser) error(pos token.Pos, msg string) {
	epos := p.file.Position(pos)

	// If AllErrors is not set, discard errors reported on the same line
	// as the last recorded error and stop parsing if there are more than
	// 10 errors.
	if p.mode&AllErrors == 0 {
		n := len(p.errors)
		if n > 0 && p.errors[n-1].Pos.Line == epos.Line {
			return // discard - likely a spurious error
		}

		if n > 10 {
			panic(bailout{})
		}
	}

	p.errors.Add(epos, msg)
}

func (p *parser) errorExpected(pos token.Pos, msg string) {
	msg = "expected " + msg
	if pos == p.pos {
		// the error happened at the current position;
		// make the error message more specific
		switch {
		case p.tok == lexer.EOF:
			msg += ", found EOF"
		case p.tok.IsLiteral():
			msg += ", found " + p.lit
		default:
			msg += ", found '" + p.tok.String() + "'"
		}
	}

	p.error(pos, msg)
}

func (p *parser) expect(tok lexer.Token) token.Pos {
	pos := p.pos
	if p.tok != tok {
		p.errorExpected(pos, "'"+tok.String()+"'")

		return pos
	}

	p.next() // make progress

	return pos
}

// isContextual reports whether the current token is the identifier name.
func (p *parser) isContextual(name string) bool {
	return p.tok == lexer.IDENT && p.lit == name
}

func (p *parser) expectContextual(name string) {
	if !p.isContextual(name) {
		p.errorExpected(p.pos, "'"+name+"'")

		return
	}

	p.next()
}

// semicolon consumes a statement terminator, applying automatic semicolon insertion.
func (p *parser) semicolon() {
	switch {
	case p.tok == lexer.SEMICOLON:
		p.next()

	case p.tok == lexer.RBRACE, p.tok == lexer.EOF, p.newline:
		// inserted

	default:
		p.errorExpected(p.pos, "';'")
	}
}

// allowIn re-enables the 'in' operator inside a nested construct and returns
// a function restoring the previous state.
func (p *parser) allowIn() (restore func()) {
	old := p.noIn
	p.noIn = false

	return func() { p.noIn = old }
}

// enterFunction sets up the context for a function body and returns
// a function restoring the previous context.
func (p *parser) enterFunction(async, generator bool) (restore func()) {
	oldAsync, oldGen, oldIn := p.inAsync, p.inGen, p.noIn
	p.inAsync, p.inGen, p.noIn = async, generator, false
	p.funcDepth++

	return func() {
		p.inAsync, p.inGen, p.noIn = oldAsync, oldGen, oldIn
		p.funcDepth--
	}
}

// ----------------------------------------------------------------------------
// Identifiers

func (p *parser) ident() *ast.Ident {
	return &ast.Ident{NamePos: p.pos, NameEnd: p.end, Name: p.lit}
}

// parseBindingIdent parses an identifier in binding position.
func (p *parser) parseBindingIdent() *ast.Ident {
	if p.tok != lexer.IDENT {
		p.errorExpected(p.pos, "identifier")

		return &ast.Ident{NamePos: p.pos, NameEnd: p.pos, Name: "_"}
	}

	id := p.ident()
	p.next()

	return id
}

// parseIdentName parses an IdentifierName, which includes reserved words.
func (p *parser) parseIdentName() *ast.Ident {
	if p.tok != lexer.IDENT && !p.tok.IsKeyword() {
		p.errorExpected(p.pos, "property name")

		return &ast.Ident{NamePos: p.pos, NameEnd: p.pos, Name: "_"}
	}

	id := p.ident()
	p.next()

	return id
}

// ----------------------------------------------------------------------------
// Source files

func (p *parser) parseFile() *ast.File {
	start := token.Pos(p.file.Base())

	body := p.parseStatementList(func(tok lexer.Token) bool { return false })

	var comments []*ast.Comment
	if p.mode&ParseComments != 0 {
		lc := p.lexer.Comments()
		comments = make([]*ast.Comment, 0, len(lc))

		for _, c := range lc {
			comments = append(comments, &ast.Comment{Slash: c.Pos, Text: c.Text})
		}
	}

	return &ast.File{
		Name:     p.file.Name(),
		Start:    start,
		EndPos:   token.Pos(p.file.Base() + p.file.Size()),
		Module:   p.module,
		Body:     body,
		Comments: comments,
	}
}
