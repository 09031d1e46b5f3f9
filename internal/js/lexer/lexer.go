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

// Package lexer implements a scanner for JavaScript source text.
//
// It takes a []byte as source which can then be tokenized through repeated
// calls to the Scan method. Regular expression literals and the continuation
// of template literals are context dependent; the parser requests them
// with [Lexer.RescanRegExp] and [Lexer.RescanTemplate].
package lexer

import (
	"bytes"
	"fmt"
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// An ErrorHandler may be provided to [Lexer.Init]. If a syntax error is
// encountered and a handler was installed, the handler is called with a
// position and an error message.
type ErrorHandler func(pos token.Position, msg string)

// Comment is a single // or /* */ comment, including its delimiters.
type Comment struct {
	Pos, End token.Pos
	Text     string
}

// A Lexer holds the scanner's internal state while processing
// a given text. It must be initialized via [Lexer.Init] before use.
type Lexer struct {
	file *token.File
	src  []byte
	err  ErrorHandler

	ch       rune // current character
	offset   int  // character offset
	rdOffset int  // reading offset (position after current character)

	newline  bool // a line terminator precedes the current token
	comments []Comment

	// ErrorCount is the number of errors encountered.
	ErrorCount int
}

const (
	bom = 0xFEFF // byte order mark, permitted as first character and as whitespace
	eof = -1

	lineSeparator      = '\u2028'
	paragraphSeparator = '\u2029'
)

// Init prepares the lexer l to tokenize the text src by setting the
// lexer at the beginning of src. The file size must match len(src).
func (l *Lexer) Init(file *token.File, src []byte, err ErrorHandler) {
	if file.Size() != len(src) {
		panic(fmt.Sprintf("file size (%d) does not match src len (%d)", file.Size(), len(src)))
	}

	l.file = file
	l.src = src
	l.err = err

	l.ch = ' '
	l.offset = 0
	l.rdOffset = 0
	l.newline = false
	l.comments = nil
	l.ErrorCount = 0

	l.next()

	if l.ch == bom {
		l.next()
	}
}

// NewlineBefore reports whether a line terminator precedes the most recently scanned token.
func (l *Lexer) NewlineBefore() bool { return l.newline }

// End returns the position immediately after the most recently scanned token.
func (l *Lexer) End() token.Pos { return l.file.Pos(l.offset) }

// Comments returns all comments scanned so far, in source order.
func (l *Lexer) Comments() []Comment { return l.comments }

func isLineTerminator(ch rune) bool {
	return ch == '\n' || ch == '\r' || ch == lineSeparator || ch == paragraphSeparator
}

// next reads the next Unicode char into l.ch.
// l.ch < 0 means end-of-file.
func (l *Lexer) next() {
	prev := l.ch

	if l.rdOffset >= len(l.src) {
		l.offset = len(l.src)
		if isLineTerminator(prev) {
			l.file.AddLine(l.offset)
		}

		l.ch = eof

		return
	}

	l.offset = l.rdOffset

	r, w := rune(l.src[l.rdOffset]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(l.src[l.rdOffset:])
		if r == utf8.RuneError && w == 1 {
			l.error(l.offset, "illegal UTF-8 encoding")
		}
	}

	if isLineTerminator(prev) && (prev != '\r' || r != '\n') {
		l.file.AddLine(l.offset)
	}

	l.rdOffset += w
	l.ch = r
}

// peek returns the byte following the most recently read character without
// advancing the lexer. If the lexer is at EOF, peek returns 0.
func (l *Lexer) peek() byte {
	if l.rdOffset < len(l.src) {
		return l.src[l.rdOffset]
	}

	return 0
}

// reset positions the lexer at offset.
func (l *Lexer) reset(offset int) {
	l.rdOffset = offset
	l.ch = 0
	l.next()
}

func (l *Lexer) error(offs int, msg string) {
	if l.err != nil {
		l.err(l.file.Position(l.file.Pos(offs)), msg)
	}

	l.ErrorCount++
}

func (l *Lexer) errorf(offs int, format string, args ...any) {
	l.error(offs, fmt.Sprintf(format, args...))
}

func (l *Lexer) skipWhitespace() {
	for {
		switch ch := l.ch; {
		case ch == ' ', ch == '\t', ch == '\v', ch == '\f', ch == 0xA0, ch == bom:
			l.next()

		case isLineTerminator(ch):
			l.newline = true
			l.next()

		case ch >= utf8.RuneSelf && unicode.Is(unicode.Zs, ch):
			l.next()

		default:
			return
		}
	}
}

func (l *Lexer) scanLineComment(offs int) {
	for l.ch != eof && !isLineTerminator(l.ch) {
		l.next()
	}

	l.addComment(offs)
}

func (l *Lexer) scanBlockComment(offs int) {
	// initial "/*" already consumed
	for {
		switch {
		case l.ch == eof:
			l.error(offs, "comment not terminated")
			l.addComment(offs)

			return

		case l.ch == '*' && l.peek() == '/':
			l.next()
			l.next()
			l.addComment(offs)

			return

		case isLineTerminator(l.ch):
			l.newline = true
		}

		l.next()
	}
}

func (l *Lexer) addComment(offs int) {
	l.comments = append(l.comments, Comment{
		Pos:  l.file.Pos(offs),
		End:  l.file.Pos(l.offset),
		Text: string(l.src[offs:l.offset]),
	})
}

func isLetter(ch rune) bool {
	return 'a' <= lower(ch) && lower(ch) <= 'z' || ch == '$' || ch == '_' ||
		ch >= utf8.RuneSelf && (unicode.IsLetter(ch) || unicode.Is(unicode.Nl, ch) || unicode.Is(unicode.Other_ID_Start, ch))
}

func isIdentPart(ch rune) bool {
	return isLetter(ch) || isDecimal(ch) ||
		ch >= utf8.RuneSelf && (unicode.In(ch, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc) || ch == '\u200c' || ch == '\u200d')
}

func lower(ch rune) rune     { return ('a' - 'A') | ch }
func isDecimal(ch rune) bool { return '0' <= ch && ch <= '9' }
func isOctal(ch rune) bool   { return '0' <= ch && ch <= '7' }
func isBinary(ch rune) bool  { return ch == '0' || ch == '1' }

func isHex(ch rune) bool {
	return '0' <= ch && ch <= '9' || 'a' <= lower(ch) && lower(ch) <= 'f'
}

// scanIdentifier reads an identifier. The returned name has unicode escapes decoded;
// escaped reports whether the source spelled it with escapes.
func (l *Lexer) scanIdentifier() (name string, escaped bool) {
	offs := l.offset

	var b strings.Builder

	for isIdentPart(l.ch) || l.ch == '\\' {
		if l.ch != '\\' {
			if escaped {
				b.WriteRune(l.ch) // ignore error
			}

			l.next()

			continue
		}

		if !escaped {
			escaped = true

			b.Write(l.src[offs:l.offset]) // ignore error
		}

		escOffs := l.offset
		l.next()

		r, ok := l.scanUnicodeEscape(escOffs)
		if !ok {
			break
		}

		b.WriteRune(r) // ignore error
	}

	if escaped {
		return b.String(), true
	}

	return string(l.src[offs:l.offset]), false
}

// scanUnicodeEscape reads \uXXXX or \u{X...} after the backslash.
func (l *Lexer) scanUnicodeEscape(offs int) (rune, bool) {
	if l.ch != 'u' {
		l.error(offs, "invalid escape sequence in identifier")

		return 0, false
	}

	l.next()

	var r rune

	if l.ch == '{' {
		l.next()

		n := 0
		for ; isHex(l.ch); n++ {
			r = r<<4 | hexValue(l.ch)
			l.next()
		}

		if l.ch != '}' || n == 0 || r > unicode.MaxRune {
			l.error(offs, "invalid unicode escape sequence")

			return 0, false
		}

		l.next()

		return r, true
	}

	for range 4 {
		if !isHex(l.ch) {
			l.error(offs, "invalid unicode escape sequence")

			return 0, false
		}

		r = r<<4 | hexValue(l.ch)
		l.next()
	}

	return r, true
}

func hexValue(ch rune) rune {
	switch {
	case '0' <= ch && ch <= '9':
		return ch - '0'
	case 'a' <= lower(ch) && lower(ch) <= 'f':
		return lower(ch) - 'a' + 10
	}

	return 0
}

func (l *Lexer) digits(valid func(rune) bool) {
	for valid(l.ch) || l.ch == '_' {
		l.next()
	}
}

func (l *Lexer) scanNumber() string {
	offs := l.offset

	switch {
	case l.ch == '0' && (lower(rune(l.peek())) == 'x' || lower(rune(l.peek())) == 'o' || lower(rune(l.peek())) == 'b'):
		l.next()

		prefix := lower(l.ch)
		l.next()

		valid := isHex
		switch prefix {
		case 'o':
			valid = isOctal
		case 'b':
			valid = isBinary
		}

		start := l.offset
		l.digits(valid)

		if l.offset == start {
			l.error(offs, "missing digits after numeric prefix")
		}

	default:
		l.digits(isDecimal)

		if l.ch == '.' {
			l.next()
			l.digits(isDecimal)
		}

		if lower(l.ch) == 'e' {
			l.next()

			if l.ch == '+' || l.ch == '-' {
				l.next()
			}

			start := l.offset
			l.digits(isDecimal)

			if l.offset == start {
				l.error(offs, "exponent has no digits")
			}
		}
	}

	if l.ch == 'n' {
		l.next()
	}

	if isLetter(l.ch) || isDecimal(l.ch) {
		l.error(l.offset, "identifier starts immediately after numeric literal")
	}

	return string(l.src[offs:l.offset])
}

func (l *Lexer) scanString(offs int, quote rune) string {
	// opening quote already consumed
	for {
		ch := l.ch
		if ch == quote {
			l.next()

			break
		}

		if ch == eof || ch == '\n' || ch == '\r' {
			l.error(offs, "string literal not terminated")

			break
		}

		l.next()

		if ch == '\\' {
			switch l.ch {
			case eof:
			case '\r':
				l.next()

				if l.ch == '\n' {
					l.next()
				}

			default:
				l.next()
			}
		}
	}

	return string(l.src[offs:l.offset])
}

// scanTemplate reads template characters up to and including "`" or "${".
func (l *Lexer) scanTemplate(offs int, head bool) (Token, string) {
	for {
		switch l.ch {
		case eof:
			l.error(offs, "template literal not terminated")

			if head {
				return TEMPLATE, string(l.src[offs:l.offset])
			}

			return TEMPLATE_TAIL, string(l.src[offs:l.offset])

		case '`':
			l.next()

			if head {
				return TEMPLATE, string(l.src[offs:l.offset])
			}

			return TEMPLATE_TAIL, string(l.src[offs:l.offset])

		case '$':
			l.next()

			if l.ch != '{' {
				continue
			}

			l.next()

			if head {
				return TEMPLATE_HEAD, string(l.src[offs:l.offset])
			}

			return TEMPLATE_MIDDLE, string(l.src[offs:l.offset])

		case '\\':
			l.next()

			if l.ch != eof {
				l.next()
			}

		default:
			l.next()
		}
	}
}

func (l *Lexer) switch2(tok0, tok1 Token) Token {
	if l.ch == '=' {
		l.next()

		return tok1
	}

	return tok0
}

// switch3 handles op, op= and the doubled operator (op2) with its assignment form.
func (l *Lexer) switch3(tok0, tok1 Token, ch2 rune, tok2, tok3 Token) Token {
	if l.ch == '=' {
		l.next()

		return tok1
	}

	if l.ch == ch2 {
		l.next()

		return l.switch2(tok2, tok3)
	}

	return tok0
}

// Scan scans the next token and returns the token position, the token,
// and its literal string if applicable. The source end is indicated by
// [EOF].
//
// If the returned token is a literal ([IDENT], [NUMBER], [STRING], ...)
// or a keyword, the literal string has the corresponding value. For identifiers
// spelled with unicode escapes the literal is the decoded name.
// In all other cases, Scan returns an empty literal string.
func (l *Lexer) Scan() (pos token.Pos, tok Token, lit string) {
	l.newline = false

scanAgain:
	l.skipWhitespace()

	offs := l.offset
	pos = l.file.Pos(offs)

	switch ch := l.ch; {
	case isLetter(ch) || ch == '\\':
		name, escaped := l.scanIdentifier()

		lit, tok = name, IDENT
		if !escaped {
			tok = Lookup(name)
		}

		return pos, tok, lit

	case isDecimal(ch) || ch == '.' && isDecimal(rune(l.peek())):
		return pos, NUMBER, l.scanNumber()
	}

	ch := l.ch
	l.next() // always make progress

	switch ch {
	case eof:
		tok = EOF

	case '"', '\'':
		tok, lit = STRING, l.scanString(offs, ch)

	case '`':
		tok, lit = l.scanTemplate(offs, true)

	case '#':
		switch {
		case offs == 0 && l.ch == '!':
			l.scanLineComment(offs)

			goto scanAgain

		case isLetter(l.ch) || l.ch == '\\':
			name, _ := l.scanIdentifier()
			tok, lit = PRIVATE, "#"+name

		default:
			l.errorf(offs, "illegal character %#U", ch)
			tok, lit = ILLEGAL, "#"
		}

	case '{':
		tok = LBRACE
	case '}':
		tok = RBRACE
	case '(':
		tok = LPAREN
	case ')':
		tok = RPAREN
	case '[':
		tok = LBRACK
	case ']':
		tok = RBRACK
	case ';':
		tok = SEMICOLON
	case ',':
		tok = COMMA
	case ':':
		tok = COLON
	case '~':
		tok = BNOT

	case '.':
		tok = DOT
		if l.ch == '.' && l.peek() == '.' {
			l.next()
			l.next()

			tok = ELLIPSIS
		}

	case '?':
		switch {
		case l.ch == '.' && !isDecimal(rune(l.peek())):
			l.next()

			tok = QUESTION_DOT

		case l.ch == '?':
			l.next()

			tok = l.switch2(NULLISH, NULLISH_ASSIGN)

		default:
			tok = QUESTION
		}

	case '=':
		switch l.ch {
		case '>':
			l.next()

			tok = ARROW

		case '=':
			l.next()

			tok = l.switch2(EQL, STRICT_EQL)

		default:
			tok = ASSIGN
		}

	case '!':
		tok = NOT
		if l.ch == '=' {
			l.next()

			tok = l.switch2(NEQ, STRICT_NEQ)
		}

	case '<':
		if l.ch == '!' && bytes.HasPrefix(l.src[l.offset:], []byte("!--")) {
			// <!-- HTML-like comment
			l.scanLineComment(offs)

			goto scanAgain
		}

		tok = l.switch3(LSS, LEQ, '<', SHL, SHL_ASSIGN)

	case '>':
		switch l.ch {
		case '=':
			l.next()

			tok = GEQ

		case '>':
			l.next()

			tok = l.switch3(SHR, SHR_ASSIGN, '>', USHR, USHR_ASSIGN)

		default:
			tok = GTR
		}

	case '+':
		tok = l.switch3(ADD, ADD_ASSIGN, '+', INC, INC)
	case '-':
		if l.ch == '-' && l.peek() == '>' && (l.newline || offs == 0) {
			// --> HTML-like comment at the start of a line
			l.scanLineComment(offs)

			goto scanAgain
		}

		tok = l.switch3(SUB, SUB_ASSIGN, '-', DEC, DEC)
	case '*':
		tok = l.switch3(MUL, MUL_ASSIGN, '*', EXP, EXP_ASSIGN)
	case '%':
		tok = l.switch2(REM, REM_ASSIGN)
	case '&':
		tok = l.switch3(AND, AND_ASSIGN, '&', LAND, LAND_ASSIGN)
	case '|':
		tok = l.switch3(OR, OR_ASSIGN, '|', LOR, LOR_ASSIGN)
	case '^':
		tok = l.switch2(XOR, XOR_ASSIGN)

	case '/':
		switch l.ch {
		case '/':
			l.scanLineComment(offs)

			goto scanAgain

		case '*':
			l.next()
			l.scanBlockComment(offs)

			goto scanAgain
		}

		tok = l.switch2(QUO, QUO_ASSIGN)

	default:
		l.errorf(offs, "illegal character %#U", ch)

		tok, lit = ILLEGAL, string(ch)
	}

	return pos, tok, lit
}

// RescanRegExp rescans the [QUO] or [QUO_ASSIGN] token at pos as a regular expression literal.
func (l *Lexer) RescanRegExp(pos token.Pos) (Token, string) {
	offs := l.file.Offset(pos)
	l.reset(offs)
	l.next() // consume '/'

	inClass := false

	for {
		ch := l.ch
		if ch == eof || isLineTerminator(ch) {
			l.error(offs, "regular expression not terminated")

			return REGEXP, string(l.src[offs:l.offset])
		}

		l.next()

		switch ch {
		case '\\':
			if l.ch != eof && !isLineTerminator(l.ch) {
				l.next()
			}

		case '[':
			inClass = true

		case ']':
			inClass = false

		case '/':
			if inClass {
				continue
			}

			for isIdentPart(l.ch) {
				l.next()
			}

			return REGEXP, string(l.src[offs:l.offset])
		}
	}
}

// RescanTemplate rescans the [RBRACE] token at pos as the continuation of a template literal,
// returning [TEMPLATE_MIDDLE] or [TEMPLATE_TAIL].
func (l *Lexer) RescanTemplate(pos token.Pos) (Token, string) {
	offs := l.file.Offset(pos)
	l.reset(offs)
	l.next() // consume '}'

	return l.scanTemplate(offs, false)
}
