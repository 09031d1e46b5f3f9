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

package lexer

import "strconv"

// Token is the set of lexical tokens of JavaScript.
//
// Contextual keywords (let, static, async, await, yield, of, get, set, from, as)
// are scanned as [IDENT]; the parser decides on their meaning.
type Token uint8

const (
	// Special tokens
	ILLEGAL Token = iota
	EOF

	literalBeg
	IDENT           // identifier
	PRIVATE         // #name
	NUMBER          // 12, 0x1f, 1n
	STRING          // 'abc', "abc"
	TEMPLATE        // `abc`
	TEMPLATE_HEAD   // `abc${
	TEMPLATE_MIDDLE // }abc${
	TEMPLATE_TAIL   // }abc`
	REGEXP          // /re/g
	literalEnd

	operatorBeg
	LBRACE       // {
	RBRACE       // }
	LPAREN       // (
	RPAREN       // )
	LBRACK       // [
	RBRACK       // ]
	DOT          // .
	ELLIPSIS     // ...
	SEMICOLON    // ;
	COMMA        // ,
	QUESTION     // ?
	QUESTION_DOT // ?.
	COLON        // :
	ARROW        // =>

	LSS        // <
	GTR        // >
	LEQ        // <=
	GEQ        // >=
	EQL        // ==
	NEQ        // !=
	STRICT_EQL // ===
	STRICT_NEQ // !==

	ADD     // +
	SUB     // -
	MUL     // *
	QUO     // /
	REM     // %
	EXP     // **
	INC     // ++
	DEC     // --
	SHL     // <<
	SHR     // >>
	USHR    // >>>
	AND     // &
	OR      // |
	XOR     // ^
	NOT     // !
	BNOT    // ~
	LAND    // &&
	LOR     // ||
	NULLISH // ??

	assignBeg
	ASSIGN         // =
	ADD_ASSIGN     // +=
	SUB_ASSIGN     // -=
	MUL_ASSIGN     // *=
	QUO_ASSIGN     // /=
	REM_ASSIGN     // %=
	EXP_ASSIGN     // **=
	SHL_ASSIGN     // <<=
	SHR_ASSIGN     // >>=
	USHR_ASSIGN    // >>>=
	AND_ASSIGN     // &=
	OR_ASSIGN      // |=
	XOR_ASSIGN     // ^=
	LAND_ASSIGN    // &&=
	LOR_ASSIGN     // ||=
	NULLISH_ASSIGN // ??=
	assignEnd
	operatorEnd

	keywordBeg
	BREAK
	CASE
	CATCH
	CLASS
	CONST
	CONTINUE
	DEBUGGER
	DEFAULT
	DELETE
	DO
	ELSE
	EXPORT
	EXTENDS
	FALSE
	FINALLY
	FOR
	FUNCTION
	IF
	IMPORT
	IN
	INSTANCEOF
	NEW
	NULL
	RETURN
	SUPER
	SWITCH
	THIS
	THROW
	TRUE
	TRY
	TYPEOF
	VAR
	VOID
	WHILE
	WITH
	keywordEnd
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	IDENT:           "IDENT",
	PRIVATE:         "PRIVATE",
	NUMBER:          "NUMBER",
	STRING:          "STRING",
	TEMPLATE:        "TEMPLATE",
	TEMPLATE_HEAD:   "TEMPLATE_HEAD",
	TEMPLATE_MIDDLE: "TEMPLATE_MIDDLE",
	TEMPLATE_TAIL:   "TEMPLATE_TAIL",
	REGEXP:          "REGEXP",

	LBRACE:       "{",
	RBRACE:       "}",
	LPAREN:       "(",
	RPAREN:       ")",
	LBRACK:       "[",
	RBRACK:       "]",
	DOT:          ".",
	ELLIPSIS:     "...",
	SEMICOLON:    ";",
	COMMA:        ",",
	QUESTION:     "?",
	QUESTION_DOT: "?.",
	COLON:        ":",
	ARROW:        "=>",

	LSS:        "<",
	GTR:        ">",
	LEQ:        "<=",
	GEQ:        ">=",
	EQL:        "==",
	NEQ:        "!=",
	STRICT_EQL: "===",
	STRICT_NEQ: "!==",

	ADD:     "+",
	SUB:     "-",
	MUL:     "*",
	QUO:     "/",
	REM:     "%",
	EXP:     "**",
	INC:     "++",
	DEC:     "--",
	SHL:     "<<",
	SHR:     ">>",
	USHR:    ">>>",
	AND:     "&",
	OR:      "|",
	XOR:     "^",
	NOT:     "!",
	BNOT:    "~",
	LAND:    "&&",
	LOR:     "||",
	NULLISH: "??",

	ASSIGN:         "=",
	ADD_ASSIGN:     "+=",
	SUB_ASSIGN:     "-=",
	MUL_ASSIGN:     "*=",
	QUO_ASSIGN:     "/=",
	REM_ASSIGN:     "%=",
	EXP_ASSIGN:     "**=",
	SHL_ASSIGN:     "<<=",
	SHR_ASSIGN:     ">>=",
	USHR_ASSIGN:    ">>>=",
	AND_ASSIGN:     "&=",
	OR_ASSIGN:      "|=",
	XOR_ASSIGN:     "^=",
	LAND_ASSIGN:    "&&=",
	LOR_ASSIGN:     "||=",
	NULLISH_ASSIGN: "??=",

	BREAK:      "break",
	CASE:       "case",
	CATCH:      "catch",
	CLASS:      "class",
	CONST:      "const",
	CONTINUE:   "continue",
	DEBUGGER:   "debugger",
	DEFAULT:    "default",
	DELETE:     "delete",
	DO:         "do",
	ELSE:       "else",
	EXPORT:     "export",
	EXTENDS:    "extends",
	FALSE:      "false",
	FINALLY:    "finally",
	FOR:        "for",
	FUNCTION:   "function",
	IF:         "if",
	IMPORT:     "import",
	IN:         "in",
	INSTANCEOF: "instanceof",
	NEW:        "new",
	NULL:       "null",
	RETURN:     "return",
	SUPER:      "super",
	SWITCH:     "switch",
	THIS:       "this",
	THROW:      "throw",
	TRUE:       "true",
	TRY:        "try",
	TYPEOF:     "typeof",
	VAR:        "var",
	VOID:       "void",
	WHILE:      "while",
	WITH:       "with",
}

// String returns the string corresponding to the token tok.
// For operators, delimiters, and keywords the string is the actual
// token character sequence (e.g., for the token ADD, the string is
// "+"). For all other tokens the string corresponds to the token
// constant name (e.g. for the token IDENT, the string is "IDENT").
func (tok Token) String() string {
	if int(tok) < len(tokens) && tokens[tok] != "" {
		return tokens[tok]
	}

	return "token(" + strconv.Itoa(int(tok)) + ")"
}

var keywords map[string]Token

func init() {
	keywords = make(map[string]Token, keywordEnd-(keywordBeg+1))
	for i := keywordBeg + 1; i < keywordEnd; i++ {
		keywords[tokens[i]] = i
	}
}

// Lookup maps an identifier to its keyword token or [IDENT] (if not a keyword).
func Lookup(ident string) Token {
	if tok, isKeyword := keywords[ident]; isKeyword {
		return tok
	}

	return IDENT
}

// IsLiteral returns true for tokens corresponding to identifiers
// and basic type literals.
func (tok Token) IsLiteral() bool { return literalBeg < tok && tok < literalEnd }

// IsOperator returns true for tokens corresponding to operators and
// delimiters.
func (tok Token) IsOperator() bool { return operatorBeg < tok && tok < operatorEnd }

// IsAssign returns true for assignment operators, including compound assignments.
func (tok Token) IsAssign() bool { return assignBeg < tok && tok < assignEnd }

// IsKeyword returns true for tokens corresponding to reserved words.
func (tok Token) IsKeyword() bool { return keywordBeg < tok && tok < keywordEnd }

// Lowest and highest binary operator precedences.
const (
	LowestPrec  = 0
	HighestPrec = 12
)

// Precedence returns the binary precedence of tok, or [LowestPrec] when
// tok is not a binary operator. The 'in' operator is included; callers
// parsing a for-in head have to exclude it themselves.
func (tok Token) Precedence() int {
	switch tok {
	case NULLISH:
		return 1
	case LOR:
		return 2
	case LAND:
		return 3
	case OR:
		return 4
	case XOR:
		return 5
	case AND:
		return 6
	case EQL, NEQ, STRICT_EQL, STRICT_NEQ:
		return 7
	case LSS, GTR, LEQ, GEQ, INSTANCEOF, IN:
		return 8
	case SHL, SHR, USHR:
		return 9
	case ADD, SUB:
		return 10
	case MUL, QUO, REM:
		return 11
	case EXP:
		return HighestPrec
	}

	return LowestPrec
}
