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

// Package ast declares the types used to represent syntax trees for JavaScript programs.
//
// Positions are [go/token.Pos] values relative to a shared [go/token.FileSet],
// so diagnostics for JavaScript files can be reported through the same machinery
// as Go diagnostics.
package ast

import (
	"go/token"

	"fillmore-labs.com/redeclare/internal/js/lexer"
)

// Node is implemented by all nodes of the syntax tree.
type Node interface {
	Pos() token.Pos // position of first character belonging to the node
	End() token.Pos // position of first character immediately after the node
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by all statement and declaration nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Pattern is implemented by binding targets: [*Ident], [*ObjectPattern], [*ArrayPattern],
// and, in assignment position, any other [Expr].
type Pattern interface {
	Node
	patternNode()
}

// Span is a half-open source range.
type Span struct {
	Pos, End token.Pos
}

// SpanOf returns the source range of n.
func SpanOf(n Node) Span { return Span{n.Pos(), n.End()} }

// ----------------------------------------------------------------------------
// Comments

// A Comment node represents a single //-style or /*-style comment.
type Comment struct {
	Slash token.Pos // position of "/" starting the comment
	Text  string    // comment text including delimiters
}

func (c *Comment) Pos() token.Pos { return c.Slash }
func (c *Comment) End() token.Pos { return token.Pos(int(c.Slash) + len(c.Text)) }

// ----------------------------------------------------------------------------
// Identifiers and patterns

// An Ident node represents an identifier, possibly spelled with unicode escapes.
type Ident struct {
	NamePos token.Pos // identifier position
	NameEnd token.Pos // position immediately after the identifier
	Name    string    // decoded identifier name
}

// An ObjectPattern node represents a destructuring pattern { a, b: c, ...rest }.
type ObjectPattern struct {
	Lbrace token.Pos
	Props  []*PatternProp
	Rest   Pattern // or nil
	Rbrace token.Pos
}

// A PatternProp is a single property of an [ObjectPattern].
type PatternProp struct {
	Key      Expr // *Ident, *BasicLit, or computed expression
	Computed bool
	Value    Pattern
	Default  Expr // or nil
}

// An ArrayPattern node represents a destructuring pattern [a, , b = 1, ...rest].
type ArrayPattern struct {
	Lbrack token.Pos
	Elems  []*PatternElem // nil entries are holes
	Rest   Pattern        // or nil
	Rbrack token.Pos
}

// A PatternElem is a single element of an [ArrayPattern].
type PatternElem struct {
	Value   Pattern
	Default Expr // or nil
}

// An AssignTarget wraps a non-binding expression (member access) in pattern position.
type AssignTarget struct {
	X Expr
}

func (x *Ident) Pos() token.Pos         { return x.NamePos }
func (x *Ident) End() token.Pos         { return x.NameEnd }
func (x *ObjectPattern) Pos() token.Pos { return x.Lbrace }
func (x *ObjectPattern) End() token.Pos { return x.Rbrace + 1 }
func (x *ArrayPattern) Pos() token.Pos  { return x.Lbrack }
func (x *ArrayPattern) End() token.Pos  { return x.Rbrack + 1 }
func (x *AssignTarget) Pos() token.Pos  { return x.X.Pos() }
func (x *AssignTarget) End() token.Pos  { return x.X.End() }

func (*Ident) patternNode()         {}
func (*ObjectPattern) patternNode() {}
func (*ArrayPattern) patternNode()  {}
func (*AssignTarget) patternNode()  {}

// ----------------------------------------------------------------------------
// Expressions

type (
	// A BadExpr node is a placeholder for an expression containing syntax errors.
	BadExpr struct {
		From, To token.Pos
	}

	// A BasicLit node represents a number, string, regular expression or
	// template-free literal, or one of null, true, false.
	BasicLit struct {
		ValuePos token.Pos
		Kind     lexer.Token // NUMBER, STRING, REGEXP, TEMPLATE, NULL, TRUE or FALSE
		Raw      string      // source text
	}

	// A TemplateLit node represents a template literal with substitutions, optionally tagged.
	TemplateLit struct {
		Tag    Expr // or nil
		Start  token.Pos
		Quasis []string
		Exprs  []Expr
		Close  token.Pos // position of closing "`"
	}

	// A This node represents "this".
	This struct {
		Keyword token.Pos
	}

	// A Super node represents "super".
	Super struct {
		Keyword token.Pos
	}

	// An ArrayLit node represents an array literal; nil elements are holes.
	ArrayLit struct {
		Lbrack token.Pos
		Elems  []Expr
		Rbrack token.Pos
	}

	// A Spread node represents ...x in arrays, calls and object literals.
	Spread struct {
		Ellipsis token.Pos
		X        Expr
	}

	// An ObjectLit node represents an object literal.
	ObjectLit struct {
		Lbrace token.Pos
		Props  []Expr // *Property or *Spread
		Rbrace token.Pos
	}

	// A Property node represents a key: value pair, shorthand property or method in an object literal.
	Property struct {
		Key       Expr
		Computed  bool
		Kind      PropKind
		Shorthand bool
		Value     Expr // *FuncLit for methods and accessors
		Default   Expr // shorthand "a = 1", only valid as a pattern; or nil
	}

	// A FuncLit node represents a function expression.
	FuncLit struct {
		Func *Function
	}

	// An ArrowFunc node represents an arrow function.
	ArrowFunc struct {
		Start  token.Pos
		Async  bool
		Params []*Param
		Body   Node // *BlockStmt or Expr
	}

	// A ClassLit node represents a class expression.
	ClassLit struct {
		Class *Class
	}

	// A UnaryExpr node represents a prefix unary expression, including typeof, void and delete.
	UnaryExpr struct {
		OpPos token.Pos
		Op    lexer.Token
		X     Expr
	}

	// An UpdateExpr node represents ++ or -- in prefix or postfix position.
	UpdateExpr struct {
		OpPos  token.Pos
		Op     lexer.Token
		Prefix bool
		X      Expr
	}

	// A BinaryExpr node represents a binary or logical expression.
	BinaryExpr struct {
		X     Expr
		OpPos token.Pos
		Op    lexer.Token
		Y     Expr
	}

	// An AssignExpr node represents a plain or compound assignment.
	AssignExpr struct {
		Target Pattern
		OpPos  token.Pos
		Op     lexer.Token
		Value  Expr
	}

	// A CondExpr node represents c ? a : b.
	CondExpr struct {
		Cond, Then, Else Expr
	}

	// A SeqExpr node represents a comma separated expression list.
	SeqExpr struct {
		List []Expr
	}

	// A CallExpr node represents a function call, including optional calls.
	CallExpr struct {
		Fun      Expr
		Optional bool
		Lparen   token.Pos
		Args     []Expr
		Rparen   token.Pos
	}

	// A NewExpr node represents "new X(args)".
	NewExpr struct {
		New    token.Pos
		X      Expr
		Args   []Expr
		Rparen token.Pos // or NoPos, when called without arguments
	}

	// A MemberExpr node represents x.y, x?.y, x[y], x?.[y] and x.#y.
	MemberExpr struct {
		X        Expr
		Optional bool
		Computed bool
		Prop     Expr // *Ident for names, *PrivateName, or computed expression
		EndPos   token.Pos
	}

	// A PrivateName node represents #name.
	PrivateName struct {
		NamePos token.Pos
		Name    string
	}

	// A ParenExpr node represents a parenthesized expression.
	ParenExpr struct {
		Lparen token.Pos
		X      Expr
		Rparen token.Pos
	}

	// A YieldExpr node represents yield and yield*.
	YieldExpr struct {
		Yield    token.Pos
		Delegate bool
		X        Expr // or nil
	}

	// An AwaitExpr node represents await x.
	AwaitExpr struct {
		Await token.Pos
		X     Expr
	}

	// A MetaProperty node represents new.target and import.meta.
	MetaProperty struct {
		Meta, Property *Ident
	}

	// An ImportCall node represents import(x).
	ImportCall struct {
		Import token.Pos
		Args   []Expr
		Rparen token.Pos
	}
)

// PropKind is the kind of an object literal or class member.
type PropKind uint8

const (
	PropInit PropKind = iota
	PropMethod
	PropGet
	PropSet
)

func (x *BadExpr) Pos() token.Pos     { return x.From }
func (x *BasicLit) Pos() token.Pos    { return x.ValuePos }
func (x *This) Pos() token.Pos        { return x.Keyword }
func (x *Super) Pos() token.Pos       { return x.Keyword }
func (x *ArrayLit) Pos() token.Pos    { return x.Lbrack }
func (x *Spread) Pos() token.Pos      { return x.Ellipsis }
func (x *ObjectLit) Pos() token.Pos   { return x.Lbrace }
func (x *Property) Pos() token.Pos    { return x.Key.Pos() }
func (x *FuncLit) Pos() token.Pos     { return x.Func.Start }
func (x *ArrowFunc) Pos() token.Pos   { return x.Start }
func (x *ClassLit) Pos() token.Pos    { return x.Class.Start }
func (x *UnaryExpr) Pos() token.Pos   { return x.OpPos }
func (x *BinaryExpr) Pos() token.Pos  { return x.X.Pos() }
func (x *AssignExpr) Pos() token.Pos  { return x.Target.Pos() }
func (x *CondExpr) Pos() token.Pos    { return x.Cond.Pos() }
func (x *SeqExpr) Pos() token.Pos     { return x.List[0].Pos() }
func (x *CallExpr) Pos() token.Pos    { return x.Fun.Pos() }
func (x *NewExpr) Pos() token.Pos     { return x.New }
func (x *MemberExpr) Pos() token.Pos  { return x.X.Pos() }
func (x *PrivateName) Pos() token.Pos { return x.NamePos }
func (x *ParenExpr) Pos() token.Pos   { return x.Lparen }
func (x *YieldExpr) Pos() token.Pos   { return x.Yield }
func (x *AwaitExpr) Pos() token.Pos   { return x.Await }
func (x *ImportCall) Pos() token.Pos  { return x.Import }

func (x *MetaProperty) Pos() token.Pos { return x.Meta.Pos() }

func (x *TemplateLit) Pos() token.Pos {
	if x.Tag != nil {
		return x.Tag.Pos()
	}

	return x.Start
}

func (x *UpdateExpr) Pos() token.Pos {
	if x.Prefix {
		return x.OpPos
	}

	return x.X.Pos()
}

func (x *BadExpr) End() token.Pos      { return x.To }
func (x *BasicLit) End() token.Pos     { return token.Pos(int(x.ValuePos) + len(x.Raw)) }
func (x *TemplateLit) End() token.Pos  { return x.Close + 1 }
func (x *This) End() token.Pos         { return x.Keyword + 4 }
func (x *Super) End() token.Pos        { return x.Keyword + 5 }
func (x *ArrayLit) End() token.Pos     { return x.Rbrack + 1 }
func (x *Spread) End() token.Pos       { return x.X.End() }
func (x *ObjectLit) End() token.Pos    { return x.Rbrace + 1 }
func (x *FuncLit) End() token.Pos      { return x.Func.End() }
func (x *ArrowFunc) End() token.Pos    { return x.Body.End() }
func (x *ClassLit) End() token.Pos     { return x.Class.End() }
func (x *UnaryExpr) End() token.Pos    { return x.X.End() }
func (x *BinaryExpr) End() token.Pos   { return x.Y.End() }
func (x *AssignExpr) End() token.Pos   { return x.Value.End() }
func (x *CondExpr) End() token.Pos     { return x.Else.End() }
func (x *SeqExpr) End() token.Pos      { return x.List[len(x.List)-1].End() }
func (x *CallExpr) End() token.Pos     { return x.Rparen + 1 }
func (x *MemberExpr) End() token.Pos   { return x.EndPos }
func (x *PrivateName) End() token.Pos  { return token.Pos(int(x.NamePos) + len(x.Name)) }
func (x *ParenExpr) End() token.Pos    { return x.Rparen + 1 }
func (x *AwaitExpr) End() token.Pos    { return x.X.End() }
func (x *MetaProperty) End() token.Pos { return x.Property.End() }
func (x *ImportCall) End() token.Pos   { return x.Rparen + 1 }

func (x *Property) End() token.Pos {
	switch {
	case x.Default != nil:
		return x.Default.End()
	case x.Value != nil:
		return x.Value.End()
	}

	return x.Key.End()
}

func (x *UpdateExpr) End() token.Pos {
	if x.Prefix {
		return x.X.End()
	}

	return x.OpPos + 2
}

func (x *NewExpr) End() token.Pos {
	if x.Rparen.IsValid() {
		return x.Rparen + 1
	}

	return x.X.End()
}

func (x *YieldExpr) End() token.Pos {
	if x.X != nil {
		return x.X.End()
	}

	return x.Yield + 5
}

func (*BadExpr) exprNode()      {}
func (*Ident) exprNode()        {}
func (*BasicLit) exprNode()     {}
func (*TemplateLit) exprNode()  {}
func (*This) exprNode()         {}
func (*Super) exprNode()        {}
func (*ArrayLit) exprNode()     {}
func (*Spread) exprNode()       {}
func (*ObjectLit) exprNode()    {}
func (*Property) exprNode()     {}
func (*FuncLit) exprNode()      {}
func (*ArrowFunc) exprNode()    {}
func (*ClassLit) exprNode()     {}
func (*UnaryExpr) exprNode()    {}
func (*UpdateExpr) exprNode()   {}
func (*BinaryExpr) exprNode()   {}
func (*AssignExpr) exprNode()   {}
func (*CondExpr) exprNode()     {}
func (*SeqExpr) exprNode()      {}
func (*CallExpr) exprNode()     {}
func (*NewExpr) exprNode()      {}
func (*MemberExpr) exprNode()   {}
func (*PrivateName) exprNode()  {}
func (*ParenExpr) exprNode()    {}
func (*YieldExpr) exprNode()    {}
func (*AwaitExpr) exprNode()    {}
func (*MetaProperty) exprNode() {}
func (*ImportCall) exprNode()   {}

// ----------------------------------------------------------------------------
// Functions and classes

// A Function holds what function declarations, function expressions and methods share.
type Function struct {
	Start     token.Pos // position of "async", "function" or the method name
	Async     bool
	Generator bool
	Name      *Ident // or nil
	Params    []*Param
	Body      *BlockStmt
}

// A Param is a single formal parameter.
type Param struct {
	Ellipsis token.Pos // position of "...", or NoPos
	Target   Pattern
	Default  Expr // or nil
}

func (f *Function) Pos() token.Pos { return f.Start }
func (f *Function) End() token.Pos { return f.Body.End() }

func (p *Param) Pos() token.Pos {
	if p.Ellipsis.IsValid() {
		return p.Ellipsis
	}

	return p.Target.Pos()
}

func (p *Param) End() token.Pos {
	if p.Default != nil {
		return p.Default.End()
	}

	return p.Target.End()
}

// A Class holds what class declarations and class expressions share.
type Class struct {
	Start   token.Pos // position of "class"
	Name    *Ident    // or nil
	Super   Expr      // or nil
	Members []Node    // *MethodDef, *FieldDef or *StaticBlock
	Rbrace  token.Pos
}

func (c *Class) Pos() token.Pos { return c.Start }
func (c *Class) End() token.Pos { return c.Rbrace + 1 }

// A MethodDef is a class method, getter, setter or constructor.
type MethodDef struct {
	Static   bool
	Key      Expr
	Computed bool
	Kind     PropKind
	Value    *FuncLit
}

// A FieldDef is a class field with an optional initializer.
type FieldDef struct {
	Static   bool
	Key      Expr
	Computed bool
	Value    Expr // or nil
	EndPos   token.Pos
}

// A StaticBlock is a class static initialization block "static { ... }".
type StaticBlock struct {
	Static token.Pos
	Body   []Stmt
	Rbrace token.Pos
}

func (m *MethodDef) Pos() token.Pos   { return m.Key.Pos() }
func (m *MethodDef) End() token.Pos   { return m.Value.End() }
func (f *FieldDef) Pos() token.Pos    { return f.Key.Pos() }
func (f *FieldDef) End() token.Pos    { return f.EndPos }
func (s *StaticBlock) Pos() token.Pos { return s.Static }
func (s *StaticBlock) End() token.Pos { return s.Rbrace + 1 }

// ----------------------------------------------------------------------------
// Statements

type (
	// A BadStmt node is a placeholder for statements containing syntax errors.
	BadStmt struct {
		From, To token.Pos
	}

	// A VarDecl node represents a var, let or const declaration.
	VarDecl struct {
		DeclPos token.Pos
		Kind    lexer.Token // VAR, CONST, or IDENT for let
		List    []*VarDeclarator
		EndPos  token.Pos
	}

	// A FuncDecl node represents a function declaration.
	FuncDecl struct {
		Func *Function
	}

	// A ClassDecl node represents a class declaration.
	ClassDecl struct {
		Class *Class
	}

	// A BlockStmt node represents a braced statement list.
	BlockStmt struct {
		Lbrace token.Pos
		List   []Stmt
		Rbrace token.Pos
	}

	// An EmptyStmt node represents a lone semicolon.
	EmptyStmt struct {
		Semicolon token.Pos
	}

	// An ExprStmt node represents an expression used as a statement.
	ExprStmt struct {
		X      Expr
		EndPos token.Pos
	}

	// An IfStmt node represents an if statement.
	IfStmt struct {
		If   token.Pos
		Cond Expr
		Then Stmt
		Else Stmt // or nil
	}

	// A ForStmt node represents a C-style for loop.
	ForStmt struct {
		For  token.Pos
		Init Node // *VarDecl, Expr, or nil
		Cond Expr // or nil
		Post Expr // or nil
		Body Stmt
	}

	// A ForInStmt node represents for-in, for-of and for-await-of loops.
	ForInStmt struct {
		For   token.Pos
		Await bool
		Of    bool
		Left  Node // *VarDecl or Pattern
		Right Expr
		Body  Stmt
	}

	// A WhileStmt node represents a while loop.
	WhileStmt struct {
		While token.Pos
		Cond  Expr
		Body  Stmt
	}

	// A DoWhileStmt node represents a do-while loop.
	DoWhileStmt struct {
		Do     token.Pos
		Body   Stmt
		Cond   Expr
		EndPos token.Pos
	}

	// A ReturnStmt node represents a return statement.
	ReturnStmt struct {
		Return token.Pos
		Result Expr // or nil
		EndPos token.Pos
	}

	// A BranchStmt node represents break and continue.
	BranchStmt struct {
		TokPos token.Pos
		Tok    lexer.Token
		Label  *Ident // or nil
		EndPos token.Pos
	}

	// A ThrowStmt node represents a throw statement.
	ThrowStmt struct {
		Throw  token.Pos
		X      Expr
		EndPos token.Pos
	}

	// A TryStmt node represents try/catch/finally.
	TryStmt struct {
		Try     token.Pos
		Body    *BlockStmt
		Handler *CatchClause // or nil
		Finally *BlockStmt   // or nil
	}

	// A SwitchStmt node represents a switch statement.
	SwitchStmt struct {
		Switch token.Pos
		Tag    Expr
		Cases  []*CaseClause
		Rbrace token.Pos
	}

	// A LabeledStmt node represents a labeled statement.
	LabeledStmt struct {
		Label *Ident
		Body  Stmt
	}

	// A DebuggerStmt node represents a debugger statement.
	DebuggerStmt struct {
		Debugger token.Pos
		EndPos   token.Pos
	}

	// A WithStmt node represents a with statement.
	WithStmt struct {
		With   token.Pos
		Object Expr
		Body   Stmt
	}
)

// A VarDeclarator is a single binding of a [VarDecl].
type VarDeclarator struct {
	Target Pattern
	Init   Expr // or nil
}

func (d *VarDeclarator) Pos() token.Pos { return d.Target.Pos() }

func (d *VarDeclarator) End() token.Pos {
	if d.Init != nil {
		return d.Init.End()
	}

	return d.Target.End()
}

// A CatchClause is the handler of a [TryStmt].
type CatchClause struct {
	Catch token.Pos
	Param Pattern // or nil for an optional catch binding
	Body  *BlockStmt
}

func (c *CatchClause) Pos() token.Pos { return c.Catch }
func (c *CatchClause) End() token.Pos { return c.Body.End() }

// A CaseClause is a case or default clause of a [SwitchStmt].
type CaseClause struct {
	Case  token.Pos
	Test  Expr // nil for default
	Colon token.Pos
	Body  []Stmt
}

func (c *CaseClause) Pos() token.Pos { return c.Case }

func (c *CaseClause) End() token.Pos {
	if n := len(c.Body); n > 0 {
		return c.Body[n-1].End()
	}

	return c.Colon + 1
}

// IsLexical reports whether the declaration creates block scoped bindings (let or const).
func (d *VarDecl) IsLexical() bool { return d.Kind != lexer.VAR }

// KindString returns the declaration keyword.
func (d *VarDecl) KindString() string {
	if d.Kind == lexer.IDENT {
		return "let"
	}

	return d.Kind.String()
}

func (s *BadStmt) Pos() token.Pos      { return s.From }
func (s *VarDecl) Pos() token.Pos      { return s.DeclPos }
func (s *FuncDecl) Pos() token.Pos     { return s.Func.Pos() }
func (s *ClassDecl) Pos() token.Pos    { return s.Class.Pos() }
func (s *BlockStmt) Pos() token.Pos    { return s.Lbrace }
func (s *EmptyStmt) Pos() token.Pos    { return s.Semicolon }
func (s *ExprStmt) Pos() token.Pos     { return s.X.Pos() }
func (s *IfStmt) Pos() token.Pos       { return s.If }
func (s *ForStmt) Pos() token.Pos      { return s.For }
func (s *ForInStmt) Pos() token.Pos    { return s.For }
func (s *WhileStmt) Pos() token.Pos    { return s.While }
func (s *DoWhileStmt) Pos() token.Pos  { return s.Do }
func (s *ReturnStmt) Pos() token.Pos   { return s.Return }
func (s *BranchStmt) Pos() token.Pos   { return s.TokPos }
func (s *ThrowStmt) Pos() token.Pos    { return s.Throw }
func (s *TryStmt) Pos() token.Pos      { return s.Try }
func (s *SwitchStmt) Pos() token.Pos   { return s.Switch }
func (s *LabeledStmt) Pos() token.Pos  { return s.Label.Pos() }
func (s *DebuggerStmt) Pos() token.Pos { return s.Debugger }
func (s *WithStmt) Pos() token.Pos     { return s.With }

func (s *BadStmt) End() token.Pos      { return s.To }
func (s *VarDecl) End() token.Pos      { return s.EndPos }
func (s *FuncDecl) End() token.Pos     { return s.Func.End() }
func (s *ClassDecl) End() token.Pos    { return s.Class.End() }
func (s *BlockStmt) End() token.Pos    { return s.Rbrace + 1 }
func (s *EmptyStmt) End() token.Pos    { return s.Semicolon + 1 }
func (s *ExprStmt) End() token.Pos     { return s.EndPos }
func (s *ForStmt) End() token.Pos      { return s.Body.End() }
func (s *ForInStmt) End() token.Pos    { return s.Body.End() }
func (s *WhileStmt) End() token.Pos    { return s.Body.End() }
func (s *DoWhileStmt) End() token.Pos  { return s.EndPos }
func (s *ReturnStmt) End() token.Pos   { return s.EndPos }
func (s *BranchStmt) End() token.Pos   { return s.EndPos }
func (s *ThrowStmt) End() token.Pos    { return s.EndPos }
func (s *SwitchStmt) End() token.Pos   { return s.Rbrace + 1 }
func (s *LabeledStmt) End() token.Pos  { return s.Body.End() }
func (s *DebuggerStmt) End() token.Pos { return s.EndPos }
func (s *WithStmt) End() token.Pos     { return s.Body.End() }

func (s *IfStmt) End() token.Pos {
	if s.Else != nil {
		return s.Else.End()
	}

	return s.Then.End()
}

func (s *TryStmt) End() token.Pos {
	switch {
	case s.Finally != nil:
		return s.Finally.End()
	case s.Handler != nil:
		return s.Handler.End()
	}

	return s.Body.End()
}

func (*BadStmt) stmtNode()      {}
func (*VarDecl) stmtNode()      {}
func (*FuncDecl) stmtNode()     {}
func (*ClassDecl) stmtNode()    {}
func (*BlockStmt) stmtNode()    {}
func (*EmptyStmt) stmtNode()    {}
func (*ExprStmt) stmtNode()     {}
func (*IfStmt) stmtNode()       {}
func (*ForStmt) stmtNode()      {}
func (*ForInStmt) stmtNode()    {}
func (*WhileStmt) stmtNode()    {}
func (*DoWhileStmt) stmtNode()  {}
func (*ReturnStmt) stmtNode()   {}
func (*BranchStmt) stmtNode()   {}
func (*ThrowStmt) stmtNode()    {}
func (*TryStmt) stmtNode()      {}
func (*SwitchStmt) stmtNode()   {}
func (*LabeledStmt) stmtNode()  {}
func (*DebuggerStmt) stmtNode() {}
func (*WithStmt) stmtNode()     {}

// ----------------------------------------------------------------------------
// Modules

type (
	// An ImportDecl node represents an import declaration.
	ImportDecl struct {
		Import token.Pos
		Specs  []*ImportSpec
		Source *BasicLit
		EndPos token.Pos
	}

	// An ExportNamed node represents "export { a as b }", optionally re-exported "from" a module.
	ExportNamed struct {
		Export token.Pos
		Specs  []*ExportSpec
		Source *BasicLit // or nil
		EndPos token.Pos
	}

	// An ExportDecl node represents "export" followed by a declaration.
	ExportDecl struct {
		Export token.Pos
		Decl   Stmt // *VarDecl, *FuncDecl or *ClassDecl
	}

	// An ExportDefault node represents "export default".
	ExportDefault struct {
		Export token.Pos
		Decl   Node // *FuncDecl, *ClassDecl or Expr
		EndPos token.Pos
	}

	// An ExportAll node represents "export * from" and "export * as ns from".
	ExportAll struct {
		Export token.Pos
		Alias  *Ident // or nil
		Source *BasicLit
		EndPos token.Pos
	}
)

// An ImportSpec is a single imported binding: default, namespace or named.
type ImportSpec struct {
	Imported Expr   // *Ident or *BasicLit; nil for default and namespace imports
	Local    *Ident // local binding
	Default  bool
	Star     bool
}

func (s *ImportSpec) Pos() token.Pos {
	if s.Imported != nil {
		return s.Imported.Pos()
	}

	return s.Local.Pos()
}

func (s *ImportSpec) End() token.Pos { return s.Local.End() }

// An ExportSpec is a single "local as exported" entry.
type ExportSpec struct {
	Local    Expr // *Ident or *BasicLit
	Exported Expr // *Ident or *BasicLit
}

func (s *ExportSpec) Pos() token.Pos { return s.Local.Pos() }
func (s *ExportSpec) End() token.Pos { return s.Exported.End() }

func (s *ImportDecl) Pos() token.Pos    { return s.Import }
func (s *ExportNamed) Pos() token.Pos   { return s.Export }
func (s *ExportDecl) Pos() token.Pos    { return s.Export }
func (s *ExportDefault) Pos() token.Pos { return s.Export }
func (s *ExportAll) Pos() token.Pos     { return s.Export }

func (s *ImportDecl) End() token.Pos    { return s.EndPos }
func (s *ExportNamed) End() token.Pos   { return s.EndPos }
func (s *ExportDecl) End() token.Pos    { return s.Decl.End() }
func (s *ExportDefault) End() token.Pos { return s.EndPos }
func (s *ExportAll) End() token.Pos     { return s.EndPos }

func (*ImportDecl) stmtNode()    {}
func (*ExportNamed) stmtNode()   {}
func (*ExportDecl) stmtNode()    {}
func (*ExportDefault) stmtNode() {}
func (*ExportAll) stmtNode()     {}

// ----------------------------------------------------------------------------
// Files

// A File node represents a JavaScript source file.
type File struct {
	Name     string    // filename
	Start    token.Pos // start of the file
	EndPos   token.Pos // end of the file
	Module   bool      // contains import or export declarations
	Body     []Stmt
	Comments []*Comment // all comments in source order
}

func (f *File) Pos() token.Pos { return f.Start }
func (f *File) End() token.Pos { return f.EndPos }
