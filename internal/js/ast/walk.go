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

package ast

import "fmt"

// A Visitor's Visit method is invoked for each node encountered by [Walk].
// If the result visitor w is not nil, Walk visits each of the children
// of node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

func walkList[N Node](v Visitor, list []N) {
	for _, node := range list {
		Walk(v, node)
	}
}

func walkExprs(v Visitor, list []Expr) {
	for _, x := range list {
		if x != nil { // array holes
			Walk(v, x)
		}
	}
}

func walkOpt[N interface {
	Node
	comparable
}](v Visitor, node N,
) {
	var zero N
	if node != zero {
		Walk(v, node)
	}
}

// Walk traverses a syntax tree in depth-first order: It starts by calling
// v.Visit(node); node must not be nil. If the visitor w returned by
// v.Visit(node) is not nil, Walk is invoked recursively with visitor
// w for each of the non-nil children of node, followed by a call of
// w.Visit(nil).
//
// Children are visited in source order.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	// Patterns
	case *Ident, *BasicLit, *This, *Super, *PrivateName, *BadExpr, *BadStmt,
		*EmptyStmt, *DebuggerStmt, *Comment:
		// nothing to do

	case *ObjectPattern:
		for _, p := range n.Props {
			if p.Computed {
				Walk(v, p.Key)
			}

			Walk(v, p.Value)
			walkOpt(v, p.Default)
		}

		walkOpt(v, n.Rest)

	case *ArrayPattern:
		for _, e := range n.Elems {
			if e == nil {
				continue
			}

			Walk(v, e.Value)
			walkOpt(v, e.Default)
		}

		walkOpt(v, n.Rest)

	case *AssignTarget:
		Walk(v, n.X)

	// Expressions
	case *TemplateLit:
		walkOpt(v, n.Tag)
		walkExprs(v, n.Exprs)

	case *ArrayLit:
		walkExprs(v, n.Elems)

	case *Spread:
		Walk(v, n.X)

	case *ObjectLit:
		walkExprs(v, n.Props)

	case *Property:
		if n.Computed || !n.Shorthand {
			Walk(v, n.Key)
		}

		walkOpt(v, n.Value)
		walkOpt(v, n.Default)

	case *FuncLit:
		Walk(v, n.Func)

	case *ArrowFunc:
		walkList(v, n.Params)
		Walk(v, n.Body)

	case *ClassLit:
		Walk(v, n.Class)

	case *UnaryExpr:
		Walk(v, n.X)

	case *UpdateExpr:
		Walk(v, n.X)

	case *BinaryExpr:
		Walk(v, n.X)
		Walk(v, n.Y)

	case *AssignExpr:
		Walk(v, n.Target)
		Walk(v, n.Value)

	case *CondExpr:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		Walk(v, n.Else)

	case *SeqExpr:
		walkExprs(v, n.List)

	case *CallExpr:
		Walk(v, n.Fun)
		walkExprs(v, n.Args)

	case *NewExpr:
		Walk(v, n.X)
		walkExprs(v, n.Args)

	case *MemberExpr:
		Walk(v, n.X)
		Walk(v, n.Prop)

	case *ParenExpr:
		Walk(v, n.X)

	case *YieldExpr:
		walkOpt(v, n.X)

	case *AwaitExpr:
		Walk(v, n.X)

	case *MetaProperty:
		Walk(v, n.Meta)
		Walk(v, n.Property)

	case *ImportCall:
		walkExprs(v, n.Args)

	// Functions and classes
	case *Function:
		walkOpt(v, n.Name)
		walkList(v, n.Params)
		Walk(v, n.Body)

	case *Param:
		Walk(v, n.Target)
		walkOpt(v, n.Default)

	case *Class:
		walkOpt(v, n.Name)
		walkOpt(v, n.Super)
		walkList(v, n.Members)

	case *MethodDef:
		Walk(v, n.Key)
		Walk(v, n.Value)

	case *FieldDef:
		Walk(v, n.Key)
		walkOpt(v, n.Value)

	case *StaticBlock:
		walkList(v, n.Body)

	// Statements
	case *VarDecl:
		walkList(v, n.List)

	case *VarDeclarator:
		Walk(v, n.Target)
		walkOpt(v, n.Init)

	case *FuncDecl:
		Walk(v, n.Func)

	case *ClassDecl:
		Walk(v, n.Class)

	case *BlockStmt:
		walkList(v, n.List)

	case *ExprStmt:
		Walk(v, n.X)

	case *IfStmt:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		walkOpt(v, n.Else)

	case *ForStmt:
		walkOpt(v, n.Init)
		walkOpt(v, n.Cond)
		walkOpt(v, n.Post)
		Walk(v, n.Body)

	case *ForInStmt:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)

	case *WhileStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)

	case *DoWhileStmt:
		Walk(v, n.Body)
		Walk(v, n.Cond)

	case *ReturnStmt:
		walkOpt(v, n.Result)

	case *BranchStmt:
		walkOpt(v, n.Label)

	case *ThrowStmt:
		Walk(v, n.X)

	case *TryStmt:
		Walk(v, n.Body)
		walkOpt(v, n.Handler)
		walkOpt(v, n.Finally)

	case *CatchClause:
		walkOpt(v, n.Param)
		Walk(v, n.Body)

	case *SwitchStmt:
		Walk(v, n.Tag)
		walkList(v, n.Cases)

	case *CaseClause:
		walkOpt(v, n.Test)
		walkList(v, n.Body)

	case *LabeledStmt:
		Walk(v, n.Label)
		Walk(v, n.Body)

	case *WithStmt:
		Walk(v, n.Object)
		Walk(v, n.Body)

	// Modules
	case *ImportDecl:
		walkList(v, n.Specs)
		Walk(v, n.Source)

	case *ImportSpec:
		walkOpt(v, n.Imported)
		Walk(v, n.Local)

	case *ExportNamed:
		walkList(v, n.Specs)
		walkOpt(v, n.Source)

	case *ExportSpec:
		Walk(v, n.Local)
		Walk(v, n.Exported)

	case *ExportDecl:
		Walk(v, n.Decl)

	case *ExportDefault:
		Walk(v, n.Decl)

	case *ExportAll:
		walkOpt(v, n.Alias)
		Walk(v, n.Source)

	case *File:
		walkList(v, n.Body)

	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}

	return nil
}

// Inspect traverses a syntax tree in depth-first order: It starts by calling
// f(node); node must not be nil. If f returns true, Inspect invokes f
// recursively for each of the non-nil children of node, followed by a
// call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
