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

// Package scope models the declarative scopes of a JavaScript program.
package scope

import (
	"iter"

	"fillmore-labs.com/redeclare/internal/js/ast"
)

//go:generate go tool stringer -type Kind -linecomment

// Kind classifies a [Scope].
type Kind uint8

const (
	// Global is the program scope.
	Global Kind = iota // global
	// Function is the scope of a function, holding its parameters and body.
	Function // function
	// Block is a braced statement list.
	Block // block
	// ClassStaticBlock is a class static initialization block.
	ClassStaticBlock // class static block
	// Switch holds all case clauses of a switch statement.
	Switch // switch
	// ForHead holds lexical declarations in a for, for-in or for-of head.
	ForHead // for
	// Catch holds the catch parameter and the handler body.
	Catch // catch
)

// Scope is a node in the scope tree.
type Scope struct {
	ID     int      // creation order, unique per program
	Kind   Kind     // scope kind
	Parent *Scope   // enclosing scope, nil for Global
	Node   ast.Node // syntax node introducing the scope
}

// IsHoistTarget reports whether var and function declarations are hoisted to this scope.
func (s *Scope) IsHoistTarget() bool {
	switch s.Kind {
	case Global, Function, ClassStaticBlock:
		return true

	default:
		return false
	}
}

// HoistTarget returns the nearest ancestor (or s itself) of kind Global, Function or ClassStaticBlock.
// It returns nil for a detached scope chain.
func (s *Scope) HoistTarget() *Scope {
	for t := range s.Ancestors() {
		if t.IsHoistTarget() {
			return t
		}
	}

	return nil
}

// Ancestors yields s and its enclosing scopes up to the Global scope.
func (s *Scope) Ancestors() iter.Seq[*Scope] {
	return func(yield func(*Scope) bool) {
		for t := s; t != nil; t = t.Parent {
			if !yield(t) {
				break
			}
		}
	}
}

// Within reports whether s is outer or nested inside it.
func (s *Scope) Within(outer *Scope) bool {
	for t := range s.Ancestors() {
		if t == outer {
			return true
		}
	}

	return false
}

// String returns a short description for logging.
func (s *Scope) String() string {
	if s == nil {
		return "<nil>"
	}

	return Name(s.Node)
}
