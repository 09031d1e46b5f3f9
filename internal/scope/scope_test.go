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

package scope_test

import (
	"testing"

	"fillmore-labs.com/redeclare/internal/js/ast"
	. "fillmore-labs.com/redeclare/internal/scope"
)

func TestHoistTarget(t *testing.T) {
	t.Parallel()

	var f Factory

	global := f.New(Global, nil, &ast.File{})
	fn := f.New(Function, global, &ast.Function{})
	block := f.New(Block, fn, &ast.BlockStmt{})
	static := f.New(ClassStaticBlock, block, &ast.StaticBlock{})
	sw := f.New(Switch, static, &ast.SwitchStmt{})
	catch := f.New(Catch, global, &ast.CatchClause{})

	tests := [...]struct {
		name  string
		scope *Scope
		want  *Scope
	}{
		{"global", global, global},
		{"function", fn, fn},
		{"block", block, fn},
		{"static_block", static, static},
		{"switch_in_static_block", sw, static},
		{"catch", catch, global},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.scope.HoistTarget(); got != tt.want {
				t.Errorf("Got hoist target %s, expected %s", got.Kind, tt.want.Kind)
			}
		})
	}

	if !sw.Within(fn) || catch.Within(fn) {
		t.Error("Unexpected Within result")
	}
}

func TestDetachedScope(t *testing.T) {
	t.Parallel()

	var f Factory

	block := f.New(Block, nil, &ast.BlockStmt{})
	if got := block.HoistTarget(); got != nil {
		t.Errorf("Got hoist target %v for detached block, expected nil", got)
	}
}

func TestFactory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		count int
	}{
		{"Empty", 0},
		{"Single", 1},
		{"ChunkSize", 127},
		{"ChunkSizePlusOne", 128},
		{"MultipleChunks", 2*127 + 46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var f Factory

			var parent *Scope
			for range tt.count {
				parent = f.New(Block, parent, nil)
			}

			scopes := f.All()
			if got, want := len(scopes), tt.count; got != want {
				t.Errorf("Got %d scopes, expected %d", got, want)
			}

			if got, want := f.Len(), tt.count; got != want {
				t.Errorf("Got Len() = %d, expected %d", got, want)
			}

			for i, s := range scopes {
				if s.ID != i {
					t.Errorf("Got ID %d for scope %d", s.ID, i)
				}

				if i > 0 && s.Parent != scopes[i-1] {
					t.Errorf("Scope %d has wrong parent", i)
				}
			}
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		kind Kind
		want string
	}{
		{Global, "global"},
		{ClassStaticBlock, "class static block"},
		{ForHead, "for"},
		{Catch, "catch"},
		{Kind(42), "Kind(42)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Got %q, expected %q", got, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		node ast.Node
		want string
	}{
		{&ast.File{}, "program"},
		{&ast.Function{Name: &ast.Ident{Name: "f"}}, "function f"},
		{&ast.ForInStmt{Of: true}, "for-of"},
		{&ast.StaticBlock{}, "class static block"},
		{nil, "<nil>"},
	}

	for _, tt := range tests {
		if got := Name(tt.node); got != tt.want {
			t.Errorf("Got %q, expected %q", got, tt.want)
		}
	}
}
