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

package scope

import "fillmore-labs.com/redeclare/internal/js/ast"

// Factory creates and manages [Scope]s in a [slab list].
//
// [slab list]: https://en.wikipedia.org/wiki/Slab_allocation
type Factory struct {
	start, current *chunk
	count, total   int
}

// chunk is a linked list of fixed-size arrays of Scopes.
type chunk struct {
	scopes [chunkSize]Scope
	next   *chunk
}

// chunkSize defines the number of Scopes stored in a single chunk.
const chunkSize = 127

// New creates and returns a new *[Scope] with the next ID.
func (f *Factory) New(kind Kind, parent *Scope, node ast.Node) *Scope {
	if f.count == chunkSize {
		f.current.next = new(chunk)
		f.current = f.current.next
		f.count = 0
		f.total += chunkSize
	} else if f.current == nil {
		f.current = new(chunk)
		f.start = f.current
	}

	f.count++

	s := &f.current.scopes[f.count-1]
	*s = Scope{ID: f.total + f.count - 1, Kind: kind, Parent: parent, Node: node}

	return s
}

// Len returns the number of scopes created.
func (f *Factory) Len() int {
	return f.total + f.count
}

// All retrieves all Scopes managed by the Factory in creation order.
func (f *Factory) All() []*Scope {
	if f.current == nil {
		return nil
	}

	scopes := make([]*Scope, 0, f.Len())
	for next := f.start; next != nil; next = next.next {
		n := chunkSize
		if next == f.current {
			n = f.count
		}

		for i := range n {
			scopes = append(scopes, &next.scopes[i])
		}
	}

	return scopes
}
