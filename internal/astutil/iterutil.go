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

package astutil

import (
	"iter"

	"fillmore-labs.com/redeclare/internal/js/ast"
)

// BoundIdents yields all identifiers bound by a binding pattern, in source order.
func BoundIdents(p ast.Pattern) iter.Seq[*ast.Ident] {
	return func(yield func(*ast.Ident) bool) {
		boundIdents(p, yield)
	}
}

func boundIdents(p ast.Pattern, yield func(*ast.Ident) bool) bool {
	switch p := p.(type) {
	case *ast.Ident:
		return yield(p)

	case *ast.ObjectPattern:
		for _, prop := range p.Props {
			if !boundIdents(prop.Value, yield) {
				return false
			}
		}

		if p.Rest != nil {
			return boundIdents(p.Rest, yield)
		}

	case *ast.ArrayPattern:
		for _, elem := range p.Elems {
			if elem == nil {
				continue // hole
			}

			if !boundIdents(elem.Value, yield) {
				return false
			}
		}

		if p.Rest != nil {
			return boundIdents(p.Rest, yield)
		}
	}

	return true // member access targets bind nothing
}
