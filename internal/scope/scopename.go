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

package scope

import (
	"fmt"

	"fillmore-labs.com/redeclare/internal/js/ast"
)

// Name returns a human-readable name for the scope introducing node.
func Name(node ast.Node) string {
	switch n := node.(type) {
	// keep-sorted start newline_separated=yes
	case *ast.ArrowFunc:
		return "arrow function"

	case *ast.BlockStmt:
		return "block"

	case *ast.CatchClause:
		return "catch"

	case *ast.File:
		return "program"

	case *ast.ForInStmt:
		if n.Of {
			return "for-of"
		}

		return "for-in"

	case *ast.ForStmt:
		return "for"

	case *ast.Function:
		if n.Name != nil {
			return "function " + n.Name.Name
		}

		return "function"

	case *ast.StaticBlock:
		return "class static block"

	case *ast.SwitchStmt:
		return "switch"

	case nil:
		return "<nil>"

	default:
		return fmt.Sprintf("%T", node)
		// keep-sorted end
	}
}
