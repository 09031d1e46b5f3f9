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

package report

import (
	"fmt"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/redeclare/internal/js/ast"
	"fillmore-labs.com/redeclare/internal/js/lexer"
)

// AssignInstead creates a suggested fix turning a redeclaring `var a = x` into the assignment `a = x`.
//
// Only single declarator var declarations with an initializer and a plain identifier qualify;
// decl is nil for exported declarations, which are never rewritten.
func AssignInstead(decl *ast.VarDecl, id *ast.Ident) []analysis.SuggestedFix {
	if decl == nil || decl.Kind != lexer.VAR || len(decl.List) != 1 {
		return nil
	}

	d := decl.List[0]
	if target, ok := d.Target.(*ast.Ident); !ok || target != id || d.Init == nil {
		return nil
	}

	// Remove the keyword and the whitespace up to the identifier
	edits := []analysis.TextEdit{{Pos: decl.DeclPos, End: id.Pos()}}

	return []analysis.SuggestedFix{{
		Message:   fmt.Sprintf("Assign to '%s' instead of redeclaring it", id.Name),
		TextEdits: edits,
	}}
}
