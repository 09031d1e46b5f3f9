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
	"fmt"
	"reflect"

	"golang.org/x/tools/go/analysis"
)

// InternalError reports err as a diagnostic covering rng, the whole file when rng is nil.
// These errors indicate bugs in the analyzer or its driver rather than issues in the checked script.
func InternalError(report func(analysis.Diagnostic), rng analysis.Range, err error) {
	d := analysis.Diagnostic{Category: "internal", Message: fmt.Sprintf("Internal Error: %v", err)}
	if rng != nil && !reflect.ValueOf(rng).IsNil() {
		d.Pos, d.End = rng.Pos(), rng.End()
	}

	report(d)
}
