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

package globals_test

import (
	"testing"

	. "fillmore-labs.com/redeclare/internal/globals"
)

func TestIsBuiltin(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		want bool
	}{
		{"Object", true},
		{"globalThis", true},
		{"undefined", true},
		{"NaN", true},
		{"object", false},
		{"top", false},
		{"self", false},
		{"window", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsBuiltin(tt.name); got != tt.want {
				t.Errorf("IsBuiltin(%q) = %t, expected %t", tt.name, got, tt.want)
			}
		})
	}
}

func TestAll(t *testing.T) {
	t.Parallel()

	count := 0

	for name := range All() {
		if !IsBuiltin(name) {
			t.Errorf("Name %q is listed but not builtin", name)
		}

		count++
	}

	if count < 50 {
		t.Errorf("Got %d builtins, expected at least 50", count)
	}
}
