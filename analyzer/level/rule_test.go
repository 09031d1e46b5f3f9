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

package level_test

import (
	"testing"

	. "fillmore-labs.com/redeclare/analyzer/level"
)

func TestUnmarshalText(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		text    string
		want    Rule
		wantErr bool
	}{
		{"", Warn, false},
		{"warn", Warn, false},
		{"ERROR", Error, false},
		{"2", Error, false},
		{"off", Off, false},
		{"0", Off, false},
		{"fatal", Warn, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			var r Rule

			err := r.UnmarshalText([]byte(tt.text))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText(%q) error = %v, expected error %t", tt.text, err, tt.wantErr)
			}

			if r != tt.want {
				t.Errorf("UnmarshalText(%q) = %s, expected %s", tt.text, r, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, r := range [...]Rule{Warn, Error, Off} {
		text, err := r.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d) failed: %v", r, err)
		}

		var got Rule
		if err := got.Set(string(text)); err != nil || got != r {
			t.Errorf("Set(%q) = %s, %v, expected %s", text, got, err, r)
		}
	}

	if got, want := Rule(7).String(), "Rule(7)"; got != want {
		t.Errorf("Got %q, expected %q", got, want)
	}
}
