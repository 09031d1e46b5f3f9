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

// Package level defines the configurable severity of the redeclare rule.
package level

import (
	"fmt"
	"strings"
)

// Rule specifies the rule level.
type Rule uint8

const (
	// Warn reports redeclarations as warnings.
	Warn Rule = iota

	// Error reports redeclarations as errors.
	Error

	// Off disables the rule.
	Off
)

// String returns the level name, as accepted by [Rule.UnmarshalText].
func (o Rule) String() string {
	text, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Rule(%d)", o)
	}

	return string(text)
}

// MarshalText implements [encoding.TextMarshaler].
func (o Rule) MarshalText() ([]byte, error) {
	switch o {
	case Warn:
		return []byte("warn"), nil

	case Error:
		return []byte("error"), nil

	case Off:
		return []byte("off"), nil

	default:
		return nil, fmt.Errorf("unknown rule level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// The numeric eslint levels 0, 1 and 2 are accepted too.
func (o *Rule) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "1", "on", "warn", "warning":
		*o = Warn

	case "2", "error":
		*o = Error

	case "0", "off", "false":
		*o = Off

	default:
		return fmt.Errorf("unknown rule level %q", string(text))
	}

	return nil
}

// Set implements [flag.Value].
func (o *Rule) Set(s string) error { return o.UnmarshalText([]byte(s)) }

// Type implements the pflag Value interface.
func (o *Rule) Type() string { return "level" }
