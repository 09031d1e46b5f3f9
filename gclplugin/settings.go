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

package gclplugin

import (
	redeclare "fillmore-labs.com/redeclare/analyzer"
	"fillmore-labs.com/redeclare/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// BuiltinGlobals reports declarations of built-in global variables.
	BuiltinGlobals *bool `json:"builtinGlobals,omitzero"`
	// PackageScripts checks JavaScript files in package directories.
	PackageScripts *bool `json:"packageScripts,omitzero"`
	// SuggestFixes enables suggested fixes.
	SuggestFixes *bool `json:"suggestFixes,omitzero"`
	// Level sets the rule level: off, warn or error.
	Level *level.Rule `json:"level,omitzero"`
}

// Options converts [Settings] into a list of [redeclare.Option] for the redeclare analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []redeclare.Option {
	var opts []redeclare.Option

	opts = appendOption(opts, s.BuiltinGlobals, redeclare.WithBuiltinGlobals)
	opts = appendOption(opts, s.PackageScripts, redeclare.WithPackageScripts)
	opts = appendOption(opts, s.SuggestFixes, redeclare.WithSuggestFixes)
	opts = appendOption(opts, s.Level, redeclare.WithLevel)

	return opts
}

// appendOption appends a non-nil setting to a [redeclare.Option] list.
func appendOption[T any](opts []redeclare.Option, value *T, constructor func(T) redeclare.Option) []redeclare.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
