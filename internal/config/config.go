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

// Package config holds the behavioral options and the configuration file of the redeclare check.
package config

import "strconv"

// Behavior represents configuration options for the analyzer.
type Behavior uint8

const (
	// BuiltinGlobals reports declarations shadowing built-in global variables.
	BuiltinGlobals Behavior = 1 << iota

	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated

	// PackageScripts analyzes JavaScript files found in Go package directories.
	PackageScripts

	// SuggestFixes attaches fixes that turn redeclarations with initializers into assignments.
	SuggestFixes
)

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() BitMask[Behavior] {
	return NewBitMask(PackageScripts, SuggestFixes)
}

func (b Behavior) String() string {
	switch b {
	case BuiltinGlobals:
		return "builtinGlobals"

	case IncludeGenerated:
		return "generated"

	case PackageScripts:
		return "packageScripts"

	case SuggestFixes:
		return "suggestFixes"

	default:
		return "Behavior(" + strconv.Itoa(int(b)) + ")"
	}
}

// Names returns the names of all enabled behaviors.
func Names(b BitMask[Behavior]) []string {
	var names []string
	for flag := range b.All() {
		names = append(names, flag.String())
	}

	return names
}
