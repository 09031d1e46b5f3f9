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

package analyzer

import (
	"flag"

	"fillmore-labs.com/redeclare/internal/config"
	"fillmore-labs.com/redeclare/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, o *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(newBehaviorValue(&o.Behavior, config.BuiltinGlobals), "builtin-globals", "report declarations of built-in globals")
	flags.Var(newBehaviorValue(&o.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(newBehaviorValue(&o.Behavior, config.PackageScripts), "package-scripts", "check JavaScript files in package directories")
	flags.Var(newBehaviorValue(&o.Behavior, config.SuggestFixes), "suggest-fixes", "suggest assignments for redeclarations with initializer")
	flags.Var(&o.Level, "level", "rule level: off, warn or error")
}
