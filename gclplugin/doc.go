// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

/*
Package gclplugin provides golangci-lint plugin integration for the [redeclare] analyzer.

# Usage

1. Add a file `.custom-gcl.yaml` to your source with:

	---
	version: v2.7.0

	name: golangci-lint
	destination: .

	plugins:
	  - module: fillmore-labs.com/redeclare
	    import: fillmore-labs.com/redeclare/gclplugin
	    version: v0.0.1

2. Run `golangci-lint custom` from your project root.

This will create a custom `golangci-lint` executable in your project root.

3. Configure the linter in `.golangci.yaml`:

	---
	version: "2"
	linters:
	  default: none
	  enable:
	    - redeclare
	  settings:
	    custom:
	      redeclare:
	        type: module
	        description: "redeclare reports redeclared JavaScript variables."
	        original-url: "https://fillmore-labs.com/redeclare"
	        settings:
	          builtinGlobals: true
	          level: error

4. Run the linter:

	./golangci-lint run .

# Settings

  - builtinGlobals: report declarations of built-in globals like Object or undefined (default false).
  - packageScripts: lint the .js, .mjs and .cjs files found next to the Go files of a package (default true).
  - suggestFixes: offer to turn `var a = x` redeclarations into assignments (default true).
  - level: off, warn or error (default warn). With off no analyzer is registered.

Scripts listed in a package's OtherFiles are always checked. Generated scripts are included,
golangci-lint applies its own exclusion rules.

[redeclare]: https://github.com/fillmore-labs/redeclare#redeclare
*/
package gclplugin
