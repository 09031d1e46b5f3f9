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
	"go/token"
	"regexp"
	"strings"

	"fillmore-labs.com/redeclare/internal/js/ast"
)

// RuleNames are the names under which suppression comments refer to this check.
var RuleNames = []string{"no-redeclare", "redeclare"}

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool

	// lines holds the line numbers with suppressed diagnostics.
	lines map[int]struct{}

	// disabled holds [start, end) ranges between eslint-disable and eslint-enable comments.
	disabled []ast.Span
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.Pos())
	if handle == nil {
		return CurrentFile{}
	}

	c := CurrentFile{file: file, handle: handle, generated: IsGenerated(file)}
	c.collectDirectives()

	return c
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Filename returns the name of the file.
func (c CurrentFile) Filename() string {
	if c.handle == nil {
		return ""
	}

	return c.handle.Name()
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// Suppressed checks whether a diagnostic at pos is disabled by an eslint-disable directive.
func (c CurrentFile) Suppressed(pos token.Pos) bool {
	if c.handle == nil || !pos.IsValid() {
		return false
	}

	if _, ok := c.lines[c.line(pos)]; ok {
		return true
	}

	for _, r := range c.disabled {
		if r.Pos <= pos && (!r.End.IsValid() || pos < r.End) {
			return true
		}
	}

	return false
}

func (c *CurrentFile) collectDirectives() {
	open := token.NoPos

	for _, comment := range c.file.Comments {
		kind, applies := ParseDirective(comment.Text)
		if !applies {
			continue
		}

		switch kind {
		case DisableLine:
			c.suppressLine(c.line(comment.Pos()))

		case DisableNextLine:
			c.suppressLine(c.line(comment.End()) + 1)

		case Disable:
			if !open.IsValid() {
				open = comment.Pos()
			}

		case Enable:
			if open.IsValid() {
				c.disabled = append(c.disabled, ast.Span{Pos: open, End: comment.Pos()})
				open = token.NoPos
			}
		}
	}

	if open.IsValid() {
		c.disabled = append(c.disabled, ast.Span{Pos: open})
	}
}

func (c *CurrentFile) suppressLine(line int) {
	if c.lines == nil {
		c.lines = make(map[int]struct{})
	}

	c.lines[line] = struct{}{}
}

// Directive is the kind of an eslint suppression comment.
type Directive uint8

const (
	// NoDirective is any other comment.
	NoDirective Directive = iota
	// Disable starts a disabled region.
	Disable
	// Enable ends a disabled region.
	Enable
	// DisableLine disables the line of the comment.
	DisableLine
	// DisableNextLine disables the line following the comment.
	DisableNextLine
)

var directivePattern = regexp.MustCompile(`^(?://|/\*)\s*eslint-(disable-next-line|disable-line|disable|enable)\b([^*]*)`)

// ParseDirective parses an eslint directive comment and reports whether it applies to this check.
// A directive without rule list applies to all rules.
func ParseDirective(text string) (Directive, bool) {
	matches := directivePattern.FindStringSubmatch(text)
	if matches == nil {
		return NoDirective, false
	}

	var kind Directive

	switch matches[1] {
	case "disable":
		kind = Disable

	case "enable":
		kind = Enable

	case "disable-line":
		kind = DisableLine

	case "disable-next-line":
		kind = DisableNextLine
	}

	// A description may follow the rule list after "--"
	rules, _, _ := strings.Cut(matches[2], "--")
	if strings.TrimSpace(rules) == "" {
		return kind, true
	}

	// Parse comma-separated rule list
	for rule := range strings.SplitSeq(rules, ",") {
		r := strings.ToLower(strings.TrimSpace(rule))
		if r == "all" {
			return kind, true
		}

		for _, name := range RuleNames {
			if r == name {
				return kind, true
			}
		}
	}

	return kind, false
}

var generatedPattern = regexp.MustCompile(`Code generated .* DO NOT EDIT\.|@generated\b`)

// IsGenerated reports whether the file has a generated code marker in a comment before the first statement.
func IsGenerated(file *ast.File) bool {
	first := file.End()
	if len(file.Body) > 0 {
		first = file.Body[0].Pos()
	}

	for _, comment := range file.Comments {
		if comment.Pos() >= first {
			break
		}

		if generatedPattern.MatchString(comment.Text) {
			return true
		}
	}

	return false
}
