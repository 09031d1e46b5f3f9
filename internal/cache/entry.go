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

package cache

import (
	"errors"
	"fmt"
	"go/token"

	"fortio.org/safecast"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/redeclare/internal/js/ast"
	"fillmore-labs.com/redeclare/internal/report"
)

// ErrOffset is returned for positions outside of the file.
var ErrOffset = errors.New("offset out of range")

// Entry is the cached outcome of checking a single file.
// Positions are stored as file offsets plus one, zero meaning no position.
type Entry struct {
	Schema      uint16
	Skipped     bool
	Diagnostics []Diagnostic
}

// Diagnostic is the stored form of a [report.Diagnostic].
type Diagnostic struct {
	Variant  uint8
	Severity uint8
	Name     string
	Message  string
	Labels   []Label
	Fixes    []Fix
}

// Label is the stored form of a [report.Label].
type Label struct {
	Pos, End uint32
	Message  string
}

// Fix is the stored form of an [analysis.SuggestedFix].
type Fix struct {
	Message string
	Edits   []Edit
}

// Edit is the stored form of an [analysis.TextEdit].
type Edit struct {
	Pos, End uint32
	NewText  []byte
}

// NewEntry converts diagnostics of the file handle into an [Entry].
func NewEntry(handle *token.File, skipped bool, diagnostics []report.Diagnostic) (*Entry, error) {
	c := codec{handle: handle}

	e := &Entry{Skipped: skipped, Diagnostics: make([]Diagnostic, 0, len(diagnostics))}

	for _, d := range diagnostics {
		stored := Diagnostic{
			Variant:  uint8(d.Variant),
			Severity: uint8(d.Severity),
			Name:     d.Name,
			Message:  d.Message,
		}

		for _, l := range d.Labels {
			stored.Labels = append(stored.Labels, Label{Pos: c.offset(l.Span.Pos), End: c.offset(l.Span.End), Message: l.Message})
		}

		for _, f := range d.Fixes {
			fix := Fix{Message: f.Message}
			for _, t := range f.TextEdits {
				fix.Edits = append(fix.Edits, Edit{Pos: c.offset(t.Pos), End: c.offset(t.End), NewText: t.NewText})
			}

			stored.Fixes = append(stored.Fixes, fix)
		}

		e.Diagnostics = append(e.Diagnostics, stored)
	}

	if c.err != nil {
		return nil, c.err
	}

	return e, nil
}

// Report converts the stored diagnostics back, relative to handle.
func (e *Entry) Report(handle *token.File) ([]report.Diagnostic, error) {
	c := codec{handle: handle}

	diagnostics := make([]report.Diagnostic, 0, len(e.Diagnostics))

	for _, stored := range e.Diagnostics {
		d := report.Diagnostic{
			Variant:  report.Variant(stored.Variant),
			Severity: report.Severity(stored.Severity),
			Name:     stored.Name,
			Message:  stored.Message,
		}

		for _, l := range stored.Labels {
			d.Labels = append(d.Labels, report.Label{Span: ast.Span{Pos: c.pos(l.Pos), End: c.pos(l.End)}, Message: l.Message})
		}

		for _, f := range stored.Fixes {
			fix := analysis.SuggestedFix{Message: f.Message}
			for _, t := range f.Edits {
				fix.TextEdits = append(fix.TextEdits, analysis.TextEdit{Pos: c.pos(t.Pos), End: c.pos(t.End), NewText: t.NewText})
			}

			d.Fixes = append(d.Fixes, fix)
		}

		diagnostics = append(diagnostics, d)
	}

	if c.err != nil {
		return nil, c.err
	}

	return diagnostics, nil
}

// codec converts between positions and stored offsets, remembering the first error.
type codec struct {
	handle *token.File
	err    error
}

func (c *codec) offset(pos token.Pos) uint32 {
	if !pos.IsValid() || c.err != nil {
		return 0
	}

	base, size := c.handle.Base(), c.handle.Size()
	if p := int(pos); p < base || p > base+size {
		c.err = fmt.Errorf("%w: position %d not in %s", ErrOffset, p, c.handle.Name())

		return 0
	}

	off, err := safecast.Conv[uint32](c.handle.Offset(pos) + 1)
	if err != nil {
		c.err = fmt.Errorf("%w: %w", ErrOffset, err)

		return 0
	}

	return off
}

func (c *codec) pos(stored uint32) token.Pos {
	if stored == 0 || c.err != nil {
		return token.NoPos
	}

	off, err := safecast.Conv[int](stored)
	if err != nil {
		c.err = fmt.Errorf("%w: %w", ErrOffset, err)

		return token.NoPos
	}

	if off--; off > c.handle.Size() {
		c.err = fmt.Errorf("%w: offset %d exceeds size %d of %s", ErrOffset, off, c.handle.Size(), c.handle.Name())

		return token.NoPos
	}

	return c.handle.Pos(off)
}
