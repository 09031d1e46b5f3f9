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

package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/token"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"fillmore-labs.com/redeclare/internal/js/ast"
)

// Format selects the output of a [Printer].
type Format uint8

const (
	// FormatPretty prints diagnostics with source excerpts.
	FormatPretty Format = iota
	// FormatShort prints one line per diagnostic.
	FormatShort
	// FormatJSON prints a JSON array.
	FormatJSON
)

var formatNames = [...]string{FormatPretty: "pretty", FormatShort: "short", FormatJSON: "json"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}

	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// Set implements the pflag Value interface.
func (f *Format) Set(s string) error {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			*f = Format(i)

			return nil
		}
	}

	return fmt.Errorf("unknown format %q, expected pretty, short or json", s)
}

// Type implements the pflag Value interface.
func (f *Format) Type() string { return "format" }

const tabWidth = 4

// Printer writes diagnostics in a [Format].
type Printer struct {
	Format Format
	Color  bool
	Fset   *token.FileSet

	// Source returns the content of a file for excerpts, nil omits them.
	Source func(filename string) ([]byte, bool)
}

// Print writes diagnostics to w.
func (p *Printer) Print(w io.Writer, diagnostics []Diagnostic) error {
	switch p.Format {
	case FormatShort:
		return p.printShort(w, diagnostics)

	case FormatJSON:
		return p.printJSON(w, diagnostics)

	default:
		return p.printPretty(w, diagnostics)
	}
}

func (p *Printer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c
}

func (p *Printer) position(pos token.Pos) token.Position {
	if p.Fset == nil || !pos.IsValid() {
		return token.Position{}
	}

	return p.Fset.Position(pos)
}

func (p *Printer) printShort(w io.Writer, diagnostics []Diagnostic) error {
	for _, d := range diagnostics {
		if _, err := fmt.Fprintf(w, "%s: %s: %s [%s]\n", p.position(d.Span().Pos), d.Severity, d.Message, d.Variant); err != nil {
			return err
		}
	}

	return nil
}

func (p *Printer) printPretty(w io.Writer, diagnostics []Diagnostic) error {
	var (
		bold    = p.paint(color.Bold)
		warning = p.paint(color.FgYellow, color.Bold)
		failure = p.paint(color.FgRed, color.Bold)
		gutter  = p.paint(color.FgBlue, color.Bold)
		note    = p.paint(color.FgCyan)
	)

	var b bytes.Buffer

	for i, d := range diagnostics {
		if i > 0 {
			b.WriteByte('\n')
		}

		severity := warning
		if d.Severity == Error {
			severity = failure
		}

		fmt.Fprintf(&b, "%s%s\n", severity.Sprintf("%s[%s]", d.Severity, d.Variant), bold.Sprintf(": %s", d.Message))

		for j, l := range d.Labels {
			pos := p.position(l.Span.Pos)
			if j == 0 {
				fmt.Fprintf(&b, "  %s %s\n", gutter.Sprint("-->"), pos)
			}

			line, caret, ok := p.excerpt(l.Span)
			if !ok {
				if j > 0 {
					fmt.Fprintf(&b, "  %s %s: %s\n", note.Sprint("= note:"), pos, l.Message)
				}

				continue
			}

			number := strconv.Itoa(pos.Line)
			pad := strings.Repeat(" ", len(number))

			marker := severity
			if j > 0 {
				marker = note
			}

			fmt.Fprintf(&b, "%s %s\n", pad, gutter.Sprint("|"))
			fmt.Fprintf(&b, "%s %s %s\n", gutter.Sprint(number), gutter.Sprint("|"), line)
			fmt.Fprintf(&b, "%s %s %s %s\n", pad, gutter.Sprint("|"), marker.Sprint(caret), marker.Sprint(l.Message))
		}

		for _, f := range d.Fixes {
			fmt.Fprintf(&b, "  %s %s\n", note.Sprint("= help:"), f.Message)
		}
	}

	_, err := w.Write(b.Bytes())

	return err
}

// excerpt returns the source line of span with tabs expanded and the caret line underlining span.
func (p *Printer) excerpt(span ast.Span) (string, string, bool) {
	if p.Source == nil || p.Fset == nil || !span.Pos.IsValid() {
		return "", "", false
	}

	start := p.Fset.Position(span.Pos)

	src, ok := p.Source(start.Filename)
	if !ok || start.Offset > len(src) {
		return "", "", false
	}

	lineStart := bytes.LastIndexByte(src[:start.Offset], '\n') + 1

	lineEnd := len(src)
	if i := bytes.IndexByte(src[start.Offset:], '\n'); i >= 0 {
		lineEnd = start.Offset + i
	}

	end := lineEnd
	if span.End.IsValid() {
		if e := p.Fset.Position(span.End).Offset; e >= start.Offset && e < end {
			end = e
		}
	}

	line := strings.TrimRight(string(src[lineStart:lineEnd]), "\r")
	prefix := expandTabs(string(src[lineStart:start.Offset]))
	marked := expandTabs(string(src[start.Offset:end]))

	caret := strings.Repeat(" ", runewidth.StringWidth(prefix)) + strings.Repeat("^", max(1, runewidth.StringWidth(marked)))

	return expandTabs(line), caret, true
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

type jsonLabel struct {
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"endLine"`
	EndColumn int    `json:"endColumn"`
	Message   string `json:"message"`
}

type jsonDiagnostic struct {
	File     string      `json:"file"`
	Rule     string      `json:"rule"`
	Severity string      `json:"severity"`
	Name     string      `json:"name,omitempty"`
	Message  string      `json:"message"`
	Labels   []jsonLabel `json:"labels"`
	Fixes    []string    `json:"fixes,omitempty"`
}

func (p *Printer) printJSON(w io.Writer, diagnostics []Diagnostic) error {
	out := make([]jsonDiagnostic, 0, len(diagnostics))

	for _, d := range diagnostics {
		jd := jsonDiagnostic{
			File:     p.position(d.Span().Pos).Filename,
			Rule:     d.Variant.String(),
			Severity: d.Severity.String(),
			Name:     d.Name,
			Message:  d.Message,
			Labels:   make([]jsonLabel, 0, len(d.Labels)),
		}

		for _, l := range d.Labels {
			start, end := p.position(l.Span.Pos), p.position(l.Span.End)
			jd.Labels = append(jd.Labels, jsonLabel{
				Line:      start.Line,
				Column:    start.Column,
				EndLine:   end.Line,
				EndColumn: end.Column,
				Message:   l.Message,
			})
		}

		for _, f := range d.Fixes {
			jd.Fixes = append(jd.Fixes, f.Message)
		}

		out = append(out, jd)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
