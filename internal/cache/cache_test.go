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

package cache_test

import (
	"errors"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vmihailenco/msgpack/v5"

	. "fillmore-labs.com/redeclare/internal/cache"
	"fillmore-labs.com/redeclare/internal/redeclare"
	"fillmore-labs.com/redeclare/internal/report"
	"fillmore-labs.com/redeclare/internal/testsource"
)

const src = "var a; var a = 1; var b = 2; var b;"

func TestKey(t *testing.T) {
	t.Parallel()

	k := NewKey("opts", "a.js", []byte(src))

	if k != NewKey("opts", "a.js", []byte(src)) {
		t.Error("Expected stable keys")
	}

	for _, other := range []Key{
		NewKey("opts2", "a.js", []byte(src)),
		NewKey("opts", "b.js", []byte(src)),
		NewKey("opts", "a.js", []byte(src+" ")),
		NewKey("optsa", ".js", []byte(src)),
	} {
		if other == k {
			t.Errorf("Key collision for %s", other)
		}
	}
}

func diagnostics(t *testing.T) (*token.File, []report.Diagnostic) {
	t.Helper()

	fset, p := testsource.Resolve(t, src, nil)

	c := redeclare.Classifier{SuggestFixes: true}

	return fset.File(p.File.Pos()), c.Classify(t.Context(), p.Groups)
}

func TestEntry(t *testing.T) {
	t.Parallel()

	handle, want := diagnostics(t)
	if len(want) != 2 || len(want[0].Fixes) != 1 {
		t.Fatalf("Unexpected diagnostics %v", want)
	}

	e, err := NewEntry(handle, false, want)
	if err != nil {
		t.Fatalf("Can't create entry: %v", err)
	}

	// Decode relative to a fresh file at a different base
	fset := token.NewFileSet()
	fset.AddFile("other.js", -1, 100)
	replay := fset.AddFile("test.js", -1, handle.Size())

	got, err := e.Report(replay)
	if err != nil {
		t.Fatalf("Can't decode entry: %v", err)
	}

	offsets := func(h *token.File, ds []report.Diagnostic) [][]int {
		var r [][]int
		for _, d := range ds {
			var o []int
			for _, l := range d.Labels {
				o = append(o, h.Offset(l.Span.Pos), h.Offset(l.Span.End))
			}

			for _, f := range d.Fixes {
				for _, te := range f.TextEdits {
					o = append(o, h.Offset(te.Pos), h.Offset(te.End))
				}
			}

			r = append(r, o)
		}

		return r
	}

	if diff := cmp.Diff(offsets(handle, want), offsets(replay, got)); diff != "" {
		t.Errorf("Offsets mismatch (-want +got):\n%s", diff)
	}

	if got[0].Message != want[0].Message || got[1].Variant != want[1].Variant {
		t.Errorf("Got %+v, expected %+v", got, want)
	}
}

func TestEntryOutOfRange(t *testing.T) {
	t.Parallel()

	handle, ds := diagnostics(t)

	e, err := NewEntry(handle, false, ds)
	if err != nil {
		t.Fatal(err)
	}

	short := token.NewFileSet().AddFile("test.js", -1, 3)

	if _, err := e.Report(short); !errors.Is(err, ErrOffset) {
		t.Errorf("Got error %v, expected %v", err, ErrOffset)
	}
}

func TestCache(t *testing.T) {
	t.Parallel()

	c, err := OpenDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	key := NewKey("", "a.js", []byte(src))

	if _, ok, err := c.Get(key); ok || err != nil {
		t.Fatalf("Expected miss, got %t, %v", ok, err)
	}

	want := &Entry{Skipped: true, Diagnostics: []Diagnostic{{Name: "a", Labels: []Label{{Pos: 5, End: 6, Message: "m"}}}}}
	if err := c.Put(key, want); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := c.Get(key)
	if !ok || err != nil {
		t.Fatalf("Expected hit, got %t, %v", ok, err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Entry mismatch (-want +got):\n%s", diff)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if _, ok, _ := c.Get(key); ok {
		t.Error("Expected miss after clear")
	}
}

func TestSchema(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	c, err := OpenDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	key := NewKey("", "a.js", nil)
	if err := c.Put(key, &Entry{}); err != nil {
		t.Fatal(err)
	}

	// Overwrite with an entry of a future version
	data, err := msgpack.Marshal(&Entry{Schema: 0xffff})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, key.String()[:2], key.String()+".mp")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := c.Get(key); !errors.Is(err, ErrSchema) {
		t.Errorf("Got error %v, expected %v", err, ErrSchema)
	}
}

func TestNilCache(t *testing.T) {
	t.Parallel()

	var c *Cache

	if err := c.Put(Key{}, &Entry{}); err != nil {
		t.Errorf("Put failed: %v", err)
	}

	if _, ok, err := c.Get(Key{}); ok || err != nil {
		t.Errorf("Expected miss, got %t, %v", ok, err)
	}
}
