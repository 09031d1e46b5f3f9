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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"fillmore-labs.com/redeclare/analyzer/level"
)

// FileName is the name of the configuration file searched for by [Find].
const FileName = ".redeclare.toml"

// ErrUnknownKey is returned for configuration keys that are not recognized.
var ErrUnknownKey = errors.New("unknown configuration key")

// File is the content of a configuration file. Unset values are nil.
type File struct {
	// Path is the location the file was loaded from.
	Path string `toml:"-"`

	BuiltinGlobals *bool       `toml:"builtinGlobals"`
	Generated      *bool       `toml:"generated"`
	SuggestFixes   *bool       `toml:"suggestFixes"`
	Level          *level.Rule `toml:"level"`
	Jobs           *int        `toml:"jobs"`
	Include        []string    `toml:"include"`
	Exclude        []string    `toml:"exclude"`
}

// Find searches startDir and its parents for a [FileName].
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("can't resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)

		_, err := os.Stat(candidate)
		switch {
		case err == nil:
			return candidate, true, nil

		case !errors.Is(err, os.ErrNotExist):
			return "", false, fmt.Errorf("can't stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}

		dir = parent
	}
}

// Load decodes the configuration file at path.
func Load(path string) (*File, error) {
	var f File

	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("%s: can't parse configuration: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		return nil, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}

	if f.Jobs != nil && *f.Jobs < 0 {
		return nil, fmt.Errorf("%s: jobs must not be negative, got %d", path, *f.Jobs)
	}

	for _, pattern := range append(f.Include, f.Exclude...) {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("%s: invalid pattern %q: %w", path, pattern, err)
		}
	}

	f.Path = path

	return &f, nil
}

// Apply sets the behaviors configured in f.
func (f *File) Apply(b *BitMask[Behavior]) {
	if f == nil {
		return
	}

	if f.BuiltinGlobals != nil {
		b.Set(BuiltinGlobals, *f.BuiltinGlobals)
	}

	if f.Generated != nil {
		b.Set(IncludeGenerated, *f.Generated)
	}

	if f.SuggestFixes != nil {
		b.Set(SuggestFixes, *f.SuggestFixes)
	}
}

// Matches reports whether the slash separated path rel is selected by the include and exclude patterns.
// A pattern without slash matches the base name, others match the whole relative path.
func (f *File) Matches(rel string) bool {
	if f == nil {
		return true
	}

	if len(f.Include) > 0 && !matchAny(f.Include, rel) {
		return false
	}

	return !matchAny(f.Exclude, rel)
}

func matchAny(patterns []string, rel string) bool {
	base := filepath.Base(rel)

	for _, pattern := range patterns {
		name := rel
		if !strings.Contains(pattern, "/") {
			name = base
		}

		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}

	return false
}
