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

package run

import (
	"log/slog"

	"fillmore-labs.com/redeclare/analyzer/level"
	"fillmore-labs.com/redeclare/internal/config"
	"fillmore-labs.com/redeclare/internal/redeclare"
)

// Options represent configuration options for the redeclare analyzer.
type Options struct {
	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Behavior]

	// Level is the severity of reported redeclarations.
	Level level.Rule
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.DefaultBehavior(),
		Level:    level.Warn,
	}
}

// Classifier returns the [redeclare.Classifier] configured by o.
func (o *Options) Classifier() redeclare.Classifier {
	return redeclare.Classifier{
		CheckBuiltinGlobals: o.Behavior.Enabled(config.BuiltinGlobals),
		SuggestFixes:        o.Behavior.Enabled(config.SuggestFixes),
	}
}

// LogValue implements [slog.LogValuer].
func (o *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("behavior", config.Names(o.Behavior)),
		slog.String("level", o.Level.String()),
	)
}
