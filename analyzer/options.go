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
	"log/slog"

	"fillmore-labs.com/redeclare/analyzer/level"
	"fillmore-labs.com/redeclare/internal/config"
	"fillmore-labs.com/redeclare/internal/run"
)

// Option configures specific behavior of a [New] redeclare analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithBuiltinGlobals is an [Option] to report declarations of built-in global variables
// like Object or undefined.
func WithBuiltinGlobals(builtinGlobals bool) Option {
	return builtinGlobalsOption{builtinGlobals: builtinGlobals}
}

type builtinGlobalsOption struct{ builtinGlobals bool }

func (o builtinGlobalsOption) apply(r *run.Options) {
	r.Behavior.Set(config.BuiltinGlobals, o.builtinGlobals)
}

func (o builtinGlobalsOption) LogAttr() slog.Attr {
	return slog.Bool("builtinGlobals", o.builtinGlobals)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithPackageScripts is an [Option] to check the JavaScript files found in package directories,
// in addition to the non-Go files of the package.
func WithPackageScripts(packageScripts bool) Option {
	return packageScriptsOption{packageScripts: packageScripts}
}

type packageScriptsOption struct{ packageScripts bool }

func (o packageScriptsOption) apply(r *run.Options) {
	r.Behavior.Set(config.PackageScripts, o.packageScripts)
}

func (o packageScriptsOption) LogAttr() slog.Attr {
	return slog.Bool("packageScripts", o.packageScripts)
}

// WithSuggestFixes is an [Option] to configure suggested fixes.
func WithSuggestFixes(suggestFixes bool) Option { return suggestFixesOption{suggestFixes: suggestFixes} }

type suggestFixesOption struct{ suggestFixes bool }

func (o suggestFixesOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.suggestFixes)
}

func (o suggestFixesOption) LogAttr() slog.Attr {
	return slog.Bool("suggestFixes", o.suggestFixes)
}

// WithLevel is an [Option] to set the rule level.
func WithLevel(rule level.Rule) Option { return levelOption{rule: rule} }

type levelOption struct{ rule level.Rule }

func (o levelOption) apply(r *run.Options) {
	r.Level = o.rule
}

func (o levelOption) LogAttr() slog.Attr {
	return slog.String("level", o.rule.String())
}
