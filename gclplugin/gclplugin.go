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

package gclplugin

import (
	"fmt"

	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	redeclare "fillmore-labs.com/redeclare/analyzer"
	"fillmore-labs.com/redeclare/analyzer/level"
)

func init() { register.Plugin("redeclare", New) }

// New decodes the golangci-lint settings and returns the redeclare [register.LinterPlugin].
func New(rawSettings any) (register.LinterPlugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, fmt.Errorf("redeclare: invalid settings: %w", err)
	}

	// golangci-lint excludes generated files itself
	opts := append([]redeclare.Option{redeclare.WithGenerated(true)}, settings.Options()...)

	return &Plugin{options: opts, off: settings.Level != nil && *settings.Level == level.Off}, nil
}

// Plugin builds the redeclare analyzer from decoded [Settings].
type Plugin struct {
	options []redeclare.Option
	off     bool
}

// GetLoadMode returns [register.LoadModeSyntax]; scripts are read from the package directories.
func (*Plugin) GetLoadMode() string {
	return register.LoadModeSyntax
}

// BuildAnalyzers returns the configured analyzer, or none when the rule is switched off.
func (p *Plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	if p.off {
		return nil, nil
	}

	return []*analysis.Analyzer{redeclare.New(p.options...)}, nil
}
