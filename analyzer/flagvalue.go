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
	"strconv"
	"strings"

	"fillmore-labs.com/redeclare/internal/config"
)

// behaviorValue is a boolean [flag.Value] toggling a single bit of a behavior mask.
type behaviorValue struct {
	mask *config.BitMask[config.Behavior]
	bit  config.Behavior
}

// newBehaviorValue returns a boolean [flag.Value] toggling bit in mask.
func newBehaviorValue(mask *config.BitMask[config.Behavior], bit config.Behavior) behaviorValue {
	return behaviorValue{mask: mask, bit: bit}
}

// Set implements [flag.Value].
func (v behaviorValue) Set(s string) error {
	b, err := parseSwitch(s)
	if err != nil {
		return err
	}

	v.mask.Set(v.bit, b)

	return nil
}

// String implements [flag.Value]. The zero value, used by [flag.PrintDefaults], is disabled.
func (v behaviorValue) String() string {
	return strconv.FormatBool(v.Get().(bool))
}

// Get implements [flag.Getter].
func (v behaviorValue) Get() any {
	return v.mask != nil && v.mask.Enabled(v.bit)
}

// IsBoolFlag marks -name without argument as -name=true.
func (behaviorValue) IsBoolFlag() bool { return true }

// parseSwitch accepts the values of [strconv.ParseBool] and the ESLint style on/off.
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil

	case "off", "no":
		return false, nil
	}

	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, &strconv.NumError{Func: "parseSwitch", Num: s, Err: strconv.ErrSyntax}
	}

	return b, nil
}
