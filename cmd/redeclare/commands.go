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

package main

import (
	"fmt"
	"runtime/debug"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fillmore-labs.com/redeclare/internal/cache"
	"fillmore-labs.com/redeclare/internal/globals"
)

// version returns the module version of the binary.
func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "(devel)"
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name := color.New(color.FgGreen, color.Bold)

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name.Sprint(appName), version())

			return err
		},
	}
}

func newGlobalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "globals",
		Short: "List the built-in globals reported with --builtin-globals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range slices.Sorted(globals.All()) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newCleanCacheCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean-cache",
		Short: "Remove all cached results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := cache.Open(appName)
			if err != nil {
				return err
			}

			if err := c.Clear(); err != nil {
				return fmt.Errorf("can't clean %s: %w", c.Dir(), err)
			}

			return nil
		},
	}
}
