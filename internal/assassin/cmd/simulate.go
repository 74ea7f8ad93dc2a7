// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// assassin simulate
func Simulate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [names-file] --kill name...",
		Short: "Apply a list of kills and show the result",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`simulate builds the kill ring like play does, and then
			kills the participants given with --kill in order, without
			reading anything from the standard input.

			Simulation stops at the first kill which fails, such as a
			kill of someone who is already dead or a kill after the
			game is over.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			ring, err := newRing(cmd, args)
			if err != nil {
				return err
			}

			kills, _ := cmd.Flags().GetStringArray("kill")
			for _, name := range kills {
				if err := ring.Kill(name); err != nil {
					return err
				}

				logrus.WithField("victim", name).Debug("Killed")
			}

			out := cmd.OutOrStdout()
			if ring.IsGameOver() {
				return finish(out, ring)
			}

			return report(out, ring)
		},
	}

	cmd.Flags().StringArrayP("kill", "k", nil, "Name of the next victim (repeatable)")
	addRosterFlags(cmd)
	return cmd
}
