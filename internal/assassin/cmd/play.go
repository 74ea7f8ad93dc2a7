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
	"bufio"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// assassin play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [names-file]",
		Short: "Play a game of assassin interactively",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`play starts a game of assassin with the participants
			listed in the given names file, one per line. If no file
			is given, the names file from the config is used.

			Before every kill the current kill ring and graveyard are
			shown, and the name of the next victim is read from the
			standard input. The victim is killed by whoever is stalking
			them. The game ends when a single participant is left.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			ring, err := newRing(cmd, args)
			if err != nil {
				return err
			}

			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			for !ring.IsGameOver() {
				if err := report(out, ring); err != nil {
					return err
				}

				fmt.Fprint(out, "\nnext victim? ")
				if !in.Scan() {
					fmt.Fprintln(out)
					logrus.Warn("Input closed before the game was over")
					return in.Err()
				}

				name := strings.TrimSpace(in.Text())
				switch death, dead := ring.Death(name); {
				case dead:
					fmt.Fprintf(out, "%s is already dead.\n", death.Victim)
				case !ring.KillRingContains(name):
					fmt.Fprintln(out, "Unknown person.")
				default:
					if err := ring.Kill(name); err != nil {
						return err
					}
				}

				fmt.Fprintln(out)
			}

			return finish(out, ring)
		},
	}

	addRosterFlags(cmd)
	return cmd
}
