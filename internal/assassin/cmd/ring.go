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
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// assassin ring
func Ring() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ring [names-file]",
		Short: "Show the starting kill ring of a roster",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`ring shows who stalks whom when a game starts with the
			given names file, after shuffling if --shuffle is set. No
			one is killed. A roster with a single name has no kill
			ring, and its only participant is shown instead.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			ring, err := newRing(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if winner, over := ring.Winner(); over {
				fmt.Fprintf(out, "%s is the only participant.\n", winner)
				return nil
			}

			return ring.PrintKillRing(out)
		},
	}

	addRosterFlags(cmd)
	return cmd
}
