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
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/assassin/pkg/assassin"
	"laptudirm.com/x/assassin/pkg/common"
	"laptudirm.com/x/assassin/pkg/roster"
)

// addRosterFlags registers the flags used by every command which builds
// a kill ring from a roster.
func addRosterFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("shuffle", "s", false, "Shuffle the roster before the game")
	cmd.Flags().Int64("seed", 0, "Seed used to shuffle the roster (0 for random)")
}

// newRing builds the kill ring for a command. The names file is taken from
// the arguments, the config file, or the default names file, in that order.
// Roster flags which were set override the config file.
func newRing(cmd *cobra.Command, args []string) (*assassin.RosterRing, error) {
	config, err := common.LoadConfig(cmd.Flag("config").Value.String())
	if err != nil {
		return nil, err
	}

	names := config.Names
	switch {
	case len(args) > 0:
		names = args[0]
	case names == "":
		names = common.NamesFile
	}

	if cmd.Flags().Changed("shuffle") {
		config.Shuffle, _ = cmd.Flags().GetBool("shuffle")
	}
	if cmd.Flags().Changed("seed") {
		config.Seed, _ = cmd.Flags().GetInt64("seed")
	}

	list, err := roster.Load(names)
	if err != nil {
		return nil, err
	}

	if config.Shuffle {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		logrus.WithField("seed", seed).Info("Shuffling roster")
		list = roster.Shuffle(list, seed)
	}

	return assassin.NewRosterRing(list)
}

// report writes the current kill ring and graveyard.
func report(w io.Writer, ring *assassin.RosterRing) error {
	fmt.Fprintln(w, "Current kill ring:")
	if err := ring.PrintKillRing(w); err != nil {
		return err
	}

	fmt.Fprintln(w, "Current graveyard:")
	return ring.PrintGraveyard(w)
}

// finish announces the winner followed by the final graveyard and tally.
func finish(w io.Writer, ring *assassin.RosterRing) error {
	winner, _ := ring.Winner()
	fmt.Fprintf(w, "Game was won by %s\n", winner)

	fmt.Fprintln(w, "Final graveyard is as follows:")
	if err := ring.PrintGraveyard(w); err != nil {
		return err
	}

	if deaths := ring.Deaths(); len(deaths) > 0 {
		fmt.Fprintln(w)
		return assassin.WriteTally(w, assassin.Tally(deaths))
	}

	return nil
}
