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

package assassin

import (
	"fmt"
	"io"
	"iter"
)

// KillRing yields a line for every live participant, starting at the head,
// naming the participant they are stalking. Nothing is yielded once the
// game is over.
func (ring *RosterRing) KillRing() iter.Seq[string] {
	return func(yield func(string) bool) {
		if ring.IsGameOver() {
			return
		}

		for i, n := ring.head, 0; n < ring.size; i, n = ring.nodes[i].next, n+1 {
			stalker, victim := ring.nodes[i], ring.nodes[ring.nodes[i].next]
			if !yield(fmt.Sprintf("    %s is stalking %s", stalker.name, victim.name)) {
				return
			}
		}
	}
}

// Graveyard yields a line for every death, oldest first.
func (ring *RosterRing) Graveyard() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, death := range ring.graveyard {
			if !yield(fmt.Sprintf("    %s was killed by %s", death.Victim, death.Killer)) {
				return
			}
		}
	}
}

// PrintKillRing writes the KillRing lines to w.
func (ring *RosterRing) PrintKillRing(w io.Writer) error {
	return printLines(w, ring.KillRing())
}

// PrintGraveyard writes the Graveyard lines to w.
func (ring *RosterRing) PrintGraveyard(w io.Writer) error {
	return printLines(w, ring.Graveyard())
}

func printLines(w io.Writer, lines iter.Seq[string]) error {
	for line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
