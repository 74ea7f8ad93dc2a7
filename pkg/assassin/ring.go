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

// Package assassin implements the kill ring and graveyard of an assassin
// game. Every participant stalks the next one in the ring, and a participant
// who is killed is moved to the graveyard along with the name of their killer.
package assassin

import (
	"github.com/pkg/errors"

	"laptudirm.com/x/assassin/pkg/internal/util"
)

var (
	// ErrInvalidArgument is returned for an empty roster or a kill
	// targeting someone who is not alive in the kill ring.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIllegalState is returned for a kill after the game is over.
	ErrIllegalState = errors.New("illegal state")
)

// none marks the absence of a node index.
const none = -1

// node is a participant slot in the arena. Ring links are indices into
// RosterRing.nodes, which are never reused once a node is retired.
type node struct {
	name string // display name, as supplied
	key  string // case-folded name used for lookups

	next, prev int
}

// Death is a single graveyard entry.
type Death struct {
	Victim string
	Killer string
}

// RosterRing holds the live kill ring and the graveyard of a single game.
// It is not safe for concurrent use.
type RosterRing struct {
	nodes []node

	head  int            // current head of the kill ring
	size  int            // number of live participants
	alive map[string]int // key -> node index, live participants only

	graveyard []Death
	dead      map[string]struct{} // keys of every victim in the graveyard
}

// NewRosterRing builds a kill ring from the given names, in order, with the
// first name stalking the second and the last name stalking the first. A
// roster with a single name is a game that is already over.
func NewRosterRing(names []string) (*RosterRing, error) {
	if len(names) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "new roster ring: no names")
	}

	ring := &RosterRing{
		nodes: make([]node, len(names)),
		size:  len(names),
		alive: make(map[string]int, len(names)),
		dead:  make(map[string]struct{}),
	}

	for i, name := range names {
		ring.nodes[i] = node{
			name: name,
			key:  util.FoldName(name),
			next: (i + 1) % len(names),
			prev: (i - 1 + len(names)) % len(names),
		}

		// Later duplicates shadow earlier ones; rosters are expected
		// to be deduplicated by whoever supplies the names.
		ring.alive[ring.nodes[i].key] = i
	}

	return ring, nil
}

// Kill removes the named participant from the kill ring and records them in
// the graveyard as killed by whoever was stalking them. The name is matched
// case-insensitively against live participants only.
func (ring *RosterRing) Kill(name string) error {
	if ring.IsGameOver() {
		return errors.Wrapf(ErrIllegalState, "kill %s: game is over", name)
	}

	victim, found := ring.alive[util.FoldName(name)]
	if !found {
		return errors.Wrapf(ErrInvalidArgument, "kill %s: not in kill ring", name)
	}

	killer := ring.nodes[victim].prev
	successor := ring.nodes[victim].next

	// Splice the victim out of the ring.
	ring.nodes[killer].next = successor
	ring.nodes[successor].prev = killer
	if ring.head == victim {
		ring.head = successor
	}

	ring.graveyard = append(ring.graveyard, Death{
		Victim: ring.nodes[victim].name,
		Killer: ring.nodes[killer].name,
	})
	ring.dead[ring.nodes[victim].key] = struct{}{}

	// Retire the arena slot.
	delete(ring.alive, ring.nodes[victim].key)
	ring.nodes[victim].next, ring.nodes[victim].prev = none, none
	ring.size--

	return nil
}

// KillRingContains reports whether the named participant is still alive.
func (ring *RosterRing) KillRingContains(name string) bool {
	_, found := ring.alive[util.FoldName(name)]
	return found
}

// GraveyardContains reports whether the named participant has been killed.
// Killers are not considered, only victims.
func (ring *RosterRing) GraveyardContains(name string) bool {
	_, found := ring.dead[util.FoldName(name)]
	return found
}

// Death returns the graveyard entry of the named participant, if they
// have been killed.
func (ring *RosterRing) Death(name string) (Death, bool) {
	key := util.FoldName(name)
	for _, death := range ring.graveyard {
		if util.FoldName(death.Victim) == key {
			return death, true
		}
	}

	return Death{}, false
}

// IsGameOver reports whether a single participant is left alive.
func (ring *RosterRing) IsGameOver() bool {
	return ring.size == 1
}

// Winner returns the last participant alive, if the game is over.
func (ring *RosterRing) Winner() (string, bool) {
	if !ring.IsGameOver() {
		return "", false
	}

	return ring.nodes[ring.head].name, true
}

// Len returns the number of participants alive.
func (ring *RosterRing) Len() int {
	return ring.size
}

// Survivors returns the live participants in ring order, starting at the head.
func (ring *RosterRing) Survivors() []string {
	survivors := make([]string, 0, ring.size)
	for i, n := ring.head, 0; n < ring.size; i, n = ring.nodes[i].next, n+1 {
		survivors = append(survivors, ring.nodes[i].name)
	}

	return survivors
}

// Deaths returns a copy of the graveyard, oldest death first.
func (ring *RosterRing) Deaths() []Death {
	deaths := make([]Death, len(ring.graveyard))
	copy(deaths, ring.graveyard)
	return deaths
}

