package assassin

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/assassin/pkg/roster"
)

func TestNewRosterRingEmpty(t *testing.T) {
	for _, names := range [][]string{nil, {}} {
		ring, err := NewRosterRing(names)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.Nil(t, ring)
	}
}

func TestNewRosterRingSingleName(t *testing.T) {
	ring, err := NewRosterRing([]string{"Ada"})
	require.NoError(t, err)

	assert.True(t, ring.IsGameOver())
	winner, over := ring.Winner()
	assert.True(t, over)
	assert.Equal(t, "Ada", winner)

	assert.True(t, ring.KillRingContains("ada"))
	assert.False(t, ring.GraveyardContains("ada"))
	assert.Empty(t, slices.Collect(ring.KillRing()))
	assert.Empty(t, slices.Collect(ring.Graveyard()))

	err = ring.Kill("Ada")
	assert.True(t, errors.Is(err, ErrIllegalState))
}

func TestNewRosterRingOrder(t *testing.T) {
	ring, err := NewRosterRing([]string{"A", "B", "C", "D"})
	require.NoError(t, err)

	assert.False(t, ring.IsGameOver())
	assert.Equal(t, 4, ring.Len())
	assert.Equal(t, []string{"A", "B", "C", "D"}, ring.Survivors())

	winner, over := ring.Winner()
	assert.False(t, over)
	assert.Empty(t, winner)
}

func TestKillTwoPeople(t *testing.T) {
	ring, err := NewRosterRing([]string{"A", "B"})
	require.NoError(t, err)

	require.NoError(t, ring.Kill("B"))

	assert.True(t, ring.IsGameOver())
	winner, over := ring.Winner()
	assert.True(t, over)
	assert.Equal(t, "A", winner)
	assert.Equal(t, []Death{{Victim: "B", Killer: "A"}}, ring.Deaths())
	assert.Equal(t, []string{"    B was killed by A"}, slices.Collect(ring.Graveyard()))
	assert.Empty(t, slices.Collect(ring.KillRing()))
}

func TestKillHeadOfTwo(t *testing.T) {
	ring, err := NewRosterRing([]string{"A", "B"})
	require.NoError(t, err)

	require.NoError(t, ring.Kill("a"))

	winner, over := ring.Winner()
	assert.True(t, over)
	assert.Equal(t, "B", winner)
	assert.Equal(t, []Death{{Victim: "A", Killer: "B"}}, ring.Deaths())
}

func TestKillRelinksPredecessor(t *testing.T) {
	ring, err := NewRosterRing([]string{"A", "B", "C"})
	require.NoError(t, err)

	require.NoError(t, ring.Kill("C"))

	assert.Equal(t, []Death{{Victim: "C", Killer: "B"}}, ring.Deaths())
	assert.Equal(t, []string{
		"    A is stalking B",
		"    B is stalking A",
	}, slices.Collect(ring.KillRing()))
}

func TestKillHeadMovesHead(t *testing.T) {
	ring, err := NewRosterRing([]string{"A", "B", "C", "D"})
	require.NoError(t, err)

	require.NoError(t, ring.Kill("A"))

	assert.Equal(t, []Death{{Victim: "A", Killer: "D"}}, ring.Deaths())
	assert.Equal(t, []string{"B", "C", "D"}, ring.Survivors())
	assert.Equal(t, []string{
		"    B is stalking C",
		"    C is stalking D",
		"    D is stalking B",
	}, slices.Collect(ring.KillRing()))
}

func TestKillIsCaseInsensitive(t *testing.T) {
	ring, err := NewRosterRing([]string{"Grace Hopper", "Alan Turing", "Ada Lovelace"})
	require.NoError(t, err)

	require.NoError(t, ring.Kill("aLAN tURING"))

	assert.False(t, ring.KillRingContains("alan turing"))
	assert.True(t, ring.GraveyardContains("ALAN TURING"))
	assert.Equal(t, []Death{{Victim: "Alan Turing", Killer: "Grace Hopper"}}, ring.Deaths())
}

func TestKillInheritsVictims(t *testing.T) {
	ring, err := NewRosterRing([]string{"A", "B", "C", "D"})
	require.NoError(t, err)

	require.NoError(t, ring.Kill("B"))
	require.NoError(t, ring.Kill("C"))
	require.NoError(t, ring.Kill("D"))

	winner, over := ring.Winner()
	require.True(t, over)
	assert.Equal(t, "A", winner)
	assert.Equal(t, []Death{
		{Victim: "B", Killer: "A"},
		{Victim: "C", Killer: "A"},
		{Victim: "D", Killer: "A"},
	}, ring.Deaths())
}

func TestKillErrors(t *testing.T) {
	ring, err := NewRosterRing([]string{"A", "B", "C"})
	require.NoError(t, err)
	require.NoError(t, ring.Kill("B"))

	tests := []struct {
		name   string
		victim string
	}{
		{"unknown", "Z"},
		{"already dead", "B"},
		{"already dead different case", "b"},
		{"empty", ""},
		{"prefix", "A "},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ring.Kill(test.victim)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.False(t, errors.Is(err, ErrIllegalState))

			// Failed kills leave the game as it was.
			assert.Equal(t, 2, ring.Len())
			assert.Equal(t, []Death{{Victim: "B", Killer: "A"}}, ring.Deaths())
			assert.Equal(t, []string{"A", "C"}, ring.Survivors())
		})
	}
}

func TestKillAfterGameOver(t *testing.T) {
	ring, err := NewRosterRing([]string{"A", "B", "C"})
	require.NoError(t, err)
	require.NoError(t, ring.Kill("B"))
	require.NoError(t, ring.Kill("C"))
	require.True(t, ring.IsGameOver())

	graveyard := slices.Collect(ring.Graveyard())

	// The state check comes first, whatever the name.
	for _, name := range []string{"A", "a", "B", "C", "nobody", ""} {
		err := ring.Kill(name)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrIllegalState), name)
	}

	assert.Equal(t, graveyard, slices.Collect(ring.Graveyard()))
	winner, _ := ring.Winner()
	assert.Equal(t, "A", winner)
}

func TestMembershipIsExclusive(t *testing.T) {
	names := []string{"Ann", "Bob", "Cid", "Dee", "Eve", "Fay"}
	order := []string{"cid", "ANN", "Fay", "bob", "eve"}

	ring, err := NewRosterRing(names)
	require.NoError(t, err)

	check := func() {
		for _, name := range names {
			alive, dead := ring.KillRingContains(name), ring.GraveyardContains(name)
			assert.True(t, alive != dead, "%s alive=%v dead=%v", name, alive, dead)
		}
	}

	check()
	for i, victim := range order {
		require.NoError(t, ring.Kill(victim))

		assert.Equal(t, len(names)-i-1, ring.Len())
		assert.Len(t, ring.Deaths(), i+1)
		assert.Len(t, slices.Collect(ring.Graveyard()), i+1)
		check()
	}

	winner, over := ring.Winner()
	require.True(t, over)
	assert.Equal(t, "Dee", winner)
	assert.True(t, ring.KillRingContains("dee"))
}

func TestGraveyardIgnoresKillers(t *testing.T) {
	ring, err := NewRosterRing([]string{"A", "B", "C"})
	require.NoError(t, err)
	require.NoError(t, ring.Kill("B"))

	assert.True(t, ring.GraveyardContains("B"))
	assert.False(t, ring.GraveyardContains("A"))
}

func TestDeathsIsCopy(t *testing.T) {
	ring, err := NewRosterRing([]string{"A", "B", "C"})
	require.NoError(t, err)
	require.NoError(t, ring.Kill("B"))

	deaths := ring.Deaths()
	deaths[0].Killer = "Z"

	assert.Equal(t, "A", ring.Deaths()[0].Killer)
}

func TestDeath(t *testing.T) {
	ring, err := NewRosterRing([]string{"Ada", "Bob", "Cid"})
	require.NoError(t, err)
	require.NoError(t, ring.Kill("bob"))

	death, dead := ring.Death("BOB")
	assert.True(t, dead)
	assert.Equal(t, Death{Victim: "Bob", Killer: "Ada"}, death)

	for _, name := range []string{"Ada", "Cid", "nobody"} {
		_, dead := ring.Death(name)
		assert.False(t, dead, name)
	}
}

// fullGame kills everyone in testdata/names.txt except Bill Gates.
var fullGame = []string{
	"john von neumann",
	"don knuth",
	"grace hopper",
	"alan turing",
	"alonzo church",
	"alan kay",
	"ada lovelace",
	"linus torvalds",
	"tim berners-lee",
	"charles babbage",
}

func newTestRing(t *testing.T, victims []string) *RosterRing {
	t.Helper()

	names, err := roster.Load("testdata/names.txt")
	require.NoError(t, err)

	ring, err := NewRosterRing(names)
	require.NoError(t, err)

	for _, victim := range victims {
		require.NoError(t, ring.Kill(victim))
	}

	return ring
}

func TestRosterGames(t *testing.T) {
	tests := []struct {
		name      string
		victims   []string
		killRing  []string
		graveyard []string
		winner    string
	}{
		{
			name:    "no kills",
			victims: nil,
			killRing: []string{
				"    Don Knuth is stalking Alan Turing",
				"    Alan Turing is stalking Ada Lovelace",
				"    Ada Lovelace is stalking Charles Babbage",
				"    Charles Babbage is stalking John von Neumann",
				"    John von Neumann is stalking Grace Hopper",
				"    Grace Hopper is stalking Bill Gates",
				"    Bill Gates is stalking Tim Berners-Lee",
				"    Tim Berners-Lee is stalking Alan Kay",
				"    Alan Kay is stalking Linus Torvalds",
				"    Linus Torvalds is stalking Alonzo Church",
				"    Alonzo Church is stalking Don Knuth",
			},
		},
		{
			name:    "kill in the middle",
			victims: []string{"bill gates"},
			killRing: []string{
				"    Don Knuth is stalking Alan Turing",
				"    Alan Turing is stalking Ada Lovelace",
				"    Ada Lovelace is stalking Charles Babbage",
				"    Charles Babbage is stalking John von Neumann",
				"    John von Neumann is stalking Grace Hopper",
				"    Grace Hopper is stalking Tim Berners-Lee",
				"    Tim Berners-Lee is stalking Alan Kay",
				"    Alan Kay is stalking Linus Torvalds",
				"    Linus Torvalds is stalking Alonzo Church",
				"    Alonzo Church is stalking Don Knuth",
			},
			graveyard: []string{
				"    Bill Gates was killed by Grace Hopper",
			},
		},
		{
			name:    "kill the head",
			victims: []string{"don knuth"},
			killRing: []string{
				"    Alan Turing is stalking Ada Lovelace",
				"    Ada Lovelace is stalking Charles Babbage",
				"    Charles Babbage is stalking John von Neumann",
				"    John von Neumann is stalking Grace Hopper",
				"    Grace Hopper is stalking Bill Gates",
				"    Bill Gates is stalking Tim Berners-Lee",
				"    Tim Berners-Lee is stalking Alan Kay",
				"    Alan Kay is stalking Linus Torvalds",
				"    Linus Torvalds is stalking Alonzo Church",
				"    Alonzo Church is stalking Alan Turing",
			},
			graveyard: []string{
				"    Don Knuth was killed by Alonzo Church",
			},
		},
		{
			name:     "full game",
			victims:  fullGame,
			killRing: nil,
			graveyard: []string{
				"    John von Neumann was killed by Charles Babbage",
				"    Don Knuth was killed by Alonzo Church",
				"    Grace Hopper was killed by Charles Babbage",
				"    Alan Turing was killed by Alonzo Church",
				"    Alonzo Church was killed by Linus Torvalds",
				"    Alan Kay was killed by Tim Berners-Lee",
				"    Ada Lovelace was killed by Linus Torvalds",
				"    Linus Torvalds was killed by Tim Berners-Lee",
				"    Tim Berners-Lee was killed by Bill Gates",
				"    Charles Babbage was killed by Bill Gates",
			},
			winner: "Bill Gates",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ring := newTestRing(t, test.victims)

			assert.Equal(t, test.killRing, slices.Collect(ring.KillRing()))
			assert.Equal(t, test.graveyard, slices.Collect(ring.Graveyard()))

			winner, over := ring.Winner()
			assert.Equal(t, test.winner, winner)
			assert.Equal(t, test.winner != "", over)
			assert.Equal(t, over, ring.IsGameOver())

			for _, victim := range test.victims {
				assert.False(t, ring.KillRingContains(victim), victim)
				assert.True(t, ring.GraveyardContains(victim), victim)
			}
		})
	}
}

func TestRosterKillErrors(t *testing.T) {
	tests := []struct {
		name    string
		victims []string
		want    error
	}{
		{"mixed case victim", []string{"bilL GAtes"}, nil},
		{"after five kills", fullGame[:5], ErrInvalidArgument},
		{"after the game", fullGame, ErrIllegalState},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ring := newTestRing(t, test.victims)
			if test.want == nil {
				assert.True(t, ring.GraveyardContains("bill gates"))
				return
			}

			err := ring.Kill("don knuth")
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.want))
		})
	}
}
