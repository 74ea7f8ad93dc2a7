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
	"sort"
	"strings"

	"laptudirm.com/x/assassin/pkg/internal/util"
)

// Score is the number of kills credited to a single participant.
type Score struct {
	Name  string
	Kills int
}

// Tally counts the kills of every participant who killed at least once.
// Scores are ordered by kills, most first, with ties broken by name.
func Tally(deaths []Death) []Score {
	index := make(map[string]int)
	var scores []Score

	for _, death := range deaths {
		key := util.FoldName(death.Killer)
		if i, found := index[key]; found {
			scores[i].Kills++
			continue
		}

		index[key] = len(scores)
		scores = append(scores, Score{Name: death.Killer, Kills: 1})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Kills != scores[j].Kills {
			return scores[i].Kills > scores[j].Kills
		}

		return util.NameLess(scores[i].Name, scores[j].Name)
	})

	return scores
}

// WriteTally renders the scores as a table.
func WriteTally(w io.Writer, scores []Score) error {
	border := strings.Repeat("═", 32)

	lines := []string{
		"╔" + border + "╗",
		fmt.Sprintf("║ %-3s %-19s  %5s ║", "", "Name", "Kills"),
		"╠" + border + "╣",
	}

	for i, score := range scores {
		lines = append(lines, fmt.Sprintf("║ %2d. %-19.19s  %5d ║", i+1, score.Name, score.Kills))
	}

	lines = append(lines, "╚"+border+"╝")

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
