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

// Package roster reads and prepares the list of participants for a game.
package roster

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/assassin/pkg/internal/util"
)

var (
	ErrEmptyRoster   = errors.New("roster has no names")
	ErrDuplicateName = errors.New("duplicate name in roster")
)

// Load reads the names file at path. See Parse for the file format.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load roster")
	}
	defer file.Close()

	names, err := Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "load roster %s", path)
	}

	logrus.WithFields(logrus.Fields{
		"file":  path,
		"names": len(names),
	}).Debug("Loaded roster")

	return names, nil
}

// Parse reads one name per line from r. Surrounding whitespace is trimmed
// and blank lines are skipped. The names are validated before returning.
func Parse(r io.Reader) ([]string, error) {
	var names []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}

		names = append(names, name)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := Validate(names); err != nil {
		return nil, err
	}

	return names, nil
}

// Validate checks that there is at least one name and that no two names
// are equal ignoring ASCII case, the same way the kill ring compares them.
func Validate(names []string) error {
	if len(names) == 0 {
		return ErrEmptyRoster
	}

	seen := make(map[string]string, len(names))
	for _, name := range names {
		key := util.FoldName(name)
		if first, found := seen[key]; found {
			return errors.Wrapf(ErrDuplicateName, "%q and %q", first, name)
		}

		seen[key] = name
	}

	return nil
}

// Shuffle returns a copy of names in a random order determined by seed.
// The same seed always produces the same order.
func Shuffle(names []string, seed int64) []string {
	shuffled := make([]string, len(names))
	copy(shuffled, names)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	logrus.WithField("seed", seed).Trace("Shuffled roster")
	return shuffled
}
