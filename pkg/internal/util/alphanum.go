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

package util

import (
	"regexp"
	"strconv"
	"strings"
)

var chunkRegexp = regexp.MustCompile(`(\d+|\D+)`)

// NameLess reports whether name a sorts before name b in natural order, so
// that "Player 2" comes before "Player 10". Letters compare case-insensitively.
func NameLess(a, b string) bool {
	chunksA := chunkRegexp.FindAllString(strings.ToLower(a), -1)
	chunksB := chunkRegexp.FindAllString(strings.ToLower(b), -1)

	for i := 0; i < len(chunksA) && i < len(chunksB); i++ {
		ca, cb := chunksA[i], chunksB[i]
		if ca == cb {
			continue
		}

		// Numeric chunks are compared by value.
		na, errA := strconv.Atoi(ca)
		nb, errB := strconv.Atoi(cb)
		if errA == nil && errB == nil && na != nb {
			return na < nb
		}

		return ca < cb
	}

	return len(chunksA) < len(chunksB)
}
