/*
 * flintc - a compiler for the Flint smart-contract language
 *
 * Copyright the Flint Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package diagnostics

import (
	"fmt"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// maxSuggestionDistance bounds how different a candidate name may be from
// the unresolved identifier before it stops being a useful suggestion.
const maxSuggestionDistance = 3

// Suggest returns a "did you mean" hint for name against the candidate
// identifiers in visible, or "" if nothing is close enough to be useful.
func Suggest(name string, visible []string) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1

	for _, candidate := range visible {
		if candidate == name {
			continue
		}
		distance := levenshtein.DistanceForStrings(
			[]rune(name),
			[]rune(candidate),
			levenshtein.DefaultOptions,
		)
		if distance < bestDistance {
			bestDistance = distance
			best = candidate
		}
	}

	if best == "" {
		return ""
	}
	return fmt.Sprintf("did you mean %q?", best)
}
