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

package environment

import (
	"github.com/SaveTheRbtz/mph"
)

// sealedIndex replaces the build-phase event map with a minimal perfect
// hash once the full key set is known (spec 5: the environment is
// read-only during lowering, and lowering resolves a reference on every
// identifier and call it visits, so a lookup faster than a map is worth
// the one-time build cost at Seal()).
type sealedIndex struct {
	events map[string]*EventInfo
	hash   *mph.CHD
	keys   []string
}

func buildSealedIndex(e *Environment) *sealedIndex {
	idx := &sealedIndex{events: e.events}

	builder := mph.Builder()
	keys := make([]string, 0, len(e.events))
	for name := range e.events {
		keys = append(keys, name)
	}
	for i, name := range keys {
		builder.Add([]byte(name), uint32(i))
	}

	hash, err := builder.Build()
	if err != nil {
		// An empty or degenerate key set (no declared events) is the only
		// case the builder can fail on here; fall back to the plain map.
		return idx
	}

	idx.hash = hash
	idx.keys = keys
	return idx
}

func (idx *sealedIndex) resolveEvent(name string) (*EventInfo, bool) {
	if idx.hash == nil {
		info, ok := idx.events[name]
		return info, ok
	}

	i, ok := idx.hash.Get([]byte(name))
	if !ok || int(i) >= len(idx.keys) || idx.keys[i] != name {
		return nil, false
	}
	return idx.events[name], true
}
