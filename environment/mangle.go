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
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Mangle derives the target IR identifier for one function overload. Spec
// 4.2 requires the mapping from (contract, capability guard, signature) to
// target identifier to be total, injective, and stable: two overloads of
// the same source name are only ever distinguished by their guard and
// parameter types, so the mangled name must fold in exactly those, and
// nothing else (in particular, not declaration order, which is not
// guaranteed stable across parses of semantically identical source).
//
// The human-readable prefix keeps emitted IR legible; the hash suffix is
// what actually guarantees injectivity across overloads that render to the
// same prefix.
func Mangle(lattice *capabilityLattice, info *FunctionInfo) string {
	var sig strings.Builder
	sig.WriteString(info.Contract)
	sig.WriteByte(0)
	sig.WriteString(info.Name)
	sig.WriteByte(0)

	sorted := info.Capabilities.Names(lattice)
	sort.Strings(sorted)
	for _, name := range sorted {
		sig.WriteString(name)
		sig.WriteByte(',')
	}
	sig.WriteByte(0)

	for _, param := range info.Parameters {
		sig.WriteString(param.Type.String())
		sig.WriteByte(',')
	}

	sum := blake2b.Sum256([]byte(sig.String()))
	return fmt.Sprintf("%s_%s_%s", info.Contract, info.Name, hex.EncodeToString(sum[:8]))
}
