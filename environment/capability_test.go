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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flintlang/flintc/ast"
)

func TestCapabilitySetNormalizesAnyAmongOthers(t *testing.T) {
	t.Parallel()

	lattice := newCapabilityLattice()
	set := lattice.newCapabilitySet([]ast.CallerCapability{
		{Identifier: ast.Identifier{Identifier: "admin"}},
		{Identifier: ast.Identifier{Identifier: ast.AnyCapability}},
		{Identifier: ast.Identifier{Identifier: "owner"}},
	})

	assert.True(t, set.IsAny())
	assert.Equal(t, []string{ast.AnyCapability}, set.Names(lattice))
}

func TestCapabilitySetAcceptsIntersectingNames(t *testing.T) {
	t.Parallel()

	lattice := newCapabilityLattice()
	declared := lattice.newCapabilitySet([]ast.CallerCapability{
		{Identifier: ast.Identifier{Identifier: "admin"}},
		{Identifier: ast.Identifier{Identifier: "owner"}},
	})
	caller := lattice.newCapabilitySet([]ast.CallerCapability{
		{Identifier: ast.Identifier{Identifier: "owner"}},
	})
	stranger := lattice.newCapabilitySet([]ast.CallerCapability{
		{Identifier: ast.Identifier{Identifier: "stranger"}},
	})

	assert.True(t, declared.Accepts(caller))
	assert.False(t, declared.Accepts(stranger))
}

func TestCapabilitySetAnyAcceptsEverything(t *testing.T) {
	t.Parallel()

	lattice := newCapabilityLattice()
	any := lattice.newCapabilitySet([]ast.CallerCapability{
		{Identifier: ast.Identifier{Identifier: ast.AnyCapability}},
	})
	stranger := lattice.newCapabilitySet([]ast.CallerCapability{
		{Identifier: ast.Identifier{Identifier: "stranger"}},
	})

	assert.True(t, any.Accepts(stranger))
	assert.True(t, stranger.Accepts(any))
}

func TestCapabilitySetContains(t *testing.T) {
	t.Parallel()

	lattice := newCapabilityLattice()
	set := lattice.newCapabilitySet([]ast.CallerCapability{
		{Identifier: ast.Identifier{Identifier: "admin"}},
	})

	assert.True(t, set.Contains("admin", lattice))
	assert.False(t, set.Contains("owner", lattice))
}
