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
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/flintlang/flintc/ast"
)

// capabilityLattice assigns a stable bit index to every named capability
// declared anywhere in the module, so that a CapabilitySet can be a
// bitset.BitSet rather than a []string (spec 9: "any" is the top element
// of the capability lattice).
type capabilityLattice struct {
	index map[string]uint
}

func newCapabilityLattice() *capabilityLattice {
	return &capabilityLattice{index: map[string]uint{}}
}

func (l *capabilityLattice) bitFor(name string) uint {
	if bit, ok := l.index[name]; ok {
		return bit
	}
	bit := uint(len(l.index))
	l.index[name] = bit
	return bit
}

// CapabilitySet is a set of caller capabilities in effect at some point in
// the module: either a finite set of named capabilities, or the universal
// "any" (the lattice's top element).
type CapabilitySet struct {
	any  bool
	bits *bitset.BitSet
}

// newCapabilitySet builds a CapabilitySet from a behavior block's guard
// list (spec 3). Per DESIGN.md's "any in nested behavior blocks" decision,
// a guard list containing "any" alongside other names is normalized to the
// universal set.
func (l *capabilityLattice) newCapabilitySet(capabilities []ast.CallerCapability) *CapabilitySet {
	set := &CapabilitySet{bits: bitset.New(0)}
	for _, c := range capabilities {
		if c.IsAny() {
			set.any = true
			continue
		}
		set.bits.Set(l.bitFor(c.Identifier.Identifier))
	}
	return set
}

// Contains reports whether name is accepted by this capability set: either
// the set is the universal "any", or name was explicitly declared in it.
func (s *CapabilitySet) Contains(name string, l *capabilityLattice) bool {
	if s.any {
		return true
	}
	bit, ok := l.index[name]
	if !ok {
		return false
	}
	return s.bits.Test(bit)
}

func (s *CapabilitySet) IsAny() bool {
	return s.any
}

// Accepts implements the capability-widening law of spec 8: a call made
// under capability context `caller` is accepted by a callee declaring
// `s` iff `s` is "any" or `caller` itself is "any" or their explicit names
// intersect.
func (s *CapabilitySet) Accepts(caller *CapabilitySet) bool {
	if s.any || caller.any {
		return true
	}
	return s.bits.IntersectionCardinality(caller.bits) > 0
}

// Names returns the explicit (non-"any") capability names in this set, in
// lattice bit order - used only for diagnostics (e.g. listing the accepted
// capabilities of a rejected call).
func (s *CapabilitySet) Names(l *capabilityLattice) []string {
	if s.any {
		return []string{ast.AnyCapability}
	}
	var names []string
	for name, bit := range l.index {
		if s.bits.Test(bit) {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool { return l.index[names[i]] < l.index[names[j]] })
	return names
}
