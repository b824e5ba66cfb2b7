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

package ast

// Identifier is a name occurring in source, together with the position of
// its first character.
type Identifier struct {
	Identifier string
	Pos        Position
}

func (i Identifier) StartPosition() Position {
	return i.Pos
}

func (i Identifier) EndPosition() Position {
	length := len(i.Identifier)
	if length == 0 {
		return i.Pos
	}
	return i.Pos.Shifted(length - 1)
}

func (i Identifier) String() string {
	return i.Identifier
}

// CallerCapability is a single named capability appearing in a behavior
// block's guard list. The reserved name "any" is the universal
// super-capability: the top element of the capability lattice.
type CallerCapability struct {
	Identifier Identifier
}

const AnyCapability = "any"

func (c CallerCapability) IsAny() bool {
	return c.Identifier.Identifier == AnyCapability
}

func (c CallerCapability) StartPosition() Position {
	return c.Identifier.StartPosition()
}

func (c CallerCapability) EndPosition() Position {
	return c.Identifier.EndPosition()
}
