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

// DeclarationKeyword distinguishes `var` (mutable) from `let` (constant)
// bindings, when present. A VariableDeclaration used as a field inside a
// ContractDeclaration carries no keyword.
type DeclarationKeyword int

const (
	DeclarationKeywordNone DeclarationKeyword = iota
	DeclarationKeywordVar
	DeclarationKeywordLet
)

// Modifier is a source-level modifier on a function or variable
// declaration, e.g. "public" or "mutating".
type Modifier int

const (
	ModifierPublic Modifier = iota
	ModifierMutating
)

// VariableDeclaration declares a name of a given raw type: a contract
// field, a function parameter, or a local.
type VariableDeclaration struct {
	Keyword     DeclarationKeyword
	Modifiers   []Modifier
	Identifier  Identifier
	Type        RawType
	StartPos    Position
}

func (d *VariableDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *VariableDeclaration) EndPosition() Position {
	if d.Type != nil {
		return d.Type.EndPosition()
	}
	return d.Identifier.EndPosition()
}

// Parameter is a single function parameter: name plus raw type.
type Parameter struct {
	Identifier Identifier
	Type       RawType
}

func (p Parameter) StartPosition() Position { return p.Identifier.StartPosition() }
func (p Parameter) EndPosition() Position   { return p.Type.EndPosition() }

// FunctionDeclaration is an ordinary named function inside a behavior
// block.
type FunctionDeclaration struct {
	Modifiers  []Modifier
	Identifier Identifier
	Parameters []Parameter
	ResultType RawType // nil if the function returns nothing
	Body       []Statement
	StartPos   Position
	EndPos     Position
}

func (d *FunctionDeclaration) StartPosition() Position { return d.StartPos }
func (d *FunctionDeclaration) EndPosition() Position   { return d.EndPos }

func (d *FunctionDeclaration) IsPublic() bool {
	return hasModifier(d.Modifiers, ModifierPublic)
}

func (d *FunctionDeclaration) IsMutating() bool {
	return hasModifier(d.Modifiers, ModifierMutating)
}

// SpecialDeclaration is the contract's initializer ("init"). It has no
// result type and no user-chosen identifier; the parser consumes the
// "init" name without recording it.
type SpecialDeclaration struct {
	Modifiers  []Modifier
	Parameters []Parameter
	Body       []Statement
	StartPos   Position
	EndPos     Position
}

func (d *SpecialDeclaration) StartPosition() Position { return d.StartPos }
func (d *SpecialDeclaration) EndPosition() Position   { return d.EndPos }

func (d *SpecialDeclaration) IsMutating() bool {
	return hasModifier(d.Modifiers, ModifierMutating)
}

func hasModifier(modifiers []Modifier, m Modifier) bool {
	for _, candidate := range modifiers {
		if candidate == m {
			return true
		}
	}
	return false
}

// ContractDeclaration declares a contract's persistent state. Field
// declaration order is storage order (spec 3, invariant 1).
type ContractDeclaration struct {
	Identifier Identifier
	Fields     []*VariableDeclaration
	StartPos   Position
	EndPos     Position
}

func (d *ContractDeclaration) StartPosition() Position { return d.StartPos }
func (d *ContractDeclaration) EndPosition() Position   { return d.EndPos }

// ContractBehaviorDeclaration binds a group of functions (and, at most
// once per contract, the initializer) to a caller-capability guard list.
type ContractBehaviorDeclaration struct {
	ContractIdentifier Identifier
	CallerCapabilities  []CallerCapability
	FunctionDeclarations []*FunctionDeclaration
	SpecialDeclarations   []*SpecialDeclaration
	StartPos              Position
	EndPos                Position
}

func (d *ContractBehaviorDeclaration) StartPosition() Position { return d.StartPos }
func (d *ContractBehaviorDeclaration) EndPosition() Position   { return d.EndPos }

// HasAny reports whether the guard list, as parsed, names the universal
// capability. The environment build phase normalizes "any" in its own
// CapabilitySet and leaves this list unchanged.
func (d *ContractBehaviorDeclaration) HasAny() bool {
	for _, c := range d.CallerCapabilities {
		if c.IsAny() {
			return true
		}
	}
	return false
}

// TopLevelModule is the root of a compilation unit: exactly one contract
// declaration and an ordered list of behavior declarations (spec 3).
type TopLevelModule struct {
	Contract  *ContractDeclaration
	Behaviors []*ContractBehaviorDeclaration
}
