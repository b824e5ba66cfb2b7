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

// RawType is the sum type of raw (unresolved) source-level types produced
// by the parser. Exactly one of the concrete types below is ever stored
// behind this interface; the canonical typer (package types) is what
// eventually resolves one of these to a canonical target form.
type RawType interface {
	HasPosition
	isRawType()
	String() string
}

// BasicTypeKind enumerates the source language's built-in scalar types.
type BasicTypeKind int

const (
	BasicTypeAddress BasicTypeKind = iota
	BasicTypeInt
	BasicTypeBool
	BasicTypeString
)

func (k BasicTypeKind) String() string {
	switch k {
	case BasicTypeAddress:
		return "Address"
	case BasicTypeInt:
		return "Int"
	case BasicTypeBool:
		return "Bool"
	case BasicTypeString:
		return "String"
	default:
		return "?"
	}
}

// BasicType is one of the four built-in scalar raw types.
type BasicType struct {
	Kind BasicTypeKind
	Range
}

func (*BasicType) isRawType() {}

func (t *BasicType) String() string {
	return t.Kind.String()
}

// UserDefinedType names a contract, currency, or plain struct type declared
// elsewhere in the module.
type UserDefinedType struct {
	Identifier Identifier
}

func (*UserDefinedType) isRawType() {}

func (t *UserDefinedType) StartPosition() Position { return t.Identifier.StartPosition() }
func (t *UserDefinedType) EndPosition() Position   { return t.Identifier.EndPosition() }

func (t *UserDefinedType) String() string {
	return t.Identifier.Identifier
}

// InoutType marks a parameter type as passed by mutable reference; the
// canonical typer strips it down to its pointee (spec 4.1), and call-site
// lowering reintroduces the mutable reference wrapper (spec 4.4).
type InoutType struct {
	Type RawType
	Range
}

func (*InoutType) isRawType() {}

func (t *InoutType) String() string {
	return "inout " + t.Type.String()
}

// FixedArrayType is a fixed-size array raw type, e.g. "Int[4]".
type FixedArrayType struct {
	Type RawType
	Size int
	Range
}

func (*FixedArrayType) isRawType() {}

func (t *FixedArrayType) String() string {
	return t.Type.String() + "[...]"
}

// ArrayType is a variable-size array raw type, e.g. "Int[]".
type ArrayType struct {
	Type RawType
	Range
}

func (*ArrayType) isRawType() {}

func (t *ArrayType) String() string {
	return t.Type.String() + "[]"
}

// DictionaryType maps a key raw type to a value raw type, e.g. "[Address: Int]".
type DictionaryType struct {
	KeyType   RawType
	ValueType RawType
	Range
}

func (*DictionaryType) isRawType() {}

func (t *DictionaryType) String() string {
	return "[" + t.KeyType.String() + ": " + t.ValueType.String() + "]"
}
