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

// Package types is the canonical typer (spec 4.1): it maps a source
// ast.RawType, plus an environment handle, to one of the six target
// categories, and renders a canonical type back out to target-IR text.
package types

import (
	"fmt"

	"github.com/flintlang/flintc/ast"
	"github.com/flintlang/flintc/config"
	"github.com/flintlang/flintc/diagnostics"
)

// EnvironmentHandle is the read-only slice of environment.Environment the
// canonical typer needs: whether a user-defined name is a declared
// contract or a currency type. Kept as an interface so this package never
// imports environment (the dependency runs the other way: environment's
// FunctionInfo carries ast.RawType, not types.Canonical).
type EnvironmentHandle interface {
	IsDeclaredContract(name string) bool
	IsCurrencyType(name string) bool
}

// Category is the six-way classification of spec 4.1.
type Category int

const (
	U64 Category = iota
	Address
	Bool
	ByteArray
	Resource
	Struct
)

// Canonical is the result of classifying one RawType: a Category, plus the
// user-defined name for Resource/Struct (empty otherwise).
type Canonical struct {
	Category Category
	Name     string
}

func primitive(c Category) Canonical { return Canonical{Category: c} }

// CanonicalType implements spec 4.1's classification rules. It returns
// ok=false for any raw type the typer refuses, which the caller converts
// to a fatal translation error (diagnostics.KindUnknownType) referencing
// the source location that produced t.
func CanonicalType(t ast.RawType, env EnvironmentHandle, cfg config.Config) (Canonical, bool) {
	switch rt := t.(type) {
	case *ast.BasicType:
		switch rt.Kind {
		case ast.BasicTypeAddress:
			return primitive(Address), true
		case ast.BasicTypeInt:
			return primitive(U64), true
		case ast.BasicTypeBool:
			return primitive(Bool), true
		case ast.BasicTypeString:
			return primitive(ByteArray), true
		}
		return Canonical{}, false

	case *ast.UserDefinedType:
		name := rt.Identifier.Identifier
		if env.IsCurrencyType(name) || env.IsDeclaredContract(name) {
			return Canonical{Category: Resource, Name: name}, true
		}
		return Canonical{Category: Struct, Name: name}, true

	case *ast.InoutType:
		// inout-ness is reintroduced downstream as a mutable reference
		// wrapper at the call site; the canonical type is the pointee's.
		return CanonicalType(rt.Type, env, cfg)

	case *ast.FixedArrayType:
		return collectionElement(rt.Type, env, cfg)

	case *ast.ArrayType:
		return collectionElement(rt.Type, env, cfg)

	case *ast.DictionaryType:
		return collectionElement(rt.KeyType, env, cfg)

	default:
		return Canonical{}, false
	}
}

// collectionElement applies the repository's Open-Question decision
// (SPEC_FULL.md Sec 11) for array/fixedArray/dictionary: Reject refuses the
// type outright; Collapse falls back to spec 4.1's literal element/key
// collapse, the caller being responsible for attaching the accompanying
// warning diagnostic.
func collectionElement(element ast.RawType, env EnvironmentHandle, cfg config.Config) (Canonical, bool) {
	if cfg.Collections == config.Reject {
		return Canonical{}, false
	}
	return CanonicalType(element, env, cfg)
}

// Render renders a Canonical to its target-IR type text (spec 4.1's
// rendering table). enclosingType is the contract currently being
// compiled, for the `Self.T` substitution.
func Render(c Canonical, enclosingType string) string {
	switch c.Category {
	case Address:
		return "address"
	case U64:
		return "u64"
	case Bool:
		return "bool"
	case ByteArray:
		return "bytearray"
	case Struct:
		return fmt.Sprintf("Self.%s", c.Name)
	case Resource:
		if c.Name == enclosingType {
			return "Self.T"
		}
		return fmt.Sprintf("%s.T", c.Name)
	default:
		diagnostics.Unreachable("unhandled canonical type category in Render")
		return ""
	}
}
