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

// Package compiler is the statement/expression lowerer of spec 4.3-4.7: it
// walks a checked contract's AST and emits target ir nodes through a
// FunctionContext, one per lowered function.
package compiler

import (
	"github.com/flintlang/flintc/ast"
	"github.com/flintlang/flintc/config"
	"github.com/flintlang/flintc/diagnostics"
	"github.com/flintlang/flintc/environment"
	"github.com/flintlang/flintc/types"
)

// FieldInfo is one contract field, already classified by the canonical
// typer, in storage order.
type FieldInfo struct {
	Name      string
	Canonical types.Canonical
	Rendered  string
}

// ContractInfo is the per-contract context every FunctionContext in this
// compilation shares: its name (the enclosing type for Self.T
// substitution, spec 4.1) and its field registry.
type ContractInfo struct {
	Name   string
	Fields []FieldInfo
}

// FieldByName looks up a declared field by source name.
func (c *ContractInfo) FieldByName(name string) (FieldInfo, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldInfo{}, false
}

// NewContractInfo classifies every field of decl, reporting a Kind-2
// diagnostic for any field whose raw type the canonical typer refuses.
func NewContractInfo(decl *ast.ContractDeclaration, env *environment.Environment, cfg config.Config, sink *diagnostics.Sink) *ContractInfo {
	info := &ContractInfo{Name: decl.Identifier.Identifier}
	for _, field := range decl.Fields {
		canonical, ok := types.CanonicalType(field.Type, env, cfg)
		if !ok {
			sink.Report(&diagnostics.Diagnostic{
				Kind:    diagnostics.KindUnknownType,
				Message: "field \"" + field.Identifier.Identifier + "\" has a type the canonical typer does not accept: " + field.Type.String(),
				Range:   ast.NewRangeFromPositioned(field, field.Type),
			})
			continue
		}
		reportCollectionCollapse(sink, cfg, field.Type,
			"field \""+field.Identifier.Identifier+"\"",
			ast.NewRangeFromPositioned(field, field.Type))
		info.Fields = append(info.Fields, FieldInfo{
			Name:      field.Identifier.Identifier,
			Canonical: canonical,
			Rendered:  types.Render(canonical, info.Name),
		})
	}
	return info
}

func collectionKind(t ast.RawType) (ast.RawType, bool) {
	switch t.(type) {
	case *ast.ArrayType, *ast.FixedArrayType, *ast.DictionaryType:
		return t, true
	}
	return nil, false
}

// reportCollectionCollapse attaches the non-fatal collapse warning
// (SPEC_FULL.md Sec 11: "this mode emits a non-fatal diagnostic warning...
// so the behavior is never silent") whenever cfg.Collections collapses a
// collection-typed raw type. Every CanonicalType call site in this package
// must run its result through this check - the warning is a property of
// the classification, not of any one kind of declaration.
func reportCollectionCollapse(sink *diagnostics.Sink, cfg config.Config, t ast.RawType, subject string, r ast.Range) {
	if cfg.Collections != config.Collapse {
		return
	}
	if _, isCollection := collectionKind(t); !isCollection {
		return
	}
	sink.Report(&diagnostics.Diagnostic{
		Kind:    diagnostics.KindCollectionCollapseWarning,
		Message: subject + " collapses its collection type to its element/key type",
		Range:   r,
	})
}
