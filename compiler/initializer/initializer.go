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

// Package initializer synthesizes a contract's new/publish/get procedure
// trio from its init body (spec 4.6): the two-phase staged-field-assignment
// and struct-construction algorithm that turns field-by-field assignment
// statements into a single resource value.
package initializer

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/flintlang/flintc/ast"
	"github.com/flintlang/flintc/compiler"
	"github.com/flintlang/flintc/config"
	"github.com/flintlang/flintc/diagnostics"
	"github.com/flintlang/flintc/environment"
	"github.com/flintlang/flintc/ir"
)

// Procedures is the synthesized trio attached to the module in place of the
// source initializer (spec 4.6).
type Procedures struct {
	New     *ir.Procedure
	Publish *ir.Procedure
	Get     *ir.Procedure
}

// Lower synthesizes New/Publish/Get from decl, the contract's parsed
// initializer, under the caller-capability guard its behavior block
// declares.
func Lower(decl *ast.SpecialDeclaration, contract *compiler.ContractInfo, env *environment.Environment, cfg config.Config, capabilities *environment.CapabilitySet, sink *diagnostics.Sink) *Procedures {
	fc := compiler.NewConstructorContext(contract, env, cfg, capabilities, sink)

	var params []ir.Parameter
	for _, p := range decl.Parameters {
		if param, ok := fc.DeclareParameter(p); ok {
			params = append(params, param)
		}
	}

	var body []ir.Statement
	for _, field := range contract.Fields {
		body = append(body, &ir.Declaration{Name: compiler.StagingSlotName(field.Name), Type: field.Rendered})
	}

	unassigned := bitset.New(uint(len(contract.Fields)))
	for i := range contract.Fields {
		unassigned.Set(uint(i))
	}

	consumed := 0
	for _, stmt := range decl.Body {
		body = append(body, fc.LowerTopLevelStatement(stmt)...)
		consumed++
		if name, ok := assignedField(stmt, contract); ok {
			if idx, ok := fieldIndex(contract, name); ok {
				unassigned.Clear(idx)
			}
		}
		if unassigned.None() {
			break
		}
	}

	remaining := decl.Body[consumed:]
	constructor := buildConstructor(contract)

	var newBody []ir.Statement
	if len(remaining) == 0 {
		if unassigned.Any() {
			sink.Report(&diagnostics.Diagnostic{
				Kind:    diagnostics.KindInitializerIncomplete,
				Message: missingFieldsMessage(contract, unassigned),
				Range:   ast.NewRangeFromPositioned(decl, decl),
			})
		}
		newBody = append(body, fc.EmitReleaseReferences()...)
		newBody = append(newBody, &ir.Return{Value: constructor})
	} else {
		// Prepend at position zero, per spec 4.6 Phase B: `self` must be
		// declared before any statement already in the buffer that holds a
		// reference whose release is deferred to function exit.
		newBody = append([]ir.Statement{&ir.Declaration{Name: "self", Type: "Self.T"}}, body...)
		newBody = append(newBody, &ir.Assignment{Target: "self", Value: constructor})
		fc.BindSelf()
		for _, stmt := range remaining {
			newBody = append(newBody, fc.LowerTopLevelStatement(stmt)...)
		}
		newBody = append(newBody, fc.EmitReleaseReferences()...)
		newBody = append(newBody, &ir.Return{Value: &ir.Move{Inner: &ir.Identifier{Name: "self"}}})
	}

	newProc := &ir.Procedure{Name: "new", Parameters: params, ResultType: "Self.T", Body: newBody}

	return &Procedures{
		New:     newProc,
		Publish: buildPublish(params),
		Get:     buildGet(),
	}
}

// buildConstructor is the `struct T { f1: move(staging_f1), ... }`
// expression of spec 4.6 Phase B.
func buildConstructor(contract *compiler.ContractInfo) *ir.StructConstructor {
	fields := make([]ir.FieldValue, 0, len(contract.Fields))
	for _, field := range contract.Fields {
		fields = append(fields, ir.FieldValue{
			Name:  field.Name,
			Value: &ir.Move{Inner: &ir.Identifier{Name: compiler.StagingSlotName(field.Name)}},
		})
	}
	return &ir.StructConstructor{Type: contract.Name, Fields: fields}
}

// buildPublish emits `public publish(<params>) { move_to_sender<T>(Self.new(<args>)); return; }`.
func buildPublish(params []ir.Parameter) *ir.Procedure {
	args := make([]ir.Expression, 0, len(params))
	for _, p := range params {
		args = append(args, &ir.Identifier{Name: p.Name})
	}
	construct := &ir.Call{Target: "Self.new", Arguments: args}
	publishCall := &ir.Call{Target: "move_to_sender<T>", Arguments: []ir.Expression{construct}}
	return &ir.Procedure{
		Public:     true,
		Name:       "publish",
		Parameters: params,
		Body: []ir.Statement{
			&ir.ExpressionStatement{Expression: publishCall},
			&ir.Return{},
		},
	}
}

// buildGet emits `public get(addr: address): &mut Self.T { return borrow_global<T>(move(addr)); }`.
func buildGet() *ir.Procedure {
	addr := "local_addr"
	return &ir.Procedure{
		Public:     true,
		Name:       "get",
		Parameters: []ir.Parameter{{Name: addr, Type: "address"}},
		ResultType: "&mut Self.T",
		Body: []ir.Statement{
			&ir.Return{Value: &ir.Call{
				Target:    "borrow_global<T>",
				Arguments: []ir.Expression{&ir.Move{Inner: &ir.Identifier{Name: addr}}},
			}},
		},
	}
}

// assignedField reports the contract field name one statement assigns at
// top level, if any (spec 4.6 Phase A: a bare identifier naming a field, or
// `self.<field>`).
func assignedField(stmt ast.Statement, contract *compiler.ContractInfo) (string, bool) {
	exprStmt, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		return "", false
	}
	binary, ok := exprStmt.Expression.(*ast.BinaryExpression)
	if !ok || binary.Operator != ast.OperatorAssign {
		return "", false
	}

	switch lhs := binary.Left.(type) {
	case *ast.IdentifierExpression:
		if _, ok := contract.FieldByName(lhs.Identifier.Identifier); ok {
			return lhs.Identifier.Identifier, true
		}

	case *ast.BinaryExpression:
		if lhs.Operator != ast.OperatorDot {
			return "", false
		}
		if _, ok := lhs.Left.(*ast.SelfExpression); !ok {
			return "", false
		}
		if ident, ok := lhs.Right.(*ast.IdentifierExpression); ok {
			if _, ok := contract.FieldByName(ident.Identifier.Identifier); ok {
				return ident.Identifier.Identifier, true
			}
		}
	}
	return "", false
}

func fieldIndex(contract *compiler.ContractInfo, name string) (uint, bool) {
	for i, field := range contract.Fields {
		if field.Name == name {
			return uint(i), true
		}
	}
	return 0, false
}

func missingFieldsMessage(contract *compiler.ContractInfo, unassigned *bitset.BitSet) string {
	var names []string
	for i, field := range contract.Fields {
		if unassigned.Test(uint(i)) {
			names = append(names, field.Name)
		}
	}
	return fmt.Sprintf("initializer is incomplete: field(s) %s never assigned", strings.Join(names, ", "))
}
