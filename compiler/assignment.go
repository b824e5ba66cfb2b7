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

package compiler

import (
	"github.com/flintlang/flintc/ast"
	"github.com/flintlang/flintc/diagnostics"
	"github.com/flintlang/flintc/ir"
	"github.com/flintlang/flintc/types"
)

// lowerAssignment implements spec 4.5's four cases, chosen by the shape
// of the `=` operator's left-hand side. Assignment only ever appears as a
// top-level expression statement in this grammar (spec 6), so it lowers
// directly to an ir.Statement rather than threading through
// lowerExpression.
func (fc *FunctionContext) lowerAssignment(e *ast.BinaryExpression) ir.Statement {
	switch lhs := e.Left.(type) {
	case *ast.VariableDeclarationExpression:
		return fc.lowerDeclarationAssignment(lhs, e.Right)

	case *ast.IdentifierExpression:
		if _, isLocal := fc.Lookup(lhs.Identifier.Identifier); isLocal {
			return fc.lowerLocalAssignment(lhs, e.Right)
		}
		return fc.lowerPropertyAssignment(lhs, e.Right)

	case *ast.BinaryExpression:
		if lhs.Operator == ast.OperatorDot {
			return fc.lowerPropertyAssignment(lhs, e.Right)
		}
		diagnostics.Unreachable("assignment with non-dot binary left-hand side")
		return nil

	default:
		diagnostics.Unreachable("assignment with unrecognized left-hand side shape")
		return nil
	}
}

// lowerDeclarationAssignment is case 1: `let/var name[: T] = rhs`. A
// shadow-assignment - the rhs is a bare identifier that mangles to the same
// target as the freshly declared lhs - emits noop instead, per spec 8's
// idempotence law. The comparison is structural (the pre-wrap mangled
// name), not the rendered rhs text: an ordinary read of a local is always
// wrapped in move/copy by lowerExpression, so two equal bare names would
// otherwise never compare textually equal once lowered.
func (fc *FunctionContext) lowerDeclarationAssignment(lhs *ast.VariableDeclarationExpression, rhs ast.Expression) ir.Statement {
	decl := lhs.Declaration
	canonical, ok := types.CanonicalType(decl.Type, fc.Env, fc.Config)
	if !ok && decl.Type != nil {
		fc.fatal(diagnostics.KindUnknownType,
			"unknown type in declaration of \""+decl.Identifier.Identifier+"\": "+decl.Type.String(),
			ast.NewRangeFromPositioned(decl, decl.Type))
	}
	if ok && decl.Type != nil {
		reportCollectionCollapse(fc.Sink, fc.Config, decl.Type,
			"declaration of \""+decl.Identifier.Identifier+"\"",
			ast.NewRangeFromPositioned(decl, decl.Type))
	}

	target := localMangle(decl.Identifier.Identifier)

	if fc.isShadowOf(rhs, target) {
		fc.Declare(decl.Identifier.Identifier, canonical, target)
		return &ir.ExpressionStatement{Expression: &ir.Noop{}}
	}

	// Lower the right-hand side before the new binding is declared, so
	// `let a = a.field` (not a shadow) still reads the outer `a`.
	rhsExpr := fc.lowerExpression(rhs, canonical.Category == types.Resource)
	fc.Declare(decl.Identifier.Identifier, canonical, target)

	return &ir.Declaration{
		Name:  target,
		Type:  types.Render(canonical, fc.Contract.Name),
		Value: rhsExpr,
	}
}

// isShadowOf reports whether rhs is a bare reference to a local already
// mangled to target - the "both sides mangle to the same name" case of
// spec 8.
func (fc *FunctionContext) isShadowOf(rhs ast.Expression, target string) bool {
	ident, ok := rhs.(*ast.IdentifierExpression)
	if !ok {
		return false
	}
	l, ok := fc.Lookup(ident.Identifier.Identifier)
	return ok && l.target == target
}

// lowerLocalAssignment is case 2: a bare local identifier, `name = rhs`.
func (fc *FunctionContext) lowerLocalAssignment(lhs *ast.IdentifierExpression, rhs ast.Expression) ir.Statement {
	l, _ := fc.Lookup(lhs.Identifier.Identifier)
	value := fc.lowerExpression(rhs, l.canonical.Category == types.Resource)
	return &ir.Assignment{Target: l.target, Value: value}
}

// lowerPropertyAssignment is cases 3 and 4: the left-hand side is reified
// to its textual l-value (a parameter-rooted path in a struct function, or
// a self/storage path in a contract function) and used as the assignment
// target. The l-value path itself is never wrapped in move/copy - only the
// right-hand side is, per the canonical type of what is being assigned into.
func (fc *FunctionContext) lowerPropertyAssignment(lhs ast.Expression, rhs ast.Expression) ir.Statement {
	canonical := fc.canonicalOfLValue(lhs)
	targetExpr := fc.lowerLValue(lhs)
	value := fc.lowerExpression(rhs, canonical.Category == types.Resource)
	return &ir.Assignment{Target: targetExpr.String(), Value: value}
}

// lowerLValue reifies an assignment target to its textual path, bypassing
// the move/copy wrapping lowerExpression applies to ordinary (r-value)
// reads of the same path (spec 4.5: "lowering LHS as an l-value, which
// resolves to a mutable-reference projection into storage").
func (fc *FunctionContext) lowerLValue(lhs ast.Expression) ir.Expression {
	switch e := lhs.(type) {
	case *ast.IdentifierExpression:
		if l, ok := fc.Lookup(e.Identifier.Identifier); ok {
			return &ir.Identifier{Name: l.target}
		}
		if field, ok := fc.Contract.FieldByName(e.Identifier.Identifier); ok {
			return fc.lowerFieldAccess(field)
		}
		fc.fatal(diagnostics.KindUnresolvedReference,
			"unresolved reference \""+e.Identifier.Identifier+"\""+suggestionFor(e.Identifier.Identifier, fc),
			ast.NewRangeFromPositioned(e.Identifier, e.Identifier))
		return &ir.Identifier{Name: e.Identifier.Identifier}

	case *ast.BinaryExpression:
		if e.Operator == ast.OperatorDot {
			if _, ok := e.Left.(*ast.SelfExpression); ok {
				if ident, ok := e.Right.(*ast.IdentifierExpression); ok {
					if field, ok := fc.Contract.FieldByName(ident.Identifier.Identifier); ok {
						return fc.lowerFieldAccess(field)
					}
				}
			}
			if ident, ok := e.Right.(*ast.IdentifierExpression); ok {
				return &ir.FieldProjection{Base: fc.lowerExpression(e.Left, false), Field: ident.Identifier.Identifier}
			}
		}
		diagnostics.Unreachable("assignment l-value with unrecognized binary shape")
		return nil

	default:
		diagnostics.Unreachable("assignment l-value with unrecognized shape")
		return nil
	}
}

// canonicalOfLValue infers the canonical type of an assignment target for
// the move/copy choice on its right-hand side (spec 4.5: "the canonical
// type is inferred from the declaration registry").
func (fc *FunctionContext) canonicalOfLValue(lhs ast.Expression) types.Canonical {
	switch e := lhs.(type) {
	case *ast.IdentifierExpression:
		if l, ok := fc.Lookup(e.Identifier.Identifier); ok {
			return l.canonical
		}
		if field, ok := fc.Contract.FieldByName(e.Identifier.Identifier); ok {
			return field.Canonical
		}
	case *ast.BinaryExpression:
		if e.Operator == ast.OperatorDot {
			if ident, ok := e.Right.(*ast.IdentifierExpression); ok {
				if field, ok := fc.Contract.FieldByName(ident.Identifier.Identifier); ok {
					return field.Canonical
				}
			}
		}
	}
	return types.Canonical{Category: types.U64}
}
