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

// localMangle is the "mangled by name alone" rule of spec 4.2 for plain
// local variables - distinct from environment.Mangle's capability/
// signature-aware scheme for functions, so a local can never collide with
// a mangled function identifier.
func localMangle(name string) string {
	return "local_" + name
}

var infixOperators = map[ast.BinaryOperator]string{
	ast.OperatorEqualEqual:        "==",
	ast.OperatorNotEqual:          "!=",
	ast.OperatorLessThan:          "<",
	ast.OperatorLessThanOrEqual:   "<=",
	ast.OperatorGreaterThan:       ">",
	ast.OperatorGreaterThanOrEqual: ">=",
	ast.OperatorPlus:              "+",
	ast.OperatorMinus:             "-",
	ast.OperatorTimes:             "*",
	ast.OperatorDivide:            "/",
}

// lowerExpression lowers one AST expression (spec 4.3). consuming marks a
// value-consuming usage context (e.g. a function argument, a struct
// constructor field, the return expression) which forces a resource-typed
// result to be wrapped in move rather than copy.
func (fc *FunctionContext) lowerExpression(expr ast.Expression, consuming bool) ir.Expression {
	switch e := expr.(type) {
	case *ast.IdentifierExpression:
		return fc.lowerIdentifier(e, consuming)

	case *ast.BinaryExpression:
		if e.Operator == ast.OperatorAssign {
			diagnostics.Unreachable("assignment lowered outside a top-level expression statement")
		}
		if e.Operator == ast.OperatorDot {
			return fc.lowerDot(e, consuming)
		}
		text, ok := infixOperators[e.Operator]
		if !ok {
			diagnostics.Unreachable("binary expression with non-operator token")
		}
		return &ir.Infix{
			Operator: text,
			Left:     fc.lowerExpression(e.Left, false),
			Right:    fc.lowerExpression(e.Right, false),
		}

	case *ast.LiteralExpression:
		return lowerLiteral(e)

	case *ast.CallExpression:
		return fc.lowerCall(e)

	case *ast.SelfExpression:
		return fc.lowerSelf()

	case *ast.VariableDeclarationExpression:
		return fc.lowerVariableDeclarationExpression(e)

	case *ast.BracketedExpression:
		return fc.lowerExpression(e.Expression, consuming)

	default:
		diagnostics.Unreachable("unhandled expression variant in lowerExpression")
		return nil
	}
}

func lowerLiteral(e *ast.LiteralExpression) ir.Expression {
	switch e.Kind {
	case ast.LiteralInt:
		return &ir.Literal{Kind: ir.LiteralU64, Value: e.Value}
	case ast.LiteralAddress:
		return &ir.Literal{Kind: ir.LiteralAddress, Value: e.Value}
	case ast.LiteralBool:
		return &ir.Literal{Kind: ir.LiteralBool, Value: e.Value}
	case ast.LiteralString:
		return &ir.Literal{Kind: ir.LiteralByteArray, Value: e.Value}
	default:
		diagnostics.Unreachable("unhandled literal kind")
		return nil
	}
}

// lowerIdentifier implements spec 4.3's identifier contract: a contract
// field reads through storage; a local lowers to its mangled name, wrapped
// in move/copy depending on its canonical type and the usage context.
func (fc *FunctionContext) lowerIdentifier(e *ast.IdentifierExpression, consuming bool) ir.Expression {
	name := e.Identifier.Identifier

	if l, ok := fc.Lookup(name); ok {
		return wrapValue(&ir.Identifier{Name: l.target}, l.canonical, consuming)
	}

	if field, ok := fc.Contract.FieldByName(name); ok {
		projection := fc.lowerFieldAccess(field)
		return wrapValue(projection, field.Canonical, consuming)
	}

	fc.fatal(diagnostics.KindUnresolvedReference,
		"unresolved reference \""+name+"\""+suggestionFor(name, fc),
		ast.NewRangeFromPositioned(e.Identifier, e.Identifier))
	return &ir.Identifier{Name: name}
}

func suggestionFor(name string, fc *FunctionContext) string {
	hint := diagnostics.Suggest(name, fc.Env.VisibleNames())
	if hint == "" {
		return ""
	}
	return " (" + hint + ")"
}

// lowerFieldAccess lowers a bare reference to contract field `field`:
// inside the initializer's staging phase it is the staging local; once
// self is bound it is a projection off self; in an ordinary contract
// function it is a storage read and projection (spec 4.3).
func (fc *FunctionContext) lowerFieldAccess(field FieldInfo) ir.Expression {
	if fc.IsConstructor {
		if !fc.isSelfBound() {
			return &ir.Identifier{Name: stagingSlotName(field.Name)}
		}
		return &ir.FieldProjection{Base: &ir.Identifier{Name: "self"}, Field: field.Name}
	}

	token := fc.nextStorageToken()
	fc.Acquire(token)
	return &ir.FieldProjection{Base: &ir.StorageRead{Sender: senderIdentifier()}, Field: field.Name}
}

// stagingSlotName is the initializer's per-field staging local name (spec
// 4.6 Phase A: "Declare a staging local <prefix><field>").
func stagingSlotName(field string) string {
	return "flint_staging_" + field
}

// wrapValue applies spec 4.3's move/copy rule: a resource-typed value in a
// consuming usage context moves; everything else copies.
func wrapValue(e ir.Expression, canonical types.Canonical, consuming bool) ir.Expression {
	if consuming && canonical.Category == types.Resource {
		return &ir.Move{Inner: e}
	}
	return &ir.Copy{Inner: e}
}

func (fc *FunctionContext) lowerSelf() ir.Expression {
	if fc.IsConstructor && !fc.isSelfBound() {
		diagnostics.Unreachable("bare self referenced before construction in initializer")
	}
	return &ir.Identifier{Name: "self"}
}

// lowerDot implements the non-assignment half of spec 4.3's binary/dot
// contract: field projection when the RHS is a bare identifier, method
// call when it is a call expression.
func (fc *FunctionContext) lowerDot(e *ast.BinaryExpression, consuming bool) ir.Expression {
	if selfExpr, ok := e.Left.(*ast.SelfExpression); ok {
		_ = selfExpr
		if ident, ok := e.Right.(*ast.IdentifierExpression); ok {
			if field, ok := fc.Contract.FieldByName(ident.Identifier.Identifier); ok {
				return wrapValue(fc.lowerFieldAccess(field), field.Canonical, consuming)
			}
		}
	}

	switch rhs := e.Right.(type) {
	case *ast.IdentifierExpression:
		return &ir.FieldProjection{Base: fc.lowerExpression(e.Left, false), Field: rhs.Identifier.Identifier}
	case *ast.CallExpression:
		base := fc.lowerExpression(e.Left, false)
		call := fc.lowerCall(rhs)
		if concrete, ok := call.(*ir.Call); ok {
			return &ir.Call{Target: base.String() + "." + concrete.Target, Arguments: concrete.Arguments}
		}
		return call
	default:
		diagnostics.Unreachable("dot expression with unrecognized right-hand shape")
		return nil
	}
}

func (fc *FunctionContext) lowerVariableDeclarationExpression(e *ast.VariableDeclarationExpression) ir.Expression {
	decl := e.Declaration
	canonical, ok := types.CanonicalType(decl.Type, fc.Env, fc.Config)
	if !ok {
		fc.fatal(diagnostics.KindUnknownType,
			"unknown type in declaration of \""+decl.Identifier.Identifier+"\": "+decl.Type.String(),
			ast.NewRangeFromPositioned(decl, decl.Type))
		canonical = types.Canonical{Category: types.U64}
	} else {
		reportCollectionCollapse(fc.Sink, fc.Config, decl.Type,
			"declaration of \""+decl.Identifier.Identifier+"\"",
			ast.NewRangeFromPositioned(decl, decl.Type))
	}

	target := localMangle(decl.Identifier.Identifier)
	fc.Declare(decl.Identifier.Identifier, canonical, target)
	return &ir.Identifier{Name: target}
}
