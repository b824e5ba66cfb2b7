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
)

// LowerBlock lowers an ordinary (non-initializer) statement list in
// source order (spec 5: "Emission order matches source order for
// non-initializer bodies"), releasing every pending storage borrow before
// each return and at an implicit function exit.
func (fc *FunctionContext) LowerBlock(statements []ast.Statement) []ir.Statement {
	var out []ir.Statement
	explicitReturn := false
	for _, stmt := range statements {
		lowered := fc.lowerStatement(stmt)
		out = append(out, lowered...)
		if _, ok := stmt.(*ast.ReturnStatement); ok {
			explicitReturn = true
		}
	}
	if !explicitReturn {
		out = append(out, fc.EmitReleaseReferences()...)
	}
	return out
}

// lowerStatement lowers one AST statement, returning possibly more than
// one ir.Statement (a ReturnStatement expands to its preceding release
// operations followed by the return itself).
func (fc *FunctionContext) lowerStatement(s ast.Statement) []ir.Statement {
	switch stmt := s.(type) {
	case *ast.ExpressionStatement:
		return []ir.Statement{fc.lowerExpressionStatement(stmt)}

	case *ast.ReturnStatement:
		var out []ir.Statement
		var value ir.Expression
		if stmt.Expression != nil {
			value = fc.lowerExpression(stmt.Expression, fc.returnValueIsResource())
		}
		out = append(out, fc.EmitReleaseReferences()...)
		out = append(out, &ir.Return{Value: value})
		return out

	case *ast.IfStatement:
		return []ir.Statement{&ir.If{
			Condition: fc.lowerExpression(stmt.Condition, false),
			Then:      fc.lowerScopedBlock(stmt.Then),
			Else:      fc.lowerOptionalScopedBlock(stmt.Else),
		}}

	default:
		diagnostics.Unreachable("unhandled statement variant in lowerStatement")
		return nil
	}
}

// returnValueIsResource always reports true, so a returned expression is
// lowered as consuming; wrapValue then moves a returned local or field only
// when its own canonical type is a resource, and copies it otherwise.
func (fc *FunctionContext) returnValueIsResource() bool {
	return true
}

func (fc *FunctionContext) lowerExpressionStatement(stmt *ast.ExpressionStatement) ir.Statement {
	if binary, ok := stmt.Expression.(*ast.BinaryExpression); ok && binary.Operator == ast.OperatorAssign {
		return fc.lowerAssignment(binary)
	}
	return &ir.ExpressionStatement{Expression: fc.lowerExpression(stmt.Expression, false)}
}

func (fc *FunctionContext) lowerScopedBlock(statements []ast.Statement) []ir.Statement {
	fc.PushScope()
	defer fc.PopScope()
	var out []ir.Statement
	for _, stmt := range statements {
		out = append(out, fc.lowerStatement(stmt)...)
	}
	return out
}

func (fc *FunctionContext) lowerOptionalScopedBlock(statements []ast.Statement) []ir.Statement {
	if statements == nil {
		return nil
	}
	return fc.lowerScopedBlock(statements)
}
