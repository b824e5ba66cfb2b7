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

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/flintlang/flintc/ast"
	"github.com/flintlang/flintc/diagnostics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseEmptyContract(t *testing.T) {

	t.Parallel()

	module, sink := Parse(`
        contract Empty {}
        Empty :: [any] {}
    `)

	require.False(t, sink.HasFatal())
	require.NotNil(t, module)

	assert.Equal(t, "Empty", module.Contract.Identifier.Identifier)
	assert.Empty(t, module.Contract.Fields)

	require.Len(t, module.Behaviors, 1)
	behavior := module.Behaviors[0]
	assert.True(t, behavior.HasAny())
	assert.Empty(t, behavior.FunctionDeclarations)
}

func TestParseOneFieldContractWithInitializer(t *testing.T) {

	t.Parallel()

	module, sink := Parse(`
        contract C { var x: Address }
        C :: [any] { public mutating func init(y: Address) { self.x = y } }
    `)

	require.False(t, sink.HasFatal())
	require.NotNil(t, module)

	require.Len(t, module.Contract.Fields, 1)
	field := module.Contract.Fields[0]
	assert.Equal(t, "x", field.Identifier.Identifier)
	assert.IsType(t, &ast.BasicType{}, field.Type)

	require.Len(t, module.Behaviors, 1)
	require.Len(t, module.Behaviors[0].SpecialDeclarations, 1)
	special := module.Behaviors[0].SpecialDeclarations[0]
	require.Len(t, special.Parameters, 1)
	assert.Equal(t, "y", special.Parameters[0].Identifier.Identifier)
	require.Len(t, special.Body, 1)
}

func TestParseOverloadedBehaviors(t *testing.T) {

	t.Parallel()

	module, sink := Parse(`
        contract C {}
        C :: [admin] { public func f() { } }
        C :: [any] { public func f() { } }
    `)

	require.False(t, sink.HasFatal())
	require.Len(t, module.Behaviors, 2)
	assert.Equal(t, "admin", module.Behaviors[0].CallerCapabilities[0].Identifier.Identifier)
	assert.True(t, module.Behaviors[1].HasAny())
}

func TestParseAssignmentIsLowestPrecedence(t *testing.T) {

	t.Parallel()

	module, sink := Parse(`
        contract C {}
        C :: [any] {
            public func f() {
                self.x = 1 + 2 * 3
            }
        }
    `)

	require.False(t, sink.HasFatal())
	stmt := module.Behaviors[0].FunctionDeclarations[0].Body[0].(*ast.ExpressionStatement)
	assign := stmt.Expression.(*ast.BinaryExpression)
	require.Equal(t, ast.OperatorAssign, assign.Operator)

	rhs := assign.Right.(*ast.BinaryExpression)
	assert.Equal(t, ast.OperatorPlus, rhs.Operator)
	times := rhs.Right.(*ast.BinaryExpression)
	assert.Equal(t, ast.OperatorTimes, times.Operator)
}

func TestParseCallExpression(t *testing.T) {

	t.Parallel()

	module, sink := Parse(`
        contract C {}
        C :: [any] {
            public func f(t: Token) {
                sink(t)
            }
        }
    `)

	require.False(t, sink.HasFatal())
	stmt := module.Behaviors[0].FunctionDeclarations[0].Body[0].(*ast.ExpressionStatement)
	call := stmt.Expression.(*ast.CallExpression)
	assert.Equal(t, "sink", call.Identifier.Identifier)
	require.Len(t, call.Arguments, 1)
}

func TestParseCollectionTypes(t *testing.T) {

	t.Parallel()

	module, sink := Parse(`
        contract C {
            var a: Int[]
            var b: Int[4]
            var c: [Address: Int]
        }
        C :: [any] {}
    `)

	require.False(t, sink.HasFatal())
	require.Len(t, module.Contract.Fields, 3)
	assert.IsType(t, &ast.ArrayType{}, module.Contract.Fields[0].Type)
	assert.IsType(t, &ast.FixedArrayType{}, module.Contract.Fields[1].Type)
	assert.IsType(t, &ast.DictionaryType{}, module.Contract.Fields[2].Type)
}

func TestParseUnexpectedTokenReportsFatalDiagnostic(t *testing.T) {

	t.Parallel()

	_, sink := Parse(`contract {}`)
	require.True(t, sink.HasFatal())
	assert.Equal(t, diagnostics.KindParseFailure, sink.All()[0].Kind)
}
