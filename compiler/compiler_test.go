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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/flintlang/flintc/ast"
	"github.com/flintlang/flintc/config"
	"github.com/flintlang/flintc/diagnostics"
	"github.com/flintlang/flintc/environment"
	"github.com/flintlang/flintc/ir"
	"github.com/flintlang/flintc/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func ident(name string) ast.Identifier {
	return ast.Identifier{Identifier: name}
}

func addressField(name string) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{Identifier: ident(name), Type: &ast.BasicType{Kind: ast.BasicTypeAddress}}
}

func TestOrdinaryFunctionReleasesStorageBorrowBeforeReturn(t *testing.T) {
	t.Parallel()

	contractDecl := &ast.ContractDeclaration{Identifier: ident("C"), Fields: []*ast.VariableDeclaration{addressField("x")}}
	env := environment.New()
	sink := diagnostics.NewSink()
	cfg := config.Default()
	contract := NewContractInfo(contractDecl, env, cfg, sink)
	require.False(t, sink.HasFatal())

	fn := &ast.FunctionDeclaration{
		Modifiers:  []ast.Modifier{ast.ModifierPublic},
		Identifier: ident("getX"),
		ResultType: &ast.BasicType{Kind: ast.BasicTypeAddress},
		Body: []ast.Statement{
			&ast.ReturnStatement{
				Expression: &ast.BinaryExpression{
					Operator: ast.OperatorDot,
					Left:     &ast.SelfExpression{},
					Right:    &ast.IdentifierExpression{Identifier: ident("x")},
				},
			},
		},
	}

	any := env.NewCapabilitySet([]ast.CallerCapability{{Identifier: ident(ast.AnyCapability)}})
	proc := LowerFunction(fn, "C_getX_any", contract, env, cfg, any, sink)
	require.False(t, sink.HasFatal())

	require.Len(t, proc.Body, 2)
	_, isRelease := proc.Body[0].(*ir.Release)
	assert.True(t, isRelease, "storage borrow must be released before the return")
	_, isReturn := proc.Body[1].(*ir.Return)
	assert.True(t, isReturn)
}

func TestCallDispatchEvent(t *testing.T) {
	t.Parallel()

	env := environment.New()
	env.DeclareEvent(&environment.EventInfo{Contract: "C", Name: "Transfer", Parameters: []ast.Parameter{
		{Identifier: ident("amount"), Type: &ast.BasicType{Kind: ast.BasicTypeInt}},
	}})

	fc := newTestContext(t, env, "C")
	call := &ast.CallExpression{Identifier: ident("Transfer"), Arguments: []ast.Expression{
		&ast.LiteralExpression{Kind: ast.LiteralInt, Value: "1"},
	}}

	result := fc.lowerCall(call)
	assert.Equal(t, "emit_Transfer(1)", result.String())
}

func TestCallDispatchGeneratedInitializerIsErased(t *testing.T) {
	t.Parallel()

	env := environment.New()
	env.DeclareCurrencyType("Token")

	fc := newTestContext(t, env, "C")
	call := &ast.CallExpression{Identifier: ident("Token"), Arguments: []ast.Expression{
		&ast.LiteralExpression{Kind: ast.LiteralInt, Value: "5"},
	}}

	result := fc.lowerCall(call)
	assert.Equal(t, "5", result.String())
}

func TestCallDispatchOrdinaryUsesMangledIdentifier(t *testing.T) {
	t.Parallel()

	env := environment.New()
	any := env.NewCapabilitySet([]ast.CallerCapability{{Identifier: ident(ast.AnyCapability)}})
	env.DeclareFunction(&environment.FunctionInfo{Contract: "C", Name: "sink", Capabilities: any})

	fc := newTestContext(t, env, "C")
	fc.Capabilities = any

	call := &ast.CallExpression{Identifier: ident("sink")}
	result := fc.lowerCall(call)

	call2, ok := result.(*ir.Call)
	require.True(t, ok)
	assert.NotEqual(t, "sink", call2.Target)
}

func TestCallDispatchUnresolvedReferenceReportsDiagnostic(t *testing.T) {
	t.Parallel()

	env := environment.New()
	fc := newTestContext(t, env, "C")
	fc.lowerCall(&ast.CallExpression{Identifier: ident("ghost")})

	require.Len(t, fc.Sink.All(), 1)
	assert.Equal(t, diagnostics.KindUnresolvedReference, fc.Sink.All()[0].Kind)
}

func TestCallDispatchCapabilityViolationReportsDiagnostic(t *testing.T) {
	t.Parallel()

	env := environment.New()
	admin := env.NewCapabilitySet([]ast.CallerCapability{{Identifier: ident("admin")}})
	env.DeclareFunction(&environment.FunctionInfo{Contract: "C", Name: "withdraw", Capabilities: admin})

	fc := newTestContext(t, env, "C")
	fc.Capabilities = env.NewCapabilitySet([]ast.CallerCapability{{Identifier: ident("stranger")}})

	fc.lowerCall(&ast.CallExpression{Identifier: ident("withdraw")})

	require.Len(t, fc.Sink.All(), 1)
	assert.Equal(t, diagnostics.KindCapabilityViolation, fc.Sink.All()[0].Kind)
}

func TestAssignmentBareLocal(t *testing.T) {
	t.Parallel()

	fc := newTestContext(t, environment.New(), "C")
	fc.Declare("a", types.Canonical{Category: types.U64}, "local_a")

	stmt := fc.lowerAssignment(&ast.BinaryExpression{
		Operator: ast.OperatorAssign,
		Left:     &ast.IdentifierExpression{Identifier: ident("a")},
		Right:    &ast.LiteralExpression{Kind: ast.LiteralInt, Value: "7"},
	})
	assert.Equal(t, "local_a = 7;", stmt.String())
}

func TestAssignmentShadowEmitsNoop(t *testing.T) {
	t.Parallel()

	fc := newTestContext(t, environment.New(), "C")
	fc.Declare("a", types.Canonical{Category: types.U64}, "local_a")

	stmt := fc.lowerAssignment(&ast.BinaryExpression{
		Operator: ast.OperatorAssign,
		Left: &ast.VariableDeclarationExpression{Declaration: &ast.VariableDeclaration{
			Keyword:    ast.DeclarationKeywordLet,
			Identifier: ident("a"),
			Type:       &ast.BasicType{Kind: ast.BasicTypeInt},
		}},
		Right: &ast.IdentifierExpression{Identifier: ident("a")},
	})
	assert.Equal(t, "noop;", stmt.String())
}

func TestAssignmentDeclarationNonShadow(t *testing.T) {
	t.Parallel()

	fc := newTestContext(t, environment.New(), "C")
	stmt := fc.lowerAssignment(&ast.BinaryExpression{
		Operator: ast.OperatorAssign,
		Left: &ast.VariableDeclarationExpression{Declaration: &ast.VariableDeclaration{
			Keyword:    ast.DeclarationKeywordLet,
			Identifier: ident("y"),
			Type:       &ast.BasicType{Kind: ast.BasicTypeAddress},
		}},
		Right: &ast.LiteralExpression{Kind: ast.LiteralAddress, Value: "0x01"},
	})
	assert.Equal(t, "let local_y: address = 0x01;", stmt.String())
}

func TestAssignmentPropertyThroughSelf(t *testing.T) {
	t.Parallel()

	contractDecl := &ast.ContractDeclaration{Identifier: ident("C"), Fields: []*ast.VariableDeclaration{addressField("x")}}
	env := environment.New()
	sink := diagnostics.NewSink()
	cfg := config.Default()
	contract := NewContractInfo(contractDecl, env, cfg, sink)

	fc := NewFunctionContext(contract, env, cfg, sink, env.NewCapabilitySet(nil), false)
	fc.Declare("y", types.Canonical{Category: types.Address}, "local_y")

	stmt := fc.lowerAssignment(&ast.BinaryExpression{
		Operator: ast.OperatorAssign,
		Left: &ast.BinaryExpression{
			Operator: ast.OperatorDot,
			Left:     &ast.SelfExpression{},
			Right:    &ast.IdentifierExpression{Identifier: ident("x")},
		},
		Right: &ast.IdentifierExpression{Identifier: ident("y")},
	})

	assert.Contains(t, stmt.String(), ".x = copy(local_y);")
}

func newTestContext(t *testing.T, env *environment.Environment, contractName string) *FunctionContext {
	t.Helper()
	sink := diagnostics.NewSink()
	cfg := config.Default()
	contract := &ContractInfo{Name: contractName}
	return NewFunctionContext(contract, env, cfg, sink, env.NewCapabilitySet(nil), false)
}
