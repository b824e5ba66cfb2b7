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

package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/flintlang/flintc/ast"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDeclareContractAndCurrencyType(t *testing.T) {
	t.Parallel()

	env := New()
	env.DeclareContract("Wallet")
	env.DeclareCurrencyType("Token")

	assert.True(t, env.IsDeclaredContract("Wallet"))
	assert.False(t, env.IsDeclaredContract("Token"))
	assert.True(t, env.IsCurrencyType("Token"))
	assert.True(t, env.IsGeneratedInitializer("Token"))
	assert.False(t, env.IsGeneratedInitializer("Wallet"))
}

func TestResolveFunctionPicksAcceptingOverload(t *testing.T) {
	t.Parallel()

	env := New()

	adminOnly := env.NewCapabilitySet([]ast.CallerCapability{{Identifier: ast.Identifier{Identifier: "admin"}}})
	anyCaller := env.NewCapabilitySet([]ast.CallerCapability{{Identifier: ast.Identifier{Identifier: ast.AnyCapability}}})

	env.DeclareFunction(&FunctionInfo{Contract: "C", Name: "f", Capabilities: adminOnly})
	env.DeclareFunction(&FunctionInfo{Contract: "C", Name: "f", Capabilities: anyCaller})

	caller := env.NewCapabilitySet([]ast.CallerCapability{{Identifier: ast.Identifier{Identifier: "stranger"}}})

	info, ok, matched := env.ResolveFunction("f", caller)
	require.True(t, ok)
	require.True(t, matched)
	assert.True(t, info.Capabilities.IsAny())
}

func TestResolveFunctionUnresolvedVsCapabilityViolation(t *testing.T) {
	t.Parallel()

	env := New()
	_, ok, _ := env.ResolveFunction("ghost", env.NewCapabilitySet(nil))
	assert.False(t, ok, "no declared overload at all should be unresolved, not a capability violation")

	adminOnly := env.NewCapabilitySet([]ast.CallerCapability{{Identifier: ast.Identifier{Identifier: "admin"}}})
	env.DeclareFunction(&FunctionInfo{Contract: "C", Name: "f", Capabilities: adminOnly})

	stranger := env.NewCapabilitySet([]ast.CallerCapability{{Identifier: ast.Identifier{Identifier: "stranger"}}})
	_, ok, matched := env.ResolveFunction("f", stranger)
	assert.True(t, ok)
	assert.False(t, matched, "a declared overload that rejects every guard should report matched=false")
}

func TestMangleIsStableAndInjectiveAcrossOverloads(t *testing.T) {
	t.Parallel()

	env := New()
	admin := env.NewCapabilitySet([]ast.CallerCapability{{Identifier: ast.Identifier{Identifier: "admin"}}})
	any := env.NewCapabilitySet([]ast.CallerCapability{{Identifier: ast.Identifier{Identifier: ast.AnyCapability}}})

	a := &FunctionInfo{Contract: "C", Name: "f", Capabilities: admin}
	b := &FunctionInfo{Contract: "C", Name: "f", Capabilities: any}

	mangledA := Mangle(env.lattice, a)
	mangledAAgain := Mangle(env.lattice, a)
	mangledB := Mangle(env.lattice, b)

	assert.Equal(t, mangledA, mangledAAgain)
	assert.NotEqual(t, mangledA, mangledB)
}

func TestSealFreezesDeclarations(t *testing.T) {
	t.Parallel()

	env := New()
	env.DeclareEvent(&EventInfo{Contract: "C", Name: "Transfer"})
	env.Seal()

	info, ok := env.ResolveEvent("Transfer")
	require.True(t, ok)
	assert.Equal(t, "Transfer", info.Name)

	_, ok = env.ResolveEvent("NoSuchEvent")
	assert.False(t, ok)

	assert.Panics(t, func() {
		env.DeclareEvent(&EventInfo{Contract: "C", Name: "Late"})
	})
}

func TestVisibleNamesIncludesFunctionsAndEvents(t *testing.T) {
	t.Parallel()

	env := New()
	env.DeclareEvent(&EventInfo{Contract: "C", Name: "Transfer"})
	env.DeclareFunction(&FunctionInfo{Contract: "C", Name: "withdraw", Capabilities: env.NewCapabilitySet(nil)})

	names := env.VisibleNames()
	assert.Contains(t, names, "Transfer")
	assert.Contains(t, names, "withdraw")
}
