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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/flintlang/flintc/ast"
	"github.com/flintlang/flintc/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeEnv struct {
	contracts map[string]bool
	currency  map[string]bool
}

func (f fakeEnv) IsDeclaredContract(name string) bool { return f.contracts[name] }
func (f fakeEnv) IsCurrencyType(name string) bool     { return f.currency[name] }

func TestCanonicalTypeBasicKinds(t *testing.T) {
	t.Parallel()

	env := fakeEnv{}
	cfg := config.Default()

	cases := []struct {
		kind ast.BasicTypeKind
		want Category
	}{
		{ast.BasicTypeAddress, Address},
		{ast.BasicTypeInt, U64},
		{ast.BasicTypeBool, Bool},
		{ast.BasicTypeString, ByteArray},
	}
	for _, c := range cases {
		got, ok := CanonicalType(&ast.BasicType{Kind: c.kind}, env, cfg)
		require.True(t, ok)
		assert.Equal(t, c.want, got.Category)
	}
}

func TestCanonicalTypeUserDefinedContractIsResource(t *testing.T) {
	t.Parallel()

	env := fakeEnv{contracts: map[string]bool{"Wallet": true}}
	got, ok := CanonicalType(&ast.UserDefinedType{Identifier: ast.Identifier{Identifier: "Wallet"}}, env, config.Default())
	require.True(t, ok)
	assert.Equal(t, Resource, got.Category)
	assert.Equal(t, "Wallet", got.Name)
}

func TestCanonicalTypeUserDefinedCurrencyIsResource(t *testing.T) {
	t.Parallel()

	env := fakeEnv{currency: map[string]bool{"Token": true}}
	got, ok := CanonicalType(&ast.UserDefinedType{Identifier: ast.Identifier{Identifier: "Token"}}, env, config.Default())
	require.True(t, ok)
	assert.Equal(t, Resource, got.Category)
}

func TestCanonicalTypePlainUserDefinedIsStruct(t *testing.T) {
	t.Parallel()

	env := fakeEnv{}
	got, ok := CanonicalType(&ast.UserDefinedType{Identifier: ast.Identifier{Identifier: "Receipt"}}, env, config.Default())
	require.True(t, ok)
	assert.Equal(t, Struct, got.Category)
	assert.Equal(t, "Receipt", got.Name)
}

func TestCanonicalTypeInoutUnwrapsToPointee(t *testing.T) {
	t.Parallel()

	env := fakeEnv{}
	got, ok := CanonicalType(&ast.InoutType{Type: &ast.BasicType{Kind: ast.BasicTypeInt}}, env, config.Default())
	require.True(t, ok)
	assert.Equal(t, U64, got.Category)
}

func TestCanonicalTypeCollectionsRejectedByDefault(t *testing.T) {
	t.Parallel()

	env := fakeEnv{}
	arr := &ast.ArrayType{Type: &ast.BasicType{Kind: ast.BasicTypeInt}}
	_, ok := CanonicalType(arr, env, config.Default())
	assert.False(t, ok)
}

func TestCanonicalTypeCollectionsCollapseWhenConfigured(t *testing.T) {
	t.Parallel()

	env := fakeEnv{}
	cfg := config.Config{Collections: config.Collapse}

	fixed := &ast.FixedArrayType{Type: &ast.BasicType{Kind: ast.BasicTypeBool}, Size: 4}
	got, ok := CanonicalType(fixed, env, cfg)
	require.True(t, ok)
	assert.Equal(t, Bool, got.Category)

	dict := &ast.DictionaryType{
		KeyType:   &ast.BasicType{Kind: ast.BasicTypeAddress},
		ValueType: &ast.BasicType{Kind: ast.BasicTypeInt},
	}
	got, ok = CanonicalType(dict, env, cfg)
	require.True(t, ok)
	assert.Equal(t, Address, got.Category)
}

func TestRenderPrimitivesAndStruct(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "u64", Render(primitive(U64), "C"))
	assert.Equal(t, "address", Render(primitive(Address), "C"))
	assert.Equal(t, "bool", Render(primitive(Bool), "C"))
	assert.Equal(t, "bytearray", Render(primitive(ByteArray), "C"))
	assert.Equal(t, "Self.Receipt", Render(Canonical{Category: Struct, Name: "Receipt"}, "C"))
}

func TestRenderResourceSubstitutesSelfForEnclosingType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Self.T", Render(Canonical{Category: Resource, Name: "C"}, "C"))
	assert.Equal(t, "Other.T", Render(Canonical{Category: Resource, Name: "Other"}, "C"))
}
