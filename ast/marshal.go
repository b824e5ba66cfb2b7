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

package ast

import "encoding/json"

// Every RawType variant marshals with a "Type" discriminator field naming
// its Go type, the same convention the debug package relies on when
// gojq-querying a dumped AST (see debug.Dump).

func (t *BasicType) MarshalJSON() ([]byte, error) {
	type Alias BasicType
	return json.Marshal(struct {
		Type string `json:"Type"`
		*Alias
	}{
		Type:  "BasicType",
		Alias: (*Alias)(t),
	})
}

func (t *UserDefinedType) MarshalJSON() ([]byte, error) {
	type Alias UserDefinedType
	return json.Marshal(struct {
		Type string `json:"Type"`
		*Alias
	}{
		Type:  "UserDefinedType",
		Alias: (*Alias)(t),
	})
}

func (t *InoutType) MarshalJSON() ([]byte, error) {
	type Alias InoutType
	return json.Marshal(struct {
		Type string `json:"Type"`
		*Alias
	}{
		Type:  "InoutType",
		Alias: (*Alias)(t),
	})
}

func (t *FixedArrayType) MarshalJSON() ([]byte, error) {
	type Alias FixedArrayType
	return json.Marshal(struct {
		Type string `json:"Type"`
		*Alias
	}{
		Type:  "FixedArrayType",
		Alias: (*Alias)(t),
	})
}

func (t *ArrayType) MarshalJSON() ([]byte, error) {
	type Alias ArrayType
	return json.Marshal(struct {
		Type string `json:"Type"`
		*Alias
	}{
		Type:  "ArrayType",
		Alias: (*Alias)(t),
	})
}

func (t *DictionaryType) MarshalJSON() ([]byte, error) {
	type Alias DictionaryType
	return json.Marshal(struct {
		Type string `json:"Type"`
		*Alias
	}{
		Type:  "DictionaryType",
		Alias: (*Alias)(t),
	})
}

func (d *ContractDeclaration) MarshalJSON() ([]byte, error) {
	type Alias ContractDeclaration
	return json.Marshal(struct {
		Type string `json:"Type"`
		*Alias
	}{
		Type:  "ContractDeclaration",
		Alias: (*Alias)(d),
	})
}

func (d *FunctionDeclaration) MarshalJSON() ([]byte, error) {
	type Alias FunctionDeclaration
	return json.Marshal(struct {
		Type string `json:"Type"`
		*Alias
	}{
		Type:  "FunctionDeclaration",
		Alias: (*Alias)(d),
	})
}

func (d *SpecialDeclaration) MarshalJSON() ([]byte, error) {
	type Alias SpecialDeclaration
	return json.Marshal(struct {
		Type string `json:"Type"`
		*Alias
	}{
		Type:  "SpecialDeclaration",
		Alias: (*Alias)(d),
	})
}
