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

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDefinedType_MarshalJSON(t *testing.T) {

	t.Parallel()

	ty := &UserDefinedType{
		Identifier: Identifier{
			Identifier: "Wallet",
			Pos:        Position{Offset: 1, Line: 2, Column: 3},
		},
	}

	actual, err := json.Marshal(ty)
	require.NoError(t, err)

	assert.JSONEq(t,
		`
        {
            "Type": "UserDefinedType",
            "Identifier": {
                "Identifier": "Wallet",
                "Pos": {"Offset": 1, "Line": 2, "Column": 3}
            }
        }
        `,
		string(actual),
	)
}

func TestInoutType_Doc(t *testing.T) {

	t.Parallel()

	ty := &InoutType{
		Type: &BasicType{Kind: BasicTypeAddress},
	}

	assert.Equal(t,
		"inout Address",
		Print(ty.Doc()),
	)
}

func TestDictionaryType_String(t *testing.T) {

	t.Parallel()

	ty := &DictionaryType{
		KeyType:   &BasicType{Kind: BasicTypeAddress},
		ValueType: &BasicType{Kind: BasicTypeInt},
	}

	assert.Equal(t, "[Address: Int]", ty.String())
}

func TestFixedArrayType_String(t *testing.T) {

	t.Parallel()

	ty := &FixedArrayType{
		Type: &UserDefinedType{Identifier: Identifier{Identifier: "Token"}},
		Size: 4,
	}

	assert.Equal(t, "Token[...]", ty.String())
}
