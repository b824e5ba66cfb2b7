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

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func collectTypes(t *testing.T, input string) []TokenType {
	t.Helper()
	stream := Lex(input)
	var types []TokenType
	for {
		token := stream.Next()
		types = append(types, token.Type)
		if token.Is(TokenEOF) {
			return types
		}
	}
}

func TestLexKeywordsAndPunctuation(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		[]TokenType{
			TokenKeywordContract, TokenIdentifier, TokenLBrace, TokenRBrace, TokenEOF,
		},
		collectTypes(t, "contract Empty {}"),
	)

	assert.Equal(t,
		[]TokenType{
			TokenIdentifier, TokenDoubleColon, TokenLBracket, TokenIdentifier, TokenRBracket,
			TokenLBrace, TokenRBrace, TokenEOF,
		},
		collectTypes(t, "Empty :: [any] {}"),
	)
}

func TestLexFunctionSignature(t *testing.T) {

	t.Parallel()

	const code = `public mutating func init(y: Address) { self.x = y }`

	assert.Equal(t,
		[]TokenType{
			TokenKeywordPublic, TokenKeywordMutating, TokenKeywordFunc, TokenIdentifier,
			TokenLParen, TokenIdentifier, TokenColon, TokenIdentifier, TokenRParen,
			TokenLBrace,
			TokenKeywordSelf, TokenDot, TokenIdentifier, TokenEqual, TokenIdentifier,
			TokenRBrace,
			TokenEOF,
		},
		collectTypes(t, code),
	)
}

func TestLexOperators(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		[]TokenType{
			TokenLess, TokenLessEqual, TokenGreater, TokenGreaterEqual,
			TokenEqualEqual, TokenNotEqual, TokenArrow, TokenEOF,
		},
		collectTypes(t, "< <= > >= == != ->"),
	)
}

func TestLexLiteralsAndValues(t *testing.T) {

	t.Parallel()

	stream := Lex(`42 0x0102 "hi" true false`)

	next := stream.Next()
	assert.Equal(t, TokenIntLiteral, next.Type)
	assert.Equal(t, "42", next.Value)

	next = stream.Next()
	assert.Equal(t, TokenAddressLiteral, next.Type)
	assert.Equal(t, "0x0102", next.Value)

	next = stream.Next()
	assert.Equal(t, TokenStringLiteral, next.Type)
	assert.Equal(t, "hi", next.Value)

	next = stream.Next()
	assert.Equal(t, TokenKeywordTrue, next.Type)

	next = stream.Next()
	assert.Equal(t, TokenKeywordFalse, next.Type)

	assert.True(t, stream.Next().Is(TokenEOF))
}

func TestLexSkipsLineComments(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		[]TokenType{TokenIdentifier, TokenEOF},
		collectTypes(t, "// a comment\nfoo // trailing"),
	)
}
