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

import "github.com/flintlang/flintc/ast"

// TokenType enumerates every lexical category of the grammar in spec 6.
type TokenType int

const (
	TokenError TokenType = iota
	TokenEOF

	TokenIdentifier
	TokenIntLiteral
	TokenAddressLiteral
	TokenStringLiteral

	TokenKeywordContract
	TokenKeywordVar
	TokenKeywordLet
	TokenKeywordFunc
	TokenKeywordPublic
	TokenKeywordMutating
	TokenKeywordReturn
	TokenKeywordSelf
	TokenKeywordInout
	TokenKeywordTrue
	TokenKeywordFalse

	TokenColon
	TokenDoubleColon
	TokenComma
	TokenArrow

	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket

	TokenEqual
	TokenEqualEqual
	TokenNotEqual
	TokenLess
	TokenLessEqual
	TokenGreater
	TokenGreaterEqual
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenDot
)

var keywords = map[string]TokenType{
	"contract": TokenKeywordContract,
	"var":      TokenKeywordVar,
	"let":      TokenKeywordLet,
	"func":     TokenKeywordFunc,
	"public":   TokenKeywordPublic,
	"mutating": TokenKeywordMutating,
	"return":   TokenKeywordReturn,
	"self":     TokenKeywordSelf,
	"inout":    TokenKeywordInout,
	"true":     TokenKeywordTrue,
	"false":    TokenKeywordFalse,
}

// Token is a single lexical unit: its type, its source range, and (for
// identifiers and literals) its textual value.
type Token struct {
	Type  TokenType
	Range ast.Range
	Value string
}

func (t Token) Is(ty TokenType) bool {
	return t.Type == ty
}

func (t Token) StartPosition() ast.Position { return t.Range.StartPos }
func (t Token) EndPosition() ast.Position   { return t.Range.EndPos }

// TokenStream yields tokens one at a time, lazily, until TokenEOF.
type TokenStream interface {
	Next() Token
}
