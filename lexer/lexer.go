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
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/flintlang/flintc/ast"
)

// lexer tokenizes source text. Columns advance one per grapheme cluster
// (via uniseg), not one per byte or rune, so combining sequences in string
// literals and identifiers are measured the way a human reading the source
// would count them.
type lexer struct {
	source string
	offset int
	line   int
	column int
}

// Lex returns a TokenStream over source. Tokenization is lazy: Next()
// scans exactly one token per call.
func Lex(source string) TokenStream {
	return &lexer{source: source, line: 1, column: 0}
}

func (l *lexer) position() ast.Position {
	return ast.Position{Offset: l.offset, Line: l.line, Column: l.column}
}

// nextCluster consumes and returns the next grapheme cluster, or "" at EOF.
func (l *lexer) nextCluster() string {
	if l.offset >= len(l.source) {
		return ""
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(l.source[l.offset:], -1)
	if cluster == "" {
		return ""
	}
	l.offset += len(cluster)
	if cluster == "\n" {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	return cluster
}

// peekCluster returns the next grapheme cluster without consuming it.
func (l *lexer) peekCluster() string {
	if l.offset >= len(l.source) {
		return ""
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(l.source[l.offset:], -1)
	return cluster
}

func (l *lexer) peekByte(offset int) byte {
	i := l.offset + offset
	if i < 0 || i >= len(l.source) {
		return 0
	}
	return l.source[i]
}

func isIdentifierStart(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r == '_' || unicode.IsLetter(r)
}

func isIdentifierContinue(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsDigit(r)
}

func isHexDigit(s string) bool {
	if len(s) != 1 {
		return false
	}
	switch s[0] {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
		'a', 'b', 'c', 'd', 'e', 'f',
		'A', 'B', 'C', 'D', 'E', 'F':
		return true
	default:
		return false
	}
}

// Next scans and returns the next token, skipping whitespace and
// line comments first.
func (l *lexer) Next() Token {
	l.skipTrivia()

	start := l.position()

	cluster := l.peekCluster()
	if cluster == "" {
		return Token{Type: TokenEOF, Range: ast.Range{StartPos: start, EndPos: start}}
	}

	switch {
	case cluster == "\"":
		return l.scanString(start)
	case cluster == "0" && l.peekByte(1) == 'x':
		return l.scanAddress(start)
	case isDigit(cluster):
		return l.scanNumber(start)
	case isIdentifierStart(cluster):
		return l.scanIdentifierOrKeyword(start)
	default:
		return l.scanSymbol(start)
	}
}

func (l *lexer) skipTrivia() {
	for {
		c := l.peekCluster()
		switch {
		case c == " " || c == "\t" || c == "\n" || c == "\r":
			l.nextCluster()
		case c == "/" && l.peekByte(1) == '/':
			for {
				c := l.peekCluster()
				if c == "" || c == "\n" {
					break
				}
				l.nextCluster()
			}
		default:
			return
		}
	}
}

func (l *lexer) makeToken(ty TokenType, start ast.Position, value string) Token {
	return Token{
		Type:  ty,
		Value: value,
		Range: ast.Range{StartPos: start, EndPos: l.position()},
	}
}

func (l *lexer) scanIdentifierOrKeyword(start ast.Position) Token {
	var b strings.Builder
	for isIdentifierContinue(l.peekCluster()) {
		b.WriteString(l.nextCluster())
	}
	name := norm.NFC.String(b.String())
	if ty, ok := keywords[name]; ok {
		return l.makeToken(ty, start, name)
	}
	return l.makeToken(TokenIdentifier, start, name)
}

func (l *lexer) scanNumber(start ast.Position) Token {
	var b strings.Builder
	for isDigit(l.peekCluster()) {
		b.WriteString(l.nextCluster())
	}
	return l.makeToken(TokenIntLiteral, start, b.String())
}

func (l *lexer) scanAddress(start ast.Position) Token {
	var b strings.Builder
	b.WriteString(l.nextCluster()) // '0'
	b.WriteString(l.nextCluster()) // 'x'
	for isHexDigit(l.peekCluster()) {
		b.WriteString(l.nextCluster())
	}
	return l.makeToken(TokenAddressLiteral, start, b.String())
}

func (l *lexer) scanString(start ast.Position) Token {
	l.nextCluster() // opening quote
	var b strings.Builder
	for {
		c := l.peekCluster()
		if c == "" || c == "\"" {
			break
		}
		b.WriteString(l.nextCluster())
	}
	l.nextCluster() // closing quote, if present
	return l.makeToken(TokenStringLiteral, start, norm.NFC.String(b.String()))
}

func (l *lexer) scanSymbol(start ast.Position) Token {
	c := l.nextCluster()
	switch c {
	case "(":
		return l.makeToken(TokenLParen, start, c)
	case ")":
		return l.makeToken(TokenRParen, start, c)
	case "{":
		return l.makeToken(TokenLBrace, start, c)
	case "}":
		return l.makeToken(TokenRBrace, start, c)
	case "[":
		return l.makeToken(TokenLBracket, start, c)
	case "]":
		return l.makeToken(TokenRBracket, start, c)
	case ",":
		return l.makeToken(TokenComma, start, c)
	case ".":
		return l.makeToken(TokenDot, start, c)
	case "+":
		return l.makeToken(TokenPlus, start, c)
	case "-":
		if l.peekCluster() == ">" {
			l.nextCluster()
			return l.makeToken(TokenArrow, start, "->")
		}
		return l.makeToken(TokenMinus, start, c)
	case "*":
		return l.makeToken(TokenStar, start, c)
	case "/":
		return l.makeToken(TokenSlash, start, c)
	case ":":
		if l.peekCluster() == ":" {
			l.nextCluster()
			return l.makeToken(TokenDoubleColon, start, "::")
		}
		return l.makeToken(TokenColon, start, c)
	case "=":
		if l.peekCluster() == "=" {
			l.nextCluster()
			return l.makeToken(TokenEqualEqual, start, "==")
		}
		return l.makeToken(TokenEqual, start, c)
	case "!":
		if l.peekCluster() == "=" {
			l.nextCluster()
			return l.makeToken(TokenNotEqual, start, "!=")
		}
		return l.makeToken(TokenError, start, c)
	case "<":
		if l.peekCluster() == "=" {
			l.nextCluster()
			return l.makeToken(TokenLessEqual, start, "<=")
		}
		return l.makeToken(TokenLess, start, c)
	case ">":
		if l.peekCluster() == "=" {
			l.nextCluster()
			return l.makeToken(TokenGreaterEqual, start, ">=")
		}
		return l.makeToken(TokenGreater, start, c)
	default:
		return l.makeToken(TokenError, start, c)
	}
}
