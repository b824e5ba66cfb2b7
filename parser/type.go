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
	"strconv"

	"github.com/flintlang/flintc/ast"
	"github.com/flintlang/flintc/lexer"
)

var basicTypeKinds = map[string]ast.BasicTypeKind{
	"Address": ast.BasicTypeAddress,
	"Int":     ast.BasicTypeInt,
	"Bool":    ast.BasicTypeBool,
	"String":  ast.BasicTypeString,
}

// parseType parses a RawType (spec 3): basic, userDefined, inout,
// fixedArray, array, or dictionary.
func (p *parser) parseType() ast.RawType {
	startPos := p.current.Range.StartPos

	if p.at(lexer.TokenKeywordInout) {
		p.advance()
		inner := p.parseType()
		return &ast.InoutType{
			Type:  inner,
			Range: ast.Range{StartPos: startPos, EndPos: inner.EndPosition()},
		}
	}

	if p.at(lexer.TokenLBracket) {
		return p.parseDictionaryType(startPos)
	}

	nameToken := p.expect(lexer.TokenIdentifier)
	var base ast.RawType
	if kind, ok := basicTypeKinds[nameToken.Value]; ok {
		base = &ast.BasicType{
			Kind:  kind,
			Range: ast.Range{StartPos: startPos, EndPos: nameToken.Range.EndPos},
		}
	} else {
		base = &ast.UserDefinedType{Identifier: p.identifierFromToken(nameToken)}
	}

	return p.parseTypeSuffixes(base, startPos)
}

// parseTypeSuffixes handles the trailing "[...]" / "[n]" array suffixes
// that may follow a base type.
func (p *parser) parseTypeSuffixes(base ast.RawType, startPos ast.Position) ast.RawType {
	for p.at(lexer.TokenLBracket) {
		p.advance()

		if p.at(lexer.TokenRBracket) {
			endToken := p.expect(lexer.TokenRBracket)
			base = &ast.ArrayType{
				Type:  base,
				Range: ast.Range{StartPos: startPos, EndPos: endToken.Range.EndPos},
			}
			continue
		}

		sizeToken := p.expect(lexer.TokenIntLiteral)
		size, _ := strconv.Atoi(sizeToken.Value)
		endToken := p.expect(lexer.TokenRBracket)
		base = &ast.FixedArrayType{
			Type:  base,
			Size:  size,
			Range: ast.Range{StartPos: startPos, EndPos: endToken.Range.EndPos},
		}
	}
	return base
}

// parseDictionaryType parses "[KeyType: ValueType]".
func (p *parser) parseDictionaryType(startPos ast.Position) ast.RawType {
	p.expect(lexer.TokenLBracket)
	keyType := p.parseType()
	p.expect(lexer.TokenColon)
	valueType := p.parseType()
	endToken := p.expect(lexer.TokenRBracket)

	return &ast.DictionaryType{
		KeyType:   keyType,
		ValueType: valueType,
		Range:     ast.Range{StartPos: startPos, EndPos: endToken.Range.EndPos},
	}
}
