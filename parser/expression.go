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
	"github.com/flintlang/flintc/ast"
	"github.com/flintlang/flintc/lexer"
)

// parseExpression is the entry point of the fixed precedence table of
// spec 6, lowest first: assignment, comparison, additive, multiplicative,
// dot.
func (p *parser) parseExpression() ast.Expression {
	return p.parseAssignment()
}

func (p *parser) parseAssignment() ast.Expression {
	left := p.parseComparison()

	if p.at(lexer.TokenEqual) {
		p.advance()
		right := p.parseAssignment() // right-associative: a = b = c
		return &ast.BinaryExpression{
			Operator: ast.OperatorAssign,
			Left:     left,
			Right:    right,
		}
	}

	return left
}

var comparisonOperators = map[lexer.TokenType]ast.BinaryOperator{
	lexer.TokenEqualEqual:      ast.OperatorEqualEqual,
	lexer.TokenNotEqual:        ast.OperatorNotEqual,
	lexer.TokenLess:            ast.OperatorLessThan,
	lexer.TokenLessEqual:       ast.OperatorLessThanOrEqual,
	lexer.TokenGreater:         ast.OperatorGreaterThan,
	lexer.TokenGreaterEqual:    ast.OperatorGreaterThanOrEqual,
}

func (p *parser) parseComparison() ast.Expression {
	left := p.parseAdditive()

	for {
		op, ok := comparisonOperators[p.current.Type]
		if !ok {
			return left
		}
		p.advance()
		right := p.parseAdditive()
		left = &ast.BinaryExpression{Operator: op, Left: left, Right: right}
	}
}

func (p *parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()

	for {
		var op ast.BinaryOperator
		switch p.current.Type {
		case lexer.TokenPlus:
			op = ast.OperatorPlus
		case lexer.TokenMinus:
			op = ast.OperatorMinus
		default:
			return left
		}
		p.advance()
		right := p.parseMultiplicative()
		left = &ast.BinaryExpression{Operator: op, Left: left, Right: right}
	}
}

func (p *parser) parseMultiplicative() ast.Expression {
	left := p.parseDot()

	for {
		var op ast.BinaryOperator
		switch p.current.Type {
		case lexer.TokenStar:
			op = ast.OperatorTimes
		case lexer.TokenSlash:
			op = ast.OperatorDivide
		default:
			return left
		}
		p.advance()
		right := p.parseDot()
		left = &ast.BinaryExpression{Operator: op, Left: left, Right: right}
	}
}

func (p *parser) parseDot() ast.Expression {
	left := p.parsePrimary()

	for p.at(lexer.TokenDot) {
		p.advance()
		right := p.parsePrimary()
		left = &ast.BinaryExpression{Operator: ast.OperatorDot, Left: left, Right: right}
	}

	return left
}

func (p *parser) parsePrimary() ast.Expression {
	switch p.current.Type {
	case lexer.TokenIntLiteral:
		token := p.current
		p.advance()
		return &ast.LiteralExpression{
			Kind:  ast.LiteralInt,
			Value: token.Value,
			Range: token.Range,
		}
	case lexer.TokenAddressLiteral:
		token := p.current
		p.advance()
		return &ast.LiteralExpression{
			Kind:  ast.LiteralAddress,
			Value: token.Value,
			Range: token.Range,
		}
	case lexer.TokenStringLiteral:
		token := p.current
		p.advance()
		return &ast.LiteralExpression{
			Kind:  ast.LiteralString,
			Value: token.Value,
			Range: token.Range,
		}
	case lexer.TokenKeywordTrue, lexer.TokenKeywordFalse:
		token := p.current
		p.advance()
		value := "false"
		if token.Type == lexer.TokenKeywordTrue {
			value = "true"
		}
		return &ast.LiteralExpression{Kind: ast.LiteralBool, Value: value, Range: token.Range}
	case lexer.TokenKeywordSelf:
		token := p.current
		p.advance()
		return &ast.SelfExpression{Range: token.Range}
	case lexer.TokenKeywordVar, lexer.TokenKeywordLet:
		return p.parseVariableDeclarationExpression()
	case lexer.TokenLParen:
		return p.parseBracketedExpression()
	case lexer.TokenIdentifier:
		return p.parseIdentifierOrCall()
	default:
		p.reportUnexpected(lexer.TokenIdentifier)
		return &ast.IdentifierExpression{Identifier: ast.Identifier{Pos: p.current.Range.StartPos}}
	}
}

func (p *parser) parseVariableDeclarationExpression() ast.Expression {
	keywordToken := p.current
	keyword := ast.DeclarationKeywordVar
	if p.at(lexer.TokenKeywordLet) {
		keyword = ast.DeclarationKeywordLet
	}
	p.advance()

	nameToken := p.expect(lexer.TokenIdentifier)

	var ty ast.RawType
	if p.at(lexer.TokenColon) {
		p.advance()
		ty = p.parseType()
	}

	return &ast.VariableDeclarationExpression{
		Declaration: &ast.VariableDeclaration{
			Keyword:    keyword,
			Identifier: p.identifierFromToken(nameToken),
			Type:       ty,
			StartPos:   keywordToken.Range.StartPos,
		},
	}
}

func (p *parser) parseBracketedExpression() ast.Expression {
	startToken := p.expect(lexer.TokenLParen)
	inner := p.parseExpression()
	endToken := p.expect(lexer.TokenRParen)

	return &ast.BracketedExpression{
		Expression: inner,
		Range:      ast.Range{StartPos: startToken.Range.StartPos, EndPos: endToken.Range.EndPos},
	}
}

func (p *parser) parseIdentifierOrCall() ast.Expression {
	nameToken := p.expect(lexer.TokenIdentifier)
	identifier := p.identifierFromToken(nameToken)

	if !p.at(lexer.TokenLParen) {
		return &ast.IdentifierExpression{Identifier: identifier}
	}

	p.advance() // '('
	var args []ast.Expression
	for !p.at(lexer.TokenRParen) && !p.at(lexer.TokenEOF) {
		args = append(args, p.parseExpression())
		if !p.at(lexer.TokenComma) {
			break
		}
		p.advance()
	}
	endToken := p.expect(lexer.TokenRParen)

	return &ast.CallExpression{
		Identifier: identifier,
		Arguments:  args,
		Range:      ast.Range{StartPos: nameToken.Range.StartPos, EndPos: endToken.Range.EndPos},
	}
}
