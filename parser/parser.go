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

// Package parser turns a lexer.TokenStream into a source ast.TopLevelModule
// (spec 6). It implements the fixed precedence table - from lowest to
// highest: assignment, comparison, additive, multiplicative, dot - as a
// conventional top-down tier of recursive-descent parse functions, one per
// precedence level, which accepts exactly the language the spec's
// "lowest-precedence-first, split at the first top-level occurrence"
// description accepts.
package parser

import (
	"fmt"

	"github.com/flintlang/flintc/ast"
	"github.com/flintlang/flintc/diagnostics"
	"github.com/flintlang/flintc/lexer"
)

const initIdentifierName = "init"

type parser struct {
	tokens lexer.TokenStream
	current lexer.Token
	sink   *diagnostics.Sink
}

// Parse lexes and parses source into a TopLevelModule. Any parse failure
// is reported to the returned sink (spec 7, kind 1); in that case the
// returned module is nil.
func Parse(source string) (*ast.TopLevelModule, *diagnostics.Sink) {
	sink := diagnostics.NewSink()
	p := &parser{tokens: lexer.Lex(source), sink: sink}
	p.advance()

	module := p.parseTopLevelModule()
	if sink.HasFatal() {
		return nil, sink
	}
	return module, sink
}

func (p *parser) advance() {
	p.current = p.tokens.Next()
}

func (p *parser) at(ty lexer.TokenType) bool {
	return p.current.Is(ty)
}

func (p *parser) reportUnexpected(expected ...lexer.TokenType) {
	p.sink.Report(&diagnostics.Diagnostic{
		Kind: diagnostics.KindParseFailure,
		Message: fmt.Sprintf(
			"unexpected token %v, expected one of %v",
			p.current.Type, expected,
		),
		Range: p.current.Range,
	})
}

// expect consumes the current token if it has type ty, reporting a parse
// failure and returning the zero Token otherwise.
func (p *parser) expect(ty lexer.TokenType) lexer.Token {
	if !p.at(ty) {
		p.reportUnexpected(ty)
		return lexer.Token{}
	}
	token := p.current
	p.advance()
	return token
}

func (p *parser) identifierFromToken(token lexer.Token) ast.Identifier {
	return ast.Identifier{
		Identifier: token.Value,
		Pos:        token.Range.StartPos,
	}
}

func (p *parser) parseTopLevelModule() *ast.TopLevelModule {
	contract := p.parseContractDeclaration()

	var behaviors []*ast.ContractBehaviorDeclaration
	for p.at(lexer.TokenIdentifier) {
		behaviors = append(behaviors, p.parseContractBehaviorDeclaration())
	}

	return &ast.TopLevelModule{
		Contract:  contract,
		Behaviors: behaviors,
	}
}

func (p *parser) parseContractDeclaration() *ast.ContractDeclaration {
	startToken := p.expect(lexer.TokenKeywordContract)
	nameToken := p.expect(lexer.TokenIdentifier)
	p.expect(lexer.TokenLBrace)

	var fields []*ast.VariableDeclaration
	for p.at(lexer.TokenKeywordVar) || p.at(lexer.TokenKeywordLet) {
		fields = append(fields, p.parseFieldDeclaration())
	}

	endToken := p.expect(lexer.TokenRBrace)

	return &ast.ContractDeclaration{
		Identifier: p.identifierFromToken(nameToken),
		Fields:     fields,
		StartPos:   startToken.Range.StartPos,
		EndPos:     endToken.Range.EndPos,
	}
}

func (p *parser) parseFieldDeclaration() *ast.VariableDeclaration {
	keywordToken := p.current
	keyword := ast.DeclarationKeywordVar
	if p.at(lexer.TokenKeywordLet) {
		keyword = ast.DeclarationKeywordLet
	}
	p.advance()

	nameToken := p.expect(lexer.TokenIdentifier)
	p.expect(lexer.TokenColon)
	ty := p.parseType()

	return &ast.VariableDeclaration{
		Keyword:    keyword,
		Identifier: p.identifierFromToken(nameToken),
		Type:       ty,
		StartPos:   keywordToken.Range.StartPos,
	}
}

func (p *parser) parseContractBehaviorDeclaration() *ast.ContractBehaviorDeclaration {
	nameToken := p.expect(lexer.TokenIdentifier)
	p.expect(lexer.TokenDoubleColon)
	capabilities := p.parseCallerGroup()
	p.expect(lexer.TokenLBrace)

	decl := &ast.ContractBehaviorDeclaration{
		ContractIdentifier: p.identifierFromToken(nameToken),
		CallerCapabilities:  capabilities,
		StartPos:            nameToken.Range.StartPos,
	}

	for !p.at(lexer.TokenRBrace) && !p.at(lexer.TokenEOF) {
		modifiers := p.parseModifiers()
		p.expect(lexer.TokenKeywordFunc)
		if p.at(lexer.TokenIdentifier) && p.current.Value == initIdentifierName {
			decl.SpecialDeclarations = append(
				decl.SpecialDeclarations,
				p.parseSpecialDeclaration(modifiers),
			)
			continue
		}
		decl.FunctionDeclarations = append(
			decl.FunctionDeclarations,
			p.parseFunctionDeclaration(modifiers),
		)
	}

	endToken := p.expect(lexer.TokenRBrace)
	decl.EndPos = endToken.Range.EndPos

	return decl
}

func (p *parser) parseCallerGroup() []ast.CallerCapability {
	p.expect(lexer.TokenLBracket)

	var capabilities []ast.CallerCapability
	for {
		token := p.expect(lexer.TokenIdentifier)
		capabilities = append(capabilities, ast.CallerCapability{
			Identifier: p.identifierFromToken(token),
		})
		if !p.at(lexer.TokenComma) {
			break
		}
		p.advance()
	}

	p.expect(lexer.TokenRBracket)
	return capabilities
}

func (p *parser) parseModifiers() []ast.Modifier {
	var modifiers []ast.Modifier
	for {
		switch p.current.Type {
		case lexer.TokenKeywordPublic:
			modifiers = append(modifiers, ast.ModifierPublic)
			p.advance()
		case lexer.TokenKeywordMutating:
			modifiers = append(modifiers, ast.ModifierMutating)
			p.advance()
		default:
			return modifiers
		}
	}
}

func (p *parser) parseSpecialDeclaration(modifiers []ast.Modifier) *ast.SpecialDeclaration {
	startPos := p.current.Range.StartPos
	p.advance() // the "init" identifier
	params := p.parseParameterList()
	body, endPos := p.parseBlock()

	return &ast.SpecialDeclaration{
		Modifiers:  modifiers,
		Parameters: params,
		Body:       body,
		StartPos:   startPos,
		EndPos:     endPos,
	}
}

func (p *parser) parseFunctionDeclaration(modifiers []ast.Modifier) *ast.FunctionDeclaration {
	startPos := p.current.Range.StartPos
	nameToken := p.expect(lexer.TokenIdentifier)
	params := p.parseParameterList()

	var resultType ast.RawType
	if p.at(lexer.TokenArrow) {
		p.advance()
		resultType = p.parseType()
	}

	body, endPos := p.parseBlock()

	return &ast.FunctionDeclaration{
		Modifiers:  modifiers,
		Identifier: p.identifierFromToken(nameToken),
		Parameters: params,
		ResultType: resultType,
		Body:       body,
		StartPos:   startPos,
		EndPos:     endPos,
	}
}

func (p *parser) parseParameterList() []ast.Parameter {
	p.expect(lexer.TokenLParen)

	var params []ast.Parameter
	for !p.at(lexer.TokenRParen) && !p.at(lexer.TokenEOF) {
		nameToken := p.expect(lexer.TokenIdentifier)
		p.expect(lexer.TokenColon)
		ty := p.parseType()
		params = append(params, ast.Parameter{
			Identifier: p.identifierFromToken(nameToken),
			Type:       ty,
		})
		if !p.at(lexer.TokenComma) {
			break
		}
		p.advance()
	}

	p.expect(lexer.TokenRParen)
	return params
}

func (p *parser) parseBlock() ([]ast.Statement, ast.Position) {
	p.expect(lexer.TokenLBrace)

	var statements []ast.Statement
	for !p.at(lexer.TokenRBrace) && !p.at(lexer.TokenEOF) {
		statements = append(statements, p.parseStatement())
	}

	endToken := p.expect(lexer.TokenRBrace)
	return statements, endToken.Range.EndPos
}
