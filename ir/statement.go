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

package ir

import (
	"github.com/turbolent/prettier"
)

// Statement is the target IR's statement grammar.
type Statement interface {
	Doc() prettier.Doc
	String() string
}

// ExpressionStatement wraps an expression used for its effect.
type ExpressionStatement struct {
	Expression Expression
}

func (s *ExpressionStatement) Doc() prettier.Doc {
	return prettier.Concat{s.Expression.Doc(), prettier.Text(";")}
}
func (s *ExpressionStatement) String() string { return Print(s.Doc()) }

// Declaration is `let <name>: <type> [= <value>];` - a local binding,
// with or without an initializer (spec 4.3's variableDeclaration lowering,
// spec 4.6's staging-slot and `let self: Self.T;` declarations).
type Declaration struct {
	Name  string
	Type  string
	Value Expression // nil: no initializer
}

func (s *Declaration) Doc() prettier.Doc {
	concat := prettier.Concat{
		prettier.Text("let "),
		prettier.Text(s.Name),
		prettier.Text(": "),
		prettier.Text(s.Type),
	}
	if s.Value != nil {
		concat = append(concat, prettier.Text(" = "), s.Value.Doc())
	}
	return append(concat, prettier.Text(";"))
}
func (s *Declaration) String() string { return Print(s.Doc()) }

// Assignment is `<target> = <value>;` - every non-declaration case of
// spec 4.5's assignment lowerer, where target is the reified textual
// l-value.
type Assignment struct {
	Target string
	Value  Expression
}

func (s *Assignment) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text(s.Target),
		prettier.Text(" = "),
		s.Value.Doc(),
		prettier.Text(";"),
	}
}
func (s *Assignment) String() string { return Print(s.Doc()) }

// Return is `return [<value>];` - nil Value for a bare return.
type Return struct {
	Value Expression
}

func (s *Return) Doc() prettier.Doc {
	if s.Value == nil {
		return prettier.Text("return;")
	}
	return prettier.Concat{prettier.Text("return "), s.Value.Doc(), prettier.Text(";")}
}
func (s *Return) String() string { return Print(s.Doc()) }

// Release is one LIFO release operation emitted by
// compiler.FunctionContext.EmitReleaseReferences (spec 4.7).
type Release struct {
	Token string
}

func (s *Release) Doc() prettier.Doc {
	return prettier.Concat{prettier.Text("release("), prettier.Text(s.Token), prettier.Text(");")}
}
func (s *Release) String() string { return Print(s.Doc()) }

// If is the target conditional; Else is nil for a bare `if`.
type If struct {
	Condition Expression
	Then      []Statement
	Else      []Statement
}

func (s *If) Doc() prettier.Doc {
	concat := prettier.Concat{prettier.Text("if ("), s.Condition.Doc(), prettier.Text(") {")}
	concat = append(concat, blockDoc(s.Then)...)
	concat = append(concat, prettier.HardLine{}, prettier.Text("}"))
	if s.Else != nil {
		concat = append(concat, prettier.Text(" else {"))
		concat = append(concat, blockDoc(s.Else)...)
		concat = append(concat, prettier.HardLine{}, prettier.Text("}"))
	}
	return concat
}
func (s *If) String() string { return Print(s.Doc()) }

func blockDoc(statements []Statement) []prettier.Doc {
	var docs []prettier.Doc
	for _, stmt := range statements {
		docs = append(docs, prettier.HardLine{}, prettier.Indent{Doc: stmt.Doc()})
	}
	return docs
}
