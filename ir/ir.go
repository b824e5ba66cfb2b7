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

// Package ir is the target bytecode-ish IR of spec 6: a resource type
// declaration, procedures, and the statement/expression grammar the
// compiler package lowers into. Every node renders itself back to target
// text through a turbolent/prettier Doc tree, the way package ast renders
// source text.
package ir

import (
	"github.com/turbolent/prettier"
)

const printWidth = 80

// Print renders a Doc to text at the package's standard width.
func Print(doc prettier.Doc) string {
	return prettier.Print(doc, printWidth).String()
}

// Expression is the target IR's expression grammar (spec 4.3-4.5).
type Expression interface {
	Doc() prettier.Doc
	String() string
}

// Identifier is a bare mangled or local name.
type Identifier struct {
	Name string
}

func (e *Identifier) Doc() prettier.Doc { return prettier.Text(e.Name) }
func (e *Identifier) String() string    { return Print(e.Doc()) }

// LiteralKind distinguishes the four literal forms of spec 4.3.
type LiteralKind int

const (
	LiteralU64 LiteralKind = iota
	LiteralAddress
	LiteralBool
	LiteralByteArray
)

// Literal is a constant value already rendered to target text form.
type Literal struct {
	Kind  LiteralKind
	Value string
}

func (e *Literal) Doc() prettier.Doc { return prettier.Text(e.Value) }
func (e *Literal) String() string    { return Print(e.Doc()) }

// Move wraps a resource-typed expression being consumed by its use (spec
// 4.3's `forceMove`, spec 4.4's resource-argument rule, spec 4.6's struct
// constructor field values and `return move(self)`).
type Move struct {
	Inner Expression
}

func (e *Move) Doc() prettier.Doc {
	return prettier.Concat{prettier.Text("move("), e.Inner.Doc(), prettier.Text(")")}
}
func (e *Move) String() string { return Print(e.Doc()) }

// Copy wraps a value-typed expression whose usage context duplicates it
// rather than consuming it.
type Copy struct {
	Inner Expression
}

func (e *Copy) Doc() prettier.Doc {
	return prettier.Concat{prettier.Text("copy("), e.Inner.Doc(), prettier.Text(")")}
}
func (e *Copy) String() string { return Print(e.Doc()) }

// FieldProjection is `<base>.<field>`, either a plain struct field read or,
// when its Base is a StorageRead, a mutable-reference field path.
type FieldProjection struct {
	Base  Expression
	Field string
}

func (e *FieldProjection) Doc() prettier.Doc {
	return prettier.Concat{e.Base.Doc(), prettier.Text("."), prettier.Text(e.Field)}
}
func (e *FieldProjection) String() string { return Print(e.Doc()) }

// StorageRead is `borrow_global_mut<T>(<sender>)`, the lowering of a
// contract field read/write inside a contract function (spec 4.3).
type StorageRead struct {
	Sender Expression
}

func (e *StorageRead) Doc() prettier.Doc {
	return prettier.Concat{prettier.Text("borrow_global_mut<T>("), e.Sender.Doc(), prettier.Text(")")}
}
func (e *StorageRead) String() string { return Print(e.Doc()) }

// Infix is an ordinary binary operator lowering (every BinaryOperator of
// ast except Assign and Dot, which lower to Assignment and
// FieldProjection/Call respectively).
type Infix struct {
	Operator string
	Left     Expression
	Right    Expression
}

func (e *Infix) Doc() prettier.Doc {
	return prettier.Concat{
		e.Left.Doc(),
		prettier.Text(" " + e.Operator + " "),
		e.Right.Doc(),
	}
}
func (e *Infix) String() string { return Print(e.Doc()) }

// Call is an ordinary function call: a target identifier (mangled or
// bare) and comma-joined, already-wrapped (Move/Copy/reference) arguments.
type Call struct {
	Target    string
	Arguments []Expression
}

func (e *Call) Doc() prettier.Doc {
	concat := prettier.Concat{prettier.Text(e.Target), prettier.Text("(")}
	for i, arg := range e.Arguments {
		if i > 0 {
			concat = append(concat, prettier.Text(", "))
		}
		concat = append(concat, arg.Doc())
	}
	concat = append(concat, prettier.Text(")"))
	return concat
}
func (e *Call) String() string { return Print(e.Doc()) }

// StructConstructor is `struct T { f1: v1, ..., fn: vn }` (spec 4.6 Phase
// B).
type StructConstructor struct {
	Type   string
	Fields []FieldValue
}

// FieldValue is one `name: value` pair of a StructConstructor.
type FieldValue struct {
	Name  string
	Value Expression
}

func (e *StructConstructor) Doc() prettier.Doc {
	concat := prettier.Concat{prettier.Text("struct "), prettier.Text(e.Type), prettier.Text(" { ")}
	for i, f := range e.Fields {
		if i > 0 {
			concat = append(concat, prettier.Text(", "))
		}
		concat = append(concat, prettier.Text(f.Name), prettier.Text(": "), f.Value.Doc())
	}
	concat = append(concat, prettier.Text(" }"))
	return concat
}
func (e *StructConstructor) String() string { return Print(e.Doc()) }

// Noop is the no-output node emitted in place of a redundant
// shadow-assignment (spec 8, "Shadow-assignment idempotence").
type Noop struct{}

func (e *Noop) Doc() prettier.Doc { return prettier.Text("noop") }
func (e *Noop) String() string    { return Print(e.Doc()) }

// Reference wraps an expression passed by mutable reference (an `inout`
// argument, spec 4.4).
type Reference struct {
	Inner Expression
}

func (e *Reference) Doc() prettier.Doc {
	return prettier.Concat{prettier.Text("&mut "), e.Inner.Doc()}
}
func (e *Reference) String() string { return Print(e.Doc()) }
