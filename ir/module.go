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

// Field is one field of the resource type T, in storage order.
type Field struct {
	Name string
	Type string
}

// ResourceType is the module's resource type declaration `T` (spec 6:
// "the resource type declaration T with fields in declaration order").
type ResourceType struct {
	Fields []Field
}

func (t *ResourceType) Doc() prettier.Doc {
	concat := prettier.Concat{prettier.Text("resource T {")}
	for _, f := range t.Fields {
		concat = append(concat, prettier.HardLine{}, prettier.Indent{
			Doc: prettier.Concat{prettier.Text(f.Name), prettier.Text(": "), prettier.Text(f.Type)},
		})
	}
	concat = append(concat, prettier.HardLine{}, prettier.Text("}"))
	return concat
}
func (t *ResourceType) String() string { return Print(t.Doc()) }

// Parameter is one procedure parameter.
type Parameter struct {
	Name string
	Type string
}

// Procedure is one emitted function: an initializer procedure (new,
// publish, get) or an ordinary behavior-block function, keyed by its
// mangled identifier (spec 6: "each behavior-block function, emitted with
// its mangled identifier").
type Procedure struct {
	Public     bool
	Name       string
	Parameters []Parameter
	ResultType string // "" if the procedure returns nothing
	Body       []Statement
}

func (p *Procedure) Doc() prettier.Doc {
	concat := prettier.Concat{}
	if p.Public {
		concat = append(concat, prettier.Text("public "))
	}
	concat = append(concat, prettier.Text(p.Name), prettier.Text("("))
	for i, param := range p.Parameters {
		if i > 0 {
			concat = append(concat, prettier.Text(", "))
		}
		concat = append(concat, prettier.Text(param.Name), prettier.Text(": "), prettier.Text(param.Type))
	}
	concat = append(concat, prettier.Text(")"))
	if p.ResultType != "" {
		concat = append(concat, prettier.Text(": "), prettier.Text(p.ResultType))
	}
	concat = append(concat, prettier.Text(" {"))
	concat = append(concat, blockDoc(p.Body)...)
	concat = append(concat, prettier.HardLine{}, prettier.Text("}"))
	return concat
}
func (p *Procedure) String() string { return Print(p.Doc()) }

// Module is a full compilation output: the resource type, the three
// initializer procedures, then every behavior-block function, in that
// order (spec 6).
type Module struct {
	Type       *ResourceType
	New        *Procedure
	Publish    *Procedure
	Get        *Procedure
	Procedures []*Procedure
}

func (m *Module) Doc() prettier.Doc {
	concat := prettier.Concat{m.Type.Doc(), prettier.HardLine{}, prettier.HardLine{}}
	concat = append(concat, m.New.Doc(), prettier.HardLine{}, prettier.HardLine{})
	concat = append(concat, m.Publish.Doc(), prettier.HardLine{}, prettier.HardLine{})
	concat = append(concat, m.Get.Doc())
	for _, proc := range m.Procedures {
		concat = append(concat, prettier.HardLine{}, prettier.HardLine{}, proc.Doc())
	}
	return concat
}
func (m *Module) String() string { return Print(m.Doc()) }
