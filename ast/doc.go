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
	"github.com/turbolent/prettier"
)

// prettyPrintWidth is the target line width used when rendering a Doc back
// to text for diagnostics and debug dumps.
const prettyPrintWidth = 80

// HasDoc is implemented by AST nodes that can render themselves back to
// source-like text for diagnostics or debug dumps.
type HasDoc interface {
	Doc() prettier.Doc
}

// Print renders a prettier.Doc to text at the package's standard width.
func Print(doc prettier.Doc) string {
	return prettier.Print(doc, prettyPrintWidth).String()
}

func (t *BasicType) Doc() prettier.Doc {
	return prettier.Text(t.Kind.String())
}

func (t *UserDefinedType) Doc() prettier.Doc {
	return prettier.Text(t.Identifier.Identifier)
}

func (t *InoutType) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("inout "),
		rawTypeDoc(t.Type),
	}
}

func (t *FixedArrayType) Doc() prettier.Doc {
	return prettier.Concat{
		rawTypeDoc(t.Type),
		prettier.Text("[...]"),
	}
}

func (t *ArrayType) Doc() prettier.Doc {
	return prettier.Concat{
		rawTypeDoc(t.Type),
		prettier.Text("[]"),
	}
}

func (t *DictionaryType) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("["),
		rawTypeDoc(t.KeyType),
		prettier.Text(": "),
		rawTypeDoc(t.ValueType),
		prettier.Text("]"),
	}
}

func rawTypeDoc(t RawType) prettier.Doc {
	if withDoc, ok := t.(HasDoc); ok {
		return withDoc.Doc()
	}
	return prettier.Text(t.String())
}

// Doc renders a contract's field declarations, one per line, in storage
// order.
func (d *ContractDeclaration) Doc() prettier.Doc {
	concat := prettier.Concat{
		prettier.Text("contract "),
		prettier.Text(d.Identifier.Identifier),
		prettier.Text(" {"),
	}
	for _, field := range d.Fields {
		concat = append(concat,
			prettier.HardLine{},
			prettier.Indent{
				Doc: prettier.Concat{
					prettier.Text("var "),
					prettier.Text(field.Identifier.Identifier),
					prettier.Text(": "),
					rawTypeDoc(field.Type),
				},
			},
		)
	}
	concat = append(concat, prettier.HardLine{}, prettier.Text("}"))
	return concat
}

func (d *ContractDeclaration) String() string {
	return Print(d.Doc())
}
