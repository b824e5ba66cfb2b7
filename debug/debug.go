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

// Package debug renders AST and IR nodes for inspection: a gojq-queryable
// JSON dump of any node (ast/marshal.go's "Type" discriminator convention
// makes every node distinguishable by its kind once flattened), and a
// verbose structural trace of a FunctionContext for use from a failing
// compiler test.
package debug

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
	"github.com/tidwall/pretty"
)

// Dump marshals node to indented, syntax-highlighted JSON. node is
// typically an *ast.TopLevelModule or an *ir.Module; any JSON-marshalable
// value works.
func Dump(node interface{}) (string, error) {
	raw, err := json.Marshal(node)
	if err != nil {
		return "", fmt.Errorf("debug: marshaling node: %w", err)
	}
	formatted := pretty.Pretty(raw)
	formatted = pretty.Color(formatted, nil)
	return string(formatted), nil
}

// Query runs a jq expression against node's JSON encoding, returning each
// result value rendered as compact JSON on its own line. It powers
// `cmd/flintc`'s `-query` flag: point it at a dumped AST or IR and filter
// down to the part under inspection without hand-rolling a tree-walk.
func Query(node interface{}, expr string) ([]string, error) {
	raw, err := json.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("debug: marshaling node: %w", err)
	}

	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("debug: decoding node for query: %w", err)
	}

	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("debug: parsing query %q: %w", expr, err)
	}

	var results []string
	iter := query.Run(decoded)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, fmt.Errorf("debug: running query %q: %w", expr, err)
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("debug: marshaling query result: %w", err)
		}
		results = append(results, string(encoded))
	}
	return results, nil
}
