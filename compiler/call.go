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

package compiler

import (
	"github.com/flintlang/flintc/ast"
	"github.com/flintlang/flintc/diagnostics"
	"github.com/flintlang/flintc/ir"
	"github.com/flintlang/flintc/types"
)

// lowerCall implements spec 4.4's three-way dispatch.
func (fc *FunctionContext) lowerCall(e *ast.CallExpression) ir.Expression {
	name := e.Identifier.Identifier

	// 1. Event emission: re-dispatched, argument marshalling delegated
	// to the event lowerer.
	if _, ok := fc.Env.ResolveEvent(name); ok {
		return fc.lowerEventEmission(e)
	}

	// 2. Compiler-generated initializer: the call is erased and replaced
	// by lowering the single argument directly (spec 4.4, point 2).
	if fc.Env.IsGeneratedInitializer(name) {
		if len(e.Arguments) != 1 {
			fc.fatal(diagnostics.KindUnresolvedReference,
				"generated initializer \""+name+"\" takes exactly one argument",
				ast.NewRangeFromPositioned(e, e))
			return &ir.Literal{Kind: ir.LiteralU64, Value: "0"}
		}
		return fc.lowerExpression(e.Arguments[0], true)
	}

	// 3. Ordinary call.
	return fc.lowerOrdinaryCall(e)
}

// lowerEventEmission lowers an event call to an ordinary target call named
// after the event; argument marshalling follows the same move/copy rule as
// an ordinary call.
func (fc *FunctionContext) lowerEventEmission(e *ast.CallExpression) ir.Expression {
	info, _ := fc.Env.ResolveEvent(e.Identifier.Identifier)
	args := make([]ir.Expression, 0, len(e.Arguments))
	for i, arg := range e.Arguments {
		consuming := i < len(info.Parameters) && fc.paramCanonical(info.Parameters[i]).Category == types.Resource
		args = append(args, fc.lowerExpression(arg, consuming))
	}
	return &ir.Call{Target: "emit_" + info.Name, Arguments: args}
}

func (fc *FunctionContext) paramCanonical(param ast.Parameter) types.Canonical {
	canonical, ok := types.CanonicalType(param.Type, fc.Env, fc.Config)
	if !ok {
		return types.Canonical{Category: types.U64}
	}
	return canonical
}

// lowerOrdinaryCall implements spec 4.4, point 3: the target identifier is
// the resolved overload's mangled identifier; arguments lower left to
// right, moved if resource-typed, copied otherwise, and an `inout`
// parameter's argument is passed by mutable reference.
func (fc *FunctionContext) lowerOrdinaryCall(e *ast.CallExpression) ir.Expression {
	name := e.Identifier.Identifier
	target := name

	info, ok, matched := fc.Env.ResolveFunction(name, fc.Capabilities)
	if !ok {
		fc.fatal(diagnostics.KindUnresolvedReference,
			"unresolved reference \""+name+"\""+suggestionFor(name, fc),
			ast.NewRangeFromPositioned(e, e))
	} else if !matched {
		fc.fatal(diagnostics.KindCapabilityViolation,
			"call to \""+name+"\" is not permitted under the active caller capability",
			ast.NewRangeFromPositioned(e, e))
	} else {
		target = info.Mangled
	}

	var args []ir.Expression
	for i, arg := range e.Arguments {
		if ok && i < len(info.Parameters) {
			param := info.Parameters[i]
			if _, isInout := param.Type.(*ast.InoutType); isInout {
				args = append(args, &ir.Reference{Inner: fc.lowerExpression(arg, false)})
				continue
			}
			consuming := fc.paramCanonical(param).Category == types.Resource
			args = append(args, fc.lowerExpression(arg, consuming))
			continue
		}
		args = append(args, fc.lowerExpression(arg, false))
	}

	return &ir.Call{Target: target, Arguments: args}
}
