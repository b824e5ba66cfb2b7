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
	"github.com/flintlang/flintc/config"
	"github.com/flintlang/flintc/diagnostics"
	"github.com/flintlang/flintc/environment"
	"github.com/flintlang/flintc/ir"
	"github.com/flintlang/flintc/types"
)

// LowerFunction lowers one ordinary (non-initializer) behavior-block
// function into a target procedure, under the given caller-capability
// guard.
func LowerFunction(decl *ast.FunctionDeclaration, mangled string, contract *ContractInfo, env *environment.Environment, cfg config.Config, capabilities *environment.CapabilitySet, sink *diagnostics.Sink) *ir.Procedure {
	fc := NewFunctionContext(contract, env, cfg, sink, capabilities, false)

	var params []ir.Parameter
	for _, p := range decl.Parameters {
		if param, ok := fc.DeclareParameter(p); ok {
			params = append(params, param)
		}
	}

	var resultType string
	if decl.ResultType != nil {
		if rendered, ok := fc.RenderType(decl.ResultType); ok {
			resultType = rendered
		}
	}

	body := fc.LowerBlock(decl.Body)

	return &ir.Procedure{
		Public:     decl.IsPublic(),
		Name:       mangled,
		Parameters: params,
		ResultType: resultType,
		Body:       body,
	}
}

// DeclareParameter binds one function parameter into fc's scope under its
// mangled local name and returns its target-IR parameter descriptor. ok is
// false when the parameter's raw type the canonical typer refuses (already
// reported as a Kind-2 diagnostic).
func (fc *FunctionContext) DeclareParameter(p ast.Parameter) (ir.Parameter, bool) {
	canonical, ok := types.CanonicalType(p.Type, fc.Env, fc.Config)
	if !ok {
		fc.fatal(diagnostics.KindUnknownType,
			"parameter \""+p.Identifier.Identifier+"\" has a type the canonical typer does not accept: "+p.Type.String(),
			ast.NewRangeFromPositioned(p, p.Type))
		return ir.Parameter{}, false
	}
	reportCollectionCollapse(fc.Sink, fc.Config, p.Type,
		"parameter \""+p.Identifier.Identifier+"\"",
		ast.NewRangeFromPositioned(p, p.Type))
	target := localMangle(p.Identifier.Identifier)
	fc.Declare(p.Identifier.Identifier, canonical, target)
	return ir.Parameter{Name: target, Type: types.Render(canonical, fc.Contract.Name)}, true
}

// RenderType classifies and renders a raw type under fc's enclosing
// contract, reporting a Kind-2 diagnostic if the canonical typer refuses
// it.
func (fc *FunctionContext) RenderType(t ast.RawType) (string, bool) {
	canonical, ok := types.CanonicalType(t, fc.Env, fc.Config)
	if !ok {
		fc.fatal(diagnostics.KindUnknownType,
			"result type the canonical typer does not accept: "+t.String(),
			ast.NewRangeFromPositioned(t, t))
		return "", false
	}
	reportCollectionCollapse(fc.Sink, fc.Config, t, "result type", ast.NewRangeFromPositioned(t, t))
	return types.Render(canonical, fc.Contract.Name), true
}
