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

// Package emitter ties the whole pipeline together: it runs the
// declaration pass that populates an Environment from a parsed module,
// then lowers every behavior-block function and the initializer, and
// composes the result into spec 6's mandated module text layout (resource
// type, initializer trio, behavior functions, in that order).
package emitter

import (
	"github.com/flintlang/flintc/ast"
	"github.com/flintlang/flintc/compiler"
	"github.com/flintlang/flintc/compiler/initializer"
	"github.com/flintlang/flintc/config"
	"github.com/flintlang/flintc/diagnostics"
	"github.com/flintlang/flintc/environment"
	"github.com/flintlang/flintc/ir"
)

// pendingFunction pairs one parsed function declaration with the
// FunctionInfo its behavior block registered it under, so the lowering
// pass can use the already-computed mangled identifier instead of
// re-resolving it by name (spec 4.2: mangling happens once, at declare
// time).
type pendingFunction struct {
	decl         *ast.FunctionDeclaration
	info         *environment.FunctionInfo
	capabilities *environment.CapabilitySet
}

type pendingInitializer struct {
	decl         *ast.SpecialDeclaration
	capabilities *environment.CapabilitySet
}

// Emit runs the full pipeline over one parsed compilation unit. On any
// fatal diagnostic (spec 7: "no partial code emission") module is nil; the
// sink carries every diagnostic collected along the way.
func Emit(unit *ast.TopLevelModule, cfg config.Config) (*ir.Module, *diagnostics.Sink) {
	sink := diagnostics.NewSink()
	env := environment.New()

	env.DeclareContract(unit.Contract.Identifier.Identifier)

	var functions []pendingFunction
	var initDecl *pendingInitializer
	var fallbackCapabilities *environment.CapabilitySet

	for _, behavior := range unit.Behaviors {
		capabilities := env.NewCapabilitySet(behavior.CallerCapabilities)
		if fallbackCapabilities == nil {
			fallbackCapabilities = capabilities
		}

		for _, fn := range behavior.FunctionDeclarations {
			info := &environment.FunctionInfo{
				Contract:     unit.Contract.Identifier.Identifier,
				Name:         fn.Identifier.Identifier,
				Capabilities: capabilities,
				Parameters:   fn.Parameters,
				ResultType:   fn.ResultType,
				Mutating:     fn.IsMutating(),
			}
			env.DeclareFunction(info)
			functions = append(functions, pendingFunction{decl: fn, info: info, capabilities: capabilities})
		}

		for _, special := range behavior.SpecialDeclarations {
			if initDecl == nil {
				initDecl = &pendingInitializer{decl: special, capabilities: capabilities}
			}
		}
	}

	env.Seal()

	if sink.HasFatal() {
		return nil, sink
	}

	contract := compiler.NewContractInfo(unit.Contract, env, cfg, sink)
	if sink.HasFatal() {
		return nil, sink
	}

	// A contract with no explicit init still compiles: spec 8's empty-
	// contract scenario has no SpecialDeclaration anywhere, and Lower's own
	// unassigned-field tracking (initializer 65-96) already rejects the
	// case that actually needs rejecting - fields left unassigned with no
	// statements left to assign them. Nothing here special-cases "no init"
	// itself.
	initArgs := &ast.SpecialDeclaration{}
	initCapabilities := fallbackCapabilities
	if initDecl != nil {
		initArgs = initDecl.decl
		initCapabilities = initDecl.capabilities
	}
	if initCapabilities == nil {
		initCapabilities = env.NewCapabilitySet([]ast.CallerCapability{{Identifier: ast.Identifier{Identifier: ast.AnyCapability}}})
	}

	procs := initializer.Lower(initArgs, contract, env, cfg, initCapabilities, sink)
	if sink.HasFatal() {
		return nil, sink
	}

	behaviorProcedures := make([]*ir.Procedure, 0, len(functions))
	for _, pending := range functions {
		proc := compiler.LowerFunction(pending.decl, pending.info.Mangled, contract, env, cfg, pending.capabilities, sink)
		behaviorProcedures = append(behaviorProcedures, proc)
	}

	if sink.HasFatal() {
		return nil, sink
	}

	resourceType := &ir.ResourceType{}
	for _, field := range contract.Fields {
		resourceType.Fields = append(resourceType.Fields, ir.Field{Name: field.Name, Type: field.Rendered})
	}

	module := &ir.Module{
		Type:       resourceType,
		New:        procs.New,
		Publish:    procs.Publish,
		Get:        procs.Get,
		Procedures: behaviorProcedures,
	}

	return module, sink
}
