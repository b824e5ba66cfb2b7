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

// Package environment is the symbol table of spec 3/5: it records
// declared contracts, event signatures, functions (with their caller
// capability sets), and currency-typed user types, during a dedicated
// build phase, then is read-only for the remainder of the compilation.
package environment

import (
	"sort"

	"github.com/flintlang/flintc/ast"
)

// FunctionInfo is everything the lowerer needs to know about one declared
// function overload: its capability guard, its mangled target identifier,
// and enough of its signature to detect arity mismatches.
type FunctionInfo struct {
	Contract     string
	Name         string
	Capabilities *CapabilitySet
	Parameters   []ast.Parameter
	ResultType   ast.RawType
	Mutating     bool
	Mangled      string
}

// EventInfo is a declared event's signature.
type EventInfo struct {
	Contract   string
	Name       string
	Parameters []ast.Parameter
}

// Environment is the compiler's symbol table. Use New to start the build
// phase, populate it with Declare* calls, then Seal it before any
// lowering call is made (spec 5: "read-only during lowering").
type Environment struct {
	lattice *capabilityLattice

	contracts     map[string]bool
	currencyTypes map[string]bool
	events        map[string]*EventInfo
	functions     map[string][]*FunctionInfo

	sealed bool
	index  *sealedIndex
}

func New() *Environment {
	return &Environment{
		lattice:       newCapabilityLattice(),
		contracts:     map[string]bool{},
		currencyTypes: map[string]bool{},
		events:        map[string]*EventInfo{},
		functions:     map[string][]*FunctionInfo{},
	}
}

// DeclareContract records contract as a declared contract type, so that
// the canonical typer maps UserDefinedType(contract) to resource(contract)
// (spec 4.1).
func (e *Environment) DeclareContract(name string) {
	e.mustNotBeSealed()
	e.contracts[name] = true
}

// DeclareCurrencyType flags name as a currency type: always a resource in
// the canonical typer, regardless of whether it is also a contract.
func (e *Environment) DeclareCurrencyType(name string) {
	e.mustNotBeSealed()
	e.currencyTypes[name] = true
}

func (e *Environment) DeclareEvent(info *EventInfo) {
	e.mustNotBeSealed()
	e.events[info.Name] = info
}

// DeclareFunction registers one function overload under its behavior
// block's capability guard and assigns it a mangled identifier (spec 4.2).
// capabilities must already have been produced by NewCapabilitySet for
// this same Environment's lattice.
func (e *Environment) DeclareFunction(info *FunctionInfo) {
	e.mustNotBeSealed()
	info.Mangled = Mangle(e.lattice, info)
	e.functions[info.Name] = append(e.functions[info.Name], info)
}

// NewCapabilitySet exposes the environment's shared capability lattice to
// callers building a FunctionInfo from a parsed behavior block.
func (e *Environment) NewCapabilitySet(capabilities []ast.CallerCapability) *CapabilitySet {
	return e.lattice.newCapabilitySet(capabilities)
}

func (e *Environment) mustNotBeSealed() {
	if e.sealed {
		panic("environment: declaration attempted after Seal")
	}
}

// Seal ends the build phase and freezes the event table into a minimal
// perfect hash index (spec 5: the key set is known once the build phase
// ends, and is never written to again). Contract, currency and function
// lookups keep using the build-phase maps.
func (e *Environment) Seal() {
	if e.sealed {
		return
	}
	e.sealed = true
	e.index = buildSealedIndex(e)
}

// IsDeclaredContract implements types.EnvironmentHandle.
func (e *Environment) IsDeclaredContract(name string) bool {
	return e.contracts[name]
}

// IsCurrencyType implements types.EnvironmentHandle.
func (e *Environment) IsCurrencyType(name string) bool {
	return e.currencyTypes[name]
}

// IsGeneratedInitializer reports whether name is a compiler-generated
// coercion initializer (spec 4.4, point 2): every currency type gets one
// automatically, and none is ever user-written.
func (e *Environment) IsGeneratedInitializer(name string) bool {
	return e.currencyTypes[name]
}

// ResolveEvent looks up a declared event by name using the sealed index
// once available, falling back to the build-phase map beforehand (tests
// commonly resolve before calling Seal).
func (e *Environment) ResolveEvent(name string) (*EventInfo, bool) {
	if e.sealed {
		return e.index.resolveEvent(name)
	}
	info, ok := e.events[name]
	return info, ok
}

// ResolveFunction finds the function overload named `name` whose
// capability set accepts caller, returning ok=false if no declared
// overload of that name exists at all (an unresolved reference, spec 7
// kind 3) or matched=false if overloads exist but none accept caller (a
// capability violation, spec 7 kind 4).
func (e *Environment) ResolveFunction(name string, caller *CapabilitySet) (info *FunctionInfo, ok bool, matched bool) {
	overloads := e.functions[name]
	if len(overloads) == 0 {
		return nil, false, false
	}
	for _, candidate := range overloads {
		if candidate.Capabilities.Accepts(caller) {
			return candidate, true, true
		}
	}
	return overloads[0], true, false
}

// VisibleNames returns every declared function and event name, for
// did-you-mean suggestions on an unresolved reference (spec 7 kind 3).
func (e *Environment) VisibleNames() []string {
	var names []string
	for name := range e.functions {
		names = append(names, name)
	}
	for name := range e.events {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
