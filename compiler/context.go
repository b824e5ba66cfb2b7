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
	"fmt"

	"github.com/flintlang/flintc/ast"
	"github.com/flintlang/flintc/config"
	"github.com/flintlang/flintc/diagnostics"
	"github.com/flintlang/flintc/environment"
	"github.com/flintlang/flintc/ir"
	"github.com/flintlang/flintc/types"
)

// selfState is the initializer's two-mode state machine (spec 9, "self
// materialization"): before the struct is constructed, self.field reads
// and writes a staging local; after, self is the bound struct value.
type selfState int

const (
	stateStaging selfState = iota
	stateBound
)

// local is one entry of the FunctionContext's scope stack: a source name
// bound to its canonical type and the target identifier it lowers to.
type local struct {
	canonical types.Canonical
	target    string
}

// FunctionContext is the mutable emitter owned by exactly one lowering
// invocation (spec 9, "FunctionContext as mutable emitter"): its scope
// stack and pending-release list grow as lowering proceeds, and nothing
// outside the invocation observes them. Lowered statements are returned to
// the caller rather than buffered here.
type FunctionContext struct {
	Contract *ContractInfo
	Env      *environment.Environment
	Config   config.Config
	Sink     *diagnostics.Sink

	// Capabilities is the caller-capability set active for the function
	// being lowered, consulted by call dispatch (spec 4.4) to choose
	// among overloads of the callee's source name.
	Capabilities *environment.CapabilitySet

	// IsConstructor is true while lowering an initializer body (spec 4.6);
	// every other function lowers fields through contract storage.
	IsConstructor bool
	self          selfState

	scopes  []map[string]local
	pending []string
}

// NewFunctionContext starts a fresh lowering invocation. isConstructor
// selects initializer-mode self materialization; capabilities is the
// active caller-capability set of the behavior block the function was
// declared in.
func NewFunctionContext(contract *ContractInfo, env *environment.Environment, cfg config.Config, sink *diagnostics.Sink, capabilities *environment.CapabilitySet, isConstructor bool) *FunctionContext {
	fc := &FunctionContext{
		Contract:      contract,
		Env:           env,
		Config:        cfg,
		Sink:          sink,
		Capabilities:  capabilities,
		IsConstructor: isConstructor,
		self:          stateStaging,
	}
	fc.PushScope()
	return fc
}

func (fc *FunctionContext) PushScope() {
	fc.scopes = append(fc.scopes, map[string]local{})
}

func (fc *FunctionContext) PopScope() {
	fc.scopes = fc.scopes[:len(fc.scopes)-1]
}

// Declare binds name in the innermost scope. target is the identifier it
// lowers to: the mangled local name for an ordinary local, or the staging
// slot name inside an initializer.
func (fc *FunctionContext) Declare(name string, canonical types.Canonical, target string) {
	fc.scopes[len(fc.scopes)-1][name] = local{canonical: canonical, target: target}
}

// Lookup searches the scope stack innermost-first.
func (fc *FunctionContext) Lookup(name string) (local, bool) {
	for i := len(fc.scopes) - 1; i >= 0; i-- {
		if l, ok := fc.scopes[i][name]; ok {
			return l, true
		}
	}
	return local{}, false
}

// BindSelf transitions the initializer's self state machine from Staging
// to Bound, once, at the point the struct constructor is emitted (spec
// 4.6 Phase B).
func (fc *FunctionContext) BindSelf() {
	fc.self = stateBound
}

func (fc *FunctionContext) isSelfBound() bool {
	return fc.self == stateBound
}

// senderIdentifier is the target IR's opaque reference to the calling
// account (the Move-style `borrow_global_mut<T>(sender)` idiom of spec
// 4.3); this compiler never models the sender as a user-visible local.
func senderIdentifier() *ir.Identifier {
	return &ir.Identifier{Name: "sender"}
}

// Acquire registers one pending mutable-reference acquisition (a contract
// storage borrow) under token, for release at every function exit (spec
// 4.7). Tokens are never removed individually; EmitReleaseReferences
// reads the current pending list without mutating it, since the borrow
// lexically remains live for the rest of the function body regardless of
// how many conditional branches have already returned.
func (fc *FunctionContext) Acquire(token string) {
	fc.pending = append(fc.pending, token)
}

// nextStorageToken names the Nth contract storage borrow acquired in this
// function, so every acquisition gets a distinct release token.
func (fc *FunctionContext) nextStorageToken() string {
	return fmt.Sprintf("storage_%d", len(fc.pending))
}

// EmitReleaseReferences renders the pending acquisitions as Release
// statements in LIFO order (spec 4.7, spec 8 "matching release... in LIFO
// order").
func (fc *FunctionContext) EmitReleaseReferences() []ir.Statement {
	var releases []ir.Statement
	for i := len(fc.pending) - 1; i >= 0; i-- {
		releases = append(releases, &ir.Release{Token: fc.pending[i]})
	}
	return releases
}

func (fc *FunctionContext) fatal(kind diagnostics.Kind, message string, r ast.Range) {
	fc.Sink.Report(&diagnostics.Diagnostic{Kind: kind, Message: message, Range: r})
}

// NewConstructorContext starts a fresh lowering invocation in initializer
// mode (spec 4.6), under the given caller-capability guard. Field names are
// deliberately left undeclared in fc's scope: lowerFieldAccess dispatches a
// bare or self-qualified field reference to the staging slot or to storage
// purely from fc.IsConstructor and the self state machine, so every field
// access - whether in the initializer's own body or reached indirectly -
// routes through the same one logic regardless of which phase emitted it.
func NewConstructorContext(contract *ContractInfo, env *environment.Environment, cfg config.Config, capabilities *environment.CapabilitySet, sink *diagnostics.Sink) *FunctionContext {
	return NewFunctionContext(contract, env, cfg, sink, capabilities, true)
}

// LowerTopLevelStatement lowers one statement of an initializer body in
// source order (spec 4.6 Phase A's per-statement walk), reusing the same
// per-statement lowering ordinary functions use.
func (fc *FunctionContext) LowerTopLevelStatement(s ast.Statement) []ir.Statement {
	return fc.lowerStatement(s)
}

// StagingSlotName exposes the initializer's staging-local naming scheme
// (spec 4.6 Phase A) so compiler/initializer can declare the same slots
// lowerFieldAccess resolves field references to.
func StagingSlotName(field string) string {
	return stagingSlotName(field)
}

// Snapshot is a plain-data view of a FunctionContext's interior, for the
// debug package to pretty-print when a lowering assertion fails. It
// exists because FunctionContext's scope stack and pending-release list
// are unexported: nothing outside the lowerer invocation that owns a
// FunctionContext should be able to mutate them, but a test failure still
// needs to see what they held.
type Snapshot struct {
	IsConstructor bool
	SelfBound     bool
	Scopes        []map[string]string
	Pending       []string
}

// Snapshot captures fc's current scope stack (source name -> lowered
// target identifier) and pending-release tokens.
func (fc *FunctionContext) Snapshot() Snapshot {
	scopes := make([]map[string]string, len(fc.scopes))
	for i, scope := range fc.scopes {
		flat := make(map[string]string, len(scope))
		for name, l := range scope {
			flat[name] = l.target
		}
		scopes[i] = flat
	}
	pending := make([]string, len(fc.pending))
	copy(pending, fc.pending)
	return Snapshot{
		IsConstructor: fc.IsConstructor,
		SelfBound:     fc.isSelfBound(),
		Scopes:        scopes,
		Pending:       pending,
	}
}
