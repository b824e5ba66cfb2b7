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

// Package diagnostics models the domain-level error kinds of spec 7 as Go
// error values carrying a source range, the way the teacher's
// runtime/pretty package treats an "error" as "anything with an
// ast.Range and an Error() string" rather than a formatted string.
package diagnostics

import (
	"fmt"

	"github.com/flintlang/flintc/ast"
)

// Kind is one of the five collectable diagnostic kinds of spec 7, or the
// non-fatal KindCollectionCollapseWarning. Kind 6 (internal invariant) is deliberately not representable here: it is a
// fatal assertion that panics rather than being collected (spec 7,
// "Kind 6 aborts").
type Kind int

const (
	KindParseFailure Kind = iota
	KindUnknownType
	KindUnresolvedReference
	KindCapabilityViolation
	KindInitializerIncomplete
	KindCollectionCollapseWarning
)

func (k Kind) String() string {
	switch k {
	case KindParseFailure:
		return "parse failure"
	case KindUnknownType:
		return "unknown type"
	case KindUnresolvedReference:
		return "unresolved reference"
	case KindCapabilityViolation:
		return "capability violation"
	case KindInitializerIncomplete:
		return "initializer incomplete"
	case KindCollectionCollapseWarning:
		return "collection type collapse"
	default:
		return "?"
	}
}

// Diagnostic is a single reported problem, keyed by source location
// (spec 6, "Exit contract").
type Diagnostic struct {
	Kind    Kind
	Message string
	Hint    string // optional, e.g. a levenshtein "did you mean" suggestion
	ast.Range
}

func (d *Diagnostic) Error() string {
	if d.Hint != "" {
		return fmt.Sprintf("%s: %s (%s)", d.Kind, d.Message, d.Hint)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// IsFatal reports whether this diagnostic's kind prevents any output from
// being emitted (spec 7: "There is no partial code emission"). The
// collection-collapse warning is the one non-fatal kind.
func (d *Diagnostic) IsFatal() bool {
	return d.Kind != KindCollectionCollapseWarning
}

// Sink accumulates diagnostics across a single compilation. A compilation
// that produces any fatal diagnostic returns no target IR output
// (spec 7).
type Sink struct {
	diagnostics []*Diagnostic
}

func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) Report(d *Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
}

func (s *Sink) All() []*Diagnostic {
	return s.diagnostics
}

// HasFatal reports whether any reported diagnostic is fatal.
func (s *Sink) HasFatal() bool {
	for _, d := range s.diagnostics {
		if d.IsFatal() {
			return true
		}
	}
	return false
}
