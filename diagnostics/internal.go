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

package diagnostics

import "fmt"

// UnreachableError signals Kind 6 of spec 7: a structural malformation of
// the AST that should never arise after a successful parse (e.g. a
// non-binary-operator token inside a BinaryExpression). Per spec 7,
// "Kind 6 aborts" - callers should recover from this only in test
// harnesses, never in the compiler's own control flow.
type UnreachableError struct {
	Reason string
}

func (e UnreachableError) Error() string {
	return fmt.Sprintf("internal error: unreachable: %s", e.Reason)
}

// Unreachable panics with an UnreachableError. Call sites use this instead
// of a bare panic so that every internal-invariant failure carries a
// uniform, greppable message.
func Unreachable(reason string) {
	panic(UnreachableError{Reason: reason})
}
