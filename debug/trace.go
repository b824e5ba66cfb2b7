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

package debug

import (
	"github.com/k0kubun/pp/v3"

	"github.com/flintlang/flintc/compiler"
)

// Trace pretty-prints a FunctionContext's Snapshot: its scope stack,
// constructor/self-binding state, and pending-release tokens. Intended
// for a t.Log call from compiler's own tests when a lowering assertion
// fails, not for the compiler's normal exit path.
func Trace(fc *compiler.FunctionContext) string {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	return printer.Sprint(fc.Snapshot())
}
