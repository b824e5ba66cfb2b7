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

// Command flintc is the thin one-shot driver: read a source file, run it
// through the pipeline, write the emitted target IR module to stdout or
// every collected diagnostic to stderr. It carries no logic of its own
// beyond flag parsing, file I/O, and banner colorizing.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/logrusorgru/aurora/v4"

	"github.com/flintlang/flintc/config"
	"github.com/flintlang/flintc/debug"
	"github.com/flintlang/flintc/diagnostics"
	"github.com/flintlang/flintc/emitter"
	"github.com/flintlang/flintc/parser"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("flintc", flag.ContinueOnError)
	configPath := flags.String("config", "flintc.yaml", "path to an optional collection-policy config file")
	dumpAST := flags.Bool("dump-ast", false, "dump the parsed AST as JSON instead of compiling")
	dumpIR := flags.Bool("dump-ir", false, "dump the emitted IR module as JSON instead of its rendered text")
	query := flags.String("query", "", "a gojq filter applied to the -dump-ast or -dump-ir output")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: flintc [flags] <source-file>")
		return 2
	}
	path := flags.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("flintc: %s", err)))
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("flintc: %s", err)))
		return 1
	}

	module, sink := parser.Parse(string(source))
	if sink.HasFatal() {
		return reportFatal(path, sink.All())
	}

	if *dumpAST {
		return dumpAndExit(module, *query)
	}

	ir, sink := emitter.Emit(module, cfg)
	if sink.HasFatal() {
		return reportFatal(path, sink.All())
	}

	if *dumpIR {
		return dumpAndExit(ir, *query)
	}

	fmt.Println(ir.String())
	fmt.Fprintln(os.Stderr, aurora.Green(fmt.Sprintf("flintc: %s compiled", path)))
	return 0
}

func dumpAndExit(node interface{}, query string) int {
	if query != "" {
		results, err := debug.Query(node, query)
		if err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("flintc: %s", err)))
			return 1
		}
		for _, result := range results {
			fmt.Println(result)
		}
		return 0
	}

	dumped, err := debug.Dump(node)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("flintc: %s", err)))
		return 1
	}
	fmt.Println(dumped)
	return 0
}

func reportFatal(path string, all []*diagnostics.Diagnostic) int {
	fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("flintc: %s failed to compile", path)))
	for _, d := range all {
		fmt.Fprintln(os.Stderr, d)
	}
	return 1
}
