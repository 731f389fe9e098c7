// Package builtin constructs Bussin's global scope: the constants
// true/false/null, the mutable error binding, and the NativeFn registry
// (println, exec, input, strcon, format, time, math.*) from spec.md §4.5,
// mirroring how the teacher's objects/builtins.go populates a global
// Builtins registry via init().
package builtin

import (
	"bufio"
	"io"

	"github.com/akashmaji946/bussin/scope"
	"github.com/akashmaji946/bussin/values"
)

// NewGlobalScope builds the root scope with built-ins wired against out
// (stdout for println/input prompts) and in (stdin for input). Passing
// explicit handles, rather than reaching for os.Stdout/os.Stdin
// directly, is what lets tests capture output without touching the
// process's real streams.
func NewGlobalScope(out io.Writer, in *bufio.Reader) *scope.Scope {
	g := scope.New(nil)

	mustDeclare(g, "true", values.Bool{Value: true}, true)
	mustDeclare(g, "false", values.Bool{Value: false}, true)
	mustDeclare(g, "null", values.Null{}, true)
	mustDeclare(g, "error", values.Null{}, false)

	mustDeclare(g, "println", values.NativeFn{Name: "println", Callback: printlnFn(out)}, true)
	mustDeclare(g, "exec", values.NativeFn{Name: "exec", Callback: execFn}, true)
	mustDeclare(g, "input", values.NativeFn{Name: "input", Callback: inputFn(out, in)}, true)
	mustDeclare(g, "strcon", values.NativeFn{Name: "strcon", Callback: strconFn}, true)
	mustDeclare(g, "format", values.NativeFn{Name: "format", Callback: formatFn}, true)
	mustDeclare(g, "time", values.NativeFn{Name: "time", Callback: timeFn}, true)
	mustDeclare(g, "math", mathObject(), true)

	return g
}

// mustDeclare panics on a declare failure — only reachable if this
// function itself declares the same name twice, which would be a
// programming error in this file, not a runtime condition.
func mustDeclare(g *scope.Scope, name string, v values.Value, constant bool) {
	if err := g.Declare(name, v, constant); err != nil {
		panic(err)
	}
}
