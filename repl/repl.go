// Package repl implements Bussin's interactive read-eval-print loop.
// It mirrors the teacher's repl package (chzyer/readline for line
// editing/history, fatih/color for feedback), but the loop itself
// follows spec.md §6 rather than go-mix's: each line gets its own fresh
// global scope (REPL sessions are stateless between lines), and an
// empty line or "exit" terminates the process with status 1 — both are
// quirks carried over verbatim from the original source
// (_examples/original_source/src/main.rs), not bugs introduced here.
package repl

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/bussin/builtin"
	"github.com/akashmaji946/bussin/eval"
	"github.com/akashmaji946/bussin/parser"
	"github.com/akashmaji946/bussin/values"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for a session — no interpreter
// state lives here, since state is intentionally not carried between
// lines.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New constructs a Repl with the given banner/version/prompt fields.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBanner writes the startup banner to writer.
func (r *Repl) PrintBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Bussin!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "An empty line or \"exit\" ends the session.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-eval-print loop against reader/writer. It never
// returns normally — it calls os.Exit(1) once the terminating input is
// seen, per spec.md §6.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	stdin := bufio.NewReader(reader)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			os.Exit(1)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "exit" {
			writer.Write([]byte("Good Bye!\n"))
			os.Exit(1)
		}
		rl.SaveHistory(line)

		r.evalLine(trimmed, stdin, writer)
	}
}

// evalLine builds a fresh global scope, parses and evaluates trimmed in
// it, and prints the result in debug form. Parse failures are fatal per
// spec.md §4.2/§6 (the parser itself calls os.Exit(1)); only evaluator
// errors are recoverable here, matching the REPL's "keep going after a
// bad line" behavior.
func (r *Repl) evalLine(trimmed string, stdin *bufio.Reader, writer io.Writer) {
	global := builtin.NewGlobalScope(writer, stdin)
	program := parser.New(trimmed).Parse()

	result, err := eval.Eval(program, global)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}
	yellowColor.Fprintf(writer, "%s\n", values.Stringify(result))
}
