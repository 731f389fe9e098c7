// Command bussin is the Bussin interpreter's CLI driver: a file runner
// and a stateless REPL, mirroring the teacher's main/main.go but
// dropping its TCP server mode (spec.md §6 names only file-mode and a
// stdin REPL — no networked surface belongs here).
package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/akashmaji946/bussin/builtin"
	"github.com/akashmaji946/bussin/eval"
	"github.com/akashmaji946/bussin/parser"
	"github.com/akashmaji946/bussin/repl"
	"github.com/akashmaji946/bussin/transcriber"
	"github.com/akashmaji946/bussin/values"
)

const (
	version = "v1.0.0"
	author  = "the Bussin project"
	license = "MIT"
	prompt  = "bussin >>> "
	line    = "----------------------------------------------------------------"
)

var banner = `
 ____                _
| __ ) _   _ ___ ___(_)_ __
|  _ \| | | / __/ __| | '_ \
| |_) | |_| \__ \__ \ | | | |
|____/ \__,_|___/___/_|_| |_|
`

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		default:
			runFile(os.Args[1])
			return
		}
	}

	r := repl.New(banner, version, author, line, license, prompt)
	r.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("Bussin - a small dynamically-typed scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  bussin                 Start the interactive REPL")
	yellowColor.Println("  bussin <path>          Run a Bussin source file")
	yellowColor.Println("  bussin <path>.bsx      Run a .bsx slang source file")
	yellowColor.Println("  bussin --help          Show this message")
	yellowColor.Println("  bussin --version       Show version information")
}

func showVersion() {
	cyanColor.Printf("Bussin %s (%s license)\n", version, license)
}

// runFile reads path, transcribes it first if it ends in ".bsx"
// (spec.md §6.1), then lexes/parses/evaluates it against a freshly
// built global scope. Exit code 0 on clean completion, 1 on any fatal
// error (spec.md §6).
func runFile(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read %q: %v\n", path, err)
		os.Exit(1)
	}

	source := string(content)
	if strings.HasSuffix(path, ".bsx") {
		source = transcriber.Transcribe(source)
	}

	global := builtin.NewGlobalScope(os.Stdout, bufio.NewReader(os.Stdin))
	program := parser.New(source).Parse()

	result, err := eval.Eval(program, global)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
	if _, isNull := result.(values.Null); !isNull {
		yellowColor.Fprintf(os.Stdout, "%s\n", values.Stringify(result))
	}
}
