package builtin

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/akashmaji946/bussin/values"
)

func printlnFn(out io.Writer) func([]values.Value) (values.Value, error) {
	return func(args []values.Value) (values.Value, error) {
		for _, a := range args {
			fmt.Fprintln(out, values.Stringify(a))
		}
		return values.Null{}, nil
	}
}

// execFn runs the named program with no arguments and returns its
// captured stdout, matching spec.md §4.5 exactly — unlike the teacher's
// go-mix `os.exec`, which takes variadic args and merges stderr in via
// CombinedOutput.
func execFn(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("arity error: exec expects 1 argument, got %d", len(args))
	}
	cmdStr, ok := args[0].(values.String)
	if !ok {
		return nil, fmt.Errorf("type error: exec expects a string argument")
	}
	out, err := exec.Command(cmdStr.Value).Output()
	if err != nil {
		return nil, fmt.Errorf("host error: exec %q failed: %w", cmdStr.Value, err)
	}
	return values.String{Value: string(out)}, nil
}

func inputFn(out io.Writer, in *bufio.Reader) func([]values.Value) (values.Value, error) {
	return func(args []values.Value) (values.Value, error) {
		if len(args) >= 1 {
			fmt.Fprint(out, values.Stringify(args[0]))
		}
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return values.Null{}, nil
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return values.Null{}, nil
		}
		return values.String{Value: line}, nil
	}
}

func strconFn(args []values.Value) (values.Value, error) {
	var b strings.Builder
	for _, a := range args {
		b.WriteString(values.Stringify(a))
	}
	return values.String{Value: b.String()}, nil
}

// formatFn reproduces the original's quirk exactly (spec.md §9): it
// requires a template plus at least one substitution argument, and each
// extra argument replaces the first "${}" occurrence found in the
// ORIGINAL template — not the progressively-substituted result — so
// only the last argument's substitution is visible in the final string
// when more than one is supplied.
func formatFn(args []values.Value) (values.Value, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("arity error: format expects a template and at least one substitution argument")
	}
	template, ok := args[0].(values.String)
	if !ok {
		return nil, fmt.Errorf("type error: format expects a string template")
	}

	result := template.Value
	for _, a := range args[1:] {
		result = strings.Replace(template.Value, "${}", values.Stringify(a), 1)
	}
	return values.String{Value: result}, nil
}

func timeFn(args []values.Value) (values.Value, error) {
	return values.Number{Value: float64(time.Now().Unix())}, nil
}
