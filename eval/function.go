package eval

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/bussin/ast"
	"github.com/akashmaji946/bussin/scope"
	"github.com/akashmaji946/bussin/values"
)

// Function is a user-defined closure. It is defined here, not in
// values, because it needs both ast (for its body) and scope (for its
// closure anchor) — putting it in values would create an import cycle
// (values would need scope, scope already needs values). Go's implicit
// interface satisfaction lets Function implement values.Value without
// values ever knowing this type exists.
type Function struct {
	Name   string
	Params []string
	Body   []ast.Stmt
	Scope  *scope.Scope // the scope active at declaration time; the closure anchor
}

func (*Function) Type() values.Type { return values.FunctionType }

// Clone copies the Function struct but deliberately shares the same
// *scope.Scope pointer — spec.md §3.3: "Function holds a reference to
// the scope active at declaration time". Cloning the struct (not the
// scope) is what lets a Function value be rebound to a new variable
// name without breaking its closure.
func (f *Function) Clone() values.Value {
	return &Function{Name: f.Name, Params: f.Params, Body: f.Body, Scope: f.Scope}
}

// String renders the descriptive form values.Stringify falls back to
// for any values.Value that is also a fmt.Stringer (spec.md §4.5:
// "Function → a descriptive form including name and body").
func (f *Function) String() string {
	return fmt.Sprintf("function %s(%s) { <%d statement(s)> }", f.Name, strings.Join(f.Params, ", "), len(f.Body))
}
