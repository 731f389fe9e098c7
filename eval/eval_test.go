package eval_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/bussin/builtin"
	"github.com/akashmaji946/bussin/eval"
	"github.com/akashmaji946/bussin/parser"
	"github.com/akashmaji946/bussin/values"
)

func run(t *testing.T, src string) (values.Value, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	global := builtin.NewGlobalScope(out, bufio.NewReader(strings.NewReader("")))
	program := parser.New(src).Parse()
	v, err := eval.Eval(program, global)
	return v, out.String(), err
}

// Scenario 1: let x = 2 + 3 * 4; println(x); → prints 14.
func TestScenarioArithmeticPrecedence(t *testing.T) {
	_, out, err := run(t, "let x = 2 + 3 * 4; println(x);")
	assert.NoError(t, err)
	assert.Equal(t, "14\n", out)
}

// Scenario 2: fn add(a,b){ let r = a + b; r } println(add(2,3)); → prints 5.
func TestScenarioFunctionCall(t *testing.T) {
	_, out, err := run(t, "fn add(a,b){ let r = a + b; r } println(add(2,3));")
	assert.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

// Scenario 3: nested object member write then read.
func TestScenarioNestedMemberWrite(t *testing.T) {
	_, out, err := run(t, "let o = { a: 1, b: { c: 7 } }; o.b.c = 9; println(o.b.c);")
	assert.NoError(t, err)
	assert.Equal(t, "9\n", out)
}

// Scenario 4: for (let i = 0; i < 3; i = i + 1) { println(i); }.
// evalForStatement runs update before body on every iteration,
// including the first (spec.md §4.3), so the loop body never sees the
// init value unmodified — it prints 1,2,3, not 0,1,2.
func TestScenarioForLoop(t *testing.T) {
	_, out, err := run(t, "for (let i = 0; i < 3; i = i + 1) { println(i); }")
	assert.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

// Scenario 5: accessing a member path through a non-object catches a
// type-mismatch error containing "ObjectVal".
func TestScenarioTryCatchTypeMismatch(t *testing.T) {
	_, out, err := run(t, "try { let z = 1; z.bad.path } catch { println(error); }")
	assert.NoError(t, err)
	assert.Contains(t, out, "ObjectVal")
}

// Scenario 6: if (5 > 3) { println("yes"); } else { println("no"); } → yes.
func TestScenarioIfElse(t *testing.T) {
	_, out, err := run(t, `if (5 > 3) { println("yes"); } else { println("no"); }`)
	assert.NoError(t, err)
	assert.Equal(t, "yes\n", out)
}

func TestEqualsAndAndAreAliased(t *testing.T) {
	v, _, err := run(t, "1 == 1;")
	assert.NoError(t, err)
	assert.Equal(t, values.Bool{Value: true}, v)

	v2, _, err2 := run(t, "1 && 1;")
	assert.NoError(t, err2)
	assert.Equal(t, values.Bool{Value: true}, v2)
}

func TestMismatchedTypesYieldNullNotError(t *testing.T) {
	v, _, err := run(t, `1 + "x";`)
	assert.NoError(t, err)
	assert.Equal(t, values.Null{}, v)
}

func TestEqualityAcrossVariantsIsTypeError(t *testing.T) {
	_, _, err := run(t, `1 == "1";`)
	assert.Error(t, err)
}

func TestConstantReassignmentFails(t *testing.T) {
	_, _, err := run(t, "const x = 1; x = 2;")
	assert.Error(t, err)
}

func TestClosureCapturesDeclarationScope(t *testing.T) {
	_, out, err := run(t, `
		let counter = 0;
		fn makeAdder(n) { fn add() { n } add }
		let five = makeAdder(5);
		println(five());
	`)
	assert.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestMemberWriteThroughClonedParameterDoesNotReachCaller(t *testing.T) {
	_, out, err := run(t, `
		let o = { a: 1 };
		fn mutate(obj) { obj.a = 42; }
		mutate(o);
		println(o.a);
	`)
	assert.NoError(t, err)
	// Object is a reference type: cloning on parameter bind copies the
	// struct wrapper's contents too, so a member write through a cloned
	// parameter does not reach back to the caller's own binding.
	assert.Equal(t, "1\n", out)
}

func TestAssignmentToUndeclaredMissingIntermediateFails(t *testing.T) {
	_, _, err := run(t, `let o = { a: 1 }; o.missing.x = 1;`)
	assert.Error(t, err)
}

func TestEmptyBlockReturnsNull(t *testing.T) {
	v, _, err := run(t, "if (1 < 2) { }")
	assert.NoError(t, err)
	assert.Equal(t, values.Null{}, v)
}

func TestForLoopWithFalseInitialTestSkipsBodyAndUpdate(t *testing.T) {
	_, out, err := run(t, "for (let i = 5; i < 3; i = i + 1) { println(i); }")
	assert.NoError(t, err)
	assert.Equal(t, "", out)
}
