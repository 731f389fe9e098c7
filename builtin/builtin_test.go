package builtin

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/bussin/values"
)

func TestGlobalScopeHasConstants(t *testing.T) {
	out := &bytes.Buffer{}
	g := NewGlobalScope(out, bufio.NewReader(strings.NewReader("")))

	v, err := g.Lookup("true")
	assert.NoError(t, err)
	assert.Equal(t, values.Bool{Value: true}, v)

	assert.True(t, g.IsConstant("true"))
	assert.False(t, g.IsConstant("error"))
}

func TestPrintln(t *testing.T) {
	out := &bytes.Buffer{}
	g := NewGlobalScope(out, bufio.NewReader(strings.NewReader("")))

	fn, _ := g.Lookup("println")
	native := fn.(values.NativeFn)
	_, err := native.Callback([]values.Value{values.Number{Value: 14}, values.String{Value: "hi"}})
	assert.NoError(t, err)
	assert.Equal(t, "14\nhi\n", out.String())
}

func TestStrcon(t *testing.T) {
	out := &bytes.Buffer{}
	g := NewGlobalScope(out, bufio.NewReader(strings.NewReader("")))
	fn, _ := g.Lookup("strcon")
	native := fn.(values.NativeFn)
	v, err := native.Callback([]values.Value{values.String{Value: "a"}, values.Number{Value: 1}, values.Bool{Value: true}})
	assert.NoError(t, err)
	assert.Equal(t, values.String{Value: "a1true"}, v)
}

func TestFormatOnlyKeepsLastSubstitution(t *testing.T) {
	out := &bytes.Buffer{}
	g := NewGlobalScope(out, bufio.NewReader(strings.NewReader("")))
	fn, _ := g.Lookup("format")
	native := fn.(values.NativeFn)

	v, err := native.Callback([]values.Value{
		values.String{Value: "${} and ${}"},
		values.String{Value: "first"},
		values.String{Value: "second"},
	})
	assert.NoError(t, err)
	assert.Equal(t, values.String{Value: "second and ${}"}, v)
}

func TestFormatRequiresAtLeastTwoArgs(t *testing.T) {
	out := &bytes.Buffer{}
	g := NewGlobalScope(out, bufio.NewReader(strings.NewReader("")))
	fn, _ := g.Lookup("format")
	native := fn.(values.NativeFn)

	_, err := native.Callback([]values.Value{values.String{Value: "hi"}})
	assert.Error(t, err)
}

func TestInputReturnsNullOnEmptyLine(t *testing.T) {
	out := &bytes.Buffer{}
	g := NewGlobalScope(out, bufio.NewReader(strings.NewReader("\n")))
	fn, _ := g.Lookup("input")
	native := fn.(values.NativeFn)

	v, err := native.Callback([]values.Value{values.String{Value: "> "}})
	assert.NoError(t, err)
	assert.Equal(t, values.Null{}, v)
	assert.Equal(t, "> ", out.String())
}

func TestInputReturnsLine(t *testing.T) {
	out := &bytes.Buffer{}
	g := NewGlobalScope(out, bufio.NewReader(strings.NewReader("hello\n")))
	fn, _ := g.Lookup("input")
	native := fn.(values.NativeFn)

	v, err := native.Callback(nil)
	assert.NoError(t, err)
	assert.Equal(t, values.String{Value: "hello"}, v)
}

func TestMathObject(t *testing.T) {
	out := &bytes.Buffer{}
	g := NewGlobalScope(out, bufio.NewReader(strings.NewReader("")))
	mathVal, _ := g.Lookup("math")
	mathObj := mathVal.(*values.Object)

	sqrtFn := mathObj.Properties["sqrt"].(values.NativeFn)
	v, err := sqrtFn.Callback([]values.Value{values.Number{Value: 9}})
	assert.NoError(t, err)
	assert.Equal(t, values.Number{Value: 3}, v)

	randomFn := mathObj.Properties["random"].(values.NativeFn)
	rv, err := randomFn.Callback([]values.Value{values.Number{Value: 2}, values.Number{Value: 2}})
	assert.NoError(t, err)
	assert.Equal(t, values.Number{Value: 2}, rv)
}
