package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/bussin/ast"
)

func TestParseVarDeclaration(t *testing.T) {
	program := New("let x = 5;").Parse()
	assert.Len(t, program.Body, 1)

	decl, ok := program.Body[0].(*ast.VarDeclaration)
	assert.True(t, ok)
	assert.False(t, decl.Constant)
	assert.Equal(t, "x", decl.Name)

	lit, ok := decl.Value.(*ast.NumericLiteral)
	assert.True(t, ok)
	assert.Equal(t, float64(5), lit.Value)
}

func TestParseBareLetIsNull(t *testing.T) {
	program := New("let x;").Parse()
	decl := program.Body[0].(*ast.VarDeclaration)
	assert.Nil(t, decl.Value)
}

func TestParseAdditivePrecedenceIncludesComparison(t *testing.T) {
	// a < b + 1 parses as (a < b) + 1 under left-fold additive precedence.
	program := New("a < b + 1;").Parse()
	expr := program.Body[0].(*ast.BinaryExpr)
	assert.Equal(t, "+", expr.Operator)

	left := expr.Left.(*ast.BinaryExpr)
	assert.Equal(t, "<", left.Operator)
}

func TestParseAndExprSingleOperator(t *testing.T) {
	// `a && b` parses to one BinaryExpr; and_expr consumes at most one
	// logical operator per invocation.
	program := New("a && b;").Parse()
	_, ok := program.Body[0].(*ast.BinaryExpr)
	assert.True(t, ok)
}

func TestParseObjectLiteralWithTrailingComma(t *testing.T) {
	program := New("let o = { a: 1, b, };").Parse()
	decl := program.Body[0].(*ast.VarDeclaration)
	obj := decl.Value.(*ast.ObjectLiteral)
	assert.Len(t, obj.Properties, 2)
	assert.Equal(t, "a", obj.Properties[0].Key)
	assert.NotNil(t, obj.Properties[0].Value)
	assert.Equal(t, "b", obj.Properties[1].Key)
	assert.Nil(t, obj.Properties[1].Value)
}

func TestParseIfAlwaysHasAlternate(t *testing.T) {
	program := New("if (5 > 3) { println(1); }").Parse()
	ifStmt := program.Body[0].(*ast.IfStatement)
	assert.NotNil(t, ifStmt.Alternate)
	block, ok := ifStmt.Alternate.(*ast.BlockStatement)
	assert.True(t, ok)
	assert.Empty(t, block.Body)
}

func TestParseForStatement(t *testing.T) {
	program := New("for (let i = 0; i < 3; i = i + 1) { println(i); }").Parse()
	forStmt := program.Body[0].(*ast.ForStatement)
	assert.Equal(t, "i", forStmt.Init.Name)
	assert.NotNil(t, forStmt.Test)
	assert.NotNil(t, forStmt.Update)
	assert.Len(t, forStmt.Body, 1)
}

func TestParseFunctionDeclaration(t *testing.T) {
	program := New("fn add(a, b) { a + b }").Parse()
	fn := program.Body[0].(*ast.FunctionDeclaration)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	assert.Len(t, fn.Body, 1)
}

func TestParseTryCatch(t *testing.T) {
	program := New("try { let z = 1; } catch { println(error); }").Parse()
	tc := program.Body[0].(*ast.TryCatchStatement)
	assert.Len(t, tc.Body, 1)
	assert.Len(t, tc.Handler, 1)
}

func TestParseMemberChain(t *testing.T) {
	program := New("o.b.c;").Parse()
	outer := program.Body[0].(*ast.MemberExpr)
	assert.False(t, outer.Computed)
	inner := outer.Object.(*ast.MemberExpr)
	assert.False(t, inner.Computed)
	root := inner.Object.(*ast.Identifier)
	assert.Equal(t, "o", root.Symbol)
}

func TestParseComputedMemberAssignment(t *testing.T) {
	program := New(`o["x"] = 1;`).Parse()
	assign := program.Body[0].(*ast.AssignmentExpr)
	member := assign.Target.(*ast.MemberExpr)
	assert.True(t, member.Computed)
}

func TestParseChainedCalls(t *testing.T) {
	program := New("f()();").Parse()
	outer := program.Body[0].(*ast.CallExpr)
	_, ok := outer.Callee.(*ast.CallExpr)
	assert.True(t, ok)
}

func TestParseVarDeclarationStringSwallow(t *testing.T) {
	// A String token directly between the value expr and ';' is
	// consumed and discarded, not an error.
	program := New(`let x = 5 "oops";`).Parse()
	decl := program.Body[0].(*ast.VarDeclaration)
	lit := decl.Value.(*ast.NumericLiteral)
	assert.Equal(t, float64(5), lit.Value)
}
