// Package eval walks a Bussin *ast.Program against a *scope.Scope and
// produces values.Value results, mirroring the Go idiom of threading
// (Value, error) pairs in place of the original Rust source's
// Result<ValueType, Box<dyn Error>> (see
// _examples/original_source/src/runtime/interpreter.rs).
package eval

import (
	"fmt"

	"github.com/akashmaji946/bussin/ast"
	"github.com/akashmaji946/bussin/scope"
	"github.com/akashmaji946/bussin/values"
)

// Eval dispatches on the dynamic type of node and evaluates it under env.
func Eval(node ast.Stmt, env *scope.Scope) (values.Value, error) {
	switch n := node.(type) {
	case *ast.Program:
		return EvalBody(n.Body, env)
	case *ast.BlockStatement:
		child := scope.New(env)
		return EvalBody(n.Body, child)
	case *ast.VarDeclaration:
		return evalVarDeclaration(n, env)
	case *ast.FunctionDeclaration:
		return evalFunctionDeclaration(n, env)
	case *ast.IfStatement:
		return evalIfStatement(n, env)
	case *ast.ForStatement:
		return evalForStatement(n, env)
	case *ast.TryCatchStatement:
		return evalTryCatchStatement(n, env)
	case *ast.AssignmentExpr:
		return evalAssignmentExpr(n, env)
	case *ast.MemberExpr:
		return evalMemberRead(n, env)
	case *ast.CallExpr:
		return evalCallExpr(n, env)
	case *ast.BinaryExpr:
		return evalBinaryExpr(n, env)
	case *ast.Identifier:
		return env.Lookup(n.Symbol)
	case *ast.NumericLiteral:
		return values.Number{Value: n.Value}, nil
	case *ast.StringLiteral:
		return values.String{Value: n.Value}, nil
	case *ast.ObjectLiteral:
		return evalObjectLiteral(n, env)
	default:
		return nil, fmt.Errorf("evaluator error: unhandled node type %T", node)
	}
}

// EvalBody evaluates stmts in order within env and returns the value of
// the last one. An empty body evaluates to Null (spec.md §4.3).
func EvalBody(stmts []ast.Stmt, env *scope.Scope) (values.Value, error) {
	var result values.Value = values.Null{}
	for _, stmt := range stmts {
		v, err := Eval(stmt, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// debugTypeName renders a value's variant name the way the original
// Rust ValueType enum's Debug output would (e.g. "ObjectVal",
// "NumberVal"), so type-mismatch diagnostics read the way existing
// Bussin programs' try/catch handlers expect (spec.md §8 scenario 5).
func debugTypeName(v values.Value) string {
	switch v.(type) {
	case values.Null:
		return "NullVal"
	case values.Bool:
		return "BooleanVal"
	case values.Number:
		return "NumberVal"
	case values.String:
		return "StringVal"
	case *values.Object:
		return "ObjectVal"
	case *Function:
		return "FunctionVal"
	case values.NativeFn:
		return "NativeFnVal"
	default:
		return "UnknownVal"
	}
}
