package eval

import (
	"fmt"

	"github.com/akashmaji946/bussin/ast"
	"github.com/akashmaji946/bussin/scope"
	"github.com/akashmaji946/bussin/values"
)

// evalVarDeclaration evaluates the RHS (or defaults to Null), clones it,
// and declares it in env with the given constant flag.
func evalVarDeclaration(node *ast.VarDeclaration, env *scope.Scope) (values.Value, error) {
	var val values.Value = values.Null{}
	if node.Value != nil {
		v, err := Eval(node.Value, env)
		if err != nil {
			return nil, err
		}
		val = v
	}
	bound := val.Clone()
	if err := env.Declare(node.Name, bound, node.Constant); err != nil {
		return nil, err
	}
	return bound, nil
}

// evalFunctionDeclaration captures env as the closure anchor and
// declares the binding as constant (spec.md §4.3).
func evalFunctionDeclaration(node *ast.FunctionDeclaration, env *scope.Scope) (values.Value, error) {
	fn := &Function{Name: node.Name, Params: node.Params, Body: node.Body, Scope: env}
	if err := env.Declare(node.Name, fn, true); err != nil {
		return nil, err
	}
	return fn, nil
}

// evalIfStatement requires a Bool test; the chosen branch runs in a
// fresh child scope.
func evalIfStatement(node *ast.IfStatement, env *scope.Scope) (values.Value, error) {
	testVal, err := evalBoolTest(node.Test, env, "if")
	if err != nil {
		return nil, err
	}
	if testVal {
		child := scope.New(env)
		return EvalBody(node.Body, child)
	}
	return Eval(node.Alternate, env)
}

// evalForStatement runs init in a fresh for-scope, gates entry on the
// initial test, then repeats update → body → test. Update runs before
// the body on every iteration including the first; the body shares the
// for-scope rather than getting its own nested scope (spec.md §4.3).
func evalForStatement(node *ast.ForStatement, env *scope.Scope) (values.Value, error) {
	forScope := scope.New(env)
	if _, err := Eval(node.Init, forScope); err != nil {
		return nil, err
	}

	testVal, err := evalBoolTest(node.Test, forScope, "for")
	if err != nil {
		return nil, err
	}
	if !testVal {
		return values.Null{}, nil
	}

	for {
		if _, err := Eval(node.Update, forScope); err != nil {
			return nil, err
		}
		if _, err := EvalBody(node.Body, forScope); err != nil {
			return nil, err
		}
		testVal, err = evalBoolTest(node.Test, forScope, "for")
		if err != nil {
			return nil, err
		}
		if !testVal {
			break
		}
	}
	return values.Null{}, nil
}

// evalTryCatchStatement runs body in a fresh scope; on error, the
// error's textual form is assigned into the global `error` binding
// (resolved by walking env's chain, per spec.md §4.3 — "the scope that
// DECLARED error is the global one") and handler runs in a second fresh
// scope.
func evalTryCatchStatement(node *ast.TryCatchStatement, env *scope.Scope) (values.Value, error) {
	tryScope := scope.New(env)
	result, err := EvalBody(node.Body, tryScope)
	if err == nil {
		return result, nil
	}

	if assignErr := env.Assign("error", values.String{Value: err.Error()}); assignErr != nil {
		return nil, assignErr
	}
	catchScope := scope.New(env)
	return EvalBody(node.Handler, catchScope)
}

func evalBoolTest(expr ast.Expr, env *scope.Scope, construct string) (bool, error) {
	v, err := Eval(expr, env)
	if err != nil {
		return false, err
	}
	b, ok := v.(values.Bool)
	if !ok {
		return false, fmt.Errorf("type error: %s condition must be a bool, got %s", construct, debugTypeName(v))
	}
	return b.Value, nil
}
