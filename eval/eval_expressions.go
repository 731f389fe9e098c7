package eval

import (
	"fmt"
	"math"

	"github.com/akashmaji946/bussin/ast"
	"github.com/akashmaji946/bussin/scope"
	"github.com/akashmaji946/bussin/values"
)

// evalObjectLiteral builds a fresh Object. Shorthand properties (no
// Value) are looked up by key in the surrounding scope at evaluation
// time (spec.md §3.2, §4.3).
func evalObjectLiteral(node *ast.ObjectLiteral, env *scope.Scope) (values.Value, error) {
	obj := values.NewObject()
	for _, prop := range node.Properties {
		if prop.Value != nil {
			v, err := Eval(prop.Value, env)
			if err != nil {
				return nil, err
			}
			obj.Properties[prop.Key] = v
		} else {
			v, err := env.Lookup(prop.Key)
			if err != nil {
				return nil, err
			}
			obj.Properties[prop.Key] = v
		}
	}
	return obj, nil
}

// evalAssignmentExpr handles the two legal target shapes from
// spec.md §4.3: an Identifier (resolve its declaring scope, forbid
// constants, overwrite with a clone) or a MemberExpr (delegate to the
// member-write protocol in member.go, which mutates in place).
func evalAssignmentExpr(node *ast.AssignmentExpr, env *scope.Scope) (values.Value, error) {
	value, err := Eval(node.Value, env)
	if err != nil {
		return nil, err
	}

	switch target := node.Target.(type) {
	case *ast.Identifier:
		bound := value.Clone()
		if err := env.Assign(target.Symbol, bound); err != nil {
			return nil, err
		}
		return bound, nil
	case *ast.MemberExpr:
		if err := evalMemberWrite(target, env, value); err != nil {
			return nil, err
		}
		return value, nil
	default:
		return nil, fmt.Errorf("type error: invalid assignment target %T", node.Target)
	}
}

// evalCallExpr evaluates the callee and arguments left-to-right, then
// dispatches on the callee's runtime kind.
func evalCallExpr(node *ast.CallExpr, env *scope.Scope) (values.Value, error) {
	callee, err := Eval(node.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]values.Value, 0, len(node.Args))
	for _, argExpr := range node.Args {
		v, err := Eval(argExpr, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	switch fn := callee.(type) {
	case values.NativeFn:
		return fn.Callback(args)
	case *Function:
		return callFunction(fn, args)
	default:
		return nil, fmt.Errorf("type error: value of kind %s is not callable", debugTypeName(callee))
	}
}

// callFunction creates a child scope of fn's captured scope, binds
// cloned arguments positionally as non-constant, and evaluates the body
// sequentially (spec.md §4.3).
func callFunction(fn *Function, args []values.Value) (values.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, fmt.Errorf("arity error: %s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}
	child := scope.New(fn.Scope)
	for i, param := range fn.Params {
		if err := child.Declare(param, args[i].Clone(), false); err != nil {
			return nil, err
		}
	}
	return EvalBody(fn.Body, child)
}

// evalBinaryExpr implements spec.md §4.3's operator table verbatim,
// including the `==`/`&&` aliasing and the "mismatched types silently
// yield Null" quirk for arithmetic/comparison.
func evalBinaryExpr(node *ast.BinaryExpr, env *scope.Scope) (values.Value, error) {
	left, err := Eval(node.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := Eval(node.Right, env)
	if err != nil {
		return nil, err
	}

	switch node.Operator {
	case "==", "&&":
		eq, err := valuesEqual(left, right)
		if err != nil {
			return nil, err
		}
		return values.Bool{Value: eq}, nil
	case "!=":
		eq, err := valuesEqual(left, right)
		if err != nil {
			return nil, err
		}
		return values.Bool{Value: !eq}, nil
	case "|":
		lb, lok := left.(values.Bool)
		rb, rok := right.(values.Bool)
		if !lok || !rok {
			return nil, fmt.Errorf("type error: '|' requires both operands to be bool, got %s and %s", debugTypeName(left), debugTypeName(right))
		}
		return values.Bool{Value: lb.Value || rb.Value}, nil
	case "+", "-", "*", "/", "%":
		ln, lok := left.(values.Number)
		rn, rok := right.(values.Number)
		if !lok || !rok {
			return values.Null{}, nil
		}
		return evalNumericBinary(node.Operator, ln.Value, rn.Value), nil
	case "<", ">":
		ln, lok := left.(values.Number)
		rn, rok := right.(values.Number)
		if !lok || !rok {
			return values.Null{}, nil
		}
		if node.Operator == "<" {
			return values.Bool{Value: ln.Value < rn.Value}, nil
		}
		return values.Bool{Value: ln.Value > rn.Value}, nil
	default:
		return nil, fmt.Errorf("evaluator error: unknown binary operator %q", node.Operator)
	}
}

func evalNumericBinary(op string, l, r float64) values.Value {
	switch op {
	case "+":
		return values.Number{Value: l + r}
	case "-":
		return values.Number{Value: l - r}
	case "*":
		return values.Number{Value: l * r}
	case "/":
		return values.Number{Value: l / r}
	case "%":
		return values.Number{Value: math.Mod(l, r)}
	default:
		return values.Null{}
	}
}

// valuesEqual implements spec.md §4.3's equality rule: equality across
// differing variants is a type error (Null compares equal to Null
// trivially since both sides then share a type); Object equality is
// pointer identity, the policy spec.md §9 explicitly recommends.
func valuesEqual(a, b values.Value) (bool, error) {
	if a.Type() != b.Type() {
		return false, fmt.Errorf("type error: cannot compare %s with %s", debugTypeName(a), debugTypeName(b))
	}
	switch av := a.(type) {
	case values.Null:
		return true, nil
	case values.Bool:
		return av.Value == b.(values.Bool).Value, nil
	case values.Number:
		return av.Value == b.(values.Number).Value, nil
	case values.String:
		return av.Value == b.(values.String).Value, nil
	case *values.Object:
		return av == b.(*values.Object), nil
	case *Function:
		return av == b.(*Function), nil
	default:
		return false, fmt.Errorf("type error: %s is not comparable", debugTypeName(a))
	}
}
