package builtin

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/akashmaji946/bussin/values"
)

// mathObject builds the `math` built-in: an Object exposing pi and the
// five numeric helpers spec.md §4.5 names.
func mathObject() *values.Object {
	obj := values.NewObject()
	obj.Properties["pi"] = values.Number{Value: math.Pi}
	obj.Properties["sqrt"] = values.NativeFn{Name: "math.sqrt", Callback: mathSqrt}
	obj.Properties["random"] = values.NativeFn{Name: "math.random", Callback: mathRandom}
	obj.Properties["round"] = values.NativeFn{Name: "math.round", Callback: mathRound}
	obj.Properties["ceil"] = values.NativeFn{Name: "math.ceil", Callback: mathCeil}
	obj.Properties["abs"] = values.NativeFn{Name: "math.abs", Callback: mathAbs}
	return obj
}

func singleNumberArg(name string, args []values.Value) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("arity error: %s expects 1 argument, got %d", name, len(args))
	}
	n, ok := args[0].(values.Number)
	if !ok {
		return 0, fmt.Errorf("type error: %s expects a number argument", name)
	}
	return n.Value, nil
}

func mathSqrt(args []values.Value) (values.Value, error) {
	n, err := singleNumberArg("math.sqrt", args)
	if err != nil {
		return nil, err
	}
	return values.Number{Value: math.Sqrt(n)}, nil
}

func mathRound(args []values.Value) (values.Value, error) {
	n, err := singleNumberArg("math.round", args)
	if err != nil {
		return nil, err
	}
	return values.Number{Value: math.Round(n)}, nil
}

func mathCeil(args []values.Value) (values.Value, error) {
	n, err := singleNumberArg("math.ceil", args)
	if err != nil {
		return nil, err
	}
	return values.Number{Value: math.Ceil(n)}, nil
}

func mathAbs(args []values.Value) (values.Value, error) {
	n, err := singleNumberArg("math.abs", args)
	if err != nil {
		return nil, err
	}
	return values.Number{Value: math.Abs(n)}, nil
}

// mathRandom returns a uniform integer in [ceil(lo), floor(hi)]
// inclusive, as a Number — spec.md §4.5, matching the original's
// `floor(rand() * (max-min+1) + min)` construction.
func mathRandom(args []values.Value) (values.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("arity error: math.random expects 2 arguments, got %d", len(args))
	}
	lo, ok1 := args[0].(values.Number)
	hi, ok2 := args[1].(values.Number)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("type error: math.random expects number arguments")
	}
	min := math.Ceil(lo.Value)
	max := math.Floor(hi.Value)
	n := math.Floor(rand.Float64()*(max-min+1) + min)
	return values.Number{Value: n}, nil
}
