package eval

import (
	"fmt"

	"github.com/akashmaji946/bussin/ast"
	"github.com/akashmaji946/bussin/scope"
	"github.com/akashmaji946/bussin/values"
)

// flattenMemberChain walks a left-leaning MemberExpr chain (a.b.c,
// a["x"].y, ...) down to its root Identifier, collecting the property
// path in left-to-right order. Computed segments (obj[expr]) are
// evaluated against env as they're encountered — spec.md §4.4 step 4:
// "the computed case evaluates expr; it must yield a String that is
// used as the key."
func flattenMemberChain(e ast.Expr, env *scope.Scope) (*ast.Identifier, []string, error) {
	switch node := e.(type) {
	case *ast.Identifier:
		return node, nil, nil
	case *ast.MemberExpr:
		root, path, err := flattenMemberChain(node.Object, env)
		if err != nil {
			return nil, nil, err
		}

		var key string
		if node.Computed {
			keyVal, err := Eval(node.Property, env)
			if err != nil {
				return nil, nil, err
			}
			s, ok := keyVal.(values.String)
			if !ok {
				return nil, nil, fmt.Errorf("type error: computed member key must be a string, got %s", debugTypeName(keyVal))
			}
			key = s.Value
		} else {
			ident, ok := node.Property.(*ast.Identifier)
			if !ok {
				return nil, nil, fmt.Errorf("type error: non-computed member property must be an identifier")
			}
			key = ident.Symbol
		}
		return root, append(path, key), nil
	default:
		return nil, nil, fmt.Errorf("type error: invalid member expression target %T", e)
	}
}

// evalMemberRead implements the read half of spec.md §4.4's protocol:
// resolve the root binding, then step through the Object chain,
// failing if a non-final segment isn't an Object or the final key is
// absent.
func evalMemberRead(node *ast.MemberExpr, env *scope.Scope) (values.Value, error) {
	root, path, err := flattenMemberChain(node, env)
	if err != nil {
		return nil, err
	}

	cur, err := env.Lookup(root.Symbol)
	if err != nil {
		return nil, err
	}

	for _, key := range path {
		obj, ok := cur.(*values.Object)
		if !ok {
			return nil, fmt.Errorf("type error: expected ObjectVal, found %s while reading %q", debugTypeName(cur), key)
		}
		next, exists := obj.Properties[key]
		if !exists {
			return nil, fmt.Errorf("name error: property %q not found", key)
		}
		cur = next
	}
	return cur, nil
}

// evalMemberWrite implements the write half: it mutates the stored
// *values.Object in place, so aliases holding the same root binding see
// the change (spec.md §4.4: "Writes mutate IN PLACE in the binding's
// scope"). No auto-vivification of missing intermediate segments; a
// missing final key is created.
func evalMemberWrite(node *ast.MemberExpr, env *scope.Scope, value values.Value) error {
	root, path, err := flattenMemberChain(node, env)
	if err != nil {
		return err
	}
	if len(path) == 0 {
		return fmt.Errorf("type error: invalid assignment target")
	}

	rootVal, err := env.Lookup(root.Symbol)
	if err != nil {
		return err
	}
	cur, ok := rootVal.(*values.Object)
	if !ok {
		return fmt.Errorf("type error: expected ObjectVal, found %s for %q", debugTypeName(rootVal), root.Symbol)
	}

	for _, key := range path[:len(path)-1] {
		next, exists := cur.Properties[key]
		if !exists {
			return fmt.Errorf("name error: missing intermediate property %q", key)
		}
		nextObj, ok := next.(*values.Object)
		if !ok {
			return fmt.Errorf("type error: expected ObjectVal, found %s for %q", debugTypeName(next), key)
		}
		cur = nextObj
	}

	cur.Properties[path[len(path)-1]] = value
	return nil
}
