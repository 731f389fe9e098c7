// Package scope implements Bussin's lexical environment: a chain of
// name→value bindings with a parent pointer, the shape spec.md §3.4
// describes and the closure anchor that makes Function values work.
package scope

import (
	"fmt"

	"github.com/akashmaji946/bussin/values"
)

// Scope is one link in the lexical scope chain. Unlike the teacher's
// go-mix Scope (which also tracks per-name declared type for its `let`
// type-locking), Bussin has no type system, so this only tracks which
// names are constant.
type Scope struct {
	Variables map[string]values.Value
	Consts    map[string]bool
	Parent    *Scope
}

// New creates a scope with the given parent. parent is nil only for the
// global scope.
func New(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]values.Value),
		Consts:    make(map[string]bool),
		Parent:    parent,
	}
}

// Declare binds name to value in this scope. It fails if name is already
// declared here — spec.md §3.4: "within a single scope, a name is
// declared at most once".
func (s *Scope) Declare(name string, value values.Value, constant bool) error {
	if _, exists := s.Variables[name]; exists {
		return fmt.Errorf("name error: %q already declared in this scope", name)
	}
	s.Variables[name] = value
	if constant {
		s.Consts[name] = true
	}
	return nil
}

// resolve walks the parent chain and returns the scope that declared
// name, or nil if unbound anywhere in the chain.
func (s *Scope) resolve(name string) *Scope {
	for cur := s; cur != nil; cur = cur.Parent {
		if _, exists := cur.Variables[name]; exists {
			return cur
		}
	}
	return nil
}

// Lookup resolves name to its value, walking the parent chain. Fails if
// unbound (spec.md §7's Name error: "unbound identifier").
func (s *Scope) Lookup(name string) (values.Value, error) {
	owner := s.resolve(name)
	if owner == nil {
		return nil, fmt.Errorf("name error: %q is not defined", name)
	}
	return owner.Variables[name], nil
}

// IsConstant reports whether name, as resolved from s, was declared
// constant.
func (s *Scope) IsConstant(name string) bool {
	owner := s.resolve(name)
	if owner == nil {
		return false
	}
	return owner.Consts[name]
}

// Assign overwrites the binding for name in the scope that declared it.
// Fails if name is unbound, or if it was declared constant there
// (spec.md §3.4: "A name declared constant in scope S can never be
// reassigned").
func (s *Scope) Assign(name string, value values.Value) error {
	owner := s.resolve(name)
	if owner == nil {
		return fmt.Errorf("name error: %q is not defined", name)
	}
	if owner.Consts[name] {
		return fmt.Errorf("name error: cannot assign to constant %q", name)
	}
	owner.Variables[name] = value
	return nil
}
