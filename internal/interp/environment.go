package interp

import "github.com/redis-eval/redis-eval/internal/value"

// Environment is a single scope in the evaluator's scope stack: a name to
// Value mapping plus a link to its enclosing scope, grounded on the
// teacher's internal/interp/runtime.Environment scope-chain design
// (Get/Set/Define over an outer-link chain). Unlike the teacher's
// case-insensitive DWScript identifiers, this dialect's names are
// case-sensitive, so a plain Go map suffices in place of the teacher's
// ident.Map.
type Environment struct {
	vars  map[string]value.Value
	outer *Environment

	// varargsSet/varargs hold the bound "..." for the nearest function
	// (or top-level chunk) activation; only set on an activation's root
	// scope, per spec.md §3's "closures capture no lexical environment"
	// (every call gets a *fresh* environment, so this never crosses a
	// call boundary).
	varargsSet bool
	varargs    []value.Value
}

// NewEnvironment creates a root scope with no outer link (used for the
// top-level chunk and for every function activation, since closures
// capture no enclosing scope).
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]value.Value)}
}

// NewEnclosedEnvironment creates a scope nested inside outer (used for
// blocks and loop bodies).
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{vars: make(map[string]value.Value), outer: outer}
}

// Get resolves name by walking the scope chain outward. The boolean
// result reports whether any scope in the chain binds it.
func (e *Environment) Get(name string) (value.Value, bool) {
	for s := e; s != nil; s = s.outer {
		if v, ok := s.vars[name]; ok {
			return v, true
		}
	}
	return value.Nil, false
}

// Define binds name in this scope, shadowing any outer binding of the
// same name (used for `local` declarations and parameter binding).
func (e *Environment) Define(name string, v value.Value) {
	e.vars[name] = v
}

// Varargs returns the "..." values bound by the nearest enclosing
// function (or top-level chunk) activation, walking outward until it
// finds the scope an activation stamped.
func (e *Environment) Varargs() []value.Value {
	for s := e; s != nil; s = s.outer {
		if s.varargsSet {
			return s.varargs
		}
	}
	return nil
}

// Assign writes to the innermost scope that already binds name, per
// spec.md §4.3's assignment rule. It reports whether an existing binding
// was found; the caller falls through to the global table when it is not
// (bare-name assignment to an undeclared name creates a global).
func (e *Environment) Assign(name string, v value.Value) bool {
	for s := e; s != nil; s = s.outer {
		if _, ok := s.vars[name]; ok {
			s.vars[name] = v
			return true
		}
	}
	return false
}
