package interp

import (
	"github.com/redis-eval/redis-eval/internal/value"
)

// luaError carries an arbitrary script value raised via error(...), so
// pcall can hand the exact value back rather than a stringified message
// (the script dialect's error() accepts any value, not just strings).
type luaError struct {
	Value value.Value
}

func (e *luaError) Error() string {
	if e.Value.Kind == value.KindString {
		return e.Value.Str
	}
	return value.ToDisplayString(e.Value)
}

// errorValue recovers the script value carried by err: the exact value
// for a luaError, or a byte-string wrapping any other error (including
// ScriptError and HostError failures) per spec.md §4.4's pcall contract.
func errorValue(err error) value.Value {
	if le, ok := err.(*luaError); ok {
		return le.Value
	}
	return value.String(err.Error())
}
