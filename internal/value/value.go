// Package value implements the script language's value model (C1): a
// tagged sum type of {nil, bool, number, byte-string, table, script-function,
// host-function-name}, table operations, and the coercion rules the
// evaluator and built-in library depend on (truthiness, raw equality,
// to_number, to_display_string).
package value

import (
	"strconv"
	"strings"
)

// Kind tags which variant a Value holds.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
	KindTable
	KindFunction
	KindHostFunction
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindTable:
		return "table"
	case KindFunction, KindHostFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Value is the universal runtime representation. Only the field matching
// Kind is meaningful. Tables hold a pointer so that assignment and
// argument passing share the same underlying table (see DESIGN.md's
// note on the arena/shared-ownership upgrade from the distilled spec's
// documented limitation).
type Value struct {
	Kind    Kind
	Bool    bool
	Num     float64
	Str     string    // Kind == KindString or KindHostFunction (host fn name)
	Table   *Table
	Func    *Function
}

// Nil is the nil value.
var Nil = Value{Kind: KindNil}

// Bool constructs a boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Number constructs a numeric value.
func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// String constructs a byte-string value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// HostFunction constructs a value naming a built-in by its dispatch name
// (e.g. "tostring", "redis.call", "math.floor").
func HostFunction(name string) Value { return Value{Kind: KindHostFunction, Str: name} }

// TableVal wraps an existing *Table as a Value.
func TableVal(t *Table) Value { return Value{Kind: KindTable, Table: t} }

// FunctionVal wraps a script Function as a Value.
func FunctionVal(f *Function) Value { return Value{Kind: KindFunction, Func: f} }

// IsNil reports whether v is the nil value.
func (v Value) IsNil() bool { return v.Kind == KindNil }

// Truthy implements the script language's truthiness rule: only nil and
// false are falsy; everything else (including 0 and "") is truthy.
func (v Value) Truthy() bool {
	if v.Kind == KindNil {
		return false
	}
	if v.Kind == KindBool {
		return v.Bool
	}
	return true
}

// TypeName returns the string the `type()` built-in reports.
func (v Value) TypeName() string { return v.Kind.String() }

// RawEqual implements raw equality: nil=nil; booleans by value; numbers by
// exact f64 equality; byte-strings by byte-vector equality; tables and
// functions by identity; any cross-kind comparison is false.
func RawEqual(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNil:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindNumber:
		return a.Num == b.Num
	case KindString:
		return a.Str == b.Str
	case KindTable:
		return a.Table == b.Table
	case KindFunction:
		return a.Func == b.Func
	case KindHostFunction:
		return a.Str == b.Str
	default:
		return false
	}
}

// ToNumber implements the script language's arithmetic coercion: a number
// returns itself; a byte-string is parsed, trimmed, as base-10 f64;
// anything else fails.
func ToNumber(v Value) (float64, bool) {
	switch v.Kind {
	case KindNumber:
		return v.Num, true
	case KindString:
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// ToDisplayString implements the concatenation/tostring coercion: numbers
// that equal their i64 truncation and are finite render without a decimal
// point, others use Go's default float formatting; booleans render
// true/false; nil renders nil; tables and functions render a bare type
// name (no address, to keep scenarios reproducible).
func ToDisplayString(v Value) string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNumber:
		return FormatNumber(v.Num)
	case KindString:
		return v.Str
	case KindTable:
		return "table"
	case KindFunction, KindHostFunction:
		return "function"
	default:
		return ""
	}
}

// FormatNumber renders a float64 the way the script language's tostring
// and concatenation do: integral, finite values print without a decimal
// point; everything else uses the host language's default formatter
// (strconv's shortest round-tripping representation), per spec.md §9's
// resolution of the tostring-formatting open question.
func FormatNumber(n float64) string {
	if i := int64(n); float64(i) == n && !isInfOrNaN(n) {
		return strconv.FormatInt(i, 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

func isInfOrNaN(n float64) bool {
	return n != n || n > 1.7976931348623157e+308 || n < -1.7976931348623157e+308
}
