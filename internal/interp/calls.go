package interp

import (
	"github.com/redis-eval/redis-eval/internal/scripterrors"
	"github.com/redis-eval/redis-eval/internal/token"
	"github.com/redis-eval/redis-eval/internal/value"
)

// callValue dispatches a call to either a script function (fresh
// activation environment, per spec.md §3's "closures capture no lexical
// environment") or a host built-in (string-keyed registry, §4.4/§6).
func (ip *Interpreter) callValue(pos token.Position, fn value.Value, args []value.Value) ([]value.Value, error) {
	switch fn.Kind {
	case value.KindFunction:
		return ip.callFunction(pos, fn.Func, args)
	case value.KindHostFunction:
		return ip.callHost(pos, fn.Str, args)
	default:
		return nil, typeErr(pos, "attempt to call a %s value", fn.TypeName())
	}
}

func (ip *Interpreter) callFunction(pos token.Position, fn *value.Function, args []value.Value) ([]value.Value, error) {
	ip.callDepth++
	if ip.callDepth > ip.maxCallDepth {
		ip.callDepth--
		return nil, scripterrors.New(scripterrors.BudgetError, pos,
			"script exceeded the maximum call depth")
	}
	defer func() { ip.callDepth-- }()

	env := NewEnvironment()
	for i, name := range fn.Params {
		env.Define(name, at(args, i))
	}
	if fn.IsVariadic {
		if len(args) > len(fn.Params) {
			env.varargs = append([]value.Value(nil), args[len(fn.Params):]...)
		}
	}
	env.varargsSet = true

	cf, err := ip.execBlock(env, fn.Body)
	if err != nil {
		return nil, err
	}
	if cf.Kind == cfReturn {
		return cf.Values, nil
	}
	return nil, nil
}

func (ip *Interpreter) callHost(pos token.Position, name string, args []value.Value) ([]value.Value, error) {
	fn, ok := hostBuiltins[name]
	if !ok {
		return nil, typeErr(pos, "attempt to call unknown built-in %q", name)
	}
	return fn(ip, pos, args)
}

// hostFunc is one entry of the built-in dispatch table.
type hostFunc func(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error)

func one(v value.Value) []value.Value { return []value.Value{v} }

func argAt(args []value.Value, i int) value.Value {
	if i < 0 || i >= len(args) {
		return value.Nil
	}
	return args[i]
}
