package interp

import (
	"strings"

	"github.com/redis-eval/redis-eval/internal/token"
	"github.com/redis-eval/redis-eval/internal/value"
)

func biType(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	return one(value.String(argAt(args, 0).TypeName())), nil
}

func biToNumber(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	n, ok := value.ToNumber(argAt(args, 0))
	if !ok {
		return one(value.Nil), nil
	}
	return one(value.Number(n)), nil
}

func biToString(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	return one(value.String(value.ToDisplayString(argAt(args, 0)))), nil
}

// error(msg) fails with msg's display string (§4.4): unlike the
// reference language this dialect does not prepend a "file:line:"
// position prefix to string messages, so redis.call('EVAL', ...)-style
// error text round-trips byte-for-byte through pcall.
func biError(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	return nil, &luaError{Value: argAt(args, 0)}
}

func biAssert(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	v := argAt(args, 0)
	if v.Truthy() {
		return args, nil
	}
	msg := argAt(args, 1)
	if msg.IsNil() {
		msg = value.String("assertion failed!")
	}
	return nil, &luaError{Value: msg}
}

func biPCall(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	if len(args) == 0 {
		return nil, argErr(pos, "bad argument #1 to 'pcall' (value expected)")
	}
	results, err := ip.callValue(pos, args[0], args[1:])
	if err != nil {
		return []value.Value{value.Bool(false), errorValue(err)}, nil
	}
	return append([]value.Value{value.Bool(true)}, results...), nil
}

func biNext(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	t := argAt(args, 0)
	if t.Kind != value.KindTable {
		return nil, typeErr(pos, "bad argument #1 to 'next' (table expected, got %s)", t.TypeName())
	}
	key := argAt(args, 1)
	k, v, ok := t.Table.Next(key, len(args) > 1 && !key.IsNil())
	if !ok {
		return one(value.Nil), nil
	}
	return []value.Value{k, v}, nil
}

func biPairs(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	t := argAt(args, 0)
	if t.Kind != value.KindTable {
		return nil, typeErr(pos, "bad argument #1 to 'pairs' (table expected, got %s)", t.TypeName())
	}
	return []value.Value{value.HostFunction("next"), t, value.Nil}, nil
}

func biIPairsIter(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	t := argAt(args, 0)
	if t.Kind != value.KindTable {
		return nil, typeErr(pos, "bad argument #1 to 'ipairs iterator' (table expected, got %s)", t.TypeName())
	}
	i, _ := value.ToNumber(argAt(args, 1))
	next := int(i) + 1
	v := t.Table.Get(value.Number(float64(next)))
	if v.IsNil() {
		return one(value.Nil), nil
	}
	return []value.Value{value.Number(float64(next)), v}, nil
}

func biIPairs(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	t := argAt(args, 0)
	if t.Kind != value.KindTable {
		return nil, typeErr(pos, "bad argument #1 to 'ipairs' (table expected, got %s)", t.TypeName())
	}
	return []value.Value{value.HostFunction("__ipairs_iter"), t, value.Number(0)}, nil
}

func biUnpack(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	t := argAt(args, 0)
	if t.Kind != value.KindTable {
		return nil, typeErr(pos, "bad argument #1 to 'unpack' (table expected, got %s)", t.TypeName())
	}
	from := 1
	to := t.Table.Len()
	if len(args) > 1 {
		n, _ := value.ToNumber(args[1])
		from = int(n)
	}
	if len(args) > 2 {
		n, _ := value.ToNumber(args[2])
		to = int(n)
	}
	var out []value.Value
	for i := from; i <= to; i++ {
		out = append(out, t.Table.Get(value.Number(float64(i))))
	}
	return out, nil
}

func biSelect(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	sel := argAt(args, 0)
	rest := args[min(1, len(args)):]
	if sel.Kind == value.KindString && sel.Str == "#" {
		return one(value.Number(float64(len(rest)))), nil
	}
	n, ok := value.ToNumber(sel)
	if !ok || n < 1 {
		return nil, argErr(pos, "bad argument #1 to 'select' (number expected)")
	}
	idx := int(n) - 1
	if idx >= len(rest) {
		return nil, nil
	}
	return rest[idx:], nil
}

func biRawGet(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	t := argAt(args, 0)
	if t.Kind != value.KindTable {
		return nil, typeErr(pos, "bad argument #1 to 'rawget' (table expected, got %s)", t.TypeName())
	}
	return one(t.Table.Get(argAt(args, 1))), nil
}

func biRawSet(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	t := argAt(args, 0)
	if t.Kind != value.KindTable {
		return nil, typeErr(pos, "bad argument #1 to 'rawset' (table expected, got %s)", t.TypeName())
	}
	t.Table.Set(argAt(args, 1), argAt(args, 2))
	return one(t), nil
}

func biRawLen(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	v := argAt(args, 0)
	switch v.Kind {
	case value.KindTable:
		return one(value.Number(float64(v.Table.Len()))), nil
	case value.KindString:
		return one(value.Number(float64(len(v.Str)))), nil
	default:
		return nil, typeErr(pos, "table or string expected")
	}
}

func biRawEqual(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	return one(value.Bool(value.RawEqual(argAt(args, 0), argAt(args, 1)))), nil
}

// setmetatable/getmetatable are accepted as no-ops: the dialect has no
// metatable-driven behavior (no operator overloading, no __index), so a
// script that merely carries a metatable through without depending on its
// semantics still runs.
func biSetMetatable(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	return one(argAt(args, 0)), nil
}

func biGetMetatable(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	return one(value.Nil), nil
}

func biPrint(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = value.ToDisplayString(a)
	}
	ip.logger.Info(strings.Join(parts, "\t"))
	return nil, nil
}
