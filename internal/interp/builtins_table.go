package interp

import (
	"sort"
	"strings"

	"github.com/redis-eval/redis-eval/internal/token"
	"github.com/redis-eval/redis-eval/internal/value"
)

func tableArg(pos token.Position, args []value.Value, i int, name string) (*value.Table, error) {
	v := argAt(args, i)
	if v.Kind != value.KindTable {
		return nil, argErr(pos, "bad argument #%d to '%s' (table expected, got %s)", i+1, name, v.TypeName())
	}
	return v.Table, nil
}

func biTableInsert(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	t, err := tableArg(pos, args, 0, "insert")
	if err != nil {
		return nil, err
	}
	switch len(args) {
	case 2:
		t.Append(args[1])
	case 3:
		n, _ := value.ToNumber(args[1])
		t.InsertAt(int(n), args[2])
	default:
		return nil, argErr(pos, "wrong number of arguments to 'insert'")
	}
	return nil, nil
}

func biTableRemove(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	t, err := tableArg(pos, args, 0, "remove")
	if err != nil {
		return nil, err
	}
	if len(args) > 1 {
		n, _ := value.ToNumber(args[1])
		return one(t.RemoveAt(int(n), true)), nil
	}
	return one(t.RemoveAt(0, false)), nil
}

func biTableConcat(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	t, err := tableArg(pos, args, 0, "concat")
	if err != nil {
		return nil, err
	}
	sep := ""
	if len(args) > 1 {
		sep, _ = strArg(pos, args, 1, "concat")
	}
	from := 1
	to := t.Len()
	if len(args) > 2 {
		n, _ := value.ToNumber(args[2])
		from = int(n)
	}
	if len(args) > 3 {
		n, _ := value.ToNumber(args[3])
		to = int(n)
	}
	var sb strings.Builder
	for i := from; i <= to; i++ {
		if i > from {
			sb.WriteString(sep)
		}
		sb.WriteString(value.ToDisplayString(t.Get(value.Number(float64(i)))))
	}
	return one(value.String(sb.String())), nil
}

// table.sort has no custom comparator support (§4.4's documented
// limitation): a second argument, if passed, is ignored and the array
// part always sorts by defaultLess.
func biTableSort(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	t, err := tableArg(pos, args, 0, "sort")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(t.Array, func(i, j int) bool {
		return defaultLess(t.Array[i], t.Array[j])
	})
	return nil, nil
}

// defaultLess implements table.sort's comparator-less ordering (spec.md
// §4.4): numbers by value, strings lexicographically, anything else
// compares equal (stable, documented limitation).
func defaultLess(a, b value.Value) bool {
	if a.Kind == value.KindNumber && b.Kind == value.KindNumber {
		return a.Num < b.Num
	}
	if a.Kind == value.KindString && b.Kind == value.KindString {
		return a.Str < b.Str
	}
	return false
}

func biTableGetN(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	t, err := tableArg(pos, args, 0, "getn")
	if err != nil {
		return nil, err
	}
	return one(value.Number(float64(t.Len()))), nil
}
