package interp

import (
	"strings"

	"github.com/redis-eval/redis-eval/internal/builtin"
	"github.com/redis-eval/redis-eval/internal/token"
	"github.com/redis-eval/redis-eval/internal/value"
)

func strArg(pos token.Position, args []value.Value, i int, name string) (string, error) {
	v := argAt(args, i)
	switch v.Kind {
	case value.KindString:
		return v.Str, nil
	case value.KindNumber:
		return value.FormatNumber(v.Num), nil
	default:
		return "", argErr(pos, "bad argument #%d to '%s' (string expected, got %s)", i+1, name, v.TypeName())
	}
}

// strIndex resolves a 1-indexed, negative-from-end string position
// (spec.md §4.4's string.sub rule) to a clamped 0-indexed byte offset.
func strIndex(i, length int) int {
	if i < 0 {
		i = length + i + 1
	}
	if i < 1 {
		i = 1
	}
	if i > length+1 {
		i = length + 1
	}
	return i - 1
}

func biStringLen(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	s, err := strArg(pos, args, 0, "len")
	if err != nil {
		return nil, err
	}
	return one(value.Number(float64(len(s)))), nil
}

func biStringSub(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	s, err := strArg(pos, args, 0, "sub")
	if err != nil {
		return nil, err
	}
	from := 1
	to := len(s)
	if len(args) > 1 {
		n, _ := value.ToNumber(args[1])
		from = int(n)
	}
	if len(args) > 2 {
		n, _ := value.ToNumber(args[2])
		to = int(n)
	}
	fi := strIndex(from, len(s))
	if to < 0 {
		to = len(s) + to + 1
	}
	if to > len(s) {
		to = len(s)
	}
	if fi >= to {
		return one(value.String("")), nil
	}
	return one(value.String(s[fi:to])), nil
}

func biStringRep(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	s, err := strArg(pos, args, 0, "rep")
	if err != nil {
		return nil, err
	}
	n, _ := value.ToNumber(argAt(args, 1))
	if n <= 0 {
		return one(value.String("")), nil
	}
	return one(value.String(strings.Repeat(s, int(n)))), nil
}

func biStringLower(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	s, err := strArg(pos, args, 0, "lower")
	if err != nil {
		return nil, err
	}
	return one(value.String(strings.ToLower(s))), nil
}

func biStringUpper(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	s, err := strArg(pos, args, 0, "upper")
	if err != nil {
		return nil, err
	}
	return one(value.String(strings.ToUpper(s))), nil
}

func biStringReverse(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	s, err := strArg(pos, args, 0, "reverse")
	if err != nil {
		return nil, err
	}
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return one(value.String(string(b))), nil
}

func biStringByte(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	s, err := strArg(pos, args, 0, "byte")
	if err != nil {
		return nil, err
	}
	i := 1
	if len(args) > 1 {
		n, _ := value.ToNumber(args[1])
		i = int(n)
	}
	j := i
	if len(args) > 2 {
		n, _ := value.ToNumber(args[2])
		j = int(n)
	}
	fi := strIndex(i, len(s))
	if j < 0 {
		j = len(s) + j + 1
	}
	if j > len(s) {
		j = len(s)
	}
	if fi >= j {
		return nil, nil
	}
	out := make([]value.Value, 0, j-fi)
	for k := fi; k < j; k++ {
		out = append(out, value.Number(float64(s[k])))
	}
	return out, nil
}

func biStringChar(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	b := make([]byte, len(args))
	for i, a := range args {
		n, ok := value.ToNumber(a)
		if !ok {
			return nil, argErr(pos, "bad argument #%d to 'char' (number expected)", i+1)
		}
		b[i] = byte(int(n) % 256)
	}
	return one(value.String(string(b))), nil
}

func biStringFind(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	s, err := strArg(pos, args, 0, "find")
	if err != nil {
		return nil, err
	}
	pat, err := strArg(pos, args, 1, "find")
	if err != nil {
		return nil, err
	}
	init := 1
	if len(args) > 2 {
		n, _ := value.ToNumber(args[2])
		init = int(n)
	}
	start := strIndex(init, len(s))
	if start > len(s) {
		return one(value.Nil), nil
	}
	idx := strings.Index(s[start:], pat)
	if idx < 0 {
		return one(value.Nil), nil
	}
	from := start + idx + 1
	to := from + len(pat) - 1
	return []value.Value{value.Number(float64(from)), value.Number(float64(to))}, nil
}

// match/gmatch/gsub are stubs per spec.md §4.4 ("no pattern matching"):
// all three uniformly return nil, with no distinction between them.
func biStringMatch(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	return one(value.Nil), nil
}

func biStringGmatch(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	return one(value.Nil), nil
}

func biStringGsub(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	return one(value.Nil), nil
}

func biStringFormat(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	f, err := strArg(pos, args, 0, "format")
	if err != nil {
		return nil, err
	}
	var fargs []value.Value
	if len(args) > 1 {
		fargs = args[1:]
	}
	s, err := builtin.Format(f, fargs)
	if err != nil {
		return nil, argErr(pos, "%s", err)
	}
	return one(value.String(s)), nil
}
