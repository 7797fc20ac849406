package interp

import (
	"math"

	"github.com/redis-eval/redis-eval/internal/token"
	"github.com/redis-eval/redis-eval/internal/value"
)

func mathArg(pos token.Position, args []value.Value, i int, name string) (float64, error) {
	n, ok := value.ToNumber(argAt(args, i))
	if !ok {
		return 0, argErr(pos, "bad argument #%d to '%s' (number expected)", i+1, name)
	}
	return n, nil
}

func biMathFloor(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	n, err := mathArg(pos, args, 0, "floor")
	if err != nil {
		return nil, err
	}
	return one(value.Number(math.Floor(n))), nil
}

func biMathCeil(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	n, err := mathArg(pos, args, 0, "ceil")
	if err != nil {
		return nil, err
	}
	return one(value.Number(math.Ceil(n))), nil
}

func biMathAbs(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	n, err := mathArg(pos, args, 0, "abs")
	if err != nil {
		return nil, err
	}
	return one(value.Number(math.Abs(n))), nil
}

func biMathSqrt(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	n, err := mathArg(pos, args, 0, "sqrt")
	if err != nil {
		return nil, err
	}
	return one(value.Number(math.Sqrt(n))), nil
}

func biMathMax(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	if len(args) == 0 {
		return nil, argErr(pos, "bad argument #1 to 'max' (value expected)")
	}
	best, err := mathArg(pos, args, 0, "max")
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(args); i++ {
		n, err := mathArg(pos, args, i, "max")
		if err != nil {
			return nil, err
		}
		if n > best {
			best = n
		}
	}
	return one(value.Number(best)), nil
}

func biMathMin(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	if len(args) == 0 {
		return nil, argErr(pos, "bad argument #1 to 'min' (value expected)")
	}
	best, err := mathArg(pos, args, 0, "min")
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(args); i++ {
		n, err := mathArg(pos, args, i, "min")
		if err != nil {
			return nil, err
		}
		if n < best {
			best = n
		}
	}
	return one(value.Number(best)), nil
}

func biMathRandom(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	// Intentionally fake (spec.md §9 "Determinism of math.random"): never
	// seeded from wall-clock entropy, so script output stays reproducible
	// across replays.
	switch len(args) {
	case 0:
		return one(value.Number(0.5)), nil
	case 1:
		m, err := mathArg(pos, args, 0, "random")
		if err != nil {
			return nil, err
		}
		return one(value.Number(math.Max(1, m/2))), nil
	default:
		lo, err := mathArg(pos, args, 0, "random")
		if err != nil {
			return nil, err
		}
		hi, err := mathArg(pos, args, 1, "random")
		if err != nil {
			return nil, err
		}
		return one(value.Number((lo + hi) / 2)), nil
	}
}

func biMathFmod(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	a, err := mathArg(pos, args, 0, "fmod")
	if err != nil {
		return nil, err
	}
	b, err := mathArg(pos, args, 1, "fmod")
	if err != nil {
		return nil, err
	}
	return one(value.Number(math.Mod(a, b))), nil
}

func biMathLog(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	n, err := mathArg(pos, args, 0, "log")
	if err != nil {
		return nil, err
	}
	return one(value.Number(math.Log(n))), nil
}

func biMathExp(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	n, err := mathArg(pos, args, 0, "exp")
	if err != nil {
		return nil, err
	}
	return one(value.Number(math.Exp(n))), nil
}

func biMathPow(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	a, err := mathArg(pos, args, 0, "pow")
	if err != nil {
		return nil, err
	}
	b, err := mathArg(pos, args, 1, "pow")
	if err != nil {
		return nil, err
	}
	return one(value.Number(math.Pow(a, b))), nil
}
