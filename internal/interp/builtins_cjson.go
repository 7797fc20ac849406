package interp

import (
	"github.com/redis-eval/redis-eval/internal/builtin"
	"github.com/redis-eval/redis-eval/internal/scripterrors"
	"github.com/redis-eval/redis-eval/internal/token"
	"github.com/redis-eval/redis-eval/internal/value"
)

func biCjsonEncode(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	s, err := builtin.EncodeJSON(argAt(args, 0))
	if err != nil {
		return nil, scripterrors.New(scripterrors.JsonError, pos, err.Error())
	}
	return one(value.String(s)), nil
}

func biCjsonDecode(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	s, err := strArg(pos, args, 0, "decode")
	if err != nil {
		return nil, err
	}
	v, err := builtin.DecodeJSON(s)
	if err != nil {
		return nil, scripterrors.New(scripterrors.JsonError, pos, err.Error())
	}
	return one(v), nil
}
