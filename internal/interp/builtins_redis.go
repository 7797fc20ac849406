package interp

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/redis-eval/redis-eval/internal/bridge"
	"github.com/redis-eval/redis-eval/internal/obslog"
	"github.com/redis-eval/redis-eval/internal/scripterrors"
	"github.com/redis-eval/redis-eval/internal/token"
	"github.com/redis-eval/redis-eval/internal/value"
)

func (ip *Interpreter) dispatchCall(pos token.Position, args []value.Value) (value.Value, error) {
	if ip.dispatcher == nil {
		return value.Nil, scripterrors.New(scripterrors.HostError, pos, "no host dispatcher configured")
	}
	argv := make([][]byte, len(args))
	for i, a := range args {
		argv[i] = []byte(value.ToDisplayString(a))
	}
	frame, err := ip.dispatcher.Dispatch(argv, ip.store, ip.nowMS)
	if err != nil {
		return value.Nil, scripterrors.New(scripterrors.HostError, pos, err.Error())
	}
	return bridge.FrameToValue(frame), nil
}

func biRedisCall(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	v, err := ip.dispatchCall(pos, args)
	if err != nil {
		return nil, err
	}
	return one(v), nil
}

func biRedisPCall(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	v, err := ip.dispatchCall(pos, args)
	if err != nil {
		t := value.NewTable()
		t.Set(value.String("err"), value.String(err.Error()))
		return one(value.TableVal(t)), nil
	}
	return one(v), nil
}

func biRedisErrorReply(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	msg, err := strArg(pos, args, 0, "error_reply")
	if err != nil {
		return nil, err
	}
	t := value.NewTable()
	t.Set(value.String("err"), value.String(msg))
	return one(value.TableVal(t)), nil
}

func biRedisStatusReply(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	msg, err := strArg(pos, args, 0, "status_reply")
	if err != nil {
		return nil, err
	}
	t := value.NewTable()
	t.Set(value.String("ok"), value.String(msg))
	return one(value.TableVal(t)), nil
}

func biRedisSha1Hex(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	s, err := strArg(pos, args, 0, "sha1hex")
	if err != nil {
		return nil, err
	}
	sum := sha1.Sum([]byte(s))
	return one(value.String(hex.EncodeToString(sum[:]))), nil
}

func biRedisLog(ip *Interpreter, pos token.Position, args []value.Value) ([]value.Value, error) {
	if len(args) == 0 {
		return nil, nil
	}
	n, _ := value.ToNumber(args[0])
	level := obslog.RedisLevel(int(n))
	parts := make([]string, 0, len(args)-1)
	for _, a := range args[1:] {
		parts = append(parts, value.ToDisplayString(a))
	}
	obslog.RedisLog(ip.logger, level, strings.Join(parts, " "))
	return nil, nil
}
