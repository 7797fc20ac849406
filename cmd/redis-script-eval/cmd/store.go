package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/redis-eval/redis-eval/internal/bridge"
)

// fakeStore is an in-memory string keyspace used only to give the CLI's
// "run" subcommand something to dispatch redis.call/pcall against.
// The real host data store is out of scope for this module (§1); this
// exists purely so a script can be exercised end to end from a terminal.
type fakeStore map[string]string

// fakeDispatcher implements bridge.Dispatcher over a fakeStore, handling
// just enough of the command surface (GET/SET/DEL/EXISTS/INCR/APPEND) to
// drive the S1-S7 style of script demonstrated in spec.md §8.
type fakeDispatcher struct{}

func (fakeDispatcher) Dispatch(argv [][]byte, store bridge.Store, nowMS uint64) (bridge.Frame, error) {
	fs, ok := store.(fakeStore)
	if !ok {
		return bridge.Frame{}, &bridge.DispatchError{Message: "no store configured"}
	}
	if len(argv) == 0 {
		return bridge.Frame{}, &bridge.DispatchError{Message: "ERR empty command"}
	}
	cmd := strings.ToUpper(string(argv[0]))
	args := argv[1:]

	switch cmd {
	case "SET":
		if len(args) < 2 {
			return bridge.Frame{}, &bridge.DispatchError{Message: "ERR wrong number of arguments for 'set' command"}
		}
		fs[string(args[0])] = string(args[1])
		return bridge.SimpleString("OK"), nil
	case "GET":
		if len(args) != 1 {
			return bridge.Frame{}, &bridge.DispatchError{Message: "ERR wrong number of arguments for 'get' command"}
		}
		v, ok := fs[string(args[0])]
		if !ok {
			return bridge.BulkString(nil), nil
		}
		return bridge.BulkString([]byte(v)), nil
	case "DEL":
		n := int64(0)
		for _, a := range args {
			if _, ok := fs[string(a)]; ok {
				delete(fs, string(a))
				n++
			}
		}
		return bridge.Integer(n), nil
	case "EXISTS":
		n := int64(0)
		for _, a := range args {
			if _, ok := fs[string(a)]; ok {
				n++
			}
		}
		return bridge.Integer(n), nil
	case "APPEND":
		if len(args) != 2 {
			return bridge.Frame{}, &bridge.DispatchError{Message: "ERR wrong number of arguments for 'append' command"}
		}
		fs[string(args[0])] += string(args[1])
		return bridge.Integer(int64(len(fs[string(args[0])]))), nil
	case "INCR", "INCRBY":
		if len(args) < 1 {
			return bridge.Frame{}, &bridge.DispatchError{Message: "ERR wrong number of arguments"}
		}
		delta := int64(1)
		if cmd == "INCRBY" {
			if len(args) != 2 {
				return bridge.Frame{}, &bridge.DispatchError{Message: "ERR wrong number of arguments for 'incrby' command"}
			}
			d, err := strconv.ParseInt(string(args[1]), 10, 64)
			if err != nil {
				return bridge.Frame{}, &bridge.DispatchError{Message: "ERR value is not an integer or out of range"}
			}
			delta = d
		}
		cur, _ := strconv.ParseInt(fs[string(args[0])], 10, 64)
		cur += delta
		fs[string(args[0])] = strconv.FormatInt(cur, 10)
		return bridge.Integer(cur), nil
	default:
		return bridge.Frame{}, &bridge.DispatchError{Message: fmt.Sprintf("ERR unknown command '%s'", cmd)}
	}
}
