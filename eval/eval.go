// Package eval is the public entry point (C7): it wires a lexer, parser,
// and Interpreter together, installs KEYS/ARGV and the redis table, runs
// the script, and converts the result through the frame bridge (§6).
//
// Outer tooling (script caching, EVALSHA, connection handling) is
// explicitly out of scope (§1) — this package only ever sees a script's
// source bytes, never a SHA or a cache.
package eval

import (
	"log/slog"

	"github.com/redis-eval/redis-eval/internal/bridge"
	"github.com/redis-eval/redis-eval/internal/interp"
	"github.com/redis-eval/redis-eval/internal/lexer"
	"github.com/redis-eval/redis-eval/internal/parser"
	"github.com/redis-eval/redis-eval/internal/scripterrors"
	"github.com/redis-eval/redis-eval/internal/value"
)

// Dispatcher and Store are re-exported so callers outside internal/ never
// need to import internal/bridge directly to satisfy eval_script's
// signature.
type (
	Dispatcher = bridge.Dispatcher
	Store      = bridge.Store
	Frame      = bridge.Frame
)

// Option configures a script run. Mirrors interp.Option so callers can
// shrink budgets or install a logger without reaching into internal/.
type Option func(*interp.Interpreter)

// WithMaxIterations overrides MAX_ITERATIONS for this run (§5).
func WithMaxIterations(n int) Option {
	return func(ip *interp.Interpreter) { interp.WithMaxIterations(n)(ip) }
}

// WithMaxCallDepth overrides MAX_CALL_DEPTH for this run (§5).
func WithMaxCallDepth(n int) Option {
	return func(ip *interp.Interpreter) { interp.WithMaxCallDepth(n)(ip) }
}

// WithLogger installs the sink redis.log(...) writes to.
func WithLogger(logger *slog.Logger) Option {
	return func(ip *interp.Interpreter) { interp.WithLogger(logger)(ip) }
}

// Script evaluates script source against a host dispatcher and returns
// the resulting wire frame, or a single opaque error string per §6/§7.
//
// This is the "eval_script" entry point named in §6: it installs KEYS
// and ARGV as 1-indexed tables and the redis table before execution,
// exactly as specified.
func Script(source []byte, keys, argv [][]byte, dispatcher Dispatcher, store Store, nowMS uint64, opts ...Option) (Frame, error) {
	v, err := Run(source, keys, argv, dispatcher, store, nowMS, opts...)
	if err != nil {
		return bridge.Frame{}, err
	}
	return bridge.ValueToFrame(v), nil
}

// Run is Script's lower-level counterpart: it returns the script's raw
// result Value instead of converting it to a wire frame, for callers
// (tests, the CLI's "run --raw" mode) that want to inspect the value
// model directly rather than the wire encoding.
func Run(source []byte, keys, argv [][]byte, dispatcher Dispatcher, store Store, nowMS uint64, opts ...Option) (value.Value, error) {
	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		return value.Nil, asScriptError(err, source)
	}

	block, err := parser.New(tokens).ParseChunk()
	if err != nil {
		return value.Nil, asScriptError(err, source)
	}

	ipOpts := make([]interp.Option, 0, len(opts)+1)
	if dispatcher != nil {
		ipOpts = append(ipOpts, interp.WithDispatcher(dispatcher, store, nowMS))
	}
	ip := interp.New(ipOpts...)
	for _, o := range opts {
		o(ip)
	}

	ip.InstallStdlib()
	ip.SetGlobal("KEYS", value.TableVal(byteTable(keys)))
	ip.SetGlobal("ARGV", value.TableVal(byteTable(argv)))

	results, err := ip.Run(block)
	if err != nil {
		return value.Nil, asScriptError(err, source)
	}
	if len(results) == 0 {
		return value.Nil, nil
	}
	return results[0], nil
}

// byteTable builds a 1-indexed array-part table of byte-strings, the
// representation KEYS and ARGV take inside a script (§6).
func byteTable(items [][]byte) *value.Table {
	t := value.NewTable()
	for _, item := range items {
		t.Append(value.String(string(item)))
	}
	return t
}

// asScriptError attaches source context to a *scripterrors.ScriptError
// (for richer %+v-style debugging) but always satisfies the plain error
// interface with just the message, matching §6's "Result<RespFrame,
// String>" boundary.
func asScriptError(err error, source []byte) error {
	if se, ok := err.(*scripterrors.ScriptError); ok {
		return se.WithSource(string(source), "")
	}
	return err
}
