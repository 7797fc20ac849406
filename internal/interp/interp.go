// Package interp implements the evaluator (C4): it tree-walks the AST
// against an environment of scopes plus a global table, implementing
// control flow, multi-value expansion, function calls, short-circuit
// logic, and the two hard resource ceilings from spec.md §5
// (MAX_ITERATIONS, MAX_CALL_DEPTH). It also hosts the built-in library
// (C5) dispatch, since most built-ins (pcall, redis.call, the
// pairs/ipairs iterators) must call back into the evaluator itself.
package interp

import (
	"fmt"
	"log/slog"

	"github.com/redis-eval/redis-eval/internal/ast"
	"github.com/redis-eval/redis-eval/internal/bridge"
	"github.com/redis-eval/redis-eval/internal/obslog"
	"github.com/redis-eval/redis-eval/internal/scripterrors"
	"github.com/redis-eval/redis-eval/internal/token"
	"github.com/redis-eval/redis-eval/internal/value"
)

// Default resource ceilings from spec.md §5.
const (
	DefaultMaxIterations = 1_000_000
	DefaultMaxCallDepth  = 128
)

// Interpreter walks a script's AST against a global table (owned
// per-execution, per spec.md §3's "Lifecycle") and enforces the
// iteration/call-depth budget.
type Interpreter struct {
	globals map[string]value.Value

	iterations    int
	maxIterations int
	callDepth     int
	maxCallDepth  int

	dispatcher bridge.Dispatcher
	store      bridge.Store
	nowMS      uint64

	logger *slog.Logger
}

// Option configures an Interpreter constructed with New, following the
// functional-options pattern the teacher uses for its lexer/parser
// (lexer.Option, parser.Option).
type Option func(*Interpreter)

// WithMaxIterations overrides the statement-step ceiling (MAX_ITERATIONS),
// letting tests shrink the budget instead of looping a million times.
func WithMaxIterations(n int) Option {
	return func(ip *Interpreter) { ip.maxIterations = n }
}

// WithMaxCallDepth overrides the call-depth ceiling (MAX_CALL_DEPTH).
func WithMaxCallDepth(n int) Option {
	return func(ip *Interpreter) { ip.maxCallDepth = n }
}

// WithDispatcher installs the host command dispatcher redis.call/pcall
// invoke (§6). Without one, redis.call fails with a HostError.
func WithDispatcher(d bridge.Dispatcher, store bridge.Store, nowMS uint64) Option {
	return func(ip *Interpreter) {
		ip.dispatcher = d
		ip.store = store
		ip.nowMS = nowMS
	}
}

// WithLogger installs the sink redis.log(...) writes to. Defaults to a
// discard logger (obslog.Discard) so library use of the evaluator never
// requires wiring one up.
func WithLogger(logger *slog.Logger) Option {
	return func(ip *Interpreter) { ip.logger = logger }
}

// New constructs an Interpreter with empty globals and default budgets.
func New(opts ...Option) *Interpreter {
	ip := &Interpreter{
		globals:       make(map[string]value.Value),
		maxIterations: DefaultMaxIterations,
		maxCallDepth:  DefaultMaxCallDepth,
		logger:        obslog.Discard(),
	}
	for _, opt := range opts {
		opt(ip)
	}
	return ip
}

// SetGlobal installs a value in the global table before Run (used by the
// entry point to install KEYS, ARGV, and the redis table per §6).
func (ip *Interpreter) SetGlobal(name string, v value.Value) {
	ip.globals[name] = v
}

// Run executes a top-level block (a parsed script chunk) and returns its
// return-statement value list, or nil if it falls off the end without a
// return.
func (ip *Interpreter) Run(block ast.Block) ([]value.Value, error) {
	env := NewEnvironment()
	env.varargsSet = true // top-level chunk is non-variadic: "..." yields nothing
	cf, err := ip.execBlock(env, block)
	if err != nil {
		return nil, err
	}
	if cf.Kind == cfReturn {
		return cf.Values, nil
	}
	return nil, nil
}

func (ip *Interpreter) lookupName(env *Environment, name string) value.Value {
	if v, ok := env.Get(name); ok {
		return v
	}
	if v, ok := ip.globals[name]; ok {
		return v
	}
	return value.Nil
}

func (ip *Interpreter) assignName(env *Environment, name string, v value.Value) {
	if env.Assign(name, v) {
		return
	}
	ip.globals[name] = v
}

func (ip *Interpreter) tick(pos token.Position) error {
	ip.iterations++
	if ip.iterations > ip.maxIterations {
		return scripterrors.New(scripterrors.BudgetError, pos,
			fmt.Sprintf("script exceeded the %d statement-step budget", ip.maxIterations))
	}
	return nil
}

func typeErr(pos token.Position, format string, args ...any) error {
	return scripterrors.New(scripterrors.TypeError, pos, fmt.Sprintf(format, args...))
}

func argErr(pos token.Position, format string, args ...any) error {
	return scripterrors.New(scripterrors.ArgError, pos, fmt.Sprintf(format, args...))
}
