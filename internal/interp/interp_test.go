package interp

import (
	"strconv"
	"testing"

	"github.com/redis-eval/redis-eval/internal/lexer"
	"github.com/redis-eval/redis-eval/internal/parser"
	"github.com/redis-eval/redis-eval/internal/scripterrors"
	"github.com/redis-eval/redis-eval/internal/value"
)

func run(t *testing.T, src string, opts ...Option) ([]value.Value, error) {
	t.Helper()
	tokens, err := lexer.New([]byte(src)).Tokenize()
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	block, err := parser.New(tokens).ParseChunk()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ip := New(opts...)
	ip.InstallStdlib()
	return ip.Run(block)
}

func runOne(t *testing.T, src string, opts ...Option) value.Value {
	t.Helper()
	vals, err := run(t, src, opts...)
	if err != nil {
		t.Fatalf("run(%q): %v", src, err)
	}
	if len(vals) == 0 {
		return value.Nil
	}
	return vals[0]
}

// §8 property 1: integer tostring/concat round-trip without a decimal
// point.
func TestIntegerRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, -1, 42, -999, 1000000} {
		want := strconv.Itoa(n)
		got := runOne(t, "return tostring("+want+")")
		if got.Kind != value.KindString || got.Str != want {
			t.Errorf("tostring(%d): got %#v, want %q", n, got, want)
		}
		got2 := runOne(t, want+" .. \"\"")
		_ = got2
		got3 := runOne(t, "return "+want+" .. \"\"")
		if got3.Kind != value.KindString || got3.Str != want {
			t.Errorf("%d..\"\": got %#v, want %q", n, got3, want)
		}
	}
}

// §8 property 2: raw equality.
func TestRawEquality(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"return nil == nil", true},
		{"return 1 == 1", true},
		{"return 1 == 2", false},
		{"return 'a' == 'a'", true},
		{"return 'a' == 'b'", false},
		{"return true == true", true},
		{"return true == false", false},
		{"return 1 == '1'", false},
		{"return nil == false", false},
		{"return {} == {}", false},
	}
	for _, c := range cases {
		got := runOne(t, c.src)
		if got.Kind != value.KindBool || got.Bool != c.want {
			t.Errorf("%s: got %#v, want %v", c.src, got, c.want)
		}
	}
}

// §8 property 3: short-circuit evaluation never invokes the RHS.
func TestShortCircuitAnd(t *testing.T) {
	got := runOne(t, `
called = false
local function f() called = true return true end
local r = false and f()
return called`)
	if got.Bool {
		t.Error("'and' with falsy LHS invoked the RHS")
	}
}

func TestShortCircuitOr(t *testing.T) {
	got := runOne(t, `
called = false
local function f() called = true return true end
local r = true or f()
return called`)
	if got.Bool {
		t.Error("'or' with truthy LHS invoked the RHS")
	}
}

func TestAndOrValuePreserving(t *testing.T) {
	if got := runOne(t, "return 1 and 2"); got.Num != 2 {
		t.Errorf("1 and 2: got %v, want 2", got)
	}
	if got := runOne(t, "return nil and 2"); got.Kind != value.KindNil {
		t.Errorf("nil and 2: got %v, want nil", got)
	}
	if got := runOne(t, "return false or 3"); got.Num != 3 {
		t.Errorf("false or 3: got %v, want 3", got)
	}
	if got := runOne(t, "return 5 or 3"); got.Num != 5 {
		t.Errorf("5 or 3: got %v, want 5", got)
	}
}

// §8 property 4: multi-value expansion only in the last slot.
func TestMultiValueLastOnly(t *testing.T) {
	vals, err := run(t, `
local function f() return 1, 2 end
local function g() return 3, 4 end
local a, b, c = f(), g()
return a, b, c`)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(vals) != 3 {
		t.Fatalf("got %d values, want 3", len(vals))
	}
	if vals[0].Num != 1 || vals[1].Kind != value.KindNil || vals[2].Num != 3 {
		t.Errorf("got a=%v b=%v c=%v, want a=1 b=nil c=3", vals[0], vals[1], vals[2])
	}
}

// §8 property 5: ipairs yields exactly (1,v1)..(n,vn) in order.
func TestIPairsCompleteness(t *testing.T) {
	got := runOne(t, `
local t = {10, 20, 30}
local sum, count = 0, 0
for i, v in ipairs(t) do
  sum = sum + i * 100 + v
  count = count + 1
end
return sum * 1000 + count`)
	// i*100+v for i=1..3: 110, 220, 330 summing to 660; count 3.
	want := float64(660*1000 + 3)
	if got.Num != want {
		t.Errorf("got %v, want %v", got.Num, want)
	}
}

// §8 property 6: pcall totality — a failing call never escapes and the
// script continues.
func TestPCallTotality(t *testing.T) {
	vals, err := run(t, `
local ok, msg = pcall(function() error("boom") end)
return ok, msg, "continued"`)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if vals[0].Bool {
		t.Error("ok should be false")
	}
	if vals[1].Kind != value.KindString || vals[1].Str != "boom" {
		t.Errorf("msg: got %#v, want %q", vals[1], "boom")
	}
	if vals[2].Str != "continued" {
		t.Error("script did not continue after pcall caught the error")
	}
}

// §8 property 7: a budget violation fails within MAX_ITERATIONS, with a
// shrunk ceiling so the test doesn't loop a million times.
func TestBudgetIterations(t *testing.T) {
	_, err := run(t, `while true do end`, WithMaxIterations(1000))
	if err == nil {
		t.Fatal("expected a budget error")
	}
	se, ok := err.(*scripterrors.ScriptError)
	if !ok {
		t.Fatalf("got %T, want *scripterrors.ScriptError", err)
	}
	if se.Kind != scripterrors.BudgetError {
		t.Errorf("got Kind=%v, want BudgetError", se.Kind)
	}
}

func TestBudgetCallDepth(t *testing.T) {
	_, err := run(t, `
function f() return f() end
return f()`, WithMaxCallDepth(10))
	if err == nil {
		t.Fatal("expected a budget error")
	}
	se, ok := err.(*scripterrors.ScriptError)
	if !ok || se.Kind != scripterrors.BudgetError {
		t.Fatalf("got %v, want BudgetError", err)
	}
}

func TestClosuresCaptureNoEnvironment(t *testing.T) {
	// §3/§9: a nested function sees only globals and its own params, not
	// the enclosing function's locals.
	got, err := run(t, `
local x = 10
local function f()
  return x
end
return f()`)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got[0].Kind != value.KindNil {
		t.Errorf("got %#v, want nil (no lexical capture)", got[0])
	}
}

func TestGlobalsVisibleInsideFunctions(t *testing.T) {
	got := runOne(t, `
x = 10
local function f() return x end
return f()`)
	if got.Num != 10 {
		t.Errorf("got %v, want 10", got)
	}
}

func TestVariadicFunction(t *testing.T) {
	vals, err := run(t, `
local function f(...) return select('#', ...), ... end
return f(1,2,3)`)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if vals[0].Num != 3 || vals[1].Num != 1 || vals[2].Num != 2 || vals[3].Num != 3 {
		t.Errorf("got %v", vals)
	}
}

func TestTableArrayAndHashParts(t *testing.T) {
	got := runOne(t, `
local t = {}
t[1] = "a"
t[2] = "b"
t.x = "hash"
t[5] = "sparse"
return #t`)
	// #t is the array-part length only; t[5] lands in the hash part since
	// 5 > |array|+1 at assignment time (|array|=2).
	if got.Num != 2 {
		t.Errorf("got %v, want 2", got.Num)
	}
}

func TestNumericForNegativeStep(t *testing.T) {
	got := runOne(t, `
local sum = 0
for i=5,1,-2 do sum = sum + i end
return sum`)
	// i = 5, 3, 1 -> 9
	if got.Num != 9 {
		t.Errorf("got %v, want 9", got.Num)
	}
}

func TestNumericForZeroStepFails(t *testing.T) {
	_, err := run(t, `for i=1,10,0 do end`)
	if err == nil {
		t.Fatal("expected an error for a zero step")
	}
}

func TestRepeatUntilSeesBodyLocals(t *testing.T) {
	got := runOne(t, `
local n = 0
repeat
  local done = n >= 3
  n = n + 1
until done
return n`)
	if got.Num != 4 {
		t.Errorf("got %v, want 4", got.Num)
	}
}

func TestBreakInsideRepeatSkipsCondition(t *testing.T) {
	got := runOne(t, `
local n = 0
repeat
  n = n + 1
  if n == 2 then break end
until false
return n`)
	if got.Num != 2 {
		t.Errorf("got %v, want 2", got.Num)
	}
}

func TestMethodCallPrependsTarget(t *testing.T) {
	// The grammar only has dot-chained function declarations (§4.2); a
	// method body must declare its own leading "self" parameter to
	// receive what obj:bump(n) prepends.
	got := runOne(t, `
local obj = {}
obj.value = 41
function obj.bump(self, n) return self.value + n end
return obj:bump(1)`)
	if got.Num != 42 {
		t.Errorf("got %v, want 42", got.Num)
	}
}
