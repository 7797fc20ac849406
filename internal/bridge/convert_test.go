package bridge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/redis-eval/redis-eval/internal/value"
)

func TestFrameToValue(t *testing.T) {
	cases := []struct {
		name string
		in   Frame
		want value.Value
	}{
		{"simple string", SimpleString("OK"), tableWith("ok", "OK")},
		{"error", ErrorFrame("WRONGTYPE"), tableWith("err", "WRONGTYPE")},
		{"integer", Integer(3), value.Number(3)},
		{"bulk string", BulkString([]byte("v")), value.String("v")},
		{"nil bulk string", NilBulkString(), value.Bool(false)},
		{"nil array", NilArray(), value.Bool(false)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FrameToValue(c.in)
			if diff := diffValue(got, c.want); diff != "" {
				t.Errorf("FrameToValue(%v) mismatch:\n%s", c.in, diff)
			}
		})
	}
}

func TestFrameToValueArray(t *testing.T) {
	f := Array([]Frame{Integer(1), Integer(2), BulkString([]byte("x"))})
	got := FrameToValue(f)
	if got.Kind != value.KindTable || got.Table.Len() != 3 {
		t.Fatalf("FrameToValue(array) = %v, want a 3-element table", got)
	}
	if got.Table.Get(value.Number(3)).Str != "x" {
		t.Fatalf("element 3 = %v, want x", got.Table.Get(value.Number(3)))
	}
}

func TestValueToFrame(t *testing.T) {
	cases := []struct {
		name string
		in   value.Value
		want Frame
	}{
		{"nil", value.Nil, NilBulkString()},
		{"true", value.Bool(true), Integer(1)},
		{"false", value.Bool(false), NilBulkString()},
		{"number truncates toward zero", value.Number(3.9), Integer(3)},
		{"negative number truncates toward zero", value.Number(-3.9), Integer(-3)},
		{"string", value.String("hi"), BulkString([]byte("hi"))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ValueToFrame(c.in)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("ValueToFrame(%v) mismatch (-want +got):\n%s", c.in, diff)
			}
		})
	}
}

func TestValueToFrameOkErrTables(t *testing.T) {
	ok := tableWith("ok", "PONG")
	if got := ValueToFrame(ok); got.Kind != KindSimpleString || got.Str != "PONG" {
		t.Fatalf("ValueToFrame({ok=PONG}) = %v, want SimpleString(PONG)", got)
	}
	errv := tableWith("err", "boom")
	if got := ValueToFrame(errv); got.Kind != KindError || got.Str != "boom" {
		t.Fatalf("ValueToFrame({err=boom}) = %v, want Error(boom)", got)
	}
}

func TestValueToFrameArrayTable(t *testing.T) {
	tbl := value.NewTable()
	tbl.Append(value.Number(1))
	tbl.Append(value.Number(4))
	tbl.Append(value.Number(9))
	got := ValueToFrame(value.TableVal(tbl))
	want := Array([]Frame{Integer(1), Integer(4), Integer(9)})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ValueToFrame(array table) mismatch (-want +got):\n%s", diff)
	}
}

func tableWith(key, val string) value.Value {
	t := value.NewTable()
	t.Set(value.String(key), value.String(val))
	return value.TableVal(t)
}

func diffValue(a, b value.Value) string {
	if a.Kind != b.Kind {
		return "kind differs"
	}
	switch a.Kind {
	case value.KindTable:
		ak, av := a.Table.HashPairs()
		bk, bv := b.Table.HashPairs()
		if len(ak) != len(bk) {
			return "hash length differs"
		}
		for i := range ak {
			if diff := cmp.Diff(ak[i].Str, bk[i].Str); diff != "" {
				return diff
			}
			if diff := cmp.Diff(av[i].Str, bv[i].Str); diff != "" {
				return diff
			}
		}
		return ""
	default:
		if a.Num != b.Num || a.Bool != b.Bool || a.Str != b.Str {
			return "scalar mismatch"
		}
		return ""
	}
}
