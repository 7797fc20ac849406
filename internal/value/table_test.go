package value

import "testing"

func TestTableArrayAppendAndLen(t *testing.T) {
	tbl := NewTable()
	for i := 1; i <= 3; i++ {
		tbl.Set(Number(float64(i)), Number(float64(i*i)))
	}
	if got := tbl.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	if got := tbl.Get(Number(2)); got.Num != 4 {
		t.Fatalf("Get(2) = %v, want 4", got)
	}
	if got := tbl.Get(Number(4)); !got.IsNil() {
		t.Fatalf("Get(4) = %v, want nil (out of range)", got)
	}
}

func TestTableStringKeysStayInHashPart(t *testing.T) {
	tbl := NewTable()
	tbl.Set(String("ok"), String("PONG"))
	if tbl.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 (string key must not occupy array part)", tbl.Len())
	}
	if got := tbl.Get(String("ok")); got.Str != "PONG" {
		t.Fatalf("Get(ok) = %v, want PONG", got)
	}
}

func TestTableNextOrdersArrayThenHash(t *testing.T) {
	tbl := NewTable()
	tbl.Set(Number(1), String("a"))
	tbl.Set(Number(2), String("b"))
	tbl.Set(String("x"), String("hx"))
	tbl.Set(String("y"), String("hy"))

	var keys []Value
	k, v, ok := tbl.Next(Nil, false)
	for ok {
		keys = append(keys, k)
		_ = v
		k, v, ok = tbl.Next(k, true)
	}
	if len(keys) != 4 {
		t.Fatalf("got %d keys, want 4", len(keys))
	}
	if keys[0].Num != 1 || keys[1].Num != 2 {
		t.Fatalf("array keys out of order: %v", keys[:2])
	}
	if keys[2].Str != "x" || keys[3].Str != "y" {
		t.Fatalf("hash keys out of insertion order: %v", keys[2:])
	}
}

func TestTableSetNilRemovesHashEntry(t *testing.T) {
	tbl := NewTable()
	tbl.Set(String("k"), String("v"))
	tbl.Set(String("k"), Nil)
	if _, _, ok := tbl.Next(Nil, false); ok {
		t.Fatalf("expected empty table after removing sole hash entry")
	}
}

func TestTableInsertAndRemove(t *testing.T) {
	tbl := NewTable()
	tbl.Append(Number(1))
	tbl.Append(Number(3))
	tbl.InsertAt(2, Number(2))
	if tbl.Len() != 3 || tbl.Get(Number(2)).Num != 2 {
		t.Fatalf("InsertAt failed: array=%v", tbl.Array)
	}
	removed := tbl.RemoveAt(0, false)
	if removed.Num != 3 || tbl.Len() != 2 {
		t.Fatalf("RemoveAt(default) = %v, len=%d, want 3, 2", removed, tbl.Len())
	}
}

func TestTableNilKeyWritable(t *testing.T) {
	tbl := NewTable()
	tbl.Set(Nil, String("v"))
	if got := tbl.Get(Nil); got.Str != "v" {
		t.Fatalf("Get(nil) = %v, want v (Open Question 1: nil keys are writable)", got)
	}
}
