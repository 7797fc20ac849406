package value

import "testing"

func TestTruthy(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil", Nil, false},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"zero", Number(0), true},
		{"empty string", String(""), true},
		{"table", TableVal(NewTable()), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.Truthy(); got != c.want {
				t.Errorf("Truthy() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestRawEqual(t *testing.T) {
	tbl := NewTable()
	cases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nil=nil", Nil, Nil, true},
		{"bool same", Bool(true), Bool(true), true},
		{"bool diff", Bool(true), Bool(false), false},
		{"number same", Number(1), Number(1), true},
		{"number diff", Number(1), Number(2), false},
		{"string same", String("a"), String("a"), true},
		{"string diff", String("a"), String("b"), false},
		{"cross kind", Number(0), String(""), false},
		{"cross kind nil/false", Nil, Bool(false), false},
		{"table identity", TableVal(tbl), TableVal(tbl), true},
		{"table distinct", TableVal(tbl), TableVal(NewTable()), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := RawEqual(c.a, c.b); got != c.want {
				t.Errorf("RawEqual(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestToNumber(t *testing.T) {
	cases := []struct {
		name    string
		v       Value
		want    float64
		wantOK  bool
	}{
		{"number", Number(3.5), 3.5, true},
		{"numeric string", String("42"), 42, true},
		{"padded numeric string", String("  42  "), 42, true},
		{"non-numeric string", String("abc"), 0, false},
		{"empty string", String(""), 0, false},
		{"table", TableVal(NewTable()), 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := ToNumber(c.v)
			if ok != c.wantOK || (ok && got != c.want) {
				t.Errorf("ToNumber(%v) = (%v, %v), want (%v, %v)", c.v, got, ok, c.want, c.wantOK)
			}
		})
	}
}

func TestToDisplayStringAndFormatNumber(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"nil", Nil, "nil"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"integer-valued float", Number(3), "3"},
		{"negative integer-valued float", Number(-3), "-3"},
		{"fraction", Number(3.5), "3.5"},
		{"string", String("hi"), "hi"},
		{"table", TableVal(NewTable()), "table"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ToDisplayString(c.v); got != c.want {
				t.Errorf("ToDisplayString(%v) = %q, want %q", c.v, got, c.want)
			}
		})
	}
}
