package builtin

import (
	"testing"

	"github.com/redis-eval/redis-eval/internal/value"
)

func TestEncodeJSONScalars(t *testing.T) {
	cases := []struct {
		name string
		in   value.Value
		want string
	}{
		{"nil", value.Nil, "null"},
		{"true", value.Bool(true), "true"},
		{"number", value.Number(3), "3"},
		{"string", value.String("a\"b\\c\n"), `"a\"b\\c\n"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := EncodeJSON(c.in)
			if err != nil {
				t.Fatalf("EncodeJSON error: %v", err)
			}
			if got != c.want {
				t.Errorf("EncodeJSON(%v) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestEncodeJSONArrayTable(t *testing.T) {
	tbl := value.NewTable()
	tbl.Append(value.Number(1))
	tbl.Append(value.Number(2))
	tbl.Append(value.Number(3))
	got, err := EncodeJSON(value.TableVal(tbl))
	if err != nil {
		t.Fatalf("EncodeJSON error: %v", err)
	}
	if got != "[1,2,3]" {
		t.Errorf("EncodeJSON(array table) = %q, want [1,2,3]", got)
	}
}

func TestEncodeJSONObjectTable(t *testing.T) {
	tbl := value.NewTable()
	tbl.Set(value.String("ok"), value.String("PONG"))
	got, err := EncodeJSON(value.TableVal(tbl))
	if err != nil {
		t.Fatalf("EncodeJSON error: %v", err)
	}
	if got != `{"ok":"PONG"}` {
		t.Errorf("EncodeJSON(object table) = %q, want {\"ok\":\"PONG\"}", got)
	}
}

func TestDecodeJSON(t *testing.T) {
	v, err := DecodeJSON(`[1,2,3]`)
	if err != nil {
		t.Fatalf("DecodeJSON error: %v", err)
	}
	if v.Kind != value.KindTable || v.Table.Len() != 3 {
		t.Fatalf("DecodeJSON([1,2,3]) = %v, want 3-element table", v)
	}
	if v.Table.Get(value.Number(2)).Num != 2 {
		t.Fatalf("element 2 = %v, want 2", v.Table.Get(value.Number(2)))
	}
}

func TestDecodeJSONObjectAndEscapes(t *testing.T) {
	v, err := DecodeJSON(`{"a": "line\nbreak", "b": true, "c": null}`)
	if err != nil {
		t.Fatalf("DecodeJSON error: %v", err)
	}
	if got := v.Table.Get(value.String("a")).Str; got != "line\nbreak" {
		t.Errorf("a = %q, want %q", got, "line\nbreak")
	}
	if got := v.Table.Get(value.String("b")).Bool; !got {
		t.Errorf("b = %v, want true", got)
	}
	if got := v.Table.Get(value.String("c")); !got.IsNil() {
		t.Errorf("c = %v, want nil", got)
	}
}

func TestDecodeJSONInvalid(t *testing.T) {
	if _, err := DecodeJSON(`{bad`); err == nil {
		t.Fatal("expected an error decoding malformed JSON")
	}
}
