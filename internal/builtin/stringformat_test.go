package builtin

import (
	"testing"

	"github.com/redis-eval/redis-eval/internal/value"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		fmt  string
		args []value.Value
		want string
	}{
		{"literal percent", "100%%", nil, "100%"},
		{"decimal", "n=%d", []value.Value{value.Number(42)}, "n=42"},
		{"string", "hi %s", []value.Value{value.String("there")}, "hi there"},
		{"hex", "%x", []value.Value{value.Number(255)}, "ff"},
		{"upper hex", "%X", []value.Value{value.Number(255)}, "FF"},
		{"width/precision ignored", "%5.2d", []value.Value{value.Number(3)}, "3"},
		{"unknown conversion echoes", "%z", nil, "%z"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Format(c.fmt, c.args)
			if err != nil {
				t.Fatalf("Format error: %v", err)
			}
			if got != c.want {
				t.Errorf("Format(%q) = %q, want %q", c.fmt, got, c.want)
			}
		})
	}
}
