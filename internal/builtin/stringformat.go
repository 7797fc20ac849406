package builtin

import (
	"strconv"
	"strings"

	"github.com/redis-eval/redis-eval/internal/value"
)

// Format implements string.format(fmt, ...) per spec.md §4.4: it parses
// %[flags][width][.prec]<conv> specifiers, but — per the spec's own
// documented limitation — flags/width/precision are parsed and then
// discarded; they are not applied to the rendered substring.
func Format(format string, args []value.Value) (string, error) {
	var sb strings.Builder
	argi := 0
	nextArg := func() value.Value {
		if argi < len(args) {
			v := args[argi]
			argi++
			return v
		}
		return value.Nil
	}

	i := 0
	for i < len(format) {
		c := format[i]
		if c != '%' {
			sb.WriteByte(c)
			i++
			continue
		}
		start := i
		i++
		if i < len(format) && format[i] == '%' {
			sb.WriteByte('%')
			i++
			continue
		}
		// flags
		for i < len(format) && strings.ContainsRune("-+ 0#", rune(format[i])) {
			i++
		}
		// width
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			i++
		}
		// precision
		if i < len(format) && format[i] == '.' {
			i++
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
		}
		if i >= len(format) {
			sb.WriteString(format[start:i])
			break
		}
		conv := format[i]
		i++
		rendered, ok := renderConv(conv, nextArg)
		if !ok {
			sb.WriteString(format[start:i])
			continue
		}
		sb.WriteString(rendered)
	}
	return sb.String(), nil
}

func renderConv(conv byte, nextArg func() value.Value) (string, bool) {
	switch conv {
	case 'd', 'i':
		n, _ := value.ToNumber(nextArg())
		return strconv.FormatInt(int64(n), 10), true
	case 'f':
		n, _ := value.ToNumber(nextArg())
		return strconv.FormatFloat(n, 'f', 6, 64), true
	case 'e':
		n, _ := value.ToNumber(nextArg())
		return strconv.FormatFloat(n, 'e', 6, 64), true
	case 'g':
		n, _ := value.ToNumber(nextArg())
		return value.FormatNumber(n), true
	case 's':
		return value.ToDisplayString(nextArg()), true
	case 'q':
		s := value.ToDisplayString(nextArg())
		return quoteWrap(s), true
	case 'x':
		n, _ := value.ToNumber(nextArg())
		return strconv.FormatUint(uint64(int64(n)), 16), true
	case 'X':
		n, _ := value.ToNumber(nextArg())
		return strings.ToUpper(strconv.FormatUint(uint64(int64(n)), 16)), true
	case 'o':
		n, _ := value.ToNumber(nextArg())
		return strconv.FormatUint(uint64(int64(n)), 8), true
	case 'c':
		n, _ := value.ToNumber(nextArg())
		b := byte(int64(n) % 256)
		return string([]byte{b}), true
	default:
		return "", false
	}
}

func quoteWrap(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case 0:
			sb.WriteString(`\0`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
