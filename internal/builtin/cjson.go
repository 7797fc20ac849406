// Package builtin holds the built-in library routines (C5) that need no
// callback into the evaluator: cjson's encoder/decoder and
// string.format's conversion-specifier renderer. Routines that must call
// back into a script or host function (pcall, redis.call, pairs/ipairs'
// iterators) stay in internal/interp, which imports this package for the
// pure pieces.
package builtin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/redis-eval/redis-eval/internal/value"
)

// EncodeJSON implements cjson.encode per spec.md §4.4: nil -> null, bool,
// number (integer-preferring), string (with \" \\ \n \r \t escapes,
// other bytes pass through), table as a JSON array iff the array part is
// non-empty and the hash part is empty, as an object iff the array part
// is empty and the hash part is non-empty, otherwise as an object with
// the array part's numeric keys stringified.
func EncodeJSON(v value.Value) (string, error) {
	var sb strings.Builder
	if err := encodeValue(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func encodeValue(sb *strings.Builder, v value.Value) error {
	switch v.Kind {
	case value.KindNil:
		sb.WriteString("null")
	case value.KindBool:
		if v.Bool {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case value.KindNumber:
		sb.WriteString(value.FormatNumber(v.Num))
	case value.KindString:
		encodeJSONString(sb, v.Str)
	case value.KindTable:
		return encodeTable(sb, v.Table)
	default:
		sb.WriteString("null")
	}
	return nil
}

func encodeTable(sb *strings.Builder, t *value.Table) error {
	arrLen := t.Len()
	hashLen := t.HashLen()

	if arrLen > 0 && hashLen == 0 {
		sb.WriteByte('[')
		for i := 0; i < arrLen; i++ {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := encodeValue(sb, t.Get(value.Number(float64(i+1)))); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
		return nil
	}

	sb.WriteByte('{')
	wrote := false
	for i := 0; i < arrLen; i++ {
		if wrote {
			sb.WriteByte(',')
		}
		encodeJSONString(sb, strconv.Itoa(i+1))
		sb.WriteByte(':')
		if err := encodeValue(sb, t.Get(value.Number(float64(i+1)))); err != nil {
			return err
		}
		wrote = true
	}
	keys, vals := t.HashPairs()
	for i, k := range keys {
		if wrote {
			sb.WriteByte(',')
		}
		encodeJSONString(sb, value.ToDisplayString(k))
		sb.WriteByte(':')
		if err := encodeValue(sb, vals[i]); err != nil {
			return err
		}
		wrote = true
	}
	sb.WriteByte('}')
	return nil
}

func encodeJSONString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
}

// DecodeJSON implements cjson.decode per spec.md §4.4: a hand-rolled
// recursive-descent parser (the spec explicitly rules out a library
// decoder here) recognizing null/true/false, quoted strings with
// \" \\ \n \r \t escapes, arrays, objects, and numbers.
func DecodeJSON(s string) (value.Value, error) {
	p := &jsonParser{src: s}
	p.skipSpace()
	v, err := p.parseValue()
	if err != nil {
		return value.Nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return value.Nil, jsonErr()
	}
	return v, nil
}

func jsonErr() error { return fmt.Errorf("invalid JSON") }

type jsonParser struct {
	src string
	pos int
}

func (p *jsonParser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *jsonParser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *jsonParser) literal(lit string) bool {
	if strings.HasPrefix(p.src[p.pos:], lit) {
		p.pos += len(lit)
		return true
	}
	return false
}

func (p *jsonParser) parseValue() (value.Value, error) {
	p.skipSpace()
	b, ok := p.peek()
	if !ok {
		return value.Nil, jsonErr()
	}
	switch {
	case b == 'n' && p.literal("null"):
		return value.Nil, nil
	case b == 't' && p.literal("true"):
		return value.Bool(true), nil
	case b == 'f' && p.literal("false"):
		return value.Bool(false), nil
	case b == '"':
		s, err := p.parseString()
		if err != nil {
			return value.Nil, err
		}
		return value.String(s), nil
	case b == '[':
		return p.parseArray()
	case b == '{':
		return p.parseObject()
	case b == '-' || (b >= '0' && b <= '9'):
		return p.parseNumber()
	default:
		return value.Nil, jsonErr()
	}
}

func (p *jsonParser) parseString() (string, error) {
	if b, ok := p.peek(); !ok || b != '"' {
		return "", jsonErr()
	}
	p.pos++
	var sb strings.Builder
	for {
		b, ok := p.peek()
		if !ok {
			return "", jsonErr()
		}
		if b == '"' {
			p.pos++
			return sb.String(), nil
		}
		if b == '\\' {
			p.pos++
			esc, ok := p.peek()
			if !ok {
				return "", jsonErr()
			}
			switch esc {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			case '/':
				sb.WriteByte('/')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			default:
				return "", jsonErr()
			}
			p.pos++
			continue
		}
		sb.WriteByte(b)
		p.pos++
	}
}

func (p *jsonParser) parseNumber() (value.Value, error) {
	start := p.pos
	if b, ok := p.peek(); ok && b == '-' {
		p.pos++
	}
	for {
		b, ok := p.peek()
		if !ok || !(b >= '0' && b <= '9') {
			break
		}
		p.pos++
	}
	if b, ok := p.peek(); ok && b == '.' {
		p.pos++
		for {
			b, ok := p.peek()
			if !ok || !(b >= '0' && b <= '9') {
				break
			}
			p.pos++
		}
	}
	if b, ok := p.peek(); ok && (b == 'e' || b == 'E') {
		p.pos++
		if b, ok := p.peek(); ok && (b == '+' || b == '-') {
			p.pos++
		}
		for {
			b, ok := p.peek()
			if !ok || !(b >= '0' && b <= '9') {
				break
			}
			p.pos++
		}
	}
	text := p.src[start:p.pos]
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return value.Nil, jsonErr()
	}
	return value.Number(n), nil
}

func (p *jsonParser) parseArray() (value.Value, error) {
	p.pos++ // '['
	t := value.NewTable()
	p.skipSpace()
	if b, ok := p.peek(); ok && b == ']' {
		p.pos++
		return value.TableVal(t), nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return value.Nil, err
		}
		t.Append(v)
		p.skipSpace()
		b, ok := p.peek()
		if !ok {
			return value.Nil, jsonErr()
		}
		if b == ',' {
			p.pos++
			continue
		}
		if b == ']' {
			p.pos++
			return value.TableVal(t), nil
		}
		return value.Nil, jsonErr()
	}
}

func (p *jsonParser) parseObject() (value.Value, error) {
	p.pos++ // '{'
	t := value.NewTable()
	p.skipSpace()
	if b, ok := p.peek(); ok && b == '}' {
		p.pos++
		return value.TableVal(t), nil
	}
	for {
		p.skipSpace()
		key, err := p.parseString()
		if err != nil {
			return value.Nil, err
		}
		p.skipSpace()
		if b, ok := p.peek(); !ok || b != ':' {
			return value.Nil, jsonErr()
		}
		p.pos++
		val, err := p.parseValue()
		if err != nil {
			return value.Nil, err
		}
		t.Set(value.String(key), val)
		p.skipSpace()
		b, ok := p.peek()
		if !ok {
			return value.Nil, jsonErr()
		}
		if b == ',' {
			p.pos++
			continue
		}
		if b == '}' {
			p.pos++
			return value.TableVal(t), nil
		}
		return value.Nil, jsonErr()
	}
}
