package lexer

import (
	"testing"

	"github.com/redis-eval/redis-eval/internal/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func mustTokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	tokens, err := New([]byte(src)).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", src, err)
	}
	return tokens
}

func TestTokenizeOperatorsAndPunctuation(t *testing.T) {
	tokens := mustTokenize(t, "+ - * / % ^ # == ~= < > <= >= = .. ... ( ) [ ] { } , ; : .")
	got := kinds(tokens)
	want := []token.Kind{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT, token.CARET,
		token.HASH, token.EQ, token.NEQ, token.LT, token.GT, token.LE, token.GE,
		token.ASSIGN, token.CONCAT, token.ELLIPSIS,
		token.LPAREN, token.RPAREN, token.LBRACKET, token.RBRACKET,
		token.LBRACE, token.RBRACE, token.COMMA, token.SEMI, token.COLON, token.DOT,
		token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTokenizeNumbers(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"42", 42},
		{"3.14", 3.14},
		{".5", 0.5},
		{"1e3", 1000},
		{"1.5e-2", 0.015},
		{"0x1F", 31},
		{"0XFF", 255},
	}
	for _, c := range cases {
		tokens := mustTokenize(t, c.src)
		if tokens[0].Kind != token.NUMBER {
			t.Fatalf("%q: got kind %s, want NUMBER", c.src, tokens[0].Kind)
		}
		if tokens[0].Num != c.want {
			t.Errorf("%q: got %v, want %v", c.src, tokens[0].Num, c.want)
		}
	}
}

func TestTokenizeInvalidHexNumber(t *testing.T) {
	if _, err := New([]byte("0x")).Tokenize(); err == nil {
		t.Fatal("expected error for invalid hex literal")
	}
}

func TestTokenizeShortStringsAndEscapes(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`"hello"`, "hello"},
		{`'hello'`, "hello"},
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"a\\b"`, "a\\b"},
		{`"say \"hi\""`, `say "hi"`},
		{`"\065"`, "A"},
	}
	for _, c := range cases {
		tokens := mustTokenize(t, c.src)
		if tokens[0].Kind != token.STRING {
			t.Fatalf("%q: got kind %s, want STRING", c.src, tokens[0].Kind)
		}
		if tokens[0].Lit != c.want {
			t.Errorf("%q: got %q, want %q", c.src, tokens[0].Lit, c.want)
		}
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	if _, err := New([]byte(`"abc`)).Tokenize(); err == nil {
		t.Fatal("expected error for unterminated string")
	}
	if _, err := New([]byte("\"abc\n\"")).Tokenize(); err == nil {
		t.Fatal("expected error for string spanning a newline")
	}
}

func TestTokenizeLongString(t *testing.T) {
	tokens := mustTokenize(t, "[[hello\nworld]]")
	if tokens[0].Kind != token.STRING {
		t.Fatalf("got kind %s, want STRING", tokens[0].Kind)
	}
	if tokens[0].Lit != "hello\nworld" {
		t.Errorf("got %q", tokens[0].Lit)
	}
}

func TestTokenizeLongStringSkipsLeadingNewline(t *testing.T) {
	tokens := mustTokenize(t, "[[\nhello]]")
	if tokens[0].Lit != "hello" {
		t.Errorf("got %q, want %q", tokens[0].Lit, "hello")
	}
}

func TestTokenizeComments(t *testing.T) {
	tokens := mustTokenize(t, "-- a line comment\nreturn 1 --[[ a\nlong comment ]] + 2")
	got := kinds(tokens)
	want := []token.Kind{token.RETURN, token.NUMBER, token.PLUS, token.NUMBER, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTokenizeKeywordsAndIdentifiers(t *testing.T) {
	tokens := mustTokenize(t, "local x = 1 and true or false")
	want := []token.Kind{
		token.LOCAL, token.IDENT, token.ASSIGN, token.NUMBER,
		token.AND, token.TRUE, token.OR, token.FALSE, token.EOF,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
	if tokens[1].Lit != "x" {
		t.Errorf("ident literal: got %q, want %q", tokens[1].Lit, "x")
	}
}

func TestTokenizeStrayTilde(t *testing.T) {
	if _, err := New([]byte("a ~ b")).Tokenize(); err == nil {
		t.Fatal("expected error for stray '~'")
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens := mustTokenize(t, "a\nb")
	if tokens[0].Pos.Line != 1 || tokens[0].Pos.Column != 1 {
		t.Errorf("got %v, want line 1 col 1", tokens[0].Pos)
	}
	if tokens[1].Pos.Line != 2 || tokens[1].Pos.Column != 1 {
		t.Errorf("got %v, want line 2 col 1", tokens[1].Pos)
	}
}
