// Package parser implements recursive-descent parsing with precedence
// climbing over the token stream produced by the lexer, yielding the AST
// defined in internal/ast.
package parser

import (
	"fmt"

	"github.com/redis-eval/redis-eval/internal/ast"
	"github.com/redis-eval/redis-eval/internal/scripterrors"
	"github.com/redis-eval/redis-eval/internal/token"
)

// Parser consumes a fixed token slice and builds an AST.
type Parser struct {
	tokens []token.Token
	pos    int
}

// Option configures a Parser constructed with New. None are defined yet;
// this is a documented extension point mirroring the lexer's Option type.
type Option func(*Parser)

// New creates a Parser over a complete token stream (as produced by
// lexer.Tokenize), the way the distilled reference evaluator's Parser::new
// takes the fully tokenized input rather than pulling from the lexer
// incrementally.
func New(tokens []token.Token, opts ...Option) *Parser {
	p := &Parser{tokens: tokens}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseChunk parses a complete script (a top-level block) and fails if
// trailing tokens remain after it.
func (p *Parser) ParseChunk() (ast.Block, error) {
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != token.EOF {
		return nil, p.errAt(p.peek().Pos, "unexpected token %s", p.peek())
	}
	return block, nil
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) check(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) match(k token.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if !p.check(k) {
		return token.Token{}, p.errAt(p.peek().Pos, "expected %s, found %s", k, p.peek())
	}
	return p.advance(), nil
}

func (p *Parser) errAt(pos token.Position, format string, args ...any) error {
	return scripterrors.New(scripterrors.ParseError, pos, fmt.Sprintf(format, args...))
}

// isBlockEnd reports whether the current token closes an enclosing block
// (used by parseBlock to stop without consuming the terminator).
func (p *Parser) isBlockEnd() bool {
	switch p.peek().Kind {
	case token.EOF, token.END, token.ELSE, token.ELSEIF, token.UNTIL:
		return true
	default:
		return false
	}
}

func (p *Parser) parseBlock() (ast.Block, error) {
	var stmts ast.Block
	for !p.isBlockEnd() {
		if p.match(token.SEMI) {
			continue
		}
		if p.check(token.RETURN) {
			stmt, err := p.parseReturn()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, stmt)
			break // return must be the last statement in a block
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}
