package parser

import (
	"github.com/redis-eval/redis-eval/internal/ast"
	"github.com/redis-eval/redis-eval/internal/token"
)

// parseExprList parses a comma-separated expression list, used for
// function arguments, return values, and the right-hand side of
// assignment/local declarations.
func (p *Parser) parseExprList() ([]ast.Expr, error) {
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	exprs := []ast.Expr{first}
	for p.match(token.COMMA) {
		next, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, next)
	}
	return exprs, nil
}

// Precedence, lowest to highest: or, and, comparisons, concat (right-
// assoc), additive, multiplicative, unary, exponent (right-assoc, binds
// tighter than unary).
func (p *Parser) parseExpr() (ast.Expr, error) { return p.parseOr() }

func (p *Parser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.check(token.OR) {
		pos := p.advance().Pos
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Position: pos, Op: token.OR, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.check(token.AND) {
		pos := p.advance().Pos
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Position: pos, Op: token.AND, Left: left, Right: right}
	}
	return left, nil
}

func isComparisonOp(k token.Kind) bool {
	switch k {
	case token.EQ, token.NEQ, token.LT, token.GT, token.LE, token.GE:
		return true
	default:
		return false
	}
}

func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for isComparisonOp(p.peek().Kind) {
		opTok := p.advance()
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Position: opTok.Pos, Op: opTok.Kind, Left: left, Right: right}
	}
	return left, nil
}

// parseConcat is right-associative: a..b..c parses as a..(b..c).
func (p *Parser) parseConcat() (ast.Expr, error) {
	left, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}
	if p.check(token.CONCAT) {
		pos := p.advance().Pos
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Position: pos, Op: token.CONCAT, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseAddSub() (ast.Expr, error) {
	left, err := p.parseMulDiv()
	if err != nil {
		return nil, err
	}
	for p.check(token.PLUS) || p.check(token.MINUS) {
		opTok := p.advance()
		right, err := p.parseMulDiv()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Position: opTok.Pos, Op: opTok.Kind, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMulDiv() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.check(token.STAR) || p.check(token.SLASH) || p.check(token.PERCENT) {
		opTok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Position: opTok.Pos, Op: opTok.Kind, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	switch p.peek().Kind {
	case token.NOT, token.MINUS, token.HASH:
		opTok := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Position: opTok.Pos, Op: opTok.Kind, Operand: operand}, nil
	default:
		return p.parsePower()
	}
}

// parsePower is right-associative and binds tighter than unary operators,
// so "-x^2" parses as "-(x^2)".
func (p *Parser) parsePower() (ast.Expr, error) {
	left, err := p.parseSuffixedExpr()
	if err != nil {
		return nil, err
	}
	if p.check(token.CARET) {
		pos := p.advance().Pos
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Position: pos, Op: token.CARET, Left: left, Right: right}, nil
	}
	return left, nil
}

// parseSuffixedExpr parses a primary expression followed by any mix of
// .name, [expr], :name(args), (args), {table}, or a bare string-literal
// call.
func (p *Parser) parseSuffixedExpr() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		pos := p.peek().Pos
		switch p.peek().Kind {
		case token.DOT:
			p.advance()
			name, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			expr = &ast.FieldExpr{Position: pos, Target: expr, Name: name.Lit}
		case token.LBRACKET:
			p.advance()
			key, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			expr = &ast.IndexExpr{Position: pos, Target: expr, Key: key}
		case token.COLON:
			p.advance()
			name, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			expr = &ast.MethodCallExpr{Position: pos, Target: expr, Name: name.Lit, Args: args}
		case token.LPAREN, token.STRING, token.LBRACE:
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpr{Position: pos, Fn: expr, Args: args}
		default:
			return expr, nil
		}
	}
}

// parseCallArgs parses "(exprlist)", a single string literal, or a single
// table constructor — all valid call-argument forms.
func (p *Parser) parseCallArgs() ([]ast.Expr, error) {
	switch p.peek().Kind {
	case token.LPAREN:
		p.advance()
		var args []ast.Expr
		if !p.check(token.RPAREN) {
			var err error
			args, err = p.parseExprList()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return args, nil
	case token.STRING:
		tok := p.advance()
		return []ast.Expr{&ast.StringLit{Position: tok.Pos, Value: tok.Lit}}, nil
	case token.LBRACE:
		tbl, err := p.parseTableConstructor()
		if err != nil {
			return nil, err
		}
		return []ast.Expr{tbl}, nil
	default:
		return nil, p.errAt(p.peek().Pos, "unexpected token %s in call arguments", p.peek())
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.NIL:
		p.advance()
		return &ast.NilLit{Position: tok.Pos}, nil
	case token.TRUE:
		p.advance()
		return &ast.BoolLit{Position: tok.Pos, Value: true}, nil
	case token.FALSE:
		p.advance()
		return &ast.BoolLit{Position: tok.Pos, Value: false}, nil
	case token.NUMBER:
		p.advance()
		return &ast.NumberLit{Position: tok.Pos, Value: tok.Num}, nil
	case token.STRING:
		p.advance()
		return &ast.StringLit{Position: tok.Pos, Value: tok.Lit}, nil
	case token.ELLIPSIS:
		p.advance()
		return &ast.VarargsExpr{Position: tok.Pos}, nil
	case token.IDENT:
		p.advance()
		return &ast.NameExpr{Position: tok.Pos, Name: tok.Lit}, nil
	case token.LPAREN:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case token.LBRACE:
		return p.parseTableConstructor()
	case token.FUNCTION:
		p.advance()
		params, variadic, body, err := p.parseFuncBody()
		if err != nil {
			return nil, err
		}
		return &ast.FunctionExpr{Position: tok.Pos, Params: params, IsVariadic: variadic, Body: body}, nil
	default:
		return nil, p.errAt(tok.Pos, "unexpected token %s", tok)
	}
}

func (p *Parser) parseTableConstructor() (ast.Expr, error) {
	pos := p.advance().Pos // '{'
	var fields []ast.Field
	for !p.check(token.RBRACE) {
		var field ast.Field
		switch {
		case p.check(token.LBRACKET):
			p.advance()
			key, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			if _, err := p.expect(token.ASSIGN); err != nil {
				return nil, err
			}
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			field = ast.Field{Key: key, Value: value}
		case p.check(token.IDENT) && p.peekAt(1).Kind == token.ASSIGN:
			name := p.advance()
			p.advance() // '='
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			field = ast.Field{Key: &ast.StringLit{Position: name.Pos, Value: name.Lit}, Value: value}
		default:
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			field = ast.Field{Value: value}
		}
		fields = append(fields, field)
		if !p.match(token.COMMA) && !p.match(token.SEMI) {
			break
		}
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.TableConstructorExpr{Position: pos, Fields: fields}, nil
}
