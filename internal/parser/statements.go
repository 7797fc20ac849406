package parser

import (
	"github.com/redis-eval/redis-eval/internal/ast"
	"github.com/redis-eval/redis-eval/internal/token"
)

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.peek().Kind {
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.REPEAT:
		return p.parseRepeat()
	case token.FOR:
		return p.parseFor()
	case token.DO:
		return p.parseDo()
	case token.LOCAL:
		return p.parseLocal()
	case token.FUNCTION:
		return p.parseFunctionDecl()
	case token.BREAK:
		pos := p.advance().Pos
		return &ast.BreakStmt{Position: pos}, nil
	default:
		return p.parseExprOrAssign()
	}
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	pos := p.advance().Pos // 'if'
	stmt := &ast.IfStmt{Position: pos}
	for {
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.THEN); err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Branches = append(stmt.Branches, ast.IfBranch{Cond: cond, Body: body})
		if p.match(token.ELSEIF) {
			continue
		}
		break
	}
	if p.match(token.ELSE) {
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Else = body
	}
	if _, err := p.expect(token.END); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	pos := p.advance().Pos // 'while'
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DO); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.END); err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Position: pos, Cond: cond, Body: body}, nil
}

func (p *Parser) parseRepeat() (ast.Stmt, error) {
	pos := p.advance().Pos // 'repeat'
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.UNTIL); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.RepeatStmt{Position: pos, Body: body, Cond: cond}, nil
}

func (p *Parser) parseFor() (ast.Stmt, error) {
	pos := p.advance().Pos // 'for'
	first, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if p.match(token.ASSIGN) {
		start, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COMMA); err != nil {
			return nil, err
		}
		stop, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		var step ast.Expr
		if p.match(token.COMMA) {
			step, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(token.DO); err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.END); err != nil {
			return nil, err
		}
		return &ast.NumericForStmt{Position: pos, Name: first.Lit, Start: start, Stop: stop, Step: step, Body: body}, nil
	}

	names := []string{first.Lit}
	for p.match(token.COMMA) {
		name, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		names = append(names, name.Lit)
	}
	if _, err := p.expect(token.IN); err != nil {
		return nil, err
	}
	exprs, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DO); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.END); err != nil {
		return nil, err
	}
	return &ast.GenericForStmt{Position: pos, Names: names, Exprs: exprs, Body: body}, nil
}

func (p *Parser) parseDo() (ast.Stmt, error) {
	pos := p.advance().Pos // 'do'
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.END); err != nil {
		return nil, err
	}
	return &ast.DoStmt{Position: pos, Body: body}, nil
}

func (p *Parser) parseLocal() (ast.Stmt, error) {
	pos := p.advance().Pos // 'local'
	if p.match(token.FUNCTION) {
		name, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		params, variadic, body, err := p.parseFuncBody()
		if err != nil {
			return nil, err
		}
		return &ast.LocalFunctionStmt{Position: pos, Name: name.Lit, Params: params, IsVariadic: variadic, Body: body}, nil
	}

	first, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	names := []string{first.Lit}
	for p.match(token.COMMA) {
		name, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		names = append(names, name.Lit)
	}
	var exprs []ast.Expr
	if p.match(token.ASSIGN) {
		exprs, err = p.parseExprList()
		if err != nil {
			return nil, err
		}
	}
	return &ast.LocalStmt{Position: pos, Names: names, Exprs: exprs}, nil
}

func (p *Parser) parseFunctionDecl() (ast.Stmt, error) {
	pos := p.advance().Pos // 'function'
	first, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	names := []string{first.Lit}
	for p.match(token.DOT) {
		name, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		names = append(names, name.Lit)
	}
	params, variadic, body, err := p.parseFuncBody()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclStmt{Position: pos, Names: names, Params: params, IsVariadic: variadic, Body: body}, nil
}

// parseFuncBody parses "(params) block end" shared by function
// expressions, local function declarations, and named function
// declarations.
func (p *Parser) parseFuncBody() ([]string, bool, ast.Block, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, false, nil, err
	}
	var params []string
	variadic := false
	if !p.check(token.RPAREN) {
		for {
			if p.match(token.ELLIPSIS) {
				variadic = true
				break
			}
			name, err := p.expect(token.IDENT)
			if err != nil {
				return nil, false, nil, err
			}
			params = append(params, name.Lit)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, false, nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, false, nil, err
	}
	if _, err := p.expect(token.END); err != nil {
		return nil, false, nil, err
	}
	return params, variadic, body, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	pos := p.advance().Pos // 'return'
	var exprs []ast.Expr
	if !p.isBlockEnd() && !p.check(token.SEMI) {
		var err error
		exprs, err = p.parseExprList()
		if err != nil {
			return nil, err
		}
	}
	p.match(token.SEMI)
	return &ast.ReturnStmt{Position: pos, Exprs: exprs}, nil
}

// parseExprOrAssign parses a statement starting with an expression: a
// bare call, or the left side of an (possibly multi-target) assignment.
// Any expression is allowed to stand alone as a statement — the
// "function call expected" restriction is relaxed, per the grammar.
func (p *Parser) parseExprOrAssign() (ast.Stmt, error) {
	pos := p.peek().Pos
	start := p.pos
	first, err := p.parseSuffixedExpr()
	if err == nil && (p.check(token.ASSIGN) || p.check(token.COMMA)) {
		lhs := []ast.Expr{first}
		for p.match(token.COMMA) {
			next, err := p.parseSuffixedExpr()
			if err != nil {
				return nil, err
			}
			lhs = append(lhs, next)
		}
		if _, err := p.expect(token.ASSIGN); err != nil {
			return nil, err
		}
		rhs, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		return &ast.AssignStmt{Position: pos, Lhs: lhs, Rhs: rhs}, nil
	}

	// Not an assignment: re-parse from the start as a full expression, so
	// operators after the first operand (`0 .. ""`) belong to the statement.
	p.pos = start
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.match(token.SEMI)
	return &ast.ExprStmt{Position: pos, X: x}, nil
}
