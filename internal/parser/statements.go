package parser

import (
	"github.com/tychobrailleur/mjc/internal/ast"
	"github.com/tychobrailleur/mjc/internal/lexer"
)

// parseStatements collects statements until the upcoming token is stop,
// assuming cur is already positioned before the first statement (or
// already at stop, in which case it returns nil).
func (p *Parser) parseStatements(stop lexer.TokenType) []ast.Statement {
	var stmts []ast.Statement
	for p.peek.Type != stop {
		p.nextToken()
		stmts = append(stmts, p.parseStatement())
	}
	return stmts
}

// parseStatement parses one statement, assuming cur is its first token.
//
// The dangling-else ambiguity needs no separate statementNoShortIf
// production here: parseIf recursively parses its then-branch via this
// same function, so by the time an enclosing if looks at p.peek for an
// ELSE, any if nested inside the then-branch has already greedily
// claimed the nearest following else for itself during its own
// recursive call. That's exactly the "else binds to the closest
// unmatched if" rule, for free, from call order.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.PRINTLN:
		return p.parsePrintln()
	case lexer.IDENT:
		return p.parseAssignOrArrayAssign()
	default:
		p.fail(p.cur.Pos, "expected a statement, got %s %q", p.cur.Type, p.cur.Literal)
		return nil
	}
}

func (p *Parser) parseBlock() *ast.BlockStatement {
	tok := p.cur
	stmts := p.parseStatements(lexer.RBRACE)
	p.expectPeek(lexer.RBRACE)
	return &ast.BlockStatement{Token: tok, Statements: stmts}
}

func (p *Parser) parsePrintln() *ast.PrintlnStatement {
	tok := p.cur
	p.expectPeek(lexer.LPAREN)
	p.nextToken()
	value := p.parseExpression(LOWEST)
	p.expectPeek(lexer.RPAREN)
	p.expectPeek(lexer.SEMICOLON)
	return &ast.PrintlnStatement{Token: tok, Value: value}
}

// parseIf parses `if (cond) then` and, if an else immediately follows,
// folds it into an IfElseStatement instead.
func (p *Parser) parseIf() ast.Statement {
	tok := p.cur
	p.expectPeek(lexer.LPAREN)
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	p.expectPeek(lexer.RPAREN)
	p.nextToken()
	then := p.parseStatement()

	if p.peek.Type == lexer.ELSE {
		p.nextToken()
		p.nextToken()
		els := p.parseStatement()
		return &ast.IfElseStatement{Token: tok, Condition: cond, Then: then, Else: els}
	}
	return &ast.IfStatement{Token: tok, Condition: cond, Then: then}
}

func (p *Parser) parseWhile() *ast.WhileStatement {
	tok := p.cur
	p.expectPeek(lexer.LPAREN)
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	p.expectPeek(lexer.RPAREN)
	p.nextToken()
	body := p.parseStatement()
	return &ast.WhileStatement{Token: tok, Condition: cond, Body: body}
}

// parseAssignOrArrayAssign parses `name = value;` or `name[index] =
// value;`, assuming cur is the leading identifier.
func (p *Parser) parseAssignOrArrayAssign() ast.Statement {
	name := p.parseIdentifier()

	if p.peek.Type == lexer.LBRACK {
		p.nextToken()
		p.nextToken()
		index := p.parseExpression(LOWEST)
		p.expectPeek(lexer.RBRACK)
		p.expectPeek(lexer.ASSIGN)
		tok := p.cur
		p.nextToken()
		value := p.parseExpression(LOWEST)
		p.expectPeek(lexer.SEMICOLON)
		return &ast.ArrayAssignStatement{Token: tok, Name: name, Index: index, Value: value}
	}

	p.expectPeek(lexer.ASSIGN)
	tok := p.cur
	p.nextToken()
	value := p.parseExpression(LOWEST)
	p.expectPeek(lexer.SEMICOLON)
	return &ast.AssignStatement{Token: tok, Name: name, Value: value}
}
