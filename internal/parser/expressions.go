package parser

import (
	"github.com/tychobrailleur/mjc/internal/ast"
	"github.com/tychobrailleur/mjc/internal/lexer"
)

// Precedence levels, lowest to highest. MiniJava's own grammar treats
// the binary operators as having separate precedence bands even though
// the original PDF grammar doesn't name one; this follows the usual
// Java precedence (|| looser than &&, looser than equality, looser
// than relational, looser than +/-, looser than *) since the spec's
// canonical programs rely on that ordering implicitly.
const (
	LOWEST int = iota
	OR
	AND
	EQUALS
	RELATIONAL
	SUM
	PRODUCT
	PREFIX
	POSTFIX // [index], .length, .method(args)
)

var precedences = map[lexer.TokenType]int{
	lexer.OR:        OR,
	lexer.AND:       AND,
	lexer.EQ:        EQUALS,
	lexer.NOT_EQ:    EQUALS,
	lexer.LESS:      RELATIONAL,
	lexer.GREATER:   RELATIONAL,
	lexer.LESS_EQ:   RELATIONAL,
	lexer.GREATER_EQ: RELATIONAL,
	lexer.PLUS:      SUM,
	lexer.MINUS:     SUM,
	lexer.TIMES:     PRODUCT,
	lexer.LBRACK:    POSTFIX,
	lexer.DOT:       POSTFIX,
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peek.Type]; ok {
		return pr
	}
	return LOWEST
}

// parseExpression is the Pratt core: parse a prefix term, then keep
// folding in infix/postfix operators whose precedence exceeds the
// caller's floor.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	left := p.parsePrefix()

	for precedence < p.peekPrecedence() {
		switch p.peek.Type {
		case lexer.LBRACK:
			p.nextToken()
			left = p.parseArrayAccess(left)
		case lexer.DOT:
			p.nextToken()
			left = p.parseDotSuffix(left)
		default:
			p.nextToken()
			left = p.parseBinary(left)
		}
	}

	return left
}

func (p *Parser) parsePrefix() ast.Expression {
	switch p.cur.Type {
	case lexer.INT:
		return &ast.IntegerLiteral{Token: p.cur}
	case lexer.TRUE:
		return &ast.BooleanLiteral{Token: p.cur, Value: true}
	case lexer.FALSE:
		return &ast.BooleanLiteral{Token: p.cur, Value: false}
	case lexer.THIS:
		return &ast.ThisExpression{Token: p.cur}
	case lexer.IDENT:
		return p.parseIdentifier()
	case lexer.NOT:
		tok := p.cur
		p.nextToken()
		return &ast.NotExpression{Token: tok, Operand: p.parseExpression(PREFIX)}
	case lexer.LPAREN:
		p.nextToken()
		expr := p.parseExpression(LOWEST)
		p.expectPeek(lexer.RPAREN)
		return expr
	case lexer.NEW:
		return p.parseNew()
	default:
		p.fail(p.cur.Pos, "unexpected token %s %q in expression", p.cur.Type, p.cur.Literal)
		return nil
	}
}

// parseNew handles `new int[size]` and `new ClassName()`.
func (p *Parser) parseNew() ast.Expression {
	tok := p.cur
	if p.peek.Type == lexer.INT_KW {
		p.nextToken()
		p.expectPeek(lexer.LBRACK)
		p.nextToken()
		size := p.parseExpression(LOWEST)
		p.expectPeek(lexer.RBRACK)
		return &ast.NewIntArrayExpression{Token: tok, Size: size}
	}

	p.expectPeek(lexer.IDENT)
	name := p.parseIdentifier()
	p.expectPeek(lexer.LPAREN)
	p.expectPeek(lexer.RPAREN)
	return &ast.NewInstanceExpression{Token: tok, ClassName: name}
}

// parseArrayAccess parses the `[index]` suffix. `new int[e]` is never a
// valid array base (MiniJava arrays aren't nestable), so that
// combination is rejected here rather than left for the type checker.
func (p *Parser) parseArrayAccess(array ast.Expression) ast.Expression {
	if _, ok := array.(*ast.NewIntArrayExpression); ok {
		p.fail(p.cur.Pos, "cannot index the result of new int[...] expression")
	}
	tok := p.cur
	p.nextToken()
	index := p.parseExpression(LOWEST)
	p.expectPeek(lexer.RBRACK)
	return &ast.ArrayAccessExpression{Token: tok, Array: array, Index: index}
}

// parseDotSuffix parses either `.length` or `.method(args)`.
func (p *Parser) parseDotSuffix(recv ast.Expression) ast.Expression {
	tok := p.cur
	if p.peek.Type == lexer.LENGTH {
		p.nextToken()
		return &ast.ArrayLengthExpression{Token: tok, Array: recv}
	}

	p.expectPeek(lexer.IDENT)
	method := p.parseIdentifier()
	p.expectPeek(lexer.LPAREN)

	var args []ast.Expression
	if p.peek.Type != lexer.RPAREN {
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
		for p.peek.Type == lexer.COMMA {
			p.nextToken()
			p.nextToken()
			args = append(args, p.parseExpression(LOWEST))
		}
	}
	p.expectPeek(lexer.RPAREN)

	return &ast.MethodCallExpression{Token: tok, Receiver: recv, Method: method, Arguments: args}
}

var binaryOperators = map[lexer.TokenType]string{
	lexer.OR: "||", lexer.AND: "&&",
	lexer.EQ: "==", lexer.NOT_EQ: "!=",
	lexer.LESS: "<", lexer.GREATER: ">", lexer.LESS_EQ: "<=", lexer.GREATER_EQ: ">=",
	lexer.PLUS: "+", lexer.MINUS: "-", lexer.TIMES: "*",
}

func (p *Parser) parseBinary(left ast.Expression) ast.Expression {
	tok := p.cur
	op := binaryOperators[tok.Type]
	prec := precedences[tok.Type]
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.BinaryExpression{Token: tok, Left: left, Operator: op, Right: right}
}
