// Package parser implements a recursive-descent/Pratt parser for
// MiniJava, turning a token stream into the internal/ast tree.
package parser

import (
	"github.com/tychobrailleur/mjc/internal/ast"
	"github.com/tychobrailleur/mjc/internal/errors"
	"github.com/tychobrailleur/mjc/internal/lexer"
)

// Parser consumes a TokenStream and builds an ast.Program. A parse
// halts at its first syntax error (spec's resolution of the error-
// recovery open question) rather than attempting to resynchronize, so
// the error slice Parse returns never holds more than one parser error,
// alongside whatever lexical errors the stream already accumulated.
type Parser struct {
	stream *lexer.TokenStream
	cur    lexer.Token
	peek   lexer.Token
	errs   []*errors.CompilerError
}

// New builds a Parser over src.
func New(src string) *Parser {
	p := &Parser{stream: lexer.NewStream(src)}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.stream.Next()
}

// Parse runs the parser to completion. On success it returns the
// program and an empty error slice (plus any lexical errors already on
// the stream); on a syntax error it returns a nil program, the lexical
// errors accumulated so far, and the single PARSER_ERROR that stopped
// the parse.
func Parse(src string) (*ast.Program, []*errors.CompilerError) {
	p := New(src)
	return p.parse()
}

func (p *Parser) parse() (prog *ast.Program, errs []*errors.CompilerError) {
	defer func() {
		if r := recover(); r != nil {
			a, ok := r.(abort)
			if !ok {
				panic(r)
			}
			errs = lexErrorsOf(p)
			errs = append(errs, a.err)
			prog = nil
		}
	}()

	mainClass := p.parseMainClass()
	var classes []*ast.ClassDecl
	for p.peek.Type != lexer.EOF {
		p.nextToken()
		classes = append(classes, p.parseClassDecl())
	}

	return &ast.Program{MainClass: mainClass, Classes: classes}, lexErrorsOf(p)
}

func lexErrorsOf(p *Parser) []*errors.CompilerError {
	var out []*errors.CompilerError
	for _, le := range p.stream.Errors() {
		out = append(out, errors.NewLexerError(le.Pos, le.Text))
	}
	return out
}

// parseMainClass parses:
//
//	class Name { public static void main(String[] argName) { locals* stmts* } }
func (p *Parser) parseMainClass() *ast.MainClassDecl {
	p.expectCur(lexer.CLASS)
	tok := p.cur
	p.expectPeek(lexer.IDENT)
	name := p.parseIdentifier()

	p.expectPeek(lexer.LBRACE)
	p.expectPeek(lexer.PUBLIC)
	p.expectPeek(lexer.STATIC)
	p.expectPeek(lexer.VOID)
	p.expectPeek(lexer.IDENT) // the method name; any identifier is accepted
	methodNameTok := p.cur
	p.expectPeek(lexer.LPAREN)
	p.expectPeek(lexer.STRING_KW)
	p.expectPeek(lexer.LBRACK)
	p.expectPeek(lexer.RBRACK)
	p.expectPeek(lexer.IDENT)
	argName := p.parseIdentifier()
	p.expectPeek(lexer.RPAREN)
	p.expectPeek(lexer.LBRACE)

	locals := p.parseVarDecls()
	stmts := p.parseStatements(lexer.RBRACE)

	p.expectPeek(lexer.RBRACE) // closes main method
	p.expectPeek(lexer.RBRACE) // closes main class

	return &ast.MainClassDecl{
		Token: tok, Name: name, MethodName: methodNameTok, ArgName: argName,
		Locals: locals, Statements: stmts,
	}
}

// parseClassDecl parses `class Name { field* method* }`.
func (p *Parser) parseClassDecl() *ast.ClassDecl {
	p.expectCur(lexer.CLASS)
	tok := p.cur
	p.expectPeek(lexer.IDENT)
	name := p.parseIdentifier()
	p.expectPeek(lexer.LBRACE)

	var fields []*ast.FieldDecl
	var methods []*ast.MethodDecl
	for p.peek.Type != lexer.RBRACE {
		p.nextToken()
		if p.cur.Type == lexer.PUBLIC {
			methods = append(methods, p.parseMethodDecl())
		} else {
			fields = append(fields, p.parseFieldDecl())
		}
	}
	p.expectPeek(lexer.RBRACE)

	return &ast.ClassDecl{Token: tok, Name: name, Fields: fields, Methods: methods}
}

// parseFieldDecl parses `Type name;`, assuming cur is the type's first token.
func (p *Parser) parseFieldDecl() *ast.FieldDecl {
	tok := p.cur
	ty := p.parseTypeAnnotation()
	p.expectPeek(lexer.IDENT)
	name := p.parseIdentifier()
	p.expectPeek(lexer.SEMICOLON)
	return &ast.FieldDecl{Token: tok, Type: ty, Name: name}
}

// parseMethodDecl parses:
//
//	public Type name(formals) { locals* stmts* return expr; }
//
// assuming cur is the 'public' token.
func (p *Parser) parseMethodDecl() *ast.MethodDecl {
	tok := p.cur
	p.nextToken()
	retType := p.parseTypeAnnotation()
	p.expectPeek(lexer.IDENT)
	name := p.parseIdentifier()
	p.expectPeek(lexer.LPAREN)

	var formals []*ast.Formal
	if p.peek.Type != lexer.RPAREN {
		p.nextToken()
		formals = append(formals, p.parseFormal())
		for p.peek.Type == lexer.COMMA {
			p.nextToken()
			p.nextToken()
			formals = append(formals, p.parseFormal())
		}
	}
	p.expectPeek(lexer.RPAREN)
	p.expectPeek(lexer.LBRACE)

	locals := p.parseVarDecls()
	stmts := p.parseStatements(lexer.RETURN)

	p.expectPeek(lexer.RETURN)
	p.nextToken()
	retExpr := p.parseExpression(LOWEST)
	p.expectPeek(lexer.SEMICOLON)
	p.expectPeek(lexer.RBRACE)

	return &ast.MethodDecl{
		Token: tok, ReturnType: retType, Name: name, Formals: formals,
		Locals: locals, Statements: stmts, ReturnExpr: retExpr,
	}
}

func (p *Parser) parseFormal() *ast.Formal {
	tok := p.cur
	ty := p.parseTypeAnnotation()
	p.expectPeek(lexer.IDENT)
	name := p.parseIdentifier()
	return &ast.Formal{Token: tok, Type: ty, Name: name}
}

// parseVarDecls consumes a maximal run of `Type name;` local
// declarations, distinguishing them from the statements that follow by
// the fixed lookahead MiniJava's grammar allows: a local declaration
// always starts with a type keyword or a class name immediately
// followed by another identifier, never by an assignment, println, if,
// while, or block.
func (p *Parser) parseVarDecls() []*ast.VarDecl {
	var locals []*ast.VarDecl
	for p.startsVarDecl() {
		p.nextToken()
		tok := p.cur
		ty := p.parseTypeAnnotation()
		p.expectPeek(lexer.IDENT)
		name := p.parseIdentifier()
		p.expectPeek(lexer.SEMICOLON)
		locals = append(locals, &ast.VarDecl{Token: tok, Type: ty, Name: name})
	}
	return locals
}

// startsVarDecl reports whether the upcoming tokens begin a local
// declaration rather than a statement. `int`, `boolean`, and `int[`
// are unambiguous; a bare identifier only starts a declaration when a
// second identifier follows it (`Foo f;`), since `Foo = x;` or
// `Foo.bar();` start with the same first token but are statements.
func (p *Parser) startsVarDecl() bool {
	switch p.peek.Type {
	case lexer.INT_KW, lexer.BOOLEAN:
		return true
	case lexer.IDENT:
		return p.stream.Peek().Type == lexer.IDENT
	default:
		return false
	}
}

// parseTypeAnnotation parses `int`, `int[]`, `boolean`, or a class
// name, assuming cur is already the type's first token.
func (p *Parser) parseTypeAnnotation() *ast.TypeAnnotation {
	tok := p.cur
	switch p.cur.Type {
	case lexer.INT_KW:
		if p.peek.Type == lexer.LBRACK {
			p.nextToken()
			p.expectPeek(lexer.RBRACK)
			return &ast.TypeAnnotation{Token: tok, Kind: ast.IntArrayType}
		}
		return &ast.TypeAnnotation{Token: tok, Kind: ast.IntType}
	case lexer.BOOLEAN:
		return &ast.TypeAnnotation{Token: tok, Kind: ast.BooleanType}
	case lexer.IDENT:
		return &ast.TypeAnnotation{Token: tok, Kind: ast.ClassNameType, ClassName: tok.Literal}
	default:
		p.fail(p.cur.Pos, "expected a type, got %s %q", p.cur.Type, p.cur.Literal)
		return nil
	}
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	return &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
}
