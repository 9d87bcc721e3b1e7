// Package ast defines the Abstract Syntax Tree node types for MiniJava.
package ast

import (
	"bytes"

	"github.com/tychobrailleur/mjc/internal/lexer"
	"github.com/tychobrailleur/mjc/internal/types"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	// TokenLiteral returns the literal value of the token this node is
	// associated with.
	TokenLiteral() string

	// String renders the node for debugging, golden tests, and the
	// round-trip parse/print/re-parse check.
	String() string

	// Pos returns the node's position in the source for diagnostics.
	Pos() lexer.Position
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action without producing a value.
type Statement interface {
	Node
	statementNode()
}

// Typed is implemented by every Expression. It carries the mutable type
// slot the type checker populates on its way back out of each recursive
// call — node types live on the node itself rather than in a side table.
type Typed interface {
	Expression
	GetType() types.Type
	SetType(t types.Type)
}

// Program is the root node: a main class plus zero or more ordinary
// classes, in source order.
type Program struct {
	MainClass *MainClassDecl
	Classes   []*ClassDecl
}

func (p *Program) TokenLiteral() string {
	if p.MainClass != nil {
		return p.MainClass.TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() lexer.Position {
	if p.MainClass != nil {
		return p.MainClass.Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	var out bytes.Buffer
	if p.MainClass != nil {
		out.WriteString(p.MainClass.String())
		out.WriteString("\n")
	}
	for _, c := range p.Classes {
		out.WriteString(c.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Identifier names a variable, field, method, class, or parameter.
type Identifier struct {
	Token lexer.Token
	Value string
	Type  types.Type
}

func (i *Identifier) expressionNode()             {}
func (i *Identifier) TokenLiteral() string        { return i.Token.Literal }
func (i *Identifier) Pos() lexer.Position         { return i.Token.Pos }
func (i *Identifier) String() string              { return i.Value }
func (i *Identifier) GetType() types.Type     { return i.Type }
func (i *Identifier) SetType(t types.Type)    { i.Type = t }

// IntegerLiteral is a decimal integer literal. Its textual form is kept
// verbatim in Token.Literal so the checker can apply 32-bit range
// validation ("022" and "9999999999" both scan as one token).
type IntegerLiteral struct {
	Token lexer.Token
	Type  types.Type
}

func (il *IntegerLiteral) expressionNode()          {}
func (il *IntegerLiteral) TokenLiteral() string     { return il.Token.Literal }
func (il *IntegerLiteral) Pos() lexer.Position      { return il.Token.Pos }
func (il *IntegerLiteral) String() string           { return il.Token.Literal }
func (il *IntegerLiteral) GetType() types.Type  { return il.Type }
func (il *IntegerLiteral) SetType(t types.Type) { il.Type = t }

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Token lexer.Token
	Value bool
	Type  types.Type
}

func (bl *BooleanLiteral) expressionNode()          {}
func (bl *BooleanLiteral) TokenLiteral() string     { return bl.Token.Literal }
func (bl *BooleanLiteral) Pos() lexer.Position      { return bl.Token.Pos }
func (bl *BooleanLiteral) String() string           { return bl.Token.Literal }
func (bl *BooleanLiteral) GetType() types.Type  { return bl.Type }
func (bl *BooleanLiteral) SetType(t types.Type) { bl.Type = t }

// ThisExpression is the `this` keyword, typed to the enclosing class.
type ThisExpression struct {
	Token lexer.Token
	Type  types.Type
}

func (te *ThisExpression) expressionNode()          {}
func (te *ThisExpression) TokenLiteral() string     { return te.Token.Literal }
func (te *ThisExpression) Pos() lexer.Position      { return te.Token.Pos }
func (te *ThisExpression) String() string           { return "this" }
func (te *ThisExpression) GetType() types.Type  { return te.Type }
func (te *ThisExpression) SetType(t types.Type) { te.Type = t }

// BinaryExpression covers the two-operand operators: &&, ||, ==, !=, <,
// >, <=, >=, +, -, *. A single node shape for all of them, distinguished
// by Operator, matches spec.md's flat Expr variant list without one Go
// type per operator.
type BinaryExpression struct {
	Token    lexer.Token
	Left     Expression
	Operator string
	Right    Expression
	Type     types.Type
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpression) Pos() lexer.Position  { return be.Token.Pos }
func (be *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(be.Left.String())
	out.WriteString(" " + be.Operator + " ")
	out.WriteString(be.Right.String())
	out.WriteString(")")
	return out.String()
}
func (be *BinaryExpression) GetType() types.Type  { return be.Type }
func (be *BinaryExpression) SetType(t types.Type) { be.Type = t }

// NotExpression is the unary `!` operator. MiniJava has no other unary
// operator, so unlike the binary case this gets its own narrow node
// rather than an Operator-discriminated one.
type NotExpression struct {
	Token    lexer.Token
	Operand  Expression
	Type     types.Type
}

func (ne *NotExpression) expressionNode()          {}
func (ne *NotExpression) TokenLiteral() string     { return ne.Token.Literal }
func (ne *NotExpression) Pos() lexer.Position      { return ne.Token.Pos }
func (ne *NotExpression) String() string           { return "!" + ne.Operand.String() }
func (ne *NotExpression) GetType() types.Type  { return ne.Type }
func (ne *NotExpression) SetType(t types.Type) { ne.Type = t }
