package ast

import (
	"bytes"

	"github.com/tychobrailleur/mjc/internal/lexer"
)

// IfStatement is a one-armed conditional: `if (cond) then`. Kept as a
// distinct node from IfElseStatement rather than an Alternative field
// that's sometimes nil, matching spec.md §3's separate If/IfElse
// variants — the parser produces one or the other, never an
// IfStatement that later grows an else.
type IfStatement struct {
	Token     lexer.Token
	Condition Expression
	Then      Statement
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) Pos() lexer.Position  { return is.Token.Pos }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(is.Condition.String())
	out.WriteString(") ")
	out.WriteString(is.Then.String())
	return out.String()
}

// IfElseStatement is the two-armed conditional. The else binds to the
// innermost unmatched if because the parser's recursive parseStatement
// lets the inner if claim it first, not by a rewrite pass here.
type IfElseStatement struct {
	Token     lexer.Token
	Condition Expression
	Then      Statement
	Else      Statement
}

func (ie *IfElseStatement) statementNode()       {}
func (ie *IfElseStatement) TokenLiteral() string { return ie.Token.Literal }
func (ie *IfElseStatement) Pos() lexer.Position  { return ie.Token.Pos }
func (ie *IfElseStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(ie.Condition.String())
	out.WriteString(") ")
	out.WriteString(ie.Then.String())
	out.WriteString(" else ")
	out.WriteString(ie.Else.String())
	return out.String()
}

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	Token     lexer.Token
	Condition Expression
	Body      Statement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) Pos() lexer.Position  { return ws.Token.Pos }
func (ws *WhileStatement) String() string {
	var out bytes.Buffer
	out.WriteString("while (")
	out.WriteString(ws.Condition.String())
	out.WriteString(") ")
	out.WriteString(ws.Body.String())
	return out.String()
}
