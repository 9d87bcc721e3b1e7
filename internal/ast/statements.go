package ast

import (
	"bytes"
	"strings"

	"github.com/tychobrailleur/mjc/internal/lexer"
	"github.com/tychobrailleur/mjc/internal/types"
)

// BlockStatement is `{ stmts* }`. MiniJava's grammar only lets locals
// appear at method top, never inside a nested block, so unlike
// MainClassDecl/MethodDecl a BlockStatement has no Locals of its own —
// the type checker just opens a fresh lookup scope over the method's
// locals when it enters one.
type BlockStatement struct {
	Token      lexer.Token // the '{' token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) Pos() lexer.Position  { return bs.Token.Pos }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range bs.Statements {
		out.WriteString("  ")
		out.WriteString(strings.ReplaceAll(s.String(), "\n", "\n  "))
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

// PrintlnStatement is `System.out.println(value);`.
type PrintlnStatement struct {
	Token lexer.Token // the PRINTLN token
	Value Expression
}

func (ps *PrintlnStatement) statementNode()       {}
func (ps *PrintlnStatement) TokenLiteral() string { return ps.Token.Literal }
func (ps *PrintlnStatement) Pos() lexer.Position  { return ps.Token.Pos }
func (ps *PrintlnStatement) String() string {
	return "System.out.println(" + ps.Value.String() + ");"
}

// AssignStatement is `name = value;`.
type AssignStatement struct {
	Token lexer.Token // the '=' token
	Name  *Identifier
	Value Expression
}

func (as *AssignStatement) statementNode()       {}
func (as *AssignStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssignStatement) Pos() lexer.Position  { return as.Name.Pos() }
func (as *AssignStatement) String() string {
	return as.Name.String() + " = " + as.Value.String() + ";"
}

// ArrayAssignStatement is `name[index] = value;`.
type ArrayAssignStatement struct {
	Token lexer.Token // the '=' token
	Name  *Identifier
	Index Expression
	Value Expression
}

func (aas *ArrayAssignStatement) statementNode()       {}
func (aas *ArrayAssignStatement) TokenLiteral() string { return aas.Token.Literal }
func (aas *ArrayAssignStatement) Pos() lexer.Position  { return aas.Name.Pos() }
func (aas *ArrayAssignStatement) String() string {
	var out bytes.Buffer
	out.WriteString(aas.Name.String())
	out.WriteString("[")
	out.WriteString(aas.Index.String())
	out.WriteString("] = ")
	out.WriteString(aas.Value.String())
	out.WriteString(";")
	return out.String()
}

// MethodCallExpression is `recv.name(args)`.
type MethodCallExpression struct {
	Token     lexer.Token // the '.' token
	Receiver  Expression
	Method    *Identifier
	Arguments []Expression
	Type      types.Type
}

func (mc *MethodCallExpression) expressionNode()          {}
func (mc *MethodCallExpression) TokenLiteral() string     { return mc.Token.Literal }
func (mc *MethodCallExpression) Pos() lexer.Position      { return mc.Receiver.Pos() }
func (mc *MethodCallExpression) GetType() types.Type  { return mc.Type }
func (mc *MethodCallExpression) SetType(t types.Type) { mc.Type = t }
func (mc *MethodCallExpression) String() string {
	var out bytes.Buffer
	out.WriteString(mc.Receiver.String())
	out.WriteString(".")
	out.WriteString(mc.Method.String())
	out.WriteString("(")

	args := make([]string, 0, len(mc.Arguments))
	for _, a := range mc.Arguments {
		args = append(args, a.String())
	}
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// ArrayAccessExpression is `array[index]`.
type ArrayAccessExpression struct {
	Token lexer.Token // the '[' token
	Array Expression
	Index Expression
	Type  types.Type
}

func (ae *ArrayAccessExpression) expressionNode()          {}
func (ae *ArrayAccessExpression) TokenLiteral() string     { return ae.Token.Literal }
func (ae *ArrayAccessExpression) Pos() lexer.Position      { return ae.Array.Pos() }
func (ae *ArrayAccessExpression) GetType() types.Type  { return ae.Type }
func (ae *ArrayAccessExpression) SetType(t types.Type) { ae.Type = t }
func (ae *ArrayAccessExpression) String() string {
	return ae.Array.String() + "[" + ae.Index.String() + "]"
}

// ArrayLengthExpression is `array.length`.
type ArrayLengthExpression struct {
	Token lexer.Token // the '.' token
	Array Expression
	Type  types.Type
}

func (al *ArrayLengthExpression) expressionNode()          {}
func (al *ArrayLengthExpression) TokenLiteral() string     { return al.Token.Literal }
func (al *ArrayLengthExpression) Pos() lexer.Position      { return al.Array.Pos() }
func (al *ArrayLengthExpression) GetType() types.Type  { return al.Type }
func (al *ArrayLengthExpression) SetType(t types.Type) { al.Type = t }
func (al *ArrayLengthExpression) String() string           { return al.Array.String() + ".length" }

// NewInstanceExpression is `new ClassName()`. MiniJava classes take no
// constructor arguments.
type NewInstanceExpression struct {
	Token     lexer.Token // the 'new' token
	ClassName *Identifier
	Type      types.Type
}

func (ni *NewInstanceExpression) expressionNode()          {}
func (ni *NewInstanceExpression) TokenLiteral() string     { return ni.Token.Literal }
func (ni *NewInstanceExpression) Pos() lexer.Position      { return ni.Token.Pos }
func (ni *NewInstanceExpression) GetType() types.Type  { return ni.Type }
func (ni *NewInstanceExpression) SetType(t types.Type) { ni.Type = t }
func (ni *NewInstanceExpression) String() string {
	return "new " + ni.ClassName.String() + "()"
}

// NewIntArrayExpression is `new int[size]`. Its result can never itself
// be the base of another `[...]` access — the parser enforces that
// syntactically, not this node.
type NewIntArrayExpression struct {
	Token lexer.Token // the 'new' token
	Size  Expression
	Type  types.Type
}

func (ni *NewIntArrayExpression) expressionNode()          {}
func (ni *NewIntArrayExpression) TokenLiteral() string     { return ni.Token.Literal }
func (ni *NewIntArrayExpression) Pos() lexer.Position      { return ni.Token.Pos }
func (ni *NewIntArrayExpression) GetType() types.Type  { return ni.Type }
func (ni *NewIntArrayExpression) SetType(t types.Type) { ni.Type = t }
func (ni *NewIntArrayExpression) String() string {
	return "new int[" + ni.Size.String() + "]"
}
