package ast

import (
	"bytes"
	"strings"

	"github.com/tychobrailleur/mjc/internal/lexer"
)

// Formal is one parameter in a method's formal-parameter list:
// `Type name`.
type Formal struct {
	Token lexer.Token // first token of the type
	Type  *TypeAnnotation
	Name  *Identifier
}

func (f *Formal) String() string { return f.Type.String() + " " + f.Name.String() }

// VarDecl is a local variable declaration: `Type name;`. It is also used
// for the locals of MainClassDecl.
type VarDecl struct {
	Token lexer.Token // first token of the type
	Type  *TypeAnnotation
	Name  *Identifier
}

func (vd *VarDecl) statementNode()       {}
func (vd *VarDecl) TokenLiteral() string { return vd.Token.Literal }
func (vd *VarDecl) Pos() lexer.Position  { return vd.Token.Pos }
func (vd *VarDecl) String() string       { return vd.Type.String() + " " + vd.Name.String() }

// MethodDecl is a method declaration:
//
//	public Type name(formals) { locals* stmts* return expr; }
//
// The trailing return is mandatory by grammar (spec.md §4.2), so
// ReturnExpr is never nil on a successfully parsed method.
type MethodDecl struct {
	Token      lexer.Token // the 'public' token
	ReturnType *TypeAnnotation
	Name       *Identifier
	Formals    []*Formal
	Locals     []*VarDecl
	Statements []Statement
	ReturnExpr Expression
}

func (md *MethodDecl) statementNode()       {}
func (md *MethodDecl) TokenLiteral() string { return md.Token.Literal }
func (md *MethodDecl) Pos() lexer.Position  { return md.Token.Pos }
func (md *MethodDecl) String() string {
	var out bytes.Buffer
	out.WriteString("public ")
	out.WriteString(md.ReturnType.String())
	out.WriteString(" ")
	out.WriteString(md.Name.String())
	out.WriteString("(")

	formals := make([]string, 0, len(md.Formals))
	for _, f := range md.Formals {
		formals = append(formals, f.String())
	}
	out.WriteString(strings.Join(formals, ", "))
	out.WriteString(") {\n")

	for _, l := range md.Locals {
		out.WriteString("  ")
		out.WriteString(l.String())
		out.WriteString(";\n")
	}
	for _, s := range md.Statements {
		out.WriteString("  ")
		out.WriteString(strings.ReplaceAll(s.String(), "\n", "\n  "))
		out.WriteString("\n")
	}
	out.WriteString("  return ")
	if md.ReturnExpr != nil {
		out.WriteString(md.ReturnExpr.String())
	}
	out.WriteString(";\n}")

	return out.String()
}
