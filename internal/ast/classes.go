// Package ast: this file holds class-level declaration nodes.
package ast

import (
	"bytes"
	"strings"

	"github.com/tychobrailleur/mjc/internal/lexer"
)

// MainClassDecl is the program's entry class:
//
//	class N { public static void M(String[] P) { locals* stmts* } }
//
// The parser accepts any identifier as the method name and keeps its
// token in MethodName; String() always renders the method as "main".
type MainClassDecl struct {
	Token      lexer.Token // the 'class' token
	Name       *Identifier
	MethodName lexer.Token // the 'main' identifier token
	ArgName    *Identifier
	Locals     []*VarDecl
	Statements []Statement
}

func (mc *MainClassDecl) statementNode()       {}
func (mc *MainClassDecl) TokenLiteral() string { return mc.Token.Literal }
func (mc *MainClassDecl) Pos() lexer.Position  { return mc.Token.Pos }
func (mc *MainClassDecl) String() string {
	var out bytes.Buffer
	out.WriteString("class ")
	out.WriteString(mc.Name.String())
	out.WriteString(" {\n  public static void main(String[] ")
	out.WriteString(mc.ArgName.String())
	out.WriteString(") {\n")
	for _, l := range mc.Locals {
		out.WriteString("    ")
		out.WriteString(l.String())
		out.WriteString(";\n")
	}
	for _, s := range mc.Statements {
		out.WriteString("    ")
		out.WriteString(strings.ReplaceAll(s.String(), "\n", "\n    "))
		out.WriteString("\n")
	}
	out.WriteString("  }\n}")
	return out.String()
}

// ClassDecl is an ordinary (non-main) class declaration. MiniJava has
// no inheritance, so unlike the teacher's ClassDecl there is no Parent
// or Interfaces field.
type ClassDecl struct {
	Token   lexer.Token // the 'class' token
	Name    *Identifier
	Fields  []*FieldDecl
	Methods []*MethodDecl
}

func (cd *ClassDecl) statementNode()       {}
func (cd *ClassDecl) TokenLiteral() string { return cd.Token.Literal }
func (cd *ClassDecl) Pos() lexer.Position  { return cd.Token.Pos }
func (cd *ClassDecl) String() string {
	var out bytes.Buffer
	out.WriteString("class ")
	out.WriteString(cd.Name.String())
	out.WriteString(" {\n")
	for _, f := range cd.Fields {
		out.WriteString("  ")
		out.WriteString(f.String())
		out.WriteString(";\n")
	}
	for _, m := range cd.Methods {
		out.WriteString("  ")
		out.WriteString(strings.ReplaceAll(m.String(), "\n", "\n  "))
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

// FieldDecl is an instance field: `Type name;`.
type FieldDecl struct {
	Token lexer.Token // first token of the type
	Type  *TypeAnnotation
	Name  *Identifier
}

func (fd *FieldDecl) statementNode()       {}
func (fd *FieldDecl) TokenLiteral() string { return fd.Token.Literal }
func (fd *FieldDecl) Pos() lexer.Position  { return fd.Token.Pos }
func (fd *FieldDecl) String() string {
	return fd.Type.String() + " " + fd.Name.String()
}
