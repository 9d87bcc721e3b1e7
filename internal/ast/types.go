package ast

import "github.com/tychobrailleur/mjc/internal/lexer"

// TypeKind discriminates the four syntactic type forms MiniJava admits:
// int, boolean, int[], and a user class name. This is the AST-level,
// syntactic counterpart to the semantic closed type family in
// internal/types — the checker maps one onto the other.
type TypeKind int

const (
	IntType TypeKind = iota
	BooleanType
	IntArrayType
	ClassNameType
)

// TypeAnnotation is the syntactic type written in a field, parameter,
// local, or return-type position.
type TypeAnnotation struct {
	Token     lexer.Token
	Kind      TypeKind
	ClassName string // set only when Kind == ClassNameType
}

func (ta *TypeAnnotation) TokenLiteral() string { return ta.Token.Literal }
func (ta *TypeAnnotation) Pos() lexer.Position  { return ta.Token.Pos }

func (ta *TypeAnnotation) String() string {
	if ta == nil {
		return ""
	}
	switch ta.Kind {
	case IntType:
		return "int"
	case BooleanType:
		return "boolean"
	case IntArrayType:
		return "int[]"
	case ClassNameType:
		return ta.ClassName
	default:
		return "?"
	}
}
