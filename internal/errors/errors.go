// Package errors defines the diagnostic type shared by every compiler
// stage (lexer, parser, symbol-table builder, type checker) and its
// source-context rendering.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/tychobrailleur/mjc/internal/lexer"
)

// Kind identifies the category of a CompilerError, one value per error
// name a diagnostic can carry.
type Kind int

const (
	LexerError Kind = iota
	ParserError

	DuplicateClass
	DuplicateField
	DuplicateMethod
	DuplicateParameter
	DuplicateLocal

	UndeclaredIdentifier
	UndeclaredClass
	UndeclaredMethod
	ExpectedVariableGotClass
	InvalidAssignment
	NotArrayType
	WrongIndexType
	WrongSizeType
	WrongIfConditionType
	WrongWhileConditionType
	UnprintableType
	InvalidLeftOperandType
	InvalidRightOperandType
	InvalidComparison
	NegationExpectedBoolean
	MethodCallOnNonClassType
	WrongParameterCount
	WrongParameterType
	WrongReturnType
	LengthOnNonArrayType
	InvalidIntLiteral
)

// CompilerError is a single diagnostic produced by any compiler stage.
// Message is the fully rendered kind-and-arguments text; Kind is kept
// alongside it so callers (tests, CLI) can filter or count by category
// without re-parsing Message.
type CompilerError struct {
	Kind    Kind
	Message string
	Pos     lexer.Position
}

func (e *CompilerError) Error() string { return e.Message }

func newError(kind Kind, pos lexer.Position, format string, args ...any) *CompilerError {
	return &CompilerError{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func NewLexerError(pos lexer.Position, text string) *CompilerError {
	return newError(LexerError, pos, "invalid token %q", text)
}

func NewParserError(pos lexer.Position, message string) *CompilerError {
	return newError(ParserError, pos, "%s", message)
}

func NewDuplicateClass(pos lexer.Position, name string) *CompilerError {
	return newError(DuplicateClass, pos, "class %q is already declared", name)
}

func NewDuplicateField(pos lexer.Position, class, name string) *CompilerError {
	return newError(DuplicateField, pos, "field %q is already declared in class %q", name, class)
}

func NewDuplicateMethod(pos lexer.Position, class, name string) *CompilerError {
	return newError(DuplicateMethod, pos, "method %q is already declared in class %q", name, class)
}

func NewDuplicateParameter(pos lexer.Position, method, name string) *CompilerError {
	return newError(DuplicateParameter, pos, "parameter %q is already declared in method %q", name, method)
}

func NewDuplicateLocal(pos lexer.Position, name string) *CompilerError {
	return newError(DuplicateLocal, pos, "local variable %q is already declared in this scope", name)
}

func NewUndeclaredIdentifier(pos lexer.Position, name string) *CompilerError {
	return newError(UndeclaredIdentifier, pos, "undeclared identifier %q", name)
}

func NewUndeclaredClass(pos lexer.Position, name string) *CompilerError {
	return newError(UndeclaredClass, pos, "undeclared class %q", name)
}

func NewUndeclaredMethod(pos lexer.Position, class, name string) *CompilerError {
	return newError(UndeclaredMethod, pos, "class %q has no method %q", class, name)
}

func NewExpectedVariableGotClass(pos lexer.Position, name string) *CompilerError {
	return newError(ExpectedVariableGotClass, pos, "%q names a class, not a variable", name)
}

func NewInvalidAssignment(pos lexer.Position, name string, src, target fmt.Stringer) *CompilerError {
	return newError(InvalidAssignment, pos, "cannot assign %s to %q of type %s", src, name, target)
}

func NewNotArrayType(pos lexer.Position, got fmt.Stringer) *CompilerError {
	return newError(NotArrayType, pos, "indexed expression has type %s, not int[]", got)
}

func NewWrongIndexType(pos lexer.Position, got fmt.Stringer) *CompilerError {
	return newError(WrongIndexType, pos, "array index has type %s, expected int", got)
}

func NewWrongSizeType(pos lexer.Position, got fmt.Stringer) *CompilerError {
	return newError(WrongSizeType, pos, "array size has type %s, expected int", got)
}

func NewWrongIfConditionType(pos lexer.Position, got fmt.Stringer) *CompilerError {
	return newError(WrongIfConditionType, pos, "if condition has type %s, expected boolean", got)
}

func NewWrongWhileConditionType(pos lexer.Position, got fmt.Stringer) *CompilerError {
	return newError(WrongWhileConditionType, pos, "while condition has type %s, expected boolean", got)
}

func NewUnprintableType(pos lexer.Position, got fmt.Stringer) *CompilerError {
	return newError(UnprintableType, pos, "cannot println a value of type %s", got)
}

func NewInvalidLeftOperandType(pos lexer.Position, op string, got, want fmt.Stringer) *CompilerError {
	return newError(InvalidLeftOperandType, pos, "left operand of %q has type %s, expected %s", op, got, want)
}

func NewInvalidRightOperandType(pos lexer.Position, op string, got, want fmt.Stringer) *CompilerError {
	return newError(InvalidRightOperandType, pos, "right operand of %q has type %s, expected %s", op, got, want)
}

func NewInvalidComparison(pos lexer.Position, op string, left, right fmt.Stringer) *CompilerError {
	return newError(InvalidComparison, pos, "cannot compare %s %s %s", left, op, right)
}

func NewNegationExpectedBoolean(pos lexer.Position, got fmt.Stringer) *CompilerError {
	return newError(NegationExpectedBoolean, pos, "operand of %q has type %s, expected boolean", "!", got)
}

func NewMethodCallOnNonClassType(pos lexer.Position, got fmt.Stringer) *CompilerError {
	return newError(MethodCallOnNonClassType, pos, "method call on non-class type %s", got)
}

func NewWrongParameterCount(pos lexer.Position, method string, want, got int) *CompilerError {
	return newError(WrongParameterCount, pos, "method %q expects %d argument(s), got %d", method, want, got)
}

func NewWrongParameterType(pos lexer.Position, method string, index int, got, want fmt.Stringer) *CompilerError {
	return newError(WrongParameterType, pos, "argument %d to %q has type %s, expected %s", index+1, method, got, want)
}

func NewWrongReturnType(pos lexer.Position, method string, got, want fmt.Stringer) *CompilerError {
	return newError(WrongReturnType, pos, "method %q returns %s, expected %s", method, got, want)
}

func NewLengthOnNonArrayType(pos lexer.Position, got fmt.Stringer) *CompilerError {
	return newError(LengthOnNonArrayType, pos, ".length used on non-array type %s", got)
}

func NewInvalidIntLiteral(pos lexer.Position, text string) *CompilerError {
	return newError(InvalidIntLiteral, pos, "integer literal %q is out of range", text)
}

// Render formats err as the stable one-line diagnostic:
// "<file>:<line>:<col>: error: <message>". When colorize is true the
// "error" tag is rendered bold red, for the CLI's verbose path.
func Render(file string, err *CompilerError, colorize bool) string {
	tag := "error"
	if colorize {
		tag = color.New(color.FgRed, color.Bold).Sprint("error")
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s", file, err.Pos.Line, err.Pos.Column, tag, err.Message)
}

// RenderAll formats a batch of errors, one per line, in the order given.
// Callers are responsible for sorting by source position beforehand.
func RenderAll(file string, errs []*CompilerError, colorize bool) string {
	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		lines = append(lines, Render(file, e, colorize))
	}
	return strings.Join(lines, "\n")
}

// SourceContext renders the offending source line with a caret under
// the error column. The mjc commands do not call it; their verbose (-v)
// output only colors the error tag.
func SourceContext(source string, pos lexer.Position) string {
	lines := strings.Split(source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return ""
	}
	line := lines[pos.Line-1]
	caretPad := pos.Column - 1
	if caretPad < 0 {
		caretPad = 0
	}
	return fmt.Sprintf("%s\n%s^", line, strings.Repeat(" ", caretPad))
}
