package errors

import (
	"strings"
	"testing"

	"github.com/tychobrailleur/mjc/internal/lexer"
	"github.com/tychobrailleur/mjc/internal/types"
)

func TestRenderStableFormat(t *testing.T) {
	err := NewUndeclaredIdentifier(lexer.Position{Line: 3, Column: 7}, "x")
	got := Render("prog.java", err, false)
	want := `prog.java:3:7: error: undeclared identifier "x"`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderColorizeKeepsMessage(t *testing.T) {
	err := NewDuplicateClass(lexer.Position{Line: 1, Column: 1}, "Foo")
	got := Render("prog.java", err, true)
	if !strings.Contains(got, `class "Foo" is already declared`) {
		t.Errorf("Render(colorize) lost the message: %q", got)
	}
	if !strings.Contains(got, "error") {
		t.Errorf("Render(colorize) should still mention 'error': %q", got)
	}
}

func TestInvalidAssignmentMentionsTypes(t *testing.T) {
	err := NewInvalidAssignment(lexer.Position{Line: 5, Column: 2}, "n", types.Boolean, types.Int)
	if !strings.Contains(err.Message, "boolean") || !strings.Contains(err.Message, "int") {
		t.Errorf("message missing type names: %q", err.Message)
	}
}

func TestRenderAllPreservesOrder(t *testing.T) {
	errs := []*CompilerError{
		NewUndeclaredIdentifier(lexer.Position{Line: 1, Column: 1}, "a"),
		NewUndeclaredIdentifier(lexer.Position{Line: 2, Column: 1}, "b"),
	}
	got := RenderAll("p.java", errs, false)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], `"a"`) || !strings.Contains(lines[1], `"b"`) {
		t.Errorf("RenderAll() = %q", got)
	}
}

func TestSourceContextCaret(t *testing.T) {
	src := "int x;\nx = 1;\n"
	got := SourceContext(src, lexer.Position{Line: 2, Column: 1})
	want := "x = 1;\n^"
	if got != want {
		t.Errorf("SourceContext() =\n%s\nwant:\n%s", got, want)
	}
}
