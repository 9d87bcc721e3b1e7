package lexer

import "testing"

func TestNextToken(t *testing.T) {
	input := `class Foo {
	public static void main(String[] a) {
		System.out.println(1 + 2);
	}
}`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{CLASS, "class"},
		{IDENT, "Foo"},
		{LBRACE, "{"},
		{PUBLIC, "public"},
		{STATIC, "static"},
		{VOID, "void"},
		{IDENT, "main"},
		{LPAREN, "("},
		{STRING_KW, "String"},
		{LBRACK, "["},
		{RBRACK, "]"},
		{IDENT, "a"},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{PRINTLN, "System.out.println"},
		{LPAREN, "("},
		{INT, "1"},
		{PLUS, "+"},
		{INT, "2"},
		{RPAREN, ")"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{RBRACE, "}"},
		{EOF, ""},
	}

	s := NewStream(input)
	for i, tt := range tests {
		tok := s.Next()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong. expected=%s, got=%s (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestOperators(t *testing.T) {
	input := `= || && == != < > <= >= + - * ! , . ; ( ) [ ] { }`
	expected := []TokenType{
		ASSIGN, OR, AND, EQ, NOT_EQ, LESS, GREATER, LESS_EQ, GREATER_EQ,
		PLUS, MINUS, TIMES, NOT, COMMA, DOT, SEMICOLON, LPAREN, RPAREN,
		LBRACK, RBRACK, LBRACE, RBRACE, EOF,
	}
	s := NewStream(input)
	for i, want := range expected {
		got := s.Next()
		if got.Type != want {
			t.Fatalf("token %d: expected %s, got %s", i, want, got.Type)
		}
	}
}

func TestLeadingUnderscoreIsLexError(t *testing.T) {
	s := NewStream("_invalid_identifier")
	tok := s.Next()
	if tok.Type != ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
	if len(s.Errors()) != 1 {
		t.Fatalf("expected 1 lexer error, got %d", len(s.Errors()))
	}
}

func TestLeadingZerosScanAsOneInteger(t *testing.T) {
	s := NewStream("022")
	tok := s.Next()
	if tok.Type != INT || tok.Literal != "022" {
		t.Fatalf("expected single INT token %q, got %s %q", "022", tok.Type, tok.Literal)
	}
	if s.Next().Type != EOF {
		t.Fatalf("expected exactly one token before EOF")
	}
}

func TestNestedBlockCommentIsRejected(t *testing.T) {
	// The first "*/" closes the outer comment; the trailing "*/" is
	// left as input and lexes as '*' followed by an illegal lone '/'
	// (no such token in MiniJava), surfaced as a lexer error.
	s := NewStream("/*/**/*/")
	for {
		tok := s.Next()
		if tok.Type == EOF {
			break
		}
	}
	if len(s.Errors()) == 0 {
		t.Fatalf("expected nested block comment to produce a lexer error")
	}
}

func TestLineCommentToEOFWithoutTrailingNewline(t *testing.T) {
	s := NewStream("x = 1; // trailing comment")
	var types []TokenType
	for {
		tok := s.Next()
		if tok.Type == EOF {
			break
		}
		types = append(types, tok.Type)
	}
	want := []TokenType{IDENT, ASSIGN, INT, SEMICOLON}
	if len(types) != len(want) {
		t.Fatalf("expected %d tokens, got %d (%v)", len(want), len(types), types)
	}
}

func TestPositionsTrackLineAndColumn(t *testing.T) {
	s := NewStream("x\ny")
	first := s.Next()
	if first.Pos.Line != 1 || first.Pos.Column != 1 {
		t.Fatalf("expected 1:1, got %d:%d", first.Pos.Line, first.Pos.Column)
	}
	second := s.Next()
	if second.Pos.Line != 2 || second.Pos.Column != 1 {
		t.Fatalf("expected 2:1, got %d:%d", second.Pos.Line, second.Pos.Column)
	}
}
