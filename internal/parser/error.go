package parser

import (
	"fmt"

	"github.com/tychobrailleur/mjc/internal/errors"
	"github.com/tychobrailleur/mjc/internal/lexer"
)

// abort is the sentinel panic value used to unwind out of a deeply
// recursive descent on the first syntax error. spec.md §9 settles the
// open question of error recovery this way: parsing halts at the
// first PARSER_ERROR rather than attempting to resynchronize and keep
// going, unlike the lexer and the later semantic passes, which do
// accumulate.
type abort struct{ err *errors.CompilerError }

// fail records a parser error and unwinds the current parse via panic;
// Parse's top-level recover turns it back into a normal return.
func (p *Parser) fail(pos lexer.Position, format string, args ...any) {
	err := errors.NewParserError(pos, fmt.Sprintf(format, args...))
	panic(abort{err})
}

// expectPeek checks that the upcoming token has type tt. On match it
// advances so that token becomes current; otherwise it aborts the parse
// with a PARSER_ERROR.
func (p *Parser) expectPeek(tt lexer.TokenType) {
	if p.peek.Type != tt {
		p.fail(p.peek.Pos, "expected %s, got %s %q", tt, p.peek.Type, p.peek.Literal)
		return
	}
	p.nextToken()
}

// expectCur aborts unless the current token has type tt.
func (p *Parser) expectCur(tt lexer.TokenType) {
	if p.cur.Type != tt {
		p.fail(p.cur.Pos, "expected %s, got %s %q", tt, p.cur.Type, p.cur.Literal)
	}
}
