package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tychobrailleur/mjc/internal/errors"
	"github.com/tychobrailleur/mjc/internal/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Print the filtered token stream",
	Long: `Scan file and print one line per significant token (comments and
whitespace filtered), as "<line>:<col> <TYPE> <literal>".

Any LEXER_ERROR is printed to stderr and the command exits 2; the whole
token stream, through EOF, is still printed to stdout first.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	filename := args[0]
	src, err := readSource(filename)
	if err != nil {
		return err
	}

	stream := lexer.NewStream(src)
	for {
		tok := stream.Next()
		fmt.Printf("%s %-8s %q\n", tok.Pos, tok.Type, tok.Literal)
		if tok.Type == lexer.EOF {
			break
		}
	}

	if lexErrs := stream.Errors(); len(lexErrs) > 0 {
		for _, le := range lexErrs {
			ce := errors.NewLexerError(le.Pos, le.Text)
			fmt.Fprintln(os.Stderr, errors.Render(filename, ce, verbose))
		}
		os.Exit(2)
	}
	return nil
}

func readSource(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return string(data), nil
}
