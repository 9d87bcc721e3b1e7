package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/tychobrailleur/mjc/internal/errors"
	"github.com/tychobrailleur/mjc/internal/parser"
	"github.com/tychobrailleur/mjc/internal/semantic"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run the full front end and report every diagnostic",
	Long: `Lex, parse, build the symbol table for, and type-check file, then
report every diagnostic collected across all stages.

Lex and parse errors are fatal for the stage: a syntax error stops the
pipeline there, since symbol-building and type-checking both need a
complete AST to walk. A clean parse still runs symbol-building and
type-checking in full and reports every DUPLICATE_*, UNDECLARED_*, and
type error found, rather than stopping at the first one. check exits 0
only when no stage reported anything.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	filename := args[0]
	src, err := readSource(filename)
	if err != nil {
		return err
	}

	prog, errs := parser.Parse(src)
	if len(errs) > 0 {
		printDiagnostics(filename, errs)
		os.Exit(2)
	}

	table, symErrs := semantic.BuildSymbols(prog)
	typeErrs := semantic.TypeCheck(prog, table)

	all := append(symErrs, typeErrs...)
	if len(all) > 0 {
		printDiagnostics(filename, all)
		os.Exit(2)
	}

	fmt.Printf("%s: OK\n", filename)
	return nil
}

func printDiagnostics(filename string, errs []*errors.CompilerError) {
	sort.SliceStable(errs, func(i, j int) bool {
		if errs[i].Pos.Line != errs[j].Pos.Line {
			return errs[i].Pos.Line < errs[j].Pos.Line
		}
		return errs[i].Pos.Column < errs[j].Pos.Column
	})
	fmt.Fprintln(os.Stderr, errors.RenderAll(filename, errs, verbose))
}
