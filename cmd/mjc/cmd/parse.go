package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tychobrailleur/mjc/internal/ast"
	"github.com/tychobrailleur/mjc/internal/errors"
	"github.com/tychobrailleur/mjc/internal/parser"
)

var prettyPrint bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a program and print its AST",
	Long: `Parse file into an AST and print it: by default as the program's
flat String() form, or with -p as an indented tree of classes, methods,
and statements.

Parsing stops at the first syntax error (and any lex error that
produced it); on failure mjc prints every PARSER_ERROR and exits 2.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVarP(&prettyPrint, "pretty", "p", false, "pretty-print the AST as an indented tree")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	filename := args[0]
	src, err := readSource(filename)
	if err != nil {
		return err
	}

	prog, errs := parser.Parse(src)
	if len(errs) > 0 {
		fmt.Fprintln(os.Stderr, errors.RenderAll(filename, errs, verbose))
		os.Exit(2)
	}

	if prettyPrint {
		dumpProgram(os.Stdout, prog)
	} else {
		fmt.Println(prog.String())
	}
	return nil
}

// dumpProgram writes an indented, line-oriented tree of prog: one line
// per class, field, method, and statement, with statement bodies
// rendered via their flat String() form. It is a debugging aid, not a
// reference pretty-printer.
func dumpProgram(w *os.File, prog *ast.Program) {
	fmt.Fprintf(w, "MainClass %s\n", prog.MainClass.Name.Value)
	for _, stmt := range prog.MainClass.Statements {
		fmt.Fprintf(w, "  %s\n", stmt.String())
	}
	for _, class := range prog.Classes {
		fmt.Fprintf(w, "Class %s\n", class.Name.Value)
		for _, field := range class.Fields {
			fmt.Fprintf(w, "  field %s\n", field.String())
		}
		for _, method := range class.Methods {
			fmt.Fprintf(w, "  method %s\n", method.String())
			for _, local := range method.Locals {
				fmt.Fprintf(w, "    local %s\n", local.String())
			}
			for _, stmt := range method.Statements {
				fmt.Fprintf(w, "    %s\n", stmt.String())
			}
			fmt.Fprintf(w, "    return %s\n", method.ReturnExpr.String())
		}
	}
}
