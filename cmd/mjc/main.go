// Command mjc is the MiniJava compiler front end: a thin CLI shim over
// the lex/parse/build-symbols/type-check library surface in
// internal/lexer, internal/parser, and internal/semantic.
package main

import (
	"fmt"
	"os"

	"github.com/tychobrailleur/mjc/cmd/mjc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
