package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information (set by build flags).
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mjc",
	Short: "MiniJava compiler front end",
	Long: `mjc lexes, parses, builds the symbol table for, and type-checks
MiniJava programs: a restricted Java-like teaching language with
classes, a main method of local declarations and statements, integer/boolean primitives, integer
arrays, and inheritance-free user classes.

Code generation is out of scope: mjc's job ends at a well-formed AST,
a resolved symbol table, and a node-to-type mapping.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output, with the error tag of each diagnostic in color")
}
