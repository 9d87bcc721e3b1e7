package parser

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestCanonicalProgramsPrintedFormGolden snapshots the printed form of
// each canonical program. The snapshot is the debugging/round-trip
// surface (ast.Program.String()), not the pretty-printer's visual
// output, which is out of scope.
func TestCanonicalProgramsPrintedFormGolden(t *testing.T) {
	for name, src := range canonicalPrograms {
		t.Run(name, func(t *testing.T) {
			prog, errs := Parse(src)
			if len(errs) != 0 {
				t.Fatalf("parse: %v", errs)
			}
			snaps.MatchSnapshot(t, prog.String())
		})
	}
}

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}
