// Command dsat is a CDCL boolean satisfiability solver supporting DIMACS
// CNF, Sudoku-family puzzles, and Polish-notation boolean queries.
package main

import (
	"os"

	"github.com/rhartert/dsat/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
