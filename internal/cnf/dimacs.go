package cnf

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDIMACS writes clauses (each literal naming a variable by its 0-based
// id) as a DIMACS CNF document with numVars declared variables. It is the
// inverse of the DIMACS parser's variable numbering: 1-based, with negative
// integers for negated literals.
func WriteDIMACS(w io.Writer, numVars int, clauses [][]Literal) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", numVars, len(clauses)); err != nil {
		return err
	}
	for _, c := range clauses {
		for _, l := range c {
			n := int(l.VarID()) + 1
			if l.Negated() {
				n = -n
			}
			if _, err := fmt.Fprintf(bw, "%d ", n); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(bw, "0\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
