package sudoku

import (
	"io"

	"github.com/rhartert/dsat/internal/cnf"
)

// encode reduces the board to CNF: for every cell, a clause says some
// surviving candidate holds; for every (unit, value) pair, where a unit is a
// row, column, or block, a clause says some cell in that unit holds that
// value; and for every cell, every pair of surviving candidates is made
// mutually exclusive. Because each cell is forced to hold exactly one value
// (one clause per cell plus pairwise exclusion) and every unit is forced to
// contain every value at least once, uniqueness within a unit follows from
// a pigeonhole argument without needing an explicit clause for it.
//
// Variables are named by the board offset cell*N+v (0-based value index)
// they represent, so only candidates that actually survive into some
// clause become variables at all. encode reports ok=false if it discovers,
// while generating a clause, that some cell or unit has no surviving
// candidate for some value: the board is already contradictory and no
// Problem is built.
func (b *Board) encode() (builder *cnf.ProblemBuilder[int], ok bool) {
	pb := cnf.NewProblemBuilder[int]()
	n := b.n

	addClause := func(offsets []int, negated bool) bool {
		if len(offsets) == 0 {
			return false
		}
		lits := make([]cnf.Literal, len(offsets))
		for i, off := range offsets {
			lits[i] = cnf.NewLiteral(pb.Var(off), negated)
		}
		pb.AddClause(lits)
		return true
	}

	// Every cell holds one of its surviving candidates.
	for cell := 0; cell < n*n; cell++ {
		var offs []int
		for v := 0; v < n; v++ {
			off := cell*n + v
			if b.candidate[off] {
				offs = append(offs, off)
			}
		}
		if !addClause(offs, false) {
			return nil, false
		}
	}

	// Every column contains each value at least once.
	for col := 0; col < n; col++ {
		for v := 0; v < n; v++ {
			var offs []int
			for row := 0; row < n; row++ {
				off := b.offset(row, col, v)
				if b.candidate[off] {
					offs = append(offs, off)
				}
			}
			if !addClause(offs, false) {
				return nil, false
			}
		}
	}

	// Every row contains each value at least once.
	for row := 0; row < n; row++ {
		for v := 0; v < n; v++ {
			var offs []int
			for col := 0; col < n; col++ {
				off := b.offset(row, col, v)
				if b.candidate[off] {
					offs = append(offs, off)
				}
			}
			if !addClause(offs, false) {
				return nil, false
			}
		}
	}

	// Every block contains each value at least once.
	for x := 0; x < b.rows; x++ {
		for y := 0; y < b.cols; y++ {
			for v := 0; v < n; v++ {
				var offs []int
				for a := 0; a < b.rows; a++ {
					for c := 0; c < b.cols; c++ {
						off := b.offset(x*b.cols+c, y*b.rows+a, v)
						if b.candidate[off] {
							offs = append(offs, off)
						}
					}
				}
				if !addClause(offs, false) {
					return nil, false
				}
			}
		}
	}

	// No cell may hold two different surviving candidates.
	for cell := 0; cell < n*n; cell++ {
		for j := 0; j < n; j++ {
			offJ := cell*n + j
			if !b.candidate[offJ] {
				continue
			}
			for k := 0; k < j; k++ {
				offK := cell*n + k
				if !b.candidate[offK] {
					continue
				}
				pb.AddClause([]cnf.Literal{
					cnf.NewLiteral(pb.Var(offJ), true),
					cnf.NewLiteral(pb.Var(offK), true),
				})
			}
		}
	}

	return pb, true
}

// Solve encodes the board to CNF and runs the CDCL search. On success it
// returns a fully filled N x N grid of 1-based values. ok is false if the
// board has no solution (either because encoding itself found a
// contradiction, or because the resulting formula is unsatisfiable).
func (b *Board) Solve() (grid []int, ok bool) {
	pb, encodeOK := b.encode()
	if !encodeOK {
		return nil, false
	}

	p := pb.Build()
	if p.Solve() != cnf.Sat {
		return nil, false
	}

	n := b.n
	grid = make([]int, n*n)
	model := p.Model()
	for vid := 0; vid < p.NumVariables(); vid++ {
		if !model[vid] {
			continue
		}
		offset := p.Name(cnf.VariableID(vid))
		cell, v := offset/n, offset%n
		grid[cell] = v + 1
	}
	return grid, true
}

// PrintDIMACS writes the board's CNF encoding in DIMACS form. If encoding
// itself discovers a contradiction (some cell or unit has no surviving
// candidate for some value), it writes a minimal, trivially unsatisfiable
// CNF document instead, so callers always get a well-formed DIMACS file.
func (b *Board) PrintDIMACS(w io.Writer) error {
	pb, ok := b.encode()
	if !ok {
		return cnf.WriteDIMACS(w, 1, [][]cnf.Literal{
			{cnf.NewLiteral(0, false)},
			{cnf.NewLiteral(0, true)},
		})
	}
	return cnf.WriteDIMACS(w, pb.NumVariables(), pb.Clauses())
}
