// Package sudoku reduces Sudoku-style grid puzzles to CNF and reuses the
// cnf package's CDCL engine to solve them.
package sudoku

import "fmt"

// Board is a Sudoku-family grid of side N = rows*cols cells, where rows and
// cols are the block dimensions rather than the cell dimensions: a block
// spans cols cell-rows and rows cell-columns, so that rows=cols=3 gives the
// familiar 9x9 puzzle with 3x3 blocks. Each cell tracks a bitmap of which of
// the N values (1..N) are still possible; Set collapses a cell to a single
// value and Deduce propagates the consequences.
type Board struct {
	rows, cols int
	n          int // n = rows*cols, the side length and the value count

	// candidate[cell*n+v] is true while value v+1 is still possible in
	// cell (cell = row*n+col).
	candidate []bool
}

// NewBoard returns an empty board (every value possible in every cell) for
// an N x N grid where N = rows*cols.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("sudoku: invalid dimensions rows=%d cols=%d", rows, cols)
	}
	n := rows * cols
	b := &Board{
		rows:      rows,
		cols:      cols,
		n:         n,
		candidate: make([]bool, n*n*n),
	}
	for i := range b.candidate {
		b.candidate[i] = true
	}
	return b, nil
}

// N returns the board's side length (and value count).
func (b *Board) N() int {
	return b.n
}

func (b *Board) offset(row, col, v int) int {
	return (row*b.n+col)*b.n + v
}

// Set collapses the given cell's candidates down to the single value val
// (1-based, 1..N).
func (b *Board) Set(row, col, val int) error {
	if row < 0 || row >= b.n || col < 0 || col >= b.n {
		return fmt.Errorf("sudoku: cell (%d,%d) out of range for board of size %d", row, col, b.n)
	}
	if val < 1 || val > b.n {
		return fmt.Errorf("sudoku: value %d out of range 1..%d", val, b.n)
	}
	base := (row*b.n + col) * b.n
	for v := 0; v < b.n; v++ {
		b.candidate[base+v] = v == val-1
	}
	return nil
}

// IsSet reports whether the given cell currently has exactly one candidate
// remaining.
func (b *Board) IsSet(row, col int) bool {
	base := (row*b.n + col) * b.n
	found := false
	for v := 0; v < b.n; v++ {
		if b.candidate[base+v] {
			if found {
				return false
			}
			found = true
		}
	}
	return found
}

// Candidates returns the (1-based) values still possible in the given cell.
func (b *Board) Candidates(row, col int) []int {
	base := (row*b.n + col) * b.n
	var out []int
	for v := 0; v < b.n; v++ {
		if b.candidate[base+v] {
			out = append(out, v+1)
		}
	}
	return out
}

// Deduce runs naive constraint propagation to a fixed point: whenever a cell
// has exactly one remaining candidate, that value is eliminated from every
// other cell sharing its row, column, or block. It terminates because each
// pass either eliminates at least one candidate or leaves the board
// unchanged.
func (b *Board) Deduce() {
	for {
		changed := false
		for row := 0; row < b.n; row++ {
			for col := 0; col < b.n; col++ {
				val, ok := b.singleCandidate(row, col)
				if !ok {
					continue
				}
				if b.eliminate(row, col, val) {
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
}

func (b *Board) singleCandidate(row, col int) (val int, ok bool) {
	val, count := -1, 0
	base := (row*b.n + col) * b.n
	for v := 0; v < b.n; v++ {
		if b.candidate[base+v] {
			val = v
			count++
		}
	}
	if count == 1 {
		return val, true
	}
	return 0, false
}

// eliminate removes value val from every cell sharing row's row, col's
// column, or their block, other than (row, col) itself. It reports whether
// anything changed.
func (b *Board) eliminate(row, col, val int) bool {
	changed := false
	pos := b.offset(row, col, val)

	for c2 := 0; c2 < b.n; c2++ {
		off := b.offset(row, c2, val)
		if off != pos && b.candidate[off] {
			b.candidate[off] = false
			changed = true
		}
	}
	for r2 := 0; r2 < b.n; r2++ {
		off := b.offset(r2, col, val)
		if off != pos && b.candidate[off] {
			b.candidate[off] = false
			changed = true
		}
	}

	blockRow := row - row%b.cols
	blockCol := col - col%b.rows
	for a := 0; a < b.rows; a++ {
		for bb := 0; bb < b.cols; bb++ {
			off := b.offset(blockRow+bb, blockCol+a, val)
			if off != pos && b.candidate[off] {
				b.candidate[off] = false
				changed = true
			}
		}
	}
	return changed
}
