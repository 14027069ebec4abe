package dimacs

import (
	"bufio"
	"io"
	"math"

	"github.com/rhartert/dsat/internal/cnf"
)

// isSpace reports whether b is DIMACS whitespace: space or any of the usual
// ASCII control whitespace bytes (tab, newline, vertical tab, form feed, CR).
func isSpace(b byte) bool {
	return b == ' ' || (b >= '\t' && b <= '\r')
}

type scanner struct {
	r   *bufio.Reader
	err error
}

func (s *scanner) peek() (byte, bool) {
	if s.err != nil {
		return 0, false
	}
	b, err := s.r.ReadByte()
	if err != nil {
		s.err = nil // EOF is not itself a parse error; callers decide
		return 0, false
	}
	s.r.UnreadByte()
	return b, true
}

func (s *scanner) advance() {
	s.r.ReadByte()
}

func (s *scanner) skipSpace() {
	for {
		b, ok := s.peek()
		if !ok || !isSpace(b) {
			return
		}
		s.advance()
	}
}

// skipComments skips whitespace and any number of "c"-prefixed comment
// lines, leaving the scanner positioned at the first non-comment token.
func (s *scanner) skipComments() {
	for {
		s.skipSpace()
		b, ok := s.peek()
		if !ok || b != 'c' {
			return
		}
		for {
			b, ok := s.peek()
			if !ok || b == '\n' {
				break
			}
			s.advance()
		}
	}
}

// parseInt reads an unsigned decimal integer, failing with ErrExpectedInt if
// no digit is found at all and ErrOverflow if the value would not fit in an
// int.
func (s *scanner) parseInt() (int, error) {
	s.skipSpace()

	b, ok := s.peek()
	if !ok || b < '0' || b > '9' {
		return 0, errKind(ErrExpectedInt)
	}

	result := 0
	for {
		b, ok := s.peek()
		if !ok || b < '0' || b > '9' {
			return result, nil
		}
		s.advance()
		if result > (math.MaxInt-int(b-'0'))/10 {
			return 0, errKind(ErrOverflow)
		}
		result = result*10 + int(b-'0')
	}
}

// parseSignedInt reads an optionally '-'-prefixed decimal integer.
func (s *scanner) parseSignedInt() (int, error) {
	s.skipSpace()

	neg := false
	if b, ok := s.peek(); ok && b == '-' {
		neg = true
		s.advance()
	}
	n, err := s.parseInt()
	if err != nil {
		return 0, err
	}
	if neg {
		return -n, nil
	}
	return n, nil
}

func (s *scanner) expectByte(want byte, kind ErrorKind) error {
	s.skipSpace()
	b, ok := s.peek()
	if !ok || b != want {
		return errKind(kind)
	}
	s.advance()
	return nil
}

// Parse reads a DIMACS CNF document from r and builds the Problem it
// describes. Trailing bytes after the declared number of clauses have been
// read are ignored, matching the tolerant behavior of widely used DIMACS
// readers.
func Parse(r io.Reader) (*cnf.Problem[int], error) {
	s := &scanner{r: bufio.NewReader(r)}
	s.skipComments()

	if err := s.expectByte('p', ErrExpectedP); err != nil {
		return nil, err
	}
	s.skipSpace()
	for _, want := range []byte("cnf") {
		if err := s.expectByte(want, ErrExpectedCNF); err != nil {
			return nil, err
		}
	}

	numVars, err := s.parseInt()
	if err != nil {
		return nil, err
	}
	numClauses, err := s.parseInt()
	if err != nil {
		return nil, err
	}
	if numClauses == 0 {
		return nil, errKind(ErrEmptyQuery)
	}

	b := cnf.NewProblemBuilder[int]()
	maxVar := 0

	// Variables are interned in declared order first, so that DIMACS
	// variable i always maps to name i-1 regardless of which variables a
	// clause actually references.
	for i := 0; i < numVars; i++ {
		b.Var(i)
	}

	for i := 0; i < numClauses; i++ {
		var lits []cnf.Literal
		for {
			n, err := s.parseSignedInt()
			if err != nil {
				return nil, err
			}
			if n == 0 {
				break
			}
			id := n
			if id < 0 {
				id = -id
			}
			if id > maxVar {
				maxVar = id
			}
			lits = append(lits, cnf.NewLiteral(b.Var(id-1), n < 0))
		}
		if len(lits) == 0 {
			return nil, errKind(ErrEmptyClause)
		}
		b.AddClause(lits)
	}

	if maxVar > numVars {
		return nil, &ParseError{Kind: ErrVariableCount, Expected: numVars, Actual: maxVar}
	}

	return b.Build(), nil
}
