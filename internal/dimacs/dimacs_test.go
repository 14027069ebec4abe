package dimacs

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/rhartert/dsat/internal/cnf"
)

func parseString(t *testing.T, src string) *cnf.Problem[int] {
	t.Helper()
	p, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return p
}

func TestParse_SingleUnitClauseIsSatisfiable(t *testing.T) {
	p := parseString(t, "p cnf 1 1\n1 0\n")
	if got := p.Solve(); got != cnf.Sat {
		t.Fatalf("Solve() = %v, want Sat", got)
	}
	if !p.ModelValue(0) {
		t.Errorf("model[x1] = false, want true")
	}
}

func TestParse_ContradictingUnitsAreUnsatisfiable(t *testing.T) {
	p := parseString(t, "p cnf 1 2\n1 0\n-1 0\n")
	if got := p.Solve(); got != cnf.Unsat {
		t.Fatalf("Solve() = %v, want Unsat", got)
	}
}

func TestParse_ThreeVariableHornLikeFormulaIsSatisfiable(t *testing.T) {
	p := parseString(t, "p cnf 3 3\n1 -2 3 0\n-1 -2 3 0\n1 2 3 0\n")
	if got := p.Solve(); got != cnf.Sat {
		t.Fatalf("Solve() = %v, want Sat", got)
	}
}

func TestParse_AllEightClausesOverThreeVarsIsUnsatisfiable(t *testing.T) {
	src := "p cnf 3 8\n" +
		"1 2 3 0\n1 2 -3 0\n1 -2 3 0\n1 -2 -3 0\n" +
		"-1 2 3 0\n-1 2 -3 0\n-1 -2 3 0\n-1 -2 -3 0\n"
	p := parseString(t, src)
	if got := p.Solve(); got != cnf.Unsat {
		t.Fatalf("Solve() = %v, want Unsat", got)
	}
}

// TestParse_Pigeonhole32 encodes PHP(3,2): 3 pigeons, 2 holes, no two
// pigeons may share a hole. Unsatisfiable by the pigeonhole principle.
func TestParse_Pigeonhole32(t *testing.T) {
	// Variable p*2+h+1 means "pigeon p sits in hole h" (1-based DIMACS id).
	var b strings.Builder
	b.WriteString("p cnf 6 9\n")
	for pig := 0; pig < 3; pig++ {
		b.WriteString(strconv.Itoa(pig*2+1) + " " + strconv.Itoa(pig*2+2) + " 0\n")
	}
	for hole := 0; hole < 2; hole++ {
		for p1 := 0; p1 < 3; p1++ {
			for p2 := p1 + 1; p2 < 3; p2++ {
				b.WriteString("-" + strconv.Itoa(p1*2+hole+1) + " -" + strconv.Itoa(p2*2+hole+1) + " 0\n")
			}
		}
	}
	p := parseString(t, b.String())
	if got := p.Solve(); got != cnf.Unsat {
		t.Fatalf("Solve() = %v, want Unsat", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind ErrorKind
	}{
		{"missing p", "cnf 1 1\n1 0\n", ErrExpectedP},
		{"wrong problem type", "p wcnf 1 1\n1 0\n", ErrExpectedCNF},
		{"zero clauses", "p cnf 1 0\n", ErrEmptyQuery},
		{"empty clause", "p cnf 1 1\n0\n", ErrEmptyClause},
		{"expected int after p cnf", "p cnf x 1\n1 0\n", ErrExpectedInt},
		{"too few declared variables", "p cnf 1 1\n1 2 0\n", ErrVariableCount},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.src))
			if err == nil {
				t.Fatalf("Parse(%q): want error, got none", tc.src)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q): error %v is not a *ParseError", tc.src, err)
			}
			if pe.Kind != tc.kind {
				t.Errorf("Parse(%q): Kind = %v, want %v", tc.src, pe.Kind, tc.kind)
			}
		})
	}
}

func TestParse_CommentsAndTrailingContentAreIgnored(t *testing.T) {
	src := "c this is a comment\nc so is this\np cnf 1 1\n1 0\nc trailing garbage\nbogus content\n"
	p := parseString(t, src)
	if got := p.Solve(); got != cnf.Sat {
		t.Fatalf("Solve() = %v, want Sat", got)
	}
}
