package sudoku

import (
	"strings"
	"testing"
)

func TestParse_FullyGivenBoardMatchesManualSet(t *testing.T) {
	src := "1234\n3412\n2143\n4321\n"
	b, err := Parse(strings.NewReader(src), 2, 2)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	grid, ok := b.Solve()
	if !ok {
		t.Fatalf("Solve() found no solution for a fully given, consistent board")
	}
	assertGridEqual(t, grid, want4x4)
}

func TestParse_BlanksAcceptDotZeroAndSpace(t *testing.T) {
	src := ".2 4\n3. 2\n2103\n432.\n"
	b, err := Parse(strings.NewReader(src), 2, 2)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if b.IsSet(0, 0) {
		t.Errorf("cell (0,0) should be blank")
	}
	grid, ok := b.Solve()
	if !ok {
		t.Fatalf("Solve() found no solution for a sparsely given but solvable board")
	}
	assertGridEqual(t, grid, want4x4)
}

func TestParse_LettersEncodeValuesAbove9(t *testing.T) {
	// A single row of a 16x16-class grid exercising the a..z digit range is
	// overkill to fully solve here; just check the decoded candidates.
	row := strings.Repeat(".", 16)
	src := strings.Repeat(row+"\n", 15) + "123456789abcdefg\n"
	b, err := Parse(strings.NewReader(src), 4, 4)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	for col, want := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16} {
		got := b.Candidates(15, col)
		if len(got) != 1 || got[0] != want {
			t.Errorf("cell (15,%d) candidates = %v, want [%d]", col, got, want)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"too few rows", "1234\n3412\n"},
		{"row too short", "123\n3412\n2143\n4321\n"},
		{"row too long", "12345\n3412\n2143\n4321\n"},
		{"invalid character", "123*\n3412\n2143\n4321\n"},
		{"value exceeds board size", "1234\n3412\n2143\n4329\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tc.src), 2, 2); err == nil {
				t.Errorf("Parse(%q): want error, got none", tc.src)
			}
		})
	}
}
