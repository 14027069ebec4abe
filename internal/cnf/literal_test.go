package cnf

import "testing"

func TestLiteral_RoundTrip(t *testing.T) {
	tests := []struct {
		id      VariableID
		negated bool
	}{
		{0, false},
		{0, true},
		{1, false},
		{1, true},
		{VariableID(1 << 20), true},
	}

	for _, tc := range tests {
		l := NewLiteral(tc.id, tc.negated)
		if got := l.VarID(); got != tc.id {
			t.Errorf("NewLiteral(%d, %v).VarID() = %d, want %d", tc.id, tc.negated, got, tc.id)
		}
		if got := l.Negated(); got != tc.negated {
			t.Errorf("NewLiteral(%d, %v).Negated() = %v, want %v", tc.id, tc.negated, got, tc.negated)
		}
		gotID, gotNeg := l.Disassemble()
		if gotID != tc.id || gotNeg != tc.negated {
			t.Errorf("Disassemble() = (%d, %v), want (%d, %v)", gotID, gotNeg, tc.id, tc.negated)
		}
	}
}

func TestLiteral_Opposite(t *testing.T) {
	l := NewLiteral(7, false)
	o := l.Opposite()
	if o.VarID() != 7 || !o.Negated() {
		t.Errorf("Opposite() = %v, want variable 7 negated", o)
	}
	if o.Opposite() != l {
		t.Errorf("Opposite().Opposite() != original literal")
	}
}

// A variable's two polarities must sort adjacently, positive first, so that
// preprocessing's sorted-scan tautology check (adjacent literals with equal
// VarID but different Negated) is correct.
func TestLiteral_PolaritiesAdjacentAndOrderedPositiveFirst(t *testing.T) {
	pos := NewLiteral(5, false)
	neg := NewLiteral(5, true)
	if !(pos < neg) {
		t.Errorf("positive literal %d should sort before negative literal %d", pos, neg)
	}
	if next := NewLiteral(6, false); !(neg < next) {
		t.Errorf("literal %d (var 5, negated) should sort before %d (var 6)", neg, next)
	}
}
