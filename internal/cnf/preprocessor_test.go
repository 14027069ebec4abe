package cnf

import "testing"

func lit(v VariableID, negated bool) Literal { return NewLiteral(v, negated) }

func TestPreprocess_TautologyDropped(t *testing.T) {
	// (x0 v !x0 v x1) is trivially true regardless of x1; only a genuine
	// clause over x1 survives elsewhere, so with nothing else the formula
	// is SAT.
	raw := [][]Literal{{lit(0, false), lit(0, true), lit(1, false)}}
	_, _, verdict := preprocess(raw, 2)
	if verdict != Sat {
		t.Errorf("verdict = %v, want Sat (only clause is a tautology)", verdict)
	}
}

func TestPreprocess_CascadingUnitPropagation(t *testing.T) {
	// x0 is forced true by the unit clause; that satisfies (x0 v x1),
	// which leaves (!x0 v x2) to force x2 true, which then satisfies
	// everything: the whole formula collapses to Sat with x0=x2=true.
	raw := [][]Literal{
		{lit(0, false)},
		{lit(0, false), lit(1, false)},
		{lit(0, true), lit(2, false)},
	}
	kept, fixed, verdict := preprocess(raw, 3)
	if verdict != Sat {
		t.Fatalf("verdict = %v, want Sat", verdict)
	}
	if len(kept) != 0 {
		t.Errorf("kept = %v, want no surviving clauses", kept)
	}
	if !fixed[0] || !fixed[2] {
		t.Errorf("fixed = %v, want x0 and x2 both fixed true", fixed)
	}
}

func TestPreprocess_EmptyClauseIsUnsat(t *testing.T) {
	raw := [][]Literal{
		{lit(0, false)},
		{lit(0, true)},
	}
	_, _, verdict := preprocess(raw, 1)
	if verdict != Unsat {
		t.Errorf("verdict = %v, want Unsat", verdict)
	}
}

func TestPreprocess_SubsumptionDropsLongerClause(t *testing.T) {
	// (x0 v x1) subsumes (x0 v x1 v x2): the longer clause is redundant.
	raw := [][]Literal{
		{lit(0, false), lit(1, false)},
		{lit(0, false), lit(1, false), lit(2, false)},
	}
	kept, _, verdict := preprocess(raw, 3)
	if verdict != Unknown {
		t.Fatalf("verdict = %v, want Unknown", verdict)
	}
	if len(kept) != 1 {
		t.Fatalf("kept %d clauses, want 1 (the subsumed clause should be dropped)", len(kept))
	}
	if len(kept[0]) != 2 {
		t.Errorf("surviving clause has %d literals, want 2", len(kept[0]))
	}
}

func TestPreprocess_ResolutionMergesSameLengthClauses(t *testing.T) {
	// (x0 v x1) and (!x0 v x1) resolve on x0 to (x1); both inputs are
	// replaced by the single resolvent.
	raw := [][]Literal{
		{lit(0, false), lit(1, false)},
		{lit(0, true), lit(1, false)},
	}
	kept, fixed, verdict := preprocess(raw, 2)
	if verdict != Sat {
		t.Fatalf("verdict = %v, kept = %v, fixed = %v, want Sat (x1 forced true)", verdict, kept, fixed)
	}
	if !fixed[1] {
		t.Errorf("fixed = %v, want x1 fixed true", fixed)
	}
}
