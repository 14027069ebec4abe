package cnf

import "sort"

// Verdict is the outcome of preprocessing (and, ultimately, of Solve).
type Verdict int

const (
	// Unknown means preprocessing could not decide the formula on its own;
	// the CDCL search must run.
	Unknown Verdict = iota
	// Sat means preprocessing proved the formula satisfiable (no clauses
	// remained once fixed variables were eliminated).
	Sat
	// Unsat means preprocessing derived the empty clause.
	Unsat
)

func (v Verdict) String() string {
	switch v {
	case Sat:
		return "SATISFIABLE"
	case Unsat:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// preprocess runs four ordered passes over the raw clauses: sort,
// dedup/tautology elimination, cascading unit propagation, and pairwise
// unification. It returns the surviving clauses (each still sorted
// ascending by packed literal), the root-level fixed assignments discovered
// along the way, and a verdict.
//
// The unification pass is quadratic in the number of surviving clauses; no
// early-exit heuristic is applied.
func preprocess(raw [][]Literal, numVars int) (kept [][]Literal, fixed map[VariableID]bool, verdict Verdict) {
	fixed = map[VariableID]bool{}

	clauses := make([][]Literal, 0, len(raw))
	for _, c := range raw {
		sc, sat := sortDedup(c)
		if sat {
			continue
		}
		clauses = append(clauses, sc)
	}

	for {
		var ok bool
		clauses, ok = unitPropagate(clauses, fixed)
		if !ok {
			return nil, fixed, Unsat
		}

		changed := unify(&clauses)
		if !changed {
			break
		}
	}

	if len(clauses) == 0 {
		return nil, fixed, Sat
	}
	return clauses, fixed, Unknown
}

// sortDedup sorts a clause's literals ascending by packed value, collapses
// duplicate literals, and reports sat=true if the clause contains a
// variable in both polarities (making it trivially satisfied).
func sortDedup(c []Literal) (out []Literal, sat bool) {
	lits := append([]Literal(nil), c...)
	sort.Slice(lits, func(i, j int) bool { return lits[i] < lits[j] })

	out = lits[:0]
	for i, l := range lits {
		if i > 0 && l == lits[i-1] {
			continue // duplicate literal
		}
		if i > 0 && l.VarID() == lits[i-1].VarID() && l.Negated() != lits[i-1].Negated() {
			return nil, true // both polarities present: tautology
		}
		out = append(out, l)
	}
	return out, false
}

// unitPropagate repeatedly scans clauses against the set of fixed variables,
// satisfying or shrinking clauses accordingly, until no new variable is
// fixed. It returns ok=false if the empty clause is ever derived.
func unitPropagate(clauses [][]Literal, fixed map[VariableID]bool) ([][]Literal, bool) {
	for {
		changed := false
		next := make([][]Literal, 0, len(clauses))

		for _, c := range clauses {
			filtered, satisfied := applyFixed(c, fixed)
			if satisfied {
				continue
			}
			if len(filtered) == 0 {
				return nil, false
			}
			if len(filtered) == 1 {
				vid, neg := filtered[0].Disassemble()
				val := !neg
				if existing, ok := fixed[vid]; ok {
					if existing != val {
						return nil, false
					}
					continue
				}
				fixed[vid] = val
				changed = true
				continue
			}
			next = append(next, filtered)
		}

		clauses = next
		if !changed {
			return clauses, true
		}
	}
}

// applyFixed removes literals made false by fixed variables and reports
// satisfied=true if a literal is made true.
func applyFixed(c []Literal, fixed map[VariableID]bool) (out []Literal, satisfied bool) {
	out = make([]Literal, 0, len(c))
	for _, l := range c {
		vid, neg := l.Disassemble()
		val, ok := fixed[vid]
		if !ok {
			out = append(out, l)
			continue
		}
		if val != neg {
			return nil, true // literal is true
		}
		// literal is false: drop it.
	}
	return out, false
}

// unify performs one sweep of pairwise clause unification (subsumption,
// equality, resolution, and strengthening), mutating clauses in place. It
// returns true if any clause changed or was removed, signalling that
// another round of unit propagation and unification is warranted.
func unify(clausesPtr *[][]Literal) bool {
	clauses := *clausesPtr
	changed := false

	deleted := make([]bool, len(clauses))
	for i := 0; i < len(clauses); i++ {
		if deleted[i] {
			continue
		}
		for j := i + 1; j < len(clauses) && !deleted[i]; j++ {
			if deleted[j] {
				continue
			}

			ai, bi := i, j
			if len(clauses[bi]) < len(clauses[ai]) {
				ai, bi = bi, ai
			}
			a, b := clauses[ai], clauses[bi]

			rel, diffVar := classify(a, b)
			switch rel {
			case relNone:
				continue
			case relEqual:
				deleted[bi] = true
				changed = true
			case relSubsumes:
				deleted[bi] = true
				changed = true
			case relResolve:
				clauses[ai] = removeVar(a, diffVar)
				deleted[bi] = true
				changed = true
			case relStrengthen:
				clauses[bi] = removeVar(b, diffVar)
				changed = true
			}
		}
	}

	if !changed {
		return false
	}

	out := make([][]Literal, 0, len(clauses))
	for i, c := range clauses {
		if deleted[i] {
			continue
		}
		out = append(out, c)
	}
	*clausesPtr = out
	return true
}

type relation int

const (
	relNone relation = iota
	relEqual
	relSubsumes   // a subset of b: b is subsumed (dropped)
	relResolve    // |a| == |b|, one polarity difference: resolvent replaces a, b dropped
	relStrengthen // |a| < |b|, one polarity difference: b loses the differing literal
)

// classify compares two sorted clauses a (shorter or equal) and b (longer or
// equal) and determines their unification relation: every literal of a must
// occur in b with either the same polarity, or (at most once) the opposite
// polarity.
func classify(a, b []Literal) (relation, VariableID) {
	bSet := make(map[Literal]bool, len(b))
	for _, l := range b {
		bSet[l] = true
	}

	diffVar := NoVariable
	diffCount := 0
	for _, l := range a {
		if bSet[l] {
			continue
		}
		if bSet[l.Opposite()] {
			diffCount++
			if diffCount > 1 {
				return relNone, NoVariable
			}
			diffVar = l.VarID()
			continue
		}
		return relNone, NoVariable
	}

	switch {
	case diffCount == 0 && len(a) == len(b):
		return relEqual, NoVariable
	case diffCount == 0:
		return relSubsumes, NoVariable
	case len(a) == len(b):
		return relResolve, diffVar
	default:
		return relStrengthen, diffVar
	}
}

func removeVar(c []Literal, vid VariableID) []Literal {
	out := make([]Literal, 0, len(c)-1)
	for _, l := range c {
		if l.VarID() == vid {
			continue
		}
		out = append(out, l)
	}
	return out
}
