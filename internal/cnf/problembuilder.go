package cnf

import (
	"math"
	"sort"
)

// ProblemBuilder interns variable names and accumulates clauses before a
// Problem is constructed. It is generic over the name type so that a DIMACS
// front-end can use int (1-based variable numbers minus one) while an NPN
// front-end uses string atom names.
type ProblemBuilder[N comparable] struct {
	names []N
	index map[N]VariableID

	rawClauses [][]Literal
}

// NewProblemBuilder returns an empty builder.
func NewProblemBuilder[N comparable]() *ProblemBuilder[N] {
	return &ProblemBuilder[N]{index: map[N]VariableID{}}
}

// Var interns name, returning its existing id if already seen or allocating
// a fresh one otherwise.
func (b *ProblemBuilder[N]) Var(name N) VariableID {
	if id, ok := b.index[name]; ok {
		return id
	}
	id := VariableID(len(b.names))
	b.names = append(b.names, name)
	b.index[name] = id
	return id
}

// NumVariables returns the number of variables interned so far.
func (b *ProblemBuilder[N]) NumVariables() int {
	return len(b.names)
}

// AddClause records a clause over already-interned literals.
func (b *ProblemBuilder[N]) AddClause(literals []Literal) {
	b.rawClauses = append(b.rawClauses, append([]Literal(nil), literals...))
}

// Clauses returns the clauses recorded so far, before preprocessing. The
// returned slices must not be mutated by callers.
func (b *ProblemBuilder[N]) Clauses() [][]Literal {
	return b.rawClauses
}

// Build runs preprocessing over the accumulated clauses and constructs the
// Problem that will carry out the CDCL search.
func (b *ProblemBuilder[N]) Build() *Problem[N] {
	numVars := len(b.names)
	kept, fixed, verdict := preprocess(b.rawClauses, numVars)

	p := &Problem[N]{
		names:        append([]N(nil), b.names...),
		variables:    make([]Variable, numVars),
		lastConflict: make([]uint64, numVars),
		alpha:        0.4,
		gcNext:       2048,
		order:        newOrder(),
		solution:     verdict,
		conflictLens: map[int]int{},
		marks:        newMarkSet(numVars),
		glueEMA:      newEMA(0.95),
	}
	p.order.grow(numVars)

	// A zero-valued Variable has depth 0, which collides with the real
	// decision depth 0 rather than the NoVariable "unassigned" sentinel, so
	// every variable must be explicitly unset before anything else treats
	// depth as meaningful.
	for i := range p.variables {
		p.variables[i].Unset()
	}

	for vid, val := range fixed {
		p.variables[vid].Set(val, 0, NoClause)
	}

	p.activeVariables = numVars - len(fixed)
	seedActivity(p.variables, kept)
	for vid := range p.variables {
		if !p.variables[vid].HasValue() {
			p.order.insert(VariableID(vid), p.variables[vid].Q())
		}
	}

	for _, lits := range kept {
		// Original clauses are never reduction candidates, so their glue is
		// pinned at 1: at or below the permanent threshold, which also makes
		// UpdateGlue a no-op for them.
		c := NewClause(lits, 1)
		cid := ClauseID(len(p.clauses))
		p.clauses = append(p.clauses, c)
		c.InitializeWatched(cid, p.variables)
	}
	p.irreducible = len(p.clauses)

	return p
}

// seedActivity initializes every unassigned variable's initial LRB activity
// (q) and cached phase from a Jeroslow-Wang-style weighted count of its
// occurrences in clauses. For each variable and each polarity, occurrences
// are grouped by clause length and weighted 2^-len per occurrence; the
// per-length weights are summed in ascending order of magnitude (rather
// than clause-encounter order) to reduce, though not eliminate,
// floating-point summation order sensitivity. q is the sum of both
// polarities' weight; the cached phase is the polarity that carried less
// weight. Every variable's q is finally normalized by the maximum q among
// unassigned variables, so heap priorities stay in [0, 1].
func seedActivity(variables []Variable, clauses [][]Literal) {
	counts := make([][2]map[int]int, len(variables))
	for i := range counts {
		counts[i] = [2]map[int]int{{}, {}}
	}

	for _, c := range clauses {
		n := len(c)
		for _, lit := range c {
			vid, neg := lit.Disassemble()
			idx := 0
			if neg {
				idx = 1
			}
			counts[vid][idx][n]++
		}
	}

	maxQ := 0.0
	for vid := range variables {
		if variables[vid].HasValue() {
			continue
		}
		lo := weightedOccurrenceSum(counts[vid][0])
		hi := weightedOccurrenceSum(counts[vid][1])
		variables[vid].SetPhase(lo < hi)
		variables[vid].SetQ(lo + hi)
		if q := variables[vid].Q(); q > maxQ {
			maxQ = q
		}
	}

	if maxQ == 0 {
		return
	}
	for vid := range variables {
		variables[vid].SetQ(variables[vid].Q() / maxQ)
	}
}

// weightedOccurrenceSum sums 2^-length * count over the given length ->
// occurrence-count buckets, visiting buckets in ascending order of their
// individual weight before adding them together.
func weightedOccurrenceSum(byLength map[int]int) float64 {
	weights := make([]float64, 0, len(byLength))
	for length, count := range byLength {
		weights = append(weights, math.Pow(2, -float64(length))*float64(count))
	}
	sort.Float64s(weights)

	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	return sum
}
