package cnf

import "sort"

// Clause owns a disjunction of literals together with the two watched
// positions used for two-watched-literal propagation and the glue (LBD)
// score used to rank learned clauses for database reduction.
type Clause struct {
	// literals is sorted ascending by packed Literal value when the clause
	// is built; InitializeWatched then swaps an original clause's two chosen
	// watches into positions 0 and 1, so that order is not kept afterwards.
	literals []Literal

	// watched holds two distinct indices into literals (when len(literals)
	// >= 2). The clause is inspected only when one of these two literals is
	// falsified.
	watched [2]int

	// glue is the Literal Block Distance: the number of distinct decision
	// depths among the clause's literals at the moment of derivation. It
	// only ever decreases. Once it reaches 2 it is considered permanent.
	glue int
}

// NewClause builds an original (non-learned) clause. Watched indices default
// to 0 and 1; InitializeWatched must be called once preprocessing has
// finished to pick better initial watches and register them.
func NewClause(literals []Literal, glue int) *Clause {
	return &Clause{
		literals: literals,
		watched:  [2]int{0, 1},
		glue:     glue,
	}
}

// Literals returns the clause's literals. The returned slice must not be
// mutated by callers outside this package.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// Glue returns the clause's current Literal Block Distance.
func (c *Clause) Glue() int {
	return c.glue
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.literals)
}

// FromLearned builds a learned clause from the (unsorted) literals produced
// by conflict analysis. It sorts the literals, selects the two literals with
// the largest decision depths as the watched pair, computes the clause's
// glue, and reports the depth the search should backjump to plus the
// asserting literal (the clause's unique literal at the conflict's decision
// depth).
func FromLearned(literals []Literal, variables []Variable, currentDepth VariableID) (backjumpDepth VariableID, assertingLit Literal, clause *Clause) {
	// literals is the caller's scratch buffer, reused across conflicts: copy
	// it into a clause-owned slice before sorting or storing it, otherwise
	// the next conflict's analysis would overwrite the literals of the
	// clause this call installs.
	owned := append([]Literal(nil), literals...)
	sort.Slice(owned, func(i, j int) bool { return owned[i] < owned[j] })
	literals = owned

	primary, secondary := -1, -1
	primaryDepth, secondaryDepth := VariableID(0), VariableID(0)
	seenDepths := map[VariableID]struct{}{}

	for i, lit := range literals {
		d := variables[lit.VarID()].GetDepth()
		seenDepths[d] = struct{}{}
		if primary == -1 || d > primaryDepth {
			secondary, secondaryDepth = primary, primaryDepth
			primary, primaryDepth = i, d
		} else if secondary == -1 || d > secondaryDepth {
			secondary, secondaryDepth = i, d
		}
	}

	backjumpDepth = 0
	if secondary != -1 {
		backjumpDepth = secondaryDepth
	}

	clause = &Clause{
		literals: literals,
		glue:     len(seenDepths),
	}
	if secondary == -1 {
		// Single-literal learned clause should go through the unit path
		// instead, but guard defensively so watched stays well-formed.
		clause.watched = [2]int{0, 0}
	} else {
		clause.watched = [2]int{primary, secondary}
	}

	return backjumpDepth, literals[primary], clause
}

// InitializeWatched picks the clause's initial watched pair among the
// literals whose variables currently have the shortest watchlists, swaps
// them into positions 0 and 1, and registers the clause with those
// variables. Called once per original clause, after preprocessing, to
// distribute initial propagation load evenly across variables.
func (c *Clause) InitializeWatched(cid ClauseID, variables []Variable) {
	if len(c.literals) < 2 {
		return
	}

	best0, best1 := 0, 1
	len0 := len(variables[c.literals[0].VarID()].WatchList(c.literals[0].Negated()))
	len1 := len(variables[c.literals[1].VarID()].WatchList(c.literals[1].Negated()))
	if len1 < len0 {
		best0, best1 = best1, best0
		len0, len1 = len1, len0
	}

	for i := 2; i < len(c.literals); i++ {
		l := len(variables[c.literals[i].VarID()].WatchList(c.literals[i].Negated()))
		switch {
		case l < len0:
			best1, len1 = best0, len0
			best0, len0 = i, l
		case l < len1:
			best1, len1 = i, l
		}
	}

	c.literals[0], c.literals[best0] = c.literals[best0], c.literals[0]
	if best1 == 0 {
		best1 = best0
	}
	c.literals[1], c.literals[best1] = c.literals[best1], c.literals[1]

	c.watched = [2]int{0, 1}
	c.NotifyWatched(cid, variables)
}

// NotifyWatched registers the clause's two currently watched literals with
// their variables' watchlists, unless the first watched literal is already
// fixed at depth 0 — in which case the clause is permanently satisfied or
// permanently falsified and is skipped entirely (and, by symmetry, so is
// the second watched literal).
func (c *Clause) NotifyWatched(cid ClauseID, variables []Variable) {
	w0 := c.literals[c.watched[0]]
	if v := &variables[w0.VarID()]; v.GetDepth() == 0 && v.HasValue() {
		return
	}
	variables[w0.VarID()].Watch(cid, w0.Negated())

	if len(c.literals) < 2 {
		return
	}
	w1 := c.literals[c.watched[1]]
	variables[w1.VarID()].Watch(cid, w1.Negated())
}

func (c *Clause) unwatch(cid ClauseID, variables []Variable) {
	w0 := c.literals[c.watched[0]]
	variables[w0.VarID()].Unwatch(cid, w0.Negated())
	if len(c.literals) < 2 {
		return
	}
	w1 := c.literals[c.watched[1]]
	variables[w1.VarID()].Unwatch(cid, w1.Negated())
}

// ApplyKind is the outcome of Clause.Apply.
type ApplyKind int

const (
	// ApplyContinue means the clause is still satisfiable and, if its
	// watches moved, has already re-registered itself.
	ApplyContinue ApplyKind = iota
	// ApplyUnsat means both watched literals are assigned false with no
	// replacement available: the clause is a conflict.
	ApplyUnsat
	// ApplyUnit means every literal except Lit is assigned false: Lit must
	// be set to true.
	ApplyUnit
)

// ApplyResult is the result of Clause.Apply.
type ApplyResult struct {
	Kind ApplyKind
	Lit  Literal // valid only when Kind == ApplyUnit
}

// Apply runs the two-watched-literal transition for the clause after one of
// its watched variables has just been assigned. It re-evaluates both
// watched literals, looks for a replacement watch if needed, and reports
// whether the clause is satisfied, unit, or a conflict.
func (c *Clause) Apply(cid ClauseID, variables []Variable) ApplyResult {
	w0, w1 := c.literals[c.watched[0]], c.literals[c.watched[1]]
	a0, t0 := litValue(variables, w0)
	a1, t1 := litValue(variables, w1)

	if (a0 && t0) || (a1 && t1) {
		return ApplyResult{Kind: ApplyContinue}
	}
	if !a0 && !a1 {
		// Neither watched literal has a value yet: nothing to do.
		return ApplyResult{Kind: ApplyContinue}
	}

	// Scan the remaining literals for replacement watches, cyclically from
	// just past watched[0], skipping watched[1]. Both watched literals can
	// be falsified at once (the second by a unit assignment queued earlier
	// in the same propagation pass), so after repairing the first slot the
	// scan keeps going until the second is repaired too. The bound must be
	// n-1, not n-2: the pass through the skipped watched slot consumes one
	// iteration without examining a candidate.
	n := len(c.literals)
	for steps, i := 0, (c.watched[0]+1)%n; steps < n-1; steps++ {
		if i == c.watched[1] {
			i = (i + 1) % n
			continue
		}

		lit := c.literals[i]
		assigned, isTrue := litValue(variables, lit)
		switch {
		case !assigned:
			if a0 {
				c.replaceWatch(cid, 0, i, variables)
				if !a1 {
					return ApplyResult{Kind: ApplyContinue}
				}
				a0 = false // watched[0] repaired; keep scanning for watched[1]
			} else {
				c.replaceWatch(cid, 1, i, variables)
				return ApplyResult{Kind: ApplyContinue}
			}
		case isTrue:
			freed := 0
			if !a0 {
				freed = 1
			}
			return c.percolateSat(cid, freed, 1-freed, i, variables)
		}
		i = (i + 1) % n
	}

	switch {
	case a0 && a1:
		return ApplyResult{Kind: ApplyUnsat}
	case a0:
		return ApplyResult{Kind: ApplyUnit, Lit: c.literals[c.watched[1]]}
	default:
		return ApplyResult{Kind: ApplyUnit, Lit: c.literals[c.watched[0]]}
	}
}

// percolateSat handles the case where the scan for a replacement watch found
// a literal that is already true. Among the clause's non-watched literals it
// promotes the one with the smallest decision depth into the freed slot so
// that future backtracking keeps the clause correctly watched; if that
// minimum depth is 0 the clause is permanently satisfied and both watches
// are dropped. Only true literals are candidates: a false literal satisfies
// nothing, and watching it would leave the clause without a watch that
// reacts to later assignments.
func (c *Clause) percolateSat(cid ClauseID, freedSlot, otherSlot, foundIdx int, variables []Variable) ApplyResult {
	minIdx, minDepth := foundIdx, variables[c.literals[foundIdx].VarID()].GetDepth()
	for i, lit := range c.literals {
		if i == c.watched[freedSlot] || i == c.watched[otherSlot] {
			continue
		}
		v := &variables[lit.VarID()]
		if d := v.GetDepth(); d < minDepth && v.GetValue() != lit.Negated() {
			minIdx, minDepth = i, d
		}
	}

	if minDepth == 0 {
		c.unwatch(cid, variables)
		return ApplyResult{Kind: ApplyContinue}
	}

	c.replaceWatch(cid, freedSlot, minIdx, variables)
	return ApplyResult{Kind: ApplyContinue}
}

// replaceWatch swaps out the watched literal at watched[slot] for the
// literal at literals[newIdx], updating watchlist registrations accordingly.
func (c *Clause) replaceWatch(cid ClauseID, slot, newIdx int, variables []Variable) {
	old := c.literals[c.watched[slot]]
	variables[old.VarID()].Unwatch(cid, old.Negated())

	c.watched[slot] = newIdx
	nl := c.literals[newIdx]
	variables[nl.VarID()].Watch(cid, nl.Negated())
}

// UpdateGlue recomputes the clause's glue as the number of distinct decision
// depths among its literals, assuming every literal is currently assigned.
// Glue never increases, and clauses that have already reached a glue of 2 or
// less are left untouched: that is considered a permanent quality class.
func (c *Clause) UpdateGlue(variables []Variable) {
	if c.glue <= 2 {
		return
	}

	seen := map[VariableID]struct{}{}
	for _, lit := range c.literals {
		seen[variables[lit.VarID()].GetDepth()] = struct{}{}
	}
	if newGlue := len(seen); newGlue < c.glue {
		c.glue = newGlue
	}
}
