package cnf

// Variable holds the per-variable state a Problem tracks: its current (or
// last-seen, for phase saving) value, the decision depth at which it was
// assigned, the clause that implied it (if any), its LRB activity, and the
// two watchlists clauses register themselves on.
type Variable struct {
	// value is meaningful only while the variable is assigned, but it is
	// never cleared on Unset: it doubles as a phase cache so that the next
	// decision on this variable re-selects the same polarity.
	value bool

	// depth is the decision depth at which the variable was assigned.
	// NoVariable means "unassigned" and is the single source of truth for
	// HasValue.
	depth VariableID

	// ante is the clause whose unit propagation produced this assignment.
	// NoClause means the variable was set by a decision.
	ante ClauseID

	// q is the LRB activity score used to rank decision candidates.
	q float64

	// watch[n] holds the ids of clauses whose watched literal on this
	// variable has negation n. A clause is inspected when the variable is
	// assigned a value that falsifies that watched literal, i.e. when the
	// variable is set to value n.
	watch [2][]ClauseID
}

// Set assigns the variable to value at the given depth, with ante as its
// antecedent clause (NoClause for a decision). The variable must currently
// be unassigned.
func (v *Variable) Set(value bool, depth VariableID, ante ClauseID) {
	v.value = value
	v.depth = depth
	v.ante = ante
}

// Unset clears the variable's assignment. The cached phase (value) is left
// untouched so future decisions can reuse it.
func (v *Variable) Unset() {
	v.depth = NoVariable
	v.ante = NoClause
}

// Enable assigns the variable as a decision at the given depth, reusing its
// cached phase as the assigned value.
func (v *Variable) Enable(depth VariableID) {
	v.depth = depth
	v.ante = NoClause
}

// HasValue reports whether the variable is currently assigned.
func (v *Variable) HasValue() bool {
	return v.depth != NoVariable
}

// Value returns the variable's assigned value and whether it is assigned.
func (v *Variable) Value() (value bool, ok bool) {
	return v.value, v.HasValue()
}

// GetValue returns the variable's assigned value. The caller must have
// checked HasValue first.
func (v *Variable) GetValue() bool {
	return v.value
}

// GetDepth returns the decision depth at which the variable was assigned.
func (v *Variable) GetDepth() VariableID {
	return v.depth
}

// GetAnte returns the variable's antecedent clause, or NoClause if it was
// set by a decision.
func (v *Variable) GetAnte() ClauseID {
	return v.ante
}

// Watch registers cid in the watchlist for literals of the given polarity
// on this variable.
func (v *Variable) Watch(cid ClauseID, negated bool) {
	idx := negatedIndex(negated)
	v.watch[idx] = append(v.watch[idx], cid)
}

// Unwatch removes cid from the watchlist for literals of the given polarity
// on this variable. Order within the watchlist is not meaningful, so removal
// is a swap-remove.
func (v *Variable) Unwatch(cid ClauseID, negated bool) {
	idx := negatedIndex(negated)
	list := v.watch[idx]
	for i, c := range list {
		if c == cid {
			last := len(list) - 1
			list[i] = list[last]
			v.watch[idx] = list[:last]
			return
		}
	}
}

// ClearWatched empties both watchlists. Used before clause DB reduction,
// which re-links every surviving clause from scratch.
func (v *Variable) ClearWatched() {
	v.watch[0] = v.watch[0][:0]
	v.watch[1] = v.watch[1][:0]
}

// WatchList returns the watchlist of clauses triggered when this variable is
// assigned to value val.
func (v *Variable) WatchList(val bool) []ClauseID {
	return v.watch[negatedIndex(val)]
}

// Q returns the variable's LRB activity score.
func (v *Variable) Q() float64 {
	return v.q
}

// SetQ sets the variable's LRB activity score.
func (v *Variable) SetQ(q float64) {
	v.q = q
}

// SetPhase overwrites the cached phase without affecting the assignment
// state.
func (v *Variable) SetPhase(value bool) {
	v.value = value
}

func negatedIndex(negated bool) int {
	if negated {
		return 1
	}
	return 0
}

// litValue reports whether literal l is currently assigned and, if so,
// whether it evaluates to true under the given variables slice.
func litValue(variables []Variable, l Literal) (assigned, isTrue bool) {
	v := &variables[l.VarID()]
	value, ok := v.Value()
	if !ok {
		return false, false
	}
	return true, value != l.Negated()
}
