// Package cnf implements the packed literal/variable/clause representation
// and the CDCL search engine that operates on them.
package cnf

import (
	"fmt"
	"math"
)

// VariableID identifies a variable by its position in a Problem's Variables
// slice. NoVariable marks the absence of a variable, and doubles as the
// sentinel for "unassigned" when stored in Variable.depth.
type VariableID uint32

// NoVariable is the sentinel VariableID meaning "no variable" (or, when held
// in a Variable's depth field, "currently unassigned").
const NoVariable VariableID = math.MaxUint32

// ClauseID identifies a clause by its position in a Problem's Clauses slice.
// NoClause marks the absence of an antecedent clause.
type ClauseID uint32

// NoClause is the sentinel ClauseID meaning "no antecedent clause" (the
// variable was set by a decision, not by unit propagation).
const NoClause ClauseID = math.MaxUint32

// Literal packs a variable id and its polarity into a single comparable
// value: (id << 1) | negated. Packing this way keeps a variable's two
// polarities adjacent when literals are sorted, with the positive literal
// always preceding the negative one.
type Literal uint32

// NewLiteral returns the literal for variable id with the given polarity.
func NewLiteral(id VariableID, negated bool) Literal {
	l := Literal(id) << 1
	if negated {
		l |= 1
	}
	return l
}

// VarID returns the id of the literal's variable.
func (l Literal) VarID() VariableID {
	return VariableID(l >> 1)
}

// Negated reports whether the literal is the negation of its variable.
func (l Literal) Negated() bool {
	return l&1 == 1
}

// Disassemble returns the (variable, negated) pair the literal was built
// from.
func (l Literal) Disassemble() (VariableID, bool) {
	return l.VarID(), l.Negated()
}

// Opposite returns the literal's negation.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.Negated() {
		return fmt.Sprintf("-%d", l.VarID())
	}
	return fmt.Sprintf("%d", l.VarID())
}
