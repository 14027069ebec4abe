package cnf

import "github.com/rhartert/yagh"

// order is a binary-heap-backed priority structure over active variables,
// keyed by LRB activity (q). It backs the decision heuristic: pick the
// unassigned variable with maximum q, ties broken by lowest id (the heap
// breaks ties on insertion order, which for this package is variable id
// order).
type order struct {
	heap *yagh.IntMap[float64]
}

func newOrder() *order {
	return &order{heap: yagh.New[float64](0)}
}

// grow reserves room for n additional variables.
func (o *order) grow(n int) {
	o.heap.GrowBy(n)
}

// insert adds variable v to the set of decision candidates with the given
// activity. Used at construction time for every variable that is not
// already fixed at depth 0.
func (o *order) insert(v VariableID, q float64) {
	o.heap.Put(int(v), -q)
}

// bump refreshes v's priority after its activity changed. If v is not
// currently a candidate (e.g. it is assigned), this is a no-op: its new
// priority will be picked up when it is reinserted.
func (o *order) bump(v VariableID, q float64) {
	if o.heap.Contains(int(v)) {
		o.heap.Put(int(v), -q)
	}
}

// reinsert puts v back among the decision candidates. Called whenever v
// becomes unassigned (backjump or restart).
func (o *order) reinsert(v VariableID, q float64) {
	o.heap.Put(int(v), -q)
}

// pick pops the unassigned variable with maximum activity, discarding stale
// heap entries for variables that turn out to already be assigned.
func (o *order) pick(variables []Variable) (VariableID, bool) {
	for {
		item, ok := o.heap.Pop()
		if !ok {
			return NoVariable, false
		}
		v := VariableID(item.Elem)
		if !variables[v].HasValue() {
			return v, true
		}
	}
}
