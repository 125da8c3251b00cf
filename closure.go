package automaton

import (
	"github.com/bits-and-blooms/bitset"
)

// ClosureTable holds the epsilon closure of every state of one automaton.
type ClosureTable struct {
	a    *Automaton
	sets []*bitset.BitSet // indexed by state id
}

// Closure returns the epsilon closure of state: every state reachable from
// it through zero or more epsilon transitions, always including state itself.
// Fails with ErrInvalidState if state is not declared.
func (a *Automaton) Closure(state string) ([]string, error) {
	id, err := a.stateID(state)
	if err != nil {
		return nil, err
	}
	return a.members(a.closure(id)), nil
}

// Closures computes the closure of every declared state.
func (a *Automaton) Closures() *ClosureTable {
	sets := make([]*bitset.BitSet, len(a.labels))
	for s := range sets {
		sets[s] = a.closure(s)
	}
	return &ClosureTable{a: a, sets: sets}
}

// closure walks the epsilon sub-relation from s with an explicit stack.
// Visited states are never pushed twice, so epsilon cycles terminate.
func (a *Automaton) closure(s int) *bitset.BitSet {
	seen := bitset.New(uint(len(a.labels)))
	seen.Set(uint(s))
	eps := len(a.alphabet)

	stack := []int{s}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		set := a.edges[cur][eps]
		if set == nil {
			continue
		}
		for next, ok := set.NextSet(0); ok; next, ok = set.NextSet(next + 1) {
			if !seen.Test(next) {
				seen.Set(next)
				stack = append(stack, int(next))
			}
		}
	}
	return seen
}

// Of returns the closure of state from the table, in declaration order.
func (t *ClosureTable) Of(state string) ([]string, error) {
	id, err := t.a.stateID(state)
	if err != nil {
		return nil, err
	}
	return t.a.members(t.sets[id]), nil
}
