package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// NFA is an epsilon-free nondeterministic automaton over the same state
// identifiers as the automaton it was eliminated from. It is the intermediate
// artifact of Eliminate, exposed so renderers can display the epsilon-free
// relation before determinization.
type NFA struct {
	a      *Automaton
	edges  [][]*bitset.BitSet // [state][alphabet column]; epsilon has no column
	finals *bitset.BitSet
}

// Eliminate removes every epsilon transition from a. A state is final in the
// result iff its closure contains an original final state. For each state s
// and alphabet symbol x the destinations are the union of δ(c, x) over
// closure(s), closed again afterwards: a move can land on a state with its
// own outgoing epsilon transitions, and skipping the second closure would
// silently drop reachable states. Empty moves record nothing.
func Eliminate(a *Automaton) (*ClosureTable, *NFA, error) {
	// Validate already rejects this, but the invariant is cheap to re-check
	// for values the caller assembled elsewhere.
	for _, sym := range a.alphabet {
		if sym == Epsilon {
			return nil, nil, fmt.Errorf("%w: alphabet declares the reserved epsilon symbol", ErrInvalidSymbol)
		}
	}

	closures := a.Closures()
	n := &NFA{
		a:      a,
		edges:  make([][]*bitset.BitSet, len(a.labels)),
		finals: bitset.New(uint(len(a.labels))),
	}

	for s := range a.labels {
		n.edges[s] = make([]*bitset.BitSet, len(a.alphabet))
		cl := closures.sets[s]

		if cl.IntersectionCardinality(a.finals) > 0 {
			n.finals.Set(uint(s))
		}

		for col := range a.alphabet {
			move := bitset.New(uint(len(a.labels)))
			for c, ok := cl.NextSet(0); ok; c, ok = cl.NextSet(c + 1) {
				if set := a.edges[c][col]; set != nil {
					move.InPlaceUnion(set)
				}
			}
			if move.Count() == 0 {
				continue
			}
			dest := bitset.New(uint(len(a.labels)))
			for m, ok := move.NextSet(0); ok; m, ok = move.NextSet(m + 1) {
				dest.InPlaceUnion(closures.sets[m])
			}
			n.edges[s][col] = dest
		}
	}

	return closures, n, nil
}

// States returns the state labels, shared with the source automaton.
func (n *NFA) States() []string {
	return n.a.States()
}

// Alphabet returns the declared alphabet in declared order.
func (n *NFA) Alphabet() []Symbol {
	return n.a.Alphabet()
}

// Start returns the start state label, unchanged by elimination.
func (n *NFA) Start() string {
	return n.a.Start()
}

// Finals returns the epsilon-free final states in declaration order.
func (n *NFA) Finals() []string {
	return n.a.members(n.finals)
}

// IsFinal reports whether state is final after elimination.
func (n *NFA) IsFinal(state string) (bool, error) {
	id, err := n.a.stateID(state)
	if err != nil {
		return false, err
	}
	return n.finals.Test(uint(id)), nil
}

// Move returns the destination states of the epsilon-free relation for
// (state, input). Epsilon is not in the relation's domain and is rejected
// with ErrInvalidSymbol; an absent entry yields an empty result.
func (n *NFA) Move(state string, input Symbol) ([]string, error) {
	id, err := n.a.stateID(state)
	if err != nil {
		return nil, err
	}
	col, ok := n.a.columns[input]
	if !ok || input == Epsilon {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSymbol, input)
	}
	return n.a.members(n.edges[id][col]), nil
}
