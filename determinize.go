package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// DFA is the deterministic result of subset construction. Each DFA state
// stands for a non-empty set of source-automaton states; states are numbered
// in discovery order and state 0 is the start state. The transition table is
// partial: an unmapped (state, symbol) pair means the DFA rejects there.
type DFA struct {
	alphabet []Symbol
	columns  map[Symbol]int
	members  [][]string // member labels per state, canonical order
	edges    [][]int    // [state][column]; -1 when absent
	finals   *bitset.BitSet
}

// Determinize converts n into an equivalent DFA via subset construction: a
// FIFO worklist over sets of source states seeded with {start}, processing
// the alphabet in declared order at each dequeued set. Candidate sets are
// deduplicated by set equality, so two runs on the same input discover
// states in the same order. Source states never pulled into a discovered
// set simply do not appear in the result.
func Determinize(n *NFA) *DFA {
	a := n.a
	d := &DFA{
		alphabet: a.Alphabet(),
		columns:  make(map[Symbol]int, len(a.alphabet)),
		// Sizing is only a hint: composite states can outnumber source
		// states, and Set grows the set as they are discovered.
		finals: bitset.New(uint(len(a.labels))),
	}
	for col, sym := range d.alphabet {
		d.columns[sym] = col
	}

	seed := NewStateSet(len(a.labels))
	seed.Add(a.start)
	initial := seed.Freeze()

	ids := NewHashMap[int](WithCapacity(4))
	ids.Set(initial, d.addState(n, initial))
	worklist := []*FrozenStateSet{initial}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		from, _ := ids.Get(cur)

		for col := range d.alphabet {
			next := NewStateSet(len(a.labels))
			for _, s := range cur.Values() {
				if set := n.edges[s][col]; set != nil {
					next.Union(set)
				}
			}
			if next.Empty() {
				// Implicit reject, no entry recorded.
				continue
			}

			frozen := next.Freeze()
			to, ok := ids.Get(frozen)
			if !ok {
				to = d.addState(n, frozen)
				ids.Set(frozen, to)
				worklist = append(worklist, frozen)
			}
			d.edges[from][col] = to
		}
	}

	return d
}

// addState registers a newly discovered composite state and returns its id.
// The state is final iff it intersects the epsilon-free final set.
func (d *DFA) addState(n *NFA, set *FrozenStateSet) int {
	id := len(d.members)

	labels := make([]string, 0, set.Size())
	final := false
	for _, s := range set.Values() {
		labels = append(labels, n.a.labels[s])
		if n.finals.Test(uint(s)) {
			final = true
		}
	}
	d.members = append(d.members, Canonical(labels))

	row := make([]int, len(d.alphabet))
	for col := range row {
		row[col] = -1
	}
	d.edges = append(d.edges, row)

	if final {
		d.finals.Set(uint(id))
	}
	return id
}

// NumStates reports how many composite states were discovered.
func (d *DFA) NumStates() int {
	return len(d.members)
}

// Start returns the id of the start state, always 0.
func (d *DFA) Start() int {
	return 0
}

// Alphabet returns the alphabet in declared order.
func (d *DFA) Alphabet() []Symbol {
	return slices.Clone(d.alphabet)
}

// State returns the source-state labels making up composite state id, in
// canonical order.
func (d *DFA) State(id int) []string {
	return slices.Clone(d.members[id])
}

// Label returns the canonical display label of composite state id.
func (d *DFA) Label(id int) string {
	return Label(d.members[id])
}

// IsFinal reports whether composite state id is accepting.
func (d *DFA) IsFinal(id int) bool {
	return d.finals.Test(uint(id))
}

// Finals returns the accepting state ids in discovery order.
func (d *DFA) Finals() []int {
	out := make([]int, 0, d.finals.Count())
	for id, ok := d.finals.NextSet(0); ok; id, ok = d.finals.NextSet(id + 1) {
		out = append(out, int(id))
	}
	return out
}

// Transition returns the destination of (id, input). The second result is
// false when no transition is recorded for the pair, or when input is not an
// alphabet symbol; neither is an error.
func (d *DFA) Transition(id int, input Symbol) (int, bool) {
	col, ok := d.columns[input]
	if !ok {
		return 0, false
	}
	to := d.edges[id][col]
	if to < 0 {
		return 0, false
	}
	return to, true
}

// Complete returns a copy of d whose transition table is total: every
// unmapped (state, symbol) pair is routed to a fresh non-accepting sink
// state, named sink, that loops to itself on every symbol. When d is already
// total the copy carries no sink. d itself is unchanged.
//
// The caller must pick a sink label distinct from every source-state label;
// Complete does not check, and a colliding label renders identically to an
// existing singleton state.
func (d *DFA) Complete(sink string) *DFA {
	out := &DFA{
		alphabet: slices.Clone(d.alphabet),
		columns:  make(map[Symbol]int, len(d.columns)),
		members:  make([][]string, len(d.members)),
		edges:    make([][]int, len(d.edges)),
		finals:   d.finals.Clone(),
	}
	for sym, col := range d.columns {
		out.columns[sym] = col
	}
	for id := range d.members {
		out.members[id] = slices.Clone(d.members[id])
		out.edges[id] = slices.Clone(d.edges[id])
	}

	sinkID := -1
	for id := range d.members {
		for col := range out.alphabet {
			if out.edges[id][col] != -1 {
				continue
			}
			if sinkID == -1 {
				sinkID = len(out.members)
				out.members = append(out.members, []string{sink})
				row := make([]int, len(out.alphabet))
				for c := range row {
					row[c] = sinkID
				}
				out.edges = append(out.edges, row)
			}
			out.edges[id][col] = sinkID
		}
	}

	return out
}
