package automaton

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Symbol is a single input symbol of an automaton's alphabet.
type Symbol string

// Epsilon is the reserved symbol for the empty string. It may key a
// transition relation but is never a member of a declared alphabet.
const Epsilon Symbol = "ε"

var (
	// ErrInvalidState reports a state identifier outside the declared state set.
	ErrInvalidState = errors.New("automaton: undeclared state")

	// ErrInvalidSymbol reports the reserved epsilon value in a position where
	// only alphabet symbols are permitted, or a transition on an undeclared
	// symbol.
	ErrInvalidSymbol = errors.New("automaton: invalid symbol")
)

// ValidationError describes the first invariant violation found while
// validating a raw automaton description. It wraps ErrInvalidState or
// ErrInvalidSymbol, so errors.Is works against both.
type ValidationError struct {
	Ident  string // the offending state label or symbol
	reason string
	err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s: %q", e.err, e.reason, e.Ident)
}

func (e *ValidationError) Unwrap() error { return e.err }

// Transition is one row of a raw transition relation as supplied by a
// collaborator: every state in To is a destination of δ(From, Input).
// Input may be Epsilon.
type Transition struct {
	From  string
	Input Symbol
	To    []string
}

// Automaton is a validated ε-NFA: a fixed state set, an ordered alphabet, a
// start state, final states and a multi-valued transition relation. State
// labels are interned to dense int ids at construction; the relation is a
// matrix of destination bitsets with one column per alphabet symbol plus one
// for epsilon. Read-only after Validate.
type Automaton struct {
	labels   []string
	ids      map[string]int
	alphabet []Symbol
	columns  map[Symbol]int // symbol -> matrix column; Epsilon -> len(alphabet)
	start    int
	finals   *bitset.BitSet
	edges    [][]*bitset.BitSet // [state][column]; nil means no transition
}

// Validate checks a raw automaton description against the model invariants
// and interns it into an Automaton: states must be unique, the alphabet must
// not declare the reserved epsilon symbol, start/finals/transition endpoints
// must be declared states, and transitions may only use declared symbols or
// epsilon. The first violation is returned as a *ValidationError.
func Validate(states []string, alphabet []Symbol, start string, finals []string, transitions []Transition) (*Automaton, error) {
	a := &Automaton{
		labels:   make([]string, 0, len(states)),
		ids:      make(map[string]int, len(states)),
		alphabet: make([]Symbol, 0, len(alphabet)),
		columns:  make(map[Symbol]int, len(alphabet)+1),
		finals:   bitset.New(uint(len(states))),
	}

	for _, label := range states {
		if _, ok := a.ids[label]; ok {
			return nil, &ValidationError{label, "duplicate state", ErrInvalidState}
		}
		a.ids[label] = len(a.labels)
		a.labels = append(a.labels, label)
	}

	for _, sym := range alphabet {
		if sym == Epsilon {
			return nil, &ValidationError{string(sym), "alphabet declares the reserved epsilon symbol", ErrInvalidSymbol}
		}
		if _, ok := a.columns[sym]; ok {
			return nil, &ValidationError{string(sym), "duplicate alphabet symbol", ErrInvalidSymbol}
		}
		a.columns[sym] = len(a.alphabet)
		a.alphabet = append(a.alphabet, sym)
	}
	a.columns[Epsilon] = len(a.alphabet)

	var ok bool
	if a.start, ok = a.ids[start]; !ok {
		return nil, &ValidationError{start, "start state not declared", ErrInvalidState}
	}
	for _, f := range finals {
		id, ok := a.ids[f]
		if !ok {
			return nil, &ValidationError{f, "final state not declared", ErrInvalidState}
		}
		a.finals.Set(uint(id))
	}

	a.edges = make([][]*bitset.BitSet, len(a.labels))
	for s := range a.edges {
		a.edges[s] = make([]*bitset.BitSet, len(a.alphabet)+1)
	}
	for _, t := range transitions {
		from, ok := a.ids[t.From]
		if !ok {
			return nil, &ValidationError{t.From, "transition source not declared", ErrInvalidState}
		}
		col, ok := a.columns[t.Input]
		if !ok {
			return nil, &ValidationError{string(t.Input), "transition on undeclared symbol", ErrInvalidSymbol}
		}
		for _, to := range t.To {
			id, ok := a.ids[to]
			if !ok {
				return nil, &ValidationError{to, "transition destination not declared", ErrInvalidState}
			}
			if a.edges[from][col] == nil {
				a.edges[from][col] = bitset.New(uint(len(a.labels)))
			}
			a.edges[from][col].Set(uint(id))
		}
	}

	return a, nil
}

// NumStates reports how many states the automaton declares.
func (a *Automaton) NumStates() int {
	return len(a.labels)
}

// States returns the declared state labels in declaration order.
func (a *Automaton) States() []string {
	return slices.Clone(a.labels)
}

// Alphabet returns the declared alphabet in declared order, epsilon excluded.
func (a *Automaton) Alphabet() []Symbol {
	return slices.Clone(a.alphabet)
}

// Start returns the start state label.
func (a *Automaton) Start() string {
	return a.labels[a.start]
}

// Finals returns the final state labels in declaration order.
func (a *Automaton) Finals() []string {
	return a.members(a.finals)
}

// IsFinal reports whether state is a declared final state.
func (a *Automaton) IsFinal(state string) (bool, error) {
	id, err := a.stateID(state)
	if err != nil {
		return false, err
	}
	return a.finals.Test(uint(id)), nil
}

// Move returns the destination states of δ(state, input). Input may be
// Epsilon. An absent entry yields an empty result, not an error.
func (a *Automaton) Move(state string, input Symbol) ([]string, error) {
	id, err := a.stateID(state)
	if err != nil {
		return nil, err
	}
	col, ok := a.columns[input]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSymbol, input)
	}
	return a.members(a.edges[id][col]), nil
}

func (a *Automaton) stateID(label string) (int, error) {
	id, ok := a.ids[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidState, label)
	}
	return id, nil
}

// members resolves a state-id bitset to labels, in declaration order.
// Nil sets resolve to no labels.
func (a *Automaton) members(set *bitset.BitSet) []string {
	if set == nil {
		return nil
	}
	out := make([]string, 0, set.Count())
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		out = append(out, a.labels[s])
	}
	return out
}
