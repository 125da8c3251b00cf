package automaton

// Conversion is the full output of Convert: the per-state epsilon closures,
// the epsilon-free NFA and the equivalent DFA. Closures and NFA are exposed
// as intermediate artifacts for display; the DFA is the end result.
type Conversion struct {
	Closures *ClosureTable
	NFA      *NFA
	DFA      *DFA
}

// Convert runs the whole pipeline on a validated automaton: epsilon closure
// computation, epsilon elimination, then subset construction. Pure and
// synchronous; converting the same automaton twice yields identical results,
// discovery order included.
func Convert(a *Automaton) (*Conversion, error) {
	closures, nfa, err := Eliminate(a)
	if err != nil {
		return nil, err
	}
	return &Conversion{
		Closures: closures,
		NFA:      nfa,
		DFA:      Determinize(nfa),
	}, nil
}
