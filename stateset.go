package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Hashable is a key usable in HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

var _ Hashable = &FrozenStateSet{}

// StateSet accumulates source-state ids while the successors of one DFA
// state under one symbol are unioned together. Freeze it to obtain the
// immutable key used for deduplication.
type StateSet struct {
	bits *bitset.BitSet
}

// NewStateSet returns an empty accumulator sized for numStates source states.
func NewStateSet(numStates int) *StateSet {
	return &StateSet{bits: bitset.New(uint(numStates))}
}

// Add puts a single state id into the set.
func (s *StateSet) Add(state int) {
	s.bits.Set(uint(state))
}

// Union adds every state in other to the set.
func (s *StateSet) Union(other *bitset.BitSet) {
	s.bits.InPlaceUnion(other)
}

// Empty reports whether the set holds no states.
func (s *StateSet) Empty() bool {
	return s.bits.Count() == 0
}

// Freeze snapshots the accumulated set into a FrozenStateSet.
func (s *StateSet) Freeze() *FrozenStateSet {
	return freeze(s.bits)
}

// FrozenStateSet is an immutable set of source-state ids with a precomputed
// hash. It is the identity of one DFA state during subset construction: two
// frozen sets are equal iff they hold the same ids, regardless of the order
// the worklist discovered them in.
type FrozenStateSet struct {
	values []int // ascending
	hash   uint64
}

func freeze(bits *bitset.BitSet) *FrozenStateSet {
	values := make([]int, 0, bits.Count())
	for i, ok := bits.NextSet(0); ok; i, ok = bits.NextSet(i + 1) {
		values = append(values, int(i))
	}
	return &FrozenStateSet{values: values, hash: hashInts(values)}
}

func (f *FrozenStateSet) Hash() uint64 {
	return f.hash
}

// Equals compares the underlying sets element by element; the hash alone is
// only a fast reject.
func (f *FrozenStateSet) Equals(other Hashable) bool {
	o, ok := other.(*FrozenStateSet)
	if !ok {
		return false
	}
	return f.hash == o.hash && slices.Equal(f.values, o.values)
}

// Values returns the member ids in ascending order. Callers must not
// modify the returned slice.
func (f *FrozenStateSet) Values() []int {
	return f.values
}

// Size returns the number of member ids.
func (f *FrozenStateSet) Size() int {
	return len(f.values)
}
