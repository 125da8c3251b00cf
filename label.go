package automaton

import (
	"slices"
	"strings"
)

// Canonical returns the members of a composite state sorted lexicographically
// by label. Two composite states holding the same set canonicalize
// identically, whatever order their members were collected in. The input is
// not modified; the result is never nil, even for empty input.
func Canonical(members []string) []string {
	out := make([]string, len(members))
	copy(out, members)
	slices.Sort(out)
	return out
}

// Label renders a composite state for display: the canonical member order,
// joined with commas. Purely a presentation concern; set equality inside the
// construction never goes through labels.
func Label(members []string) string {
	return strings.Join(Canonical(members), ",")
}
