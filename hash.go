package automaton

// mix32 is the 32-bit murmur3 finalizer, used to spread state ids before
// they are summed into a set hash.
func mix32(v int) uint32 {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return k ^ (k >> 16)
}

// hashInts hashes a set of state ids. Summing the mixed ids keeps the hash
// independent of element order, so equal sets always hash equal.
func hashInts(values []int) uint64 {
	h := uint64(len(values))
	for _, v := range values {
		h += uint64(mix32(v))
	}
	return h
}
