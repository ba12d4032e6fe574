package quintic

import "slices"

// pairIndex maps each achievable sum of two fifth powers (bases drawn from
// one power table, unordered, repetition allowed) to the pair of powers that
// produced it. Built in a single pass and read-only afterwards.
type pairIndex struct {
	sums map[uint64][2]uint64
	keys []uint64 // distinct sums, ascending
}

// buildPairIndex enumerates every combination-with-replacement of the power
// table, ascending in both positions. On a sum collision the later pair wins;
// the build order makes that deterministic. Collisions need two distinct
// representations of one value as a sum of two fifth powers, which does not
// occur at the bounds anyone runs this at, so only one pair is kept per key.
func buildPairIndex(table []uint64) *pairIndex {
	sums := make(map[uint64][2]uint64, len(table)*(len(table)+1)/2)
	for i, p := range table {
		for _, q := range table[i:] {
			sums[p+q] = [2]uint64{p, q}
		}
	}
	keys := make([]uint64, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return &pairIndex{sums: sums, keys: keys}
}
