package quintic

import "sort"

// KeyCount returns the number of distinct pair sums in the index. Workers
// shard the key range [0, KeyCount) among themselves.
func (s *Searcher) KeyCount() int {
	return len(s.index.keys)
}

// Combinations returns the total number of (pair sum, e) combinations the
// full scan would test without any filtering.
func (s *Searcher) Combinations() uint64 {
	total := uint64(0)
	for _, key := range s.index.keys {
		first := sort.Search(len(s.table), func(i int) bool { return s.table[i] > key })
		total += uint64(len(s.table) - first)
	}
	return total
}

// ScanShard processes the keys in [lo, hi) and returns every solution found
// there plus the number of index probes performed. The index is read-only,
// so any number of shards can run concurrently over one Searcher. A non-nil
// accept predicate is consulted with the complement sum before the probe;
// rejected complements are guaranteed absent (a residue sieve, typically),
// so skipping them never loses a solution.
func (s *Searcher) ScanShard(lo, hi int, accept func(sum uint64) bool) ([]Solution, int) {
	var sols []Solution
	tests := 0
	for ki := lo; ki < hi && ki < len(s.index.keys); ki++ {
		key := s.index.keys[ki]
		first := sort.Search(len(s.table), func(i int) bool { return s.table[i] > key })
		for _, e5 := range s.table[first:] {
			rest := e5 - key
			if accept != nil && !accept(rest) {
				continue
			}
			tests++
			if pair2, ok := s.index.sums[rest]; ok {
				pair1 := s.index.sums[key]
				sols = append(sols, DecodeSolution(pair1[0], pair1[1], pair2[0], pair2[1], e5))
			}
		}
	}
	return sols, tests
}
