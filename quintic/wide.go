package quintic

import (
	"slices"

	"FifthPowers/mp"
)

// WideSearcher is the Searcher for bounds past MaxBound, with every power
// and pair sum held in 128 bits. Same index shape, same ascending key
// order, same lazy Next contract; only the arithmetic is wider, so it runs
// a small constant factor slower than the uint64 path.
type WideSearcher struct {
	bound uint64
	table []mp.UInt128
	sums  map[mp.UInt128][2]mp.UInt128
	keys  []mp.UInt128
	ki    int
	ei    int
}

// NewWideSearcher builds the 128-bit power table and pair-sum index for
// bound. No overflow ceiling applies at any bound anyone can wait out:
// 128 bits hold pair sums for bounds up to tens of millions.
func NewWideSearcher(bound uint64) *WideSearcher {
	var table []mp.UInt128
	for n := uint64(2); n < bound; n++ {
		table = append(table, mp.Pow5(n))
	}
	sums := make(map[mp.UInt128][2]mp.UInt128, len(table)*(len(table)+1)/2)
	for i, p := range table {
		for _, q := range table[i:] {
			sums[p.Add(q)] = [2]mp.UInt128{p, q}
		}
	}
	keys := make([]mp.UInt128, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, mp.UInt128.Cmp)
	s := &WideSearcher{bound: bound, table: table, sums: sums, keys: keys}
	s.resetE()
	return s
}

func (s *WideSearcher) resetE() {
	if s.ki < len(s.keys) {
		key := s.keys[s.ki]
		s.ei, _ = slices.BinarySearchFunc(s.table, key, mp.UInt128.Cmp)
		// step past e^5 == key; the complement must be positive
		for s.ei < len(s.table) && s.table[s.ei].Cmp(key) <= 0 {
			s.ei++
		}
	}
}

// Next returns the next solution, or ok=false when the scan is exhausted.
func (s *WideSearcher) Next() (Solution, bool) {
	for s.ki < len(s.keys) {
		key := s.keys[s.ki]
		for s.ei < len(s.table) {
			e5 := s.table[s.ei]
			s.ei++
			if rest, ok := s.sums[e5.Sub(key)]; ok {
				pair := s.sums[key]
				return s.decode(pair, rest, e5), true
			}
		}
		s.ki++
		s.resetE()
	}
	return Solution{}, false
}

func (s *WideSearcher) decode(pair, rest [2]mp.UInt128, e5 mp.UInt128) Solution {
	roots := [5]uint64{
		s.root5(pair[0]), s.root5(pair[1]),
		s.root5(rest[0]), s.root5(rest[1]),
		s.root5(e5),
	}
	slices.Sort(roots[:])
	return Solution{roots[0], roots[1], roots[2], roots[3], roots[4]}
}

// root5 inverts mp.Pow5 by binary search over the base range. Every value
// decoded here came out of the power table, so the root is always exact.
func (s *WideSearcher) root5(v mp.UInt128) uint64 {
	lo, hi := uint64(2), s.bound // invariant: root in [lo, hi)
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if mp.Pow5(mid).Cmp(v) > 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}
