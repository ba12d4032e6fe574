// Package quintic searches for counterexamples to Euler's sum-of-powers
// conjecture for fifth powers, i.e. integer solutions of
//
//	a^5 + b^5 + c^5 + d^5 = e^5
//
// below a given bound. The quaternary equation is reformulated as a sum of
// two pair-sums of fifth powers, which reduces the obvious O(m^4) scan to
// an O(m^3) scan over a precomputed pair-sum index.
package quintic

import "math"

// MaxBound is the largest bound the uint64 search can handle: the index
// keys are sums of two fifth powers, so 2*(bound-1)^5 must fit in 64 bits.
// Larger bounds need the UInt128-backed WideSearcher.
const MaxBound = 6209

// maxRoot is the largest n with n^5 representable in a uint64.
const maxRoot = 7131

// PowerTable returns the fifth powers of every base in [2, bound).
// Index i holds (i+2)^5. A bound of 2 or less yields an empty table.
func PowerTable(bound uint64) []uint64 {
	if bound <= 2 {
		return nil
	}
	table := make([]uint64, 0, bound-2)
	for n := uint64(2); n < bound; n++ {
		table = append(table, Pow5(n))
	}
	return table
}

// Pow5 returns n^5. The caller must keep n within MaxBound territory;
// values up to maxRoot are exact, anything larger would wrap.
func Pow5(n uint64) uint64 {
	n2 := n * n
	return n2 * n2 * n
}

// pow5Sat returns n^5, saturating at MaxUint64 when n^5 would not fit.
// Used by the root correction loop so that probing one base past the
// true root never wraps around.
func pow5Sat(n uint64) uint64 {
	if n > maxRoot {
		return math.MaxUint64
	}
	return Pow5(n)
}

// Root5 returns the integer fifth root of v, i.e. the largest n with
// n^5 <= v. The float guess from math.Pow is off by a few ulps at the
// magnitudes involved (up to ~1.8e19), so it is only a starting point;
// the exact answer comes from integer correction against pow5Sat.
func Root5(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	n := uint64(math.Pow(float64(v), 0.2))
	for n > 0 && pow5Sat(n) > v {
		n--
	}
	for pow5Sat(n+1) <= v {
		n++
	}
	return n
}
