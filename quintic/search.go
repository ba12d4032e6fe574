package quintic

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
)

// Solution is one quintuple with A^5 + B^5 + C^5 + D^5 = E^5, bases sorted
// ascending. The struct is comparable so a map[Solution]bool works as a
// deduplication set.
type Solution struct {
	A, B, C, D, E uint64
}

// DecodeSolution recovers the five bases from four pair-sum powers and the
// target power, sorted ascending.
func DecodeSolution(p1, p2, q1, q2, e5 uint64) Solution {
	roots := [5]uint64{Root5(p1), Root5(p2), Root5(q1), Root5(q2), Root5(e5)}
	slices.Sort(roots[:])
	return Solution{roots[0], roots[1], roots[2], roots[3], roots[4]}
}

// Verify recomputes the identity in exact integer arithmetic.
func (s Solution) Verify() bool {
	return Pow5(s.A)+Pow5(s.B)+Pow5(s.C)+Pow5(s.D) == Pow5(s.E)
}

func (s Solution) String() string {
	return fmt.Sprintf("%d^5 + %d^5 + %d^5 + %d^5 = %d^5", s.A, s.B, s.C, s.D, s.E)
}

// Searcher enumerates solutions below a fixed bound on demand. All five
// variables are drawn from the same bound-limited table, e included, so a
// counterexample whose e exceeds the bound is out of reach even when its
// four left-hand bases are not. That restriction is deliberate and matches
// the empirical verification against the Lander-Parkin solution.
//
// Next picks up exactly where the previous call stopped, so taking the
// first solution costs only the index build plus a fraction of the scan.
// The same bound always reproduces the same sequence: keys are visited in
// ascending numeric order, e-candidates in ascending base order.
type Searcher struct {
	table []uint64
	index *pairIndex
	ki    int // position in index.keys
	ei    int // position in table, next e-candidate for keys[ki]
}

// NewSearcher builds the power table and pair-sum index for bound. A bound
// of 2 or less is not an error; the searcher just produces nothing. Bounds
// beyond MaxBound would overflow the uint64 pair sums and are rejected.
func NewSearcher(bound uint64) (*Searcher, error) {
	if bound > MaxBound {
		return nil, fmt.Errorf("bound %d exceeds %d, pair sums overflow uint64 (use WideSearcher)", bound, MaxBound)
	}
	table := PowerTable(bound)
	s := &Searcher{table: table, index: buildPairIndex(table)}
	s.resetE()
	return s, nil
}

// resetE positions ei at the first candidate with e^5 strictly above the
// current key; smaller ones cannot have a positive complement.
func (s *Searcher) resetE() {
	if s.ki < len(s.index.keys) {
		key := s.index.keys[s.ki]
		s.ei = sort.Search(len(s.table), func(i int) bool { return s.table[i] > key })
	}
}

// Next returns the next solution, or ok=false once every (pair, e)
// combination has been checked. Distinct pair splits of one underlying
// quintuple each produce an emission, so the same Solution value can appear
// more than once; callers wanting distinct quintuples deduplicate.
func (s *Searcher) Next() (Solution, bool) {
	for s.ki < len(s.index.keys) {
		key := s.index.keys[s.ki]
		for s.ei < len(s.table) {
			e5 := s.table[s.ei]
			s.ei++
			if rest, ok := s.index.sums[e5-key]; ok {
				pair := s.index.sums[key]
				return DecodeSolution(pair[0], pair[1], rest[0], rest[1], e5), true
			}
		}
		s.ki++
		s.resetE()
	}
	return Solution{}, false
}

// First returns the cheapest counterexample below bound, if any.
func First(bound uint64) (Solution, bool, error) {
	s, err := NewSearcher(bound)
	if err != nil {
		return Solution{}, false, err
	}
	sol, ok := s.Next()
	return sol, ok, nil
}

// All exhausts the search and returns the distinct solutions below bound,
// sorted. This is the expensive mode: roughly two orders of magnitude more
// work than First at bounds around 1000.
func All(bound uint64) ([]Solution, error) {
	s, err := NewSearcher(bound)
	if err != nil {
		return nil, err
	}
	seen := map[Solution]bool{}
	for {
		sol, ok := s.Next()
		if !ok {
			break
		}
		seen[sol] = true
	}
	return sortedSolutions(seen), nil
}

func sortedSolutions(seen map[Solution]bool) []Solution {
	out := make([]Solution, 0, len(seen))
	for sol := range seen {
		out = append(out, sol)
	}
	slices.SortFunc(out, CompareSolutions)
	return out
}

// CompareSolutions orders by E, then lexicographically by the remaining
// bases. Scaled multiples of one primitive solution sort together.
func CompareSolutions(a, b Solution) int {
	if c := cmp.Compare(a.E, b.E); c != 0 {
		return c
	}
	if c := cmp.Compare(a.A, b.A); c != 0 {
		return c
	}
	if c := cmp.Compare(a.B, b.B); c != 0 {
		return c
	}
	if c := cmp.Compare(a.C, b.C); c != 0 {
		return c
	}
	return cmp.Compare(a.D, b.D)
}
