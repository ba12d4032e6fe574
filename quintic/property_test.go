package quintic

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property-based checks of the algebraic facts the search depends on.
func TestArithmeticInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("fifth root inverts fifth power", prop.ForAll(
		func(n uint64) bool {
			return Root5(Pow5(n)) == n
		},
		gen.UInt64Range(0, maxRoot),
	))

	properties.Property("fifth root rounds down between powers", prop.ForAll(
		func(n uint64) bool {
			return Root5(Pow5(n)+1) == n && Root5(Pow5(n)-1) == n-1
		},
		gen.UInt64Range(2, maxRoot),
	))

	properties.Property("decoded tuples are sorted and preserve the sum", prop.ForAll(
		func(a, b, c, d uint64) bool {
			e5 := Pow5(a) + Pow5(b) + Pow5(c) + Pow5(d) // not a power, only a sum to preserve
			s := DecodeSolution(Pow5(a), Pow5(b), Pow5(c), Pow5(d), e5)
			sorted := s.A <= s.B && s.B <= s.C && s.C <= s.D
			return sorted && Pow5(s.A)+Pow5(s.B)+Pow5(s.C)+Pow5(s.D) == e5
		},
		gen.UInt64Range(2, 5000), // 4*5000^5 still fits a uint64
		gen.UInt64Range(2, 5000),
		gen.UInt64Range(2, 5000),
		gen.UInt64Range(2, 5000),
	))

	properties.Property("solutions scale by any integer factor", prop.ForAll(
		func(n uint64) bool {
			s := Solution{n * 27, n * 84, n * 110, n * 133, n * 144}
			return s.Verify()
		},
		gen.UInt64Range(1, 42), // 42*144 is still inside uint64 fifth powers
	))

	properties.TestingRun(t)
}
