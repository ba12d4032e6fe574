// Package mp provides a 128-bit unsigned integer wide enough to hold a sum
// of two fifth powers at bounds far beyond what uint64 can carry. Values are
// plain structs with copy semantics, stack-allocatable, and comparable, so
// they work directly as map keys.
package mp

import (
	"math"
	"strconv"
)

// UInt128 is a 128-bit integer stored as four 32-bit limbs, little-endian,
// each limb kept normalized in the low half of a uint64 so that limb
// products and carries fit a single machine word.
type UInt128 struct {
	content [4]uint64
}

// FromUint64 returns the UInt128 with value b.
func FromUint64(b uint64) UInt128 {
	return UInt128{[4]uint64{b & math.MaxUint32, b >> 32}}
}

// Uint64 returns the low 64 bits and whether they are the whole value.
func (a UInt128) Uint64() (uint64, bool) {
	return a.content[0] | a.content[1]<<32, a.content[2] == 0 && a.content[3] == 0
}

// IsZero reports whether a == 0.
func (a UInt128) IsZero() bool {
	return a.content == [4]uint64{}
}

// Cmp returns -1, 0 or 1 if a < b, a == b or a > b, respectively.
func (a UInt128) Cmp(b UInt128) int {
	for i := len(a.content) - 1; i >= 0; i-- {
		if a.content[i] > b.content[i] {
			return 1
		}
		if a.content[i] < b.content[i] {
			return -1
		}
	}
	return 0
}

// Add returns a + b. Overflow past 128 bits panics; the search sizes its
// values so that sums always fit.
func (a UInt128) Add(b UInt128) UInt128 {
	r := UInt128{}
	carry := uint64(0)
	for i := 0; i < len(a.content); i++ {
		u := a.content[i] + b.content[i] + carry
		r.content[i] = u & math.MaxUint32
		carry = u >> 32
	}
	if carry != 0 {
		panic("overflow on 128-bit add")
	}
	return r
}

// Sub returns a - b. The caller must ensure a >= b; underflow panics.
func (a UInt128) Sub(b UInt128) UInt128 {
	r := UInt128{}
	borrow := uint64(0)
	for i := 0; i < len(a.content); i++ {
		u := a.content[i] - b.content[i] - borrow
		r.content[i] = u & math.MaxUint32
		borrow = (u >> 32) & 1
	}
	if borrow != 0 {
		panic("underflow on 128-bit sub")
	}
	return r
}

// MulSmall destructively multiplies a large value by a small one. The
// destination must be normalized and will be normalized again upon return.
// The multiplier is limited to [0..math.MaxUint32]; the product must fit
// in 128 bits or the call panics.
func (a *UInt128) MulSmall(b uint64) {
	if b > math.MaxUint32 {
		panic("b > math.MaxUint32")
	}
	carry := uint64(0)
	for i := 0; i < len(a.content); i++ {
		tmp := a.content[i]*b + carry
		a.content[i] = tmp & math.MaxUint32
		carry = tmp >> 32
	}
	if carry != 0 {
		panic("overflow on small multiply")
	}
}

// AddSmall adds a small quantity to a larger value which is destructively
// modified. The addend is limited to [0..math.MaxUint32].
func (a *UInt128) AddSmall(b uint64) {
	if b > math.MaxUint32 {
		panic("b > math.MaxUint32")
	}
	for i := 0; b != 0 && i < len(a.content); i++ {
		u := a.content[i] + b
		a.content[i] = u & math.MaxUint32
		b = u >> 32
	}
	if b != 0 {
		panic("overflow on small add")
	}
}

// DivModSmall divides a large value by a small one in place and returns
// the remainder. The divisor should be in (0..math.MaxUint32] and the
// destination normalized on entry.
func (a *UInt128) DivModSmall(b uint64) uint64 {
	rem := uint64(0)
	for i := len(a.content) - 1; i >= 0; i-- {
		u := rem<<32 + a.content[i]
		a.content[i] = u / b
		rem = u % b
	}
	return rem
}

// Pow5 returns n^5 as a 128-bit value. n is limited to math.MaxUint32,
// which leaves headroom: 128 bits hold fifth powers of bases up to ~48e6.
func Pow5(n uint64) UInt128 {
	r := FromUint64(1)
	for i := 0; i < 5; i++ {
		r.MulSmall(n)
	}
	return r
}

// String renders the value in decimal via repeated small division.
func (a UInt128) String() string {
	if a.IsZero() {
		return "0"
	}
	digits := make([]byte, 0, 40)
	for z := a; !z.IsZero(); {
		digits = append(digits, byte('0'+z.DivModSmall(10)))
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// ParseUint128 reads a decimal string, for round-trip tests and CLI input.
func ParseUint128(s string) (UInt128, error) {
	if s == "" {
		return UInt128{}, strconv.ErrSyntax
	}
	r := UInt128{}
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return UInt128{}, strconv.ErrSyntax
		}
		r.MulSmall(10)
		r.AddSmall(uint64(c - '0'))
	}
	return r, nil
}
