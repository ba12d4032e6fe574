package mp

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUInt128_AddSmall(t *testing.T) {
	x := uint64(rand.Uint32())
	a := UInt128{}
	a.AddSmall(x)
	for i := 1; i < 4; i++ {
		assert.Equal(t, uint64(0), a.content[i])
	}
	assert.Equal(t, x, a.content[0])

	u0 := uint64(rand.Uint32()) | (1 << 31)
	u1 := uint64(math.MaxUint32)
	u2 := uint64(rand.Uint32()) | (1 << 31)
	a = UInt128{[4]uint64{u0, u1, u2}}

	x |= 1 << 31

	a.AddSmall(x)
	assert.Equal(t, math.MaxUint32&(u0+x), a.content[0])
	carry := (u0 + x) >> 32
	assert.Equal(t, math.MaxUint32&(u1+carry), a.content[1])
	carry = (u1 + carry) >> 32
	assert.Equal(t, math.MaxUint32&(u2+carry), a.content[2])
	carry = (u2 + carry) >> 32
	assert.Equal(t, math.MaxUint32&carry, a.content[3])
}

func TestUInt128_MulSmall(t *testing.T) {
	x := uint64(rand.Uint32())
	u0 := uint64(rand.Uint32())
	u1 := uint64(rand.Uint32())
	u2 := uint64(rand.Uint32())
	a := UInt128{[4]uint64{u0, u1, u2}}

	a.MulSmall(x)
	t0 := x * u0
	assert.Equal(t, t0&math.MaxUint32, a.content[0])
	t1 := (t0 >> 32) + x*u1
	assert.Equal(t, t1&math.MaxUint32, a.content[1])
	t2 := (t1 >> 32) + x*u2
	assert.Equal(t, t2&math.MaxUint32, a.content[2])
}

func TestUInt128_DivModSmall(t *testing.T) {
	a := UInt128{}
	a.AddSmall(uint64(5003))
	n := a.DivModSmall(1000)
	assert.Equal(t, uint64(3), n)
	assert.Equal(t, uint64(5), a.content[0])

	// divide then multiply-and-add must restore the original
	for i := 0; i < 100; i++ {
		for j := 0; j < 3; j++ {
			a.content[j] = uint64(rand.Uint32())
		}
		a.content[3] = 0
		b := uint64(rand.Uint32()) | 1

		ax := a
		r := a.DivModSmall(b)
		assert.True(t, r < b)
		a.MulSmall(b)
		a.AddSmall(r)
		assert.True(t, ax.Cmp(a) == 0)
	}
}

func TestUInt128_AddSub(t *testing.T) {
	for i := 0; i < 100; i++ {
		a := UInt128{}
		b := UInt128{}
		for j := 0; j < 3; j++ {
			a.content[j] = uint64(rand.Uint32())
			b.content[j] = uint64(rand.Uint32())
		}
		sum := a.Add(b)
		assert.Equal(t, 0, sum.Sub(b).Cmp(a))
		assert.Equal(t, 0, sum.Sub(a).Cmp(b))
		assert.True(t, sum.Cmp(a) >= 0)
		assert.True(t, sum.Cmp(b) >= 0)
	}
}

func TestUInt128_Uint64RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, math.MaxUint32, math.MaxUint32 + 1, math.MaxUint64} {
		got, exact := FromUint64(v).Uint64()
		assert.True(t, exact)
		assert.Equal(t, v, got)
	}

	big := FromUint64(math.MaxUint64)
	big.MulSmall(2)
	_, exact := big.Uint64()
	assert.False(t, exact)
}

func TestUInt128_Pow5(t *testing.T) {
	v, exact := Pow5(144).Uint64()
	assert.True(t, exact)
	assert.Equal(t, uint64(61917364224), v)

	// 100000^5 = 10^25 needs more than 64 bits
	big := Pow5(100_000)
	_, exact = big.Uint64()
	assert.False(t, exact)
	assert.Equal(t, "10000000000000000000000000", big.String())
}

func TestUInt128_StringParse(t *testing.T) {
	assert.Equal(t, "0", UInt128{}.String())
	assert.Equal(t, "61917364224", Pow5(144).String())

	for _, s := range []string{
		"1",
		"4294967296",
		"18446744073709551616",
		"340282366920938463463374607431768211455", // 2^128 - 1
	} {
		v, err := ParseUint128(s)
		assert.NoError(t, err)
		assert.Equal(t, s, v.String())
	}

	_, err := ParseUint128("12x3")
	assert.Error(t, err)
	_, err = ParseUint128("")
	assert.Error(t, err)
}

func TestUInt128_Cmp(t *testing.T) {
	small := FromUint64(7)
	large := Pow5(99_999)
	assert.Equal(t, -1, small.Cmp(large))
	assert.Equal(t, 1, large.Cmp(small))
	assert.Equal(t, 0, large.Cmp(large))
}
