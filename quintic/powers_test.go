package quintic

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPowerTable(t *testing.T) {
	table := PowerTable(10)
	assert.Len(t, table, 8)
	assert.Equal(t, uint64(32), table[0])
	assert.Equal(t, uint64(243), table[1])
	assert.Equal(t, uint64(59049), table[7])

	assert.Empty(t, PowerTable(0))
	assert.Empty(t, PowerTable(2))
	assert.Len(t, PowerTable(3), 1)
}

func TestPow5_AgainstDecimal(t *testing.T) {
	// independent check of the integer arithmetic at the magnitudes the
	// search uses, including the largest base a uint64 power can carry
	five := decimal.NewFromInt(5)
	for _, n := range []uint64{2, 3, 144, 720, 999, 6208, maxRoot} {
		want := decimal.NewFromInt(int64(n)).Pow(five)
		assert.Equal(t, want.String(), decimal.NewFromUint64(Pow5(n)).String(), "n=%d", n)
	}
}

func TestRoot5_ExactOnPerfectPowers(t *testing.T) {
	// zero off-by-one tolerance anywhere in the representable range
	for n := uint64(0); n <= maxRoot; n++ {
		assert.Equal(t, n, Root5(Pow5(n)), "n=%d", n)
	}
}

func TestRoot5_Floor(t *testing.T) {
	for _, n := range []uint64{2, 3, 144, 6208, maxRoot} {
		v := Pow5(n)
		assert.Equal(t, n-1, Root5(v-1), "below n=%d", n)
		assert.Equal(t, n, Root5(v+1), "above n=%d", n)
	}
	assert.Equal(t, uint64(0), Root5(0))
	assert.Equal(t, uint64(1), Root5(1))
	assert.Equal(t, uint64(1), Root5(31))
	assert.Equal(t, uint64(2), Root5(32))
	assert.Equal(t, uint64(maxRoot), Root5(math.MaxUint64))
}

func TestMaxBound_IsTight(t *testing.T) {
	// a pair sum at the largest accepted bound must fit in a uint64 and
	// the next bound up must not
	largest := Pow5(MaxBound - 1)
	assert.True(t, largest <= math.MaxUint64-largest)

	next := Pow5(MaxBound)
	assert.True(t, next > math.MaxUint64-next)
}
