package prng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgtpuzzles/puzzlecore/prng"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := prng.New([]byte("seed-one"))
	b := prng.New([]byte("seed-one"))
	for i := 0; i < 64; i++ {
		require.Equal(t, a.Bits(32), b.Bits(32))
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := prng.New([]byte("seed-one"))
	b := prng.New([]byte("seed-two"))
	same := true
	for i := 0; i < 16; i++ {
		if a.Bits(32) != b.Bits(32) {
			same = false
			break
		}
	}
	assert.False(t, same, "distinct seeds should not produce an identical short prefix")
}

func TestBitsWidthIsRespected(t *testing.T) {
	s := prng.New([]byte("width"))
	for i := 0; i < 200; i++ {
		v := s.Bits(5)
		assert.Less(t, v, uint32(32))
	}
}

func TestBitsZeroIsZero(t *testing.T) {
	s := prng.New([]byte("zero"))
	assert.Equal(t, uint32(0), s.Bits(0))
}

func TestBitsPanicsAboveWordSize(t *testing.T) {
	s := prng.New([]byte("panic"))
	assert.Panics(t, func() { s.Bits(33) })
}

func TestUptoRangeAndPanic(t *testing.T) {
	s := prng.New([]byte("upto"))
	for i := 0; i < 500; i++ {
		v := s.Upto(7)
		assert.Less(t, v, uint32(7))
	}
	assert.Panics(t, func() { s.Upto(0) })
}

func TestUptoDistributionIsPlausible(t *testing.T) {
	s := prng.New([]byte("distribution"))
	var counts [4]int
	const trials = 20000
	for i := 0; i < trials; i++ {
		counts[s.Upto(4)]++
	}
	for _, c := range counts {
		// Loose sanity bound: each bucket should be within 25% of uniform.
		assert.InDelta(t, trials/4, c, float64(trials)/16)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	s := prng.New([]byte("shuffle"))
	xs := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	orig := append([]int(nil), xs...)
	prng.Shuffle(s, xs)
	assert.ElementsMatch(t, orig, xs)
}

func TestShuffleDeterministic(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5, 6, 7}
	b := append([]int(nil), a...)
	prng.Shuffle(prng.New([]byte("det")), a)
	prng.Shuffle(prng.New([]byte("det")), b)
	assert.Equal(t, a, b)
}

func TestShuffleEmptyAndSingleAreNoop(t *testing.T) {
	s := prng.New([]byte("tiny"))
	var empty []int
	assert.NotPanics(t, func() { prng.Shuffle(s, empty) })
	one := []int{42}
	prng.Shuffle(s, one)
	assert.Equal(t, []int{42}, one)
}
