package latin

import (
	"github.com/sgtpuzzles/puzzlecore/matching"
	"github.com/sgtpuzzles/puzzlecore/prng"
)

// Generate builds a random, fully filled Latin square of order o using rs.
// It extends the square one row at a time: row r's columns are matched
// against the digits not yet used in any column so far, which the
// Latin-rectangle-extension theorem guarantees always has a perfect
// matching, so this construction never needs to backtrack.
//
// Generate panics if o is outside [1,64) (the same bound NewState enforces).
func Generate(o int, rs *prng.Source) []int {
	if o < 1 || o >= 64 {
		panic("latin: Generate: order out of range")
	}
	grid := make([]int, o*o)
	usedInCol := make([]uint64, o) // usedInCol[c] has bit (n-1) set if digit n already used in column c

	for r := 0; r < o; r++ {
		g := &matching.Graph{NL: o, NR: o, Adj: make([][]int, o)}
		for c := 0; c < o; c++ {
			avail := fullMask(o) &^ usedInCol[c]
			g.Adj[c] = bitsToZeroBasedIndices(avail)
		}
		res := g.Match(rs)
		for c := 0; c < o; c++ {
			n := res.ToR[c] + 1 // res.ToR[c] is the 0-based digit index matched to column c
			grid[r*o+c] = n
			usedInCol[c] |= 1 << uint(n-1)
		}
	}
	return grid
}

// bitsToZeroBasedIndices converts a digit bitmask (bit n-1 = digit n) into
// the 0-based digit indices matching's Graph adjacency expects.
func bitsToZeroBasedIndices(mask uint64) []int {
	out := make([]int, 0, popcount(mask))
	for _, n := range bitsOf(mask) {
		out = append(out, n-1)
	}
	return out
}

// GenerateRect builds a random w×h Latin rectangle by generating a full
// order-o square, where o=max(w,h), and keeping its top-left w×h
// sub-rectangle — a valid extraction because any prefix of rows, and any
// prefix of columns within those rows, of a Latin square is itself a Latin
// rectangle. GenerateRect panics if max(w,h) is outside [1,64).
func GenerateRect(w, h int, rs *prng.Source) []int {
	o := w
	if h > o {
		o = h
	}
	square := Generate(o, rs)
	rect := make([]int, w*h)
	for r := 0; r < h; r++ {
		copy(rect[r*w:(r+1)*w], square[r*o:r*o+w])
	}
	return rect
}
