package latin

import (
	"encoding/hex"
	"fmt"

	"github.com/sgtpuzzles/puzzlecore/hexdecode"
)

// EncodeGrid renders grid (order o, 0=blank) as a compact save string: two
// hex nibbles per cell, the low nibble the clue digit (0 if blank) and the
// high nibble 1 if the cell is a given (non-zero) clue, 0 otherwise. The
// given/blank flag is redundant with "digit==0" for a bare grid, but keeps
// the format self-describing if a caller later wants to encode a partially
// filled working grid (digit present, not a given) without losing which
// cells were the original clues. A digit must fit in one nibble, so
// EncodeGrid returns ErrInvalidGrid for any digit above 15.
func EncodeGrid(grid []int, o int) (string, error) {
	if len(grid) != o*o {
		return "", ErrInvalidGrid
	}
	buf := make([]byte, len(grid))
	for i, c := range grid {
		if c < 0 || c > o || c > 0x0f {
			return "", ErrInvalidGrid
		}
		given := byte(0)
		if c != 0 {
			given = 1
		}
		buf[i] = given<<4 | byte(c)
	}
	return hex.EncodeToString(buf), nil
}

// DecodeGrid parses a string produced by EncodeGrid back into an order-o
// grid. It returns an error from the hexdecode package on malformed hex,
// or ErrInvalidGrid if the decoded length or any digit does not match o.
func DecodeGrid(s string, o int) ([]int, error) {
	raw, err := hexdecode.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("latin: DecodeGrid: %w", err)
	}
	if len(raw) != o*o {
		return nil, ErrInvalidGrid
	}
	grid := make([]int, len(raw))
	for i, b := range raw {
		digit := int(b & 0x0f)
		if digit > o {
			return nil, ErrInvalidGrid
		}
		grid[i] = digit
	}
	return grid, nil
}
