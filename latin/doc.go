// Package latin provides a constraint-propagation solver and a randomized
// generator for Latin squares: o×o grids where each row and each column
// contains every digit in [1,o] exactly once. Unlike Sudoku, there is no
// box constraint.
//
// What
//
//   - Solve(grid, o, opts): run a layered deduction ladder (naked/hidden
//     single, naked/hidden subset elimination, a row/column X-wing-style
//     elimination, bivalue forcing chains, and finally backtracking search)
//     and report how hard the puzzle was along the way.
//   - Generate(o, rs) / GenerateRect(w, h, rs): build a random filled
//     square (or a w×h sub-rectangle of one) via the matching package,
//     extending one row at a time.
//   - EncodeGrid/DecodeGrid: a compact two-nibble-per-cell save format
//     built on the hexdecode package.
//
// Why
//
//   - Solve is how a generator checks a candidate puzzle has a unique
//     solution at or below a target difficulty before offering it to a
//     player; Generate is how the candidate grid is produced in the first
//     place.
//
// Representation
//
//	Each cell's remaining candidate digits are packed into one uint64, bit
//	(n-1) set meaning digit n is still possible in that cell — one word per
//	cell rather than a single flat bit array, which is the natural
//	generalization of a fixed-width bitmask-per-cell representation to an
//	arbitrary Latin-square order (as opposed to Sudoku's fixed base-9
//	bitmask). This caps supported order at 63.
//
// Determinism
//
//	Solve's deduction ladder always runs in the same fixed technique order
//	regardless of input, so the reported Difficulty and (when unique) the
//	solution are both deterministic for a given grid. Generate/GenerateRect
//	are deterministic in the same *prng.Source sense every other package in
//	this module is: same seed bytes, same generated square.
//
// Complexity
//
//	The deduction ladder is polynomial in o per pass; backtracking search is
//	worst-case exponential, which is exactly why Solve reports which rung of
//	the ladder a puzzle needed and Options.MaxDepth exists to bound it.
package latin
