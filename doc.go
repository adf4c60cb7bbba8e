// Package puzzlecore collects the reusable combinatorial algorithms shared by
// a suite of small logic-puzzle back-ends: a disjoint-set forest, a
// bipartite maximum-matching engine, a Latin-square constraint solver and
// generator, a rectangle-into-equal-polyominoes divider, and an undirected
// loop/bridge finder.
//
// None of these algorithms touch a screen, a save file, or per-puzzle game
// rules — they are pure functions of their inputs plus a caller-supplied
// random source, meant to be called from a puzzle's generation and solving
// code the way a midend calls into its back-ends.
//
// Subpackages:
//
//	dsf/        — disjoint-set forest with subtree sizes
//	prng/       — seed-deterministic 32-bit random source (sequential only; no seek)
//	matching/   — Hopcroft-Karp bipartite maximum matching + König witness
//	latin/      — Latin-square constraint solver and random generator
//	divvy/      — w×h rectangle partition into n equal simply-connected polyominoes
//	loopfinder/ — Tarjan-style bridge finder / loop-edge queries
//	colormix/   — perceptual colour blending for generated puzzle palettes
//	hexdecode/  — strict hex-digit decoding for compact save-ID encodings
//
// There are no other packages: test fixtures and independent cross-checks
// (K_n,n graphs, cycles, flood fills, a dsf-based cycle oracle) are built
// inline in each package's own _test.go files.
//
// See SPEC_FULL.md and DESIGN.md at the repository root for the full
// functional specification and the grounding ledger explaining where each
// package's design comes from.
package puzzlecore
