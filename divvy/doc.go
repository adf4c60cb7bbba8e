// Package divvy partitions a w×h rectangle of cells into k equal-size,
// four-connected, simply-connected regions ("polyominoes" of size w*h/k).
//
// What
//
//   - DivvyRectangle(w, h, k, rs): build such a partition at random, using
//     rs to drive every choice so the same seed reproduces the same
//     partition. The result is a *dsf.Dsf over the w*h cells (indexed
//     row-major, idx = y*w+x): two cells share a canonical root exactly
//     when they belong to the same region.
//   - PresetStats(w, h, k, trials, rs): measure the mean number of generation
//     attempts DivvyRectangle needs for a given size, as a regression guard
//     against silent retry-rate regressions.
//
// Why
//
//   - Region-based puzzles (jigsaw-style Latin squares, Galaxies-style
//     area puzzles) all need "chop this grid into n blobs of equal size"
//     as a generation primitive, independent of what the blobs will mean
//     to the specific puzzle.
//
// Algorithm
//
//   - Seed k regions and grow them via a multi-source BFS flood fill with
//     per-level shuffling (so the regions start out roughly Voronoi-shaped
//     but with randomized boundaries).
//   - Repeatedly transfer boundary cells from over-sized regions to
//     under-sized neighbours, accepting a transfer only when a cyclic
//     8-neighbour transition-count test confirms it does not disconnect
//     the donor region or create a hole in the receiver. When no single
//     adjacent transfer is safe, search a short chain of such transfers
//     (a BFS over the space of legal single-cell moves) that nets the same
//     effect.
//   - If balancing gets stuck, the whole attempt is discarded and retried
//     from a fresh flood fill, up to a bounded number of attempts (500);
//     the retry is internal, but if every one of those attempts fails,
//     DivvyRectangle panics instead of returning a partition.
//   - Before returning, the partition is independently re-verified: a
//     fresh dsf.Dsf is built from 4-adjacency among same-owner cells, and
//     the attempt is rejected (triggering a retry) unless every region
//     forms exactly one connected component of the expected size.
//
// Complexity
//
//	O(w*h) per attempt for the flood fill and transition tests, times the
//	(small, in-practice bounded) number of attempts and balancing rounds.
package divvy
