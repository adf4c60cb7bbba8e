// Package dsf provides a disjoint-set forest (union-find) over the dense
// index range [0,n), with subtree sizes, full path compression, and a
// deterministic tie-break on merges so that a fixed sequence of Merge calls
// produces bit-identical canonical labels on every run and every platform.
//
// What
//
//   - Init(n): (re)allocate the forest, each of the n elements its own
//     singleton class.
//   - Canonify(x): return the canonical representative of x's class,
//     compressing the path from x to the root as a side effect.
//   - Merge(x, y): union the classes containing x and y. The larger class's
//     root survives; ties go to the numerically smaller root.
//   - Size(x): number of elements in x's class.
//
// Why
//
//   - Connectivity queries ("are cells x and y in the same region") and
//     grouping operations come up throughout the puzzle-algorithm corpus
//     (grid regions, matching components, divvy's polyomino ownership) and
//     this is the one general-purpose primitive all of them share.
//
// Determinism
//
//	Merge's tie-break is total and size-based, not insertion-order based, so
//	Canonify's results do not depend on the order Merge happened to be
//	called with equal-size classes beyond the documented numeric tie-break.
//
// Complexity (n = number of elements)
//
//   - Init:     O(n)
//   - Canonify: amortized O(α(n)) with path compression
//   - Merge:    amortized O(α(n))
//   - Size:     O(α(n))
//
// Panics
//
//	All operations panic if given an index outside [0,n) — this is always a
//	programmer error (a caller-side bug), never a reportable runtime
//	condition, so there is no error return to check.
package dsf
