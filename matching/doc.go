// Package matching computes maximum bipartite matchings with the
// Hopcroft-Karp algorithm, plus a König minimum-vertex-cover witness.
//
// What
//
//   - Graph{NL, NR, Adj}: a bipartite graph with NL left vertices, NR right
//     vertices, Adj[i] listing the right-vertex neighbours of left-vertex i.
//   - Match / MatchWithScratch: compute a maximum matching in
//     O((NL+NR+E)*sqrt(NL+NR)) via alternating BFS phases (find the
//     shortest-augmenting-path length) and DFS phases (augment along every
//     vertex-disjoint shortest path found).
//   - Witness: given a maximum matching, label every vertex 0 or 1 such
//     that the 0-labelled vertices on one side plus the 1-labelled vertices
//     on the other form a minimum vertex cover (König's theorem), and the
//     remaining vertices (1-labelled on the first side, 0-labelled on the
//     other) form a maximum independent set.
//
// Why
//
//   - The Latin-square generator (package latin) builds a row at a time by
//     matching columns to not-yet-used digits; a rectangle-divvy style
//     back-end can use the same matcher for region-balancing. Both need a
//     matcher that behaves identically given the same input and random
//     source, and Witness to certify why no larger matching exists.
//
// Randomization
//
//   - Match/MatchWithScratch take an optional *prng.Source. When non-nil,
//     each phase shuffles Graph.Adj in place (so repeated calls on the same
//     Graph value see progressively reshuffled adjacency — this is a
//     documented side effect, not a bug) and shuffles the order free
//     left-vertices are offered to the augmenting-path search, so that
//     distinct seeds can produce different maximum matchings of equal size.
//     A nil source gives the fully deterministic order Adj was built in.
//
// Scratch reuse
//
//   - MatchWithScratch takes a *Scratch obtained from NewScratch so that a
//     caller running many matches against graphs of the same shape (e.g.
//     one call per row while generating a Latin square) can avoid
//     reallocating the BFS/DFS working arrays each time.
//
// Complexity (V = NL+NR, E = total adjacency entries)
//
//   - Match: O(E*sqrt(V))
//   - Witness: O(V+E), one extra BFS over the finished matching.
package matching
