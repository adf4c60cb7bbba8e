// Package loopfinder computes, for an arbitrary undirected graph given only
// as a restartable neighbour-enumeration callback, which edges lie on a
// cycle and which are bridges.
//
// What
//
//   - NewState(n): allocate working state for an n-vertex graph.
//   - Run(st, n, next): build a spanning forest, then classify every tree
//     edge as bridge or not. Returns whether the graph contains any cycle.
//   - IsLoopEdge(st, u, v) / IsBridge(st, u, v): per-edge queries, valid
//     after Run has completed.
//   - AdjListNeighbour(adj): adapts a plain [][]int adjacency list to the
//     Neighbour callback shape.
//
// Why
//
//   - Several puzzles need "does removing this edge disconnect the graph"
//     as a primitive (loop-drawing puzzles forbid closed loops until the
//     final move; area puzzles validate that a boundary has no stray
//     dead-ends). Tarjan's bridge-finding algorithm answers it for every
//     edge in one linear pass, rather than one connectivity check per edge.
//
// Algorithm — three passes, exactly mirroring classic Tarjan bridge-finding
// generalized to a forest (a virtual root at index n ties every connected
// component into one tree, so a single traversal handles disconnected
// input):
//
//   1. Build a rooted spanning forest via DFS over the callback, recording
//      each vertex's parent, first child, and next sibling, plus which
//      top-level tree (component) it belongs to. Distinct edges are
//      counted once each (by requiring the lower-numbered endpoint to do
//      the counting).
//   2. Preorder-number every vertex and fill in each vertex's subtree index
//      range [index, maxindex].
//   3. Walk the forest once more bottom-up, computing for every vertex the
//      min/max preorder index reachable via any graph edge out of its
//      subtree other than the tree edge to its own parent. The edge to a
//      vertex's parent is a bridge exactly when that reachable range stays
//      inside the vertex's own subtree range.
//
// Determinism: Run's result depends only on the sequence Neighbour
// produces, which depends only on its caller's adjacency representation;
// it makes no use of randomness.
//
// Complexity: O(V+E) time and O(V) memory, the callback overhead aside.
package loopfinder
