package loopfinder

import "fmt"

// Neighbour enumerates a vertex's adjacency as a restartable iteration:
// next(u) with u>=0 (re)starts enumeration at vertex u and returns its
// first neighbour (or -1 if u has none); next(-1) returns the next
// neighbour of whichever vertex was most recently started, or -1 once
// that vertex's adjacency is exhausted. Callers must fully drain one
// vertex's enumeration before starting another.
type Neighbour func(u int) int

// vrec is one vertex's (or, at index n, the virtual root's) record.
type vrec struct {
	parent, child, sibling int
	componentRoot          int
	visited                bool
	index, maxindex        int
	minReach, maxReach     int
	bridge                 int // -1, or the other endpoint of this vertex's parent-edge bridge
}

// State is the working state of one Run call over an n-vertex graph. The
// zero value is not usable; construct with NewState.
type State struct {
	n                int
	v                []vrec // length n+1; index n is the virtual root
	nedges, nbridges int
	hasCycle         bool
}

// NewState allocates working state for an n-vertex graph. NewState panics
// if n is negative.
func NewState(n int) *State {
	if n < 0 {
		panic(fmt.Sprintf("loopfinder: NewState: negative size %d", n))
	}
	st := &State{n: n, v: make([]vrec, n+1)}
	st.reset()
	return st
}

func (st *State) reset() {
	for i := range st.v {
		st.v[i] = vrec{parent: -1, child: -1, sibling: -1, componentRoot: -1, bridge: -1}
	}
	st.nedges = 0
	st.nbridges = 0
	st.hasCycle = false
}

func (st *State) checkIndex(x int) {
	if x < 0 || x >= st.n {
		panic(fmt.Sprintf("loopfinder: index %d out of range [0,%d)", x, st.n))
	}
}

// collectNeighbours fully drains next's enumeration for u into a slice.
func collectNeighbours(next Neighbour, u int) []int {
	var out []int
	for w := next(u); w != -1; w = next(-1) {
		out = append(out, w)
	}
	return out
}

// AdjListNeighbour adapts a plain adjacency list (adj[u] lists u's
// neighbours) to the Neighbour callback shape.
func AdjListNeighbour(adj [][]int) Neighbour {
	var cur []int
	var pos int
	return func(u int) int {
		if u >= 0 {
			cur = adj[u]
			pos = 0
		}
		if pos >= len(cur) {
			return -1
		}
		w := cur[pos]
		pos++
		return w
	}
}
