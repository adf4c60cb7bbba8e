package loopfinder

import "fmt"

// buildForest is pass 1: DFS over next, rooting every discovered component
// at the virtual root (index n) and counting distinct edges once each.
func (st *State) buildForest(next Neighbour) {
	root := st.n
	for start := 0; start < st.n; start++ {
		if st.v[start].visited {
			continue
		}
		st.attach(start, root)
		st.dfs1(start, next)
	}
}

func (st *State) attach(u, parent int) {
	st.v[u].visited = true
	st.v[u].parent = parent
	st.v[u].sibling = st.v[parent].child
	st.v[parent].child = u
	if parent == st.n {
		st.v[u].componentRoot = u
	} else {
		st.v[u].componentRoot = st.v[parent].componentRoot
	}
}

func (st *State) dfs1(u int, next Neighbour) {
	for _, w := range collectNeighbours(next, u) {
		if w == u {
			continue
		}
		if w < 0 || w >= st.n {
			panic(fmt.Sprintf("loopfinder: neighbour callback returned %d, want [0,%d)", w, st.n))
		}
		if u < w {
			st.nedges++
		}
		if !st.v[w].visited {
			st.attach(w, u)
			st.dfs1(w, next)
		}
	}
}
