package loopfinder

// findBridges is pass 3: bottom-up, compute each vertex's min/max reachable
// preorder index (over every graph edge out of its subtree except the tree
// edge to its own parent) and test the bridge condition on the way back up.
func (st *State) findBridges(next Neighbour) {
	for c := st.v[st.n].child; c != -1; c = st.v[c].sibling {
		st.dfs3(c, next)
	}
}

func (st *State) dfs3(u int, next Neighbour) (minR, maxR int) {
	minR, maxR = st.v[u].index, st.v[u].index
	parent := st.v[u].parent
	for _, w := range collectNeighbours(next, u) {
		if w == u || w == parent {
			continue
		}
		if idx := st.v[w].index; idx < minR {
			minR = idx
		}
		if idx := st.v[w].index; idx > maxR {
			maxR = idx
		}
	}
	for c := st.v[u].child; c != -1; c = st.v[c].sibling {
		cMin, cMax := st.dfs3(c, next)
		if cMin < minR {
			minR = cMin
		}
		if cMax > maxR {
			maxR = cMax
		}
	}
	st.v[u].minReach, st.v[u].maxReach = minR, maxR

	if parent != st.n && minR >= st.v[u].index && maxR <= st.v[u].maxindex {
		st.v[u].bridge = parent
		st.nbridges++
	}
	return minR, maxR
}

// Run builds the spanning forest and classifies every edge, returning true
// iff the graph contains at least one cycle. Run panics if n does not match
// the size st was constructed with, or if next ever reports a neighbour
// outside [0,n).
func Run(st *State, n int, next Neighbour) bool {
	if st.n != n {
		panic("loopfinder: Run: n does not match the State's size")
	}
	st.reset()
	st.buildForest(next)
	st.assignIndices()
	st.findBridges(next)
	st.hasCycle = st.nbridges < st.nedges
	return st.hasCycle
}

// IsLoopEdge reports whether the u-v edge lies on some cycle, i.e. is not a
// bridge. Valid only after Run has completed; panics if u or v is out of
// [0,n).
func IsLoopEdge(st *State, u, v int) bool {
	st.checkIndex(u)
	st.checkIndex(v)
	return !(st.v[u].bridge == v || st.v[v].bridge == u)
}

// IsBridge reports whether the u-v edge is a bridge and, if so, the number
// of vertices on each side of the cut it induces within its connected
// component (uSide includes u, vSide includes v). Valid only after Run has
// completed; panics if u or v is out of [0,n).
func IsBridge(st *State, u, v int) (isBridge bool, uSide, vSide int) {
	st.checkIndex(u)
	st.checkIndex(v)

	var child int
	switch {
	case st.v[u].bridge == v:
		child = u
	case st.v[v].bridge == u:
		child = v
	default:
		return false, 0, 0
	}

	childSize := st.v[child].maxindex - st.v[child].index + 1
	comp := st.v[child].componentRoot
	totalSize := st.v[comp].maxindex - st.v[comp].index + 1
	restSize := totalSize - childSize

	if child == u {
		return true, childSize, restSize
	}
	return true, restSize, childSize
}
