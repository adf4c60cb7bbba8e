package loopfinder

// assignIndices is pass 2: preorder-number every vertex and fill in each
// vertex's subtree index range on the ascent.
func (st *State) assignIndices() {
	counter := 0
	for c := st.v[st.n].child; c != -1; c = st.v[c].sibling {
		counter = st.dfs2(c, counter)
	}
}

func (st *State) dfs2(u, counter int) int {
	st.v[u].index = counter
	counter++
	maxIdx := st.v[u].index
	for c := st.v[u].child; c != -1; c = st.v[c].sibling {
		counter = st.dfs2(c, counter)
		if st.v[c].maxindex > maxIdx {
			maxIdx = st.v[c].maxindex
		}
	}
	st.v[u].maxindex = maxIdx
	return counter
}
