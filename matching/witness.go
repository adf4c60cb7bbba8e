package matching

// Witness computes the König minimum-vertex-cover / maximum-independent-set
// labelling for a completed maximum matching res of g.
//
// It returns labelL (length NL) and labelR (length NR) where a true entry
// means the vertex is reachable from some unmatched left-vertex by an
// alternating path (non-matching edge L->R, matching edge R->L) — the set Z
// in the standard König construction. This satisfies three guarantees:
//
//   - Every unmatched left-vertex is reachable (trivially, it is a BFS
//     root), and no unmatched right-vertex is reachable (else the matching
//     would not be maximum, since that would be an augmenting path).
//   - For every non-matching edge (u,v), if labelL[u] is true then
//     labelR[v] is true: BFS explores every edge out of a dequeued
//     left-vertex, not just edges to unvisited targets, so v is always
//     marked reached when u is.
//   - For every matching edge (u,v), if labelR[v] is true then labelL[u] is
//     true: BFS always continues from a newly reached right-vertex along
//     its unique matching edge to pull the partner left-vertex in.
//
// Together these mean {u : !labelL[u]} ∪ {v : labelR[v]} is a minimum
// vertex cover, and {u : labelL[u]} ∪ {v : !labelR[v]} is a maximum
// independent set, of size NL+NR-res.Size.
func Witness(g *Graph, res *Result) (labelL, labelR []bool) {
	labelL = make([]bool, g.NL)
	labelR = make([]bool, g.NR)

	queue := make([]int, 0, g.NL)
	for u := 0; u < g.NL; u++ {
		if res.ToR[u] == -1 {
			labelL[u] = true
			queue = append(queue, u)
		}
	}

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range g.Adj[u] {
			if labelR[v] {
				continue
			}
			labelR[v] = true
			if p := res.ToL[v]; p != -1 && !labelL[p] {
				labelL[p] = true
				queue = append(queue, p)
			}
		}
	}

	return labelL, labelR
}
