// Package matching implements Hopcroft-Karp bipartite maximum matching.
package matching

import (
	"fmt"
	"math"

	"github.com/sgtpuzzles/puzzlecore/prng"
)

// Graph is a bipartite graph with NL left vertices (indices [0,NL)) and NR
// right vertices (indices [0,NR)). Adj[i] lists the right-vertex neighbours
// of left-vertex i; it may contain duplicates or be unsorted without
// affecting correctness, only performance.
//
// Adj may be permuted in place by Match/MatchWithScratch when called with a
// non-nil random source — see the package doc for why.
type Graph struct {
	NL, NR int
	Adj    [][]int
}

// Result is the outcome of a maximum-matching computation.
type Result struct {
	// ToL[v] is the left-vertex index matched to right-vertex v, or -1 if v
	// is unmatched. len(ToL) == NR.
	ToL []int
	// ToR[u] is the right-vertex index matched to left-vertex u, or -1 if u
	// is unmatched. len(ToR) == NL.
	ToR []int
	// Size is the number of matched pairs.
	Size int
}

// Scratch holds reusable working storage for repeated matches against
// graphs of a fixed shape.
type Scratch struct {
	distL []int
	iter  []int
	queue []int
}

const infDist = math.MaxInt32

// NewScratch allocates a Scratch sized for a graph with nL left vertices
// and nR right vertices (nR is currently unused by the scratch layout but
// kept in the signature so future BFS/DFS work that also needs right-side
// scratch storage does not change this function's signature).
func NewScratch(nL, nR int) *Scratch {
	_ = nR
	return &Scratch{
		distL: make([]int, nL),
		iter:  make([]int, nL),
		queue: make([]int, 0, nL),
	}
}

func (sc *Scratch) reset(nL int) {
	if cap(sc.distL) < nL {
		sc.distL = make([]int, nL)
		sc.iter = make([]int, nL)
	} else {
		sc.distL = sc.distL[:nL]
		sc.iter = sc.iter[:nL]
	}
	sc.queue = sc.queue[:0]
}

func validate(g *Graph) {
	if g.NL < 0 || g.NR < 0 {
		panic(fmt.Sprintf("matching: negative dimensions NL=%d NR=%d", g.NL, g.NR))
	}
	if len(g.Adj) != g.NL {
		panic(fmt.Sprintf("matching: len(Adj)=%d does not match NL=%d", len(g.Adj), g.NL))
	}
	for u, nbrs := range g.Adj {
		for _, v := range nbrs {
			if v < 0 || v >= g.NR {
				panic(fmt.Sprintf("matching: Adj[%d] contains out-of-range right-vertex %d (NR=%d)", u, v, g.NR))
			}
		}
	}
}

// Match computes a maximum matching of g, allocating its own Scratch. See
// MatchWithScratch for the randomization contract.
func (g *Graph) Match(rs *prng.Source) *Result {
	return g.MatchWithScratch(NewScratch(g.NL, g.NR), rs)
}

// MatchWithScratch computes a maximum matching of g using sc for working
// storage. When rs is non-nil, each phase's free-vertex order and g.Adj are
// shuffled in place, so the returned matching may differ between calls
// across distinct random sources even though it is always of maximum size.
func (g *Graph) MatchWithScratch(sc *Scratch, rs *prng.Source) *Result {
	validate(g)
	sc.reset(g.NL)

	partnerOfR := make([]int, g.NR) // L-index matched to each R-vertex, or -1
	partnerOfL := make([]int, g.NL) // R-index matched to each L-vertex, or -1
	for i := range partnerOfR {
		partnerOfR[i] = -1
	}
	for i := range partnerOfL {
		partnerOfL[i] = -1
	}

	size := 0
	for {
		if rs != nil {
			for u := range g.Adj {
				prng.Shuffle(rs, g.Adj[u])
			}
		}
		if !g.bfsLayer(sc, partnerOfR, partnerOfL) {
			break
		}
		for i := range sc.iter {
			sc.iter[i] = 0
		}

		free := make([]int, 0, g.NL)
		for u := 0; u < g.NL; u++ {
			if partnerOfL[u] == -1 {
				free = append(free, u)
			}
		}
		if rs != nil {
			prng.Shuffle(rs, free)
		}
		for _, u := range free {
			if partnerOfL[u] == -1 && g.dfsAugment(sc, u, partnerOfR, partnerOfL) {
				size++
			}
		}
	}

	return &Result{ToL: partnerOfR, ToR: partnerOfL, Size: size}
}

// bfsLayer runs one Hopcroft-Karp BFS phase, computing sc.distL for every
// free left-vertex reachable along an alternating path, and reports whether
// at least one augmenting path exists this phase.
func (g *Graph) bfsLayer(sc *Scratch, partnerOfR, partnerOfL []int) bool {
	for i := range sc.distL {
		sc.distL[i] = infDist
	}
	sc.queue = sc.queue[:0]
	for u := 0; u < g.NL; u++ {
		if partnerOfL[u] == -1 {
			sc.distL[u] = 0
			sc.queue = append(sc.queue, u)
		}
	}

	distNil := infDist
	for head := 0; head < len(sc.queue); head++ {
		u := sc.queue[head]
		if sc.distL[u] >= distNil {
			continue
		}
		for _, v := range g.Adj[u] {
			w := partnerOfR[v]
			if w == -1 {
				if distNil == infDist {
					distNil = sc.distL[u] + 1
				}
			} else if sc.distL[w] == infDist {
				sc.distL[w] = sc.distL[u] + 1
				sc.queue = append(sc.queue, w)
			}
		}
	}
	return distNil != infDist
}

// dfsAugment looks for a shortest augmenting path starting at free
// left-vertex u, using sc.distL to restrict the search to the current
// phase's shortest-path layers and sc.iter to resume each vertex's
// adjacency scan where the previous attempt left off.
func (g *Graph) dfsAugment(sc *Scratch, u int, partnerOfR, partnerOfL []int) bool {
	for ; sc.iter[u] < len(g.Adj[u]); sc.iter[u]++ {
		v := g.Adj[u][sc.iter[u]]
		w := partnerOfR[v]
		if w == -1 || (sc.distL[w] == sc.distL[u]+1 && g.dfsAugment(sc, w, partnerOfR, partnerOfL)) {
			partnerOfR[v] = u
			partnerOfL[u] = v
			return true
		}
	}
	sc.distL[u] = infDist
	return false
}
