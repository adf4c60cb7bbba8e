package matching_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgtpuzzles/puzzlecore/matching"
	"github.com/sgtpuzzles/puzzlecore/prng"
)

func assertIsMatching(t *testing.T, g *matching.Graph, res *matching.Result) {
	t.Helper()
	seenL := make(map[int]bool)
	seenR := make(map[int]bool)
	count := 0
	for v, u := range res.ToL {
		if u == -1 {
			continue
		}
		require.False(t, seenL[u], "left vertex %d matched twice", u)
		require.False(t, seenR[v], "right vertex %d matched twice", v)
		seenL[u] = true
		seenR[v] = true
		require.Equal(t, v, res.ToR[u], "ToL/ToR disagree for pair (%d,%d)", u, v)

		found := false
		for _, nb := range g.Adj[u] {
			if nb == v {
				found = true
				break
			}
		}
		require.True(t, found, "matched pair (%d,%d) is not an edge of g", u, v)
		count++
	}
	assert.Equal(t, count, res.Size)
}

func TestPerfectMatchingOnCycleShapedBipartite(t *testing.T) {
	// L_i -- R_i and L_i -- R_{i+1 mod n}: a 2-regular bipartite graph, which
	// always has a perfect matching.
	n := 6
	g := &matching.Graph{NL: n, NR: n, Adj: make([][]int, n)}
	for i := 0; i < n; i++ {
		g.Adj[i] = []int{i, (i + 1) % n}
	}
	res := g.Match(nil)
	assert.Equal(t, n, res.Size)
	assertIsMatching(t, g, res)
}

func TestMaximumMatchingWhenNoPerfectMatchingExists(t *testing.T) {
	// L0,L1,L2 all only connect to R0: at most one can be matched.
	g := &matching.Graph{NL: 3, NR: 2, Adj: [][]int{{0}, {0}, {0}}}
	res := g.Match(nil)
	assert.Equal(t, 1, res.Size)
	assertIsMatching(t, g, res)
}

func TestEmptyGraph(t *testing.T) {
	g := &matching.Graph{NL: 0, NR: 0, Adj: nil}
	res := g.Match(nil)
	assert.Equal(t, 0, res.Size)
}

func TestNoEdgesGraph(t *testing.T) {
	g := &matching.Graph{NL: 3, NR: 3, Adj: [][]int{{}, {}, {}}}
	res := g.Match(nil)
	assert.Equal(t, 0, res.Size)
}

func TestScratchReuseMatchesFreshAllocation(t *testing.T) {
	g := &matching.Graph{NL: 4, NR: 4, Adj: [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}}
	sc := matching.NewScratch(4, 4)
	res1 := g.MatchWithScratch(sc, nil)
	res2 := g.Match(nil)
	assert.Equal(t, res1.Size, res2.Size)
}

func TestRandomizedMatchingStillMaximumAndValid(t *testing.T) {
	n := 8
	g := &matching.Graph{NL: n, NR: n, Adj: make([][]int, n)}
	for i := 0; i < n; i++ {
		g.Adj[i] = []int{i, (i + 1) % n, (i + 2) % n}
	}
	for seed := 0; seed < 5; seed++ {
		rs := prng.New([]byte(fmt.Sprintf("seed-%d", seed)))
		res := g.Match(rs)
		assert.Equal(t, n, res.Size)
		assertIsMatching(t, g, res)
	}
}

func TestPanicsOnOutOfRangeAdjacency(t *testing.T) {
	g := &matching.Graph{NL: 2, NR: 2, Adj: [][]int{{0}, {5}}}
	assert.Panics(t, func() { g.Match(nil) })
}

func TestPanicsOnAdjLengthMismatch(t *testing.T) {
	g := &matching.Graph{NL: 3, NR: 2, Adj: [][]int{{0}, {1}}}
	assert.Panics(t, func() { g.Match(nil) })
}

// TestCompleteBipartiteIsPerfectlyMatchable builds K_5,5 directly (every
// left vertex adjacent to every right vertex) and checks Match finds a
// perfect matching.
func TestCompleteBipartiteIsPerfectlyMatchable(t *testing.T) {
	const n = 5
	g := &matching.Graph{NL: n, NR: n, Adj: make([][]int, n)}
	for i := range g.Adj {
		g.Adj[i] = []int{0, 1, 2, 3, 4}
	}
	res := g.Match(nil)
	assert.Equal(t, n, res.Size)
	assertIsMatching(t, g, res)
}

// binomial returns n-choose-k via Pascal's-triangle-style accumulation,
// exact for the small arguments used here.
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	res := 1
	for i := 0; i < k; i++ {
		res = res * (n - i) / (i + 1)
	}
	return res
}

// TestMatchingRandomisationCoversAllMatchableEdges is spec.md §8 item 3: on
// the bipartite graph between all subsets of {1..b} (left) and all subsets
// with one element removed (right, edge S -> S\{x} for each x in S) at
// b=8, every edge belonging to some maximum matching must eventually
// appear across many randomised Match calls, and every call must find the
// expected maximum size 2^b - C(b, floor(b/2)) (Sperner/symmetric-chain-
// decomposition identity for the Boolean lattice's covering relation).
func TestMatchingRandomisationCoversAllMatchableEdges(t *testing.T) {
	const b = 8
	n := 1 << b
	g := &matching.Graph{NL: n, NR: n, Adj: make([][]int, n)}
	for s := 0; s < n; s++ {
		for x := 0; x < b; x++ {
			if s&(1<<uint(x)) != 0 {
				g.Adj[s] = append(g.Adj[s], s&^(1<<uint(x)))
			}
		}
	}

	expectedSize := n - binomial(b, b/2)

	type edge struct{ l, r int }
	seen := make(map[edge]bool)
	const trials = 10000
	for trial := 0; trial < trials; trial++ {
		rs := prng.New([]byte(fmt.Sprintf("coverage-trial-%d", trial)))
		res := g.Match(rs)
		require.Equal(t, expectedSize, res.Size)
		for l, r := range res.ToR {
			if r != -1 {
				seen[edge{l, r}] = true
			}
		}
	}

	missing := 0
	for s := 0; s < n; s++ {
		for _, r := range g.Adj[s] {
			if !seen[edge{s, r}] {
				missing++
			}
		}
	}
	assert.Zerof(t, missing, "%d/%d edges never appeared in any of %d randomised matchings", missing, len(seen), trials)
}
