package divvy

import "github.com/sgtpuzzles/puzzlecore/prng"

// maxBalanceRounds bounds the number of single-transfer sweeps balance will
// attempt before giving up on an attempt (triggering a fresh flood fill).
const maxBalanceRounds = 64

// maxChainDepth bounds how many intermediate regions a chained transfer may
// pass a cell's worth of size debt through.
const maxChainDepth = 4

// balance mutates owner in place so every region ends at exactly target
// cells, using direct boundary transfers and, when those are exhausted,
// short chains of transfers. It reports whether it succeeded; on failure the
// caller should discard the attempt and start over with a fresh flood fill.
func balance(owner []int, w, h, k int, sizes []int, target int, rs *prng.Source) bool {
	for round := 0; round < maxBalanceRounds; round++ {
		balanced := true
		for r := 0; r < k; r++ {
			if sizes[r] != target {
				balanced = false
				break
			}
		}
		if balanced {
			return true
		}

		over := make([]int, 0, k)
		for r := 0; r < k; r++ {
			if sizes[r] > target {
				over = append(over, r)
			}
		}
		prng.Shuffle(rs, over)

		progressed := false
		for _, r := range over {
			if sizes[r] <= target {
				continue
			}
			if transferOneFromRegion(owner, w, h, sizes, target, r, rs) {
				progressed = true
			}
		}
		if !progressed {
			if !chainBalance(owner, w, h, k, sizes, target, rs) {
				return false
			}
		}
	}
	for r := 0; r < k; r++ {
		if sizes[r] != target {
			return false
		}
	}
	return true
}

// transferOneFromRegion looks for a single boundary cell of r that can move
// directly to an adjacent under-sized region without breaking either
// region's connectivity, and performs the first such transfer it finds.
func transferOneFromRegion(owner []int, w, h int, sizes []int, target, r int, rs *prng.Source) bool {
	n := w * h
	cells := make([]int, 0, n)
	for idx, o := range owner {
		if o == r {
			cells = append(cells, idx)
		}
	}
	prng.Shuffle(rs, cells)

	for _, idx := range cells {
		x, y := idx%w, idx/w
		found := -1
		forEachNeighbour4(w, h, x, y, func(nx, ny int) {
			if found != -1 {
				return
			}
			r2 := owner[ny*w+nx]
			if r2 != r && sizes[r2] < target {
				found = r2
			}
		})
		if found == -1 {
			continue
		}
		if removable(owner, w, h, idx) && addable(owner, w, h, idx, found) {
			owner[idx] = found
			sizes[r]--
			sizes[found]++
			return true
		}
	}
	return false
}

// chainState is one node of the chain-transfer search: a cloned grid
// reflecting every move applied on the path from the starting region so
// far, and the region the chain's "debt" currently sits in.
type chainState struct {
	owner  []int
	region int
	depth  int
}

// chainBalance searches, for each over-sized region, a short chain of
// legal single-cell moves that ultimately hands one cell to an under-sized
// region, even when no single direct transfer is available. It commits the
// first chain it finds and reports whether one was found.
func chainBalance(owner []int, w, h, k int, sizes []int, target int, rs *prng.Source) bool {
	overs := make([]int, 0, k)
	for r := 0; r < k; r++ {
		if sizes[r] > target {
			overs = append(overs, r)
		}
	}
	prng.Shuffle(rs, overs)

	for _, start := range overs {
		if tryChainFrom(owner, w, h, k, sizes, target, start, rs) {
			return true
		}
	}
	return false
}

func tryChainFrom(owner []int, w, h, k int, sizes []int, target, start int, rs *prng.Source) bool {
	root := append([]int(nil), owner...)
	queue := []chainState{{owner: root, region: start, depth: 0}}
	visited := map[int]bool{start: true}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node.depth >= maxChainDepth {
			continue
		}

		cells := make([]int, 0)
		for idx, o := range node.owner {
			if o == node.region {
				cells = append(cells, idx)
			}
		}
		prng.Shuffle(rs, cells)

		for _, idx := range cells {
			x, y := idx%w, idx/w
			neighbourRegions := make([]int, 0, 4)
			forEachNeighbour4(w, h, x, y, func(nx, ny int) {
				r2 := node.owner[ny*w+nx]
				if r2 != node.region {
					neighbourRegions = append(neighbourRegions, r2)
				}
			})
			for _, r2 := range neighbourRegions {
				if !removable(node.owner, w, h, idx) || !addable(node.owner, w, h, idx, r2) {
					continue
				}
				next := append([]int(nil), node.owner...)
				next[idx] = r2

				if sizes[r2] < target {
					counts := countSizes(next, k)
					if counts[r2] <= target {
						copy(owner, next)
						copy(sizes, countSizes(owner, k))
						return true
					}
				}
				if !visited[r2] {
					visited[r2] = true
					queue = append(queue, chainState{owner: next, region: r2, depth: node.depth + 1})
				}
			}
		}
	}
	return false
}
