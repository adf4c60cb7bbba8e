package divvy

import "github.com/sgtpuzzles/puzzlecore/prng"

// floodFill seeds k regions at random cells and grows them by round-robin
// single-cell BFS expansion, producing a rough, randomly-shaped initial
// partition for balance to refine. Every cell ends up owned by exactly one
// region in [0,k).
func floodFill(w, h, k int, rs *prng.Source) []int {
	n := w * h
	owner := make([]int, n)
	for i := range owner {
		owner[i] = -1
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	prng.Shuffle(rs, order)
	seeds := order[:k]

	frontier := make([][]int, k)
	for r, seed := range seeds {
		owner[seed] = r
		frontier[r] = []int{seed}
	}

	assigned := k
	for assigned < n {
		progressed := false
		for r := 0; r < k; r++ {
			if len(frontier[r]) == 0 {
				continue
			}
			cell := frontier[r][0]
			frontier[r] = frontier[r][1:]
			x, y := cell%w, cell/w
			var grown []int
			forEachNeighbour4(w, h, x, y, func(nx, ny int) {
				nidx := ny*w + nx
				if owner[nidx] == -1 {
					owner[nidx] = r
					grown = append(grown, nidx)
					assigned++
					progressed = true
				}
			})
			if len(grown) > 1 {
				prng.Shuffle(rs, grown)
			}
			frontier[r] = append(frontier[r], grown...)
		}
		if !progressed {
			// Every region's frontier is landlocked; this only happens if a
			// pocket of unassigned cells is cut off from every seed, which
			// cannot occur on a connected rectangle but is guarded against
			// regardless: hand the remainder to region 0 so the caller
			// always gets a total assignment (balance, or the final
			// verification, will reject it if that makes no sense).
			for i, o := range owner {
				if o == -1 {
					owner[i] = 0
					assigned++
				}
			}
		}
	}
	return owner
}

// countSizes returns the number of cells owned by each of the k regions.
func countSizes(owner []int, k int) []int {
	sizes := make([]int, k)
	for _, o := range owner {
		if o >= 0 && o < k {
			sizes[o]++
		}
	}
	return sizes
}
