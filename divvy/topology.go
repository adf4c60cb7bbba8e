package divvy

// neighbour8 lists the eight neighbour offsets in cyclic (clockwise) order,
// starting north. Cyclic order matters: transitionCount below depends on
// consecutive entries being geometrically adjacent.
var neighbour8 = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

var neighbour4 = [4][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
}

// sameRegion reports whether the cell at (x,y) is in bounds and owned by
// region. Out-of-grid positions are always "not region", matching the
// convention that the grid boundary behaves like foreign territory.
func sameRegion(owner []int, w, h, x, y, region int) bool {
	if x < 0 || x >= w || y < 0 || y >= h {
		return false
	}
	return owner[y*w+x] == region
}

// isSimplePoint implements the digital-topology "simple point" test: it
// reports whether cell idx sits on the boundary of region in a way that
// toggling idx's membership cannot split region into two pieces or punch a
// hole through it. The test counts sign changes ("transitions") between
// same-region and not-same-region as the eight neighbours are walked in
// cyclic order; a single boundary arc produces exactly two transitions, and
// anything else (0, or 4+) marks a pinch point, isolated point, or cell
// whose neighbourhood touches region in more than one disconnected arc.
func isSimplePoint(owner []int, w, h, idx, region int) bool {
	x, y := idx%w, idx/w
	transitions := 0
	prev := sameRegion(owner, w, h, x+neighbour8[7][0], y+neighbour8[7][1], region)
	for _, d := range neighbour8 {
		cur := sameRegion(owner, w, h, x+d[0], y+d[1], region)
		if cur != prev {
			transitions++
		}
		prev = cur
	}
	return transitions == 2
}

// removable reports whether idx can leave its current region without
// disconnecting what remains of it.
func removable(owner []int, w, h, idx int) bool {
	return isSimplePoint(owner, w, h, idx, owner[idx])
}

// addable reports whether idx can join newRegion (from whatever it currently
// owns) without creating a hole in newRegion or bridging two of its
// previously separate arms through idx alone.
func addable(owner []int, w, h, idx, newRegion int) bool {
	return isSimplePoint(owner, w, h, idx, newRegion)
}

// forEachNeighbour4 calls fn for every in-bounds 4-neighbour of (x,y).
func forEachNeighbour4(w, h, x, y int, fn func(nx, ny int)) {
	for _, d := range neighbour4 {
		nx, ny := x+d[0], y+d[1]
		if nx >= 0 && nx < w && ny >= 0 && ny < h {
			fn(nx, ny)
		}
	}
}
