package divvy

import (
	"fmt"

	"github.com/sgtpuzzles/puzzlecore/dsf"
	"github.com/sgtpuzzles/puzzlecore/prng"
)

// maxDivvyAttempts bounds the number of flood-fill-and-balance attempts
// DivvyRectangle will make before giving up. Typical puzzle sizes converge
// in a small handful of attempts; see PresetStats for measured rates.
const maxDivvyAttempts = 500

// DivvyRectangle partitions a w×h rectangle into k equal-size, four-connected
// regions, returning the partition as a disjoint-set forest over the w*h
// cells (row-major index idx = y*w+x): two cells share a canonical root
// exactly when DivvyRectangle put them in the same region.
//
// DivvyRectangle panics if w or h is less than 1, if k is less than 1, or if
// k does not evenly divide w*h (an unequal-size partition is not what this
// function builds; callers needing remainder cells should adjust k or the
// rectangle first). It also panics if none of maxDivvyAttempts attempts
// produces a valid partition.
func DivvyRectangle(w, h, k int, rs *prng.Source) *dsf.Dsf {
	checkDims(w, h, k)

	for i := 0; i < maxDivvyAttempts; i++ {
		if d, ok := oneAttempt(w, h, k, rs); ok {
			return d
		}
	}
	panic(fmt.Sprintf("divvy: DivvyRectangle: no valid %dx%d/%d partition found in %d attempts", w, h, k, maxDivvyAttempts))
}

// oneAttempt runs one flood-fill-then-balance pass and, if it converges,
// independently re-verifies the result before accepting it.
func oneAttempt(w, h, k int, rs *prng.Source) (*dsf.Dsf, bool) {
	owner := floodFill(w, h, k, rs)
	sizes := countSizes(owner, k)
	target := w * h / k
	if !balance(owner, w, h, k, sizes, target, rs) {
		return nil, false
	}
	return buildAndVerify(owner, w, h, k, target)
}

// buildAndVerify builds a fresh dsf.Dsf from 4-adjacency among same-owner
// cells and checks, independently of the balancing logic that produced
// owner, that every one of the k regions is a single connected component of
// exactly target cells. This is the last line of defense against a subtle
// bug in the transition-count heuristic silently producing a split or
// merged region: any such defect causes this check to fail and the whole
// attempt to be discarded, rather than handing the caller a broken result.
func buildAndVerify(owner []int, w, h, k, target int) (*dsf.Dsf, bool) {
	d := dsf.New(w * h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if x+1 < w && owner[idx+1] == owner[idx] {
				d.Merge(idx, idx+1)
			}
			if y+1 < h && owner[idx+w] == owner[idx] {
				d.Merge(idx, idx+w)
			}
		}
	}

	rootOf := make(map[int]int, k)
	count := make(map[int]int, k)
	for idx, o := range owner {
		if o < 0 || o >= k {
			return nil, false
		}
		root := d.Canonify(idx)
		if seen, ok := rootOf[o]; ok {
			if seen != root {
				return nil, false
			}
		} else {
			rootOf[o] = root
		}
		count[root]++
	}
	if len(rootOf) != k {
		return nil, false
	}
	for _, root := range rootOf {
		if count[root] != target {
			return nil, false
		}
	}
	return d, true
}

// PresetResult summarizes how many attempts DivvyRectangle needed across a
// batch of independent trials at a fixed size, as a regression guard: a
// future change that makes the balancing heuristic meaningfully worse will
// show up here as a jump in MeanAttempts well before it is ever visible as
// a user-facing slowdown.
type PresetResult struct {
	Trials       int
	MeanAttempts float64
	MaxAttempts  int
}

// PresetStats runs trials independent partitions of a w×h/k preset and
// reports how many flood-fill-and-balance attempts each one needed.
func PresetStats(w, h, k, trials int, rs *prng.Source) PresetResult {
	checkDims(w, h, k)
	if trials < 1 {
		panic(fmt.Sprintf("divvy: PresetStats: trials must be positive, got %d", trials))
	}

	total := 0
	max := 0
	for i := 0; i < trials; i++ {
		n := attemptsUntilSuccess(w, h, k, rs)
		total += n
		if n > max {
			max = n
		}
	}
	return PresetResult{
		Trials:       trials,
		MeanAttempts: float64(total) / float64(trials),
		MaxAttempts:  max,
	}
}

func attemptsUntilSuccess(w, h, k int, rs *prng.Source) int {
	for i := 1; i <= maxDivvyAttempts; i++ {
		if _, ok := oneAttempt(w, h, k, rs); ok {
			return i
		}
	}
	panic(fmt.Sprintf("divvy: attemptsUntilSuccess: no valid %dx%d/%d partition found in %d attempts", w, h, k, maxDivvyAttempts))
}
