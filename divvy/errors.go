package divvy

import "fmt"

func checkDims(w, h, k int) {
	if w < 1 || h < 1 {
		panic(fmt.Sprintf("divvy: invalid dimensions %dx%d", w, h))
	}
	if k < 1 {
		panic(fmt.Sprintf("divvy: invalid region count %d", k))
	}
	if (w*h)%k != 0 {
		panic(fmt.Sprintf("divvy: %d does not divide %dx%d=%d cells", k, w, h, w*h))
	}
}
