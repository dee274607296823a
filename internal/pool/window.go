package pool

import "github.com/born-ml/maxpool/internal/tensor"

// WindowMax returns the maximum of the window inside one channel plane of the
// given width.
//
// The first element seeds the running maximum, so the result is exact for any
// finite or infinite input and never depends on a sentinel value.
func WindowMax[T tensor.Float](plane []T, width int, win Window) T {
	best := plane[win.HStart*width+win.WStart]
	for h := win.HStart; h < win.HEnd; h++ {
		// Pre-slice row: one bounds check per row
		row := plane[h*width+win.WStart : h*width+win.WEnd]
		for _, x := range row {
			if x > best {
				best = x
			}
		}
	}
	return best
}

// WindowArgMax returns the plane-relative index of the window maximum.
//
// Scanning is row-major with a strict greater-than comparison, so when several
// positions hold the maximum the first one encountered wins.
func WindowArgMax[T tensor.Float](plane []T, width int, win Window) int {
	bestIndex := win.HStart*width + win.WStart
	bestValue := plane[bestIndex]
	for h := win.HStart; h < win.HEnd; h++ {
		rowStart := h * width
		row := plane[rowStart+win.WStart : rowStart+win.WEnd]
		for i, x := range row {
			if x > bestValue {
				bestValue = x
				bestIndex = rowStart + win.WStart + i
			}
		}
	}
	return bestIndex
}
