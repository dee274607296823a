package cpu

import (
	"github.com/born-ml/maxpool/internal/parallel"
	"github.com/born-ml/maxpool/internal/pool"
	"github.com/born-ml/maxpool/internal/tensor"
)

// MaxPool2D performs 2D max pooling with the sequential strategy.
//
// Max pooling reduces spatial dimensions by taking the maximum value
// in each pooling window, independently per channel.
//
// Input shape:  [depth, height, width]
// Output shape: [depth, pooled_height, pooled_width]
//
// Algorithm:
//  1. For each channel
//  2. Slide poolSize x poolSize window with given stride, row-major
//  3. Clip the window at the bottom and right borders
//  4. Store the window maximum
//
// Example (2x2 pool, stride=2):
//
//	Input: [[1,2,3,4],    Output: [[6,8],
//	        [5,6,7,8],             [14,16]]
//	        [9,10,11,12],
//	        [13,14,15,16]]
//
// The output buffer is overwritten, never read. The geometry must already be
// validated; wrongly sized buffers panic.
func MaxPool2D[T tensor.Float](output, input []T, g pool.Geometry) {
	in := tensor.MustView(input, g.InputShape())
	out := tensor.MustView(output, g.OutputShape())

	pooledWidth := out.Width()
	pooledHeight := out.Height()

	for c := 0; c < g.Depth; c++ {
		// Pre-slice channel planes: eliminates c*H*W offset arithmetic
		plane := in.Channel(c)
		pooled := out.Channel(c)

		for ph := 0; ph < pooledHeight; ph++ {
			for pw := 0; pw < pooledWidth; pw++ {
				pooled[ph*pooledWidth+pw] = pool.WindowMax(plane, g.Width, g.Window(ph, pw))
			}
		}
	}
}

// MaxPool2DParallel performs 2D max pooling with one unit of work per output
// element.
//
// Each unit decodes its own (channel, row, column) from the flat output index,
// scans its window and writes its own output slot. Writes are disjoint, so no
// synchronization is needed and the result is bit-identical to MaxPool2D.
func MaxPool2DParallel[T tensor.Float](output, input []T, g pool.Geometry, cfg parallel.Config) {
	in := tensor.MustView(input, g.InputShape())
	tensor.MustView(output, g.OutputShape())

	parallel.Dispatch(g.OutputLen(), cfg, func(index int) {
		c, ph, pw := g.Decode(index)
		output[index] = pool.WindowMax(in.Channel(c), g.Width, g.Window(ph, pw))
	})
}

// MaxPool2DIndices records, for every output element, the plane-relative index
// of its window's arg-max. indices must have g.OutputLen() entries.
//
// Work is dispatched like MaxPool2DParallel; each unit writes its own slot.
func MaxPool2DIndices[T tensor.Float](indices []int, input []T, g pool.Geometry, cfg parallel.Config) {
	in := tensor.MustView(input, g.InputShape())
	if len(indices) != g.OutputLen() {
		panic("maxpool2d: indices length does not match pooled size")
	}

	parallel.Dispatch(g.OutputLen(), cfg, func(index int) {
		c, ph, pw := g.Decode(index)
		indices[index] = pool.WindowArgMax(in.Channel(c), g.Width, g.Window(ph, pw))
	})
}
