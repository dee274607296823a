package cpu

import (
	"github.com/born-ml/maxpool/internal/parallel"
	"github.com/born-ml/maxpool/internal/pool"
	"github.com/born-ml/maxpool/internal/tensor"
)

// MaxPool2DBackward computes the gradient w.r.t. input for MaxPool2D with the
// sequential strategy.
//
// Algorithm: Route gradients to max positions.
//   - Each window's arg-max is found again by scanning the input
//   - The first position holding the maximum (row-major) wins ties
//   - That single position receives the window's whole output gradient
//
// Example (2x2 pool, stride=2):
//
//	Input:  [[1, 2],  Output: [4]  Input Grad: [[0, 0],
//	         [3, 4]]                             [0, grad]]
//
// inputGrad is accumulated into and never zeroed: overlapping windows route
// several contributions to the same position. Callers zero it beforehand.
func MaxPool2DBackward[T tensor.Float](inputGrad, input, outputGrad []T, g pool.Geometry) {
	in := tensor.MustView(input, g.InputShape())
	dx := tensor.MustView(inputGrad, g.InputShape())
	dy := tensor.MustView(outputGrad, g.OutputShape())

	pooledWidth := dy.Width()
	pooledHeight := dy.Height()

	for c := 0; c < g.Depth; c++ {
		plane := in.Channel(c)
		grad := dx.Channel(c)
		top := dy.Channel(c)

		for ph := 0; ph < pooledHeight; ph++ {
			for pw := 0; pw < pooledWidth; pw++ {
				best := pool.WindowArgMax(plane, g.Width, g.Window(ph, pw))
				grad[best] += top[ph*pooledWidth+pw]
			}
		}
	}
}

// MaxPool2DBackwardParallel computes the input gradient with one unit of work
// per output element.
//
// Units whose windows overlap, or whose clipped windows share a winner, target
// the same inputGrad element. cfg.Strategy selects how those collisions are
// resolved:
//   - StrategyAtomic: every contribution is a compare-and-swap add
//   - StrategyTwoPhase: arg-max indices are recorded in parallel first, then
//     each channel is accumulated by a single goroutine in row-major order,
//     which reproduces MaxPool2DBackward bit for bit
func MaxPool2DBackwardParallel[T tensor.Float](inputGrad, input, outputGrad []T, g pool.Geometry, cfg parallel.Config) {
	if cfg.Strategy == parallel.StrategyTwoPhase {
		maxPool2DBackwardTwoPhase(inputGrad, input, outputGrad, g, cfg)
		return
	}

	in := tensor.MustView(input, g.InputShape())
	dx := tensor.MustView(inputGrad, g.InputShape())
	tensor.MustView(outputGrad, g.OutputShape())

	parallel.Dispatch(g.OutputLen(), cfg, func(index int) {
		c, ph, pw := g.Decode(index)
		best := pool.WindowArgMax(in.Channel(c), g.Width, g.Window(ph, pw))
		parallel.AtomicAdd(&dx.Channel(c)[best], outputGrad[index])
	})
}

// maxPool2DBackwardTwoPhase routes gradients without atomics.
//
// The only scratch allocation is one index per output element.
func maxPool2DBackwardTwoPhase[T tensor.Float](inputGrad, input, outputGrad []T, g pool.Geometry, cfg parallel.Config) {
	dx := tensor.MustView(inputGrad, g.InputShape())
	dy := tensor.MustView(outputGrad, g.OutputShape())

	maxIndices := make([]int, g.OutputLen())
	MaxPool2DIndices(maxIndices, input, g, cfg)

	planeLen := dy.Height() * dy.Width()
	channelCfg := cfg
	channelCfg.MinChunkSize = 1

	parallel.For(g.Depth, func(c int) {
		grad := dx.Channel(c)
		top := dy.Channel(c)
		indices := maxIndices[c*planeLen : (c+1)*planeLen]
		for o, best := range indices {
			grad[best] += top[o]
		}
	}, channelCfg)
}
