// Package pool holds the index arithmetic shared by every max pooling strategy:
// output dimensions, clipped window bounds, work-index decoding and the
// window scans themselves.
//
// Every forward and backward strategy, sequential or parallel, derives its
// geometry from this package only.
package pool

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/born-ml/maxpool/internal/tensor"
)

// Geometry describes one pooling call over a single channel-major feature map.
//
// Input:  [Depth, Height, Width]
// Output: [Depth, PooledHeight, PooledWidth]
//
// Where:
//
//	PooledHeight = (Height - PoolSize) / PoolStride + 1
//	PooledWidth  = (Width - PoolSize) / PoolStride + 1
type Geometry struct {
	Width      int
	Height     int
	Depth      int
	PoolSize   int
	PoolStride int
}

// Window is the clipped input rectangle [HStart,HEnd) x [WStart,WEnd)
// reduced to one output element.
type Window struct {
	HStart, HEnd int
	WStart, WEnd int
}

// Empty reports whether the window covers no input positions.
func (w Window) Empty() bool {
	return w.HEnd <= w.HStart || w.WEnd <= w.WStart
}

// Size returns the number of input positions covered by the window.
func (w Window) Size() int {
	if w.Empty() {
		return 0
	}
	return (w.HEnd - w.HStart) * (w.WEnd - w.WStart)
}

// Validate checks the geometry preconditions.
func (g Geometry) Validate() error {
	const op = "Geometry.Validate"
	switch {
	case g.Width <= 0 || g.Height <= 0 || g.Depth <= 0:
		return NewInvalidArgError(op, "invalid input dimensions %dx%dx%d (width x height x depth)",
			g.Width, g.Height, g.Depth)
	case g.PoolSize <= 0:
		return NewInvalidArgError(op, "invalid pool size %d", g.PoolSize)
	case g.PoolStride <= 0:
		return NewInvalidArgError(op, "invalid pool stride %d", g.PoolStride)
	case g.PoolSize > g.Width || g.PoolSize > g.Height:
		return NewInvalidArgError(op, "pool size %d too large for input %dx%d",
			g.PoolSize, g.Width, g.Height)
	}
	// The pooled map is never larger than the input, so one check covers both.
	plane, ok := mulInt(g.Width, g.Height)
	if ok {
		_, ok = mulInt(plane, g.Depth)
	}
	if !ok {
		return NewInvalidArgError(op, "input %dx%dx%d overflows the element count",
			g.Width, g.Height, g.Depth)
	}
	return nil
}

// mulInt returns a*b for non-negative a and b, and false if the product
// does not fit in an int.
func mulInt(a, b int) (int, bool) {
	hi, lo := bits.Mul(uint(a), uint(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}

// String returns a compact description used in error messages and the CLI.
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%dx%d pool=%d stride=%d", g.Width, g.Height, g.Depth, g.PoolSize, g.PoolStride)
}

// PooledSize computes the output plane dimensions.
// Callers must ensure poolSize <= width, poolSize <= height and poolStride >= 1.
func PooledSize(width, height, poolSize, poolStride int) (pooledWidth, pooledHeight int) {
	pooledWidth = (width-poolSize)/poolStride + 1
	pooledHeight = (height-poolSize)/poolStride + 1
	return pooledWidth, pooledHeight
}

// PooledWidth returns the number of output columns.
func (g Geometry) PooledWidth() int {
	pw, _ := PooledSize(g.Width, g.Height, g.PoolSize, g.PoolStride)
	return pw
}

// PooledHeight returns the number of output rows.
func (g Geometry) PooledHeight() int {
	_, ph := PooledSize(g.Width, g.Height, g.PoolSize, g.PoolStride)
	return ph
}

// InputShape returns the [Depth, Height, Width] shape of the feature map.
func (g Geometry) InputShape() tensor.Shape {
	return tensor.Shape{g.Depth, g.Height, g.Width}
}

// OutputShape returns the [Depth, PooledHeight, PooledWidth] shape of the pooled map.
func (g Geometry) OutputShape() tensor.Shape {
	pw, ph := PooledSize(g.Width, g.Height, g.PoolSize, g.PoolStride)
	return tensor.Shape{g.Depth, ph, pw}
}

// InputLen returns the element count of the feature map.
func (g Geometry) InputLen() int {
	return g.Width * g.Height * g.Depth
}

// OutputLen returns the element count of the pooled map, which is also the
// number of independent units of work in a parallel dispatch.
func (g Geometry) OutputLen() int {
	pw, ph := PooledSize(g.Width, g.Height, g.PoolSize, g.PoolStride)
	return pw * ph * g.Depth
}

// Overlapping reports whether adjacent windows share input positions.
func (g Geometry) Overlapping() bool {
	return g.PoolStride < g.PoolSize
}

// Window returns the clipped input window of output position (ph, pw).
func (g Geometry) Window(ph, pw int) Window {
	hStart := ph * g.PoolStride
	wStart := pw * g.PoolStride
	return Window{
		HStart: hStart,
		HEnd:   min(hStart+g.PoolSize, g.Height),
		WStart: wStart,
		WEnd:   min(wStart+g.PoolSize, g.Width),
	}
}

// Decode splits a flat output index into its (channel, row, column) coordinates.
//
// index = ((n*Depth + c)*PooledHeight + ph)*PooledWidth + pw, with n fixed at 0.
func (g Geometry) Decode(index int) (c, ph, pw int) {
	pooledWidth, pooledHeight := PooledSize(g.Width, g.Height, g.PoolSize, g.PoolStride)
	pw = index % pooledWidth
	ph = (index / pooledWidth) % pooledHeight
	c = (index / pooledWidth / pooledHeight) % g.Depth
	return c, ph, pw
}
