package tensor

import "fmt"

// View is a bounds-checked [depth, height, width] window onto a caller-owned
// buffer in channel-major layout. It never copies or allocates element data.
type View[T Float] struct {
	data   []T
	shape  Shape
	stride []int
}

// NewView wraps data as a 3-D view of the given [depth, height, width] shape.
// The buffer length must match the shape's element count exactly.
func NewView[T Float](data []T, shape Shape) (View[T], error) {
	if len(shape) != 3 {
		return View[T]{}, fmt.Errorf("view: expected 3D shape [D,H,W], got %dD", len(shape))
	}
	if err := shape.Validate(); err != nil {
		return View[T]{}, fmt.Errorf("view: %w", err)
	}
	if len(data) != shape.NumElements() {
		return View[T]{}, fmt.Errorf("view: buffer has %d elements, shape %v needs %d",
			len(data), shape, shape.NumElements())
	}
	return View[T]{
		data:   data,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// MustView is like NewView but panics on a shape mismatch.
// Kernels use it after the caller boundary has validated the buffers.
func MustView[T Float](data []T, shape Shape) View[T] {
	v, err := NewView(data, shape)
	if err != nil {
		panic(err.Error())
	}
	return v
}

// Shape returns the view's [depth, height, width] shape.
func (v View[T]) Shape() Shape {
	return v.shape
}

// Strides returns the row-major strides of the view.
func (v View[T]) Strides() []int {
	return v.stride
}

// Data returns the underlying buffer.
func (v View[T]) Data() []T {
	return v.data
}

// Depth returns the number of channels.
func (v View[T]) Depth() int { return v.shape[0] }

// Height returns the plane height.
func (v View[T]) Height() int { return v.shape[1] }

// Width returns the plane width.
func (v View[T]) Width() int { return v.shape[2] }

// Channel returns the contiguous height*width plane of channel c.
func (v View[T]) Channel(c int) []T {
	if c < 0 || c >= v.shape[0] {
		panic(fmt.Sprintf("view: channel %d out of range [0,%d)", c, v.shape[0]))
	}
	start := c * v.stride[0]
	return v.data[start : start+v.stride[0] : start+v.stride[0]]
}

// Offset returns the linear index of (c, h, w).
func (v View[T]) Offset(c, h, w int) int {
	if c < 0 || c >= v.shape[0] || h < 0 || h >= v.shape[1] || w < 0 || w >= v.shape[2] {
		panic(fmt.Sprintf("view: index (%d,%d,%d) out of range for shape %v", c, h, w, v.shape))
	}
	return c*v.stride[0] + h*v.stride[1] + w
}

// At returns the element at (c, h, w).
func (v View[T]) At(c, h, w int) T {
	return v.data[v.Offset(c, h, w)]
}

// Set stores val at (c, h, w).
func (v View[T]) Set(c, h, w int, val T) {
	v.data[v.Offset(c, h, w)] = val
}
