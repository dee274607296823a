// Package tensor provides the element types, shapes and buffer views shared by the pooling kernels.
package tensor

import "unsafe"

// Float is the constraint for element types the pooling kernels accept.
// It uses Go generics to ensure compile-time type safety.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for buffers.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// DataTypeOf infers the DataType of a generic element type T.
// Named types built on float32 or float64 resolve to their underlying type.
func DataTypeOf[T Float]() DataType {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return Float32
	}
	return Float64
}
