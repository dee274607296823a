// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the element types, shapes and bounds-checked views
// used with the pooling package.
//
// Example:
//
//	v, err := tensor.NewView(data, tensor.Shape{depth, height, width})
//	if err != nil {
//	    return err
//	}
//	plane := v.Channel(0)
package tensor

import "github.com/born-ml/maxpool/internal/tensor"

// Float is the set of supported element types (float32, float64).
type Float = tensor.Float

// DataType represents runtime type information.
type DataType = tensor.DataType

// Supported data types.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
)

// Device represents an execution resource.
type Device = tensor.Device

// Supported devices.
const (
	CPU    = tensor.CPU
	WebGPU = tensor.WebGPU
)

// Shape represents buffer dimensions.
type Shape = tensor.Shape

// View is a bounds-checked [depth, height, width] view onto a caller buffer.
type View[T Float] = tensor.View[T]

// NewView wraps data as a [depth, height, width] view.
func NewView[T Float](data []T, shape Shape) (View[T], error) {
	return tensor.NewView(data, shape)
}

// DataTypeOf returns the DataType of T.
func DataTypeOf[T Float]() DataType {
	return tensor.DataTypeOf[T]()
}
