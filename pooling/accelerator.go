// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package pooling

import (
	"unsafe"

	"github.com/born-ml/maxpool/internal/pool"
	"github.com/born-ml/maxpool/internal/tensor"
)

// Accelerator runs the parallel pooling kernels on a throughput-oriented
// device. Devices implement float32 only.
type Accelerator interface {
	// Name returns a human-readable device name.
	Name() string
	// MaxPool2D computes the forward pass into output.
	MaxPool2D(output, input []float32, g Geometry) error
	// MaxPool2DBackward accumulates into inputGrad with atomic adds.
	MaxPool2DBackward(inputGrad, input, outputGrad []float32, g Geometry) error
	// Limits reports the largest buffers and index range the device accepts.
	Limits() DeviceLimits
	// Release frees device resources.
	Release()
}

// DeviceLimits bounds the geometries an Accelerator can run.
type DeviceLimits = pool.DeviceLimits

// ForwardOn runs Forward on acc.
//
// float64 buffers, and geometries beyond acc.Limits(), are rejected with
// ErrUnsupported before anything is uploaded to the device.
func ForwardOn[T Float](acc Accelerator, output, input []T, g Geometry) error {
	const op = "ForwardOn"
	if err := checkForward(op, len(output), len(input), g); err != nil {
		return err
	}
	if err := checkAccelerated[T](op, acc, g); err != nil {
		return err
	}
	return acc.MaxPool2D(asFloat32(output), asFloat32(input), g)
}

// BackwardOn runs Backward on acc. The device resolves colliding writes with
// atomic adds, so the summation order is unspecified.
//
// The 64-bit instantiation is not available on any device and returns
// ErrUnsupported.
func BackwardOn[T Float](acc Accelerator, inputGrad, input, outputGrad []T, g Geometry) error {
	const op = "BackwardOn"
	if err := checkBackward(op, len(inputGrad), len(input), len(outputGrad), g); err != nil {
		return err
	}
	if err := checkAccelerated[T](op, acc, g); err != nil {
		return err
	}
	return acc.MaxPool2DBackward(asFloat32(inputGrad), asFloat32(input), asFloat32(outputGrad), g)
}

// checkAccelerated rejects a nil device, element types other than float32 and
// geometries that exceed the device limits.
func checkAccelerated[T Float](op string, acc Accelerator, g Geometry) error {
	if acc == nil {
		return pool.NewInvalidArgError(op, "nil accelerator")
	}
	dt := tensor.DataTypeOf[T]()
	if dt != tensor.Float32 {
		return pool.NewUnsupportedError(op, "%s is not supported on %s", dt, acc.Name())
	}
	return g.CheckLimits(op, dt.Size(), acc.Limits())
}

// asFloat32 reinterprets a slice whose element type has float32 as its
// underlying type. Callers check the data type first.
func asFloat32[T Float](data []T) []float32 {
	if len(data) == 0 {
		return nil
	}
	//nolint:gosec // T is float32 or a named type with float32 underlying
	return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(data))), len(data))
}
