// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package pooling

import (
	"github.com/born-ml/maxpool/internal/backend/cpu"
	"github.com/born-ml/maxpool/internal/pool"
	"github.com/born-ml/maxpool/internal/tensor"
)

// Geometry describes one pooling call: input dimensions, window size and stride.
type Geometry = pool.Geometry

// Window is a clipped input rectangle reduced to one output element.
type Window = pool.Window

// Error is a precondition violation reported before any work is dispatched.
type Error = pool.Error

// Float is the set of element types the operations accept.
type Float = tensor.Float

var (
	// ErrInvalidArgument matches geometry and buffer length violations.
	ErrInvalidArgument = pool.ErrInvalidArgument
	// ErrUnsupported matches element type and device combinations that cannot run.
	ErrUnsupported = pool.ErrUnsupported
)

// PooledSize returns the output plane dimensions for the given input plane.
// Callers must ensure poolSize <= width, poolSize <= height and poolStride >= 1.
func PooledSize(width, height, poolSize, poolStride int) (pooledWidth, pooledHeight int) {
	return pool.PooledSize(width, height, poolSize, poolStride)
}

// Forward computes the max pooling of input into output sequentially.
//
// input holds g.InputLen() elements, output g.OutputLen(). output is fully
// overwritten.
func Forward[T Float](output, input []T, g Geometry) error {
	if err := checkForward("Forward", len(output), len(input), g); err != nil {
		return err
	}
	cpu.MaxPool2D(output, input, g)
	return nil
}

// ForwardParallel computes the same result as Forward, bit for bit, with one
// unit of work per output element spread over goroutines.
func ForwardParallel[T Float](output, input []T, g Geometry, opts ...Option) error {
	cfg, err := buildConfig("ForwardParallel", opts)
	if err != nil {
		return err
	}
	if err := checkForward("ForwardParallel", len(output), len(input), g); err != nil {
		return err
	}
	cpu.MaxPool2DParallel(output, input, g, cfg)
	return nil
}

// Backward routes outputGrad to the arg-max of each window, accumulating into
// inputGrad sequentially.
//
// inputGrad and input hold g.InputLen() elements, outputGrad g.OutputLen().
// inputGrad must be zeroed by the caller.
func Backward[T Float](inputGrad, input, outputGrad []T, g Geometry) error {
	if err := checkBackward("Backward", len(inputGrad), len(input), len(outputGrad), g); err != nil {
		return err
	}
	cpu.MaxPool2DBackward(inputGrad, input, outputGrad, g)
	return nil
}

// BackwardParallel computes the input gradient with one unit of work per
// output element.
//
// Colliding writes are resolved with atomic adds by default, which can change
// the float rounding order between runs when windows overlap. WithTwoPhase
// selects the deterministic variant whose result matches Backward exactly.
func BackwardParallel[T Float](inputGrad, input, outputGrad []T, g Geometry, opts ...Option) error {
	cfg, err := buildConfig("BackwardParallel", opts)
	if err != nil {
		return err
	}
	if err := checkBackward("BackwardParallel", len(inputGrad), len(input), len(outputGrad), g); err != nil {
		return err
	}
	cpu.MaxPool2DBackwardParallel(inputGrad, input, outputGrad, g, cfg)
	return nil
}

// checkForward validates the geometry and forward buffer lengths.
func checkForward(op string, outputLen, inputLen int, g Geometry) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if inputLen != g.InputLen() {
		return pool.NewInvalidArgError(op, "input has %d elements, want %d for %v", inputLen, g.InputLen(), g)
	}
	if outputLen != g.OutputLen() {
		return pool.NewInvalidArgError(op, "output has %d elements, want %d for %v", outputLen, g.OutputLen(), g)
	}
	return nil
}

// checkBackward validates the geometry and backward buffer lengths.
func checkBackward(op string, inputGradLen, inputLen, outputGradLen int, g Geometry) error {
	if err := checkForward(op, outputGradLen, inputLen, g); err != nil {
		return err
	}
	if inputGradLen != g.InputLen() {
		return pool.NewInvalidArgError(op, "input gradient has %d elements, want %d for %v",
			inputGradLen, g.InputLen(), g)
	}
	return nil
}
