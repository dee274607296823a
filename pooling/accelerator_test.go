// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package pooling_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/maxpool/internal/backend/cpu"
	"github.com/born-ml/maxpool/pooling"
)

// fakeAccelerator runs the sequential CPU kernels and counts calls.
// A zero limits value means a 128 MiB binding limit and u32 indexing.
type fakeAccelerator struct {
	limits        pooling.DeviceLimits
	forwardCalls  int
	backwardCalls int
	released      bool
}

func (f *fakeAccelerator) Name() string { return "fake" }

func (f *fakeAccelerator) Limits() pooling.DeviceLimits {
	if f.limits == (pooling.DeviceLimits{}) {
		return pooling.DeviceLimits{MaxBindingSize: 128 << 20, MaxElements: math.MaxUint32}
	}
	return f.limits
}

func (f *fakeAccelerator) MaxPool2D(output, input []float32, g pooling.Geometry) error {
	f.forwardCalls++
	cpu.MaxPool2D(output, input, g)
	return nil
}

func (f *fakeAccelerator) MaxPool2DBackward(inputGrad, input, outputGrad []float32, g pooling.Geometry) error {
	f.backwardCalls++
	cpu.MaxPool2DBackward(inputGrad, input, outputGrad, g)
	return nil
}

func (f *fakeAccelerator) Release() { f.released = true }

type activation float32

func TestForwardOn(t *testing.T) {
	acc := &fakeAccelerator{}
	g := pooling.Geometry{Width: 4, Height: 4, Depth: 1, PoolSize: 2, PoolStride: 2}

	output := make([]float32, 4)
	require.NoError(t, pooling.ForwardOn(acc, output, sequence(16), g))
	assert.Equal(t, []float32{6, 8, 14, 16}, output)
	assert.Equal(t, 1, acc.forwardCalls)

	// Named float32 types share the device path.
	named := make([]activation, 16)
	for i := range named {
		named[i] = activation(i + 1)
	}
	namedOut := make([]activation, 4)
	require.NoError(t, pooling.ForwardOn(acc, namedOut, named, g))
	assert.Equal(t, []activation{6, 8, 14, 16}, namedOut)
}

func TestBackwardOn(t *testing.T) {
	acc := &fakeAccelerator{}
	g := pooling.Geometry{Width: 4, Height: 4, Depth: 1, PoolSize: 2, PoolStride: 2}

	inputGrad := make([]float32, 16)
	require.NoError(t, pooling.BackwardOn(acc, inputGrad, sequence(16), []float32{1, 2, 3, 4}, g))
	assert.Equal(t, float32(4), inputGrad[15])
	assert.Equal(t, 1, acc.backwardCalls)
}

func TestAccelerator_Float64Unsupported(t *testing.T) {
	acc := &fakeAccelerator{}
	g := pooling.Geometry{Width: 4, Height: 4, Depth: 1, PoolSize: 2, PoolStride: 2}

	err := pooling.ForwardOn(acc, make([]float64, 4), make([]float64, 16), g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pooling.ErrUnsupported))

	err = pooling.BackwardOn(acc, make([]float64, 16), make([]float64, 16), make([]float64, 4), g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pooling.ErrUnsupported))
	assert.Contains(t, err.Error(), "float64")

	assert.Zero(t, acc.forwardCalls)
	assert.Zero(t, acc.backwardCalls)
}

func TestAccelerator_Validation(t *testing.T) {
	g := pooling.Geometry{Width: 4, Height: 4, Depth: 1, PoolSize: 2, PoolStride: 2}

	err := pooling.ForwardOn[float32](nil, make([]float32, 4), make([]float32, 16), g)
	assert.True(t, errors.Is(err, pooling.ErrInvalidArgument))

	acc := &fakeAccelerator{}
	err = pooling.ForwardOn(acc, make([]float32, 3), make([]float32, 16), g)
	assert.True(t, errors.Is(err, pooling.ErrInvalidArgument))

	// Length errors take precedence over the element type.
	err = pooling.BackwardOn(acc, make([]float64, 15), make([]float64, 16), make([]float64, 4), g)
	assert.True(t, errors.Is(err, pooling.ErrInvalidArgument))
	assert.Zero(t, acc.backwardCalls)
}

func TestAccelerator_LimitsRejectedBeforeDispatch(t *testing.T) {
	g := pooling.Geometry{Width: 4, Height: 4, Depth: 2, PoolSize: 2, PoolStride: 2}
	input := sequence(g.InputLen())

	// 32 float32 inputs need 128 bytes.
	acc := &fakeAccelerator{limits: pooling.DeviceLimits{MaxBindingSize: 127, MaxElements: math.MaxUint32}}

	output := make([]float32, g.OutputLen())
	err := pooling.ForwardOn(acc, output, input, g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pooling.ErrUnsupported))

	err = pooling.BackwardOn(acc, make([]float32, g.InputLen()), input, make([]float32, g.OutputLen()), g)
	assert.True(t, errors.Is(err, pooling.ErrUnsupported))

	// Index range is checked as well as byte size.
	acc.limits = pooling.DeviceLimits{MaxBindingSize: 1 << 20, MaxElements: 31}
	err = pooling.ForwardOn(acc, output, input, g)
	assert.True(t, errors.Is(err, pooling.ErrUnsupported))

	assert.Zero(t, acc.forwardCalls)
	assert.Zero(t, acc.backwardCalls)
	assert.Equal(t, make([]float32, g.OutputLen()), output)

	acc.limits = pooling.DeviceLimits{MaxBindingSize: 128, MaxElements: 32}
	require.NoError(t, pooling.ForwardOn(acc, output, input, g))
	assert.Equal(t, 1, acc.forwardCalls)
}
