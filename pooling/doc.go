// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pooling provides spatial max pooling over channel-major feature maps.
//
// # Overview
//
// Four operations cover the forward and backward passes in two execution
// strategies:
//   - Forward / Backward: sequential, single goroutine, deterministic
//   - ForwardParallel / BackwardParallel: one unit of work per output element,
//     fanned out across goroutines in fixed-size groups
//
// ForwardOn and BackwardOn run the same kernels on an Accelerator (WebGPU
// where available).
//
// # Layout
//
// A feature map of Width x Height x Depth elements stores one channel after
// another; inside a channel elements are row-major. The pooled map uses the
// same layout with
//
//	pooledWidth  = (Width - PoolSize) / PoolStride + 1
//	pooledHeight = (Height - PoolSize) / PoolStride + 1
//
// Windows at the right and bottom borders are clipped to the input, so they
// may be smaller than PoolSize x PoolSize.
//
// # Gradients
//
// Backward re-scans each window of the input, picks the first row-major
// position holding the maximum, and adds the window's output gradient there.
// The input gradient is accumulated into, never zeroed: overlapping windows
// (PoolStride < PoolSize) sum their contributions. Zero it before the call.
//
// # Errors
//
// Every operation validates geometry and buffer lengths before dispatching
// any work. Violations return an error satisfying errors.Is(err,
// ErrInvalidArgument); unsupported element type and device combinations
// return ErrUnsupported. Valid calls always compute the full result.
//
// # Basic Usage
//
//	g := pooling.Geometry{Width: 4, Height: 4, Depth: 1, PoolSize: 2, PoolStride: 2}
//	output := make([]float32, g.OutputLen())
//	if err := pooling.Forward(output, input, g); err != nil {
//	    log.Fatal(err)
//	}
//
//	inputGrad := make([]float32, g.InputLen()) // zeroed
//	if err := pooling.BackwardParallel(inputGrad, input, outputGrad, g); err != nil {
//	    log.Fatal(err)
//	}
package pooling
