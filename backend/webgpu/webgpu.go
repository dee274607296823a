//go:build windows

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU accelerator for the pooling package.
//
// Example:
//
//	import (
//	    "github.com/born-ml/maxpool/backend/webgpu"
//	    "github.com/born-ml/maxpool/pooling"
//	)
//
//	func main() {
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//
//	    err = pooling.ForwardOn(gpu, output, input, geometry)
//	}
package webgpu

import (
	internalwebgpu "github.com/born-ml/maxpool/internal/backend/webgpu"
	"github.com/born-ml/maxpool/pooling"
)

// Backend represents the WebGPU accelerator.
type Backend = internalwebgpu.Backend

// Compile-time check that Backend implements pooling.Accelerator.
var _ pooling.Accelerator = (*Backend)(nil)

// New creates a new WebGPU backend.
//
// This function initializes the WebGPU device and returns a backend
// ready for pooling. Call Release() when done to free GPU resources.
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on this system.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
