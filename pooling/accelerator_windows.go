//go:build windows

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package pooling

import "github.com/born-ml/maxpool/internal/backend/webgpu"

// Compile-time check that the WebGPU backend is an Accelerator.
var _ Accelerator = (*webgpu.Backend)(nil)

// NewAccelerator opens the default WebGPU adapter.
// Call Release() when done to free GPU resources.
func NewAccelerator() (Accelerator, error) {
	backend, err := webgpu.New()
	if err != nil {
		return nil, err
	}
	return backend, nil
}
