// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu exposes the CPU execution settings behind the pooling package.
//
// # Overview
//
// The CPU backend runs both pooling strategies in pure Go (no CGO):
//   - Sequential kernels on the calling goroutine
//   - Parallel kernels fanned out over NumWorkers goroutines in groups of
//     GroupSize output elements
//   - Float32 and Float64 support on every strategy
//
// # Thread Safety
//
// Kernels share no mutable state between calls. Concurrent calls are safe as
// long as they do not write the same output buffers.
package cpu

import (
	internalcpu "github.com/born-ml/maxpool/internal/backend/cpu"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Features describes the instruction set extensions of the host CPU.
type Features = internalcpu.Features

// New creates a new CPU backend with default parallel settings.
//
// Example:
//
//	backend := cpu.New()
//	fmt.Println(backend.Name(), backend.Config().NumWorkers)
func New() *Backend {
	return internalcpu.New()
}

// DetectFeatures reports the host CPU capabilities.
func DetectFeatures() Features {
	return internalcpu.DetectFeatures()
}
