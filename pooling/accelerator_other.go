//go:build !windows

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package pooling

import (
	"runtime"

	"github.com/born-ml/maxpool/internal/pool"
)

// NewAccelerator reports that no accelerator backend is built for this platform.
func NewAccelerator() (Accelerator, error) {
	return nil, pool.NewUnsupportedError("NewAccelerator", "no accelerator backend on %s", runtime.GOOS)
}
