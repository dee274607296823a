// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package pooling

import (
	"github.com/born-ml/maxpool/internal/backend/cpu"
	"github.com/born-ml/maxpool/internal/parallel"
	"github.com/born-ml/maxpool/internal/pool"
)

// Option adjusts how a parallel operation partitions its work.
type Option func(*parallel.Config)

// WithWorkers caps the number of goroutines. n <= 1 runs every group on the
// calling goroutine.
func WithWorkers(n int) Option {
	return func(cfg *parallel.Config) {
		cfg.NumWorkers = n
		cfg.Enabled = n > 1
	}
}

// WithGroupSize sets how many units of work one group carries (default 256).
func WithGroupSize(n int) Option {
	return func(cfg *parallel.Config) {
		cfg.GroupSize = n
	}
}

// WithTwoPhase makes BackwardParallel record arg-max indices first and then
// accumulate each channel on a single goroutine. It needs no atomics and
// matches Backward exactly, at the cost of one int of scratch per output
// element. ForwardParallel ignores it.
func WithTwoPhase() Option {
	return func(cfg *parallel.Config) {
		cfg.Strategy = parallel.StrategyTwoPhase
	}
}

// buildConfig applies opts over the CPU backend's default configuration.
func buildConfig(op string, opts []Option) (parallel.Config, error) {
	cfg := cpu.New().Config()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.GroupSize <= 0 {
		return cfg, pool.NewInvalidArgError(op, "invalid group size %d", cfg.GroupSize)
	}
	return cfg, nil
}
