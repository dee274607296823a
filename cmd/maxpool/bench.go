package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/maxpool/pooling"
)

type benchConfig struct {
	width, height, depth int
	size, stride         int
	iters, workers       int
	twoPhase             bool
	useF64               bool
}

func (c benchConfig) geometry() pooling.Geometry {
	return pooling.Geometry{
		Width:      c.width,
		Height:     c.height,
		Depth:      c.depth,
		PoolSize:   c.size,
		PoolStride: c.stride,
	}
}

func (c benchConfig) options() []pooling.Option {
	var opts []pooling.Option
	if c.workers > 0 {
		opts = append(opts, pooling.WithWorkers(c.workers))
	}
	if c.twoPhase {
		opts = append(opts, pooling.WithTwoPhase())
	}
	return opts
}

func runBench(w io.Writer, cfg benchConfig) error {
	if cfg.iters <= 0 {
		return fmt.Errorf("iters must be positive, got %d", cfg.iters)
	}
	if cfg.useF64 {
		return benchTyped[float64](w, cfg)
	}
	return benchTyped[float32](w, cfg)
}

func benchTyped[T pooling.Float](w io.Writer, cfg benchConfig) error {
	g := cfg.geometry()
	if err := g.Validate(); err != nil {
		return err
	}
	opts := cfg.options()

	rng := rand.New(rand.NewSource(1))
	input := make([]T, g.InputLen())
	for i := range input {
		input[i] = T(rng.NormFloat64())
	}
	outputGrad := make([]T, g.OutputLen())
	for i := range outputGrad {
		outputGrad[i] = T(rng.Float64())
	}

	seqOut := make([]T, g.OutputLen())
	parOut := make([]T, g.OutputLen())
	seqGrad := make([]T, g.InputLen())
	parGrad := make([]T, g.InputLen())

	fmt.Fprintf(w, "geometry: %v, %d iterations\n", g, cfg.iters)

	results := []struct {
		name string
		run  func() error
	}{
		{"forward/sequential", func() error { return pooling.Forward(seqOut, input, g) }},
		{"forward/parallel", func() error { return pooling.ForwardParallel(parOut, input, g, opts...) }},
		{"backward/sequential", func() error {
			clear(seqGrad)
			return pooling.Backward(seqGrad, input, outputGrad, g)
		}},
		{"backward/parallel", func() error {
			clear(parGrad)
			return pooling.BackwardParallel(parGrad, input, outputGrad, g, opts...)
		}},
	}

	for _, r := range results {
		start := time.Now()
		for i := 0; i < cfg.iters; i++ {
			if err := r.run(); err != nil {
				return fmt.Errorf("%s: %w", r.name, err)
			}
		}
		elapsed := time.Since(start)
		fmt.Fprintf(w, "  %-20s %12v/op\n", r.name, elapsed/time.Duration(cfg.iters))
	}

	for i := range seqOut {
		if seqOut[i] != parOut[i] {
			return fmt.Errorf("forward mismatch at %d: sequential %v, parallel %v", i, seqOut[i], parOut[i])
		}
	}

	seqSum := floats.Sum(toFloat64(seqGrad))
	parSum := floats.Sum(toFloat64(parGrad))
	wantSum := floats.Sum(toFloat64(outputGrad))
	fmt.Fprintf(w, "  gradient sum: sequential %.6g, parallel %.6g, output %.6g\n", seqSum, parSum, wantSum)
	if !floats.EqualApprox(toFloat64(seqGrad), toFloat64(parGrad), 1e-4) {
		return fmt.Errorf("backward mismatch between sequential and parallel strategies")
	}
	fmt.Fprintln(w, "  strategies agree")
	return nil
}

func toFloat64[T pooling.Float](data []T) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}
