// Package parallel provides the data-parallel dispatch used by the parallel pooling strategies.
package parallel

import (
	"runtime"
	"sync"
)

// DefaultGroupSize is the number of work units in one dispatched group,
// matching the 256-thread workgroups of the accelerator kernels.
const DefaultGroupSize = 256

// Strategy selects how the parallel backward pass resolves colliding writes
// into the input gradient.
type Strategy int

const (
	// StrategyAtomic accumulates every contribution with a lock-free
	// compare-and-swap add. Units run in any order.
	StrategyAtomic Strategy = iota
	// StrategyTwoPhase records every window's arg-max in a first parallel
	// pass, then accumulates with one goroutine per channel so each
	// destination has a single writer. The sum order is deterministic.
	StrategyTwoPhase
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyAtomic:
		return "atomic"
	case StrategyTwoPhase:
		return "two-phase"
	default:
		return "unknown"
	}
}

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool     // Whether parallel execution is enabled.
	NumWorkers   int      // Number of worker goroutines to use.
	MinChunkSize int      // Minimum items per goroutine to avoid overhead.
	GroupSize    int      // Work units per dispatched group.
	Strategy     Strategy // Collision handling for the backward pass.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
		GroupSize:    DefaultGroupSize,
		Strategy:     StrategyAtomic,
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize || cfg.NumWorkers <= 1 {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// Groups returns the number of fixed-size groups needed to cover n units.
func Groups(n, groupSize int) int {
	if groupSize <= 0 {
		groupSize = DefaultGroupSize
	}
	return (n + groupSize - 1) / groupSize
}

// Dispatch runs kernel(index) once for every index in [0, n).
//
// The n units are cut into ceil(n/GroupSize) groups. Workers pull whole groups
// from a shared counter until none remain, and Dispatch returns only after
// every unit has run. Units carry no ordering guarantee relative to each other.
func Dispatch(n int, cfg Config, kernel func(index int)) {
	if n <= 0 {
		return
	}
	groupSize := cfg.GroupSize
	if groupSize <= 0 {
		groupSize = DefaultGroupSize
	}
	numGroups := Groups(n, groupSize)

	workers := cfg.NumWorkers
	if !cfg.Enabled || workers < 1 {
		workers = 1
	}
	workers = min(workers, numGroups)

	runGroup := func(g int) {
		start := g * groupSize
		end := min(start+groupSize, n)
		for i := start; i < end; i++ {
			kernel(i)
		}
	}

	if workers == 1 {
		for g := 0; g < numGroups; g++ {
			runGroup(g)
		}
		return
	}

	var (
		wg   sync.WaitGroup
		next groupCounter
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				g := next.take()
				if g >= numGroups {
					return
				}
				runGroup(g)
			}
		}()
	}
	wg.Wait()
}
