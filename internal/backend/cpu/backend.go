// Package cpu implements the CPU pooling kernels: a sequential strategy and a
// goroutine-parallel strategy that share the geometry in internal/pool.
package cpu

import (
	"github.com/born-ml/maxpool/internal/parallel"
	"github.com/born-ml/maxpool/internal/tensor"
)

// CPUBackend carries the execution settings of the CPU strategies.
type CPUBackend struct {
	device tensor.Device
	config parallel.Config
}

// New creates a new CPU backend with the default parallel configuration.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with an explicit parallel configuration.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		config: cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Config returns the parallel configuration used by the parallel strategy.
func (cpu *CPUBackend) Config() parallel.Config {
	return cpu.config
}
