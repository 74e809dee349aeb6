// Package cpu runs generated reduction programs on the host.
//
// Each output element is computed by the same visit order as the WGSL kernel, so results
// can be compared element by element with the WebGPU backend.
package cpu

import (
	"github.com/born-ml/reducegen/internal/parallel"
	"github.com/born-ml/reducegen/internal/tensor"
)

// CPUBackend executes reduction programs on CPU, splitting the output across goroutines.
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
}

// New creates a new CPU backend with the default parallel configuration.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend using cfg to split work.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device:   tensor.CPU,
		parallel: cfg,
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
