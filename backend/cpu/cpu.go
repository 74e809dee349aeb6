// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/reducegen/internal/backend/cpu"
	"github.com/born-ml/reducegen/internal/parallel"
	"github.com/born-ml/reducegen/onnx"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements onnx.Executor.
var _ onnx.Executor = (*Backend)(nil)

// New creates a new CPU backend using every available core.
func New() *Backend {
	return internalcpu.New()
}

// NewSequential creates a CPU backend that evaluates on the calling goroutine.
func NewSequential() *Backend {
	return internalcpu.NewWithConfig(parallel.Sequential())
}
