//go:build windows

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU executor for generated reduction programs.
//
// Example:
//
//	gpu, err := webgpu.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gpu.Release()
//
//	y, err := gpu.RunProgram(p, x)
package webgpu

import (
	internalwebgpu "github.com/born-ml/reducegen/internal/backend/webgpu"
	"github.com/born-ml/reducegen/onnx"
)

// Backend represents the WebGPU backend implementation.
type Backend = internalwebgpu.Backend

// Compile-time check that Backend implements onnx.Executor.
var _ onnx.Executor = (*Backend)(nil)

// New creates a new WebGPU backend.
// Returns an error if WebGPU is not available on this system.
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on this system.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
