//go:build !windows

package main

import (
	"github.com/born-ml/reducegen/internal/backend/cpu"
	"github.com/born-ml/reducegen/internal/onnx/operators"
	"github.com/pkg/errors"
)

// newExecutor returns the named executor and a function releasing it.
// WebGPU is only wired on windows.
func newExecutor(name string) (operators.Executor, func(), error) {
	switch name {
	case "cpu":
		return cpu.New(), func() {}, nil
	case "webgpu":
		return nil, nil, errors.New("webgpu backend is not available on this platform")
	}
	return nil, nil, errors.Errorf("unknown backend %q", name)
}
