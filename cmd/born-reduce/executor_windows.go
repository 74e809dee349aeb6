//go:build windows

package main

import (
	"github.com/born-ml/reducegen/internal/backend/cpu"
	"github.com/born-ml/reducegen/internal/backend/webgpu"
	"github.com/born-ml/reducegen/internal/onnx/operators"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// newExecutor returns the named executor and a function releasing it.
func newExecutor(name string) (operators.Executor, func(), error) {
	switch name {
	case "cpu":
		return cpu.New(), func() {}, nil
	case "webgpu":
		backend, err := webgpu.New()
		if err != nil {
			klog.Warningf("webgpu unavailable: %v", err)
			return nil, nil, err
		}
		return backend, backend.Release, nil
	}
	return nil, nil, errors.Errorf("unknown backend %q", name)
}
