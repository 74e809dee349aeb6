// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go executor for generated reduction programs.
//
// # Overview
//
// Each output element is evaluated on the host in the same order as the WGSL kernel
// visits the input, and output elements are split across goroutines. The CPU backend is
// the reference the WebGPU backend is checked against.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/reducegen/backend/cpu"
//	    "github.com/born-ml/reducegen/reduce"
//	    "github.com/born-ml/reducegen/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
//	    p, _ := reduce.Generate(reduce.Max, []reduce.Tensor{x}, reduce.NewAttributes(nil, false, false))
//	    y, _ := backend.RunProgram(p, x)
//	    fmt.Println(y.AsFloat32()) // [4]
//	}
package cpu
