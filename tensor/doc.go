// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the storage types consumed by reduction programs.
//
// A RawTensor is a dense row-major buffer with a Shape and a DataType. Reduction kernels
// only accept Float32 data; the optional axes input is Int64.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.CPU)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(x.Shape().NumElements()) // 6
package tensor
