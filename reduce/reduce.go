// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package reduce generates WGSL compute kernels for N-dimensional float32 reductions.
//
// A reduction is described by a Kind (Sum, Mean, Max, ...), Attributes (axes, keepDims,
// noopWithEmptyAxes) and the input shape. Generate validates the inputs and returns a
// Program: the WGSL source, its output shape, its dispatch grid and a cache key.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.CPU)
//	p, err := reduce.Generate(reduce.Sum, []reduce.Tensor{x}, reduce.NewAttributes([]int64{1}, false, false))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.Output.Shape) // [2]
//	fmt.Println(p.Source)
package reduce

import (
	"github.com/born-ml/reducegen/internal/reduce"
)

// Kind selects the accumulation semantics of a reduction.
type Kind = reduce.Kind

// Reduction kinds.
const (
	Sum       = reduce.Sum
	Mean      = reduce.Mean
	Prod      = reduce.Prod
	Max       = reduce.Max
	Min       = reduce.Min
	L1        = reduce.L1
	L2        = reduce.L2
	SumSquare = reduce.SumSquare
	LogSum    = reduce.LogSum
	LogSumExp = reduce.LogSumExp
	NoOp      = reduce.NoOp
)

type (
	// Tensor is the shape and element type view of an input.
	Tensor = reduce.Tensor

	// Attributes configure a reduction.
	Attributes = reduce.Attributes

	// Program is a generated kernel.
	Program = reduce.Program

	// ProgramLoader defers generation until the program is needed.
	ProgramLoader = reduce.ProgramLoader

	// Cache holds generated programs by cache key.
	Cache = reduce.Cache

	// Workgroups is the size of a dispatch grid.
	Workgroups = reduce.Workgroups
)

// WorkgroupSize is the number of invocations per workgroup of generated kernels.
const WorkgroupSize = reduce.WorkgroupSize

// Errors reported before any source is generated. Match them with errors.Is.
var (
	ErrInvalidInputCount = reduce.ErrInvalidInputCount
	ErrInvalidInputShape = reduce.ErrInvalidInputShape
	ErrInvalidInputType  = reduce.ErrInvalidInputType
	ErrInvalidAxis       = reduce.ErrInvalidAxis
	ErrUnknownKind       = reduce.ErrUnknownKind
)

// NewAttributes creates Attributes with their cache key.
func NewAttributes(axes []int64, keepDims, noopWithEmptyAxes bool) *Attributes {
	return reduce.NewAttributes(axes, keepDims, noopWithEmptyAxes)
}

// Generate validates inputs, resolves attributes and returns the kernel for kind.
func Generate(kind Kind, inputs []Tensor, attrs *Attributes) (*Program, error) {
	return reduce.Generate(kind, inputs, attrs)
}

// Prepare validates and resolves without generating source; see ProgramLoader.
func Prepare(kind Kind, inputs []Tensor, attrs *Attributes) (*ProgramLoader, error) {
	return reduce.Prepare(kind, inputs, attrs)
}

// NewCache creates an empty program cache.
func NewCache() *Cache {
	return reduce.NewCache()
}

// NormalizeAxes resolves signed axes against rank into sorted canonical axes.
func NormalizeAxes(axes []int64, rank int) ([]int, error) {
	return reduce.NormalizeAxes(axes, rank)
}

// DispatchSize returns the workgroup grid covering outputSize invocations.
func DispatchSize(outputSize int) Workgroups {
	return reduce.DispatchSize(outputSize)
}
