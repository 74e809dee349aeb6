// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package onnx runs ONNX Reduce* nodes through generated reduction programs.
//
// # Supported Operators
//
// ReduceSum, ReduceMean, ReduceProd, ReduceMax, ReduceMin, ReduceL1, ReduceL2,
// ReduceSumSquare, ReduceLogSum and ReduceLogSumExp, with the keepdims and
// noop_with_empty_axes attributes and axes given either as an attribute or as a second
// int64 input (opset 18).
//
// # Example Usage
//
//	registry := onnx.NewRegistry()
//	ctx := &onnx.Context{Backend: cpu.New(), Programs: reduce.NewCache()}
//	node := &onnx.Node{
//	    OpType:     "ReduceSum",
//	    Attributes: []onnx.Attribute{onnx.IntsAttr("axes", 1)},
//	}
//	outputs, err := registry.Execute(ctx, node, []*tensor.RawTensor{x})
package onnx

import (
	"github.com/born-ml/reducegen/internal/onnx/operators"
)

type (
	// Registry maps operator types to handlers.
	Registry = operators.Registry

	// Context carries the executor and program cache shared by nodes.
	Context = operators.Context

	// Executor runs a generated program.
	Executor = operators.Executor

	// Node is one ONNX node.
	Node = operators.Node

	// Attribute is one node attribute.
	Attribute = operators.Attribute
)

// ErrUnsupportedOperator is returned for operator types without a handler.
var ErrUnsupportedOperator = operators.ErrUnsupportedOperator

// NewRegistry creates a registry with every Reduce* operator.
func NewRegistry() *Registry {
	return operators.NewRegistry()
}

// ListSupportedOps returns the supported operator types, sorted.
func ListSupportedOps() []string {
	return operators.NewRegistry().SupportedOps()
}

// IntAttr builds an INT attribute.
func IntAttr(name string, value int64) Attribute {
	return operators.IntAttr(name, value)
}

// IntsAttr builds an INTS attribute.
func IntsAttr(name string, values ...int64) Attribute {
	return operators.IntsAttr(name, values...)
}
