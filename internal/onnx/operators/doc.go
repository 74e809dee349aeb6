//go:build !wasm

// Package operators maps ONNX Reduce* nodes to generated reduction programs.
//
// Each handler reads the node attributes (axes, keepdims, noop_with_empty_axes), accepts
// the optional axes input of opset 18, generates or looks up the kernel for the input
// shape and hands it to the context's executor.
package operators
