package onnx_test

import (
	"testing"

	"github.com/born-ml/reducegen/backend/cpu"
	"github.com/born-ml/reducegen/onnx"
	"github.com/born-ml/reducegen/reduce"
	"github.com/born-ml/reducegen/tensor"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSupportedOps(t *testing.T) {
	ops := onnx.ListSupportedOps()
	assert.Len(t, ops, 10)
	assert.Equal(t, "ReduceL1", ops[0])
}

func TestExecuteThroughFacade(t *testing.T) {
	x := must.M1(tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.CPU))
	ctx := &onnx.Context{Backend: cpu.NewSequential(), Programs: reduce.NewCache()}
	node := &onnx.Node{
		OpType:     "ReduceSumSquare",
		Attributes: []onnx.Attribute{onnx.IntsAttr("axes", 0), onnx.IntAttr("keepdims", 0)},
	}

	outputs, err := onnx.NewRegistry().Execute(ctx, node, []*tensor.RawTensor{x})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3}, outputs[0].Shape())
	assert.Equal(t, []float32{17, 29, 45}, outputs[0].AsFloat32())

	_, err = onnx.NewRegistry().Execute(ctx, &onnx.Node{OpType: "Gemm"}, nil)
	assert.ErrorIs(t, err, onnx.ErrUnsupportedOperator)
}
