//go:build !wasm

package operators

import (
	"github.com/born-ml/reducegen/internal/reduce"
	"github.com/born-ml/reducegen/internal/tensor"
	"github.com/pkg/errors"
)

// registerReduceOps registers one handler per reduction kind: ReduceSum, ReduceMean, ...
func (r *Registry) registerReduceOps() {
	for _, kind := range reduce.OpKinds() {
		r.Register(kind.OpName(), reduceHandler(kind))
	}
}

// ReduceAttributes reads the static attributes of a Reduce* node.
// ONNX defaults are keepdims=1 and noop_with_empty_axes=0.
func ReduceAttributes(node *Node) *reduce.Attributes {
	return reduce.NewAttributes(
		GetAttrInts(node, "axes"),
		GetAttrInt(node, "keepdims", 1) != 0,
		GetAttrInt(node, "noop_with_empty_axes", 0) != 0,
	)
}

func reduceHandler(kind reduce.Kind) OpHandler {
	return func(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
		if ctx == nil || ctx.Backend == nil {
			return nil, errors.Errorf("%s: no executor in context", node.OpType)
		}

		tensors := make([]reduce.Tensor, len(inputs))
		for i, input := range inputs {
			tensors[i] = input
		}
		loader, err := reduce.Prepare(kind, tensors, ReduceAttributes(node))
		if err != nil {
			return nil, errors.WithMessagef(err, "node %q", node.Name)
		}

		var p *reduce.Program
		if ctx.Programs != nil {
			p, err = ctx.Programs.Load(loader)
		} else {
			p, err = loader.Get()
		}
		if err != nil {
			return nil, errors.WithMessagef(err, "node %q", node.Name)
		}

		output, err := ctx.Backend.RunProgram(p, inputs[0])
		if err != nil {
			return nil, errors.WithMessagef(err, "node %q on %s", node.Name, ctx.Backend.Name())
		}
		return []*tensor.RawTensor{output}, nil
	}
}
