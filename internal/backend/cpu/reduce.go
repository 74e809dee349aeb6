package cpu

import (
	"github.com/born-ml/reducegen/internal/parallel"
	"github.com/born-ml/reducegen/internal/reduce"
	"github.com/born-ml/reducegen/internal/tensor"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// RunProgram evaluates p over x and returns a new tensor of shape p.Output.Shape.
//
// x must be a float32 tensor with the shape p was generated for.
func (cpu *CPUBackend) RunProgram(p *reduce.Program, x *tensor.RawTensor) (*tensor.RawTensor, error) {
	if x.DType() != tensor.Float32 {
		return nil, errors.Wrapf(reduce.ErrInvalidInputType, "cpu: %s: input is %s", p.Name, x.DType())
	}
	if !x.Shape().Equal(p.InputShape()) {
		return nil, errors.Errorf("cpu: %s: program built for shape %v, got %v", p.Name, p.InputShape(), x.Shape())
	}

	result, err := tensor.NewRaw(p.Output.Shape, p.Output.DType, cpu.device)
	if err != nil {
		return nil, errors.Wrapf(err, "cpu: %s: allocating output", p.Name)
	}

	data, out := x.AsFloat32(), result.AsFloat32()
	parallel.ForChunks(len(out), func(start, end int) {
		for pos := start; pos < end; pos++ {
			out[pos] = p.EvalAt(data, pos)
		}
	}, cpu.parallel)

	klog.V(2).Infof("cpu: ran %s over %v -> %v", p.Name, x.Shape(), p.Output.Shape)
	return result, nil
}
