package reduce

import (
	"testing"

	"github.com/born-ml/reducegen/internal/tensor"
	"github.com/janpfeifer/must"
)

func float32Input(data []float32, shape tensor.Shape) *tensor.RawTensor {
	return must.M1(tensor.FromSlice(data, shape, tensor.CPU))
}

func axesInput(axes ...int64) *tensor.RawTensor {
	return must.M1(tensor.FromSlice(axes, tensor.Shape{len(axes)}, tensor.CPU))
}

// sequence returns n float32 values 1, 2, ..., n.
func sequence(n int) []float32 {
	data := make([]float32, n)
	for i := range data {
		data[i] = float32(i + 1)
	}
	return data
}

// evalAll evaluates every output element of p on the host.
func evalAll(p *Program, data []float32) []float32 {
	out := make([]float32, p.OutputSize())
	for pos := range out {
		out[pos] = p.EvalAt(data, pos)
	}
	return out
}

func mustGenerate(t *testing.T, kind Kind, shape tensor.Shape, attrs *Attributes) *Program {
	t.Helper()
	input := float32Input(make([]float32, shape.NumElements()), shape)
	p, err := Generate(kind, []Tensor{input}, attrs)
	if err != nil {
		t.Fatalf("Generate(%s, %v): %+v", kind, shape, err)
	}
	return p
}
