package cpu

import (
	"math"
	"testing"

	"github.com/born-ml/reducegen/internal/parallel"
	"github.com/born-ml/reducegen/internal/reduce"
	"github.com/born-ml/reducegen/internal/tensor"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, kind reduce.Kind, x *tensor.RawTensor, attrs *reduce.Attributes) *reduce.Program {
	t.Helper()
	p, err := reduce.Generate(kind, []reduce.Tensor{x}, attrs)
	require.NoError(t, err)
	return p
}

func TestCPUBackend_New(t *testing.T) {
	backend := New()
	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
}

func TestCPUBackend_RunProgram(t *testing.T) {
	backend := New()
	x := must.M1(tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.CPU))

	tests := []struct {
		kind  reduce.Kind
		attrs *reduce.Attributes
		shape tensor.Shape
		want  []float32
	}{
		{reduce.Sum, reduce.NewAttributes([]int64{1}, false, false), tensor.Shape{2}, []float32{6, 15}},
		{reduce.Sum, reduce.NewAttributes([]int64{0}, true, false), tensor.Shape{1, 3}, []float32{5, 7, 9}},
		{reduce.Mean, reduce.NewAttributes(nil, false, false), tensor.Shape{}, []float32{3.5}},
		{reduce.Max, reduce.NewAttributes([]int64{1}, false, false), tensor.Shape{2}, []float32{3, 6}},
		{reduce.Min, reduce.NewAttributes([]int64{-1}, true, false), tensor.Shape{2, 1}, []float32{1, 4}},
		{reduce.Prod, reduce.NewAttributes([]int64{1}, false, false), tensor.Shape{2}, []float32{6, 120}},
		{reduce.Sum, reduce.NewAttributes(nil, false, true), tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.OpName(), func(t *testing.T) {
			result, err := backend.RunProgram(generate(t, tt.kind, x, tt.attrs), x)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, result.Shape())
			assert.Equal(t, tensor.CPU, result.Device())
			assert.Equal(t, tt.want, result.AsFloat32())
		})
	}
}

// TestCPUBackend_ParallelMatchesSequential runs a large reduction with both configurations;
// every output element must be bit-identical since each is computed independently.
func TestCPUBackend_ParallelMatchesSequential(t *testing.T) {
	shape := tensor.Shape{33, 17, 9}
	data := make([]float32, shape.NumElements())
	for i := range data {
		data[i] = float32(math.Sin(float64(i)))
	}
	x := must.M1(tensor.FromSlice(data, shape, tensor.CPU))

	for _, kind := range reduce.OpKinds() {
		p := generate(t, kind, x, reduce.NewAttributes([]int64{1}, false, false))
		seq, err := NewWithConfig(parallel.Sequential()).RunProgram(p, x)
		require.NoError(t, err)
		par, err := NewWithConfig(parallel.Config{Enabled: true, NumWorkers: 8, MinChunkSize: 4}).RunProgram(p, x)
		require.NoError(t, err)
		assert.Equal(t, seq.AsFloat32(), par.AsFloat32(), kind.String())
	}
}

func TestCPUBackend_RunProgramErrors(t *testing.T) {
	backend := New()
	x := must.M1(tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.CPU))
	p := generate(t, reduce.Sum, x, reduce.NewAttributes([]int64{1}, false, false))

	other := must.M1(tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2}, tensor.CPU))
	_, err := backend.RunProgram(p, other)
	assert.Error(t, err)

	ints := must.M1(tensor.FromSlice([]int32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.CPU))
	_, err = backend.RunProgram(p, ints)
	assert.ErrorIs(t, err, reduce.ErrInvalidInputType)
}

func TestCPUBackend_EmptyOutput(t *testing.T) {
	x := must.M1(tensor.FromSlice([]float32{}, tensor.Shape{0, 4}, tensor.CPU))
	p := generate(t, reduce.Sum, x, reduce.NewAttributes([]int64{1}, false, false))

	result, err := New().RunProgram(p, x)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{0}, result.Shape())
	assert.Empty(t, result.AsFloat32())
}
