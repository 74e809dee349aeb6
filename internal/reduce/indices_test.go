package reduce

import (
	"strings"
	"testing"

	"github.com/born-ml/reducegen/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableExpressions(t *testing.T) {
	scalar := newVariable("x", tensor.Shape{})
	assert.Equal(t, "u32", scalar.IndicesType())
	assert.Equal(t, "0u", scalar.IndicesToOffset("idx"))
	assert.Equal(t, "0u", scalar.OffsetToIndices("global_idx"))

	vector := newVariable("x", tensor.Shape{5})
	assert.Equal(t, "u32", vector.IndicesType())
	assert.Equal(t, "idx", vector.IndicesToOffset("idx"))
	assert.Equal(t, "idx", vector.IndicesGet("idx", 0))
	assert.Equal(t, "idx = j0;", vector.IndicesSet("idx", 0, "j0"))

	cube := newVariable("x", tensor.Shape{2, 3, 4})
	assert.Equal(t, "array<u32, 3>", cube.IndicesType())
	assert.Equal(t, "x_indicesToOffset(idx)", cube.IndicesToOffset("idx"))
	assert.Equal(t, "x_offsetToIndices(global_idx)", cube.OffsetToIndices("global_idx"))
	assert.Equal(t, "idx[1]", cube.IndicesGet("idx", 1))
	assert.Equal(t, "idx[2] = j2;", cube.IndicesSet("idx", 2, "j2"))
}

func TestVariableImpl(t *testing.T) {
	cube := newVariable("x", tensor.Shape{2, 3, 4})

	var sb strings.Builder
	require.NoError(t, cube.WriteIndicesToOffsetImpl(&sb))
	assert.Equal(t, "fn x_indicesToOffset(indices: array<u32, 3>) -> u32 {\n"+
		"  return indices[0] * 12u + indices[1] * 4u + indices[2];\n}\n\n", sb.String())

	sb.Reset()
	require.NoError(t, cube.WriteOffsetToIndicesImpl(&sb))
	assert.Equal(t, "fn x_offsetToIndices(offset: u32) -> array<u32, 3> {\n"+
		"  var indices: array<u32, 3>;\n"+
		"  var current = offset;\n"+
		"  indices[0] = current / 12u;\n"+
		"  current = current % 12u;\n"+
		"  indices[1] = current / 4u;\n"+
		"  current = current % 4u;\n"+
		"  indices[2] = current;\n"+
		"  return indices;\n}\n\n", sb.String())

	// Low ranks inline their expressions and need no helper.
	sb.Reset()
	require.NoError(t, newVariable("x", tensor.Shape{7}).WriteIndicesToOffsetImpl(&sb))
	require.NoError(t, newVariable("x", tensor.Shape{}).WriteOffsetToIndicesImpl(&sb))
	assert.Empty(t, sb.String())
}

// TestVariableHostBijection checks offset -> indices -> offset is the identity, so no two
// dispatch positions can alias the same element.
func TestVariableHostBijection(t *testing.T) {
	for _, shape := range []tensor.Shape{{}, {6}, {2, 3}, {3, 1, 4}, {2, 2, 3, 2}} {
		v := newVariable("x", shape)
		indices := make([]int, v.Rank())
		seen := make(map[string]bool)
		for offset := 0; offset < shape.NumElements(); offset++ {
			v.offsetToIndices(offset, indices)
			for axis, idx := range indices {
				require.Less(t, idx, shape[axis], "shape %v offset %d", shape, offset)
			}
			key := tensor.Shape(indices).Key()
			require.False(t, seen[key], "shape %v: indices %v produced twice", shape, indices)
			seen[key] = true
			require.Equal(t, offset, v.indicesToOffset(indices), "shape %v", shape)
		}
	}
}
