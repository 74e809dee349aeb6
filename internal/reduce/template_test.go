package reduce

import (
	"testing"

	"github.com/born-ml/reducegen/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateFor(t *testing.T) {
	input := newVariable("input", tensor.Shape{2, 3, 4})
	reduced := []bool{true, false, true}

	for _, kind := range KindValues() {
		t.Run(kind.String(), func(t *testing.T) {
			tmpl, err := TemplateFor(kind, input, reduced)
			require.NoError(t, err)
			assert.Equal(t, kind, tmpl.Kind)
			assert.Contains(t, tmpl.Accumulate, "input[inputIdx]")
			assert.Equal(t, kind == Max || kind == Min, tmpl.SeedFromInput)
		})
	}
}

func TestTemplateFragments(t *testing.T) {
	input := newVariable("input", tensor.Shape{2, 3, 4})
	reduced := []bool{true, false, true}

	mean, err := TemplateFor(Mean, input, reduced)
	require.NoError(t, err)
	assert.Equal(t, "value = value / 8.0;", mean.Finalize)

	maxT, err := TemplateFor(Max, input, reduced)
	require.NoError(t, err)
	assert.Equal(t, "inputIndices[0] = 0u;\ninputIndices[2] = 0u;", maxT.Init)
	assert.Equal(t, "var value = input[inputIdx];", maxT.Prologue)
	assert.Equal(t, "value = max(value, input[inputIdx]);", maxT.Accumulate)

	l2, err := TemplateFor(L2, input, reduced)
	require.NoError(t, err)
	assert.Equal(t, "value = sqrt(value);", l2.Finalize)

	lse, err := TemplateFor(LogSumExp, input, reduced)
	require.NoError(t, err)
	assert.Equal(t, "value += exp(input[inputIdx]);", lse.Accumulate)
	assert.Equal(t, "value = log(value);", lse.Finalize)

	prod, err := TemplateFor(Prod, input, reduced)
	require.NoError(t, err)
	assert.Equal(t, "var value = 1.0;", prod.Init)

	_, err = TemplateFor(Kind(42), input, reduced)
	assert.ErrorIs(t, err, ErrUnknownKind)
}
