package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindNames(t *testing.T) {
	assert.Equal(t, "ReduceSum", Sum.OpName())
	assert.Equal(t, "ReduceLogSumExp", LogSumExp.OpName())
	assert.Equal(t, "SumSquare", SumSquare.String())

	k, err := KindString("L2")
	require.NoError(t, err)
	assert.Equal(t, L2, k)

	_, err = KindString("Median")
	assert.Error(t, err)
	assert.False(t, Kind(-1).IsAKind())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestOpKinds(t *testing.T) {
	kinds := OpKinds()
	assert.Len(t, kinds, len(KindValues())-1)
	assert.NotContains(t, kinds, NoOp)
}
