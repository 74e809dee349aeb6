package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"scalar", Shape{}, 1},
		{"vector", Shape{5}, 5},
		{"matrix", Shape{2, 3}, 6},
		{"zero dim", Shape{4, 0, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.NumElements())
		})
	}
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{}, Shape{}.ComputeStrides())
}

func TestShapeKey(t *testing.T) {
	assert.Equal(t, "2,3,4", Shape{2, 3, 4}.Key())
	assert.Equal(t, "", Shape{}.Key())
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{0, 3}.Validate())
	assert.Error(t, Shape{2, -1}.Validate())
}

func TestShapeEqualAndClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	assert.True(t, s.Equal(c))
	c[0] = 7
	assert.False(t, s.Equal(c))
	assert.False(t, s.Equal(Shape{2}))
}
