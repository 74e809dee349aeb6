package reduce

import (
	"sync"
	"testing"

	"github.com/born-ml/reducegen/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheLoad(t *testing.T) {
	cache := NewCache()
	x := float32Input(sequence(6), tensor.Shape{2, 3})

	loader, err := Prepare(Sum, []Tensor{x}, NewAttributes([]int64{1}, false, false))
	require.NoError(t, err)

	const workers = 16
	programs := make([]*Program, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := cache.Load(loader)
			assert.NoError(t, err)
			programs[i] = p
		}()
	}
	wg.Wait()

	require.NotNil(t, programs[0])
	for _, p := range programs[1:] {
		assert.Same(t, programs[0], p)
	}
	assert.Equal(t, 1, cache.Len())

	// Same key through the axes tensor: a hit.
	again, err := Prepare(Sum, []Tensor{x, axesInput(1)}, nil)
	require.NoError(t, err)
	p, err := cache.Load(again)
	require.NoError(t, err)
	assert.Same(t, programs[0], p)
	assert.Equal(t, 1, cache.Len())

	other, err := Prepare(Max, []Tensor{x}, NewAttributes([]int64{1}, false, false))
	require.NoError(t, err)
	_, err = cache.Load(other)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())
}
