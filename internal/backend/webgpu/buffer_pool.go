//go:build windows

package webgpu

import (
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
)

// maxPoolSize bounds the idle buffers kept per usage.
const maxPoolSize = 32

// pooledBuffer wraps a GPU buffer with metadata.
type pooledBuffer struct {
	buffer *wgpu.Buffer
	size   uint64
}

// BufferPool reuses storage buffers between program runs.
// Buffers are grouped by usage flags and handed out when large enough.
type BufferPool struct {
	device *wgpu.Device
	idle   map[wgpu.BufferUsage][]pooledBuffer
	mu     sync.Mutex

	hits, misses uint64
}

// NewBufferPool creates a new buffer pool for the given device.
func NewBufferPool(device *wgpu.Device) *BufferPool {
	return &BufferPool{
		device: device,
		idle:   make(map[wgpu.BufferUsage][]pooledBuffer),
	}
}

// Acquire returns a buffer of at least size bytes with exactly the given usage.
func (p *BufferPool) Acquire(size uint64, usage wgpu.BufferUsage) *wgpu.Buffer {
	p.mu.Lock()
	defer p.mu.Unlock()

	pool := p.idle[usage]
	for i, pb := range pool {
		if pb.size >= size {
			p.idle[usage] = append(pool[:i], pool[i+1:]...)
			p.hits++
			return pb.buffer
		}
	}

	p.misses++
	return p.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: usage,
		Size:  size,
	})
}

// Release returns a buffer to the pool. If the pool is full the buffer is released.
func (p *BufferPool) Release(buffer *wgpu.Buffer, size uint64, usage wgpu.BufferUsage) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.idle[usage]) >= maxPoolSize {
		buffer.Release()
		return
	}
	p.idle[usage] = append(p.idle[usage], pooledBuffer{buffer: buffer, size: size})
}

// Stats returns the number of acquisitions served from the pool and the number that
// allocated a new buffer.
func (p *BufferPool) Stats() (hits, misses uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits, p.misses
}

// Clear releases all pooled buffers.
func (p *BufferPool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for usage, pool := range p.idle {
		for _, pb := range pool {
			pb.buffer.Release()
		}
		delete(p.idle, usage)
	}
}
