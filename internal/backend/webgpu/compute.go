//go:build windows

package webgpu

import (
	"unsafe"

	"github.com/born-ml/reducegen/internal/reduce"
	"github.com/born-ml/reducegen/internal/tensor"
	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// minBindingSize is the smallest storage binding handed to the device; empty tensors are
// padded to it.
const minBindingSize = 4

// compileShader compiles WGSL shader code into a ShaderModule.
// Results are cached under key.
func (b *Backend) compileShader(key, code string) *wgpu.ShaderModule {
	b.mu.RLock()
	if shader, exists := b.shaders[key]; exists {
		b.mu.RUnlock()
		return shader
	}
	b.mu.RUnlock()

	klog.V(1).Infof("webgpu: compiling %s", key)
	shader := b.device.CreateShaderModuleWGSL(code)

	b.mu.Lock()
	b.shaders[key] = shader
	b.mu.Unlock()

	return shader
}

// getOrCreatePipeline returns a cached ComputePipeline or creates a new one.
func (b *Backend) getOrCreatePipeline(key string, shader *wgpu.ShaderModule) *wgpu.ComputePipeline {
	b.mu.RLock()
	if pipeline, exists := b.pipelines[key]; exists {
		b.mu.RUnlock()
		return pipeline
	}
	b.mu.RUnlock()

	// Auto layout from the shader's bindings.
	pipeline := b.device.CreateComputePipelineSimple(nil, shader, "main")

	b.mu.Lock()
	b.pipelines[key] = pipeline
	b.mu.Unlock()

	return pipeline
}

// createBuffer creates a GPU buffer of at least minBindingSize bytes holding data.
func (b *Backend) createBuffer(data []byte, usage wgpu.BufferUsage) (*wgpu.Buffer, uint64) {
	size := uint64(max(len(data), minBindingSize))

	buffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	copy(mappedSlice, data)
	buffer.Unmap()

	return buffer, size
}

// readBuffer reads data back from a GPU buffer to CPU memory.
// Uses a staging buffer since storage buffers can't be mapped directly.
func (b *Backend) readBuffer(srcBuffer *wgpu.Buffer, size uint64) ([]byte, error) {
	stagingBuffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer stagingBuffer.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(srcBuffer, 0, stagingBuffer, 0, size)
	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)

	if err := stagingBuffer.MapAsync(b.device, wgpu.MapModeRead, 0, size); err != nil {
		return nil, errors.Wrap(err, "failed to map staging buffer")
	}

	mappedPtr := stagingBuffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	result := make([]byte, size)
	copy(result, mappedSlice)
	stagingBuffer.Unmap()

	return result, nil
}

// RunProgram dispatches p over x and reads the result back into a new host tensor.
//
// Binding 0 holds x and binding 1 the output. The grid is p.DispatchGroup(). A program
// with an empty output is not dispatched.
func (b *Backend) RunProgram(p *reduce.Program, x *tensor.RawTensor) (*tensor.RawTensor, error) {
	if x.DType() != tensor.Float32 {
		return nil, errors.Wrapf(reduce.ErrInvalidInputType, "webgpu: %s: input is %s", p.Name, x.DType())
	}
	if !x.Shape().Equal(p.InputShape()) {
		return nil, errors.Errorf("webgpu: %s: program built for shape %v, got %v", p.Name, p.InputShape(), x.Shape())
	}

	result, err := tensor.NewRaw(p.Output.Shape, p.Output.DType, tensor.WebGPU)
	if err != nil {
		return nil, errors.Wrapf(err, "webgpu: %s: allocating output", p.Name)
	}
	if p.OutputSize() == 0 {
		return result, nil
	}

	shader := b.compileShader(p.CacheKey, p.Source)
	pipeline := b.getOrCreatePipeline(p.CacheKey, shader)

	bufferInput, inputSize := b.createBuffer(x.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferInput.Release()

	//nolint:gosec // G115: ByteSize() is non-negative
	outputSize := uint64(result.ByteSize())
	outputUsage := wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst
	bufferOutput := b.bufferPool.Acquire(outputSize, outputUsage)
	defer b.bufferPool.Release(bufferOutput, outputSize, outputUsage)

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := b.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferInput, 0, inputSize),
		wgpu.BufferBindingEntry(1, bufferOutput, 0, outputSize),
	})
	defer bindGroup.Release()

	grid := p.DispatchGroup()
	encoder := b.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)
	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)
	computePass.DispatchWorkgroups(grid.X, grid.Y, grid.Z)
	computePass.End()

	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)

	data, err := b.readBuffer(bufferOutput, outputSize)
	if err != nil {
		return nil, errors.Wrapf(err, "webgpu: %s", p.Name)
	}
	copy(result.Data(), data)

	if klog.V(2).Enabled() {
		hits, misses := b.bufferPool.Stats()
		klog.Infof("webgpu: ran %s with grid %+v (buffer pool hits=%d misses=%d)", p.Name, grid, hits, misses)
	}
	return result, nil
}
