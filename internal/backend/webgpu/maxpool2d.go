//go:build windows

package webgpu

import (
	"encoding/binary"

	"github.com/born-ml/maxpool/internal/pool"
	"github.com/born-ml/maxpool/internal/tensor"
	"github.com/go-webgpu/webgpu/wgpu"
)

// paramsSize is the byte size of the Params uniform (9 x u32, padded to 16).
const paramsSize = 48

// encodeParams packs the pooling geometry into the Params uniform layout.
//
//nolint:gosec // G115: Safe conversions, checkGeometry keeps every count within u32
func encodeParams(g pool.Geometry, groupsX uint32) []byte {
	params := make([]byte, paramsSize)
	fields := []uint32{
		uint32(g.OutputLen()),
		uint32(g.Depth),
		uint32(g.Height),
		uint32(g.Width),
		uint32(g.PooledHeight()),
		uint32(g.PooledWidth()),
		uint32(g.PoolSize),
		uint32(g.PoolStride),
		groupsX,
	}
	for i, v := range fields {
		binary.LittleEndian.PutUint32(params[i*4:i*4+4], v)
	}
	return params
}

// checkGeometry rejects geometries the shaders cannot run. An oversized
// binding would invalidate the pass without an error and leave stale data in
// a reused result buffer, so it must be caught before dispatch.
func (b *Backend) checkGeometry(op string, g pool.Geometry) error {
	if err := g.Validate(); err != nil {
		return err
	}
	return g.CheckLimits(op, tensor.Float32.Size(), b.Limits())
}

// MaxPool2D runs the forward pooling shader and writes the result into output.
// Buffer sizes must already match g.
func (b *Backend) MaxPool2D(output, input []float32, g pool.Geometry) error {
	if err := b.checkGeometry("MaxPool2D", g); err != nil {
		return err
	}

	shader := b.compileShader("maxpool2d", maxpool2dShader)
	pipeline := b.getOrCreatePipeline("maxpool2d", shader)

	inputBytes := float32Bytes(input)
	bufferInput := b.createBuffer(inputBytes, wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferInput.Release()

	// Every slot is written by the shader, so a reused buffer needs no reset.
	outputBytes := float32Bytes(output)
	resultSize := uint64(len(outputBytes))
	resultUsage := wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst
	bufferResult := b.buffers.acquire(resultSize, resultUsage)
	defer b.buffers.release(bufferResult, resultSize, resultUsage)

	groupsX, groupsY := dispatchSize(g.OutputLen())
	bufferParams := b.createUniformBuffer(encodeParams(g, groupsX))
	defer bufferParams.Release()

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := b.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferInput, 0, uint64(len(inputBytes))),
		wgpu.BufferBindingEntry(1, bufferResult, 0, resultSize),
		wgpu.BufferBindingEntry(2, bufferParams, 0, paramsSize),
	})
	defer bindGroup.Release()

	b.dispatch(pipeline, bindGroup, groupsX, groupsY)

	return b.readBuffer(bufferResult, outputBytes)
}

// MaxPool2DBackward runs the backward shader. inputGrad is uploaded, accumulated
// into on the GPU with atomic adds, and copied back in place.
func (b *Backend) MaxPool2DBackward(inputGrad, input, outputGrad []float32, g pool.Geometry) error {
	if err := b.checkGeometry("MaxPool2DBackward", g); err != nil {
		return err
	}

	shader := b.compileShader("maxpool2d_backward", maxpool2dBackwardShader)
	pipeline := b.getOrCreatePipeline("maxpool2d_backward", shader)

	inputBytes := float32Bytes(input)
	bufferInput := b.createBuffer(inputBytes, wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferInput.Release()

	outputGradBytes := float32Bytes(outputGrad)
	bufferOutputGrad := b.createBuffer(outputGradBytes, wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferOutputGrad.Release()

	gradBytes := float32Bytes(inputGrad)
	gradSize := uint64(len(gradBytes))
	bufferInputGrad := b.createBuffer(gradBytes, wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc|wgpu.BufferUsageCopyDst)
	defer bufferInputGrad.Release()

	groupsX, groupsY := dispatchSize(g.OutputLen())
	bufferParams := b.createUniformBuffer(encodeParams(g, groupsX))
	defer bufferParams.Release()

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := b.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferInput, 0, uint64(len(inputBytes))),
		wgpu.BufferBindingEntry(1, bufferOutputGrad, 0, uint64(len(outputGradBytes))),
		wgpu.BufferBindingEntry(2, bufferInputGrad, 0, gradSize),
		wgpu.BufferBindingEntry(3, bufferParams, 0, paramsSize),
	})
	defer bindGroup.Release()

	b.dispatch(pipeline, bindGroup, groupsX, groupsY)

	return b.readBuffer(bufferInputGrad, gradBytes)
}

// dispatch records one compute pass and submits it.
func (b *Backend) dispatch(pipeline *wgpu.ComputePipeline, bindGroup *wgpu.BindGroup, groupsX, groupsY uint32) {
	encoder := b.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)

	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)
	computePass.DispatchWorkgroups(groupsX, groupsY, 1)
	computePass.End()

	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)
}
