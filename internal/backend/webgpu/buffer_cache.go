//go:build windows

package webgpu

import (
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
)

// maxCachedPerKey bounds how many idle buffers are kept for one size and usage.
const maxCachedPerKey = 4

// bufferKey identifies interchangeable device buffers.
type bufferKey struct {
	size  uint64
	usage wgpu.BufferUsage
}

// bufferCache keeps idle device buffers for reuse. Pooling in a training loop
// repeats the same geometry every step, so result and staging buffers of the
// exact same size come back on every call.
type bufferCache struct {
	device *wgpu.Device
	free   map[bufferKey][]*wgpu.Buffer
	mu     sync.Mutex

	// Statistics
	hits   uint64
	misses uint64
}

func newBufferCache(device *wgpu.Device) *bufferCache {
	return &bufferCache{
		device: device,
		free:   make(map[bufferKey][]*wgpu.Buffer),
	}
}

// acquire returns an idle buffer of exactly size bytes and usage, or creates one.
// Contents of a reused buffer are undefined.
func (c *bufferCache) acquire(size uint64, usage wgpu.BufferUsage) *wgpu.Buffer {
	key := bufferKey{size: size, usage: usage}

	c.mu.Lock()
	defer c.mu.Unlock()

	if idle := c.free[key]; len(idle) > 0 {
		buffer := idle[len(idle)-1]
		c.free[key] = idle[:len(idle)-1]
		c.hits++
		return buffer
	}

	c.misses++
	return c.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: usage,
		Size:  size,
	})
}

// release hands a buffer back. Buffers beyond maxCachedPerKey are destroyed.
func (c *bufferCache) release(buffer *wgpu.Buffer, size uint64, usage wgpu.BufferUsage) {
	key := bufferKey{size: size, usage: usage}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.free[key]) >= maxCachedPerKey {
		buffer.Release()
		return
	}
	c.free[key] = append(c.free[key], buffer)
}

// clear destroys every idle buffer.
func (c *bufferCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, idle := range c.free {
		for _, buffer := range idle {
			buffer.Release()
		}
		delete(c.free, key)
	}
}

// stats reports cache hits, misses and the number of idle buffers.
func (c *bufferCache) stats() (hits, misses uint64, idle int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, buffers := range c.free {
		idle += len(buffers)
	}
	return c.hits, c.misses, idle
}
