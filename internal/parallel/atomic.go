package parallel

import (
	"math"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/born-ml/maxpool/internal/tensor"
)

// groupCounter hands out group numbers to workers. The padding keeps the hot
// counter on its own cache line.
type groupCounter struct {
	_ cpu.CacheLinePad
	n atomic.Int64
	_ cpu.CacheLinePad
}

// take returns the next unclaimed group number.
func (c *groupCounter) take() int {
	return int(c.n.Add(1) - 1)
}

// AtomicAdd adds delta to *addr as a single read-modify-write.
//
// Go has no floating point atomics, so the value's IEEE-754 bit pattern is
// updated with a compare-and-swap loop. Concurrent callers targeting the same
// address never lose an update.
func AtomicAdd[T tensor.Float](addr *T, delta T) {
	switch unsafe.Sizeof(delta) {
	case 4:
		p := (*uint32)(unsafe.Pointer(addr))
		for {
			old := atomic.LoadUint32(p)
			sum := math.Float32frombits(old) + float32(delta)
			if atomic.CompareAndSwapUint32(p, old, math.Float32bits(sum)) {
				return
			}
		}
	default:
		p := (*uint64)(unsafe.Pointer(addr))
		for {
			old := atomic.LoadUint64(p)
			sum := math.Float64frombits(old) + float64(delta)
			if atomic.CompareAndSwapUint64(p, old, math.Float64bits(sum)) {
				return
			}
		}
	}
}
