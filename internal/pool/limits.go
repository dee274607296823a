package pool

import "math"

// DeviceLimits bounds the pooling calls an accelerator can run.
type DeviceLimits struct {
	MaxBindingSize uint64 // Largest storage buffer binding in bytes
	MaxElements    uint64 // Largest element count or dimension the kernels can index
}

// Uint32Elements is the index range of kernels that address buffers with u32.
const Uint32Elements = math.MaxUint32

// CheckLimits reports an Unsupported error when g needs more than lim allows
// for elements of elemSize bytes. Call it after Validate.
func (g Geometry) CheckLimits(op string, elemSize int, lim DeviceLimits) error {
	//nolint:gosec // G115: validated geometry is positive and InputLen does not overflow
	counts := []uint64{uint64(g.Width), uint64(g.Height), uint64(g.Depth), uint64(g.InputLen())}
	for _, n := range counts {
		if n > lim.MaxElements {
			return NewUnsupportedError(op, "geometry %v exceeds the device index range of %d elements", g, lim.MaxElements)
		}
	}

	// The input is the largest buffer; the input gradient has the same size.
	//nolint:gosec // G115: element sizes are 4 or 8
	if inputBytes := uint64(g.InputLen()); inputBytes > lim.MaxBindingSize/uint64(elemSize) {
		return NewUnsupportedError(op, "geometry %v needs %d-byte buffers, device binding limit is %d bytes",
			g, inputBytes*uint64(elemSize), lim.MaxBindingSize)
	}
	return nil
}
