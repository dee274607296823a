package pool

import (
	"errors"
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/maxpool/internal/tensor"
)

func TestPooledSize(t *testing.T) {
	tests := []struct {
		name                        string
		width, height, size, stride int
		wantWidth, wantHeight       int
	}{
		{"4x4 pool 2 stride 2", 4, 4, 2, 2, 2, 2},
		{"5x5 pool 2 stride 2 drops trailing", 5, 5, 2, 2, 2, 2},
		{"5x5 pool 3 stride 1", 5, 5, 3, 1, 3, 3},
		{"7x5 pool 3 stride 2", 7, 5, 3, 2, 3, 2},
		{"pool covers whole plane", 6, 6, 6, 4, 1, 1},
		{"1x1 pool", 3, 2, 1, 1, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, ph := PooledSize(tt.width, tt.height, tt.size, tt.stride)
			assert.Equal(t, tt.wantWidth, pw)
			assert.Equal(t, tt.wantHeight, ph)
		})
	}
}

func TestGeometryValidate(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
	}{
		{"zero width", Geometry{Width: 0, Height: 4, Depth: 1, PoolSize: 2, PoolStride: 2}},
		{"negative height", Geometry{Width: 4, Height: -1, Depth: 1, PoolSize: 2, PoolStride: 2}},
		{"zero depth", Geometry{Width: 4, Height: 4, Depth: 0, PoolSize: 2, PoolStride: 2}},
		{"zero pool size", Geometry{Width: 4, Height: 4, Depth: 1, PoolSize: 0, PoolStride: 2}},
		{"zero stride", Geometry{Width: 4, Height: 4, Depth: 1, PoolSize: 2, PoolStride: 0}},
		{"pool wider than input", Geometry{Width: 2, Height: 4, Depth: 1, PoolSize: 3, PoolStride: 1}},
		{"pool taller than input", Geometry{Width: 4, Height: 2, Depth: 1, PoolSize: 3, PoolStride: 1}},
		{"plane overflows int", Geometry{Width: math.MaxInt, Height: 2, Depth: 1, PoolSize: 2, PoolStride: 1}},
		{"volume overflows int", Geometry{Width: math.MaxInt / 4, Height: 2, Depth: 3, PoolSize: 1, PoolStride: 1}},
		{"product wraps to zero", Geometry{Width: 1 << (bits.UintSize / 2), Height: 1 << (bits.UintSize / 2), Depth: 1, PoolSize: 1, PoolStride: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			require.Error(t, err)
			assert.True(t, IsInvalidArg(err))
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.False(t, errors.Is(err, ErrUnsupported))
		})
	}

	valid := Geometry{Width: 4, Height: 4, Depth: 3, PoolSize: 4, PoolStride: 7}
	assert.NoError(t, valid.Validate())

	// Largest volume that still fits.
	edge := Geometry{Width: math.MaxInt / 2, Height: 1, Depth: 2, PoolSize: 1, PoolStride: 1}
	assert.NoError(t, edge.Validate())

}

func TestGeometryShapes(t *testing.T) {
	g := Geometry{Width: 7, Height: 5, Depth: 3, PoolSize: 3, PoolStride: 2}

	assert.Equal(t, 3, g.PooledWidth())
	assert.Equal(t, 2, g.PooledHeight())
	assert.Equal(t, tensor.Shape{3, 5, 7}, g.InputShape())
	assert.Equal(t, tensor.Shape{3, 2, 3}, g.OutputShape())
	assert.Equal(t, 105, g.InputLen())
	assert.Equal(t, 18, g.OutputLen())
	assert.True(t, g.Overlapping())

	g.PoolStride = 3
	assert.False(t, g.Overlapping())
	assert.Equal(t, "7x5x3 pool=3 stride=3", g.String())
}

func TestGeometryWindow(t *testing.T) {
	g := Geometry{Width: 5, Height: 5, Depth: 1, PoolSize: 3, PoolStride: 2}

	assert.Equal(t, Window{HStart: 0, HEnd: 3, WStart: 0, WEnd: 3}, g.Window(0, 0))
	assert.Equal(t, Window{HStart: 2, HEnd: 5, WStart: 0, WEnd: 3}, g.Window(1, 0))
	assert.Equal(t, Window{HStart: 2, HEnd: 5, WStart: 2, WEnd: 5}, g.Window(1, 1))

	// Windows past the pooled extent are clipped to the plane.
	clipped := g.Window(2, 2)
	assert.Equal(t, Window{HStart: 4, HEnd: 5, WStart: 4, WEnd: 5}, clipped)
	assert.Equal(t, 1, clipped.Size())
	assert.False(t, clipped.Empty())

	// Every in-range window stays inside the plane.
	for ph := 0; ph < g.PooledHeight(); ph++ {
		for pw := 0; pw < g.PooledWidth(); pw++ {
			win := g.Window(ph, pw)
			assert.LessOrEqual(t, win.HEnd, g.Height)
			assert.LessOrEqual(t, win.WEnd, g.Width)
			assert.Equal(t, g.PoolSize*g.PoolSize, win.Size())
		}
	}

	assert.True(t, Window{HStart: 3, HEnd: 3, WStart: 0, WEnd: 2}.Empty())
	assert.Equal(t, 0, Window{HStart: 3, HEnd: 3, WStart: 0, WEnd: 2}.Size())
}

func TestGeometryDecode(t *testing.T) {
	g := Geometry{Width: 9, Height: 7, Depth: 4, PoolSize: 3, PoolStride: 2}
	pw, ph := g.PooledWidth(), g.PooledHeight()

	seen := make(map[[3]int]bool, g.OutputLen())
	for index := 0; index < g.OutputLen(); index++ {
		c, h, w := g.Decode(index)
		require.GreaterOrEqual(t, c, 0)
		require.Less(t, c, g.Depth)
		require.Less(t, h, ph)
		require.Less(t, w, pw)
		assert.Equal(t, index, (c*ph+h)*pw+w, "decode must invert row-major channel-major order")

		key := [3]int{c, h, w}
		assert.False(t, seen[key], "coordinates %v decoded twice", key)
		seen[key] = true
	}
	assert.Len(t, seen, g.OutputLen())
}
