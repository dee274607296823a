package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedFloat32 float32

func TestDataTypeOf(t *testing.T) {
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Float64, DataTypeOf[float64]())
	assert.Equal(t, Float32, DataTypeOf[namedFloat32]())
}

func TestDataTypeSizeAndString(t *testing.T) {
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 8, Float64.Size())
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "float64", Float64.String())
	assert.Equal(t, "unknown", DataType(42).String())
	assert.Panics(t, func() { DataType(42).Size() })
}

func TestDeviceString(t *testing.T) {
	assert.Equal(t, "CPU", CPU.String())
	assert.Equal(t, "WebGPU", WebGPU.String())
	assert.Equal(t, "Unknown", Device(9).String())
}

func TestShape(t *testing.T) {
	s := Shape{3, 4, 5}
	assert.Equal(t, 60, s.NumElements())
	assert.Equal(t, []int{20, 5, 1}, s.ComputeStrides())
	assert.NoError(t, s.Validate())
	assert.True(t, s.Equal(Shape{3, 4, 5}))
	assert.False(t, s.Equal(Shape{3, 4}))
	assert.False(t, s.Equal(Shape{3, 4, 6}))

	clone := s.Clone()
	clone[0] = 7
	assert.Equal(t, 3, s[0], "Clone must not alias the original")

	assert.Error(t, Shape{2, 0, 3}.Validate())
	assert.Error(t, Shape{-1}.Validate())
	assert.Equal(t, 1, Shape{}.NumElements())
}

func TestNewView(t *testing.T) {
	data := make([]float32, 2*3*4)
	for i := range data {
		data[i] = float32(i)
	}

	v, err := NewView(data, Shape{2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, 2, v.Depth())
	assert.Equal(t, 3, v.Height())
	assert.Equal(t, 4, v.Width())
	assert.Equal(t, []int{12, 4, 1}, v.Strides())
	assert.True(t, v.Shape().Equal(Shape{2, 3, 4}))
	assert.Len(t, v.Data(), 24)

	assert.Equal(t, 1*12+2*4+3, v.Offset(1, 2, 3))
	assert.Equal(t, float32(23), v.At(1, 2, 3))

	v.Set(0, 1, 1, -1)
	assert.Equal(t, float32(-1), data[5], "Set must write through to the caller buffer")
}

func TestNewView_Errors(t *testing.T) {
	tests := []struct {
		name  string
		len   int
		shape Shape
	}{
		{"2D shape", 6, Shape{2, 3}},
		{"4D shape", 6, Shape{1, 1, 2, 3}},
		{"zero dimension", 0, Shape{0, 2, 3}},
		{"short buffer", 5, Shape{1, 2, 3}},
		{"long buffer", 7, Shape{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewView(make([]float64, tt.len), tt.shape)
			assert.Error(t, err)
		})
	}
}

func TestViewChannel(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	v := MustView(data, Shape{2, 2, 2})

	ch := v.Channel(1)
	assert.Equal(t, []float64{5, 6, 7, 8}, ch)
	assert.Equal(t, 4, cap(ch), "channel slice must not reach into the next channel")

	ch[0] = 50
	assert.Equal(t, 50.0, data[4])

	assert.Panics(t, func() { v.Channel(2) })
	assert.Panics(t, func() { v.Channel(-1) })
}

func TestViewBounds(t *testing.T) {
	v := MustView(make([]float32, 12), Shape{1, 3, 4})

	assert.Panics(t, func() { v.Offset(0, 3, 0) })
	assert.Panics(t, func() { v.Offset(0, 0, 4) })
	assert.Panics(t, func() { v.At(1, 0, 0) })
	assert.Panics(t, func() { MustView(make([]float32, 11), Shape{1, 3, 4}) })
}
