package pool

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowMax(t *testing.T) {
	// 4x4 plane holding 1..16.
	plane := make([]float32, 16)
	for i := range plane {
		plane[i] = float32(i + 1)
	}
	g := Geometry{Width: 4, Height: 4, Depth: 1, PoolSize: 2, PoolStride: 2}

	want := []float32{6, 8, 14, 16}
	for ph := 0; ph < 2; ph++ {
		for pw := 0; pw < 2; pw++ {
			assert.Equal(t, want[ph*2+pw], WindowMax(plane, 4, g.Window(ph, pw)))
		}
	}
}

func TestWindowMax_Negative(t *testing.T) {
	plane := []float64{-7, -3, -9, -4}
	win := Window{HStart: 0, HEnd: 2, WStart: 0, WEnd: 2}

	assert.Equal(t, -3.0, WindowMax(plane, 2, win))
	assert.Equal(t, 1, WindowArgMax(plane, 2, win))
}

func TestWindowMax_Infinite(t *testing.T) {
	negInf := math.Inf(-1)
	plane := []float64{negInf, negInf, negInf, negInf}
	win := Window{HStart: 0, HEnd: 2, WStart: 0, WEnd: 2}

	assert.True(t, math.IsInf(WindowMax(plane, 2, win), -1))
	assert.Equal(t, 0, WindowArgMax(plane, 2, win))
}

func TestWindowArgMax_TieBreak(t *testing.T) {
	tests := []struct {
		name  string
		plane []float32
		want  int
	}{
		{"all equal picks first", []float32{2, 2, 2, 2}, 0},
		{"tie across rows picks earlier row", []float32{1, 5, 5, 2}, 1},
		{"tie in second row picks leftmost", []float32{0, 1, 3, 3}, 2},
		{"unique maximum", []float32{0, 1, 2, 9}, 3},
	}
	win := Window{HStart: 0, HEnd: 2, WStart: 0, WEnd: 2}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WindowArgMax(tt.plane, 2, win))
		})
	}
}

func TestWindowArgMax_PlaneRelative(t *testing.T) {
	// 3x4 plane, window rows [1,3) cols [2,4).
	plane := []float32{
		0, 0, 0, 0,
		0, 0, 4, 1,
		0, 0, 2, 4,
	}
	win := Window{HStart: 1, HEnd: 3, WStart: 2, WEnd: 4}

	assert.Equal(t, 6, WindowArgMax(plane, 4, win))
	assert.Equal(t, float32(4), WindowMax(plane, 4, win))
}
