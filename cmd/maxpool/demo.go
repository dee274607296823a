package main

import (
	"fmt"
	"io"

	"github.com/born-ml/maxpool/pooling"
)

// runDemo pools the 4x4 ramp 1..16 with a 2x2 window and stride 2, then routes
// a unit gradient back through it.
func runDemo(w io.Writer) error {
	g := pooling.Geometry{Width: 4, Height: 4, Depth: 1, PoolSize: 2, PoolStride: 2}

	input := make([]float32, g.InputLen())
	for i := range input {
		input[i] = float32(i + 1)
	}

	output := make([]float32, g.OutputLen())
	if err := pooling.Forward(output, input, g); err != nil {
		return err
	}

	outputGrad := []float32{1, 1, 1, 1}
	inputGrad := make([]float32, g.InputLen())
	if err := pooling.Backward(inputGrad, input, outputGrad, g); err != nil {
		return err
	}

	fmt.Fprintf(w, "geometry: %v\n\ninput:\n", g)
	printPlane(w, input, g.Width)
	fmt.Fprintln(w, "\npooled:")
	printPlane(w, output, g.PooledWidth())
	fmt.Fprintln(w, "\ninput gradient:")
	printPlane(w, inputGrad, g.Width)
	return nil
}

func printPlane(w io.Writer, data []float32, width int) {
	for i := 0; i < len(data); i += width {
		for _, v := range data[i : i+width] {
			fmt.Fprintf(w, "%5.0f", v)
		}
		fmt.Fprintln(w)
	}
}
