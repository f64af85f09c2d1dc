package conv

import (
	"fmt"

	"github.com/cwbudde/algo-border/dsp/pad"
)

// Filter2D convolves src with kernel into dst, which must have the shape of
// src. The kernel is centred at ((rows-1)/2, (cols-1)/2) and samples beyond
// the edges of src come from the configured border policy, extrapolated
// along both axes.
//
// 2D filtering is always direct; DirectThreshold does not apply.
func Filter2D(dst, src, kernel *pad.Grid[float64], opts ...Option) error {
	for _, g := range []*pad.Grid[float64]{dst, src, kernel} {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("conv: %w", err)
		}
	}
	if src.Len() == 0 {
		return ErrEmptyInput
	}
	if kernel.Len() == 0 {
		return ErrEmptyKernel
	}
	if !dst.Shape().Equal(src.Shape()) {
		return fmt.Errorf("%w: expected %v, got %v", ErrLengthMismatch, src.Shape(), dst.Shape())
	}

	cfg := ApplyOptions(opts...)
	// One spare row and column put the kernel centre on the floor of the
	// half-width, as in the 1D filter.
	padded := pad.NewGrid[float64](src.Rows+kernel.Rows, src.Cols+kernel.Cols)
	if err := pad.Extrapolate2D(padded, src, cfg.Border, cfg.Value); err != nil {
		return fmt.Errorf("conv: extrapolate input: %w", err)
	}

	// Flip the kernel along both axes so the inner loop is a correlation.
	flipped := pad.NewGrid[float64](kernel.Rows, kernel.Cols)
	for r := 0; r < kernel.Rows; r++ {
		row := kernel.Row(kernel.Rows - 1 - r)
		out := flipped.Row(r)
		for c, h := range row {
			out[kernel.Cols-1-c] = h
		}
	}

	prod := make([]float64, kernel.Cols)
	acc := make([]float64, src.Cols)
	for r := 0; r < dst.Rows; r++ {
		out := dst.Row(r)
		clear(out)
		for i := 0; i < kernel.Rows; i++ {
			correlateValid(acc, padded.Row(r+i), flipped.Row(i), prod)
			for c, v := range acc {
				out[c] += v
			}
		}
	}
	return nil
}
