package pad

import "github.com/cwbudde/algo-border/dsp/core"

// Constant extrapolates src into dst, filling the border with value.
// If dst and src have the same length this is a plain copy.
func Constant[T Scalar](dst, src []T, value T) error {
	if err := check1D("Constant", dst, src, BorderConstant); err != nil {
		return err
	}
	core.Fill(dst, value)
	place1D(dst, src)
	return nil
}

// Zero extrapolates src into dst, filling the border with the zero value.
func Zero[T Scalar](dst, src []T) error {
	var zero T
	return Constant(dst, src, zero)
}

// Constant2D extrapolates src into dst, filling the border with value.
func Constant2D[T Scalar](dst, src *Grid[T], value T) error {
	if err := check2D("Constant2D", dst, src, BorderConstant); err != nil {
		return err
	}
	for r := 0; r < dst.Rows; r++ {
		core.Fill(dst.Row(r), value)
	}
	place2D(dst, src)
	return nil
}

// Zero2D extrapolates src into dst, filling the border with the zero value.
func Zero2D[T Scalar](dst, src *Grid[T]) error {
	var zero T
	return Constant2D(dst, src, zero)
}
