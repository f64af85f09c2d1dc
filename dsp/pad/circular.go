package pad

// Circular extrapolates src into dst by repeating it periodically, so that
// dst[i] == src[(i-offset) mod len(src)].
func Circular[T Scalar](dst, src []T) error {
	if err := check1D("Circular", dst, src, BorderCircular); err != nil {
		return err
	}
	if len(dst) == 0 {
		return nil
	}
	place1D(dst, src)
	rings1D(dst, len(src), foldWrap)
	return nil
}

// Circular2D extrapolates src into dst by tiling it periodically along
// both axes.
func Circular2D[T Scalar](dst, src *Grid[T]) error {
	if err := check2D("Circular2D", dst, src, BorderCircular); err != nil {
		return err
	}
	if dst.Len() == 0 {
		return nil
	}
	place2D(dst, src)
	rings2D(dst, src.Rows, src.Cols, foldWrap)
	return nil
}
