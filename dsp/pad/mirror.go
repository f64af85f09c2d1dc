package pad

// Mirror extrapolates src into dst by reflecting it at its edges. The edge
// sample is part of the reflection, so [1 2 3] extends to
// [.. 2 1 | 1 2 3 | 3 2 ..] and the result has period 2*len(src).
func Mirror[T Scalar](dst, src []T) error {
	if err := check1D("Mirror", dst, src, BorderMirror); err != nil {
		return err
	}
	if len(dst) == 0 {
		return nil
	}
	place1D(dst, src)
	rings1D(dst, len(src), foldReflect)
	return nil
}

// Mirror2D extrapolates src into dst by reflecting it at its edges along
// both axes. Corners are reflected along both axes.
func Mirror2D[T Scalar](dst, src *Grid[T]) error {
	if err := check2D("Mirror2D", dst, src, BorderMirror); err != nil {
		return err
	}
	if dst.Len() == 0 {
		return nil
	}
	place2D(dst, src)
	rings2D(dst, src.Rows, src.Cols, foldReflect)
	return nil
}
