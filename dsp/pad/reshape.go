package pad

import "strconv"

// Reshape copies src into dst, which may have any shape holding the same
// number of elements. Elements are read from src and written to dst in
// column-major order: down the first column, then down the second, and so
// on. A 2x3 grid
//
//	1 2 3
//	4 5 6
//
// reshaped to 3x2 becomes
//
//	1 5
//	4 3
//	2 6
//
// dst must not overlap src.
func Reshape[T Scalar](dst, src *Grid[T]) error {
	if err := checkReshape("Reshape", dst, src); err != nil {
		return err
	}
	if err := checkDisjoint("Reshape", src.Shape(), dst.Shape(), dst.span(), src.span()); err != nil {
		return err
	}

	i, j := 0, 0
	for c := 0; c < dst.Cols; c++ {
		for r := 0; r < dst.Rows; r++ {
			dst.Set(r, c, src.At(i, j))
			if i++; i == src.Rows {
				i, j = 0, j+1
			}
		}
	}
	return nil
}

// Flatten copies src into dst column by column, so that
// dst[c*src.Rows+r] == src.At(r, c). len(dst) must equal src.Len().
func Flatten[T Scalar](dst []T, src *Grid[T]) error {
	if err := src.validate("Flatten", "source"); err != nil {
		return err
	}
	if err := checkCount("Flatten", src.Shape(), Shape{len(dst)}); err != nil {
		return err
	}
	if err := checkDisjoint("Flatten", src.Shape(), Shape{len(dst)}, dst, src.span()); err != nil {
		return err
	}

	for c := 0; c < src.Cols; c++ {
		col := dst[c*src.Rows : (c+1)*src.Rows]
		for r := range col {
			col[r] = src.At(r, c)
		}
	}
	return nil
}

// Unflatten is the inverse of Flatten: it fills dst column by column from
// src. len(src) must equal dst.Len().
func Unflatten[T Scalar](dst *Grid[T], src []T) error {
	if err := dst.validate("Unflatten", "destination"); err != nil {
		return err
	}
	if err := checkCount("Unflatten", Shape{len(src)}, dst.Shape()); err != nil {
		return err
	}
	if err := checkDisjoint("Unflatten", Shape{len(src)}, dst.Shape(), dst.span(), src); err != nil {
		return err
	}

	for c := 0; c < dst.Cols; c++ {
		col := src[c*dst.Rows : (c+1)*dst.Rows]
		for r, v := range col {
			dst.Set(r, c, v)
		}
	}
	return nil
}

func checkReshape[T Scalar](op string, dst, src *Grid[T]) error {
	if err := src.validate(op, "source"); err != nil {
		return err
	}
	if err := dst.validate(op, "destination"); err != nil {
		return err
	}
	return checkCount(op, src.Shape(), dst.Shape())
}

// checkCount requires src and dst to hold the same number of elements.
// Both shapes come from valid buffers, so Len cannot overflow.
func checkCount(op string, src, dst Shape) error {
	if n, m := src.Len(), dst.Len(); n != m {
		return &ShapeError{
			Op:     op,
			Src:    src,
			Dst:    dst,
			Axis:   -1,
			Reason: "element count " + strconv.Itoa(n) + " differs from " + strconv.Itoa(m),
		}
	}
	return nil
}
