package pad

import "fmt"

// Extrapolate extends src into dst using border b. value is used only by
// BorderConstant.
func Extrapolate[T Scalar](dst, src []T, b Border, value T) error {
	switch b {
	case BorderZero:
		return Zero(dst, src)
	case BorderConstant:
		return Constant(dst, src, value)
	case BorderNearest:
		return Nearest(dst, src)
	case BorderCircular:
		return Circular(dst, src)
	case BorderMirror:
		return Mirror(dst, src)
	default:
		return fmt.Errorf("%w: %v", ErrBorder, b)
	}
}

// Extrapolate2D extends src into dst using border b. value is used only by
// BorderConstant.
func Extrapolate2D[T Scalar](dst, src *Grid[T], b Border, value T) error {
	switch b {
	case BorderZero:
		return Zero2D(dst, src)
	case BorderConstant:
		return Constant2D(dst, src, value)
	case BorderNearest:
		return Nearest2D(dst, src)
	case BorderCircular:
		return Circular2D(dst, src)
	case BorderMirror:
		return Mirror2D(dst, src)
	default:
		return fmt.Errorf("%w: %v", ErrBorder, b)
	}
}

// Padded returns a new slice of length n holding src extended with border b.
func Padded[T Scalar](src []T, n int, b Border, value T) ([]T, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrBorder, b)
	}
	if err := check("Padded", Shape{len(src)}, Shape{n}, b); err != nil {
		return nil, err
	}
	dst := make([]T, n)
	if err := Extrapolate(dst, src, b, value); err != nil {
		return nil, err
	}
	return dst, nil
}

// Padded2D returns a new rows x cols grid holding src extended with border b.
func Padded2D[T Scalar](src *Grid[T], rows, cols int, b Border, value T) (*Grid[T], error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrBorder, b)
	}
	if err := src.validate("Padded2D", "source"); err != nil {
		return nil, err
	}
	if err := check("Padded2D", src.Shape(), Shape{rows, cols}, b); err != nil {
		return nil, err
	}
	dst := NewGrid[T](rows, cols)
	if err := Extrapolate2D(dst, src, b, value); err != nil {
		return nil, err
	}
	return dst, nil
}
