package pad

import "github.com/cwbudde/algo-border/dsp/core"

// place1D copies src into the centre of dst and returns the offset used.
func place1D[T Scalar](dst, src []T) int {
	off := Offset(len(dst), len(src))
	core.CopyInto(dst[off:], src)
	return off
}

// place2D copies src into the centre of dst and returns the row and column
// offsets used.
func place2D[T Scalar](dst, src *Grid[T]) (int, int) {
	oy := Offset(dst.Rows, src.Rows)
	ox := Offset(dst.Cols, src.Cols)
	for r := 0; r < src.Rows; r++ {
		core.CopyInto(dst.Row(oy + r)[ox:], src.Row(r))
	}
	return oy, ox
}
