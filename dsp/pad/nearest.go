package pad

import "github.com/cwbudde/algo-border/dsp/core"

// Nearest extrapolates src into dst by replicating the edge samples:
// the left border takes src[0], the right border src[len(src)-1].
//
// The border is written with block fills rather than a per-sample index
// mapping, which keeps large destinations on the copy fast path.
func Nearest[T Scalar](dst, src []T) error {
	if err := check1D("Nearest", dst, src, BorderNearest); err != nil {
		return err
	}
	if len(dst) == 0 {
		return nil
	}
	nearestRow(dst, src, Offset(len(dst), len(src)))
	return nil
}

// Nearest2D extrapolates src into dst by replicating the edge samples.
// Corner regions take the matching corner sample of src, edge regions
// repeat the first or last row (column) of src, and the centre is a copy.
func Nearest2D[T Scalar](dst, src *Grid[T]) error {
	if err := check2D("Nearest2D", dst, src, BorderNearest); err != nil {
		return err
	}
	if dst.Len() == 0 {
		return nil
	}
	oy := Offset(dst.Rows, src.Rows)
	ox := Offset(dst.Cols, src.Cols)
	for r := 0; r < dst.Rows; r++ {
		sr := core.Clamp(r-oy, 0, src.Rows-1)
		nearestRow(dst.Row(r), src.Row(sr), ox)
	}
	return nil
}

// nearestRow writes src at off and replicates its edge samples outwards.
func nearestRow[T Scalar](dst, src []T, off int) {
	end := off + len(src)
	core.Fill(dst[:off], src[0])
	copy(dst[off:end], src)
	core.Fill(dst[end:], src[len(src)-1])
}
