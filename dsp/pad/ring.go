package pad

import "github.com/cwbudde/algo-border/dsp/core"

// span describes one axis of a ring. The finished block occupies
// [off, off+n); the ring writes [lo, off) and [off+n, hi).
type span struct {
	lo  int
	off int
	n   int
	hi  int
}

// ringSpan returns the ring around a finished block of extent n centred in
// an axis of extent total. When the margin is at least n only one block
// width fits on each side and another ring will follow.
func ringSpan(total, n int) span {
	off := Offset(total, n)
	s := span{lo: 0, off: off, n: n, hi: total}
	if off >= n {
		s.lo = off - n
		s.hi = off + 2*n
	}
	return s
}

func (s span) end() int {
	return s.off + s.n
}

// complete reports whether the ring reaches both ends of the axis.
func (s span) complete(total int) bool {
	return s.lo == 0 && s.hi == total
}

// fold maps ring positions back onto the finished block.
type fold int

const (
	foldWrap fold = iota
	foldReflect
)

// before returns the block index feeding position d < s.off.
func (f fold) before(d int, s span) int {
	if f == foldWrap {
		return d + s.n
	}
	return 2*s.off - 1 - d
}

// after returns the block index feeding position d >= s.end().
func (f fold) after(d int, s span) int {
	if f == foldWrap {
		return d - s.n
	}
	return 2*s.end() - 1 - d
}

// foldRow fills the ring part of dst along one axis from the finished part
// of src. dst and src may be the same row: reads stay inside [off, end)
// and writes stay outside it.
func foldRow[T Scalar](f fold, dst, src []T, s span) {
	end := s.end()
	switch f {
	case foldWrap:
		copy(dst[s.lo:s.off], src[s.lo+s.n:end])
		copy(dst[end:s.hi], src[s.off:s.hi-s.n])
	case foldReflect:
		core.Reverse(dst[s.lo:s.off], src[s.off:2*s.off-s.lo])
		core.Reverse(dst[end:s.hi], src[2*end-s.hi:end])
	}
}

// rings1D grows the finished block of extent n, already centred in dst,
// ring by ring until dst is full.
func rings1D[T Scalar](dst []T, n int, f fold) {
	for {
		s := ringSpan(len(dst), n)
		foldRow(f, dst, dst, s)
		if s.complete(len(dst)) {
			return
		}
		n = s.hi - s.lo
	}
}

// rings2D is rings1D for grids. Each ring covers the eight regions around
// the finished block: the edge rows are folded from the block's rows, then
// every row of the ring is folded along the columns, which fills the
// corners from the diagonally opposite part of the block.
func rings2D[T Scalar](g *Grid[T], rows, cols int, f fold) {
	for {
		sy := ringSpan(g.Rows, rows)
		sx := ringSpan(g.Cols, cols)
		for r := sy.lo; r < sy.hi; r++ {
			sr := r
			switch {
			case r < sy.off:
				sr = f.before(r, sy)
			case r >= sy.end():
				sr = f.after(r, sy)
			}
			dstRow, srcRow := g.Row(r), g.Row(sr)
			if sr != r {
				copy(dstRow[sx.off:sx.end()], srcRow[sx.off:sx.end()])
			}
			foldRow(f, dstRow, srcRow, sx)
		}
		if sy.complete(g.Rows) && sx.complete(g.Cols) {
			return
		}
		rows, cols = sy.hi-sy.lo, sx.hi-sx.lo
	}
}
