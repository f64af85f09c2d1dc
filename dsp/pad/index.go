package pad

import "github.com/cwbudde/algo-border/dsp/core"

// SourceIndex maps position i, counted from the first source sample (so
// negative values lie in the left border), onto the index of the source
// sample that border b places there. n is the source length.
//
// ok is false when the position holds no source sample: the constant and
// zero policies outside [0, n), or an empty source. For the other policies
// SourceIndex is the closed form of what the extrapolation functions
// compute ring by ring, which is useful for on-the-fly lookups that never
// materialise the padded buffer.
func SourceIndex(b Border, i, n int) (int, bool) {
	if n <= 0 || !b.Valid() {
		return -1, false
	}
	if i >= 0 && i < n {
		return i, true
	}
	switch b {
	case BorderNearest:
		return core.Clamp(i, 0, n-1), true
	case BorderCircular:
		return core.Mod(i, n), true
	case BorderMirror:
		k := core.Mod(i, 2*n)
		if k >= n {
			k = 2*n - 1 - k
		}
		return k, true
	default:
		return -1, false
	}
}

// At returns the value border b places at position i relative to the
// start of src. value is returned for positions the policy leaves constant.
func At[T Scalar](src []T, i int, b Border, value T) T {
	k, ok := SourceIndex(b, i, len(src))
	if !ok {
		if b == BorderZero {
			var zero T
			return zero
		}
		return value
	}
	return src[k]
}
