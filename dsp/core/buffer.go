package core

// Zero sets all values in buf to the zero value of T.
func Zero[T any](buf []T) {
	clear(buf)
}

// Fill sets all values in buf to value.
// The first element is written directly and then doubled with copy, which
// keeps long fills on the memmove fast path.
func Fill[T any](buf []T, value T) {
	if len(buf) == 0 {
		return
	}
	buf[0] = value
	for n := 1; n < len(buf); n *= 2 {
		copy(buf[n:], buf[:n])
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto[T any](dst, src []T) int {
	n := min(len(dst), len(src))
	copy(dst[:n], src[:n])
	return n
}

// Reverse copies src into dst in reverse order and returns the number of
// copied elements. dst and src must not overlap.
func Reverse[T any](dst, src []T) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = src[n-1-i]
	}
	return n
}
