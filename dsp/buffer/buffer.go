package buffer

import "github.com/cwbudde/algo-border/dsp/core"

// Buffer wraps a slice with reuse-friendly semantics.
// Extrapolation and filter functions accept raw slices; use Samples() to bridge.
type Buffer[T any] struct {
	samples []T
}

// New returns a zero-filled Buffer of the given length.
func New[T any](length int) *Buffer[T] {
	if length < 0 {
		length = 0
	}
	return &Buffer[T]{samples: make([]T, length)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice[T any](s []T) *Buffer[T] {
	return &Buffer[T]{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer[T]) Samples() []T {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer[T]) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer[T]) Cap() int {
	return cap(b.samples)
}

// Grow ensures capacity is at least n, preserving existing data.
// If the current capacity is already >= n this is a no-op.
func (b *Buffer[T]) Grow(n int) {
	if n <= cap(b.samples) {
		return
	}
	grown := make([]T, len(b.samples), n)
	copy(grown, b.samples)
	b.samples = grown
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]T, n)
		copy(s, b.samples)
		b.samples = s
	}
	// The backing array may hold stale data from a previous use.
	if n > oldLen {
		core.Zero(b.samples[oldLen:n])
	}
}

// Zero sets all samples to the zero value.
func (b *Buffer[T]) Zero() {
	core.Zero(b.samples)
}

// ZeroRange sets samples in [start, end) to the zero value.
// Indices are clamped to valid bounds.
func (b *Buffer[T]) ZeroRange(start, end int) {
	start = core.Clamp(start, 0, len(b.samples))
	end = core.Clamp(end, 0, len(b.samples))
	if start >= end {
		return
	}
	core.Zero(b.samples[start:end])
}

// Copy returns a deep copy of the buffer.
func (b *Buffer[T]) Copy() *Buffer[T] {
	s := make([]T, len(b.samples))
	copy(s, b.samples)
	return &Buffer[T]{samples: s}
}
