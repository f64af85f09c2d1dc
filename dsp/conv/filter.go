package conv

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-border/dsp/buffer"
	"github.com/cwbudde/algo-border/dsp/pad"
	"github.com/cwbudde/algo-vecmath"
)

// BorderFilter convolves signals with a fixed kernel and returns output of
// the same length as the input. Samples the kernel reaches beyond the
// input are synthesised with the configured border policy instead of being
// treated as zero, which avoids the edge droop of ModeSame.
//
// The kernel is centred at index (len(kernel)-1)/2, the same alignment as
// ModeSame. A BorderFilter is safe for concurrent use.
type BorderFilter struct {
	cfg     Config
	flipped []float64

	scratch *buffer.Pool[float64]

	// FFT path, used when the kernel exceeds cfg.DirectThreshold.
	mu  sync.Mutex
	ola *OverlapAdd
}

// NewBorderFilter builds a filter for kernel.
func NewBorderFilter(kernel []float64, opts ...Option) (*BorderFilter, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	cfg := ApplyOptions(opts...)
	if !cfg.Border.Valid() {
		return nil, fmt.Errorf("conv: %w: %v", pad.ErrBorder, cfg.Border)
	}

	f := &BorderFilter{
		cfg:     cfg,
		flipped: make([]float64, len(kernel)),
		scratch: buffer.NewPool[float64](),
	}
	for i, h := range kernel {
		f.flipped[len(kernel)-1-i] = h
	}

	if len(kernel) > cfg.DirectThreshold {
		ola, err := NewOverlapAdd(kernel, 0)
		if err != nil {
			return nil, err
		}
		f.ola = ola
	}
	return f, nil
}

// KernelLen returns the kernel length.
func (f *BorderFilter) KernelLen() int {
	return len(f.flipped)
}

// Border returns the border policy in use.
func (f *BorderFilter) Border() pad.Border {
	return f.cfg.Border
}

// Process filters src into a new slice.
func (f *BorderFilter) Process(src []float64) ([]float64, error) {
	dst := make([]float64, len(src))
	if err := f.Apply(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// Apply filters src into dst, which must have the same length:
//
//	dst[i] = sum_j kernel[j] * ext(i + (len(kernel)-1)/2 - j)
//
// where ext is src extended by the border policy.
func (f *BorderFilter) Apply(dst, src []float64) error {
	if len(src) == 0 {
		return ErrEmptyInput
	}
	if len(dst) != len(src) {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, len(src), len(dst))
	}

	// Extrapolating to n+m centres src at m/2, the left margin the
	// (m-1)/2 kernel centre needs; the last sample is never read.
	m := len(f.flipped)
	padded := f.scratch.Get(len(src) + m)
	defer f.scratch.Put(padded)

	if err := pad.Extrapolate(padded.Samples(), src, f.cfg.Border, f.cfg.Value); err != nil {
		return fmt.Errorf("conv: extrapolate input: %w", err)
	}
	x := padded.Samples()[:len(src)+m-1]

	if f.ola == nil {
		prod := f.scratch.Get(m)
		defer f.scratch.Put(prod)
		correlateValid(dst, x, f.flipped, prod.Samples())
		return nil
	}

	f.mu.Lock()
	full, err := f.ola.Process(x)
	f.mu.Unlock()
	if err != nil {
		return err
	}
	copy(dst, full[m-1:m-1+len(src)])
	return nil
}

// Filter convolves src with kernel into dst (same length as src), taking
// samples beyond the edges of src from the configured border policy.
func Filter(dst, src, kernel []float64, opts ...Option) error {
	f, err := NewBorderFilter(kernel, opts...)
	if err != nil {
		return err
	}
	return f.Apply(dst, src)
}

// correlateValid computes dst[i] = sum_j x[i+j]*h[j] for every i where h
// fits inside x. prod is scratch of len(h).
func correlateValid(dst, x, h, prod []float64) {
	m := len(h)
	for i := range dst {
		vecmath.MulBlock(prod, x[i:i+m], h)
		var sum float64
		for _, p := range prod {
			sum += p
		}
		dst[i] = sum
	}
}
