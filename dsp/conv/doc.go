// Package conv provides linear convolution and border-aware filtering.
//
// Two convolution strategies are available:
//
//   - Direct convolution: simple O(N*M) time-domain convolution, best for short kernels
//   - Overlap-add (OLA): FFT-based block convolution for long signals and long kernels
//
// # Usage
//
// For one-shot convolution, use the simple functions:
//
//	result, err := conv.Convolve(signal, kernel)              // Auto-selects algorithm
//	result, err := conv.Direct(signal, kernel)                // Force direct convolution
//	same, err := conv.ConvolveMode(signal, kernel, conv.ModeSame)
//
// For repeated convolution with the same kernel, create a reusable convolver:
//
//	c, err := conv.NewOverlapAdd(kernel, blockSize)
//	result, err := c.Process(signal)
//
// # Border-aware filtering
//
// ModeSame treats every sample outside the input as zero, so smoothing
// kernels pull the output towards zero near the edges. [Filter] and
// [BorderFilter] instead extend the input with one of the border policies
// of package pad before convolving:
//
//	err := conv.Filter(dst, src, kernel, conv.WithBorder(pad.BorderNearest))
//
//	f, err := conv.NewBorderFilter(kernel)  // mirror borders by default
//	err = f.Apply(dst, src)
//
// [Filter2D] does the same for images held in a pad.Grid.
//
// # Algorithm Selection
//
// [Convolve] and [BorderFilter] use direct convolution for kernels of up
// to 64 samples and overlap-add above that. The filter threshold can be
// changed with [WithDirectThreshold].
package conv
