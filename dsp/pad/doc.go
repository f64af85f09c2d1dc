// Package pad extends 1D and 2D buffers to a larger shape by synthesising
// border samples (extrapolation).
//
// The source is always centred in the destination: along every axis the
// source starts at
//
//	offset = (dstExtent - srcExtent) / 2
//
// and the remaining samples on either side are filled according to a
// [Border] policy:
//
//   - BorderZero: the zero value of the element type
//   - BorderConstant: a caller supplied value
//   - BorderNearest: the closest edge sample of the source
//   - BorderCircular: the source repeated periodically
//   - BorderMirror: the source reflected at its edges, edge sample included
//
// For [1 2 3] extended to length 7:
//
//	BorderConstant(9)  [9 9 1 2 3 9 9]
//	BorderNearest      [1 1 1 2 3 3 3]
//	BorderCircular     [2 3 1 2 3 1 2]
//	BorderMirror       [2 1 1 2 3 3 2]
//
// # Buffers
//
// 1D buffers are plain slices. 2D buffers are [Grid] values, row-major with
// an explicit stride so that a [Grid.Sub] view can be extrapolated in place
// of a copy. The destination is always allocated by the caller (see
// [Padded] and [Padded2D] for allocating helpers). A destination whose
// memory overlaps the source, such as a grid and a [Grid.Sub] view of it,
// is rejected.
//
// # Rings
//
// Circular and mirror borders are filled in rings. A single wrap or
// reflection can only produce as many border samples as the source is
// long, so when the border is wider than the source the block filled so
// far becomes the source of the next ring, which is three times as wide.
// Each ring reads exclusively from the finished block and writes
// exclusively outside it.
//
// # Errors
//
// Every function validates its arguments before touching the destination
// and reports a [*ShapeError] (matching [ErrShape] via errors.Is) when the
// source does not fit. A failed call leaves the destination unchanged.
//
// # Reshaping
//
// [Reshape], [Flatten] and [Unflatten] move elements between grids and
// slices of the same element count in column-major order, the convention
// of MATLAB's reshape.
//
// All functions are safe for concurrent use on disjoint buffers; the
// package holds no mutable state.
package pad
