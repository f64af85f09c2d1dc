// Package buffer provides a reusable generic buffer type and pool for
// allocation-friendly extrapolation and filtering. All functions in the
// pad and conv packages accept raw slices; Buffer is an optional
// convenience that helps callers manage allocation and reuse in hot paths.
package buffer
