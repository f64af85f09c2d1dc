package pad

import (
	"errors"
	"strings"
)

// Errors returned by extrapolation functions.
var (
	// ErrShape is matched by every *ShapeError.
	ErrShape = errors.New("pad: shape mismatch")

	// ErrBorder is returned for a Border value outside the known set.
	ErrBorder = errors.New("pad: unknown border type")
)

// ShapeError reports a source/destination pair that cannot be extrapolated.
type ShapeError struct {
	// Op is the failing operation, e.g. "Mirror2D". Empty for Validate.
	Op string

	Src Shape
	Dst Shape

	// Axis is the offending axis, or -1 when the problem is not tied to one.
	Axis int

	Reason string
}

func (e *ShapeError) Error() string {
	var b strings.Builder
	b.WriteString("pad: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Reason)
	b.WriteString(" (src ")
	b.WriteString(e.Src.String())
	b.WriteString(", dst ")
	b.WriteString(e.Dst.String())
	b.WriteString(")")
	return b.String()
}

// Unwrap returns ErrShape.
func (e *ShapeError) Unwrap() error {
	return ErrShape
}
