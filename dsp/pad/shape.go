package pad

import (
	"math"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of element types the package can extrapolate.
type Scalar interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Shape lists the extent of a buffer along each axis, outermost first.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// Len returns the number of elements described by s. Shapes accepted by
// Validate never overflow; for others the product wraps like any int
// multiplication.
func (s Shape) Len() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, e := range s {
		n *= e
	}
	return n
}

// Equal reports whether s and o have the same rank and extents.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// String formats s as "3x4".
func (s Shape) String() string {
	if len(s) == 0 {
		return "()"
	}
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = strconv.Itoa(e)
	}
	return strings.Join(parts, "x")
}

// Offsets returns the position of a source of shape src centred in dst.
// The shapes must already be valid (see Validate).
func (s Shape) Offsets(src Shape) []int {
	off := make([]int, len(s))
	for i := range s {
		off[i] = Offset(s[i], src[i])
	}
	return off
}

// Offset returns where a source of extent src starts when centred in a
// destination of extent dst. The result is floored, so an odd margin puts
// the extra sample after the source.
func Offset(dst, src int) int {
	return (dst - src) / 2
}

// Validate checks that a buffer of shape src can be extrapolated into a
// buffer of shape dst: both of rank 1 or 2, no negative extents, and no
// source extent larger than the matching destination extent.
func Validate(src, dst Shape) error {
	return validate("", src, dst)
}

func validate(op string, src, dst Shape) error {
	fail := func(axis int, reason string) error {
		return &ShapeError{Op: op, Src: src, Dst: dst, Axis: axis, Reason: reason}
	}

	if src.Rank() != dst.Rank() {
		return fail(-1, "rank mismatch")
	}
	if r := src.Rank(); r != 1 && r != 2 {
		return fail(-1, "unsupported rank "+strconv.Itoa(r))
	}
	for d := range src {
		if src[d] < 0 || dst[d] < 0 {
			return fail(d, "negative extent")
		}
	}
	for d := range src {
		if src[d] > dst[d] {
			return fail(d, "source larger than destination")
		}
	}
	// src fits inside dst, so its count cannot overflow if dst's does not.
	if _, ok := extentCount(dst); !ok {
		return fail(-1, "element count overflows int")
	}
	return nil
}

// mulExtent returns a*b for non-negative a and b, or false if the product
// does not fit in an int.
func mulExtent(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// extentCount is Shape.Len with overflow detection.
func extentCount(s Shape) (int, bool) {
	n := 1
	for _, e := range s {
		var ok bool
		if n, ok = mulExtent(n, e); !ok {
			return 0, false
		}
	}
	return n, true
}

// check validates a source/destination pair for border b. Policies that
// derive border samples from the source also reject an empty source with a
// non-empty destination.
func check(op string, src, dst Shape, b Border) error {
	if err := validate(op, src, dst); err != nil {
		return err
	}
	if b.needsSample() && src.Len() == 0 && dst.Len() > 0 {
		return &ShapeError{Op: op, Src: src, Dst: dst, Axis: -1, Reason: "empty source has no border samples"}
	}
	return nil
}

func check1D[T Scalar](op string, dst, src []T, b Border) error {
	if err := check(op, Shape{len(src)}, Shape{len(dst)}, b); err != nil {
		return err
	}
	return checkDisjoint(op, Shape{len(src)}, Shape{len(dst)}, dst, src)
}

func check2D[T Scalar](op string, dst, src *Grid[T], b Border) error {
	if err := src.validate(op, "source"); err != nil {
		return err
	}
	if err := dst.validate(op, "destination"); err != nil {
		return err
	}
	if err := check(op, src.Shape(), dst.Shape(), b); err != nil {
		return err
	}
	return checkDisjoint(op, src.Shape(), dst.Shape(), dst.span(), src.span())
}

// checkDisjoint rejects a destination whose memory overlaps the source:
// writing the border would clobber samples that are still to be read.
func checkDisjoint[T any](op string, src, dst Shape, a, b []T) error {
	if overlaps(a, b) {
		return &ShapeError{Op: op, Src: src, Dst: dst, Axis: -1, Reason: "destination overlaps source"}
	}
	return nil
}

// overlaps reports whether the memory spanned by a and b intersects.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(&a[0])) <= uintptr(unsafe.Pointer(&b[len(b)-1])) &&
		uintptr(unsafe.Pointer(&b[0])) <= uintptr(unsafe.Pointer(&a[len(a)-1]))
}
