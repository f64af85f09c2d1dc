package pad

import (
	"fmt"
	"strings"
)

// Border identifies the policy used to fill samples outside the source.
type Border int

const (
	BorderZero Border = iota
	BorderConstant
	BorderNearest
	BorderCircular
	BorderMirror
)

var borderNames = [...]string{
	BorderZero:     "zero",
	BorderConstant: "constant",
	BorderNearest:  "nearest",
	BorderCircular: "circular",
	BorderMirror:   "mirror",
}

// Borders returns all known border policies in declaration order.
func Borders() []Border {
	return []Border{BorderZero, BorderConstant, BorderNearest, BorderCircular, BorderMirror}
}

// Valid reports whether b is one of the known policies.
func (b Border) Valid() bool {
	return b >= BorderZero && b <= BorderMirror
}

func (b Border) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Border(%d)", int(b))
	}
	return borderNames[b]
}

// ParseBorder returns the Border with the given name. Matching is case
// insensitive; "nearest-neighbour", "wrap", "periodic" and "reflect" are
// accepted as aliases.
func ParseBorder(name string) (Border, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "zero":
		return BorderZero, nil
	case "constant", "const":
		return BorderConstant, nil
	case "nearest", "nearest-neighbour", "nearest-neighbor", "replicate":
		return BorderNearest, nil
	case "circular", "wrap", "periodic":
		return BorderCircular, nil
	case "mirror", "reflect", "symmetric":
		return BorderMirror, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBorder, name)
}

// needsSample reports whether the policy derives border values from the
// source, which then must not be empty.
func (b Border) needsSample() bool {
	return b == BorderNearest || b == BorderCircular || b == BorderMirror
}
