package pad

import (
	"math"
	"strconv"
)

// Grid is a 2D row-major buffer. Element (r, c) is stored at
// Data[r*Stride+c]; Stride may exceed Cols when the grid is a view into a
// wider one.
type Grid[T Scalar] struct {
	Data   []T
	Rows   int
	Cols   int
	Stride int
}

// NewGrid returns a zero-filled, densely packed grid.
// Negative extents are treated as zero. NewGrid panics if rows*cols does
// not fit in an int, like make with a length out of range.
func NewGrid[T Scalar](rows, cols int) *Grid[T] {
	rows, cols = max(rows, 0), max(cols, 0)
	n, ok := mulExtent(rows, cols)
	if !ok {
		panic("pad: NewGrid extents " + Shape{rows, cols}.String() + " overflow int")
	}
	return &Grid[T]{
		Data:   make([]T, n),
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
	}
}

// GridFrom wraps data as a densely packed rows x cols grid without copying.
// len(data) must equal rows*cols.
func GridFrom[T Scalar](rows, cols int, data []T) (*Grid[T], error) {
	g := &Grid[T]{Data: data, Rows: rows, Cols: cols, Stride: cols}
	if err := g.validate("GridFrom", "data"); err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, &ShapeError{
			Op:     "GridFrom",
			Src:    Shape{len(data)},
			Dst:    g.Shape(),
			Axis:   -1,
			Reason: "data length " + strconv.Itoa(len(data)) + " does not match shape",
		}
	}
	return g, nil
}

// GridFromRows copies a slice of equally long rows into a new grid.
func GridFromRows[T Scalar](rows [][]T) (*Grid[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	g := NewGrid[T](len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, &ShapeError{
				Op:     "GridFromRows",
				Src:    Shape{r, len(row)},
				Dst:    g.Shape(),
				Axis:   1,
				Reason: "ragged row " + strconv.Itoa(r),
			}
		}
		copy(g.Row(r), row)
	}
	return g, nil
}

// Shape returns {Rows, Cols}.
func (g *Grid[T]) Shape() Shape {
	return Shape{g.Rows, g.Cols}
}

// Len returns Rows*Cols.
func (g *Grid[T]) Len() int {
	return g.Rows * g.Cols
}

// At returns element (r, c).
func (g *Grid[T]) At(r, c int) T {
	return g.Data[r*g.Stride+c]
}

// Set stores v at (r, c).
func (g *Grid[T]) Set(r, c int, v T) {
	g.Data[r*g.Stride+c] = v
}

// Row returns row r as a slice of length Cols sharing storage with g.
func (g *Grid[T]) Row(r int) []T {
	start := r * g.Stride
	return g.Data[start : start+g.Cols : start+g.Cols]
}

// Sub returns a rows x cols view starting at (r0, c0). The view shares
// storage with g and is indexed from (0, 0). Sub panics if the window does
// not lie inside g, like slicing out of range.
func (g *Grid[T]) Sub(r0, c0, rows, cols int) *Grid[T] {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > g.Rows || c0+cols > g.Cols {
		panic("pad: Sub window " + Shape{r0, c0}.String() + "+" + Shape{rows, cols}.String() +
			" outside grid " + g.Shape().String())
	}
	if rows == 0 || cols == 0 {
		return &Grid[T]{Rows: rows, Cols: cols, Stride: g.Stride}
	}
	start := r0*g.Stride + c0
	end := (r0+rows-1)*g.Stride + c0 + cols
	return &Grid[T]{
		Data:   g.Data[start:end],
		Rows:   rows,
		Cols:   cols,
		Stride: g.Stride,
	}
}

// Clone returns a densely packed copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	c := NewGrid[T](g.Rows, g.Cols)
	for r := 0; r < g.Rows; r++ {
		copy(c.Row(r), g.Row(r))
	}
	return c
}

// Slices returns a copy of g as one slice per row.
func (g *Grid[T]) Slices() [][]T {
	out := make([][]T, g.Rows)
	for r := range out {
		out[r] = append([]T(nil), g.Row(r)...)
	}
	return out
}

// Equal reports whether g and o have the same shape and elements.
func (g *Grid[T]) Equal(o *Grid[T]) bool {
	if g.Rows != o.Rows || g.Cols != o.Cols {
		return false
	}
	for r := 0; r < g.Rows; r++ {
		a, b := g.Row(r), o.Row(r)
		for c := range a {
			if a[c] != b[c] {
				return false
			}
		}
	}
	return true
}

// validate reports a grid whose declared geometry does not fit its data.
func (g *Grid[T]) validate(op, role string) error {
	if g == nil {
		return &ShapeError{Op: op, Axis: -1, Reason: "nil " + role + " grid"}
	}
	fail := func(reason string) error {
		e := &ShapeError{Op: op, Axis: -1, Reason: role + " " + reason}
		if role == "destination" {
			e.Dst = g.Shape()
		} else {
			e.Src = g.Shape()
		}
		return e
	}
	if g.Rows < 0 || g.Cols < 0 {
		return fail("has negative extent")
	}
	if g.Stride < g.Cols {
		return fail("stride " + strconv.Itoa(g.Stride) + " smaller than column count")
	}
	need, ok := g.extent()
	if !ok {
		return fail("geometry overflows int")
	}
	if len(g.Data) < need {
		return fail("data shorter than declared geometry")
	}
	return nil
}

// extent returns the number of Data elements the geometry reaches,
// (Rows-1)*Stride + Cols, or false on overflow.
func (g *Grid[T]) extent() (int, bool) {
	if g.Rows == 0 || g.Cols == 0 {
		return 0, true
	}
	n, ok := mulExtent(g.Rows-1, g.Stride)
	if !ok || n > math.MaxInt-g.Cols {
		return 0, false
	}
	return n + g.Cols, true
}

// span returns the part of Data the geometry reaches. g must be valid.
func (g *Grid[T]) span() []T {
	n, _ := g.extent()
	return g.Data[:n]
}

// Validate reports a *ShapeError if the declared geometry of g does not fit
// its data (negative extents, a stride narrower than a row, or Data too
// short). A nil grid is invalid.
func (g *Grid[T]) Validate() error {
	return g.validate("Validate", "grid")
}
