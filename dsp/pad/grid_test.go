package pad

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid[int8](2, 3)
	if g.Rows != 2 || g.Cols != 3 || g.Stride != 3 || len(g.Data) != 6 {
		t.Fatalf("NewGrid(2, 3) = %+v", g)
	}
	if g := NewGrid[int8](-2, 3); g.Rows != 0 || g.Len() != 0 {
		t.Fatalf("NewGrid(-2, 3) = %+v, want empty", g)
	}
}

func TestGridFrom(t *testing.T) {
	g, err := GridFrom(2, 2, []int{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("GridFrom() error = %v", err)
	}
	if g.At(1, 0) != 3 {
		t.Errorf("At(1, 0) = %d, want 3", g.At(1, 0))
	}

	if _, err := GridFrom(2, 2, []int{1, 2, 3}); !errors.Is(err, ErrShape) {
		t.Errorf("GridFrom() short error = %v, want ErrShape", err)
	}
	if _, err := GridFrom(2, 2, []int{1, 2, 3, 4, 5}); !errors.Is(err, ErrShape) {
		t.Errorf("GridFrom() long error = %v, want ErrShape", err)
	}
}

func TestGridFromRowsRagged(t *testing.T) {
	_, err := GridFromRows([][]int{{1, 2}, {3}})
	var se *ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *ShapeError", err)
	}
	if se.Axis != 1 {
		t.Errorf("Axis = %d, want 1", se.Axis)
	}
}

func TestGridSub(t *testing.T) {
	g := rampGrid(4, 5)
	v := g.Sub(1, 2, 2, 3)

	if d := cmp.Diff([][]int{{23, 24, 25}, {33, 34, 35}}, v.Slices()); d != "" {
		t.Fatalf("Sub mismatch (-want +got):\n%s", d)
	}

	v.Set(0, 0, 0)
	if g.At(1, 2) != 0 {
		t.Error("Sub should share storage with the parent grid")
	}

	// Row must not let appends spill into the next row of the parent.
	row := v.Row(0)
	if cap(row) != len(row) {
		t.Errorf("cap(Row) = %d, want %d", cap(row), len(row))
	}
}

func TestGridSubPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Sub outside the grid did not panic")
		}
	}()
	rampGrid(2, 2).Sub(1, 1, 2, 2)
}

func TestGridCloneIsDense(t *testing.T) {
	v := rampGrid(4, 5).Sub(1, 1, 3, 2)
	c := v.Clone()
	if c.Stride != 2 || len(c.Data) != 6 {
		t.Fatalf("Clone() = %+v, want dense 3x2", c)
	}
	if !c.Equal(v) {
		t.Errorf("Clone() = %v, want %v", c.Slices(), v.Slices())
	}
	c.Set(0, 0, 0)
	if v.At(0, 0) == 0 {
		t.Error("Clone should not share storage")
	}
}

func TestGridEqual(t *testing.T) {
	a := rampGrid(2, 3)
	if a.Equal(rampGrid(3, 2)) {
		t.Error("grids of different shape compared equal")
	}
	b := rampGrid(2, 3)
	b.Set(1, 2, 0)
	if a.Equal(b) {
		t.Error("grids with different elements compared equal")
	}
}

func TestReshape(t *testing.T) {
	src := [][]int{{1, 2, 3}, {4, 5, 6}}
	tests := []struct {
		name       string
		rows, cols int
		want       [][]int
	}{
		{name: "3x2", rows: 3, cols: 2, want: [][]int{{1, 5}, {4, 3}, {2, 6}}},
		{name: "1x6", rows: 1, cols: 6, want: [][]int{{1, 4, 2, 5, 3, 6}}},
		{name: "6x1", rows: 6, cols: 1, want: [][]int{{1}, {4}, {2}, {5}, {3}, {6}}},
		{name: "same shape", rows: 2, cols: 3, want: src},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := NewGrid[int](tt.rows, tt.cols)
			if err := Reshape(dst, mustGrid(t, src)); err != nil {
				t.Fatalf("Reshape() error = %v", err)
			}
			if d := cmp.Diff(tt.want, dst.Slices()); d != "" {
				t.Errorf("Reshape() mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestFlattenUnflatten(t *testing.T) {
	g := mustGrid(t, [][]float32{{1, 2, 3}, {4, 5, 6}})

	flat := make([]float32, 6)
	if err := Flatten(flat, g); err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}
	if d := cmp.Diff([]float32{1, 4, 2, 5, 3, 6}, flat); d != "" {
		t.Errorf("Flatten() mismatch (-want +got):\n%s", d)
	}

	back := NewGrid[float32](2, 3)
	if err := Unflatten(back, flat); err != nil {
		t.Fatalf("Unflatten() error = %v", err)
	}
	if !back.Equal(g) {
		t.Errorf("Unflatten(Flatten(g)) = %v, want %v", back.Slices(), g.Slices())
	}

	cols := NewGrid[float32](2, 3)
	if err := Unflatten(cols, []float32{1, 2, 3, 4, 5, 6}); err != nil {
		t.Fatalf("Unflatten() error = %v", err)
	}
	if d := cmp.Diff([][]float32{{1, 3, 5}, {2, 4, 6}}, cols.Slices()); d != "" {
		t.Errorf("Unflatten() mismatch (-want +got):\n%s", d)
	}
}

func TestReshapeRoundTrip(t *testing.T) {
	// A view exercises the stride on the way out.
	src := rampGrid(5, 6).Sub(1, 1, 4, 3)
	mid := NewGrid[int](2, 6)
	back := NewGrid[int](4, 3)
	if err := Reshape(mid, src); err != nil {
		t.Fatalf("Reshape() error = %v", err)
	}
	if err := Reshape(back, mid); err != nil {
		t.Fatalf("Reshape() error = %v", err)
	}
	if d := cmp.Diff(src.Slices(), back.Slices()); d != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", d)
	}

	flat := make([]int, src.Len())
	if err := Flatten(flat, mid); err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}
	want := make([]int, src.Len())
	if err := Flatten(want, src); err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}
	if d := cmp.Diff(want, flat); d != "" {
		t.Errorf("reshape changed column-major order (-want +got):\n%s", d)
	}
}

func TestReshapeCountMismatchLeavesDestination(t *testing.T) {
	const sentinel = -9
	fill := func(g *Grid[int]) *Grid[int] {
		for i := range g.Data {
			g.Data[i] = sentinel
		}
		return g
	}
	src := rampGrid(2, 3)

	tests := []struct {
		name string
		call func() ([]int, error)
	}{
		{name: "Reshape", call: func() ([]int, error) {
			dst := fill(NewGrid[int](2, 2))
			return dst.Data, Reshape(dst, src)
		}},
		{name: "Flatten", call: func() ([]int, error) {
			dst := []int{sentinel, sentinel, sentinel, sentinel, sentinel}
			return dst, Flatten(dst, src)
		}},
		{name: "Unflatten", call: func() ([]int, error) {
			dst := fill(NewGrid[int](3, 3))
			return dst.Data, Unflatten(dst, []int{1, 2, 3, 4, 5, 6})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.call()
			var se *ShapeError
			if !errors.As(err, &se) || !errors.Is(err, ErrShape) {
				t.Fatalf("error = %v, want *ShapeError", err)
			}
			for i, v := range data {
				if v != sentinel {
					t.Fatalf("dst[%d] = %d, written despite the error", i, v)
				}
			}
		})
	}
}

func TestReshapeEmptyAndMalformed(t *testing.T) {
	if err := Reshape(NewGrid[int](3, 0), NewGrid[int](0, 4)); err != nil {
		t.Errorf("Reshape() of empty grids error = %v", err)
	}
	if err := Flatten(nil, NewGrid[int](0, 2)); err != nil {
		t.Errorf("Flatten() of empty grid error = %v", err)
	}
	if err := Reshape(nil, rampGrid(1, 1)); !errors.Is(err, ErrShape) {
		t.Errorf("Reshape(nil) error = %v, want ErrShape", err)
	}
	bad := &Grid[int]{Data: make([]int, 3), Rows: 2, Cols: 2, Stride: 2}
	if err := Unflatten(bad, make([]int, 4)); !errors.Is(err, ErrShape) {
		t.Errorf("Unflatten(short grid) error = %v, want ErrShape", err)
	}
}

func TestReshapeRejectsOverlap(t *testing.T) {
	g := rampGrid(2, 2)
	if err := Reshape(g, g); !errors.Is(err, ErrShape) {
		t.Errorf("Reshape(g, g) error = %v, want ErrShape", err)
	}
	if err := Flatten(g.Data, g); !errors.Is(err, ErrShape) {
		t.Errorf("Flatten(g.Data, g) error = %v, want ErrShape", err)
	}
}

func TestNewGridOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewGrid with an overflowing element count did not panic")
		}
	}()
	NewGrid[byte](math.MaxInt/2+1, 3)
}

func TestGridValidateOverflow(t *testing.T) {
	g := &Grid[int]{Data: make([]int, 4), Rows: math.MaxInt / 2, Cols: 4, Stride: 4}
	err := g.Validate()
	if !errors.Is(err, ErrShape) {
		t.Fatalf("Validate() error = %v, want ErrShape", err)
	}
}
