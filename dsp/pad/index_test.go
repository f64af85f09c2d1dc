package pad

import (
	"fmt"
	"testing"
)

func TestSourceIndexMatchesExtrapolate(t *testing.T) {
	for _, b := range Borders() {
		for n := 1; n <= 5; n++ {
			src := ramp(n)
			total := 9*n + 4
			dst := make([]int, total)
			if err := Extrapolate(dst, src, b, -1); err != nil {
				t.Fatalf("%v: error = %v", b, err)
			}
			off := Offset(total, n)
			for i := range dst {
				if got := At(src, i-off, b, -1); got != dst[i] {
					t.Fatalf("%v n=%d: At(%d) = %d, want %d", b, n, i-off, got, dst[i])
				}
			}
		}
	}
}

func TestSourceIndex(t *testing.T) {
	tests := []struct {
		border Border
		i, n   int
		want   int
		ok     bool
	}{
		{BorderZero, 1, 3, 1, true},
		{BorderZero, -1, 3, -1, false},
		{BorderConstant, 3, 3, -1, false},
		{BorderNearest, -4, 3, 0, true},
		{BorderNearest, 8, 3, 2, true},
		{BorderCircular, -1, 3, 2, true},
		{BorderCircular, 7, 3, 1, true},
		{BorderMirror, -1, 3, 0, true},
		{BorderMirror, -3, 3, 2, true},
		{BorderMirror, -4, 3, 2, true},
		{BorderMirror, 3, 3, 2, true},
		{BorderMirror, 6, 3, 0, true},
		{BorderMirror, 5, 1, 0, true},
		{BorderCircular, 0, 0, -1, false},
		{Border(17), 0, 3, -1, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v/%d/%d", tt.border, tt.i, tt.n), func(t *testing.T) {
			got, ok := SourceIndex(tt.border, tt.i, tt.n)
			if got != tt.want || ok != tt.ok {
				t.Errorf("SourceIndex() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}
