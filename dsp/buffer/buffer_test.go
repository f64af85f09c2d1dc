package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZeroFilled(t *testing.T) {
	b := New[float64](8)
	require.Equal(t, 8, b.Len())
	for i, v := range b.Samples() {
		require.Zerof(t, v, "Samples()[%d]", i)
	}
}

func TestNewNegativeLength(t *testing.T) {
	b := New[int](-1)
	assert.Equal(t, 0, b.Len())
}

func TestFromSliceSharesMemory(t *testing.T) {
	s := []float64{1, 2, 3}
	b := FromSlice(s)
	b.Samples()[0] = 99
	assert.Equal(t, 99.0, s[0], "FromSlice should share underlying memory")
}

func TestGrowPreservesData(t *testing.T) {
	b := New[float64](4)
	b.Samples()[0] = 42
	b.Grow(16)
	assert.GreaterOrEqual(t, b.Cap(), 16)
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, 42.0, b.Samples()[0])
}

func TestGrowNoOpWhenSufficient(t *testing.T) {
	b := New[float64](4)
	origCap := b.Cap()
	b.Grow(origCap)
	assert.Equal(t, origCap, b.Cap())
}

func TestResizeGrow(t *testing.T) {
	b := New[int32](2)
	b.Samples()[1] = 7
	b.Resize(5)
	require.Equal(t, 5, b.Len())
	assert.Equal(t, []int32{0, 7, 0, 0, 0}, b.Samples())
}

func TestResizeShrink(t *testing.T) {
	b := FromSlice([]float64{5, 6, 7})
	b.Resize(1)
	require.Equal(t, 1, b.Len())
	assert.Equal(t, 5.0, b.Samples()[0])
}

func TestResizeNegative(t *testing.T) {
	b := New[float64](4)
	b.Resize(-1)
	assert.Equal(t, 0, b.Len())
}

func TestResizeReuseClearsStaleData(t *testing.T) {
	b := FromSlice([]complex128{1, 2, 3, 4})
	b.Resize(2)
	b.Resize(4)
	// Elements 2 and 3 are zeroed even though capacity was reused.
	assert.Equal(t, []complex128{1, 2, 0, 0}, b.Samples())
}

func TestZero(t *testing.T) {
	b := FromSlice([]float64{1, 2, 3})
	b.Zero()
	assert.Equal(t, []float64{0, 0, 0}, b.Samples())
}

func TestZeroRange(t *testing.T) {
	b := FromSlice([]float64{1, 2, 3, 4, 5})
	b.ZeroRange(1, 4)
	assert.Equal(t, []float64{1, 0, 0, 0, 5}, b.Samples())
}

func TestZeroRangeClamps(t *testing.T) {
	b := FromSlice([]float64{1, 2, 3})
	b.ZeroRange(-5, 100)
	assert.Equal(t, []float64{0, 0, 0}, b.Samples())

	b = FromSlice([]float64{1, 2, 3})
	b.ZeroRange(2, 1)
	assert.Equal(t, []float64{1, 2, 3}, b.Samples())
}

func TestCopyIsDeep(t *testing.T) {
	b := FromSlice([]float64{1, 2, 3})
	c := b.Copy()
	c.Samples()[0] = 99
	assert.Equal(t, 1.0, b.Samples()[0], "Copy should not share memory")
	assert.Equal(t, 99.0, c.Samples()[0])
}
