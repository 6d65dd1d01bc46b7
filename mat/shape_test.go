package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimResolve(t *testing.T) {
	assert.Equal(t, 8, Fixed(8).Resolve(8))
	assert.Equal(t, 5, Dynamic.Resolve(5))
	assert.Equal(t, 0, Dynamic.Resolve(0))

	assert.True(t, Fixed(3).IsFixed())
	assert.False(t, Dynamic.IsFixed())

	assert.Panics(t, func() { Fixed(8).Resolve(7) })
	assert.Panics(t, func() { Dynamic.Resolve(-1) })
	assert.Panics(t, func() { Fixed(-1) })
}

func TestMakeShape(t *testing.T) {
	s := MakeShape(Fixed(8), Dynamic, 8, 6)
	assert.Equal(t, 8, s.Rows())
	assert.Equal(t, 6, s.Cols())
	assert.Equal(t, 48, s.Len())
	assert.Equal(t, "8x6", s.String())

	// A fixed axis pins the runtime extent for every instance.
	assert.Panics(t, func() { MakeShape(Fixed(8), Dynamic, 9, 6) })

	// Descriptors do not affect effective-shape equality.
	assert.True(t, s.Equal(ShapeOf(8, 6)))
	assert.False(t, s.Equal(ShapeOf(6, 8)))
}

func TestBlockLayout(t *testing.T) {
	b := NewBlock[float64](3, 4)
	require.Equal(t, 3, b.Rows())
	require.Equal(t, 4, b.Cols())
	require.Equal(t, 3, b.LD())
	assert.True(t, b.IsContiguous())
	assert.True(t, b.IsAligned())

	b.Set(2, 1, 7.5)
	assert.Equal(t, 7.5, b.At(2, 1))
	assert.Equal(t, 7.5, b.Col(1)[2])
}

func TestBlockOf(t *testing.T) {
	buf := make([]float32, 12*6)
	for i := range buf {
		buf[i] = float32(i)
	}

	v := BlockOf(buf, 8, 6, 12)
	assert.False(t, v.IsContiguous())
	assert.False(t, v.IsAligned())
	assert.Equal(t, buf[1*12+2], v.At(2, 1))

	assert.Panics(t, func() { BlockOf(buf, 8, 6, 7) })    // ld < rows
	assert.Panics(t, func() { BlockOf(buf, 12, 12, 12) }) // buffer too short

	// Single-column strided views still expose one contiguous run.
	assert.True(t, BlockOf(buf, 8, 1, 12).IsContiguous())
}

func TestSubView(t *testing.T) {
	b := NewBlock[float64](6, 5)
	for j := 0; j < 5; j++ {
		for i := 0; i < 6; i++ {
			b.Set(i, j, float64(j*10+i))
		}
	}

	s := b.Sub(1, 2, 3, 2)
	require.Equal(t, 3, s.Rows())
	require.Equal(t, 2, s.Cols())
	assert.Equal(t, 6, s.LD())
	assert.False(t, s.IsContiguous())
	assert.Equal(t, b.At(1, 2), s.At(0, 0))
	assert.Equal(t, b.At(3, 3), s.At(2, 1))

	// Writes through the sub-view alias the parent.
	s.Set(0, 0, -1)
	assert.Equal(t, -1.0, b.At(1, 2))

	assert.Panics(t, func() { b.Sub(4, 0, 3, 1) })
}
