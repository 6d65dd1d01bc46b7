package mat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-lightmat/lightmat/pack"
)

// fillByIndex assigns f(i) to the i-th element in storage order
// (column-major linear index).
func fillByIndex[T pack.Lanes](b Block[T], f func(i int) T) {
	idx := 0
	for j := 0; j < b.Cols(); j++ {
		for i := 0; i < b.Rows(); i++ {
			b.Set(i, j, f(idx))
			idx++
		}
	}
}

// dump flattens a block to storage order for comparison.
func dump[T pack.Lanes](b Block[T]) []T {
	out := make([]T, 0, b.Len())
	for j := 0; j < b.Cols(); j++ {
		out = append(out, b.Col(j)...)
	}
	return out
}

func TestAddScenario(t *testing.T) {
	// A[i] = i+1, B[i] = 2i+3 over 8x6; A+B must equal 3i+4 at every
	// linear index.
	a := NewBlock[float64](8, 6)
	b := NewBlock[float64](8, 6)
	fillByIndex(a, func(i int) float64 { return float64(i + 1) })
	fillByIndex(b, func(i int) float64 { return float64(2*i + 3) })

	sum := NewBlock[float64](8, 6)
	Add(sum, a, b)

	want := make([]float64, 48)
	for i := range want {
		want[i] = float64(3*i + 4)
	}
	if diff := cmp.Diff(want, dump(sum)); diff != "" {
		t.Errorf("A+B mismatch (-want +got):\n%s", diff)
	}

	// In-place A += B must equal the freshly computed A+B exactly.
	Add(a, a, b)
	if diff := cmp.Diff(dump(sum), dump(a)); diff != "" {
		t.Errorf("in-place add differs from out-of-place (-want +got):\n%s", diff)
	}
}

func TestBinaryOpsElementwise(t *testing.T) {
	const m, n = 5, 7 // odd extents exercise the partial tail
	a := NewBlock[float32](m, n)
	b := NewBlock[float32](m, n)
	fillByIndex(a, func(i int) float32 { return float32(i+1) * 0.5 })
	fillByIndex(b, func(i int) float32 { return float32(i%9) + 1 })

	cases := []struct {
		name  string
		run   func(dst Block[float32])
		model func(x, y float32) float32
	}{
		{"add", func(d Block[float32]) { Add(d, a, b) }, func(x, y float32) float32 { return x + y }},
		{"sub", func(d Block[float32]) { Sub(d, a, b) }, func(x, y float32) float32 { return x - y }},
		{"mul", func(d Block[float32]) { Mul(d, a, b) }, func(x, y float32) float32 { return x * y }},
		{"div", func(d Block[float32]) { Div(d, a, b) }, func(x, y float32) float32 { return x / y }},
		{"max", func(d Block[float32]) { Max(d, a, b) }, func(x, y float32) float32 {
			if x > y {
				return x
			}
			return y
		}},
		{"min", func(d Block[float32]) { Min(d, a, b) }, func(x, y float32) float32 {
			if x < y {
				return x
			}
			return y
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dst := NewBlock[float32](m, n)
			tc.run(dst)
			for j := 0; j < n; j++ {
				for i := 0; i < m; i++ {
					assert.Equal(t, tc.model(a.At(i, j), b.At(i, j)), dst.At(i, j),
						"at (%d,%d)", i, j)
				}
			}
		})
	}
}

func TestScalarForms(t *testing.T) {
	const m, n = 6, 3
	const c = 7.0
	a := NewBlock[float64](m, n)
	fillByIndex(a, func(i int) float64 { return float64(i + 1) })

	check := func(name string, dst Block[float64], model func(x float64) float64) {
		t.Helper()
		for j := 0; j < n; j++ {
			for i := 0; i < m; i++ {
				assert.Equal(t, model(a.At(i, j)), dst.At(i, j), "%s at (%d,%d)", name, i, j)
			}
		}
	}

	dst := NewBlock[float64](m, n)

	AddScalar(dst, a, c)
	check("A+c", dst, func(x float64) float64 { return x + c })
	SubScalar(dst, a, c)
	check("A-c", dst, func(x float64) float64 { return x - c })
	MulScalar(dst, a, c)
	check("c*A", dst, func(x float64) float64 { return x * c })
	DivScalar(dst, a, c)
	check("A/c", dst, func(x float64) float64 { return x / c })
	SubFrom(dst, c, a)
	check("c-A", dst, func(x float64) float64 { return c - x })
	DivInto(dst, c, a)
	check("c/A", dst, func(x float64) float64 { return c / x })
	MaxScalar(dst, a, c)
	check("max(A,c)", dst, func(x float64) float64 {
		if x > c {
			return x
		}
		return c
	})
	MinScalar(dst, a, c)
	check("min(A,c)", dst, func(x float64) float64 {
		if x < c {
			return x
		}
		return c
	})
}

func TestUnaryOps(t *testing.T) {
	a := NewBlock[float64](4, 5)
	fillByIndex(a, func(i int) float64 { return float64(i - 9) })

	neg := NewBlock[float64](4, 5)
	Neg(neg, a)
	abs := NewBlock[float64](4, 5)
	Abs(abs, a)
	cpy := NewBlock[float64](4, 5)
	Copy(cpy, a)

	for j := 0; j < 5; j++ {
		for i := 0; i < 4; i++ {
			x := a.At(i, j)
			assert.Equal(t, -x, neg.At(i, j))
			want := x
			if want < 0 {
				want = -want
			}
			assert.Equal(t, want, abs.At(i, j))
			assert.Equal(t, x, cpy.At(i, j))
		}
	}
}

func TestFill(t *testing.T) {
	b := NewBlock[float32](5, 3)
	Fill(b, 2.5)
	for _, v := range dump(b) {
		assert.Equal(t, float32(2.5), v)
	}

	// Fill through a strided view leaves the rest of the buffer alone.
	buf := make([]float32, 10*3)
	v := BlockOf(buf, 4, 3, 10)
	Fill(v, 1.0)
	for j := 0; j < 3; j++ {
		for i := 0; i < 10; i++ {
			want := float32(0)
			if i < 4 {
				want = 1
			}
			assert.Equal(t, want, buf[j*10+i], "buffer index (%d,%d)", i, j)
		}
	}
}

func TestBlockViewAddScenario(t *testing.T) {
	// Block view of a 12-stride buffer sliced to an 8x6 window, added in
	// place to a constant 1.5-filled destination: dst must equal
	// 1.5 + source at every cell, independent of the buffer's true width.
	buf := make([]float64, 12*6)
	for i := range buf {
		buf[i] = float64(i) * 0.25
	}
	src := BlockOf(buf, 8, 6, 12)

	dst := NewBlock[float64](8, 6)
	Fill(dst, 1.5)
	Add(dst, dst, src)

	for j := 0; j < 6; j++ {
		for i := 0; i < 8; i++ {
			require.Equal(t, 1.5+src.At(i, j), dst.At(i, j), "at (%d,%d)", i, j)
		}
	}
}

func TestShapeMismatchPanics(t *testing.T) {
	a := NewBlock[float32](3, 3)
	b := NewBlock[float32](3, 4)
	dst := NewBlock[float32](3, 3)
	assert.Panics(t, func() { Add(dst, a, b) })
	assert.Panics(t, func() { Neg(dst, b) })
}

func TestIntegerElementwise(t *testing.T) {
	// Integer types take the scalar access path on baseline tiers but
	// share the same public surface.
	a := NewBlock[int32](3, 4)
	b := NewBlock[int32](3, 4)
	fillByIndex(a, func(i int) int32 { return int32(i) })
	fillByIndex(b, func(i int) int32 { return int32(10 - i) })

	dst := NewBlock[int32](3, 4)
	Add(dst, a, b)
	for _, v := range dump(dst) {
		assert.Equal(t, int32(10), v)
	}
}
