package pack

import (
	"math"
	"testing"
	"unsafe"
)

func TestWidthLaw(t *testing.T) {
	// Width must equal register bytes / element size for every lane type.
	w := CurrentWidth()

	if got := Width[float32](); got != w/4 {
		t.Errorf("Width[float32] = %d, want %d", got, w/4)
	}
	if got := Width[float64](); got != w/8 {
		t.Errorf("Width[float64] = %d, want %d", got, w/8)
	}
	if got := Width[int32](); got != w/4 {
		t.Errorf("Width[int32] = %d, want %d", got, w/4)
	}
	if got := Width[int64](); got != w/8 {
		t.Errorf("Width[int64] = %d, want %d", got, w/8)
	}
	if got := Width[uint8](); got != w {
		t.Errorf("Width[uint8] = %d, want %d", got, w)
	}

	// On the 128-bit baseline tiers the documented constants hold.
	if w == 16 {
		if got := Width[float32](); got != 4 {
			t.Errorf("baseline Width[float32] = %d, want 4", got)
		}
		if got := Width[float64](); got != 2 {
			t.Errorf("baseline Width[float64] = %d, want 2", got)
		}
	}

	var f32 float32
	if int(unsafe.Sizeof(f32))*Width[float32]() != w {
		t.Errorf("float32 lanes do not fill the register")
	}
}

func TestBroadcast(t *testing.T) {
	p := Broadcast[float32](42.0)
	if p.Width() != Width[float32]() {
		t.Fatalf("Broadcast width = %d, want %d", p.Width(), Width[float32]())
	}
	for i := 0; i < p.Width(); i++ {
		if p.Extract(i) != 42.0 {
			t.Errorf("lane %d: got %v, want 42.0", i, p.Extract(i))
		}
	}
}

func TestZerosOnes(t *testing.T) {
	z := Zeros[float64]()
	o := Ones[float64]()
	for i := 0; i < z.Width(); i++ {
		if z.Extract(i) != 0 {
			t.Errorf("Zeros lane %d: got %v, want 0", i, z.Extract(i))
		}
		if o.Extract(i) != 1 {
			t.Errorf("Ones lane %d: got %v, want 1", i, o.Extract(i))
		}
	}
}

func TestSpecialValues(t *testing.T) {
	inf := Inf[float32]()
	ninf := NegInf[float32]()
	nan := NaN[float64]()
	for i := 0; i < inf.Width(); i++ {
		if !math.IsInf(float64(inf.Extract(i)), 1) {
			t.Errorf("Inf lane %d: got %v", i, inf.Extract(i))
		}
		if !math.IsInf(float64(ninf.Extract(i)), -1) {
			t.Errorf("NegInf lane %d: got %v", i, ninf.Extract(i))
		}
	}
	for i := 0; i < nan.Width(); i++ {
		if !math.IsNaN(nan.Extract(i)) {
			t.Errorf("NaN lane %d: got %v", i, nan.Extract(i))
		}
	}
}

func TestFromLanes(t *testing.T) {
	w := Width[float32]()
	vals := make([]float32, w)
	for i := range vals {
		vals[i] = float32(i + 1)
	}
	p := FromLanes(vals...)
	for i := 0; i < w; i++ {
		if p.Extract(i) != vals[i] {
			t.Errorf("lane %d: got %v, want %v", i, p.Extract(i), vals[i])
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("FromLanes with wrong count did not panic")
		}
	}()
	FromLanes[float32](1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17)
}

func TestIota(t *testing.T) {
	p := Iota[int32]()
	for i := 0; i < p.Width(); i++ {
		if p.Extract(i) != int32(i) {
			t.Errorf("Iota lane %d: got %v, want %d", i, p.Extract(i), i)
		}
	}
}

func TestExtractOutOfRange(t *testing.T) {
	p := Zeros[float32]()
	defer func() {
		if recover() == nil {
			t.Error("Extract out of range did not panic")
		}
	}()
	p.Extract(p.Width())
}

func TestBroadcastFromLane(t *testing.T) {
	p := Iota[float32]()
	b := p.BroadcastFromLane(1)
	for i := 0; i < b.Width(); i++ {
		if b.Extract(i) != 1 {
			t.Errorf("lane %d: got %v, want 1", i, b.Extract(i))
		}
	}
}

func TestToScalar(t *testing.T) {
	p := Iota[float64]()
	if p.ToScalar() != 0 {
		t.Errorf("ToScalar: got %v, want 0", p.ToScalar())
	}
}

func TestArithmetic(t *testing.T) {
	a := Broadcast[float32](10.0)
	b := Broadcast[float32](4.0)

	checkAll := func(name string, p Pack[float32], want float32) {
		t.Helper()
		for i := 0; i < p.Width(); i++ {
			if p.Extract(i) != want {
				t.Errorf("%s lane %d: got %v, want %v", name, i, p.Extract(i), want)
			}
		}
	}

	checkAll("Add", Add(a, b), 14.0)
	checkAll("Sub", Sub(a, b), 6.0)
	checkAll("Mul", Mul(a, b), 40.0)
	checkAll("Div", Div(a, b), 2.5)
	checkAll("Neg", Neg(a), -10.0)
	checkAll("Abs", Abs(Neg(a)), 10.0)
	checkAll("Max", Max(a, b), 10.0)
	checkAll("Min", Min(a, b), 4.0)
}

func TestMinMaxLaneWise(t *testing.T) {
	w := Width[float64]()
	av := make([]float64, w)
	bv := make([]float64, w)
	for i := range av {
		av[i] = float64(i)
		bv[i] = float64(w - i)
	}
	a := FromLanes(av...)
	b := FromLanes(bv...)

	mx := Max(a, b)
	mn := Min(a, b)
	for i := 0; i < w; i++ {
		wantMax := av[i]
		if bv[i] > av[i] {
			wantMax = bv[i]
		}
		wantMin := av[i]
		if bv[i] < av[i] {
			wantMin = bv[i]
		}
		if mx.Extract(i) != wantMax {
			t.Errorf("Max lane %d: got %v, want %v", i, mx.Extract(i), wantMax)
		}
		if mn.Extract(i) != wantMin {
			t.Errorf("Min lane %d: got %v, want %v", i, mn.Extract(i), wantMin)
		}
	}
}

func TestReduceOrder(t *testing.T) {
	// Reduce combines lanes left to right: ((l0 op l1) op l2) ...
	p := Iota[float64]()
	sum := p.Reduce(func(a, b float64) float64 { return a + b })
	w := p.Width()
	want := float64(w*(w-1)) / 2
	if sum != want {
		t.Errorf("Reduce sum: got %v, want %v", sum, want)
	}

	// Non-commutative combine exposes the order.
	first := p.Reduce(func(a, b float64) float64 { return a })
	if first != 0 {
		t.Errorf("Reduce keep-left: got %v, want 0", first)
	}
	last := p.Reduce(func(a, b float64) float64 { return b })
	if last != float64(w-1) {
		t.Errorf("Reduce keep-right: got %v, want %d", last, w-1)
	}
}

func TestHasNative(t *testing.T) {
	if CurrentLevel() == LevelScalar {
		if HasNative[float32]() {
			t.Error("HasNative[float32] true in scalar mode")
		}
		return
	}
	if !HasNative[float32]() || !HasNative[float64]() {
		t.Error("floats should be native on a SIMD tier")
	}
	if HasNative[int32]() {
		t.Error("int32 should not report a native pack on baseline tiers")
	}
}
