// Package pack provides a fixed-width abstraction over one hardware SIMD
// register ("pack") for one element type.
//
// A Pack holds exactly Width[T]() lanes, where the lane count is fixed by
// the element type and the SIMD tier detected at startup (e.g. 4 lanes of
// float32 and 2 lanes of float64 on a 128-bit tier). All loads, stores and
// arithmetic operate on exactly that many contiguous elements unless a
// partial variant is used.
//
// Basic usage:
//
//	a := pack.LoadUnaligned(data1)
//	b := pack.LoadUnaligned(data2)
//	pack.Add(a, b).Store(out)
package pack

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Pack is a portable vector-register handle holding Width[T]() lanes.
// It is a value type: constructed from a scalar (broadcast), from explicit
// lane values, or by loading from memory, and destroyed with its scope.
//
// Pack instances should not be created directly; use Zeros, Broadcast,
// FromLanes or one of the load functions instead.
type Pack[T Lanes] struct {
	// lanes always has length Width[T]().
	lanes []T
}

// Width returns the number of lanes in this pack.
func (p Pack[T]) Width() int {
	return len(p.lanes)
}

// Data returns the underlying lane slice. This is primarily for testing
// and should not be used in performance-critical code.
func (p Pack[T]) Data() []T {
	return p.lanes
}

// Extract returns the value of the given lane.
// Panics if lane is outside [0, width).
func (p Pack[T]) Extract(lane int) T {
	if lane < 0 || lane >= len(p.lanes) {
		panic("pack: lane index out of range")
	}
	return p.lanes[lane]
}

// BroadcastFromLane returns a pack with every lane set to the value of
// the given lane. Panics if lane is outside [0, width).
func (p Pack[T]) BroadcastFromLane(lane int) Pack[T] {
	return Broadcast(p.Extract(lane))
}

// ToScalar returns lane 0. Used when a computation degenerates to a
// single value.
func (p Pack[T]) ToScalar() T {
	return p.lanes[0]
}

// Reduce combines all lanes into one scalar by repeated pairwise
// application of f, left to right over the lane index: lane 0 with
// lane 1, the result with lane 2, and so on. The order is fixed and
// deterministic.
func (p Pack[T]) Reduce(f func(a, b T) T) T {
	acc := p.lanes[0]
	for i := 1; i < len(p.lanes); i++ {
		acc = f(acc, p.lanes[i])
	}
	return acc
}

// Zeros returns a pack with all lanes set to zero.
func Zeros[T Lanes]() Pack[T] {
	return Pack[T]{lanes: make([]T, Width[T]())}
}

// Ones returns a pack with all lanes set to one.
func Ones[T Lanes]() Pack[T] {
	return Broadcast(T(1))
}

// Broadcast returns a pack with every lane set to v.
func Broadcast[T Lanes](v T) Pack[T] {
	n := Width[T]()
	lanes := make([]T, n)
	for i := range lanes {
		lanes[i] = v
	}
	return Pack[T]{lanes: lanes}
}

// FromLanes constructs a pack from explicit lane values.
// Panics unless exactly Width[T]() values are given.
func FromLanes[T Lanes](vals ...T) Pack[T] {
	if len(vals) != Width[T]() {
		panic("pack: FromLanes requires exactly Width[T]() values")
	}
	lanes := make([]T, len(vals))
	copy(lanes, vals)
	return Pack[T]{lanes: lanes}
}

// Iota returns a pack with lanes set to [0, 1, 2, ...].
func Iota[T Lanes]() Pack[T] {
	n := Width[T]()
	lanes := make([]T, n)
	for i := range lanes {
		lanes[i] = T(i)
	}
	return Pack[T]{lanes: lanes}
}
