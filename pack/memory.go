package pack

// This file provides the load/store contract of Pack.
//
// Full loads and stores move exactly Width[T]() contiguous elements.
// LoadAligned requires the first element of src to sit on the pack's
// natural alignment boundary; that is a caller contract, not a checked
// condition, and the two load paths exist so that kernels can honor an
// operand's declared alignment. Partial variants move exactly k elements
// for 0 <= k <= width and are the tail-handling mechanism when a run
// length is not a multiple of the width.

// LoadAligned reads Width[T]() contiguous elements from src.
// The caller guarantees src is naturally aligned for this pack.
func LoadAligned[T Lanes](src []T) Pack[T] {
	n := Width[T]()
	lanes := make([]T, n)
	copy(lanes, src[:n])
	return Pack[T]{lanes: lanes}
}

// LoadUnaligned reads Width[T]() contiguous elements from src with no
// alignment requirement.
func LoadUnaligned[T Lanes](src []T) Pack[T] {
	n := Width[T]()
	lanes := make([]T, n)
	copy(lanes, src[:n])
	return Pack[T]{lanes: lanes}
}

// Store writes all Width[T]() lanes to dst.
func (p Pack[T]) Store(dst []T) {
	copy(dst[:len(p.lanes)], p.lanes)
}

// LoadPartial reads exactly k contiguous elements from src.
// Lanes k..width-1 of the returned pack are zero.
// Panics if k is outside [0, width].
func LoadPartial[T Lanes](k int, src []T) Pack[T] {
	n := Width[T]()
	if k < 0 || k > n {
		panic("pack: partial load count out of range")
	}
	lanes := make([]T, n)
	copy(lanes, src[:k])
	return Pack[T]{lanes: lanes}
}

// LoadPartialFill reads exactly k contiguous elements from src and sets
// lanes k..width-1 to fill. Folding kernels use this to load a tail with
// the folder's identity value so that unused lanes never influence the
// reduced result. Panics if k is outside [0, width].
func LoadPartialFill[T Lanes](k int, src []T, fill T) Pack[T] {
	n := Width[T]()
	if k < 0 || k > n {
		panic("pack: partial load count out of range")
	}
	lanes := make([]T, n)
	copy(lanes, src[:k])
	for i := k; i < n; i++ {
		lanes[i] = fill
	}
	return Pack[T]{lanes: lanes}
}

// PartialFill keeps the first k lanes of p and sets lanes k..width-1 to
// fill. This is the masked-fold primitive for tails whose values are
// produced in registers (e.g. a transformed partial load) rather than
// loaded from memory. Panics if k is outside [0, width].
func PartialFill[T Lanes](k int, p Pack[T], fill T) Pack[T] {
	n := len(p.lanes)
	if k < 0 || k > n {
		panic("pack: partial fill count out of range")
	}
	lanes := make([]T, n)
	copy(lanes, p.lanes[:k])
	for i := k; i < n; i++ {
		lanes[i] = fill
	}
	return Pack[T]{lanes: lanes}
}

// StorePartial writes exactly the first k lanes to dst and leaves the
// rest of dst untouched. Panics if k is outside [0, width].
func (p Pack[T]) StorePartial(k int, dst []T) {
	if k < 0 || k > len(p.lanes) {
		panic("pack: partial store count out of range")
	}
	copy(dst[:k], p.lanes[:k])
}
