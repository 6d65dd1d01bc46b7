// Copyright 2025 go-lightmat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mat

import "github.com/go-lightmat/lightmat/pack"

// Operator bundles carry both forms of an elementwise operator: the
// per-element form and the pack form. The pack form must produce,
// lane by lane, the same result as the scalar form. A nil Vector marks
// the operator non-vectorizable and forces the scalar access path.
//
// Arity is fixed per bundle; the kernels below are generated per needed
// arity rather than over an open-ended operand list.

// Unary is a one-operand elementwise operator.
type Unary[T pack.Lanes] struct {
	Scalar func(T) T
	Vector func(pack.Pack[T]) pack.Pack[T]
}

// Vectorizable reports whether the operator has a pack form.
func (op Unary[T]) Vectorizable() bool { return op.Vector != nil }

// Binary is a two-operand elementwise operator.
type Binary[T pack.Lanes] struct {
	Scalar func(T, T) T
	Vector func(pack.Pack[T], pack.Pack[T]) pack.Pack[T]
}

// Vectorizable reports whether the operator has a pack form.
func (op Binary[T]) Vectorizable() bool { return op.Vector != nil }

// loadFrom honors an operand's declared alignment.
func loadFrom[T pack.Lanes](src []T, aligned bool) pack.Pack[T] {
	if aligned {
		return pack.LoadAligned(src)
	}
	return pack.LoadUnaligned(src)
}

// vecApply1 evaluates dst[i] = op(src[i]) over one contiguous run.
//
// Each position is read before it is written, so dst may alias src at
// offset zero (the in-place form). Under SIMD the run is processed in
// width chunks with a final partial chunk of size len%width.
func vecApply1[T pack.Lanes](access Access, dst, src []T, srcAligned bool, op Unary[T]) {
	n := len(dst)
	if access == AccessSIMD {
		w := pack.Width[T]()
		i := 0
		for ; i+w <= n; i += w {
			// Full chunks start at width multiples, so an aligned base
			// keeps every chunk aligned.
			op.Vector(loadFrom(src[i:], srcAligned)).Store(dst[i:])
		}
		if rem := n - i; rem > 0 {
			op.Vector(pack.LoadPartial(rem, src[i:])).StorePartial(rem, dst[i:])
		}
		return
	}
	for i := 0; i < n; i++ {
		dst[i] = op.Scalar(src[i])
	}
}

// vecApply2 evaluates dst[i] = op(a[i], b[i]) over one contiguous run.
// The same read-before-write discipline as vecApply1 applies: dst may
// alias a or b at offset zero.
func vecApply2[T pack.Lanes](access Access, dst, a, b []T, aAligned, bAligned bool, op Binary[T]) {
	n := len(dst)
	if access == AccessSIMD {
		w := pack.Width[T]()
		i := 0
		for ; i+w <= n; i += w {
			x := loadFrom(a[i:], aAligned)
			y := loadFrom(b[i:], bAligned)
			op.Vector(x, y).Store(dst[i:])
		}
		if rem := n - i; rem > 0 {
			x := pack.LoadPartial(rem, a[i:])
			y := pack.LoadPartial(rem, b[i:])
			op.Vector(x, y).StorePartial(rem, dst[i:])
		}
		return
	}
	for i := 0; i < n; i++ {
		dst[i] = op.Scalar(a[i], b[i])
	}
}

// vecFill sets every element of one contiguous run to v.
func vecFill[T pack.Lanes](access Access, dst []T, v T) {
	n := len(dst)
	if access == AccessSIMD {
		w := pack.Width[T]()
		p := pack.Broadcast(v)
		i := 0
		for ; i+w <= n; i += w {
			p.Store(dst[i:])
		}
		if rem := n - i; rem > 0 {
			p.StorePartial(rem, dst[i:])
		}
		return
	}
	for i := range dst {
		dst[i] = v
	}
}

// apply1 runs a unary elementwise evaluation under the chosen plan,
// overwriting every element of dst in the traversed region.
func apply1[T pack.Lanes](plan Plan, dst, src Block[T], op Unary[T]) {
	assertSameShape(dst, src)
	if plan.Order == OrderLinear {
		vecApply1(plan.Access, dst.lin(), src.lin(), src.aligned, op)
		return
	}
	for j := 0; j < dst.Cols(); j++ {
		// Only the first column inherits the declared alignment; later
		// columns start ld elements apart, which need not be aligned.
		vecApply1(plan.Access, dst.Col(j), src.Col(j), src.aligned && j == 0, op)
	}
}

// apply2 runs a binary elementwise evaluation under the chosen plan.
// In-place variants pass dst aliasing one source; the per-position
// read-before-write order makes that safe as long as operands do not
// overlap at different offsets.
func apply2[T pack.Lanes](plan Plan, dst, a, b Block[T], op Binary[T]) {
	assertSameShape(dst, a)
	assertSameShape(dst, b)
	if plan.Order == OrderLinear {
		vecApply2(plan.Access, dst.lin(), a.lin(), b.lin(), a.aligned, b.aligned, op)
		return
	}
	for j := 0; j < dst.Cols(); j++ {
		vecApply2(plan.Access, dst.Col(j), a.Col(j), b.Col(j),
			a.aligned && j == 0, b.aligned && j == 0, op)
	}
}
