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

// Public elementwise surface. Every function overwrites every element of
// dst in the traversed region; in-place forms are the same calls with
// dst passed as a source. Matching shapes are a caller precondition.

// Stock operator bundles. Each carries the scalar form and the
// lane-identical pack form.

func addOp[T pack.Lanes]() Binary[T] {
	return Binary[T]{
		Scalar: func(a, b T) T { return a + b },
		Vector: pack.Add[T],
	}
}

func subOp[T pack.Lanes]() Binary[T] {
	return Binary[T]{
		Scalar: func(a, b T) T { return a - b },
		Vector: pack.Sub[T],
	}
}

func mulOp[T pack.Lanes]() Binary[T] {
	return Binary[T]{
		Scalar: func(a, b T) T { return a * b },
		Vector: pack.Mul[T],
	}
}

func divOp[T pack.Floats]() Binary[T] {
	return Binary[T]{
		Scalar: func(a, b T) T { return a / b },
		Vector: pack.Div[T],
	}
}

func maxOp[T pack.Lanes]() Binary[T] {
	return Binary[T]{
		Scalar: func(a, b T) T {
			if a > b {
				return a
			}
			return b
		},
		Vector: pack.Max[T],
	}
}

func minOp[T pack.Lanes]() Binary[T] {
	return Binary[T]{
		Scalar: func(a, b T) T {
			if a < b {
				return a
			}
			return b
		},
		Vector: pack.Min[T],
	}
}

func negOp[T pack.Lanes]() Unary[T] {
	return Unary[T]{
		Scalar: func(x T) T { return -x },
		Vector: pack.Neg[T],
	}
}

func absOp[T pack.Lanes]() Unary[T] {
	return Unary[T]{
		Scalar: func(x T) T {
			if x < 0 {
				return -x
			}
			return x
		},
		Vector: pack.Abs[T],
	}
}

func copyOp[T pack.Lanes]() Unary[T] {
	return Unary[T]{
		Scalar: func(x T) T { return x },
		Vector: func(p pack.Pack[T]) pack.Pack[T] { return p },
	}
}

// bindRight turns a binary operator into a unary one with the right
// operand fixed to the scalar c (matrix-scalar forms).
func bindRight[T pack.Lanes](op Binary[T], c T) Unary[T] {
	u := Unary[T]{
		Scalar: func(x T) T { return op.Scalar(x, c) },
	}
	if op.Vector != nil {
		cp := pack.Broadcast(c)
		u.Vector = func(p pack.Pack[T]) pack.Pack[T] { return op.Vector(p, cp) }
	}
	return u
}

// bindLeft fixes the left operand instead (scalar-matrix forms).
func bindLeft[T pack.Lanes](op Binary[T], c T) Unary[T] {
	u := Unary[T]{
		Scalar: func(x T) T { return op.Scalar(c, x) },
	}
	if op.Vector != nil {
		cp := pack.Broadcast(c)
		u.Vector = func(p pack.Pack[T]) pack.Pack[T] { return op.Vector(cp, p) }
	}
	return u
}

// Add computes dst = a + b elementwise.
func Add[T pack.Lanes](dst, a, b Block[T]) {
	op := addOp[T]()
	apply2(PlanFor(op.Vectorizable(), dst, a, b), dst, a, b, op)
}

// Sub computes dst = a - b elementwise.
func Sub[T pack.Lanes](dst, a, b Block[T]) {
	op := subOp[T]()
	apply2(PlanFor(op.Vectorizable(), dst, a, b), dst, a, b, op)
}

// Mul computes dst = a * b elementwise.
func Mul[T pack.Lanes](dst, a, b Block[T]) {
	op := mulOp[T]()
	apply2(PlanFor(op.Vectorizable(), dst, a, b), dst, a, b, op)
}

// Div computes dst = a / b elementwise.
func Div[T pack.Floats](dst, a, b Block[T]) {
	op := divOp[T]()
	apply2(PlanFor(op.Vectorizable(), dst, a, b), dst, a, b, op)
}

// Max computes dst[i] = a[i] > b[i] ? a[i] : b[i] elementwise.
func Max[T pack.Lanes](dst, a, b Block[T]) {
	op := maxOp[T]()
	apply2(PlanFor(op.Vectorizable(), dst, a, b), dst, a, b, op)
}

// Min computes dst[i] = a[i] < b[i] ? a[i] : b[i] elementwise.
func Min[T pack.Lanes](dst, a, b Block[T]) {
	op := minOp[T]()
	apply2(PlanFor(op.Vectorizable(), dst, a, b), dst, a, b, op)
}

// AddScalar computes dst = a + c elementwise.
func AddScalar[T pack.Lanes](dst, a Block[T], c T) {
	op := bindRight(addOp[T](), c)
	apply1(PlanFor(op.Vectorizable(), dst, a), dst, a, op)
}

// SubScalar computes dst = a - c elementwise.
func SubScalar[T pack.Lanes](dst, a Block[T], c T) {
	op := bindRight(subOp[T](), c)
	apply1(PlanFor(op.Vectorizable(), dst, a), dst, a, op)
}

// MulScalar computes dst = a * c elementwise.
func MulScalar[T pack.Lanes](dst, a Block[T], c T) {
	op := bindRight(mulOp[T](), c)
	apply1(PlanFor(op.Vectorizable(), dst, a), dst, a, op)
}

// DivScalar computes dst = a / c elementwise.
func DivScalar[T pack.Floats](dst, a Block[T], c T) {
	op := bindRight(divOp[T](), c)
	apply1(PlanFor(op.Vectorizable(), dst, a), dst, a, op)
}

// SubFrom computes dst = c - a elementwise (the scalar-matrix form of
// subtraction, where operand order matters).
func SubFrom[T pack.Lanes](dst Block[T], c T, a Block[T]) {
	op := bindLeft(subOp[T](), c)
	apply1(PlanFor(op.Vectorizable(), dst, a), dst, a, op)
}

// DivInto computes dst = c / a elementwise (the scalar-matrix form of
// division).
func DivInto[T pack.Floats](dst Block[T], c T, a Block[T]) {
	op := bindLeft(divOp[T](), c)
	apply1(PlanFor(op.Vectorizable(), dst, a), dst, a, op)
}

// MaxScalar computes dst[i] = a[i] > c ? a[i] : c elementwise.
func MaxScalar[T pack.Lanes](dst, a Block[T], c T) {
	op := bindRight(maxOp[T](), c)
	apply1(PlanFor(op.Vectorizable(), dst, a), dst, a, op)
}

// MinScalar computes dst[i] = a[i] < c ? a[i] : c elementwise.
func MinScalar[T pack.Lanes](dst, a Block[T], c T) {
	op := bindRight(minOp[T](), c)
	apply1(PlanFor(op.Vectorizable(), dst, a), dst, a, op)
}

// Neg computes dst = -a elementwise.
func Neg[T pack.Lanes](dst, a Block[T]) {
	op := negOp[T]()
	apply1(PlanFor(op.Vectorizable(), dst, a), dst, a, op)
}

// Abs computes dst = |a| elementwise.
func Abs[T pack.Lanes](dst, a Block[T]) {
	op := absOp[T]()
	apply1(PlanFor(op.Vectorizable(), dst, a), dst, a, op)
}

// Copy copies src into dst elementwise.
func Copy[T pack.Lanes](dst, src Block[T]) {
	op := copyOp[T]()
	apply1(PlanFor(op.Vectorizable(), dst, src), dst, src, op)
}

// Fill sets every element of dst to v.
func Fill[T pack.Lanes](dst Block[T], v T) {
	plan := PlanFor(true, dst)
	if plan.Order == OrderLinear {
		vecFill(plan.Access, dst.lin(), v)
		return
	}
	for j := 0; j < dst.Cols(); j++ {
		vecFill(plan.Access, dst.Col(j), v)
	}
}
