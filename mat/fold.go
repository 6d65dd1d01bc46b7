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

import (
	"math"

	"github.com/go-lightmat/lightmat/pack"
)

// Folder bundles an associative combining operator with its identity
// value. Combine must be associative and commutative up to floating-point
// rounding; CombinePack must produce, lane by lane, the same result as
// Combine applied independently to each lane; Identity must be neutral
// for the first fold step.
//
// Reducing an empty input yields Identity verbatim. For maximum and
// minimum that means -Inf and +Inf, which callers must treat as "no data"
// sentinels rather than numeric answers.
type Folder[T pack.Lanes] struct {
	Identity    T
	Combine     func(acc, x T) T
	CombinePack func(acc, x pack.Pack[T]) pack.Pack[T]
}

// Vectorizable reports whether the folder has a pack form.
func (f Folder[T]) Vectorizable() bool { return f.CombinePack != nil }

// SumFolder returns the additive folder (identity 0).
func SumFolder[T pack.Lanes]() Folder[T] {
	return Folder[T]{
		Combine:     func(acc, x T) T { return acc + x },
		CombinePack: pack.Add[T],
	}
}

// MaxFolder returns the maximum folder (identity -Inf).
func MaxFolder[T pack.Floats]() Folder[T] {
	return Folder[T]{
		Identity: T(math.Inf(-1)),
		Combine: func(acc, x T) T {
			if acc > x {
				return acc
			}
			return x
		},
		CombinePack: pack.Max[T],
	}
}

// MinFolder returns the minimum folder (identity +Inf).
func MinFolder[T pack.Floats]() Folder[T] {
	return Folder[T]{
		Identity: T(math.Inf(1)),
		Combine: func(acc, x T) T {
			if acc < x {
				return acc
			}
			return x
		},
		CombinePack: pack.Min[T],
	}
}

// Run helpers: combine one contiguous run into a scalar or pack
// accumulator. The pack form batches width chunks and folds the tail
// through an identity-filled partial load, so unused lanes never
// influence the result.

func foldRunScalar[T pack.Lanes](acc T, folder Folder[T], xs []T) T {
	for _, x := range xs {
		acc = folder.Combine(acc, x)
	}
	return acc
}

func foldRunPack[T pack.Lanes](acc pack.Pack[T], folder Folder[T], xs []T, aligned bool) pack.Pack[T] {
	w := pack.Width[T]()
	i := 0
	for ; i+w <= len(xs); i += w {
		acc = folder.CombinePack(acc, loadFrom(xs[i:], aligned))
	}
	if rem := len(xs) - i; rem > 0 {
		acc = folder.CombinePack(acc, pack.LoadPartialFill(rem, xs[i:], folder.Identity))
	}
	return acc
}

func foldRunScalarX1[T pack.Lanes](acc T, folder Folder[T], t Unary[T], xs []T) T {
	for _, x := range xs {
		acc = folder.Combine(acc, t.Scalar(x))
	}
	return acc
}

func foldRunPackX1[T pack.Lanes](acc pack.Pack[T], folder Folder[T], t Unary[T], xs []T, aligned bool) pack.Pack[T] {
	w := pack.Width[T]()
	i := 0
	for ; i+w <= len(xs); i += w {
		acc = folder.CombinePack(acc, t.Vector(loadFrom(xs[i:], aligned)))
	}
	if rem := len(xs) - i; rem > 0 {
		// Transform first, then mask the unused lanes back to identity:
		// the transform of a zero-filled lane is not neutral in general.
		tv := t.Vector(pack.LoadPartial(rem, xs[i:]))
		acc = folder.CombinePack(acc, pack.PartialFill(rem, tv, folder.Identity))
	}
	return acc
}

func foldRunScalarX2[T pack.Lanes](acc T, folder Folder[T], t Binary[T], xs, ys []T) T {
	for i := range xs {
		acc = folder.Combine(acc, t.Scalar(xs[i], ys[i]))
	}
	return acc
}

func foldRunPackX2[T pack.Lanes](acc pack.Pack[T], folder Folder[T], t Binary[T], xs, ys []T, xAligned, yAligned bool) pack.Pack[T] {
	w := pack.Width[T]()
	i := 0
	for ; i+w <= len(xs); i += w {
		tv := t.Vector(loadFrom(xs[i:], xAligned), loadFrom(ys[i:], yAligned))
		acc = folder.CombinePack(acc, tv)
	}
	if rem := len(xs) - i; rem > 0 {
		tv := t.Vector(pack.LoadPartial(rem, xs[i:]), pack.LoadPartial(rem, ys[i:]))
		acc = folder.CombinePack(acc, pack.PartialFill(rem, tv, folder.Identity))
	}
	return acc
}

// vecFold reduces one contiguous run to a scalar. Under SIMD the
// accumulator pack's lanes are combined left to right at the end; the
// result is deterministic for a fixed access tag but need not match the
// scalar path bit for bit on non-associative combiners.
func vecFold[T pack.Lanes](access Access, folder Folder[T], xs []T, aligned bool) T {
	if len(xs) == 0 {
		return folder.Identity
	}
	if access == AccessSIMD {
		acc := foldRunPack(pack.Broadcast(folder.Identity), folder, xs, aligned)
		return acc.Reduce(folder.Combine)
	}
	return foldRunScalar(folder.Identity, folder, xs)
}

func vecFoldX1[T pack.Lanes](access Access, folder Folder[T], t Unary[T], xs []T, aligned bool) T {
	if len(xs) == 0 {
		return folder.Identity
	}
	if access == AccessSIMD {
		acc := foldRunPackX1(pack.Broadcast(folder.Identity), folder, t, xs, aligned)
		return acc.Reduce(folder.Combine)
	}
	return foldRunScalarX1(folder.Identity, folder, t, xs)
}

func vecFoldX2[T pack.Lanes](access Access, folder Folder[T], t Binary[T], xs, ys []T, xAligned, yAligned bool) T {
	if len(xs) == 0 {
		return folder.Identity
	}
	if access == AccessSIMD {
		acc := foldRunPackX2(pack.Broadcast(folder.Identity), folder, t, xs, ys, xAligned, yAligned)
		return acc.Reduce(folder.Combine)
	}
	return foldRunScalarX2(folder.Identity, folder, t, xs, ys)
}

// foldAll reduces a whole matrix to one scalar. Under a column-major
// sweep the accumulator is carried across columns, so the scalar path
// still combines sequentially in storage order.
func foldAll[T pack.Lanes](plan Plan, folder Folder[T], b Block[T]) T {
	if b.Len() == 0 {
		return folder.Identity
	}
	if plan.Order == OrderLinear {
		return vecFold(plan.Access, folder, b.lin(), b.aligned)
	}
	if plan.Access == AccessSIMD {
		acc := pack.Broadcast(folder.Identity)
		for j := 0; j < b.Cols(); j++ {
			acc = foldRunPack(acc, folder, b.Col(j), b.aligned && j == 0)
		}
		return acc.Reduce(folder.Combine)
	}
	acc := folder.Identity
	for j := 0; j < b.Cols(); j++ {
		acc = foldRunScalar(acc, folder, b.Col(j))
	}
	return acc
}

func foldAllX1[T pack.Lanes](plan Plan, folder Folder[T], t Unary[T], a Block[T]) T {
	if a.Len() == 0 {
		return folder.Identity
	}
	if plan.Order == OrderLinear {
		return vecFoldX1(plan.Access, folder, t, a.lin(), a.aligned)
	}
	if plan.Access == AccessSIMD {
		acc := pack.Broadcast(folder.Identity)
		for j := 0; j < a.Cols(); j++ {
			acc = foldRunPackX1(acc, folder, t, a.Col(j), a.aligned && j == 0)
		}
		return acc.Reduce(folder.Combine)
	}
	acc := folder.Identity
	for j := 0; j < a.Cols(); j++ {
		acc = foldRunScalarX1(acc, folder, t, a.Col(j))
	}
	return acc
}

func foldAllX2[T pack.Lanes](plan Plan, folder Folder[T], t Binary[T], a, b Block[T]) T {
	assertSameShape(a, b)
	if a.Len() == 0 {
		return folder.Identity
	}
	if plan.Order == OrderLinear {
		return vecFoldX2(plan.Access, folder, t, a.lin(), b.lin(), a.aligned, b.aligned)
	}
	if plan.Access == AccessSIMD {
		acc := pack.Broadcast(folder.Identity)
		for j := 0; j < a.Cols(); j++ {
			acc = foldRunPackX2(acc, folder, t, a.Col(j), b.Col(j),
				a.aligned && j == 0, b.aligned && j == 0)
		}
		return acc.Reduce(folder.Combine)
	}
	acc := folder.Identity
	for j := 0; j < a.Cols(); j++ {
		acc = foldRunScalarX2(acc, folder, t, a.Col(j), b.Col(j))
	}
	return acc
}

// foldCols writes one reduced value per column: out[j] is the reduction
// of column j, columns visited in increasing index order.
func foldCols[T pack.Lanes](plan Plan, folder Folder[T], b Block[T], out []T) {
	assertLen(len(out), b.Cols())
	for j := 0; j < b.Cols(); j++ {
		out[j] = vecFold(plan.Access, folder, b.Col(j), b.aligned && j == 0)
	}
}

func foldColsX1[T pack.Lanes](plan Plan, folder Folder[T], t Unary[T], a Block[T], out []T) {
	assertLen(len(out), a.Cols())
	for j := 0; j < a.Cols(); j++ {
		out[j] = vecFoldX1(plan.Access, folder, t, a.Col(j), a.aligned && j == 0)
	}
}

func foldColsX2[T pack.Lanes](plan Plan, folder Folder[T], t Binary[T], a, b Block[T], out []T) {
	assertSameShape(a, b)
	assertLen(len(out), a.Cols())
	for j := 0; j < a.Cols(); j++ {
		out[j] = vecFoldX2(plan.Access, folder, t, a.Col(j), b.Col(j),
			a.aligned && j == 0, b.aligned && j == 0)
	}
}

// vecFoldInto1 combines a transformed run into a per-position accumulator
// vector: acc[i] = Combine(acc[i], t(xs[i])). This is the inner sweep of
// rowwise reduction; each position is read before written.
func vecFoldInto1[T pack.Lanes](access Access, folder Folder[T], t Unary[T], acc, xs []T, aligned bool) {
	n := len(acc)
	if access == AccessSIMD {
		w := pack.Width[T]()
		i := 0
		for ; i+w <= n; i += w {
			a := pack.LoadUnaligned(acc[i:])
			folder.CombinePack(a, t.Vector(loadFrom(xs[i:], aligned))).Store(acc[i:])
		}
		if rem := n - i; rem > 0 {
			a := pack.LoadPartial(rem, acc[i:])
			tv := t.Vector(pack.LoadPartial(rem, xs[i:]))
			folder.CombinePack(a, tv).StorePartial(rem, acc[i:])
		}
		return
	}
	for i := 0; i < n; i++ {
		acc[i] = folder.Combine(acc[i], t.Scalar(xs[i]))
	}
}

func vecFoldInto2[T pack.Lanes](access Access, folder Folder[T], t Binary[T], acc, xs, ys []T, xAligned, yAligned bool) {
	n := len(acc)
	if access == AccessSIMD {
		w := pack.Width[T]()
		i := 0
		for ; i+w <= n; i += w {
			a := pack.LoadUnaligned(acc[i:])
			tv := t.Vector(loadFrom(xs[i:], xAligned), loadFrom(ys[i:], yAligned))
			folder.CombinePack(a, tv).Store(acc[i:])
		}
		if rem := n - i; rem > 0 {
			a := pack.LoadPartial(rem, acc[i:])
			tv := t.Vector(pack.LoadPartial(rem, xs[i:]), pack.LoadPartial(rem, ys[i:]))
			folder.CombinePack(a, tv).StorePartial(rem, acc[i:])
		}
		return
	}
	for i := 0; i < n; i++ {
		acc[i] = folder.Combine(acc[i], t.Scalar(xs[i], ys[i]))
	}
}

// foldRows writes one reduced value per row by streaming columns left to
// right: column 0 seeds the accumulator vector, later columns are
// combined position by position. This avoids random access by row on
// column-major storage.
func foldRows[T pack.Lanes](plan Plan, folder Folder[T], b Block[T], out []T) {
	foldRowsX1(plan, folder, copyOp[T](), b, out)
}

func foldRowsX1[T pack.Lanes](plan Plan, folder Folder[T], t Unary[T], a Block[T], out []T) {
	assertLen(len(out), a.Rows())
	if a.Cols() == 0 {
		vecFill(plan.Access, out, folder.Identity)
		return
	}
	vecApply1(plan.Access, out, a.Col(0), a.aligned, t)
	for j := 1; j < a.Cols(); j++ {
		vecFoldInto1(plan.Access, folder, t, out, a.Col(j), false)
	}
}

func foldRowsX2[T pack.Lanes](plan Plan, folder Folder[T], t Binary[T], a, b Block[T], out []T) {
	assertSameShape(a, b)
	assertLen(len(out), a.Rows())
	if a.Cols() == 0 {
		vecFill(plan.Access, out, folder.Identity)
		return
	}
	vecApply2(plan.Access, out, a.Col(0), b.Col(0), a.aligned, b.aligned, t)
	for j := 1; j < a.Cols(); j++ {
		vecFoldInto2(plan.Access, folder, t, out, a.Col(j), b.Col(j), false, false)
	}
}
