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

// Public reduction surface: sum, mean, maximum and minimum, each over the
// whole matrix, per column, or per row, plus transform ("X") variants that
// apply an elementwise transform to each source tuple before folding.
//
// Empty inputs return the folder's identity: sum 0, mean NaN, maximum
// -Inf, minimum +Inf. The infinities are "no data" sentinels, not numeric
// answers.
//
// Mean is sum-then-scale: the summed results are multiplied once by
// 1/count after the fold, never inside the per-column loop.

// Sum returns the sum of all elements.
func Sum[T pack.Lanes](b Block[T]) T {
	f := SumFolder[T]()
	return foldAll(PlanFor(f.Vectorizable(), b), f, b)
}

// Mean returns the arithmetic mean of all elements; NaN for an empty
// matrix.
func Mean[T pack.Floats](b Block[T]) T {
	return Sum(b) / T(b.Len())
}

// Maximum returns the largest element, or -Inf for an empty matrix.
func Maximum[T pack.Floats](b Block[T]) T {
	f := MaxFolder[T]()
	return foldAll(PlanFor(f.Vectorizable(), b), f, b)
}

// Minimum returns the smallest element, or +Inf for an empty matrix.
func Minimum[T pack.Floats](b Block[T]) T {
	f := MinFolder[T]()
	return foldAll(PlanFor(f.Vectorizable(), b), f, b)
}

// SumX returns the sum of t applied to each element of a.
func SumX[T pack.Lanes](t Unary[T], a Block[T]) T {
	f := SumFolder[T]()
	return foldAllX1(PlanFor(f.Vectorizable() && t.Vectorizable(), a), f, t, a)
}

// SumX2 returns the sum of t applied to each element pair of a and b.
func SumX2[T pack.Lanes](t Binary[T], a, b Block[T]) T {
	f := SumFolder[T]()
	return foldAllX2(PlanFor(f.Vectorizable() && t.Vectorizable(), a, b), f, t, a, b)
}

// MeanX returns the mean of t applied to each element of a.
func MeanX[T pack.Floats](t Unary[T], a Block[T]) T {
	return SumX(t, a) / T(a.Len())
}

// MeanX2 returns the mean of t applied to each element pair of a and b.
func MeanX2[T pack.Floats](t Binary[T], a, b Block[T]) T {
	return SumX2(t, a, b) / T(a.Len())
}

// MaximumX returns the largest value of t applied to each element of a.
func MaximumX[T pack.Floats](t Unary[T], a Block[T]) T {
	f := MaxFolder[T]()
	return foldAllX1(PlanFor(f.Vectorizable() && t.Vectorizable(), a), f, t, a)
}

// MaximumX2 is the two-source form of MaximumX.
func MaximumX2[T pack.Floats](t Binary[T], a, b Block[T]) T {
	f := MaxFolder[T]()
	return foldAllX2(PlanFor(f.Vectorizable() && t.Vectorizable(), a, b), f, t, a, b)
}

// MinimumX returns the smallest value of t applied to each element of a.
func MinimumX[T pack.Floats](t Unary[T], a Block[T]) T {
	f := MinFolder[T]()
	return foldAllX1(PlanFor(f.Vectorizable() && t.Vectorizable(), a), f, t, a)
}

// MinimumX2 is the two-source form of MinimumX.
func MinimumX2[T pack.Floats](t Binary[T], a, b Block[T]) T {
	f := MinFolder[T]()
	return foldAllX2(PlanFor(f.Vectorizable() && t.Vectorizable(), a, b), f, t, a, b)
}

// Dot returns the sum of elementwise products of a and b, the canonical
// two-source transformed reduction.
func Dot[T pack.Lanes](a, b Block[T]) T {
	return SumX2(mulOp[T](), a, b)
}

// scaleVec multiplies one output vector by c in place (the closing step
// of the mean reductions).
func scaleVec[T pack.Floats](access Access, out []T, c T) {
	vecApply1(access, out, out, false, bindRight(mulOp[T](), c))
}

// ColwiseSum writes the sum of each column to out; len(out) must equal
// the column count.
func ColwiseSum[T pack.Lanes](b Block[T], out []T) {
	f := SumFolder[T]()
	foldCols(PlanFor(f.Vectorizable(), b), f, b, out)
}

// ColwiseMean writes the mean of each column to out.
func ColwiseMean[T pack.Floats](b Block[T], out []T) {
	f := SumFolder[T]()
	plan := PlanFor(f.Vectorizable(), b)
	foldCols(plan, f, b, out)
	scaleVec(plan.Access, out, 1/T(b.Rows()))
}

// ColwiseMaximum writes the largest element of each column to out.
func ColwiseMaximum[T pack.Floats](b Block[T], out []T) {
	f := MaxFolder[T]()
	foldCols(PlanFor(f.Vectorizable(), b), f, b, out)
}

// ColwiseMinimum writes the smallest element of each column to out.
func ColwiseMinimum[T pack.Floats](b Block[T], out []T) {
	f := MinFolder[T]()
	foldCols(PlanFor(f.Vectorizable(), b), f, b, out)
}

// ColwiseSumX writes the per-column sum of t applied to a.
func ColwiseSumX[T pack.Lanes](t Unary[T], a Block[T], out []T) {
	f := SumFolder[T]()
	foldColsX1(PlanFor(f.Vectorizable() && t.Vectorizable(), a), f, t, a, out)
}

// ColwiseSumX2 writes the per-column sum of t applied to pairs of a and b.
func ColwiseSumX2[T pack.Lanes](t Binary[T], a, b Block[T], out []T) {
	f := SumFolder[T]()
	foldColsX2(PlanFor(f.Vectorizable() && t.Vectorizable(), a, b), f, t, a, b, out)
}

// ColwiseMeanX writes the per-column mean of t applied to a.
func ColwiseMeanX[T pack.Floats](t Unary[T], a Block[T], out []T) {
	f := SumFolder[T]()
	plan := PlanFor(f.Vectorizable() && t.Vectorizable(), a)
	foldColsX1(plan, f, t, a, out)
	scaleVec(plan.Access, out, 1/T(a.Rows()))
}

// ColwiseMeanX2 writes the per-column mean of t applied to pairs of a
// and b.
func ColwiseMeanX2[T pack.Floats](t Binary[T], a, b Block[T], out []T) {
	f := SumFolder[T]()
	plan := PlanFor(f.Vectorizable() && t.Vectorizable(), a, b)
	foldColsX2(plan, f, t, a, b, out)
	scaleVec(plan.Access, out, 1/T(a.Rows()))
}

// ColwiseMaximumX writes the per-column maximum of t applied to a.
func ColwiseMaximumX[T pack.Floats](t Unary[T], a Block[T], out []T) {
	f := MaxFolder[T]()
	foldColsX1(PlanFor(f.Vectorizable() && t.Vectorizable(), a), f, t, a, out)
}

// ColwiseMinimumX writes the per-column minimum of t applied to a.
func ColwiseMinimumX[T pack.Floats](t Unary[T], a Block[T], out []T) {
	f := MinFolder[T]()
	foldColsX1(PlanFor(f.Vectorizable() && t.Vectorizable(), a), f, t, a, out)
}

// RowwiseSum writes the sum of each row to out; len(out) must equal the
// row count.
func RowwiseSum[T pack.Lanes](b Block[T], out []T) {
	f := SumFolder[T]()
	foldRows(PlanFor(f.Vectorizable(), b), f, b, out)
}

// RowwiseMean writes the mean of each row to out.
func RowwiseMean[T pack.Floats](b Block[T], out []T) {
	f := SumFolder[T]()
	plan := PlanFor(f.Vectorizable(), b)
	foldRows(plan, f, b, out)
	scaleVec(plan.Access, out, 1/T(b.Cols()))
}

// RowwiseMaximum writes the largest element of each row to out.
func RowwiseMaximum[T pack.Floats](b Block[T], out []T) {
	f := MaxFolder[T]()
	foldRows(PlanFor(f.Vectorizable(), b), f, b, out)
}

// RowwiseMinimum writes the smallest element of each row to out.
func RowwiseMinimum[T pack.Floats](b Block[T], out []T) {
	f := MinFolder[T]()
	foldRows(PlanFor(f.Vectorizable(), b), f, b, out)
}

// RowwiseSumX writes the per-row sum of t applied to a.
func RowwiseSumX[T pack.Lanes](t Unary[T], a Block[T], out []T) {
	f := SumFolder[T]()
	foldRowsX1(PlanFor(f.Vectorizable() && t.Vectorizable(), a), f, t, a, out)
}

// RowwiseSumX2 writes the per-row sum of t applied to pairs of a and b.
func RowwiseSumX2[T pack.Lanes](t Binary[T], a, b Block[T], out []T) {
	f := SumFolder[T]()
	foldRowsX2(PlanFor(f.Vectorizable() && t.Vectorizable(), a, b), f, t, a, b, out)
}

// RowwiseMeanX writes the per-row mean of t applied to a.
func RowwiseMeanX[T pack.Floats](t Unary[T], a Block[T], out []T) {
	f := SumFolder[T]()
	plan := PlanFor(f.Vectorizable() && t.Vectorizable(), a)
	foldRowsX1(plan, f, t, a, out)
	scaleVec(plan.Access, out, 1/T(a.Cols()))
}

// RowwiseMeanX2 writes the per-row mean of t applied to pairs of a and b.
func RowwiseMeanX2[T pack.Floats](t Binary[T], a, b Block[T], out []T) {
	f := SumFolder[T]()
	plan := PlanFor(f.Vectorizable() && t.Vectorizable(), a, b)
	foldRowsX2(plan, f, t, a, b, out)
	scaleVec(plan.Access, out, 1/T(a.Cols()))
}

// RowwiseMaximumX writes the per-row maximum of t applied to a.
func RowwiseMaximumX[T pack.Floats](t Unary[T], a Block[T], out []T) {
	f := MaxFolder[T]()
	foldRowsX1(PlanFor(f.Vectorizable() && t.Vectorizable(), a), f, t, a, out)
}

// RowwiseMinimumX writes the per-row minimum of t applied to a.
func RowwiseMinimumX[T pack.Floats](t Unary[T], a Block[T], out []T) {
	f := MinFolder[T]()
	foldRowsX1(PlanFor(f.Vectorizable() && t.Vectorizable(), a), f, t, a, out)
}
