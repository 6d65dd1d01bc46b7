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
	"fmt"

	"github.com/go-lightmat/lightmat/pack"
)

// Block is a view over a column-major buffer: a pointer to the first
// element, row and column extents, and a leading dimension ld >= rows
// giving the memory distance between successive columns. A sub-matrix
// aliases its parent's buffer without copying.
//
// Alignment of the first element is a property the caller declares via
// MarkAligned; the evaluation kernels pick aligned or unaligned pack
// loads based on it and the declaration must be truthful.
type Block[T pack.Lanes] struct {
	data    []T
	shape   Shape
	ld      int
	aligned bool
}

// NewBlock allocates an owned, contiguous rows x cols block (ld == rows).
// Owned storage starts at a slice base, which Go aligns naturally, so the
// block is marked aligned.
func NewBlock[T pack.Lanes](rows, cols int) Block[T] {
	return NewBlockShaped[T](ShapeOf(rows, cols))
}

// NewBlockShaped allocates an owned contiguous block for a resolved shape.
func NewBlockShaped[T pack.Lanes](s Shape) Block[T] {
	return Block[T]{
		data:    make([]T, s.Len()),
		shape:   s,
		ld:      s.Rows(),
		aligned: true,
	}
}

// BlockOf wraps an existing column-major buffer without copying.
// Successive columns begin ld elements apart; ld must be >= rows and the
// buffer must cover the last column. The view is not marked aligned;
// callers that know better use MarkAligned.
func BlockOf[T pack.Lanes](data []T, rows, cols, ld int) Block[T] {
	if ld < rows {
		panic(fmt.Sprintf("mat: leading dimension %d < rows %d", ld, rows))
	}
	if cols > 0 && len(data) < ld*(cols-1)+rows {
		panic(fmt.Sprintf("mat: buffer of %d elements too short for %dx%d view with ld %d",
			len(data), rows, cols, ld))
	}
	return Block[T]{
		data:  data,
		shape: ShapeOf(rows, cols),
		ld:    ld,
	}
}

// Rows returns the row extent.
func (b Block[T]) Rows() int { return b.shape.Rows() }

// Cols returns the column extent.
func (b Block[T]) Cols() int { return b.shape.Cols() }

// Len returns the element count rows*cols.
func (b Block[T]) Len() int { return b.shape.Len() }

// Shape returns the block's shape.
func (b Block[T]) Shape() Shape { return b.shape }

// LD returns the leading dimension.
func (b Block[T]) LD() int { return b.ld }

// IsContiguous reports whether the block exposes one contiguous run of
// length rows*cols, which holds when ld == rows (or the view has at most
// one column).
func (b Block[T]) IsContiguous() bool {
	return b.ld == b.shape.Rows() || b.shape.Cols() <= 1
}

// IsAligned reports the caller-declared alignment of the first element.
func (b Block[T]) IsAligned() bool { return b.aligned }

// MarkAligned declares that the first element sits on the pack's natural
// alignment boundary. The declaration must be truthful: the aligned load
// path assumes it.
func (b Block[T]) MarkAligned() Block[T] {
	b.aligned = true
	return b
}

// Col returns column j as a contiguous slice of length rows.
func (b Block[T]) Col(j int) []T {
	off := j * b.ld
	return b.data[off : off+b.shape.Rows()]
}

// At returns the element at row i, column j.
func (b Block[T]) At(i, j int) T {
	return b.data[j*b.ld+i]
}

// Set assigns the element at row i, column j.
func (b Block[T]) Set(i, j int, v T) {
	b.data[j*b.ld+i] = v
}

// Sub returns the m x n sub-view whose top-left corner is (i, j).
// The sub-view aliases this block's buffer. Sub-views lose the aligned
// mark unless they start at the parent's first element.
func (b Block[T]) Sub(i, j, m, n int) Block[T] {
	if i < 0 || j < 0 || i+m > b.shape.Rows() || j+n > b.shape.Cols() {
		panic(fmt.Sprintf("mat: sub-view %dx%d at (%d,%d) outside %s block", m, n, i, j, b.shape))
	}
	off := j*b.ld + i
	return Block[T]{
		data:    b.data[off:],
		shape:   ShapeOf(m, n),
		ld:      b.ld,
		aligned: b.aligned && off == 0,
	}
}

// lin returns the single contiguous run spanning the whole block.
// Only valid when IsContiguous() holds; linear-order kernels call it
// after the access plan has established contiguity.
func (b Block[T]) lin() []T {
	return b.data[:b.shape.Len()]
}

// assertLen checks an output vector's length against the expected
// number of reduced values.
func assertLen(got, want int) {
	if got != want {
		panic(fmt.Sprintf("mat: output length %d, want %d", got, want))
	}
}

// assertSameShape is the precondition check at the public boundary:
// every matrix operand of one call shares the same effective shape.
func assertSameShape[T pack.Lanes](a, b Block[T]) {
	if !a.shape.Equal(b.shape) {
		panic(fmt.Sprintf("mat: shape mismatch: %s vs %s", a.shape, b.shape))
	}
}
