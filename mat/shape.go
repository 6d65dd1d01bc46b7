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

import "fmt"

// Dim describes one matrix axis: either fixed to a known extent or left
// dynamic and resolved at construction. All shape arithmetic goes through
// Resolve, so downstream kernels only ever see runtime integers.
type Dim struct {
	n     int
	fixed bool
}

// Dynamic is the dynamic axis marker.
var Dynamic = Dim{}

// Fixed returns an axis fixed to extent n. Panics if n is negative.
func Fixed(n int) Dim {
	if n < 0 {
		panic("mat: fixed dimension must be non-negative")
	}
	return Dim{n: n, fixed: true}
}

// IsFixed reports whether the axis extent is fixed.
func (d Dim) IsFixed() bool {
	return d.fixed
}

// Resolve validates a runtime extent against this axis and returns it.
// For a fixed axis the runtime extent must equal the fixed extent; a
// dynamic axis accepts any non-negative extent.
func (d Dim) Resolve(n int) int {
	if n < 0 {
		panic("mat: dimension extent must be non-negative")
	}
	if d.fixed && n != d.n {
		panic(fmt.Sprintf("mat: extent %d does not match fixed dimension %d", n, d.n))
	}
	return n
}

// Shape describes a matrix's row and column extents.
// Instances hold resolved runtime extents consistent with any fixed axis.
type Shape struct {
	rdim, cdim Dim
	rows, cols int
}

// MakeShape resolves runtime extents (rows, cols) against the given axis
// descriptors. Panics if an extent contradicts a fixed axis.
func MakeShape(rdim, cdim Dim, rows, cols int) Shape {
	return Shape{
		rdim: rdim,
		cdim: cdim,
		rows: rdim.Resolve(rows),
		cols: cdim.Resolve(cols),
	}
}

// ShapeOf returns a fully dynamic shape with the given extents.
func ShapeOf(rows, cols int) Shape {
	return MakeShape(Dynamic, Dynamic, rows, cols)
}

// Rows returns the row extent.
func (s Shape) Rows() int { return s.rows }

// Cols returns the column extent.
func (s Shape) Cols() int { return s.cols }

// Len returns the total element count rows*cols.
func (s Shape) Len() int { return s.rows * s.cols }

// Equal reports whether two shapes have the same extents.
// Axis descriptors do not participate: a Fixed(8) row axis and a dynamic
// row axis resolved to 8 describe the same effective shape.
func (s Shape) Equal(o Shape) bool {
	return s.rows == o.rows && s.cols == o.cols
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.rows, s.cols)
}
