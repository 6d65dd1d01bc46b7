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

// Access selects between per-element and vector-register execution.
type Access int

const (
	// AccessScalar executes one element at a time.
	AccessScalar Access = iota

	// AccessSIMD executes width-sized chunks through pack operations,
	// with a partial chunk for the tail.
	AccessSIMD
)

func (a Access) String() string {
	if a == AccessSIMD {
		return "simd"
	}
	return "scalar"
}

// Order selects the traversal over a matrix expression.
type Order int

const (
	// OrderLinear scans one contiguous run of length rows*cols.
	OrderLinear Order = iota

	// OrderColwise visits columns in increasing index order, scanning
	// each column's contiguous run top to bottom.
	OrderColwise
)

func (o Order) String() string {
	if o == OrderColwise {
		return "colwise"
	}
	return "linear"
}

// Plan is the access tag produced by the policy selector: the chosen
// execution mode crossed with the chosen traversal. One plan parameterizes
// a whole evaluation or fold call; all operands share it.
type Plan struct {
	Access Access
	Order  Order
}

// PlanFor chooses the access plan for an operation over the given
// operands. First matching rule wins:
//
//  1. T has no native pack at the active tier -> scalar.
//  2. The operator declares itself non-vectorizable -> scalar.
//  3. Otherwise -> simd.
//
// Independently, the traversal is linear iff every operand exposes one
// contiguous run spanning the whole matrix; otherwise the evaluation
// sweeps column by column.
func PlanFor[T pack.Lanes](vectorizable bool, operands ...Block[T]) Plan {
	p := Plan{Access: AccessSIMD, Order: OrderLinear}
	if !pack.HasNative[T]() || !vectorizable {
		p.Access = AccessScalar
	}
	for _, b := range operands {
		if !b.IsContiguous() {
			p.Order = OrderColwise
			break
		}
	}
	return p
}
