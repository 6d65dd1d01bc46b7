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

package pack

// This file provides the lane-wise arithmetic contract of Pack.
// All operations follow IEEE-754 semantics for floating-point lanes,
// including NaN propagation equal to the scalar behavior.

// Add performs lane-wise addition.
func Add[T Lanes](a, b Pack[T]) Pack[T] {
	n := len(a.lanes)
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.lanes[i] + b.lanes[i]
	}
	return Pack[T]{lanes: result}
}

// Sub performs lane-wise subtraction.
func Sub[T Lanes](a, b Pack[T]) Pack[T] {
	n := len(a.lanes)
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.lanes[i] - b.lanes[i]
	}
	return Pack[T]{lanes: result}
}

// Mul performs lane-wise multiplication.
func Mul[T Lanes](a, b Pack[T]) Pack[T] {
	n := len(a.lanes)
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.lanes[i] * b.lanes[i]
	}
	return Pack[T]{lanes: result}
}

// Div performs lane-wise division.
func Div[T Floats](a, b Pack[T]) Pack[T] {
	n := len(a.lanes)
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.lanes[i] / b.lanes[i]
	}
	return Pack[T]{lanes: result}
}

// Neg negates every lane.
func Neg[T Lanes](v Pack[T]) Pack[T] {
	result := make([]T, len(v.lanes))
	for i, x := range v.lanes {
		result[i] = -x
	}
	return Pack[T]{lanes: result}
}

// Abs computes the lane-wise absolute value.
func Abs[T Lanes](v Pack[T]) Pack[T] {
	result := make([]T, len(v.lanes))
	for i, x := range v.lanes {
		if x < 0 {
			result[i] = -x
		} else {
			result[i] = x
		}
	}
	return Pack[T]{lanes: result}
}

// Max returns the lane-wise maximum: a > b ? a : b.
func Max[T Lanes](a, b Pack[T]) Pack[T] {
	n := len(a.lanes)
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if a.lanes[i] > b.lanes[i] {
			result[i] = a.lanes[i]
		} else {
			result[i] = b.lanes[i]
		}
	}
	return Pack[T]{lanes: result}
}

// Min returns the lane-wise minimum: a < b ? a : b.
func Min[T Lanes](a, b Pack[T]) Pack[T] {
	n := len(a.lanes)
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if a.lanes[i] < b.lanes[i] {
			result[i] = a.lanes[i]
		} else {
			result[i] = b.lanes[i]
		}
	}
	return Pack[T]{lanes: result}
}
