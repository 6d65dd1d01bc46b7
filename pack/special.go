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

import "math"

// Named IEEE-754 special values. These are only meaningful for
// floating-point lane types, hence the Floats constraint.

// Inf returns a pack with every lane set to +Inf.
func Inf[T Floats]() Pack[T] {
	return Broadcast(T(math.Inf(1)))
}

// NegInf returns a pack with every lane set to -Inf.
func NegInf[T Floats]() Pack[T] {
	return Broadcast(T(math.Inf(-1)))
}

// NaN returns a pack with every lane set to a quiet NaN.
func NaN[T Floats]() Pack[T] {
	return Broadcast(T(math.NaN()))
}
