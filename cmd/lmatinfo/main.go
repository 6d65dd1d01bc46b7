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

// Command lmatinfo reports the SIMD tier lightmat selected for this
// machine and the resulting pack widths per element type.
//
// Usage:
//
//	lmatinfo
//	lmatinfo -v          # also prints the access plan chosen per layout
//
// Set LIGHTMAT_NO_SIMD=1 to force the scalar tier.
package main

import (
	"flag"
	"fmt"

	"github.com/go-lightmat/lightmat/mat"
	"github.com/go-lightmat/lightmat/pack"
)

var verbose = flag.Bool("v", false, "print access plans for sample layouts")

func main() {
	flag.Parse()

	fmt.Printf("tier:     %s\n", pack.CurrentName())
	fmt.Printf("register: %d bytes\n", pack.CurrentWidth())
	fmt.Println("pack widths:")
	fmt.Printf("  float32: %d lanes (native: %v)\n", pack.Width[float32](), pack.HasNative[float32]())
	fmt.Printf("  float64: %d lanes (native: %v)\n", pack.Width[float64](), pack.HasNative[float64]())
	fmt.Printf("  int32:   %d lanes (native: %v)\n", pack.Width[int32](), pack.HasNative[int32]())
	fmt.Printf("  int64:   %d lanes (native: %v)\n", pack.Width[int64](), pack.HasNative[int64]())

	if !*verbose {
		return
	}

	dense := mat.NewBlock[float32](8, 6)
	strided := mat.BlockOf(make([]float32, 12*6), 8, 6, 12)

	fmt.Println("access plans:")
	p := mat.PlanFor(true, dense)
	fmt.Printf("  dense 8x6:            %s/%s\n", p.Access, p.Order)
	p = mat.PlanFor(true, dense, strided)
	fmt.Printf("  dense + 12-ld view:   %s/%s\n", p.Access, p.Order)
	p = mat.PlanFor(false, dense)
	fmt.Printf("  non-vectorizable op:  %s/%s\n", p.Access, p.Order)
}
