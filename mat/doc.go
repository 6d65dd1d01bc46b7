// Package mat implements dense-matrix elementwise evaluation and
// fold/reduction kernels over column-major block views, dispatched to
// vector-register code paths when the element type, alignment and layout
// permit.
//
// The package reconciles three kinds of facts into one traversal per
// call: optionally fixed compile-time extents (Dim, Shape), runtime
// layout facts (contiguity, leading dimension, declared alignment of a
// Block), and the hardware pack width of the active SIMD tier (package
// pack). The access policy selector (PlanFor) folds them into an access
// tag that parameterizes both the elementwise kernels and the fold
// engine.
//
// All operations are single-threaded and run to completion on the
// calling thread; parallelism is instruction-level only. For a fixed
// access tag and fixed operand values results are bit-reproducible, but
// the scalar and SIMD paths may differ in rounding for non-associative
// combiners (sum, mean) because SIMD batches lanes before combining
// them. Compare across paths with a tolerance.
package mat
