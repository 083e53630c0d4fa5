// Package matrix provides dense, type-generic linear algebra primitives.
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix over any numeric Scalar with bounds-checked
//     access, deep clones and a fixed-width diagnostic rendering.
//   - Universal kernels (Mul, Add, Sub, Scale, Hadamard, Transpose, MatVec)
//     that accept any Matrix[T] implementation and fast-path *Dense[T].
//   - ReducedRowEchelonForm, a full Gauss–Jordan reduction with first-nonzero
//     pivot search, used by the linalg solver.
//
// Dense matrices are best for small or dense problems where O(r·c) memory and
// the naive O(n³) multiplication are acceptable.
//
// See the examples in this package and linalg for usage patterns.
package matrix
