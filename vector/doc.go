// Package vector provides a slice-backed numeric vector with the operations
// linear algebra actually starts with: dot product, Euclidean norm, and an
// orientation-aware transpose.
//
// The vector package provides:
//
//   - Vector[T], a fixed-size ordered sequence of Scalar values with
//     bounds-checked access and deep clones.
//   - Dot, Norm, Add, Sub and ScaleBy over same-size vectors.
//   - An orientation flag (column by default) flipped by Transpose, honored
//     when bridging into matrix form via AsDense.
//
// Vectors interoperate with the matrix package through AsDense: a column
// vector materializes as n×1, a transposed vector as 1×n, so matrix
// multiplication semantics follow the orientation.
package vector
