// SPDX-License-Identifier: MIT
// Package vector: arithmetic kernels over same-size vectors.
// All kernels validate fail-fast, allocate fresh results and never mutate
// operands, mirroring the matrix package's kernel discipline.

package vector

import (
	"math"

	"github.com/katalvlaran/vectra/matrix"
)

// Dot computes the inner product Σ v[i]·other[i].
//
// Implementation:
//   - Stage 1: validate other non-nil and sizes equal.
//   - Stage 2: accumulate elementwise products in index order 0..n-1.
//
// Behavior highlights:
//   - Commutative and bilinear; orientation flags are ignored — the inner
//     product is defined on the component sequences.
//
// Errors:
//   - matrix.ErrNilMatrix (nil operand), matrix.ErrDimensionMismatch (sizes differ).
//
// Determinism:
//   - Fixed accumulation order; exact for integer instantiations.
//
// Complexity:
//   - Time O(n), Space O(1).
func (v *Vector[T]) Dot(other *Vector[T]) (T, error) {
	var zero T
	// Validate operand presence
	if other == nil {
		return zero, vectorErrorf("Dot", matrix.ErrNilMatrix)
	}
	// Validate matching sizes
	if len(v.data) != len(other.data) {
		return zero, vectorErrorf("Dot", matrix.ErrDimensionMismatch)
	}

	// Accumulate in fixed index order
	sum := zero
	for i := 0; i < len(v.data); i++ {
		sum += v.data[i] * other.data[i]
	}

	return sum, nil
}

// Norm returns the Euclidean norm ‖v‖ = √(v·v).
// The accumulation runs in float64 for every scalar type, so integer vectors
// get the true (non-truncated) length. Always ≥ 0, and exactly 0 iff every
// component is 0.
// Complexity: Time O(n), Space O(1).
func (v *Vector[T]) Norm() float64 {
	var sum float64
	for i := 0; i < len(v.data); i++ {
		f := float64(v.data[i]) // widen once per component
		sum += f * f
	}

	return math.Sqrt(sum)
}

// Add returns the elementwise sum v + other as a fresh vector with v's
// orientation.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: Time O(n), Space O(n).
func (v *Vector[T]) Add(other *Vector[T]) (*Vector[T], error) {
	// Validate operand presence and size
	if other == nil {
		return nil, vectorErrorf("Add", matrix.ErrNilMatrix)
	}
	if len(v.data) != len(other.data) {
		return nil, vectorErrorf("Add", matrix.ErrDimensionMismatch)
	}

	// Allocate and fill the result
	out := &Vector[T]{data: make([]T, len(v.data)), column: v.column}
	for i := 0; i < len(v.data); i++ {
		out.data[i] = v.data[i] + other.data[i]
	}

	return out, nil
}

// Sub returns the elementwise difference v - other as a fresh vector with
// v's orientation.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: Time O(n), Space O(n).
func (v *Vector[T]) Sub(other *Vector[T]) (*Vector[T], error) {
	// Validate operand presence and size
	if other == nil {
		return nil, vectorErrorf("Sub", matrix.ErrNilMatrix)
	}
	if len(v.data) != len(other.data) {
		return nil, vectorErrorf("Sub", matrix.ErrDimensionMismatch)
	}

	// Allocate and fill the result
	out := &Vector[T]{data: make([]T, len(v.data)), column: v.column}
	for i := 0; i < len(v.data); i++ {
		out.data[i] = v.data[i] - other.data[i]
	}

	return out, nil
}

// ScaleBy returns alpha·v as a fresh vector with v's orientation.
// Complexity: Time O(n), Space O(n).
func (v *Vector[T]) ScaleBy(alpha T) *Vector[T] {
	out := &Vector[T]{data: make([]T, len(v.data)), column: v.column}
	for i := 0; i < len(v.data); i++ {
		out.data[i] = v.data[i] * alpha
	}

	return out
}
