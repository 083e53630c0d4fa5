// SPDX-License-Identifier: MIT
// Package vector: the Vector type, constructors and accessors.
// Vectors reuse the matrix package's sentinel errors so callers match a single
// error taxonomy across the library (errors.Is against matrix.Err*).

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vectra/matrix"
)

// vectorErrorf wraps an underlying error with Vector method context.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// Vector is a dense, fixed-size sequence of Scalar values.
// Storage is a flat slice owned exclusively by the instance; column reports
// the orientation used when the vector is viewed as a matrix. Vectors are
// always created column-oriented, matching standard linear-algebra notation.
type Vector[T matrix.Scalar] struct {
	data   []T  // backing storage, length >= 1
	column bool // true: n×1 view; false: 1×n view (after Transpose)
}

// New creates a column vector of the given size initialized to the additive
// identity of T.
// Stage 1 (Validate): ensure size > 0.
// Stage 2 (Prepare): allocate backing slice.
// Errors: matrix.ErrInvalidDimensions when size <= 0.
// Complexity: O(size) time and memory.
func New[T matrix.Scalar](size int) (*Vector[T], error) {
	// Validate dimension
	if size <= 0 {
		return nil, vectorErrorf("New", matrix.ErrInvalidDimensions)
	}

	// Return zero-initialized column vector
	return &Vector[T]{data: make([]T, size), column: true}, nil
}

// FromSlice creates a column vector holding a copy of vals.
// The input slice is never aliased; mutating it afterwards does not affect
// the vector. Errors: matrix.ErrInvalidDimensions for an empty input.
// Complexity: O(len(vals)).
func FromSlice[T matrix.Scalar](vals []T) (*Vector[T], error) {
	// Validate dimension
	if len(vals) == 0 {
		return nil, vectorErrorf("FromSlice", matrix.ErrInvalidDimensions)
	}
	// Copy into fresh storage to guarantee exclusive ownership.
	data := make([]T, len(vals))
	copy(data, vals)

	return &Vector[T]{data: data, column: true}, nil
}

// Size returns the number of components.
// Complexity: O(1).
func (v *Vector[T]) Size() int {
	return len(v.data) // component count
}

// IsColumn reports the current orientation: true for n×1, false for 1×n.
// Complexity: O(1).
func (v *Vector[T]) IsColumn() bool {
	return v.column
}

// At retrieves component i.
// Errors: matrix.ErrOutOfRange when i < 0 or i >= Size().
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	// Validate index
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, vectorErrorf(fmt.Sprintf("At(%d)", i), matrix.ErrOutOfRange)
	}

	// Return stored value
	return v.data[i], nil
}

// Set assigns value x to component i.
// Errors: matrix.ErrOutOfRange when i < 0 or i >= Size().
// Complexity: O(1).
func (v *Vector[T]) Set(i int, x T) error {
	// Validate index
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(fmt.Sprintf("Set(%d)", i), matrix.ErrOutOfRange)
	}
	// Assign value
	v.data[i] = x

	return nil
}

// Clone returns a deep copy of the vector, orientation included.
// Complexity: O(n) time and memory.
func (v *Vector[T]) Clone() *Vector[T] {
	// Allocate and copy backing storage
	data := make([]T, len(v.data))
	copy(data, v.data)

	return &Vector[T]{data: data, column: v.column}
}

// Transpose returns a copy of v with the orientation flag flipped.
// The element order is preserved; only the matrix-view shape changes
// (see AsDense). The receiver is never mutated.
// Complexity: O(n).
func (v *Vector[T]) Transpose() *Vector[T] {
	out := v.Clone()        // copy elements into a fresh vector
	out.column = !v.column  // flip row/column orientation

	return out
}

// AsDense materializes the vector as a Dense matrix honoring orientation:
// a column vector becomes n×1, a transposed (row) vector becomes 1×n.
// The returned matrix owns fresh storage.
// Complexity: O(n).
func (v *Vector[T]) AsDense() *matrix.Dense[T] {
	n := len(v.data)
	var d *matrix.Dense[T]
	if v.column {
		d, _ = matrix.NewDense[T](n, 1) // n >= 1 by construction, error impossible
		for i := 0; i < n; i++ {
			_ = d.Set(i, 0, v.data[i]) // bounds-safe after construction
		}
	} else {
		d, _ = matrix.NewDense[T](1, n)
		for i := 0; i < n; i++ {
			_ = d.Set(0, i, v.data[i])
		}
	}

	return d
}

// String implements fmt.Stringer with the library's diagnostic rendering:
// column vectors print one fixed-width component per line, row vectors print
// a single line. Purely for inspection; not an algorithmic contract.
// Complexity: O(n).
func (v *Vector[T]) String() string {
	var sb strings.Builder
	for i := 0; i < len(v.data); i++ {
		fmt.Fprintf(&sb, "%8.4f ", float64(v.data[i])) // same field format as matrix rows
		if v.column {
			sb.WriteByte('\n') // one component per line in column orientation
		}
	}
	if !v.column {
		sb.WriteByte('\n') // single terminating newline for row orientation
	}

	return sb.String()
}
