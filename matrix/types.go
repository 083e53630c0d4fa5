// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types shared across the package.
// This file intentionally contains ONLY the scalar constraint and the public
// Matrix interface. Errors live in errors.go and validators in validators.go
// per the package conventions.
package matrix

// Scalar is the set of element types a matrix may hold: any numeric type
// with +, -, *, / and == defined. Integer instantiations keep exact
// arithmetic for construction and multiplication; row reduction uses T's own
// division, so integer reduction truncates (see ReducedRowEchelonForm).
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Matrix represents a two-dimensional mutable array of Scalar values.
// Each method enforces bounds checking and returns clear errors on misuse.
// Users can implement this interface to provide custom storage layouts.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T Scalar] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix[T]
}
