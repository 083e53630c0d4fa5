// SPDX-License-Identifier: MIT
// Package linalg: linear-system solver over the augmented-matrix route.

package linalg

import (
	"fmt"

	"github.com/katalvlaran/vectra/matrix"
	"github.com/katalvlaran/vectra/vector"
)

// Operation name constants for unified error wrapping.
const (
	opSolve = "Solve"
	opApply = "Apply"
)

// linalgErrorf wraps err with an operation tag, preserving the cause via %w.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solve solves A·x = b by Gauss–Jordan elimination and returns x.
//
// Implementation:
//   - Stage 1: validate A non-nil and square, b non-nil, A.Rows() == b.Size().
//   - Stage 2: assemble the augmented matrix [A|b] (width cols+1), reduce it
//     via matrix.ReducedRowEchelonForm, verify the left block reduced to the
//     identity, and read the solution from the last column.
//
// Behavior highlights:
//   - A and b are never mutated; the reduction runs on the augmented copy.
//   - Singularity is detected, not silently ignored: a coefficient matrix
//     whose reduced left block is not exactly the identity yields ErrSingular
//     instead of a garbage solution. The identity check is exact — pivot
//     normalization writes exact 1s and elimination writes exact 0s into
//     pivot columns, so no tolerance is needed.
//
// Inputs:
//   - a: square coefficient matrix (n×n).
//   - b: right-hand-side vector of size n.
//
// Returns:
//   - *vector.Vector[T]: the unique solution x (column-oriented).
//
// Errors:
//   - matrix.ErrNilMatrix        (nil A or nil b).
//   - matrix.ErrInvalidDimensions (A not square, or A.Rows() != b.Size()).
//   - matrix.ErrSingular          (A not invertible).
//
// Determinism:
//   - Inherits the fixed sweep order of ReducedRowEchelonForm.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the augmented working copy.
//
// AI-Hints:
//   - For repeated solves against the same A, reduce [A|b₁ b₂ …] in one call
//     at a higher level instead of invoking Solve per right-hand side.
func Solve[T matrix.Scalar](a matrix.Matrix[T], b *vector.Vector[T]) (*vector.Vector[T], error) {
	// Validate coefficient matrix presence
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, linalgErrorf(opSolve, err)
	}
	// Validate right-hand side presence
	if b == nil {
		return nil, linalgErrorf(opSolve, matrix.ErrNilMatrix)
	}
	// Validate system shape: square A with matching b
	n := a.Rows()
	if a.Cols() != n || b.Size() != n {
		return nil, linalgErrorf(opSolve, matrix.ErrInvalidDimensions)
	}

	// Assemble the augmented matrix [A|b] with width n+1.
	aug, err := matrix.NewDense[T](n, n+1)
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}
	var (
		i, j int
		v    T
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, linalgErrorf(opSolve, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			_ = aug.Set(i, j, v) // bounds-safe: aug is n×(n+1)
		}
		v, err = b.At(i)
		if err != nil {
			return nil, linalgErrorf(opSolve, fmt.Errorf("b.At(%d): %w", i, err))
		}
		_ = aug.Set(i, n, v) // right-hand side into the last column
	}

	// Reduce the augmented system to reduced row-echelon form.
	reduced, err := matrix.ReducedRowEchelonForm[T](aug)
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}

	// Singularity check: the left n×n block must be exactly the identity.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = reduced.At(i, j)
			if err != nil {
				return nil, linalgErrorf(opSolve, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if i == j && v != 1 {
				return nil, linalgErrorf(opSolve, matrix.ErrSingular)
			}
			if i != j && v != 0 {
				return nil, linalgErrorf(opSolve, matrix.ErrSingular)
			}
		}
	}

	// Extract the solution from the last column.
	x, err := vector.New[T](n)
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}
	for i = 0; i < n; i++ {
		v, err = reduced.At(i, n)
		if err != nil {
			return nil, linalgErrorf(opSolve, fmt.Errorf("At(%d,%d): %w", i, n, err))
		}
		_ = x.Set(i, v) // bounds-safe: x has size n
	}

	return x, nil
}

// Apply multiplies a transformation matrix by a column vector and returns the
// transformed vector: out = m·v. A thin facade over matrix.MatVec for callers
// working with vector values (rotations, projections).
//
// Errors:
//   - matrix.ErrNilMatrix (nil m or nil v).
//   - matrix.ErrDimensionMismatch (m.Cols() != v.Size()).
//
// Complexity: Time O(r*c), Space O(r).
func Apply[T matrix.Scalar](m matrix.Matrix[T], v *vector.Vector[T]) (*vector.Vector[T], error) {
	// Validate vector presence; MatVec validates m and the length contract.
	if v == nil {
		return nil, linalgErrorf(opApply, matrix.ErrNilMatrix)
	}

	// Flatten the vector into a slice for the kernel.
	n := v.Size()
	x := make([]T, n)
	var err error
	for i := 0; i < n; i++ {
		x[i], err = v.At(i)
		if err != nil {
			return nil, linalgErrorf(opApply, fmt.Errorf("v.At(%d): %w", i, err))
		}
	}

	// Delegate to the canonical kernel.
	y, err := matrix.MatVec(m, x)
	if err != nil {
		return nil, linalgErrorf(opApply, err)
	}

	// Wrap the result as a column vector.
	out, err := vector.FromSlice(y)
	if err != nil {
		return nil, linalgErrorf(opApply, err)
	}

	return out, nil
}
