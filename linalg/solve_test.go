// Package linalg_test contains unit tests for the linear-system solver and
// the Apply facade.
package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vectra/linalg"
	"github.com/katalvlaran/vectra/matrix"
	"github.com/katalvlaran/vectra/vector"
)

// mustDense builds a Dense from rows, failing the test on error.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows) // rectangular input only in tests
	require.NoError(t, err)                 // construction must succeed
	return m
}

// TestSolveKnownSystem solves 3x+2y=7, x+y=3 and expects (1, 2).
func TestSolveKnownSystem(t *testing.T) {
	a := mustDense(t, [][]float64{{3, 2}, {1, 1}})
	b, err := vector.FromSlice([]float64{7, 3})
	require.NoError(t, err) // valid right-hand side

	x, err := linalg.Solve[float64](a, b) // Gauss–Jordan over [A|b]
	require.NoError(t, err)               // invertible system
	requireVecInDelta(t, []float64{1, 2}, x)
	require.True(t, x.IsColumn()) // solutions come back column-oriented
}

// TestSolveDoesNotMutateInputs verifies the reduction runs on a private
// augmented copy.
func TestSolveDoesNotMutateInputs(t *testing.T) {
	a := mustDense(t, [][]float64{{3, 2}, {1, 1}})
	b, err := vector.FromSlice([]float64{7, 3})
	require.NoError(t, err)

	_, err = linalg.Solve[float64](a, b) // solve
	require.NoError(t, err)              // invertible system

	v, err := a.At(0, 0) // spot-check a coefficient
	require.NoError(t, err)
	require.Equal(t, 3.0, v) // A untouched

	rhs, err := b.At(0) // spot-check the right-hand side
	require.NoError(t, err)
	require.Equal(t, 7.0, rhs) // b untouched
}

// TestSolveRoundTrip checks Solve(A, A·x) recovers x.
func TestSolveRoundTrip(t *testing.T) {
	a := mustDense(t, [][]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	})
	x, err := vector.FromSlice([]float64{1, -2, 3}) // chosen solution
	require.NoError(t, err)

	b, err := linalg.Apply[float64](a, x) // b = A·x
	require.NoError(t, err)

	got, err := linalg.Solve[float64](a, b) // recover x from b
	require.NoError(t, err)
	requireVecInDelta(t, []float64{1, -2, 3}, got)
}

// TestSolveSingular verifies a rank-deficient coefficient matrix is reported,
// not silently solved.
func TestSolveSingular(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {2, 4}}) // rows are dependent
	b, err := vector.FromSlice([]float64{3, 6})
	require.NoError(t, err)

	_, err = linalg.Solve[float64](a, b)         // no unique solution exists
	require.ErrorIs(t, err, matrix.ErrSingular)  // expect ErrSingular
}

// TestSolveShapeErrors covers the non-square and size-mismatch guards.
func TestSolveShapeErrors(t *testing.T) {
	rect := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3, not square
	b, err := vector.FromSlice([]float64{1, 2})
	require.NoError(t, err)

	_, err = linalg.Solve[float64](rect, b)              // non-square A
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	square := mustDense(t, [][]float64{{1, 0}, {0, 1}})
	long, err := vector.FromSlice([]float64{1, 2, 3}) // size 3 against 2x2
	require.NoError(t, err)

	_, err = linalg.Solve[float64](square, long)         // b.Size() != A.Rows()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestSolveNilOperands verifies the nil guards fire first.
func TestSolveNilOperands(t *testing.T) {
	a := mustDense(t, [][]float64{{1}})
	b, err := vector.FromSlice([]float64{1})
	require.NoError(t, err)

	_, err = linalg.Solve[float64](nil, b)       // nil coefficient matrix
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix

	_, err = linalg.Solve[float64](a, nil)       // nil right-hand side
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix
}

// TestApplyKnownTransform multiplies a fixed 2x2 matrix by a vector.
func TestApplyKnownTransform(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	v, err := vector.FromSlice([]float64{1, 1})
	require.NoError(t, err)

	out, err := linalg.Apply[float64](m, v) // row sums
	require.NoError(t, err)
	requireVecInDelta(t, []float64{3, 7}, out)
}

// TestApplyErrors covers the nil and shape guards of the facade.
func TestApplyErrors(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	_, err := linalg.Apply[float64](m, nil)      // nil vector
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix

	long, err := vector.FromSlice([]float64{1, 2, 3})
	require.NoError(t, err)

	_, err = linalg.Apply[float64](m, long)              // m.Cols() != v.Size()
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // expect ErrDimensionMismatch

	_, err = linalg.Apply[float64](nil, long)    // nil matrix via MatVec
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix
}
