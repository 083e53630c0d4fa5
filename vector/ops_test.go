// Package vector_test contains unit tests for the vector arithmetic kernels
// (Dot, Norm, Add, Sub, ScaleBy).
package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vectra/matrix"
	"github.com/katalvlaran/vectra/vector"
)

// TestDotKnownProduct verifies the textbook inner product exactly.
func TestDotKnownProduct(t *testing.T) {
	a := mustVec(t, []float64{1, 2, 3})
	b := mustVec(t, []float64{4, 5, 6})

	d, err := a.Dot(b)            // 1·4 + 2·5 + 3·6
	require.NoError(t, err)       // matching sizes
	require.Equal(t, 32.0, d)     // exact sum of integer-valued products

	r, err := b.Dot(a)        // reverse the operands
	require.NoError(t, err)   // matching sizes
	require.Equal(t, d, r)    // commutative bit for bit here
}

// TestDotOrientationIgnored confirms the inner product reads component
// sequences, not matrix shapes.
func TestDotOrientationIgnored(t *testing.T) {
	a := mustVec(t, []float64{1, 2})
	b := mustVec(t, []float64{3, 4})

	d1, err := a.Dot(b) // column · column
	require.NoError(t, err)

	d2, err := a.Transpose().Dot(b) // row · column
	require.NoError(t, err)
	require.Equal(t, d1, d2) // orientation flag does not change the value
}

// TestDotErrors verifies the nil and size guards.
func TestDotErrors(t *testing.T) {
	a := mustVec(t, []float64{1, 2})

	_, err := a.Dot(nil)                         // nil operand
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix

	short := mustVec(t, []float64{1})
	_, err = a.Dot(short)                                // sizes differ
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // expect ErrDimensionMismatch
}

// TestNormKnownLengths checks exact lengths on Pythagorean inputs.
func TestNormKnownLengths(t *testing.T) {
	v := mustVec(t, []float64{1, 2, 2})
	require.Equal(t, 3.0, v.Norm()) // 1+4+4 = 9, √9 exact in IEEE

	zero, err := vector.New[float64](3) // all-zero vector
	require.NoError(t, err)
	require.Equal(t, 0.0, zero.Norm()) // zero norm iff zero vector

	iv, err := vector.FromSlice([]int{3, 4}) // integer vector
	require.NoError(t, err)
	require.Equal(t, 5.0, iv.Norm()) // accumulation widens to float64
}

// TestNormSquaredEqualsSelfDot relates Norm to the inner product.
func TestNormSquaredEqualsSelfDot(t *testing.T) {
	v := mustVec(t, []float64{0.5, -1.25, 3})

	d, err := v.Dot(v) // v·v
	require.NoError(t, err)

	n := v.Norm()
	require.InDelta(t, d, n*n, 1e-12) // ‖v‖² == v·v within rounding
}

// TestAddSubScale verifies the elementwise kernels, operand safety and the
// shape guard.
func TestAddSubScale(t *testing.T) {
	a := mustVec(t, []float64{1, 2})
	b := mustVec(t, []float64{10, 20})

	sum, err := a.Add(b) // elementwise sum
	require.NoError(t, err)
	s0, _ := sum.At(0)
	s1, _ := sum.At(1)
	require.Equal(t, 11.0, s0) // 1+10
	require.Equal(t, 22.0, s1) // 2+20

	diff, err := b.Sub(a) // elementwise difference
	require.NoError(t, err)
	d0, _ := diff.At(0)
	d1, _ := diff.At(1)
	require.Equal(t, 9.0, d0)  // 10-1
	require.Equal(t, 18.0, d1) // 20-2

	scaled := a.ScaleBy(-3) // alpha = -3
	c0, _ := scaled.At(0)
	c1, _ := scaled.At(1)
	require.Equal(t, -3.0, c0)
	require.Equal(t, -6.0, c1)

	a0, _ := a.At(0)
	require.Equal(t, 1.0, a0) // operands never mutate

	short := mustVec(t, []float64{1})
	_, err = a.Add(short)                                // sizes differ
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // expect ErrDimensionMismatch

	_, err = a.Sub(nil)                          // nil operand
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix
}
