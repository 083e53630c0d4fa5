// Package vector_test contains unit tests for Vector construction,
// accessors, orientation and matrix materialization.
package vector_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vectra/matrix"
	"github.com/katalvlaran/vectra/vector"
)

// mustVec builds a vector from vals, failing the test on error.
func mustVec(t *testing.T, vals []float64) *vector.Vector[float64] {
	t.Helper()
	v, err := vector.FromSlice(vals) // non-empty input only in tests
	require.NoError(t, err)          // construction must succeed
	return v
}

// TestNewInvalidSize ensures New rejects non-positive sizes.
func TestNewInvalidSize(t *testing.T) {
	_, err := vector.New[float64](0)                     // zero size is invalid
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = vector.New[float64](-2)                     // negative size is invalid
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewZeroInitializedColumn verifies size, orientation and zero entries.
func TestNewZeroInitializedColumn(t *testing.T) {
	v, err := vector.New[float64](4) // create a 4-vector
	require.NoError(t, err)          // expect success

	require.Equal(t, 4, v.Size()) // size follows the request
	require.True(t, v.IsColumn()) // vectors start column-oriented

	for i := 0; i < v.Size(); i++ {
		x, atErr := v.At(i)
		require.NoError(t, atErr) // valid index
		require.Zero(t, x)        // freshly constructed components are zero
	}
}

// TestFromSliceCopiesInput verifies values and the no-aliasing guarantee.
func TestFromSliceCopiesInput(t *testing.T) {
	src := []float64{1, 2, 3}
	v := mustVec(t, src)

	src[0] = 99 // mutate the source after construction

	x, err := v.At(0)        // re-read the first component
	require.NoError(t, err)  // valid index
	require.Equal(t, 1.0, x) // the vector must not alias caller storage

	_, err = vector.FromSlice[float64](nil)              // empty input is rejected
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestAtSetBounds ensures At and Set guard their index, boundary included.
func TestAtSetBounds(t *testing.T) {
	v := mustVec(t, []float64{1, 2, 3})

	_, err := v.At(-1)                            // negative index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = v.At(3)                              // index == Size() is out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = v.Set(3, 1.0)                           // Set with index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	require.NoError(t, v.Set(2, 7.5)) // boundary index Size()-1 is valid
	x, err := v.At(2)                 // read the boundary component back
	require.NoError(t, err)           // expect success
	require.Equal(t, 7.5, x)          // expect the stored value
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	v := mustVec(t, []float64{1, 2})

	clone := v.Clone()                // deep copy
	require.NoError(t, clone.Set(0, 9)) // mutate the clone only

	x, err := v.At(0)        // re-read the original
	require.NoError(t, err)  // valid index
	require.Equal(t, 1.0, x) // original storage untouched
}

// TestTransposeFlipsOrientation verifies the flag flip and non-mutation of
// the receiver.
func TestTransposeFlipsOrientation(t *testing.T) {
	v := mustVec(t, []float64{1, 2, 3})
	require.True(t, v.IsColumn()) // starts as a column

	row := v.Transpose()            // row view
	require.False(t, row.IsColumn()) // orientation flipped on the copy
	require.True(t, v.IsColumn())    // receiver untouched

	back := row.Transpose()          // double transpose restores orientation
	require.True(t, back.IsColumn()) // column again

	for i := 0; i < v.Size(); i++ {
		ov, _ := v.At(i)
		rv, _ := row.At(i)
		require.Equal(t, ov, rv) // component order is orientation-independent
	}
}

// TestAsDenseShapes verifies the n×1 / 1×n materialization.
func TestAsDenseShapes(t *testing.T) {
	v := mustVec(t, []float64{1, 2, 3})

	col := v.AsDense()            // column vector view
	require.Equal(t, 3, col.Rows()) // n×1 shape
	require.Equal(t, 1, col.Cols())
	x, err := col.At(2, 0) // spot-check the last entry
	require.NoError(t, err)
	require.Equal(t, 3.0, x)

	row := v.Transpose().AsDense() // row vector view
	require.Equal(t, 1, row.Rows()) // 1×n shape
	require.Equal(t, 3, row.Cols())
	x, err = row.At(0, 2) // same entry in the flipped shape
	require.NoError(t, err)
	require.Equal(t, 3.0, x)
}

// TestStringOrientation checks the diagnostic rendering in both orientations.
func TestStringOrientation(t *testing.T) {
	v := mustVec(t, []float64{1, -2.5})

	wantCol := "  1.0000 \n -2.5000 \n" // one component per line
	if diff := cmp.Diff(wantCol, v.String()); diff != "" {
		t.Fatalf("column rendering mismatch (-want +got):\n%s", diff)
	}

	wantRow := "  1.0000  -2.5000 \n" // single line for the row view
	if diff := cmp.Diff(wantRow, v.Transpose().String()); diff != "" {
		t.Fatalf("row rendering mismatch (-want +got):\n%s", diff)
	}
}

// TestVectorIntInstantiation exercises the generic surface with an integer scalar.
func TestVectorIntInstantiation(t *testing.T) {
	v, err := vector.FromSlice([]int{3, 4}) // integer vectors are first-class
	require.NoError(t, err)                 // expect success

	x, err := v.At(1)       // exact integer read
	require.NoError(t, err) // valid index
	require.Equal(t, 4, x)  // no widening, no rounding
}
