// Package matrix provides core linear algebra primitives for array-based computations.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of Scalar values.
// r is rows, c is columns, and data holds r*c elements in row-major order
// (data[i*c+j] is the entry at row i, column j).
// A Dense exclusively owns its backing slice; Clone is the only sanctioned way
// to duplicate storage across instances.
type Dense[T Scalar] struct {
	r, c int // number of rows and columns, both > 0 for any constructed Dense
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to the additive identity of T.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense[T Scalar](rows, cols int) (*Dense[T], error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice (zeroed by the runtime)
	data := make([]T, rows*cols)

	// Return initialized Dense
	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// NewDenseFromRows builds a Dense from a rectangular slice of rows.
// Stage 1 (Validate): input must be non-empty and every row equally long.
// Stage 2 (Execute): copy rows into fresh flat storage (input is not aliased).
// Errors: ErrInvalidDimensions for empty input, ErrRaggedRows for unequal rows.
// Complexity: O(r*c) time and memory.
func NewDenseFromRows[T Scalar](rows [][]T) (*Dense[T], error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])

	// Validate rectangularity before any allocation
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, denseErrorf("NewDenseFromRows", i, len(rows[i]), ErrRaggedRows)
		}
	}

	// Copy row by row into flat storage
	m := &Dense[T]{r: r, c: c, data: make([]T, r*c)}
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Identity returns the n×n identity matrix I_n (ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
func Identity[T Scalar](n int) (*Dense[T], error) {
	// Allocate an n×n zero matrix via the strict constructor.
	id, err := NewDense[T](n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// The copy shares no storage with the receiver; mutating one never affects
// the other. Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() Matrix[T] {
	// Allocate new slice for data copy
	copyData := make([]T, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer with the package's diagnostic rendering:
// one line per row, each entry printed right-justified to width 8 with four
// decimal places and a trailing space. Purely for inspection and logs; the
// rendering is not part of any algorithmic contract.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly; convert to float64 for uniform formatting
			fmt.Fprintf(&sb, "%8.4f ", float64(m.data[i*m.c+j]))
		}
		sb.WriteByte('\n') // close row
	}

	return sb.String()
}
