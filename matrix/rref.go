// SPDX-License-Identifier: MIT
// Package matrix: reduced row-echelon form (Gauss–Jordan elimination).
// This file hosts the row-reduction kernel used directly by callers and by
// linalg.Solve via the augmented-matrix route.

package matrix

import "fmt"

// ReducedRowEchelonForm returns a new matrix holding the reduced row-echelon
// form of m. The input is never mutated: the kernel clones m and performs all
// row operations on the clone.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); clone m into the working matrix.
//   - Stage 2: Sweep rows with a leading-column cursor `lead`:
//     1. If lead has passed the last column, stop; remaining rows stay as-is.
//     2. Scan rows r, r+1, … for the first entry in column `lead` that is
//        exactly nonzero (== comparison against the zero of T; no pivoting
//        by magnitude). If the column is exhausted, restart the scan at row r
//        with lead+1; if lead reaches the column count, stop.
//     3. Swap the found row into position r.
//     4. Normalize row r by the pivot value (nonzero by construction of step 2).
//     5. Eliminate column `lead` from every other row.
//     6. Advance lead and continue with the next row.
//
// Behavior highlights:
//   - Produces *reduced* row-echelon form: each pivot column carries a 1 in
//     its pivot row and 0 everywhere else, so the transform is idempotent.
//   - Early termination on rank deficiency leaves trailing rows untouched;
//     callers needing solvability guarantees must inspect the result
//     (linalg.Solve does exactly that).
//
// Inputs:
//   - m: non-nil matrix (r×c); any Matrix implementation is accepted.
//
// Returns:
//   - Matrix[T]: a fresh matrix in reduced row-echelon form.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Determinism:
//   - Fixed row sweep and first-nonzero pivot search; identical inputs yield
//     identical outputs bit for bit.
//
// Complexity:
//   - Time O(r²·c), Space O(r*c) for the working clone.
//
// Notes:
//   - Row normalization divides by the pivot using T's division. For integer
//     instantiations this truncates unless every row happens to divide
//     evenly; use a floating-point T when exact field division is required.
//
// AI-Hints:
//   - Pass *Dense[T] to keep the whole reduction on the flat backing slice.
//   - RREF(RREF(A)) == RREF(A); re-reducing is wasted work, cache the result.
func ReducedRowEchelonForm[T Scalar](m Matrix[T]) (Matrix[T], error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}

	// Work on a private clone; the receiver must remain untouched.
	temp := m.Clone()
	rows, cols := temp.Rows(), temp.Cols()

	// Fast-path: clone of *Dense is *Dense, reduce on the flat slice.
	if d, ok := temp.(*Dense[T]); ok {
		reduceDense(d, rows, cols)
		return d, nil
	}

	// Fallback: generic interface path via At/Set.
	if err := reduceGeneric(temp, rows, cols); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}

	return temp, nil
}

// reduceDense runs Gauss–Jordan elimination in place on a Dense clone.
// Invariant on entry to each sweep: columns left of `lead` are fully reduced.
func reduceDense[T Scalar](d *Dense[T], rows, cols int) {
	var (
		zero  T // additive identity of T for exact pivot comparison
		pivot T // pivot value for normalization
		mult  T // elimination multiplier per row
		lead  int
		r, i, j int
	)
	for r = 0; r < rows; r++ {
		// 1. All columns consumed: remaining rows are left as-is.
		if lead >= cols {
			return
		}

		// 2. First-nonzero pivot search down column lead, then rightward.
		i = r
		for d.data[i*cols+lead] == zero {
			i++
			if i == rows {
				i = r
				lead++
				if lead == cols {
					return
				}
			}
		}

		// 3. Swap rows i and r when the pivot was found below r.
		if i != r {
			for j = 0; j < cols; j++ {
				d.data[i*cols+j], d.data[r*cols+j] = d.data[r*cols+j], d.data[i*cols+j]
			}
		}

		// 4. Normalize row r by the pivot (nonzero by step 2).
		pivot = d.data[r*cols+lead]
		for j = 0; j < cols; j++ {
			d.data[r*cols+j] /= pivot
		}

		// 5. Eliminate column lead from every other row.
		for i = 0; i < rows; i++ {
			if i == r {
				continue
			}
			mult = d.data[i*cols+lead]
			if mult == zero {
				continue // row already clear in this column
			}
			for j = 0; j < cols; j++ {
				d.data[i*cols+j] -= d.data[r*cols+j] * mult
			}
		}

		// 6. Advance the leading-column cursor.
		lead++
	}
}

// reduceGeneric mirrors reduceDense through the Matrix interface. Shape was
// validated by the caller, so At/Set errors indicate a broken implementation
// and are propagated verbatim.
func reduceGeneric[T Scalar](m Matrix[T], rows, cols int) error {
	var (
		zero       T
		v, pivot   T
		mult, rv   T
		lead       int
		r, i, j    int
		err        error
	)
	for r = 0; r < rows; r++ {
		if lead >= cols {
			return nil
		}

		// First-nonzero pivot search (exact equality, fail-fast reads).
		i = r
		for {
			v, err = m.At(i, lead)
			if err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, lead, err)
			}
			if v != zero {
				break
			}
			i++
			if i == rows {
				i = r
				lead++
				if lead == cols {
					return nil
				}
			}
		}

		// Swap rows i and r.
		if i != r {
			for j = 0; j < cols; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return fmt.Errorf("At(%d,%d): %w", i, j, err)
				}
				rv, err = m.At(r, j)
				if err != nil {
					return fmt.Errorf("At(%d,%d): %w", r, j, err)
				}
				if err = m.Set(i, j, rv); err != nil {
					return fmt.Errorf("Set(%d,%d): %w", i, j, err)
				}
				if err = m.Set(r, j, v); err != nil {
					return fmt.Errorf("Set(%d,%d): %w", r, j, err)
				}
			}
		}

		// Normalize row r by the pivot.
		pivot, err = m.At(r, lead)
		if err != nil {
			return fmt.Errorf("At(%d,%d): %w", r, lead, err)
		}
		for j = 0; j < cols; j++ {
			v, err = m.At(r, j)
			if err != nil {
				return fmt.Errorf("At(%d,%d): %w", r, j, err)
			}
			if err = m.Set(r, j, v/pivot); err != nil {
				return fmt.Errorf("Set(%d,%d): %w", r, j, err)
			}
		}

		// Eliminate column lead from every other row.
		for i = 0; i < rows; i++ {
			if i == r {
				continue
			}
			mult, err = m.At(i, lead)
			if err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, lead, err)
			}
			if mult == zero {
				continue
			}
			for j = 0; j < cols; j++ {
				rv, err = m.At(r, j)
				if err != nil {
					return fmt.Errorf("At(%d,%d): %w", r, j, err)
				}
				v, err = m.At(i, j)
				if err != nil {
					return fmt.Errorf("At(%d,%d): %w", i, j, err)
				}
				if err = m.Set(i, j, v-rv*mult); err != nil {
					return fmt.Errorf("Set(%d,%d): %w", i, j, err)
				}
			}
		}

		lead++
	}

	return nil
}
