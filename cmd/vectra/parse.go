// Command vectra: literal parsing for matrices, vectors and angles.
// Literal grammar: rows are ';'-separated, entries ','-separated, whitespace
// around either separator is ignored. "1,2;3,4" is the 2×2 matrix [[1,2],[3,4]].
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/vectra/matrix"
	"github.com/katalvlaran/vectra/vector"
)

// parseMatrix converts a literal like "1,2;3,4" into a Dense matrix.
// Shape errors (empty or ragged rows) surface through NewDenseFromRows.
func parseMatrix(s string) (*matrix.Dense[float64], error) {
	rowLits := strings.Split(s, ";")
	rows := make([][]float64, 0, len(rowLits))
	for i, rowLit := range rowLits {
		row, err := parseRow(rowLit)
		if err != nil {
			return nil, fmt.Errorf("matrix literal %q, row %d: %w", s, i, err)
		}
		rows = append(rows, row)
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("matrix literal %q: %w", s, err)
	}

	return m, nil
}

// parseVector converts a literal like "7,3" into a column vector.
func parseVector(s string) (*vector.Vector[float64], error) {
	row, err := parseRow(s)
	if err != nil {
		return nil, fmt.Errorf("vector literal %q: %w", s, err)
	}

	v, err := vector.FromSlice(row)
	if err != nil {
		return nil, fmt.Errorf("vector literal %q: %w", s, err)
	}

	return v, nil
}

// parseRow splits one ','-separated row of numbers.
func parseRow(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	row := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", f, err)
		}
		row = append(row, x)
	}

	return row, nil
}

// parseAngle parses the rotate command's angle argument.
func parseAngle(s string) (float64, error) {
	angle, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("angle %q: %w", s, err)
	}

	return angle, nil
}
