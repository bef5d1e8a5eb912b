// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks: literal construction, scoped
//     lifetime, comparison, and the short operation names.
//   - Avoid logic duplication: arithmetic facades delegate to the kernels.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

const (
	opFromRows = "FromRows"
	opFill     = "Fill"
	opCompare  = "Compare"
)

// ---------- Constructors & lifetime ----------

// FromRows builds a matrix from row literals. All rows must have the same
// length; an empty slice yields a 0×0 matrix and empty rows yield N×0.
// The input is copied.
func FromRows(rows [][]float32, opts ...Option) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows,
				fmt.Errorf("row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch))
		}
	}

	m, err := New(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Use allocates a rows×cols matrix, passes it to fn, and releases it when fn
// returns. The matrix must not escape fn. A release failure is joined with
// fn's error.
func Use(rows, cols int, fn func(m *Dense) error, opts ...Option) (err error) {
	m, err := New(rows, cols, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := m.Release(); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()

	return fn(m)
}

// Fill writes v into every element of m. Useful to initialize a fresh matrix,
// whose contents are otherwise unspecified.
func Fill(m *Dense, v float32) error {
	if err := ValidateOperand(m); err != nil {
		return matrixErrorf(opFill, err)
	}
	for idx := range m.data {
		m.data[idx] = v
	}

	return nil
}

// ---------- Comparison ----------

// Equal reports whether a and b have the same shape and bitwise-equal values
// (NaN never equals NaN). Shape difference is not an error.
func Equal(a, b Matrix) (bool, error) {
	return compare(a, b, func(x, y float32) bool { return x == y })
}

// AllClose reports whether shapes match and |a[i,j]-b[i,j]| <= tol for all cells.
// tol is treated as |tol|.
func AllClose(a, b Matrix, tol float64) (bool, error) {
	tol = math.Abs(tol)

	return compare(a, b, func(x, y float32) bool {
		return math.Abs(float64(x)-float64(y)) <= tol
	})
}

// compare walks both matrices in i→j order and stops at the first mismatch.
func compare(a, b Matrix, eq func(x, y float32) bool) (bool, error) {
	if err := ValidateOperand(a); err != nil {
		return false, matrixErrorf(opCompare, err)
	}
	if err := ValidateOperand(b); err != nil {
		return false, matrixErrorf(opCompare, err)
	}
	if shapeOf(a) != shapeOf(b) {
		return false, nil
	}

	var x, y float32
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if x, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opCompare, err)
			}
			if y, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opCompare, err)
			}
			if !eq(x, y) {
				return false, nil
			}
		}
	}

	return true, nil
}

// ---------- Short names ----------

// Sum is an alias for Add.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// ScaleBy is an alias for Scale.
func ScaleBy(m Matrix, scalar float64) (*Dense, error) { return Scale(m, scalar) }

// Product is an alias for Dot.
func Product(a, b Matrix) (*Dense, error) { return Dot(a, b) }

// Mul is an alias for Dot.
func Mul(a, b Matrix) (*Dense, error) { return Dot(a, b) }
