// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the Dense storage and the kernels.
// This file intentionally contains ONLY domain-facing types (element shape and
// the public Matrix interface). Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

import "strconv"

// Shape is a (rows, cols) pair. Both values are non-negative for every
// matrix produced by this package.
type Shape struct {
	Rows int // number of rows
	Cols int // number of columns
}

// String renders the shape as "RxC" (e.g., "2x3").
func (s Shape) String() string {
	return strconv.Itoa(s.Rows) + "x" + strconv.Itoa(s.Cols)
}

// Matrix represents a two-dimensional mutable array of float32 values.
// Kernels accept any Matrix; *Dense operands unlock the flat-slice fast path.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float32, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	Set(i, j int, v float32) error
}

// shapeOf reads both dimensions of m in one call.
func shapeOf(m Matrix) Shape { return Shape{Rows: m.Rows(), Cols: m.Cols()} }
