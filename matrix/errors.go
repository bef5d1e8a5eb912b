// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and typed error payloads.
// All operations MUST return these sentinels (directly or through the typed
// errors below) and tests MUST check them via errors.Is / errors.As.
// No operation panics or terminates the process on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Typed errors
// (DimensionError, IndexError, AllocError) carry the operands' shapes and
// unwrap to their sentinel, so errors.Is keeps working through fmt.Errorf("%w").
//
// ERROR PRIORITY (enforced in validators):
// nil -> released -> dimension mismatch.

var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub of different shapes, or Dot where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrAllocation is returned when the requested storage cannot be provided
	// (size overflow or backend failure). It is a resource condition, not a
	// logic error.
	ErrAllocation = errors.New("matrix: allocation failed")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrReleased indicates use of a matrix after Release.
	ErrReleased = errors.New("matrix: use of released matrix")

	// ErrBadPrecision indicates a negative decimal count passed to the printer.
	ErrBadPrecision = errors.New("matrix: decimals must be >= 0")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
// errors.Is(err, ErrIndexOutOfBounds) and errors.Is(err, ErrOutOfRange) are equivalent.
var ErrIndexOutOfBounds = ErrOutOfRange

// DimensionError reports an operand shape conflict.
// For Add/Sub both full shapes are compared; for Dot (Inner == true) only
// A.Cols and B.Rows are relevant.
type DimensionError struct {
	Op    string // operation tag (opAdd, opSub, opDot)
	A, B  Shape  // operand shapes
	Inner bool   // true when the inner dimensions (A.Cols vs B.Rows) conflict
}

// Error implements error. The operation tag is added by the kernel wrapper.
func (e *DimensionError) Error() string {
	if e.Inner {
		return fmt.Sprintf("A columns number is %d, B rows number is %d: %v",
			e.A.Cols, e.B.Rows, ErrDimensionMismatch)
	}

	return fmt.Sprintf("A is %s, B is %s: %v", e.A, e.B, ErrDimensionMismatch)
}

// Unwrap exposes ErrDimensionMismatch to errors.Is.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// IndexError reports an element access outside the matrix shape.
type IndexError struct {
	Row, Col int   // requested coordinates
	Shape    Shape // shape of the accessed matrix
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index (%d,%d) outside %s: %v", e.Row, e.Col, e.Shape, ErrOutOfRange)
}

// Unwrap exposes ErrOutOfRange to errors.Is.
func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// AllocError reports a storage request that could not be satisfied.
// Err is the backend cause (nil for a size overflow).
type AllocError struct {
	Rows, Cols int
	Err        error
}

// Error implements error.
func (e *AllocError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %dx%d float32 elements exceed addressable size", ErrAllocation, e.Rows, e.Cols)
	}

	return fmt.Sprintf("%v: %dx%d: %v", ErrAllocation, e.Rows, e.Cols, e.Err)
}

// Unwrap exposes both ErrAllocation and the backend cause.
func (e *AllocError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrAllocation}
	}

	return []error{ErrAllocation, e.Err}
}
