// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/liveness/shape checks here.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate only on failure.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Live → Shape.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateLive ensures m has not been released. Only *Dense can be released;
// other implementations always pass. Assumes m is non-nil.
func ValidateLive(m Matrix) error {
	if d, ok := m.(*Dense); ok && d.Released() {
		return validatorErrorf("ValidateLive", ErrReleased)
	}

	return nil
}

// ValidateOperand is the unary composite: NotNil → Live.
func ValidateOperand(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateLive(m)
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil. The returned *DimensionError carries both shapes.
func ValidateSameShape(op string, a, b Matrix) error {
	sa, sb := shapeOf(a), shapeOf(b)
	if sa != sb {
		return &DimensionError{Op: op, A: sa, B: sb}
	}

	return nil
}

// ValidateBinarySameShape – Composite: Operand(a) → Operand(b) → SameShape.
func ValidateBinarySameShape(op string, a, b Matrix) error {
	if err := ValidateOperand(a); err != nil {
		return err
	}
	if err := ValidateOperand(b); err != nil {
		return err
	}

	return ValidateSameShape(op, a, b)
}

// ValidateMulCompatible – Composite: Operand(a) → Operand(b) → a.Cols == b.Rows.
// The returned *DimensionError has Inner set and reports a.Cols vs b.Rows.
func ValidateMulCompatible(op string, a, b Matrix) error {
	if err := ValidateOperand(a); err != nil {
		return err
	}
	if err := ValidateOperand(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return &DimensionError{Op: op, A: shapeOf(a), B: shapeOf(b), Inner: true}
	}

	return nil
}
