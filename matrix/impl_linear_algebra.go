// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on any Matrix implementation:
// element-wise addition and subtraction, scalar scaling and the matrix (dot)
// product. All kernels validate operands first and return a freshly allocated
// *Dense; operands are never mutated.
//
// Numeric policy:
//   - Add/Sub compute in float32.
//   - Scale multiplies at float64 and narrows once on store.
//   - Dot accumulates Σ_k a[i,k]*b[k,j] in float64, starting from 0 and walking
//     k upward, then narrows once on store. The summation order is part of the
//     contract.

package matrix

import "fmt"

// ZeroSum is the additive identity the dot-product accumulator starts from.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opScale = "Scale"
	opDot   = "Dot"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + b (sub == false) or a - b (sub == true).
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result.
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise fall back to At/Set with fixed i→j order.
//
// Notes:
//   - The result never shares storage with a or b, even when a == b.
func addSub(a, b Matrix, sub bool, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(opTag, a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := newResult(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			if sub {
				for idx := range res.data {
					res.data[idx] = da.data[idx] - db.data[idx]
				}
			} else {
				for idx := range res.data {
					res.data[idx] = da.data[idx] + db.data[idx]
				}
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float32
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				_ = res.Release()
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				_ = res.Release()
				return nil, matrixErrorf(opTag, err)
			}
			if sub {
				res.data[i*cols+j] = av - bv
			} else {
				res.data[i*cols+j] = av + bv
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix, ErrReleased (operand checks).
//   - *DimensionError (errors.Is ErrDimensionMismatch) carrying both shapes.
//
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B.
//
// Errors:
//   - ErrNilMatrix, ErrReleased (operand checks).
//   - *DimensionError (errors.Is ErrDimensionMismatch) carrying both shapes.
//
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, true, opSub) }

// Scale returns C with C[i,j] = float32(float64(M[i,j]) * scalar).
// The product is formed at double precision and narrowed on store.
// No shape precondition; zero-sized inputs yield zero-sized results.
//
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, scalar float64) (*Dense, error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := newResult(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = float32(float64(v) * scalar)
		}

		return res, nil
	}

	var v float32
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				_ = res.Release()
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = float32(float64(v) * scalar)
		}
	}

	return res, nil
}

// Dot performs the matrix product C = A × B for A (m×n) and B (n×p).
//
// Implementation:
//   - Stage 1: validate operands and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: naive i→j→k triple loop; float64 accumulator per cell, k ascending.
//
// Errors:
//   - ErrNilMatrix, ErrReleased (operand checks).
//   - *DimensionError with Inner set, reporting A.Cols and B.Rows.
//
// Notes:
//   - Zero terms are NOT skipped: 0*Inf must still yield NaN.
//   - When n == 0 every cell is the additive identity.
//
// Complexity: Time O(m*n*p), Space O(m*p).
func Dot(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(opDot, a, b); err != nil {
		return nil, matrixErrorf(opDot, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newResult(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opDot, err)
	}

	var (
		i, j, k int
		acc     float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				for j = 0; j < bCols; j++ {
					acc = ZeroSum
					for k = 0; k < aCols; k++ {
						acc += float64(da.data[rowOffsetA+k]) * float64(db.data[k*bCols+j])
					}
					res.data[i*bCols+j] = float32(acc)
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop, same order.
	var av, bv float32
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					_ = res.Release()
					return nil, matrixErrorf(opDot, err)
				}
				if bv, err = b.At(k, j); err != nil {
					_ = res.Release()
					return nil, matrixErrorf(opDot, err)
				}
				acc += float64(av) * float64(bv)
			}
			res.data[i*bCols+j] = float32(acc)
		}
	}

	return res, nil
}
