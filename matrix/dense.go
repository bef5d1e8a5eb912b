// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide one contiguous row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Tie storage lifetime to Release, which is idempotent; use-after-release is an error.
//
// Contract:
//   - Element values are unspecified after New until written. Write before reading.
//   - Zero-sized shapes (0×N, N×0) are legal containers.
//
// Complexity quicksheet:
//   - New: O(1) bookkeeping + backend cost; At/Set: O(1); Clone/Row: O(copy); Release: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew   = "New"   // ctor tag
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxRow   = "Row"   // method tag used in error wrappers
	ctxClone = "Clone" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major float32 matrix.
// Obtain one from New, FromRows, Clone or a kernel. The zero value has no
// storage and behaves like a released 0×0 matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat view of buf, length r*c, offset = i*c + j.
//   - buf owns the storage; nil after Release.
type Dense struct {
	r, c    int       // row and column counts
	data    []float32 // contiguous row-major storage (len == r*c)
	buf     buffer    // storage owner
	storage Storage   // backend that produced buf
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// New allocates a rows×cols matrix.
//
// Implementation:
//   - Stage 1: resolve options (storage backend).
//   - Stage 2: validate shape and size; allocate one contiguous buffer.
//
// Errors:
//   - ErrInvalidDimensions for negative rows/cols.
//   - *AllocError (errors.Is ErrAllocation) when the byte size overflows, when the
//     heap request exceeds what the runtime can ever address, or when the mmap
//     call fails.
//
// Notes:
//   - Values are unspecified until written.
//   - The caller owns the result and should `defer m.Release()`.
//   - A heap request that is addressable but larger than available memory is
//     NOT reported: the Go runtime aborts the process with "out of memory".
//     For very large matrices use WithMapped(), whose failure is returned.
func New(rows, cols int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	buf, err := allocate(rows, cols, o.storage)
	if err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}

	return &Dense{r: rows, c: cols, data: buf.floats(), buf: buf, storage: o.storage}, nil
}

// newResult allocates a heap-backed result for the kernels.
func newResult(rows, cols int) (*Dense, error) {
	return New(rows, cols)
}

// Rows returns the row count. Still valid after Release.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Still valid after Release.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// Storage reports the backend that holds the elements.
func (m *Dense) Storage() Storage { return m.storage }

// Released reports whether Release has been called.
func (m *Dense) Released() bool { return m.buf == nil }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns ErrReleased or an *IndexError; callers add method context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if m.buf == nil {
		return 0, ErrReleased
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, &IndexError{Row: row, Col: col, Shape: m.Shape()}
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col).
// Errors: *IndexError (ErrIndexOutOfBounds) or ErrReleased.
func (m *Dense) At(row, col int) (float32, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: *IndexError (ErrIndexOutOfBounds) or ErrReleased.
func (m *Dense) Set(row, col int, v float32) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float32, error) {
	if m.buf == nil {
		return nil, denseErrorf(ctxRow, i, 0, ErrReleased)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, &IndexError{Row: i, Col: 0, Shape: m.Shape()})
	}
	out := make([]float32, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a heap-backed deep copy. Mutations do not affect the original.
// Complexity: O(r*c).
func (m *Dense) Clone() (*Dense, error) {
	if m.buf == nil {
		return nil, denseErrorf(ctxClone, m.r, m.c, ErrReleased)
	}
	cp, err := newResult(m.r, m.c)
	if err != nil {
		return nil, err
	}
	copy(cp.data, m.data)

	return cp, nil
}

// Release returns the storage to its backend. Safe to call more than once;
// only the first call does work and may report a backend error.
// After Release every accessor returns ErrReleased (Rows/Cols/Shape excepted).
func (m *Dense) Release() error {
	if m == nil || m.buf == nil {
		return nil
	}
	buf := m.buf
	m.buf = nil
	m.data = nil

	return buf.free()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. No-op on a nil or released matrix.
func (m *Dense) Do(f func(i, j int, v float32) bool) {
	if m == nil {
		return
	}
	var i, j, base int
	for i = 0; i < m.r && m.buf != nil; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String provides a readable row-wise dump for diagnostics, e.g. "[1, 2]\n[3, 4]\n".
// For the bordered layout with fixed decimals see Fprint.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	if m.buf == nil {
		return "<released " + m.Shape().String() + ">"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
