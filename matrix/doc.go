// Package matrix is a small dense-matrix engine over float32 elements.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix backed by one contiguous buffer, with
//     bounds-checked At/Set and an explicit, idempotent Release.
//   - Add, Sub, Scale and Dot, which validate operand shapes, never mutate
//     their operands and always return a new *Dense.
//   - Fprint/Sprint for a bordered human-readable layout, and Wit for a short
//     introduction to matrices.
//
// Element values of a fresh matrix are unspecified until written. The owner of
// every *Dense (including kernel results) releases it, typically with
// `defer m.Release()` or by scoping it with Use. Storage can live on the Go
// heap (default) or in an anonymous memory mapping (WithMapped), which Release
// returns to the OS immediately.
//
// Errors are sentinels matched with errors.Is; DimensionError, IndexError and
// AllocError carry the offending shapes and indices for errors.As.
package matrix
