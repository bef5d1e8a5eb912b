// Package gcm is a studying library for dense matrix arithmetic in pure Go.
//
// Everything lives in the matrix subpackage:
//
//	matrix/  Dense float32 matrices, Add/Sub/Scale/Dot, pretty printer, Wit
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float32{{1, 2, 3}, {6, 5, 4}})
//	defer a.Release()
//	b, _ := matrix.FromRows([][]float32{{1, 0}, {0, 1}, {0, 0}})
//	defer b.Release()
//	c, err := matrix.Dot(a, b) // [[1 2] [6 5]]
//	if err != nil {
//		// errors.Is(err, matrix.ErrDimensionMismatch) on incompatible shapes
//	}
//	defer c.Release()
//	_ = matrix.Fprint(os.Stdout, c, 2)
package gcm
