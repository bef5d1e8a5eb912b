// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"io"
)

const witBanner = `
/*************************************************
 *                                               *
 *            WIT: What Is That?                 *
 *                                               *
 *************************************************/

`

const witIntro = `A matrix is a rectangular array of numbers or other mathematical objects. 
Those elements are arranged in rows and columns, without a constrain regarding the difference of length.
E.g.: it can have 5 rows and 2 columns 

A matrix with the same number of rows and columns is called "Square matrix".

E.g. of a matrix: 
`

const witDimensions = `
For the purposes of the library it's important to note that the rows are expressed as 'm' while the columns as 'n'.
So a matrix with 'm' rows and 'n' columns is called an 'm x n' matrix(or m-by-n matrix), where 'm' and 'n' are called the dimensions.
`

// Wit ("What Is That?") writes a short description of matrices to w,
// including a printed 2×3 example.
func Wit(w io.Writer) error {
	example, err := FromRows([][]float32{
		{1, 2, 3},
		{6, 5, 4},
	})
	if err != nil {
		return err
	}
	defer example.Release()

	grid, err := Sprint(example, 0)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, part := range []string{witBanner, witIntro, grid, witDimensions} {
		if _, err = bw.WriteString(part); err != nil {
			return err
		}
	}

	return bw.Flush()
}
