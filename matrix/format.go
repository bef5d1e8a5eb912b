// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strings"
)

const opPrint = "Fprint"

// Box-drawing corners of the bordered layout.
const (
	cornerTopLeft     = "┌"
	cornerTopRight    = "┐"
	cornerBottomLeft  = "└"
	cornerBottomRight = "┘"
	sideBar           = "|"
)

// Fprint renders m as a bordered, tab-separated grid with the given number of
// decimals:
//
//	┌			┐
//	|	1.00	2.00	|
//	|	3.00	4.00	|
//	└			┘
//
// The borders span cols+1 tab stops. Output is written in one call to w.
func Fprint(w io.Writer, m Matrix, decimals int) error {
	s, err := Sprint(m, decimals)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)

	return err
}

// Sprint returns the Fprint layout as a string.
func Sprint(m Matrix, decimals int) (string, error) {
	if err := ValidateOperand(m); err != nil {
		return "", matrixErrorf(opPrint, err)
	}
	if decimals < 0 {
		return "", matrixErrorf(opPrint, ErrBadPrecision)
	}

	rows, cols := m.Rows(), m.Cols()
	rule := strings.Repeat("\t", cols+1)

	var b strings.Builder
	b.WriteString(cornerTopLeft + rule + cornerTopRight + "\n")
	for i := 0; i < rows; i++ {
		b.WriteString(sideBar + "\t")
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return "", matrixErrorf(opPrint, err)
			}
			fmt.Fprintf(&b, "%.*f\t", decimals, v)
		}
		b.WriteString(sideBar + "\n")
	}
	b.WriteString(cornerBottomLeft + rule + cornerBottomRight + "\n")

	return b.String(), nil
}
