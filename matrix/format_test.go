// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/gcm/matrix"
	"github.com/stretchr/testify/require"
)

func TestSprint_Layout(t *testing.T) {
	t.Parallel()

	A := MustFromRows(t, [][]float32{{1, 2}, {3, 4.5}})

	got, err := matrix.Sprint(A, 2)
	require.NoError(t, err)
	want := "┌\t\t\t┐\n" +
		"|\t1.00\t2.00\t|\n" +
		"|\t3.00\t4.50\t|\n" +
		"└\t\t\t┘\n"
	require.Equal(t, want, got)

	// Fast and generic inputs render identically.
	slow, err := matrix.Sprint(hide{A}, 2)
	require.NoError(t, err)
	require.Equal(t, got, slow)
}

func TestFprint_ZeroDecimalsAndEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, matrix.Fprint(&buf, MustFromRows(t, [][]float32{{1.6, -2}}), 0))
	require.Equal(t, "┌\t\t\t┐\n|\t2\t-2\t|\n└\t\t\t┘\n", buf.String())

	empty, err := matrix.New(0, 0)
	require.NoError(t, err)
	defer empty.Release()
	s, err := matrix.Sprint(empty, 3)
	require.NoError(t, err)
	require.Equal(t, "┌\t┐\n└\t┘\n", s)
}

func TestSprint_Errors(t *testing.T) {
	t.Parallel()

	A := MustFromRows(t, [][]float32{{1}})
	_, err := matrix.Sprint(A, -1)
	require.ErrorIs(t, err, matrix.ErrBadPrecision)

	_, err = matrix.Sprint(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestWit(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, matrix.Wit(&buf))
	out := buf.String()

	require.Contains(t, out, "WIT: What Is That?")
	require.Contains(t, out, `called "Square matrix"`)
	require.Contains(t, out, "|\t1\t2\t3\t|\n|\t6\t5\t4\t|\n")
	require.True(t, strings.HasSuffix(out, "are called the dimensions.\n"))
}
