// Package matrix_test provides benchmarks for the matrix kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/gcm/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinkM defeats dead-code elimination.
var sinkM *matrix.Dense

func benchBinary(b *testing.B, op func(x, y matrix.Matrix) (*matrix.Dense, error)) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustRandom(b, n, n, 1337)
			B := MustRandom(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := op(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
				_ = m.Release()
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) { benchBinary(b, matrix.Add) }

func BenchmarkSub(b *testing.B) { benchBinary(b, matrix.Sub) }

func BenchmarkDot(b *testing.B) { benchBinary(b, matrix.Dot) }

func BenchmarkScale(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustRandom(b, n, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Scale(A, 1.5)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
				_ = m.Release()
			}
		})
	}
}

func BenchmarkNew(b *testing.B) {
	for _, s := range []matrix.Storage{matrix.StorageHeap, matrix.StorageMapped} {
		b.Run(s.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m, err := matrix.New(256, 256, matrix.WithStorage(s))
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
				_ = m.Release()
			}
		})
	}
}
