// SPDX-License-Identifier: MIT

// Package matrix - backing buffers for Dense.
//
// Purpose:
//   - Hand out one contiguous float32 buffer of rows*cols elements.
//   - Tie the buffer's lifetime to Dense.Release (deterministic for mapped storage).
//   - Turn every allocation problem into an *AllocError instead of a runtime panic.
//
// Backends:
//   - heap:   make([]float32, n); Release drops the reference for the GC.
//   - mapped: anonymous mmap of n*4 bytes; Release unmaps immediately. A
//     finalizer unmaps regions whose owner never called Release.
//
// Complexity: O(1) bookkeeping plus whatever the backend spends on the request.

package matrix

import (
	"fmt"
	"math"
	"runtime"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

// elemSize is the byte size of one float32 element.
const elemSize = int(unsafe.Sizeof(float32(0)))

// maxElements bounds rows*cols so that the byte size stays representable as int.
const maxElements = math.MaxInt / elemSize

// buffer owns the storage behind a Dense.
type buffer interface {
	// floats returns the element slice (len == rows*cols).
	floats() []float32
	// free returns the storage. Called at most once.
	free() error
}

// heapBuffer is GC-managed storage.
type heapBuffer struct {
	data []float32
}

func (b *heapBuffer) floats() []float32 { return b.data }

func (b *heapBuffer) free() error {
	b.data = nil

	return nil
}

// mappedBuffer is an anonymous private mapping reinterpreted as []float32.
type mappedBuffer struct {
	region mmap.MMap
	data   []float32
}

func (b *mappedBuffer) floats() []float32 { return b.data }

func (b *mappedBuffer) free() error {
	b.data = nil
	if b.region == nil {
		return nil
	}
	runtime.SetFinalizer(b, nil)
	err := b.region.Unmap()
	b.region = nil

	return err
}

// elementCount validates the shape and returns rows*cols without overflow.
func elementCount(rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, ErrInvalidDimensions
	}
	if rows != 0 && cols > maxElements/rows {
		return 0, &AllocError{Rows: rows, Cols: cols}
	}

	return rows * cols, nil
}

// allocate returns a buffer for a rows×cols matrix using the given backend.
func allocate(rows, cols int, s Storage) (buffer, error) {
	n, err := elementCount(rows, cols)
	if err != nil {
		return nil, err
	}
	switch s {
	case StorageMapped:
		return allocMapped(rows, cols, n)
	default:
		return allocHeap(rows, cols, n)
	}
}

// allocHeap converts the runtime's "len out of range" panic into an AllocError.
// A genuine out-of-memory condition is fatal in Go and cannot be intercepted.
func allocHeap(rows, cols, n int) (buf buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, &AllocError{Rows: rows, Cols: cols, Err: fmt.Errorf("%v", r)}
		}
	}()

	return &heapBuffer{data: make([]float32, n)}, nil
}

// allocMapped maps n*elemSize anonymous bytes. Zero-length matrices skip the
// mapping entirely (the OS rejects empty anonymous regions).
func allocMapped(rows, cols, n int) (buffer, error) {
	if n == 0 {
		return &mappedBuffer{data: []float32{}}, nil
	}
	region, err := mmap.MapRegion(nil, n*elemSize, mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return nil, &AllocError{Rows: rows, Cols: cols, Err: err}
	}
	// Page-aligned, so the float32 view is properly aligned.
	data := unsafe.Slice((*float32)(unsafe.Pointer(&region[0])), n)

	buf := &mappedBuffer{region: region, data: data}
	runtime.SetFinalizer(buf, func(b *mappedBuffer) { _ = b.free() })

	return buf, nil
}
