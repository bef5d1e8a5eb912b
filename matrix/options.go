// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense allocation.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective options.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import "fmt"

// Storage selects the backing-buffer allocator of a Dense.
type Storage int

const (
	// StorageHeap backs the matrix with a Go-managed []float32.
	StorageHeap Storage = iota

	// StorageMapped backs the matrix with an anonymous memory mapping that is
	// returned to the OS by Release.
	StorageMapped
)

// String returns the storage name for diagnostics.
func (s Storage) String() string {
	switch s {
	case StorageHeap:
		return "heap"
	case StorageMapped:
		return "mapped"
	default:
		return fmt.Sprintf("Storage(%d)", int(s))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStorage is the allocator used when no WithStorage option is given.
	DefaultStorage = StorageHeap
)

const panicStorageInvalid = "matrix: WithStorage: unknown storage kind"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	storage Storage // DefaultStorage
}

// WithStorage selects the backing allocator. Panics on unknown kinds.
func WithStorage(s Storage) Option {
	if s != StorageHeap && s != StorageMapped {
		panic(panicStorageInvalid)
	}

	return func(o *Options) { o.storage = s }
}

// WithMapped is shorthand for WithStorage(StorageMapped).
func WithMapped() Option { return WithStorage(StorageMapped) }

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{storage: DefaultStorage}
}

// gatherOptions applies opts in order over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
