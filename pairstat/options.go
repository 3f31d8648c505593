// SPDX-License-Identifier: MIT
// Package pairstat: per-call configuration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each field impacts behavior and is covered by tests.
//   - Documented defaults (constants) as the single source of truth.

package pairstat

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultBlockSize is the tile side used by the blocked traversal.
	// 64 keeps the working set of typical evaluators cache-resident; it is
	// a tuning parameter, not a correctness requirement — results are
	// invariant under any positive block size (see compute tests).
	DefaultBlockSize = 64

	// DefaultWorkers runs the traversal on a single goroutine.
	DefaultWorkers = 1
)

// Options configures a single Compute/Normalize call.
//
// Fields:
//   - BlockSize — tile side for the cache-blocked traversal.
//     0 selects DefaultBlockSize; negative values error (ErrBadBlockSize).
//   - Workers   — upper bound on concurrent block-pair units.
//     0 selects DefaultWorkers; 1 is fully sequential; values > 1 compute
//     independent block-pair partial sums concurrently and reduce them in
//     a fixed unit order. Negative values error (ErrBadWorkers).
//
// Example:
//
//	opts := pairstat.DefaultOptions()
//	opts.Workers = 4
//	res, err := pairstat.Compute(k, ds, &opts)
type Options struct {
	BlockSize int
	Workers   int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{BlockSize: DefaultBlockSize, Workers: DefaultWorkers}
}

// resolved validates o and fills zero fields with the documented defaults.
// A nil receiver selects the full default set.
func (o *Options) resolved() (Options, error) {
	if o == nil {
		return DefaultOptions(), nil
	}

	out := *o
	switch {
	case out.BlockSize < 0:
		return Options{}, ErrBadBlockSize
	case out.BlockSize == 0:
		out.BlockSize = DefaultBlockSize
	}
	switch {
	case out.Workers < 0:
		return Options{}, ErrBadWorkers
	case out.Workers == 0:
		out.Workers = DefaultWorkers
	}

	return out, nil
}
