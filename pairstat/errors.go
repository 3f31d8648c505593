// SPDX-License-Identifier: MIT
// Package pairstat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// pairstat package. All entry points MUST return these sentinels and tests
// MUST check them via errors.Is. No function panics on user-triggered
// error conditions.

package pairstat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "pairstat: ..." for consistency and to
// allow easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX)
// only at outer boundaries — callers still match via errors.Is.

var (
	// ErrNilKernel indicates that a nil Kernel was passed into an entry point.
	ErrNilKernel = errors.New("pairstat: kernel is nil")

	// ErrNilDataset indicates that a nil Dataset was passed into an entry point.
	ErrNilDataset = errors.New("pairstat: dataset is nil")

	// ErrNilHolder indicates that a nil ScaleHolder was passed to Apply/Normalize.
	ErrNilHolder = errors.New("pairstat: scale holder is nil")

	// ErrTooFewElements is returned when the dataset holds fewer than two
	// elements. Detected before any kernel evaluation; no partial work is done.
	ErrTooFewElements = errors.New("pairstat: dataset must contain at least two elements")

	// ErrDegenerateVariance signals that trace/N - mean/N^2 is not strictly
	// positive, so no meaningful unit-variance scale factor exists (e.g. a
	// constant kernel, or a duplicate-only dataset). Terminal for the call;
	// the scale holder is left untouched.
	ErrDegenerateVariance = errors.New("pairstat: trace/N - mean/N^2 is not strictly positive")

	// ErrBadBlockSize is returned for a non-positive tile side where one is
	// required (ForEachBlockPair), or a negative Options.BlockSize.
	ErrBadBlockSize = errors.New("pairstat: block size must be >= 1")

	// ErrBadWorkers is returned for a negative Options.Workers.
	ErrBadWorkers = errors.New("pairstat: workers must be >= 0")

	// ErrBadLength is returned when an index-range length is negative.
	ErrBadLength = errors.New("pairstat: length must be >= 0")
)
