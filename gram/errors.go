// SPDX-License-Identifier: MIT
// Package gram: sentinel error set.

package gram

import "errors"

var (
	// ErrBadSize is returned when a negative matrix size is requested.
	ErrBadSize = errors.New("gram: size must be >= 0")

	// ErrNilEval indicates that a nil entry evaluator was passed to Build.
	ErrNilEval = errors.New("gram: eval function is nil")

	// ErrOutOfRange indicates that a row or column index is outside [0,n).
	// At MUST return this, not panic.
	ErrOutOfRange = errors.New("gram: index out of range")
)
