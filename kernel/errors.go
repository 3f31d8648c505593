// Package kernel: sentinel error set.

package kernel

import "errors"

var (
	// ErrNilKernel indicates that a nil base kernel was passed to NewScaled.
	ErrNilKernel = errors.New("kernel: base kernel is nil")

	// ErrBadGamma is returned for a Gaussian bandwidth that is not finite
	// and strictly positive.
	ErrBadGamma = errors.New("kernel: gamma must be finite and > 0")

	// ErrBadDegree is returned for a polynomial degree < 1.
	ErrBadDegree = errors.New("kernel: degree must be >= 1")

	// ErrBadOffset is returned for a polynomial offset that is not finite
	// and non-negative.
	ErrBadOffset = errors.New("kernel: offset must be finite and >= 0")
)
