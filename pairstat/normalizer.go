// SPDX-License-Identifier: MIT

package pairstat

// normalizerName identifies the procedure in reports and logs.
const normalizerName = "kernel-unit-variance"

// Normalizer is a small stateful convenience around Normalize: it pins the
// Options once and retains the last successfully computed Result for
// read-only queries. It carries no other state — there is no multi-step
// protocol, no partial progress, no resumability.
//
// A Normalizer is NOT safe for concurrent Normalize calls; the retained
// Result is a plain cached output.
type Normalizer[T any] struct {
	opts   Options
	last   Result
	fitted bool
}

// NewNormalizer returns a Normalizer using opts for every call
// (nil selects DefaultOptions).
func NewNormalizer[T any](opts *Options) (*Normalizer[T], error) {
	o, err := opts.resolved()
	if err != nil {
		return nil, err
	}

	return &Normalizer[T]{opts: o}, nil
}

// Name reports the procedure name.
func (nm *Normalizer[T]) Name() string { return normalizerName }

// Normalize computes the statistics of k over ds, installs the derived
// factor into h and retains the Result. On error nothing is retained and
// h is untouched.
func (nm *Normalizer[T]) Normalize(h ScaleHolder, k Kernel[T], ds Dataset[T]) error {
	res, err := Normalize(h, k, ds, &nm.opts)
	if err != nil {
		return err
	}
	nm.last, nm.fitted = res, true

	return nil
}

// Fitted reports whether at least one Normalize call succeeded.
func (nm *Normalizer[T]) Fitted() bool { return nm.fitted }

// Trace returns the trace of the last successful Normalize
// (0 before the first success; check Fitted).
func (nm *Normalizer[T]) Trace() float64 { return nm.last.Trace }

// Mean returns the matrix mean of the last successful Normalize
// (0 before the first success; check Fitted).
func (nm *Normalizer[T]) Mean() float64 { return nm.last.Mean }

// Last returns the retained Result and whether one exists.
func (nm *Normalizer[T]) Last() (Result, bool) { return nm.last, nm.fitted }
