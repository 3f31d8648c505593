// SPDX-License-Identifier: MIT
// Package pairstat: deriving and applying the unit-variance scale factor.
//
// The statistic computation (Compute) is pure; the side effect on the
// kernel's scale holder is a separate, explicit step so it is visible at
// the call site. Normalize composes the two for convenience.

package pairstat

// ScaleFactor derives the multiplicative factor that normalizes the
// evaluator to unit empirical variance:
//
//	denom = Trace/N − Mean/N²
//	factor = 1/denom
//
// denom is the empirical variance of the diagonal-relative evaluation and
// must be strictly positive; a non-positive (or NaN) denominator means the
// statistic is mathematically meaningless for this evaluator/dataset pair.
//
// Errors:
//   - ErrTooFewElements     — r.Size < 2 (e.g. a zero Result).
//   - ErrDegenerateVariance — denom is not strictly positive.
func (r Result) ScaleFactor() (float64, error) {
	if r.Size < 2 {
		return 0, ErrTooFewElements
	}

	nf := float64(r.Size)
	denom := r.Trace/nf - r.Mean/(nf*nf)
	if !(denom > 0) { // negated to also catch NaN
		return 0, ErrDegenerateVariance
	}

	return 1 / denom, nil
}

// Apply writes r's scale factor into h. The holder is only mutated on
// success: a degenerate Result leaves h untouched and surfaces
// ErrDegenerateVariance instead of installing an infinite or negative
// factor.
//
// Returns the factor that was installed.
func Apply(h ScaleHolder, r Result) (float64, error) {
	if h == nil {
		return 0, ErrNilHolder
	}

	factor, err := r.ScaleFactor()
	if err != nil {
		return 0, err
	}
	h.SetFactor(factor)

	return factor, nil
}

// Normalize computes the pair statistics of k over ds and installs the
// derived unit-variance factor into h. It is the one-call form of
//
//	res, err := Compute(k, ds, opts)
//	_, err = Apply(h, res)
//
// k must be the UNSCALED evaluator (for a kernel.Scaled wrapper, its
// Base()); evaluating through the holder itself would fold the previous
// factor into the statistics.
//
// Returns the Result so callers can retain trace/mean for later queries.
// On any error the holder is untouched and the zero Result is returned.
func Normalize[T any](h ScaleHolder, k Kernel[T], ds Dataset[T], opts *Options) (Result, error) {
	if h == nil {
		return Result{}, ErrNilHolder
	}

	res, err := Compute(k, ds, opts)
	if err != nil {
		return Result{}, err
	}
	if _, err = Apply(h, res); err != nil {
		return Result{}, err
	}

	return res, nil
}
