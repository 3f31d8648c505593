package pairstat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/kernelnorm/kernel"
	"github.com/katalvlaran/kernelnorm/pairstat"
)

// recordHolder records SetFactor calls so tests can assert "untouched".
type recordHolder struct {
	factor float64
	calls  int
}

func (h *recordHolder) SetFactor(f float64) {
	h.factor = f
	h.calls++
}

// TestScaleFactor_Degenerate verifies that a non-positive denominator is a
// typed failure, not a silent infinite factor.
func TestScaleFactor_Degenerate(t *testing.T) {
	// Constant evaluator with c = 0: trace = 0, mean = 0, denom = 0.
	k := pairstat.EvalFunc[int](func(_, _ int) float64 { return 0 })
	ds := pairstat.SliceDataset[int]{0, 1, 2}

	res, err := pairstat.Compute[int](k, ds, nil)
	assert.NoError(t, err)

	_, err = res.ScaleFactor()
	assert.ErrorIs(t, err, pairstat.ErrDegenerateVariance)
}

// TestScaleFactor_ZeroResult rejects the zero Result instead of dividing by
// zero size.
func TestScaleFactor_ZeroResult(t *testing.T) {
	_, err := pairstat.Result{}.ScaleFactor()
	assert.ErrorIs(t, err, pairstat.ErrTooFewElements)
}

// TestApply_SetsFactorOnlyOnSuccess covers both sides of the holder contract.
func TestApply_SetsFactorOnlyOnSuccess(t *testing.T) {
	h := &recordHolder{}

	// Success path: two-point case, factor = 1/4.125.
	res := pairstat.Result{Trace: 10, Mean: 3.5, Size: 2}
	factor, err := pairstat.Apply(h, res)
	assert.NoError(t, err)
	assert.Equal(t, 1.0/4.125, factor)
	assert.Equal(t, 1.0/4.125, h.factor)
	assert.Equal(t, 1, h.calls)

	// Degenerate path: holder must stay untouched.
	_, err = pairstat.Apply(h, pairstat.Result{Trace: 0, Mean: 0, Size: 3})
	assert.ErrorIs(t, err, pairstat.ErrDegenerateVariance)
	assert.Equal(t, 1, h.calls, "degenerate Apply must not write the holder")

	_, err = pairstat.Apply(nil, res)
	assert.ErrorIs(t, err, pairstat.ErrNilHolder)
}

// TestNormalize_EndToEnd normalizes a Gaussian kernel through the Scaled
// wrapper and verifies the resulting matrix has unit empirical variance.
func TestNormalize_EndToEnd(t *testing.T) {
	g, err := kernel.NewGaussian(0.3)
	assert.NoError(t, err)
	sc, err := kernel.NewScaled(g)
	assert.NoError(t, err)

	ds := randomVectors(50, 4, 29)

	res, err := pairstat.Normalize[[]float64](sc, sc.Base(), ds, nil)
	assert.NoError(t, err)
	assert.Positive(t, res.Trace)

	wantFactor, err := res.ScaleFactor()
	assert.NoError(t, err)
	assert.Equal(t, wantFactor, sc.Factor())

	// Recompute on the scaled kernel: trace/N - mean/N² must now be 1.
	scaled, err := pairstat.Compute[[]float64](sc, ds, nil)
	assert.NoError(t, err)
	nf := float64(scaled.Size)
	assert.InDelta(t, 1.0, scaled.Trace/nf-scaled.Mean/(nf*nf), 1e-9,
		"scaled kernel must have unit empirical variance")
}

// TestNormalize_DegenerateLeavesHolderUntouched is the fail-fast contract:
// no factor may be written when the statistics are meaningless.
func TestNormalize_DegenerateLeavesHolderUntouched(t *testing.T) {
	h := &recordHolder{}
	k := pairstat.EvalFunc[int](func(_, _ int) float64 { return 0 })
	ds := pairstat.SliceDataset[int]{0, 1}

	_, err := pairstat.Normalize[int](h, k, ds, nil)
	assert.ErrorIs(t, err, pairstat.ErrDegenerateVariance)
	assert.Zero(t, h.calls)
}

// TestNormalize_Validation covers the nil-holder and propagated Compute errors.
func TestNormalize_Validation(t *testing.T) {
	k := pairstat.EvalFunc[int](func(_, _ int) float64 { return 1 })

	_, err := pairstat.Normalize[int](nil, k, pairstat.SliceDataset[int]{0, 1}, nil)
	assert.ErrorIs(t, err, pairstat.ErrNilHolder)

	h := &recordHolder{}
	_, err = pairstat.Normalize[int](h, k, pairstat.SliceDataset[int]{0}, nil)
	assert.ErrorIs(t, err, pairstat.ErrTooFewElements)
	assert.Zero(t, h.calls)
}
