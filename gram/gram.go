// SPDX-License-Identifier: MIT
// Package gram: explicit dense symmetric (Gram) matrices.
//
// Purpose:
//   - Materialize a symmetric n×n matrix from an index-based entry function,
//     evaluating each unordered pair exactly once and mirroring.
//   - Provide the straightforward O(n²)-memory reductions (trace, mean,
//     variance) used to cross-check the streaming pairstat traversal and to
//     inspect small kernel matrices directly.
//
// Determinism & Performance:
//   - Row-major flat buffer, fixed i→j fill order.
//   - Build performs n(n+1)/2 eval calls; reductions are loop-only, no
//     allocations.

package gram

// Matrix is a dense symmetric n×n matrix over a row-major flat buffer.
// Construct via Build; the zero value is an empty 0×0 matrix.
type Matrix struct {
	n    int
	data []float64
}

// Build materializes the symmetric matrix M[i,j] = eval(i, j) for
// 0 <= j <= i < n. The strict upper triangle is mirrored from the lower one,
// so eval runs exactly n(n+1)/2 times and is never asked for j > i;
// symmetry of the source relation is assumed, not verified.
//
// Errors:
//   - ErrBadSize — n < 0.
//   - ErrNilEval — eval is nil.
//
// Complexity: Time O(n²), Space O(n²).
func Build(n int, eval func(i, j int) float64) (*Matrix, error) {
	if n < 0 {
		return nil, ErrBadSize
	}
	if eval == nil {
		return nil, ErrNilEval
	}

	m := &Matrix{n: n, data: make([]float64, n*n)}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		base := i * n // cache row base offset
		for j = 0; j <= i; j++ {
			v = eval(i, j)
			m.data[base+j] = v
			m.data[j*n+i] = v // mirror into the upper triangle
		}
	}

	return m, nil
}

// Size reports n.
func (m *Matrix) Size() int { return m.n }

// At returns M[i,j], or ErrOutOfRange when an index is outside [0,n).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrOutOfRange
	}

	return m.data[i*m.n+j], nil
}

// Trace returns Σ_i M[i,i] (0 for an empty matrix).
func (m *Matrix) Trace() float64 {
	var t float64
	for i := 0; i < m.n; i++ {
		t += m.data[i*m.n+i]
	}

	return t
}

// Mean returns the average over all n² entries (0 for an empty matrix).
func (m *Matrix) Mean() float64 {
	if m.n == 0 {
		return 0
	}

	var s float64
	for _, v := range m.data { // flat buffer, fixed order
		s += v
	}

	return s / float64(len(m.data))
}

// Variance returns Trace/n − Mean/n², the empirical variance statistic the
// unit-variance scale factor is derived from (0 for an empty matrix).
func (m *Matrix) Variance() float64 {
	if m.n == 0 {
		return 0
	}
	nf := float64(m.n)

	return m.Trace()/nf - m.Mean()/(nf*nf)
}
