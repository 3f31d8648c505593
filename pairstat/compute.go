// SPDX-License-Identifier: MIT
// Package pairstat: blocked trace & mean of an implicit symmetric kernel matrix.
//
// Purpose:
//   - Compute the trace and the full-matrix mean of the N×N matrix
//     K[i,j] = k.Eval(ds.At(i), ds.At(j)) without materializing it,
//     with exactly one evaluation per unordered pair (N(N+1)/2 calls total)
//     and O(1) extra memory.
//
// Determinism & Performance:
//   - Fixed tile order (ForEachBlockPair) and fixed inner i→j loops.
//   - The inner loop runs over the nearer index so consecutive evaluations
//     reuse recently touched elements — a locality concern only; any order
//     that visits each unordered pair once accumulates the same sums up to
//     floating-point summation order.
//   - Workers > 1 assigns each block-pair unit its own partial accumulator
//     and reduces the partials in unit order, so the result does not depend
//     on goroutine scheduling.

package pairstat

import "golang.org/x/sync/errgroup"

// Compute returns the trace and mean of the implicit kernel matrix over ds.
// It is a pure function: no state is kept, nothing external is mutated.
// Deriving and applying the unit-variance factor are separate, explicit
// steps (Result.ScaleFactor, Apply, Normalize).
//
// Inputs:
//   - k:    symmetric evaluator; never called more than once per unordered pair.
//   - ds:   dataset with Len() >= 2; borrowed read-only for the call.
//   - opts: nil selects DefaultOptions().
//
// Returns:
//   - Result{Trace, Mean, Size} where Trace = Σ_i k(x_i,x_i) and
//     Mean = (1/N²)·Σ_{i,j} k(x_i,x_j), diagonal included.
//
// Errors:
//   - ErrNilKernel / ErrNilDataset — missing collaborator.
//   - ErrBadBlockSize / ErrBadWorkers — invalid Options.
//   - ErrTooFewElements — ds.Len() < 2, detected before any evaluation.
//
// Complexity:
//   - Time O(N²) with exactly N(N+1)/2 evaluator calls; Space O(1)
//     (O(#tiles²) transient partials when Workers > 1).
//
// AI-Hints:
//   - BlockSize tunes cache locality only; results are invariant under it.
//   - NaN/Inf from the evaluator propagate silently into Trace/Mean.
func Compute[T any](k Kernel[T], ds Dataset[T], opts *Options) (Result, error) {
	o, err := opts.resolved()
	if err != nil {
		return Result{}, err
	}
	if k == nil {
		return Result{}, ErrNilKernel
	}
	if ds == nil {
		return Result{}, ErrNilDataset
	}

	n := ds.Len()
	if n < 2 {
		return Result{}, ErrTooFewElements
	}

	var trace, raw float64
	if o.Workers > 1 {
		trace, raw = computeParallel(k, ds, n, o.BlockSize, o.Workers)
	} else {
		trace, raw = computeSequential(k, ds, n, o.BlockSize)
	}

	// raw holds Σ_{i<=j} k(x_i,x_j) with the diagonal half-weighted; doubling
	// it counts every matrix entry exactly once, /N² finishes the average.
	nf := float64(n)

	return Result{Trace: trace, Mean: raw * 2 / (nf * nf), Size: n}, nil
}

// computeSequential runs the tiled traversal on the calling goroutine.
// It returns the trace and the half-weighted upper-triangle sum.
func computeSequential[T any](k Kernel[T], ds Dataset[T], n, block int) (trace, raw float64) {
	// Inputs are pre-validated by Compute; the iterator cannot fail here.
	_ = ForEachBlockPair(n, block,
		func(lo, hi int) {
			t, m := accumulateDiagonal(k, ds, lo, hi)
			trace += t
			raw += m
		},
		func(rowLo, rowHi, colLo, colHi int) {
			raw += accumulateRect(k, ds, rowLo, rowHi, colLo, colHi)
		})

	return trace, raw
}

// unit is one independently computable piece of the traversal: a diagonal
// tile (diag=true, colLo/colHi mirror rowLo/rowHi) or an off-diagonal
// rectangle.
type unit struct {
	rowLo, rowHi, colLo, colHi int
	diag                       bool
}

// partial is one unit's contribution to the global sums.
type partial struct {
	trace, raw float64
}

// computeParallel fans the block-pair units out over at most workers
// goroutines. Each unit owns its slot in partials, so no locking is needed;
// the final reduction runs in unit order, keeping the result independent of
// scheduling (up to nothing — the summation order is fixed).
func computeParallel[T any](k Kernel[T], ds Dataset[T], n, block, workers int) (trace, raw float64) {
	var units []unit
	_ = ForEachBlockPair(n, block,
		func(lo, hi int) {
			units = append(units, unit{rowLo: lo, rowHi: hi, colLo: lo, colHi: hi, diag: true})
		},
		func(rowLo, rowHi, colLo, colHi int) {
			units = append(units, unit{rowLo: rowLo, rowHi: rowHi, colLo: colLo, colHi: colHi})
		})

	partials := make([]partial, len(units))
	g := new(errgroup.Group)
	g.SetLimit(workers)
	for idx, u := range units {
		idx, u := idx, u
		g.Go(func() error {
			if u.diag {
				t, m := accumulateDiagonal(k, ds, u.rowLo, u.rowHi)
				partials[idx] = partial{trace: t, raw: m}
			} else {
				partials[idx] = partial{raw: accumulateRect(k, ds, u.rowLo, u.rowHi, u.colLo, u.colHi)}
			}

			return nil
		})
	}
	_ = g.Wait() // units never fail; Wait only fences the goroutines

	for _, p := range partials { // deterministic reduction, unit order
		trace += p.trace
		raw += p.raw
	}

	return trace, raw
}

// accumulateDiagonal sums one diagonal tile [lo,hi): the strict lower
// triangle in full and each diagonal entry once — half-weighted into the
// mean accumulator so the global doubling step counts it exactly once, and
// fully into the trace.
func accumulateDiagonal[T any](k Kernel[T], ds Dataset[T], lo, hi int) (trace, raw float64) {
	var (
		xi T
		d  float64
	)
	for i := lo; i < hi; i++ {
		xi = ds.At(i)
		for j := lo; j < i; j++ {
			raw += k.Eval(xi, ds.At(j))
		}
		d = k.Eval(xi, xi)
		raw += 0.5 * d
		trace += d
	}

	return trace, raw
}

// accumulateRect sums a full off-diagonal rectangle: every (row, col) pair
// is a distinct unordered pair, visited exactly once because the iterator
// only yields rectangles with colLo < rowLo.
func accumulateRect[T any](k Kernel[T], ds Dataset[T], rowLo, rowHi, colLo, colHi int) (raw float64) {
	var xi T
	for i := rowLo; i < rowHi; i++ {
		xi = ds.At(i)
		for j := colLo; j < colHi; j++ {
			raw += k.Eval(xi, ds.At(j))
		}
	}

	return raw
}
