// SPDX-License-Identifier: MIT
// Package pairstat: tiled iteration over the unordered pairs of [0,n).
//
// The pattern — "visit each unordered pair of a symmetric relation exactly
// once, with a tiling that favors data locality" — is more general than the
// trace/mean statistic, so it lives here as a reusable utility rather than
// inlined in Compute.

package pairstat

// ForEachBlockPair partitions the index range [0,n) into consecutive tiles
// of side block (the last tile may be shorter when n is not a multiple of
// block) and visits every unordered tile pair exactly once:
//
//   - diagonal(lo, hi) is invoked once per tile [lo,hi) paired with itself;
//     the callback owns the triangular lo<=j<=i<hi sub-iteration.
//   - offDiagonal(rowLo, rowHi, colLo, colHi) is invoked once per pair of
//     distinct tiles with colLo < rowLo; every (row, col) cross pair inside
//     the rectangle is a genuinely distinct unordered index pair.
//
// Visitation order is fixed: tiles in ascending order, each tile's diagonal
// callback first, then its off-diagonal rectangles with ascending column
// tile. The column tiles of an off-diagonal rectangle are always full.
// Either callback may be nil to skip that shape.
//
// Errors:
//   - ErrBadLength    — n < 0.
//   - ErrBadBlockSize — block < 1.
//
// Complexity: O(#tiles²) callback invocations, O(1) space.
func ForEachBlockPair(
	n, block int,
	diagonal func(lo, hi int),
	offDiagonal func(rowLo, rowHi, colLo, colHi int),
) error {
	if n < 0 {
		return ErrBadLength
	}
	if block < 1 {
		return ErrBadBlockSize
	}

	var rowLo, rowHi, colLo int
	for rowLo = 0; rowLo < n; rowLo += block {
		rowHi = min(rowLo+block, n)
		if diagonal != nil {
			diagonal(rowLo, rowHi)
		}
		if offDiagonal == nil {
			continue
		}
		for colLo = 0; colLo < rowLo; colLo += block {
			offDiagonal(rowLo, rowHi, colLo, colLo+block)
		}
	}

	return nil
}
