package pairstat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/kernelnorm/pairstat"
)

// pairKey orders an index pair as (hi, lo) so unordered pairs compare equal.
type pairKey struct{ hi, lo int }

func key(i, j int) pairKey {
	if i < j {
		i, j = j, i
	}

	return pairKey{hi: i, lo: j}
}

// coverage expands the block-level callbacks of ForEachBlockPair into the
// individual index pairs they delegate, counting visits per unordered pair.
func coverage(t *testing.T, n, block int) map[pairKey]int {
	t.Helper()
	seen := make(map[pairKey]int)

	err := pairstat.ForEachBlockPair(n, block,
		func(lo, hi int) {
			for i := lo; i < hi; i++ {
				for j := lo; j <= i; j++ {
					seen[key(i, j)]++
				}
			}
		},
		func(rowLo, rowHi, colLo, colHi int) {
			assert.Less(t, colLo, rowLo, "column tiles must precede the row tile")
			for i := rowLo; i < rowHi; i++ {
				for j := colLo; j < colHi; j++ {
					seen[key(i, j)]++
				}
			}
		})
	assert.NoError(t, err)

	return seen
}

// TestForEachBlockPair_ExactCoverage verifies that every unordered pair of
// [0,n) — diagonal included — is delegated exactly once, for divisible and
// non-divisible block sizes alike.
func TestForEachBlockPair_ExactCoverage(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 64, 65, 130} {
		for _, block := range []int{1, 3, 64, 100} {
			seen := coverage(t, n, block)

			assert.Len(t, seen, n*(n+1)/2, "n=%d block=%d pair count", n, block)
			for i := 0; i < n; i++ {
				for j := 0; j <= i; j++ {
					assert.Equal(t, 1, seen[key(i, j)],
						"n=%d block=%d pair (%d,%d) visited once", n, block, i, j)
				}
			}
		}
	}
}

// TestForEachBlockPair_Validation covers the argument sentinels.
func TestForEachBlockPair_Validation(t *testing.T) {
	err := pairstat.ForEachBlockPair(-1, 4, nil, nil)
	assert.ErrorIs(t, err, pairstat.ErrBadLength)

	err = pairstat.ForEachBlockPair(4, 0, nil, nil)
	assert.ErrorIs(t, err, pairstat.ErrBadBlockSize)
}

// TestForEachBlockPair_NilCallbacks confirms either callback may be skipped.
func TestForEachBlockPair_NilCallbacks(t *testing.T) {
	var rects int
	err := pairstat.ForEachBlockPair(10, 3, nil,
		func(_, _, _, _ int) { rects++ })
	assert.NoError(t, err)
	assert.Equal(t, 6, rects, "4 tiles yield 4·3/2 off-diagonal rectangles")

	var diags int
	err = pairstat.ForEachBlockPair(10, 3,
		func(_, _ int) { diags++ }, nil)
	assert.NoError(t, err)
	assert.Equal(t, 4, diags, "ceil(10/3) diagonal tiles")
}
