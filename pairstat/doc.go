// Package pairstat computes the trace and mean of an implicit N×N symmetric
// kernel matrix in a single cache-blocked pass, and turns them into the
// multiplicative factor that normalizes the kernel to unit empirical
// variance over the dataset.
//
// 🚀 What does pairstat do?
//
//	Given a symmetric evaluator k and a dataset x_0..x_{N-1} it computes
//	  trace = Σ_i k(x_i, x_i)
//	  mean  = (1/N²) Σ_{i,j} k(x_i, x_j)
//	by evaluating ONLY the upper triangle (diagonal included) — exactly
//	N(N+1)/2 evaluator calls, never materializing the matrix — and derives
//	  factor = 1 / (trace/N − mean/N²)
//	following the multiplicative kernel scaling of
//	"Kloft, Brefeld, Sonnenburg, Zien: l_p-Norm Multiple Kernel Learning.
//	JMLR 12, 2011."
//
// ✨ Key features:
//   - exact evaluation budget: one call per unordered pair, asserted by tests
//   - cache-blocked traversal (tile side Options.BlockSize, default 64);
//     any positive tile side yields the same result
//   - optional bounded parallelism (Options.Workers) with a deterministic
//     reduction — block-pair units are embarrassingly parallel
//   - pure computation (Compute) split from the explicit side effect
//     (Apply/Normalize) on the kernel's ScaleHolder
//   - sentinel errors: ErrTooFewElements, ErrDegenerateVariance, ...
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/kernelnorm/pairstat"
//
//	ds := pairstat.SliceDataset[[]float64](points)
//	res, err := pairstat.Compute(k, ds, nil) // nil → DefaultOptions()
//	if err != nil { ... }
//	factor, err := res.ScaleFactor()         // ErrDegenerateVariance if ≤ 0
//	_, err = pairstat.Apply(holder, res)     // explicit mutation step
//
// Performance:
//
//   - Time:   O(N²) — N(N+1)/2 evaluator calls dominate
//   - Memory: O(1) extra (O(#tiles²) transient partials when Workers > 1)
//
// See example_test.go for runnable scenarios and compute_test.go for the
// invariance properties (pair count, permutation, block size, workers).
package pairstat
