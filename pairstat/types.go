// Package pairstat defines the collaborator contracts and result types for
// symmetric pair statistics.
package pairstat

// Dataset is an ordered, indexable collection of N opaque elements.
// It is read-only to this package: computations only borrow it for the
// duration of one call and never mutate it.
//
// Contract:
//   - Len() returns N >= 0.
//   - At(i) is valid for 0 <= i < Len() and must be O(1).
type Dataset[T any] interface {
	// Len reports the number of elements.
	Len() int
	// At returns the element at index i, 0 <= i < Len().
	At(i int) T
}

// SliceDataset adapts a plain slice to the Dataset interface.
//
// Example:
//
//	ds := pairstat.SliceDataset[[]float64]{{1, 0}, {0, 1}}
type SliceDataset[T any] []T

// Len reports the number of elements.
func (s SliceDataset[T]) Len() int { return len(s) }

// At returns the element at index i.
func (s SliceDataset[T]) At(i int) T { return s[i] }

// Kernel is a symmetric real-valued similarity evaluator:
// Eval(a, b) == Eval(b, a) on valid inputs, deterministic for fixed inputs.
// NaN/Inf outputs are not intercepted — they propagate silently into the
// accumulated statistics.
type Kernel[T any] interface {
	// Eval returns the similarity of a and b.
	Eval(a, b T) float64
}

// EvalFunc adapts an ordinary function to the Kernel interface,
// in the spirit of http.HandlerFunc.
type EvalFunc[T any] func(a, b T) float64

// Eval calls f(a, b).
func (f EvalFunc[T]) Eval(a, b T) float64 { return f(a, b) }

// Result holds the two scalar statistics of the implicit N×N kernel matrix.
// It is a plain value: produced fresh by each Compute call, immutable
// afterwards.
type Result struct {
	// Trace is Σ_i Eval(x_i, x_i) — the sum of the diagonal entries.
	Trace float64

	// Mean is the full-matrix average (1/N²)·Σ_{i,j} Eval(x_i, x_j),
	// diagonal included.
	Mean float64

	// Size is the dataset size N the statistics were computed over.
	Size int
}

// ScaleHolder is the external object that owns the kernel's multiplicative
// factor. pairstat never reads it back; Apply/Normalize only write the
// derived factor into it, and only on success.
type ScaleHolder interface {
	// SetFactor replaces the holder's multiplicative factor.
	SetFactor(factor float64)
}
