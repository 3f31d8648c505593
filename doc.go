// Package kernelnorm normalizes symmetric pairwise-similarity (kernel)
// functions to unit empirical variance over a dataset — without ever
// materializing the kernel matrix.
//
// 🚀 What is kernelnorm?
//
//	A small, deterministic, allocation-light library that brings together:
//		• pairstat/ — blocked single-pass trace & mean of the implicit N×N
//		  kernel matrix, one evaluation per unordered pair, O(1) extra memory
//		• kernel/   — ready-made vector kernels (linear, Gaussian RBF,
//		  polynomial) plus the Scaled wrapper that owns the factor
//		• gram/     — explicit dense Gram matrix for small N and for
//		  cross-checking the streaming statistics
//
// ✨ Why choose kernelnorm?
//
//   - Exact evaluation budget – N(N+1)/2 kernel calls, never one more
//   - Deterministic – fixed traversal order, reproducible reductions,
//     even with Workers > 1
//   - Pure Go – no cgo, no hidden machinery
//   - Honest errors – sentinel errors and errors.Is, no panics on
//     user-triggered conditions
//
// Quick sketch:
//
//	k, _ := kernel.NewGaussian(0.5)            // base kernel
//	sc, _ := kernel.NewScaled(k)               // factor-owning wrapper
//	ds := pairstat.SliceDataset[[]float64](points)
//
//	res, err := pairstat.Normalize(sc, sc.Base(), ds, nil)
//	// sc now evaluates with factor 1/(trace/N - mean/N²)
//	_ = res.Trace // retained statistics
//
// Dive into each package's doc.go for the full contract, and into
// example_test.go files for runnable scenarios.
package kernelnorm
