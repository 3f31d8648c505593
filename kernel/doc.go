// Package kernel provides symmetric similarity evaluators over float64
// vectors and the Scaled wrapper that owns a kernel's multiplicative factor.
//
// Available kernels:
//   - Linear       — ⟨x, y⟩
//   - Gaussian     — exp(−γ·‖x−y‖²), NewGaussian(gamma)
//   - Polynomial   — (⟨x, y⟩ + offset)^degree, NewPolynomial(degree, offset)
//   - Func         — adapt any func(x, y []float64) float64
//   - Scaled       — factor · base.Eval(x, y), the factor target for
//     pairstat.Normalize
//
// All kernels are symmetric and deterministic. Dimension mismatches yield
// NaN rather than a fake similarity; NaN propagates silently downstream.
package kernel
