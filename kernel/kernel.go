package kernel

import "math"

// Kernel is a symmetric real-valued similarity over float64 vectors.
// Every implementation in this package guarantees Eval(x, y) == Eval(y, x).
//
// Vectors must be non-empty and share the same dimension; a mismatch yields
// NaN, which propagates silently through downstream statistics rather than
// being masked by a fake similarity value.
type Kernel interface {
	// Eval returns the similarity of x and y.
	Eval(x, y []float64) float64
}

// Func adapts an ordinary function to the Kernel interface.
//
// Example:
//
//	k := kernel.Func(func(x, y []float64) float64 { return x[0] * y[0] })
type Func func(x, y []float64) float64

// Eval calls f(x, y).
func (f Func) Eval(x, y []float64) float64 { return f(x, y) }

// Linear is the plain dot-product kernel ⟨x, y⟩.
// No normalization is applied, so values depend on vector magnitudes.
type Linear struct{}

// Eval returns ⟨x, y⟩, or NaN on dimension mismatch.
func (Linear) Eval(x, y []float64) float64 { return dot(x, y) }

// Gaussian is the RBF kernel exp(−γ·‖x−y‖²) with bandwidth γ > 0.
// Construct via NewGaussian; the zero value is unusable.
type Gaussian struct {
	gamma float64
}

// NewGaussian returns a Gaussian RBF kernel with bandwidth gamma.
// gamma must be finite and strictly positive (ErrBadGamma otherwise).
func NewGaussian(gamma float64) (*Gaussian, error) {
	if !isFinite(gamma) || gamma <= 0 {
		return nil, ErrBadGamma
	}

	return &Gaussian{gamma: gamma}, nil
}

// Gamma reports the bandwidth.
func (g *Gaussian) Gamma() float64 { return g.gamma }

// Eval returns exp(−γ·‖x−y‖²), or NaN on dimension mismatch.
// Self-similarity is exactly 1 for any vector.
func (g *Gaussian) Eval(x, y []float64) float64 {
	return math.Exp(-g.gamma * squaredDistance(x, y))
}

// Polynomial is the kernel (⟨x, y⟩ + offset)^degree.
// Construct via NewPolynomial; the zero value is unusable.
type Polynomial struct {
	degree int
	offset float64
}

// NewPolynomial returns a polynomial kernel of the given degree (>= 1,
// ErrBadDegree otherwise) and offset (finite, >= 0, ErrBadOffset otherwise).
// offset = 0 gives the homogeneous form.
func NewPolynomial(degree int, offset float64) (*Polynomial, error) {
	if degree < 1 {
		return nil, ErrBadDegree
	}
	if !isFinite(offset) || offset < 0 {
		return nil, ErrBadOffset
	}

	return &Polynomial{degree: degree, offset: offset}, nil
}

// Degree reports the exponent.
func (p *Polynomial) Degree() int { return p.degree }

// Offset reports the additive offset.
func (p *Polynomial) Offset() float64 { return p.offset }

// Eval returns (⟨x, y⟩ + offset)^degree, or NaN on dimension mismatch.
func (p *Polynomial) Eval(x, y []float64) float64 {
	return math.Pow(dot(x, y)+p.offset, float64(p.degree))
}

// dot returns ⟨x, y⟩, or NaN when the vectors are empty or of unequal length.
func dot(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return math.NaN()
	}

	var s float64
	for i := range x {
		s += x[i] * y[i]
	}

	return s
}

// squaredDistance returns ‖x−y‖², or NaN when the vectors are empty or of
// unequal length.
func squaredDistance(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return math.NaN()
	}

	var s, d float64
	for i := range x {
		d = x[i] - y[i]
		s += d * d
	}

	return s
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
