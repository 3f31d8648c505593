package kernel

// Scaled wraps a base kernel with a multiplicative factor:
//
//	Eval(x, y) = Factor() · base.Eval(x, y)
//
// The factor starts at 1 and is owned by the wrapper; it satisfies
// pairstat.ScaleHolder, so pairstat.Normalize can install the
// unit-variance factor directly:
//
//	sc, _ := kernel.NewScaled(base)
//	res, err := pairstat.Normalize(sc, sc.Base(), ds, nil)
//
// Note Normalize must evaluate the BASE kernel (sc.Base()), not sc itself —
// otherwise a previously installed factor would fold into the statistics.
//
// Scaled is not safe for concurrent SetFactor against concurrent Eval.
type Scaled struct {
	base   Kernel
	factor float64
}

// NewScaled wraps base with factor 1 (ErrNilKernel on nil base).
func NewScaled(base Kernel) (*Scaled, error) {
	if base == nil {
		return nil, ErrNilKernel
	}

	return &Scaled{base: base, factor: 1}, nil
}

// Eval returns Factor() · base.Eval(x, y).
func (s *Scaled) Eval(x, y []float64) float64 {
	return s.factor * s.base.Eval(x, y)
}

// Base exposes the unscaled kernel.
func (s *Scaled) Base() Kernel { return s.base }

// Factor reports the current multiplicative factor.
func (s *Scaled) Factor() float64 { return s.factor }

// SetFactor replaces the multiplicative factor.
func (s *Scaled) SetFactor(factor float64) { s.factor = factor }
