package oracle

// GaussianOracle is a reference Oracle for exact quadratic potentials
//
//	t_j(s) = exp(-0.5 * Gamma[j] * (s - Mean[j])^2)
//
// Because a Gaussian potential convolved with a Gaussian cavity is itself
// Gaussian, no quadrature or iterative moment matching is needed: the
// tilted distribution's natural-parameter contribution is exactly
//
//	nu    = Gamma[j]
//	alpha = Gamma[j] * Mean[j]
//
// independent of the cavity (hbar, rhobar). This is what scenario S1 (a
// single Gaussian factor) exercises.
type GaussianOracle struct {
	Gamma []float64 // per-factor potential precision, Gamma[j] > 0
	Mean  []float64 // per-factor potential mean, Mean[j]
}

// NewGaussianOracle builds a GaussianOracle for m factors, all initialized
// to Gamma=0, Mean=0 (an improper, all-accepting potential); callers set the
// per-factor fields directly before use.
func NewGaussianOracle(m int) *GaussianOracle {
	return &GaussianOracle{
		Gamma: make([]float64, m),
		Mean:  make([]float64, m),
	}
}

// Group always reports Univariate: GaussianOracle does not model the
// bivariate-precision extension.
func (o *GaussianOracle) Group(j int) Group { return Univariate }

// ComputeMoments ignores the cavity (see type doc for why that is exact for
// a Gaussian potential) and returns the closed-form (alpha, nu).
func (o *GaussianOracle) ComputeMoments(j int, inputs []float64) (bool, []float64) {
	if j < 0 || j >= len(o.Gamma) {
		return false, nil
	}

	return true, []float64{o.Gamma[j] * o.Mean[j], o.Gamma[j]}
}
