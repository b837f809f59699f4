// Package oracle defines the PotentialOracle contract consumed by the EP
// update driver (component D, out of scope per the system specification:
// the moment-matching primitives themselves — quadrature, potential
// registries — belong to an external potential library).
//
// Oracle is the thin capability interface the driver calls into:
// Group reports whether a factor expects univariate or bivariate-precision
// moment matching, and ComputeMoments performs it. Two implementations ship
// alongside the interface so the rest of this module is testable without a
// real potential library:
//
//   - GaussianOracle: an exact, closed-form oracle for quadratic potentials,
//     used by the single-Gaussian-factor scenarios.
//   - FixedOracle: a scriptable test double driven by a caller-supplied
//     function, used to exercise driver status codes (NumericalError,
//     selective-damping paths, bivariate precision) without modeling a real
//     potential family.
package oracle
