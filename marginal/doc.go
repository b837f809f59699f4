// Package marginal provides the MarginalState: direct-addressable vectors of
// aggregate marginals (pi, beta over variables; a, c over precision
// variables). It carries no algorithmic behavior of its own — maintaining
// the reconstruction invariant (pi_i == sum of incoming pi_{ji}) is the
// driver's responsibility, not this package's.
package marginal
