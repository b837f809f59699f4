// Package factor provides the FactorRepresentation: a sparse, row-oriented
// store of the design matrix B and the per-factor message parameters that
// an EP update driver reads and mutates.
//
// For each factor j, a Row holds the ordered support V_j (variable indices)
// and coefficients b_{j,i}. Row order is fixed at construction — the same
// order indexes the per-factor message arrays Pi/Beta returned by Messages.
// Rows are immutable after construction, as is the bivariate-precision k(j)
// map; only the message arrays (and, in the bivariate-precision extension,
// the per-factor precision message) may change, through SetMessage /
// SetPrecisionMessage or the live slices returned by Messages.
//
// A Representation knows nothing about marginals or cavities — it is pure
// storage plus bounds-checked accessors, in the spirit of matrix.Dense: no
// hidden algorithmic behavior lives here.
package factor
