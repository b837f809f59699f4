package driver

import (
	"epfactor/factor"
	"epfactor/marginal"
	"epfactor/maxprec"
	"epfactor/oracle"
)

// Driver is the EPUpdateDriver (component E): the sequential-update
// primitive that orchestrates FactorRepresentation, MarginalState,
// MaxPrecisionIndex, and PotentialOracle for one factor at a time.
//
// A Driver holds non-owning references to the representation, marginals,
// oracle, and any indices it is given; it never copies them. Construction
// mode (univariate or bivariate-precision) is fixed for the Driver's
// lifetime.
type Driver struct {
	mode      oracle.Group
	factors   *factor.Representation
	marginals *marginal.State
	oracle    oracle.Oracle

	piMin, aMin, cMin float64

	piIndex *maxprec.Index
	aIndex  *maxprec.Index
	cIndex  *maxprec.Index

	// scratch holds 4*maxRowSize reused scalars: piCav, betaCav, piTilde,
	// betaTilde views, each re-sliced to the current factor's s_j. Not
	// cleared between calls; never observed externally.
	scratch []float64
}

// New constructs a univariate Driver. factors must have Mode() ==
// factor.Univariate; piMin must be > 0. idx is an optional
// MaxPrecisionIndex enabling selective damping; pass nil to disable it.
func New(factors *factor.Representation, marginals *marginal.State, piMin float64, o oracle.Oracle, idx *maxprec.Index) (*Driver, error) {
	if err := validateCommon(factors, marginals, o); err != nil {
		return nil, err
	}
	if factors.Mode() != factor.Univariate {
		return nil, ErrModeMismatch
	}
	if piMin <= 0 {
		return nil, ErrNonPositiveThreshold
	}
	if err := validateIndex(idx, factors.NumVariables()); err != nil {
		return nil, err
	}

	return &Driver{
		mode:      oracle.Univariate,
		factors:   factors,
		marginals: marginals,
		oracle:    o,
		piMin:     piMin,
		piIndex:   idx,
		scratch:   make([]float64, 4*maxRowSize(factors)),
	}, nil
}

// NewBivariatePrecision constructs a bivariate-precision Driver. factors
// must have Mode() == factor.BivariatePrecision; piMin, aMin, cMin must
// each be > 0. piIdx/aIdx/cIdx are optional MaxPrecisionIndex instances
// (over variables, and over precision variables respectively) enabling
// selective damping on pi, a, and c independently; pass nil to disable any
// of them.
func NewBivariatePrecision(
	factors *factor.Representation,
	marginals *marginal.State,
	piMin, aMin, cMin float64,
	o oracle.Oracle,
	piIdx, aIdx, cIdx *maxprec.Index,
) (*Driver, error) {
	if err := validateCommon(factors, marginals, o); err != nil {
		return nil, err
	}
	if factors.Mode() != factor.BivariatePrecision {
		return nil, ErrModeMismatch
	}
	if piMin <= 0 || aMin <= 0 || cMin <= 0 {
		return nil, ErrNonPositiveThreshold
	}
	if factors.NumPrecVars() != marginals.NumPrecVars() {
		return nil, ErrDimensionMismatch
	}
	if err := validateIndex(piIdx, factors.NumVariables()); err != nil {
		return nil, err
	}
	if err := validateIndex(aIdx, factors.NumPrecVars()); err != nil {
		return nil, err
	}
	if err := validateIndex(cIdx, factors.NumPrecVars()); err != nil {
		return nil, err
	}

	return &Driver{
		mode:      oracle.BivariatePrecision,
		factors:   factors,
		marginals: marginals,
		oracle:    o,
		piMin:     piMin,
		aMin:      aMin,
		cMin:      cMin,
		piIndex:   piIdx,
		aIndex:    aIdx,
		cIndex:    cIdx,
		scratch:   make([]float64, 4*maxRowSize(factors)),
	}, nil
}

func validateCommon(factors *factor.Representation, marginals *marginal.State, o oracle.Oracle) error {
	if factors == nil {
		return ErrNilFactors
	}
	if marginals == nil {
		return ErrNilMarginals
	}
	if o == nil {
		return ErrNilOracle
	}
	if factors.NumVariables() != marginals.NumVariables() {
		return ErrDimensionMismatch
	}

	return nil
}

func validateIndex(idx *maxprec.Index, n int) error {
	if idx == nil {
		return nil
	}
	if idx.NumVariables() != n {
		return ErrIndexDimensionMismatch
	}

	return nil
}

func maxRowSize(factors *factor.Representation) int {
	max := 0
	for j := 0; j < factors.NumPotentials(); j++ {
		s, _ := factors.RowSize(j)
		if s > max {
			max = s
		}
	}

	return max
}
