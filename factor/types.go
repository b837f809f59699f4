package factor

// Mode selects which family of potentials a Representation stores messages for.
// It is fixed at construction and never changes.
type Mode int

const (
	// Univariate stores only (pi, beta) messages per (factor, variable) pair.
	Univariate Mode = iota

	// BivariatePrecision additionally stores a per-factor (a, c) precision
	// message and a fixed k(j): factor -> precision-variable map.
	BivariatePrecision
)

// String renders the Mode for diagnostics and test failure messages.
func (m Mode) String() string {
	switch m {
	case Univariate:
		return "Univariate"
	case BivariatePrecision:
		return "BivariatePrecision"
	default:
		return "Mode(unknown)"
	}
}

// Row is one factor's support set V_j and coefficients b_{j,i}, in the fixed
// order that also indexes that factor's message arrays. Vars and Coefs must
// have equal length; Vars entries must be distinct and within [0, n).
type Row struct {
	Vars  []int     // V_j: variable indices touched by this factor, in message order
	Coefs []float64 // b_{j,i}: coefficient for Vars[ii], same order
}

// Representation is the sparse, row-oriented FactorRepresentation (component A):
// the design matrix B plus the current message parameters for every factor.
// All rows are immutable after construction; message arrays are mutated
// through SetMessage / SetPrecisionMessage or the live slices from Messages.
type Representation struct {
	mode Mode
	n    int // number of variables
	k    int // number of precision variables (0 unless BivariatePrecision)

	rows []Row // rows[j] == (V_j, b_{j,.}), immutable after New

	pi   [][]float64 // pi[j][ii] == pi_{j,Vars[ii]}
	beta [][]float64 // beta[j][ii] == beta_{j,Vars[ii]}

	// Bivariate-precision extension; nil/empty when mode == Univariate.
	a   []float64 // a[j] == a_{j,k(j)}
	c   []float64 // c[j] == c_{j,k(j)}
	kOf []int     // kOf[j] == k(j)
}
