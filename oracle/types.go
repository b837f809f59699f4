package oracle

// Group classifies the potential family a factor belongs to. The driver's
// construction mode must match Group(j) for every factor j it updates.
type Group int

const (
	// Univariate potentials depend only on s_j = b_j . x.
	Univariate Group = iota

	// BivariatePrecision potentials additionally depend on a precision
	// variable tau_{k(j)}.
	BivariatePrecision
)

// String renders the Group for diagnostics and test failure messages.
func (g Group) String() string {
	switch g {
	case Univariate:
		return "Univariate"
	case BivariatePrecision:
		return "BivariatePrecision"
	default:
		return "Group(unknown)"
	}
}

// Oracle is the external moment-matching collaborator (component D).
//
// ComputeMoments performs local moment matching for factor j against the
// supplied cavity:
//
//   - Univariate:          inputs = [hbar, rhobar],            outputs = [alpha, nu]
//   - BivariatePrecision:   inputs = [hbar, rhobar, abar, cbar], outputs = [alpha, nu, ahat, chat]
//
// ok == false signals moment-matching failure; the driver must then return
// NumericalError without mutating any state. An extra, optional output
// (log-partition) may be appended by implementations; the driver ignores
// anything beyond the outputs documented above.
type Oracle interface {
	Group(j int) Group
	ComputeMoments(j int, inputs []float64) (ok bool, outputs []float64)
}
