package oracle

// FixedOracle is a scriptable Oracle test double: GroupOf and Compute are
// caller-supplied closures, in the same spirit as the OnVisit/OnEnqueue
// hooks used to customize traversal algorithms elsewhere in this corpus.
// It exists to drive the EP update driver through status codes and
// scenarios (moment-matching failure, bivariate precision, selective
// damping) that a real potential library would otherwise be needed for.
type FixedOracle struct {
	GroupOf func(j int) Group
	Compute func(j int, inputs []float64) (ok bool, outputs []float64)
}

// Group delegates to GroupOf, defaulting to Univariate if unset.
func (o *FixedOracle) Group(j int) Group {
	if o.GroupOf == nil {
		return Univariate
	}

	return o.GroupOf(j)
}

// ComputeMoments delegates to Compute, failing closed (ok=false) if unset.
func (o *FixedOracle) ComputeMoments(j int, inputs []float64) (bool, []float64) {
	if o.Compute == nil {
		return false, nil
	}

	return o.Compute(j, inputs)
}
