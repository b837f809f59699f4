package marginal

// State holds the aggregate marginals (component B): Pi/Beta over the n
// variables, and APrec/CPrec over the K precision variables (empty when K
// is 0, i.e. for a purely univariate model). All fields are direct-addressable
// by index and are the live storage — a driver mutates them in place during
// SequentialUpdate's commit step.
type State struct {
	Pi   []float64 // Pi[i] == pi_i == sum_j pi_{ji}
	Beta []float64 // Beta[i] == beta_i == sum_j beta_{ji}

	APrec []float64 // APrec[k] == a_k == sum_{j: k(j)=k} a_j
	CPrec []float64 // CPrec[k] == c_k == sum_{j: k(j)=k} c_j
}

// New allocates a zeroed State for n variables and k precision variables.
// Pass k == 0 for a purely univariate model; APrec/CPrec are then left nil.
func New(n, k int) (*State, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	if k < 0 {
		return nil, ErrInvalidDimensions
	}

	s := &State{
		Pi:   make([]float64, n),
		Beta: make([]float64, n),
	}
	if k > 0 {
		s.APrec = make([]float64, k)
		s.CPrec = make([]float64, k)
	}

	return s, nil
}

// NumVariables returns n, the length of Pi and Beta.
func (s *State) NumVariables() int { return len(s.Pi) }

// NumPrecVars returns K, the length of APrec and CPrec.
func (s *State) NumPrecVars() int { return len(s.APrec) }

// At returns (pi_i, beta_i), bounds-checked.
func (s *State) At(i int) (pi, beta float64, err error) {
	if i < 0 || i >= len(s.Pi) {
		return 0, 0, ErrVariableOutOfRange
	}

	return s.Pi[i], s.Beta[i], nil
}

// Set overwrites (pi_i, beta_i), bounds-checked.
func (s *State) Set(i int, pi, beta float64) error {
	if i < 0 || i >= len(s.Pi) {
		return ErrVariableOutOfRange
	}
	s.Pi[i] = pi
	s.Beta[i] = beta

	return nil
}

// PrecAt returns (a_k, c_k), bounds-checked.
func (s *State) PrecAt(k int) (a, c float64, err error) {
	if k < 0 || k >= len(s.APrec) {
		return 0, 0, ErrPrecVarOutOfRange
	}

	return s.APrec[k], s.CPrec[k], nil
}

// SetPrec overwrites (a_k, c_k), bounds-checked.
func (s *State) SetPrec(k int, a, c float64) error {
	if k < 0 || k >= len(s.APrec) {
		return ErrPrecVarOutOfRange
	}
	s.APrec[k] = a
	s.CPrec[k] = c

	return nil
}
