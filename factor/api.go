package factor

import "fmt"

// New constructs a univariate Representation over n variables from the given
// rows. All message parameters (pi, beta) start at zero; callers that need a
// different initial assignment should follow with SetMessage calls before
// handing the Representation to a driver.
//
// Validates: n > 0, every row's Vars/Coefs lengths match, every variable
// index lies in [0, n), and no row repeats a variable.
//
// Complexity: O(Σ s_j) time and memory.
func New(n int, rows []Row) (*Representation, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	if err := validateRows(rows, n); err != nil {
		return nil, err
	}

	return &Representation{
		mode: Univariate,
		n:    n,
		rows: rows,
		pi:   allocMessageArrays(rows),
		beta: allocMessageArrays(rows),
	}, nil
}

// NewBivariatePrecision constructs a bivariate-precision Representation over
// n variables and K precision variables. kOf[j] gives the fixed k(j) map;
// it must have one entry per row, each within [0, K). All message parameters
// (pi, beta, a, c) start at zero.
//
// Complexity: O(Σ s_j + m) time and memory.
func NewBivariatePrecision(n, k int, rows []Row, kOf []int) (*Representation, error) {
	if n <= 0 || k <= 0 {
		return nil, ErrInvalidDimensions
	}
	if err := validateRows(rows, n); err != nil {
		return nil, err
	}
	if len(kOf) != len(rows) {
		return nil, ErrMissingPrecMap
	}
	for _, kv := range kOf {
		if kv < 0 || kv >= k {
			return nil, ErrPrecVarOutOfRange
		}
	}

	kOfCopy := make([]int, len(kOf))
	copy(kOfCopy, kOf)

	return &Representation{
		mode: BivariatePrecision,
		n:    n,
		k:    k,
		rows: rows,
		pi:   allocMessageArrays(rows),
		beta: allocMessageArrays(rows),
		a:    make([]float64, len(rows)),
		c:    make([]float64, len(rows)),
		kOf:  kOfCopy,
	}, nil
}

func validateRows(rows []Row, n int) error {
	for j, row := range rows {
		if len(row.Vars) != len(row.Coefs) {
			return fmt.Errorf("factor: row %d: %w", j, ErrRowLengthMismatch)
		}
		seen := make(map[int]struct{}, len(row.Vars))
		for _, v := range row.Vars {
			if v < 0 || v >= n {
				return fmt.Errorf("factor: row %d: variable %d: %w", j, v, ErrVariableOutOfRange)
			}
			if _, dup := seen[v]; dup {
				return fmt.Errorf("factor: row %d: variable %d: %w", j, v, ErrDuplicateVariable)
			}
			seen[v] = struct{}{}
		}
	}

	return nil
}

func allocMessageArrays(rows []Row) [][]float64 {
	out := make([][]float64, len(rows))
	for j, row := range rows {
		out[j] = make([]float64, len(row.Vars))
	}

	return out
}

// NumVariables returns n, the number of variables.
func (r *Representation) NumVariables() int { return r.n }

// NumPotentials returns m, the number of factors.
func (r *Representation) NumPotentials() int { return len(r.rows) }

// NumPrecVars returns K, the number of precision variables (0 for Univariate).
func (r *Representation) NumPrecVars() int { return r.k }

// Mode reports whether this Representation stores univariate or
// bivariate-precision messages.
func (r *Representation) Mode() Mode { return r.mode }

// RowSize returns s_j, the support size of factor j.
func (r *Representation) RowSize(j int) (int, error) {
	if j < 0 || j >= len(r.rows) {
		return 0, ErrFactorOutOfRange
	}

	return len(r.rows[j].Vars), nil
}

// Row returns the immutable support (variable indices) and coefficients of
// factor j, in message order. The returned slices must not be modified.
func (r *Representation) Row(j int) (vars []int, coefs []float64, err error) {
	if j < 0 || j >= len(r.rows) {
		return nil, nil, ErrFactorOutOfRange
	}
	row := r.rows[j]

	return row.Vars, row.Coefs, nil
}

// Messages returns the backing pi/beta slices for factor j, in message
// order. The slices are the live storage, not copies: callers that mutate
// them change the Representation's state directly. General callers should
// prefer Message/SetMessage.
func (r *Representation) Messages(j int) (pi, beta []float64, err error) {
	if j < 0 || j >= len(r.rows) {
		return nil, nil, ErrFactorOutOfRange
	}

	return r.pi[j], r.beta[j], nil
}

// Message returns (pi_{j,i}, beta_{j,i}) for local index ii of factor j.
func (r *Representation) Message(j, ii int) (pi, beta float64, err error) {
	if j < 0 || j >= len(r.rows) {
		return 0, 0, ErrFactorOutOfRange
	}
	if ii < 0 || ii >= len(r.rows[j].Vars) {
		return 0, 0, ErrLocalIndexOutOfRange
	}

	return r.pi[j][ii], r.beta[j][ii], nil
}

// SetMessage overwrites (pi_{j,i}, beta_{j,i}) for local index ii of factor j.
func (r *Representation) SetMessage(j, ii int, pi, beta float64) error {
	if j < 0 || j >= len(r.rows) {
		return ErrFactorOutOfRange
	}
	if ii < 0 || ii >= len(r.rows[j].Vars) {
		return ErrLocalIndexOutOfRange
	}
	r.pi[j][ii] = pi
	r.beta[j][ii] = beta

	return nil
}

// PrecVar returns k(j), the precision variable factor j contributes to.
// Only valid when Mode() == BivariatePrecision.
func (r *Representation) PrecVar(j int) (int, error) {
	if r.mode != BivariatePrecision {
		return 0, ErrNotBivariate
	}
	if j < 0 || j >= len(r.rows) {
		return 0, ErrFactorOutOfRange
	}

	return r.kOf[j], nil
}

// PrecisionMessage returns (a_{j,k(j)}, c_{j,k(j)}) for factor j.
// Only valid when Mode() == BivariatePrecision.
func (r *Representation) PrecisionMessage(j int) (a, c float64, err error) {
	if r.mode != BivariatePrecision {
		return 0, 0, ErrNotBivariate
	}
	if j < 0 || j >= len(r.rows) {
		return 0, 0, ErrFactorOutOfRange
	}

	return r.a[j], r.c[j], nil
}

// SetPrecisionMessage overwrites (a_{j,k(j)}, c_{j,k(j)}) for factor j.
// Only valid when Mode() == BivariatePrecision.
func (r *Representation) SetPrecisionMessage(j int, a, c float64) error {
	if r.mode != BivariatePrecision {
		return ErrNotBivariate
	}
	if j < 0 || j >= len(r.rows) {
		return ErrFactorOutOfRange
	}
	r.a[j] = a
	r.c[j] = c

	return nil
}
