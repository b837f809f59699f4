package driver

import (
	"math"

	"epfactor/oracle"
)

// SequentialUpdate is the atomic-looking update primitive for factor j: it
// computes the cavity, calls the oracle for moment matching, computes
// tentative new messages, consults any MaxPrecisionIndex to clamp damping,
// and — only if every check along the way passes — commits the result to
// the factor representation, the marginal state, and any indices, all for
// factor j.
//
// No observable state changes unless the returned Status is Success:
// steps 1 through 5 work only on local variables and the Driver's reused
// scratch buffer, never on A, B, or C.
//
// damp is the requested damping factor d in [0, 1); it may be raised
// (selective damping) but never lowered. The returned Report's
// EffectiveDamping reflects the damping actually applied (1.0 on Skipped).
func (d *Driver) SequentialUpdate(j int, damp float64) (Status, Report, error) {
	if j < 0 || j >= d.factors.NumPotentials() {
		return Success, Report{}, ErrFactorOutOfRange
	}
	if damp < 0 || damp >= 1 {
		return Success, Report{}, ErrBadDamping
	}
	if d.oracle.Group(j) != d.mode {
		return Success, Report{}, ErrOracleGroupMismatch
	}

	vars, coefs, _ := d.factors.Row(j)
	s := len(vars)
	piMsg, betaMsg, _ := d.factors.Messages(j)

	// Four reused scratch views, each sized to the driver's widest row and
	// re-sliced here to the current factor's s_j.
	quarter := len(d.scratch) / 4
	piCav := d.scratch[0*quarter : 0*quarter+s]     // -> piNew in place, post step 5
	betaCav := d.scratch[1*quarter : 1*quarter+s]   // -> betaNew in place, post step 5
	piTilde := d.scratch[2*quarter : 2*quarter+s]   // -> piHat in place, post step 5
	betaTilde := d.scratch[3*quarter : 3*quarter+s] // -> betaHat in place, post step 5

	// Step 1: cavity, plus current marginal moments (mH, mRho) on s_j for
	// the Delta metric (step 7).
	var hBar, rhoBar, mH, mRho float64
	for ii := 0; ii < s; ii++ {
		i := vars[ii]
		b := coefs[ii]
		piI := d.marginals.Pi[i]
		betaI := d.marginals.Beta[i]

		pc := piI - piMsg[ii]
		if pc < d.piMin/2 {
			return CavityInvalid, Report{}, nil
		}
		bc := betaI - betaMsg[ii]
		piCav[ii] = pc
		betaCav[ii] = bc

		rhoBar += b * b / pc
		hBar += (b / pc) * bc

		mRho += b * b / piI
		mH += (b / piI) * betaI
	}

	var aBar, cBar, aJ, cJ, aK, cK float64
	var kj int
	bivariate := d.mode == oracle.BivariatePrecision
	if bivariate {
		kj, _ = d.factors.PrecVar(j)
		aJ, cJ, _ = d.factors.PrecisionMessage(j)
		aK, cK, _ = d.marginals.PrecAt(kj)

		aBar = aK - aJ
		if aBar < d.aMin/2 {
			return CavityInvalid, Report{}, nil
		}
		cBar = cK - cJ
		if cBar < d.cMin/2 {
			return CavityInvalid, Report{}, nil
		}
	}

	// Step 2: moment matching.
	var inputs []float64
	if bivariate {
		inputs = []float64{hBar, rhoBar, aBar, cBar}
	} else {
		inputs = []float64{hBar, rhoBar}
	}
	ok, outputs := d.oracle.ComputeMoments(j, inputs)
	if !ok || len(outputs) < 2 {
		return NumericalError, Report{}, nil
	}
	alpha, nu := outputs[0], outputs[1]

	var aTilde, cTilde float64
	if bivariate {
		if len(outputs) < 4 {
			return NumericalError, Report{}, nil
		}
		aHatMarg, cHatMarg := outputs[2], outputs[3]
		aTilde = aHatMarg - aBar
		cTilde = cHatMarg - cBar
	}

	// Step 3: undamped new messages, written into piTilde/betaTilde.
	for ii := 0; ii < s; ii++ {
		b := coefs[ii]
		pc := piCav[ii]
		bc := betaCav[ii]

		if math.Abs(b) >= smallCoefThreshold {
			t2 := pc / b
			denom := t2/b - nu
			if math.Abs(denom) < denominatorFloor {
				return NumericalError, Report{}, nil
			}
			e := 1 / denom
			piTilde[ii] = e * pc * nu
			betaTilde[ii] = e * (bc*nu + t2*alpha)
		} else {
			denom := pc - nu*b*b
			if math.Abs(denom) < denominatorFloor {
				return NumericalError, Report{}, nil
			}
			t := b / denom
			piTilde[ii] = t * b * nu * pc
			betaTilde[ii] = t * (bc*b*nu + pc*alpha)
		}
	}

	// Step 4: selective damping. Constraints are evaluated against the
	// undamped tentative values above, so evaluation order never affects
	// the resulting fixed point — the clamp only ever raises dEff.
	dEff := damp
	for ii := 0; ii < s; ii++ {
		if d.piIndex == nil || piTilde[ii] >= piMsg[ii] {
			continue
		}
		i := vars[ii]
		kappa, err := d.piIndex.Max(i)
		if err != nil || kappa <= 0 {
			return NumericalError, Report{}, nil
		}
		denom := piMsg[ii] - piTilde[ii] // > 0: message precision is decreasing
		oneMinusEta := math.Min((d.marginals.Pi[i]-kappa-d.piMin)/denom, 1.0)
		if oneMinusEta <= dampingSkipThreshold {
			return Skipped, Report{EffectiveDamping: 1.0}, nil
		}
		if candidate := 1 - oneMinusEta; candidate > dEff {
			dEff = candidate
		}
	}
	if bivariate {
		if d.aIndex != nil && aTilde < aJ {
			kappaA, err := d.aIndex.Max(kj)
			if err != nil || kappaA <= 0 {
				return NumericalError, Report{}, nil
			}
			denom := aJ - aTilde
			oneMinusEta := math.Min((aK-kappaA-d.aMin)/denom, 1.0)
			if oneMinusEta <= dampingSkipThreshold {
				return Skipped, Report{EffectiveDamping: 1.0}, nil
			}
			if candidate := 1 - oneMinusEta; candidate > dEff {
				dEff = candidate
			}
		}
		if d.cIndex != nil && cTilde < cJ {
			kappaC, err := d.cIndex.Max(kj)
			if err != nil || kappaC <= 0 {
				return NumericalError, Report{}, nil
			}
			denom := cJ - cTilde
			oneMinusEta := math.Min((cK-kappaC-d.cMin)/denom, 1.0)
			if oneMinusEta <= dampingSkipThreshold {
				return Skipped, Report{EffectiveDamping: 1.0}, nil
			}
			if candidate := 1 - oneMinusEta; candidate > dEff {
				dEff = candidate
			}
		}
	}
	_ = kj // kj already captured above; referenced again at commit time

	// Step 5: damped messages and tentative new marginals, written in place
	// over the scratch views (piTilde/betaTilde -> hat, piCav/betaCav -> new).
	for ii := 0; ii < s; ii++ {
		ph := piTilde[ii] + dEff*(piMsg[ii]-piTilde[ii])
		bh := betaTilde[ii] + dEff*(betaMsg[ii]-betaTilde[ii])
		pn := piCav[ii] + ph
		if pn < d.piMin/2 {
			return MarginalsInvalid, Report{}, nil
		}
		bn := betaCav[ii] + bh
		piTilde[ii] = ph
		betaTilde[ii] = bh
		piCav[ii] = pn
		betaCav[ii] = bn
	}

	var aHat, cHat, aNew, cNew float64
	if bivariate {
		aHat = aTilde + dEff*(aJ-aTilde)
		cHat = cTilde + dEff*(cJ-cTilde)
		aNew = aBar + aHat
		if aNew < d.aMin/2 {
			return MarginalsInvalid, Report{}, nil
		}
		cNew = cBar + cHat
		if cNew < d.cMin/2 {
			return MarginalsInvalid, Report{}, nil
		}
	}

	// Step 6: commit. Every touched variable appears exactly once in V_j.
	for ii := 0; ii < s; ii++ {
		i := vars[ii]
		_ = d.factors.SetMessage(j, ii, piTilde[ii], betaTilde[ii])
		_ = d.marginals.Set(i, piCav[ii], betaCav[ii])
		if d.piIndex != nil {
			_ = d.piIndex.Update(i, j, piTilde[ii])
		}
	}
	if bivariate {
		_ = d.factors.SetPrecisionMessage(j, aHat, cHat)
		_ = d.marginals.SetPrec(kj, aNew, cNew)
		if d.aIndex != nil {
			_ = d.aIndex.Update(kj, j, aHat)
		}
		if d.cIndex != nil {
			_ = d.cIndex.Update(kj, j, cHat)
		}
	}

	// Step 7: Delta metric, recomputed from post-commit marginals.
	var mHNew, mRhoNew float64
	for ii := 0; ii < s; ii++ {
		i := vars[ii]
		b := coefs[ii]
		piI := d.marginals.Pi[i]
		betaI := d.marginals.Beta[i]
		mRhoNew += b * b / piI
		mHNew += (b / piI) * betaI
	}
	deltaH := math.Abs(mH-mHNew) / math.Max(math.Max(math.Abs(mH), math.Abs(mHNew)), epsFloor)
	deltaRho := math.Abs(math.Sqrt(mRho)-math.Sqrt(mRhoNew)) / math.Max(math.Max(math.Sqrt(mRho), math.Sqrt(mRhoNew)), epsFloor)
	delta := math.Max(deltaH, deltaRho)

	return Success, Report{EffectiveDamping: dEff, Delta: delta}, nil
}
