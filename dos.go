package fermistat

import "math"

// DensityOfStates returns the parabolic-band density of states at energy e
// above the band edge ec (both in eV):
//
//	g(e) = (√2/π²) · m_eff^(3/2) · (e − ec)^(1/2) / ħ³
//
// The model is only defined above the edge. e ≤ ec returns a *DomainError
// rather than zero, so a caller integrating across the edge notices.
func (c Constants) DensityOfStates(e, ec float64) (float64, error) {
	if !(e > ec) {
		return 0, &DomainError{E: e, Ec: ec}
	}
	g := c.dosPrefactor() * math.Sqrt(e-ec)
	if math.IsInf(g, 0) || math.IsNaN(g) {
		return 0, overflowError("density of states", e)
	}
	return g, nil
}

// DensityOfStatesSlice evaluates DensityOfStates element-wise and stops at
// the first energy outside the domain.
func (c Constants) DensityOfStatesSlice(es []float64, ec float64) ([]float64, error) {
	out := make([]float64, len(es))
	for i, e := range es {
		g, err := c.DensityOfStates(e, ec)
		if err != nil {
			return nil, err
		}
		out[i] = g
	}
	return out, nil
}

func (c Constants) dosPrefactor() float64 {
	return math.Sqrt2 / (math.Pi * math.Pi) * math.Pow(c.EffectiveMass(), 1.5) / math.Pow(c.HBar, 3)
}

// DensityOfStates evaluates the density of states with DefaultConstants.
func DensityOfStates(e, ec float64) (float64, error) {
	return DefaultConstants().DensityOfStates(e, ec)
}
