package fermistat

import "math"

// logistic returns 1/(1+exp(z)) without overflowing for large |z|.
// For z > 0 the equivalent form exp(-z)/(1+exp(-z)) is used so the
// exponential only ever sees non-positive arguments.
func logistic(z float64) float64 {
	if z > 0 {
		ez := math.Exp(-z)
		return ez / (1 + ez)
	}
	return 1 / (1 + math.Exp(z))
}

func checkTemperature(T float64) error {
	if T < 0 || math.IsNaN(T) {
		return &TemperatureError{T: T}
	}
	return nil
}

// Occupation returns the Fermi-Dirac occupation probability of a state at
// energy e (eV) for Fermi level ef (eV) and temperature T (K).
//
// T == 0 is the degenerate limit and is a hard step: 1 for e ≤ ef, else 0.
// It is evaluated as its own branch, not as a limit of the sigmoid.
func (c Constants) Occupation(e, ef, T float64) (float64, error) {
	if err := checkTemperature(T); err != nil {
		return 0, err
	}
	return c.occupation(e, ef, T), nil
}

func (c Constants) occupation(e, ef, T float64) float64 {
	if T == 0 {
		if e <= ef {
			return 1.0
		}
		return 0.0
	}
	return logistic((e - ef) / c.ThermalEnergy(T))
}

// OccupationSlice evaluates Occupation element-wise. The result has the same
// length and order as es.
func (c Constants) OccupationSlice(es []float64, ef, T float64) ([]float64, error) {
	if err := checkTemperature(T); err != nil {
		return nil, err
	}
	out := make([]float64, len(es))
	for i, e := range es {
		out[i] = c.occupation(e, ef, T)
	}
	return out, nil
}

// Occupation evaluates the occupation probability with DefaultConstants.
func Occupation(e, ef, T float64) (float64, error) {
	return DefaultConstants().Occupation(e, ef, T)
}

// OccupationSlice evaluates OccupationSlice with DefaultConstants.
func OccupationSlice(es []float64, ef, T float64) ([]float64, error) {
	return DefaultConstants().OccupationSlice(es, ef, T)
}
