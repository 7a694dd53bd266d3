package fermistat

import "math"

// DefaultDegeneracyThreshold is the relative deviation between the Boltzmann
// and Fermi-Dirac curves taken to mark the onset of degeneracy.
const DefaultDegeneracyThreshold = 0.05

// BoltzmannApprox returns the non-degenerate limit of F½,
//
//	F½(xf) ≈ (√π/2)·exp(xf),   xf ≪ 0
//
// It is a validation oracle only. The approximation diverges from F½ for
// xf ≳ 0 by construction; it fails with ErrNumericOverflow once exp(xf)
// leaves the float64 range.
func BoltzmannApprox(xf float64) (float64, error) {
	v := sqrtPiOver2 * math.Exp(xf)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, overflowError("Boltzmann approximation", xf)
	}
	return v, nil
}

// BoltzmannSweep evaluates BoltzmannApprox element-wise.
func BoltzmannSweep(xfs []float64) ([]float64, error) {
	out := make([]float64, len(xfs))
	for i, xf := range xfs {
		v, err := BoltzmannApprox(xf)
		if err != nil {
			return nil, sweepError(i, xf, err)
		}
		out[i] = v
	}
	return out, nil
}

// RelativeDeviation returns |fd − boltz| / boltz.
func RelativeDeviation(fd, boltz float64) float64 {
	if boltz == 0 {
		return math.Inf(1)
	}
	return math.Abs(fd-boltz) / boltz
}

// DegeneracyAnalysis summarises how a sweep compares to its Boltzmann limit.
type DegeneracyAnalysis struct {
	Points    int     // Sweep points analysed
	Threshold float64 // Relative deviation that marks degeneracy

	// Onset is the first xf whose deviation exceeds Threshold.
	// NaN when OnsetFound is false.
	Onset      float64
	OnsetFound bool

	// MaxNonDegenerateDeviation is the largest deviation seen below Onset
	// (over the whole sweep when no onset was found).
	MaxNonDegenerateDeviation float64

	// Monotonic is true when F½ strictly increases along the sweep.
	Monotonic bool

	// MaxAbsErr is the largest quadrature error estimate in the sweep.
	MaxAbsErr float64
}

// AnalyzeDegeneracy walks a sweep ordered by increasing xf and locates the
// degeneracy onset. threshold ≤ 0 selects DefaultDegeneracyThreshold.
func AnalyzeDegeneracy(points []SweepPoint, threshold float64) DegeneracyAnalysis {
	if threshold <= 0 {
		threshold = DefaultDegeneracyThreshold
	}

	analysis := DegeneracyAnalysis{
		Points:    len(points),
		Threshold: threshold,
		Onset:     math.NaN(),
		Monotonic: true,
	}

	for i, p := range points {
		if i > 0 && !(p.Value > points[i-1].Value) {
			analysis.Monotonic = false
		}
		if p.AbsErr > analysis.MaxAbsErr {
			analysis.MaxAbsErr = p.AbsErr
		}

		dev := RelativeDeviation(p.Value, p.Boltzmann)
		if !analysis.OnsetFound && dev > threshold {
			analysis.Onset = p.XF
			analysis.OnsetFound = true
		}
		if !analysis.OnsetFound && dev > analysis.MaxNonDegenerateDeviation {
			analysis.MaxNonDegenerateDeviation = dev
		}
	}

	return analysis
}
