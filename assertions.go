package fermistat

import (
	"fmt"
	"testing"
)

// AssertionConfig contains thresholds for sweep properties.
type AssertionConfig struct {
	// Boltzmann limit must agree within this relative error (xf ≤ NonDegenerateXF)
	MaxBoltzmannDeviation float64

	// Upper end of the non-degenerate region
	NonDegenerateXF float64

	// Curves must differ by more than MaxBoltzmannDeviation from here on
	DegenerateXF float64

	// Largest acceptable quadrature error estimate
	MaxAbsErr float64
}

// DefaultAssertionConfig returns the thresholds the carrier statistics are
// expected to meet: 5% agreement for xf ≤ −5 and divergence for xf ≥ 2.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		MaxBoltzmannDeviation: DefaultDegeneracyThreshold,
		NonDegenerateXF:       -5,
		DegenerateXF:          2,
		MaxAbsErr:             1e-6,
	}
}

// AssertMonotonic verifies F½ strictly increases along a sweep ordered by xf.
//
// Mathematical property:
//
//	∂F½/∂xf = F₋½(xf) > 0
func AssertMonotonic(t *testing.T, points []SweepPoint) {
	t.Helper()

	var failures []string
	for i := 1; i < len(points); i++ {
		if !(points[i].Value > points[i-1].Value) {
			failures = append(failures, fmt.Sprintf(
				"  xf=%.4f→%.4f: %.10g → %.10g",
				points[i-1].XF, points[i].XF, points[i-1].Value, points[i].Value))
		}
	}

	if len(failures) > 0 {
		t.Errorf("F½ not strictly increasing at %d step(s):\n%v", len(failures), failures)
		return
	}

	t.Logf("✓ Monotonic: %d points strictly increasing", len(points))
}

// AssertBoltzmannLimit verifies the sweep agrees with (√π/2)·exp(xf) in the
// non-degenerate region.
func AssertBoltzmannLimit(t *testing.T, points []SweepPoint, cfg AssertionConfig) {
	t.Helper()

	checked := 0
	worst := 0.0
	for _, p := range points {
		if p.XF > cfg.NonDegenerateXF {
			continue
		}
		checked++
		dev := RelativeDeviation(p.Value, p.Boltzmann)
		if dev > worst {
			worst = dev
		}
		if dev >= cfg.MaxBoltzmannDeviation {
			t.Errorf("xf=%.4f: Boltzmann deviation %.4f%% (max: %.2f%%)",
				p.XF, dev*100, cfg.MaxBoltzmannDeviation*100)
		}
	}

	if checked == 0 {
		t.Errorf("No sweep points at xf ≤ %.2f", cfg.NonDegenerateXF)
		return
	}

	t.Logf("✓ Boltzmann limit: %d points at xf ≤ %.1f, worst deviation %.4f%%",
		checked, cfg.NonDegenerateXF, worst*100)
}

// AssertDegeneracyOnset verifies the Boltzmann curve has visibly diverged in
// the degenerate region.
func AssertDegeneracyOnset(t *testing.T, points []SweepPoint, cfg AssertionConfig) {
	t.Helper()

	checked := 0
	for _, p := range points {
		if p.XF < cfg.DegenerateXF {
			continue
		}
		checked++
		if dev := RelativeDeviation(p.Value, p.Boltzmann); dev <= cfg.MaxBoltzmannDeviation {
			t.Errorf("xf=%.4f: still within %.2f%% of Boltzmann (%.4f%%), expected degeneracy",
				p.XF, cfg.MaxBoltzmannDeviation*100, dev*100)
		}
	}

	if checked == 0 {
		t.Errorf("No sweep points at xf ≥ %.2f", cfg.DegenerateXF)
		return
	}

	analysis := AnalyzeDegeneracy(points, cfg.MaxBoltzmannDeviation)
	t.Logf("✓ Degenerate: %d points at xf ≥ %.1f diverge from Boltzmann (onset xf=%.3f)",
		checked, cfg.DegenerateXF, analysis.Onset)
}

// AssertQuadratureAccuracy verifies every point's error estimate.
func AssertQuadratureAccuracy(t *testing.T, points []SweepPoint, cfg AssertionConfig) {
	t.Helper()

	for _, p := range points {
		if p.AbsErr > cfg.MaxAbsErr {
			t.Errorf("xf=%.4f: abserr %.3g exceeds %.3g (%d subintervals)",
				p.XF, p.AbsErr, cfg.MaxAbsErr, p.Subintervals)
		}
	}
}

// AssertCarrierStatistics runs all sweep assertions with default config.
func AssertCarrierStatistics(t *testing.T, points []SweepPoint) {
	t.Helper()

	cfg := DefaultAssertionConfig()

	t.Run("Monotonic", func(t *testing.T) {
		AssertMonotonic(t, points)
	})

	t.Run("BoltzmannLimit", func(t *testing.T) {
		AssertBoltzmannLimit(t, points, cfg)
	})

	t.Run("DegeneracyOnset", func(t *testing.T) {
		AssertDegeneracyOnset(t, points, cfg)
	})

	t.Run("QuadratureAccuracy", func(t *testing.T) {
		AssertQuadratureAccuracy(t, points, cfg)
	})
}

// PrintSweepAnalysis writes a sweep table and its degeneracy summary to the
// test log.
func PrintSweepAnalysis(t *testing.T, points []SweepPoint) {
	t.Helper()

	analysis := AnalyzeDegeneracy(points, DefaultDegeneracyThreshold)

	t.Logf("\n=== Fermi-Dirac Sweep ===")
	t.Logf("  xf        F½(xf)          Boltzmann       deviation   abserr")
	t.Logf("  --------  --------------  --------------  ----------  --------")
	for _, p := range points {
		t.Logf("  %8.3f  %14.8g  %14.8g  %9.3f%%  %8.2g",
			p.XF, p.Value, p.Boltzmann, RelativeDeviation(p.Value, p.Boltzmann)*100, p.AbsErr)
	}

	t.Logf("\nSummary:")
	t.Logf("  Points: %d", analysis.Points)
	t.Logf("  Monotonic: %v", analysis.Monotonic)
	t.Logf("  Max abserr: %.3g", analysis.MaxAbsErr)
	if analysis.OnsetFound {
		t.Logf("  Degeneracy onset (>%.0f%% deviation): xf = %.3f", analysis.Threshold*100, analysis.Onset)
	} else {
		t.Logf("  No degeneracy onset within the sweep")
	}
	t.Logf("  Worst non-degenerate deviation: %.4f%%", analysis.MaxNonDegenerateDeviation*100)
}
