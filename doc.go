// Package fermistat computes equilibrium carrier statistics for a single
// parabolic band from Fermi-Dirac statistics.
//
// # Overview
//
// Four pure numerical components, leaves first:
//
//   - occupation  - Fermi-Dirac occupation probability f(e; ef, T)
//   - dos         - effective-mass parabolic density of states g(e)
//   - fermi       - order-1/2 Fermi-Dirac integral F½(xf) by adaptive quadrature
//   - asymptotic  - Boltzmann limit (√π/2)·exp(xf) used as a validation oracle
//
// None of them hold state. Physical constants live in a Constants value
// (DefaultConstants reproduces the reference material) and quadrature
// settings in a QuadratureConfig.
//
// # Quick Start
//
// Occupation at the Fermi level is exactly one half at any T > 0:
//
//	f, err := fermistat.Occupation(0.3, 0.3, 300)
//	// f == 0.5
//
// Evaluate the Fermi-Dirac integral:
//
//	v, err := fermistat.FermiIntegral(0)
//	// v ≈ 0.6781
//
// Sweep the reduced Fermi level and compare with the Boltzmann limit:
//
//	xfs := fermistat.Linspace(-10, 10, 1000)
//	points, err := fermistat.Sweep(ctx, xfs, fermistat.DefaultSweepConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	analysis := fermistat.AnalyzeDegeneracy(points, 0)
//	fmt.Printf("degeneracy onset at xf = %.2f\n", analysis.Onset)
//
// # The Fermi-Dirac Integral
//
//	F½(xf) = ∫_0^∞ √x / (1 + exp(x − xf)) dx,   xf = (Ef − Ec)/(kB·T)
//
// The integral is truncated at QuadratureConfig.Upper (10 by default) and
// computed with a globally adaptive 21-point Gauss–Kronrod rule. The √x
// factor makes the integrand non-smooth at 0, which the bisection resolves
// within the default 50-subinterval budget. TruncationBound gives the size
// of the discarded tail; it grows like exp(xf), so raise Upper for
// degenerate (large xf) work.
//
// For xf ≪ 0 the integral tends to (√π/2)·exp(xf). The two agree within
// 5% for xf ≤ −5 and separate near xf ≈ −2, the onset of degeneracy.
//
// # Errors
//
// Every failure wraps one of ErrInvalidTemperature, ErrDomain,
// ErrConvergence or ErrNumericOverflow. The typed errors TemperatureError,
// DomainError and ConvergenceError carry the offending input; a
// ConvergenceError also carries the best estimate and its error, so a
// caller can decide whether to accept it, widen the budget or reject the
// input.
//
// # Configuration
//
// LoadConfig reads a YAML file and FERMISTAT_* environment overrides:
//
//	preset: si
//	quadrature:
//	  upper: 50
//	  max_subintervals: 100
//	sweep:
//	  workers: 4
//
// # Testing
//
// Use the assertions to validate a sweep:
//
//	func TestSweep(t *testing.T) {
//	    points, _ := fermistat.Sweep(ctx, fermistat.Linspace(-10, 10, 201), fermistat.SweepConfig{})
//	    fermistat.AssertCarrierStatistics(t, points)
//	}
package fermistat
