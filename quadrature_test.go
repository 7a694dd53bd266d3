package fermistat

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/integrate/testquad"
)

// TestIntegrate_KnownIntegrals runs the adaptive rule over integrals with
// known values.
func TestIntegrate_KnownIntegrals(t *testing.T) {
	cfg := DefaultQuadratureConfig()

	integrals := []testquad.Integral{
		testquad.Constant(0),
		testquad.Constant(2.5),
		testquad.Poly(0),
		testquad.Poly(3),
		testquad.Poly(15),
		testquad.Poly(40),
		testquad.Sin(),
		testquad.XExpMinusX(),
		testquad.Sqrt(),
		testquad.ExpOverX2Plus1(),
	}

	for _, in := range integrals {
		t.Run(in.Name, func(t *testing.T) {
			res, err := Integrate(in.F, in.A, in.B, cfg)
			if err != nil {
				t.Fatalf("Integrate failed: %v", err)
			}

			tol := math.Max(cfg.AbsTol, cfg.RelTol*math.Abs(in.Value))
			if math.Abs(res.Value-in.Value) > tol {
				t.Errorf("got %.15g, want %.15g (|Δ|=%.3g > %.3g)",
					res.Value, in.Value, math.Abs(res.Value-in.Value), tol)
			}
			if res.AbsErr > tol {
				t.Errorf("error estimate %.3g exceeds tolerance %.3g", res.AbsErr, tol)
			}
			if res.Subintervals > cfg.MaxSubintervals {
				t.Errorf("used %d subintervals, budget %d", res.Subintervals, cfg.MaxSubintervals)
			}

			t.Logf("✓ %s = %.12g (abserr %.2g, %d subintervals, %d evaluations)",
				in.Name, res.Value, res.AbsErr, res.Subintervals, res.Evaluations)
		})
	}
}

// TestIntegrate_SmoothNeedsOneInterval verifies polynomials within the
// Kronrod degree are exact without subdivision.
func TestIntegrate_SmoothNeedsOneInterval(t *testing.T) {
	in := testquad.Poly(7)

	res, err := Integrate(in.F, in.A, in.B, DefaultQuadratureConfig())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Subintervals)
	assert.Equal(t, 21, res.Evaluations)
	assert.InDelta(t, in.Value, res.Value, 1e-12)
}

// TestIntegrate_ReversedLimits verifies ∫_b^a = −∫_a^b.
func TestIntegrate_ReversedLimits(t *testing.T) {
	in := testquad.Sin()
	cfg := DefaultQuadratureConfig()

	fwd, err := Integrate(in.F, in.A, in.B, cfg)
	require.NoError(t, err)
	rev, err := Integrate(in.F, in.B, in.A, cfg)
	require.NoError(t, err)

	assert.InDelta(t, -fwd.Value, rev.Value, 1e-15)
}

// TestIntegrate_EmptyInterval verifies a == b integrates to zero.
func TestIntegrate_EmptyInterval(t *testing.T) {
	res, err := Integrate(math.Exp, 1, 1, DefaultQuadratureConfig())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Value)
}

// TestIntegrate_ConvergenceFailure verifies an exhausted budget is reported
// with the best estimate rather than silently accepted.
func TestIntegrate_ConvergenceFailure(t *testing.T) {
	cfg := DefaultQuadratureConfig()
	cfg.MaxSubintervals = 1

	in := testquad.Sqrt()
	res, err := Integrate(in.F, in.A, in.B, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConvergence))

	var cerr *ConvergenceError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, 1, cerr.Subintervals)
	assert.Greater(t, cerr.AbsErr, cerr.Tolerance)
	assert.Equal(t, res.Value, cerr.Estimate)
	assert.InDelta(t, in.Value, cerr.Estimate, 1e-3)

	t.Logf("✓ Correctly reported: %v", err)
}

// TestIntegrate_NonFinite verifies an infinite integrand surfaces
// ErrNumericOverflow.
func TestIntegrate_NonFinite(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(1000 * x) }

	_, err := Integrate(f, 0, 1, DefaultQuadratureConfig())
	assert.ErrorIs(t, err, ErrNumericOverflow)
}

// TestIntegrate_MatchesGaussLegendre cross-checks the Fermi-Dirac integrand
// against a high-order fixed Gauss–Legendre rule.
func TestIntegrate_MatchesGaussLegendre(t *testing.T) {
	cfg := DefaultQuadratureConfig()

	for _, xf := range []float64{-10, -3, 0, 3, 10} {
		f := func(x float64) float64 { return Integrand(x, xf) }

		res, err := Integrate(f, 0, cfg.Upper, cfg)
		require.NoError(t, err)

		fixed := quad.Fixed(f, 0, cfg.Upper, 2000, nil, 0)

		if !scalar.EqualWithinAbsOrRel(res.Value, fixed, 1e-7, 1e-7) {
			t.Errorf("xf=%.1f: adaptive %.12g vs Gauss–Legendre %.12g", xf, res.Value, fixed)
		}
		t.Logf("✓ xf=%5.1f: adaptive=%.12g legendre=%.12g (%d subintervals)",
			xf, res.Value, fixed, res.Subintervals)
	}
}

// TestQuadratureConfig_Validate verifies bad settings are rejected.
func TestQuadratureConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*QuadratureConfig)
	}{
		{"Zero upper", func(c *QuadratureConfig) { c.Upper = 0 }},
		{"Negative abs tol", func(c *QuadratureConfig) { c.AbsTol = -1 }},
		{"Negative rel tol", func(c *QuadratureConfig) { c.RelTol = -1 }},
		{"Both tolerances zero", func(c *QuadratureConfig) { c.AbsTol, c.RelTol = 0, 0 }},
		{"No subintervals", func(c *QuadratureConfig) { c.MaxSubintervals = 0 }},
	}

	require.NoError(t, DefaultQuadratureConfig().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultQuadratureConfig()
			tt.mutate(&cfg)

			assert.Error(t, cfg.Validate())
			_, err := NewEvaluator(cfg)
			assert.Error(t, err)
			_, err = Integrate(math.Sin, 0, 1, cfg)
			assert.Error(t, err)
		})
	}
}
