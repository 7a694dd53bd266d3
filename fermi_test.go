package fermistat

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// F½(0) = (1 − 2^(−½))·Γ(3/2)·ζ(3/2) for the untruncated integral.
const fermiHalfAtZero = 0.678093895153101

// TestFermiIntegral_AtZero verifies the reference scenario F½(0) ≈ 0.6781.
func TestFermiIntegral_AtZero(t *testing.T) {
	v, err := FermiIntegral(0)
	if err != nil {
		t.Fatalf("FermiIntegral(0) failed: %v", err)
	}

	if math.Abs(v-0.6781) > 1e-3 {
		t.Errorf("F½(0) = %.6f, expected ≈ 0.6781", v)
	}

	// The truncated value misses exactly the tail beyond Upper.
	gap := fermiHalfAtZero - v
	bound := TruncationBound(0, DefaultQuadratureConfig().Upper)
	if gap <= 0 || gap > bound+1e-7 {
		t.Errorf("truncation gap %.3g outside (0, %.3g]", gap, bound)
	}

	t.Logf("✓ F½(0) = %.10f (untruncated %.10f, tail %.3g ≤ bound %.3g)",
		v, fermiHalfAtZero, gap, bound)
}

// TestFermiIntegral_WideUpperLimit verifies full precision once the
// truncation is moved out of the way.
func TestFermiIntegral_WideUpperLimit(t *testing.T) {
	cfg := DefaultQuadratureConfig()
	cfg.Upper = 60
	cfg.MaxSubintervals = 100

	eval, err := NewEvaluator(cfg)
	require.NoError(t, err)

	res, err := eval.EvaluateDetailed(0)
	require.NoError(t, err)

	assert.InDelta(t, fermiHalfAtZero, res.Value, 1e-7)
	t.Logf("✓ F½(0) with Upper=60: %.12f (abserr %.2g, %d subintervals)",
		res.Value, res.AbsErr, res.Subintervals)
}

// TestFermiIntegral_Monotonicity verifies F½ strictly increases with xf.
func TestFermiIntegral_Monotonicity(t *testing.T) {
	xfs := []float64{-40, -20, -10, -5, -2, -1, -0.5, 0, 0.5, 1, 2, 5, 8, 10, 15}

	prev := -1.0
	for _, xf := range xfs {
		v, err := FermiIntegral(xf)
		require.NoError(t, err, "xf=%g", xf)

		if v < 0 {
			t.Errorf("xf=%g: F½ = %.6g is negative", xf, v)
		}
		if !(v > prev) {
			t.Errorf("xf=%g: F½ = %.10g did not increase from %.10g", xf, v, prev)
		}
		prev = v
	}
}

// TestIntegrand_Boundaries verifies the lower bound and the overflow regime.
func TestIntegrand_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		xf   float64
		want float64
	}{
		{"Zero at lower bound", 0, 5, 0},
		{"Zero at lower bound, deep non-degenerate", 0, -50, 0},
		{"Underflows instead of NaN", 1000, 0, 0},
		{"Underflows for huge x", 1e308, -1e308, 0},
		{"Half occupation at x = xf", 4, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Integrand(tt.x, tt.xf)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("Integrand(%g, %g) = %v", tt.x, tt.xf, got)
			}
			assert.InDelta(t, tt.want, got, 1e-15)
		})
	}
}

// TestEvaluator_ConvergenceFailure verifies an inadequate budget is surfaced
// with xf and the best estimate attached.
func TestEvaluator_ConvergenceFailure(t *testing.T) {
	cfg := DefaultQuadratureConfig()
	cfg.MaxSubintervals = 2

	eval, err := NewEvaluator(cfg)
	require.NoError(t, err)

	_, err = eval.Evaluate(1.5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConvergence)

	var cerr *ConvergenceError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, 1.5, cerr.XF)
	assert.Equal(t, 2, cerr.Subintervals)
	assert.Greater(t, cerr.Estimate, 0.0)
	assert.Greater(t, cerr.AbsErr, cerr.Tolerance)

	t.Logf("✓ %v", err)
}

// TestEvaluator_DefaultsMatchPackageFunctions verifies the package-level
// helpers use DefaultQuadratureConfig.
func TestEvaluator_DefaultsMatchPackageFunctions(t *testing.T) {
	assert.Equal(t, DefaultQuadratureConfig(), DefaultEvaluator().Config())

	eval, err := NewEvaluator(DefaultQuadratureConfig())
	require.NoError(t, err)

	for _, xf := range []float64{-3, 0, 3} {
		a, err := eval.Evaluate(xf)
		require.NoError(t, err)
		b, err := FermiIntegral(xf)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

// TestTruncationBound verifies the bound covers the tail for a range of xf.
func TestTruncationBound(t *testing.T) {
	wide := DefaultQuadratureConfig()
	wide.Upper = 80
	wide.MaxSubintervals = 200
	wideEval, err := NewEvaluator(wide)
	require.NoError(t, err)

	for _, xf := range []float64{-10, -5, 0, 5, 10} {
		truncated, err := FermiIntegral(xf)
		require.NoError(t, err)
		full, err := wideEval.Evaluate(xf)
		require.NoError(t, err)

		tail := full - truncated
		bound := TruncationBound(xf, DefaultQuadratureConfig().Upper)
		if tail > bound*(1+1e-6)+1e-7 {
			t.Errorf("xf=%g: tail %.6g exceeds bound %.6g", xf, tail, bound)
		}
		t.Logf("✓ xf=%5.1f: tail %.4g ≤ bound %.4g (%.3f%% of F½)", xf, tail, bound, 100*tail/full)
	}

	assert.True(t, math.IsInf(TruncationBound(0, 0), 1))
}
