package fermistat

import (
	"errors"
	"math"
)

// Integrand is the order-1/2 Fermi-Dirac integrand √x/(1+exp(x−xf)) for
// x ≥ 0. The logistic factor is evaluated in its stable form, so for
// x−xf beyond the exponent range the integrand underflows to 0 instead of
// turning into NaN.
func Integrand(x, xf float64) float64 {
	return math.Sqrt(x) * logistic(x-xf)
}

// Evaluator computes F½(xf) = ∫_0^Upper √x/(1+exp(x−xf)) dx.
// It holds only immutable configuration and is safe for concurrent use.
type Evaluator struct {
	cfg QuadratureConfig
}

// NewEvaluator validates cfg and returns an Evaluator using it.
func NewEvaluator(cfg QuadratureConfig) (*Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{cfg: cfg}, nil
}

var defaultEvaluator = &Evaluator{cfg: DefaultQuadratureConfig()}

// DefaultEvaluator returns an Evaluator with DefaultQuadratureConfig.
func DefaultEvaluator() *Evaluator {
	return defaultEvaluator
}

// Config returns the quadrature settings.
func (e *Evaluator) Config() QuadratureConfig {
	return e.cfg
}

// EvaluateDetailed returns the integral together with the quadrature
// diagnostics. On a convergence failure the returned *ConvergenceError
// carries xf and the best estimate reached.
func (e *Evaluator) EvaluateDetailed(xf float64) (QuadResult, error) {
	f := func(x float64) float64 { return Integrand(x, xf) }

	res, err := Integrate(f, 0, e.cfg.Upper, e.cfg)
	if err != nil {
		var cerr *ConvergenceError
		if errors.As(err, &cerr) {
			cerr.XF = xf
			return res, cerr
		}
		if errors.Is(err, ErrNumericOverflow) {
			return res, overflowError("Fermi-Dirac integral", xf)
		}
		return res, err
	}
	return res, nil
}

// Evaluate returns F½(xf).
func (e *Evaluator) Evaluate(xf float64) (float64, error) {
	res, err := e.EvaluateDetailed(xf)
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}

// EvaluateSweep evaluates every xf in order. The output has the same length
// and index order as xfs. The first failure aborts the sweep.
func (e *Evaluator) EvaluateSweep(xfs []float64) ([]float64, error) {
	out := make([]float64, len(xfs))
	for i, xf := range xfs {
		v, err := e.Evaluate(xf)
		if err != nil {
			return nil, sweepError(i, xf, err)
		}
		out[i] = v
	}
	return out, nil
}

// FermiIntegral evaluates F½(xf) with DefaultQuadratureConfig.
func FermiIntegral(xf float64) (float64, error) {
	return defaultEvaluator.Evaluate(xf)
}

// FermiIntegralSweep evaluates F½ over xfs with DefaultQuadratureConfig.
func FermiIntegralSweep(xfs []float64) ([]float64, error) {
	return defaultEvaluator.EvaluateSweep(xfs)
}

// TruncationBound returns an upper bound on the tail ∫_upper^∞ that a
// truncated evaluation discards:
//
//	∫_U^∞ √x/(1+exp(x−xf)) dx < exp(xf)·Γ(3/2, U)
//	Γ(3/2, U) = √U·exp(−U) + (√π/2)·erfc(√U)
func TruncationBound(xf, upper float64) float64 {
	if upper <= 0 {
		return math.Inf(1)
	}
	su := math.Sqrt(upper)
	gamma := su*math.Exp(-upper) + sqrtPiOver2*math.Erfc(su)
	return math.Exp(xf) * gamma
}
