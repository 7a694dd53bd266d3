package fermistat

import (
	"errors"
	"fmt"
	"math"
)

// QuadratureConfig controls the adaptive integrator.
type QuadratureConfig struct {
	// Upper truncates the Fermi-Dirac integral at x = Upper instead of +∞.
	// The discarded tail is bounded by TruncationBound(xf, Upper), which
	// grows like exp(xf): 10 keeps it near 1e-4 relative for xf ≤ 0 but
	// loses roughly 10% of the value at xf = 10. Raise it (xf+40 is ample)
	// when full double precision is needed in the degenerate regime.
	Upper float64 `mapstructure:"upper" yaml:"upper" validate:"gt=0"`

	AbsTol float64 `mapstructure:"abs_tol" yaml:"abs_tol" validate:"gte=0"` // Absolute error target
	RelTol float64 `mapstructure:"rel_tol" yaml:"rel_tol" validate:"gte=0"` // Relative error target

	// MaxSubintervals bounds the bisection; it is the only termination
	// guarantee the integrator needs.
	MaxSubintervals int `mapstructure:"max_subintervals" yaml:"max_subintervals" validate:"gte=1"`
}

// DefaultQuadratureConfig returns the reference settings: upper limit 10,
// abs/rel tolerance 1.49e-8, 50 subintervals.
func DefaultQuadratureConfig() QuadratureConfig {
	return QuadratureConfig{
		Upper:           10,
		AbsTol:          1.49e-8,
		RelTol:          1.49e-8,
		MaxSubintervals: 50,
	}
}

// Validate rejects configurations the integrator cannot honour.
func (c QuadratureConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid quadrature config: %w", err)
	}
	if c.AbsTol == 0 && c.RelTol == 0 {
		return fmt.Errorf("invalid quadrature config: abs_tol and rel_tol are both zero")
	}
	return nil
}

// QuadResult is an integral estimate with its diagnostics.
type QuadResult struct {
	Value        float64 // Integral estimate
	AbsErr       float64 // Estimated absolute error
	Subintervals int     // Subintervals in the final partition
	Evaluations  int     // Integrand evaluations
}

// 21-point Gauss–Kronrod rule. xgk[1], xgk[3], ... xgk[9] are the 10-point
// Gauss nodes, weighted by wg.
var (
	xgk = [11]float64{
		0.995657163025808080735527280689003,
		0.973906528517171720077964012084452,
		0.930157491355708226001207180059508,
		0.865063366688984510732096688423493,
		0.780817726586416897063717578345042,
		0.679409568299024406234327365114874,
		0.562757134668604683339000099272694,
		0.433395394129247190799265943165784,
		0.294392862701460198131126603103866,
		0.148874338981631210884826001129720,
		0,
	}
	wgk = [11]float64{
		0.011694638867371874278064396062192,
		0.032558162307964727478818972459390,
		0.054755896574351996031381300244580,
		0.075039674810919952767043140916190,
		0.093125454583697605535065465083366,
		0.109387158802297641899210590325805,
		0.123491976262065851077600525226519,
		0.134709217311473325928054001771707,
		0.142775938577060080797094273138717,
		0.147739104901338491374841515972068,
		0.149445554002916905664936468389821,
	}
	wg = [5]float64{
		0.066671344308688137593568809893332,
		0.149451349150580593145776339657697,
		0.219086362515982043995534934228163,
		0.269266719309996355091226921569469,
		0.295524224714752870173892994651338,
	}
)

const (
	epmach = 2.220446049250313e-16
	uflow  = 2.2250738585072014e-308
)

type segment struct {
	a, b  float64
	value float64
	err   float64
}

// gk21 applies the Gauss–Kronrod pair on [a, b]. The error estimate is the
// Gauss/Kronrod difference rescaled the way QUADPACK's qk21 does it.
func gk21(f func(float64) float64, a, b float64) segment {
	centr := 0.5 * (a + b)
	hlgth := 0.5 * (b - a)
	dhlgth := math.Abs(hlgth)

	var fv1, fv2 [10]float64

	fc := f(centr)
	resg := 0.0
	resk := wgk[10] * fc
	resabs := math.Abs(resk)

	for j := 0; j < 5; j++ {
		jtw := 2*j + 1
		absc := hlgth * xgk[jtw]
		f1, f2 := f(centr-absc), f(centr+absc)
		fv1[jtw], fv2[jtw] = f1, f2
		resg += wg[j] * (f1 + f2)
		resk += wgk[jtw] * (f1 + f2)
		resabs += wgk[jtw] * (math.Abs(f1) + math.Abs(f2))
	}
	for j := 0; j < 5; j++ {
		jtwm1 := 2 * j
		absc := hlgth * xgk[jtwm1]
		f1, f2 := f(centr-absc), f(centr+absc)
		fv1[jtwm1], fv2[jtwm1] = f1, f2
		resk += wgk[jtwm1] * (f1 + f2)
		resabs += wgk[jtwm1] * (math.Abs(f1) + math.Abs(f2))
	}

	reskh := 0.5 * resk
	resasc := wgk[10] * math.Abs(fc-reskh)
	for j := 0; j < 10; j++ {
		resasc += wgk[j] * (math.Abs(fv1[j]-reskh) + math.Abs(fv2[j]-reskh))
	}

	result := resk * hlgth
	resabs *= dhlgth
	resasc *= dhlgth
	abserr := math.Abs((resk - resg) * hlgth)

	if resasc != 0 && abserr != 0 {
		abserr = resasc * math.Min(1, math.Pow(200*abserr/resasc, 1.5))
	}
	if resabs > uflow/(50*epmach) {
		abserr = math.Max(epmach*50*resabs, abserr)
	}

	return segment{a: a, b: b, value: result, err: abserr}
}

// Integrate computes ∫_a^b f(x) dx by globally adaptive bisection: the
// subinterval with the largest error estimate is split until the summed
// error meets max(AbsTol, RelTol·|I|). The Upper field of cfg is ignored.
//
// Running out of subintervals returns the best estimate together with a
// *ConvergenceError; a non-finite estimate returns ErrNumericOverflow.
func Integrate(f func(float64) float64, a, b float64, cfg QuadratureConfig) (QuadResult, error) {
	if err := cfg.Validate(); err != nil {
		return QuadResult{}, err
	}
	if a == b {
		return QuadResult{Subintervals: 1}, nil
	}
	if a > b {
		res, err := Integrate(f, b, a, cfg)
		res.Value = -res.Value
		var cerr *ConvergenceError
		if errors.As(err, &cerr) {
			cerr.Estimate = -cerr.Estimate
		}
		return res, err
	}

	segs := make([]segment, 1, cfg.MaxSubintervals)
	segs[0] = gk21(f, a, b)
	evals := 21

	for {
		value, abserr := sumSegments(segs)
		res := QuadResult{Value: value, AbsErr: abserr, Subintervals: len(segs), Evaluations: evals}

		if math.IsNaN(value) || math.IsInf(value, 0) {
			return res, overflowError("integral estimate", a)
		}

		tol := math.Max(cfg.AbsTol, cfg.RelTol*math.Abs(value))
		if abserr <= tol {
			return res, nil
		}

		worst := 0
		for i := range segs {
			if segs[i].err > segs[worst].err {
				worst = i
			}
		}
		s := segs[worst]
		mid := 0.5 * (s.a + s.b)

		// A full budget, or an interval too narrow to split in float64.
		if len(segs) >= cfg.MaxSubintervals || !(s.a < mid && mid < s.b) {
			return res, &ConvergenceError{
				XF:           math.NaN(),
				Estimate:     value,
				AbsErr:       abserr,
				Tolerance:    tol,
				Subintervals: len(segs),
			}
		}

		segs[worst] = gk21(f, s.a, mid)
		segs = append(segs, gk21(f, mid, s.b))
		evals += 42
	}
}

func sumSegments(segs []segment) (value, abserr float64) {
	for _, s := range segs {
		value += s.value
		abserr += s.err
	}
	return value, abserr
}
