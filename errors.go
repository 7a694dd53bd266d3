package fermistat

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every failure returned by this package wraps one of these.
var (
	// ErrInvalidTemperature indicates a negative or NaN temperature.
	ErrInvalidTemperature = errors.New("fermistat: invalid temperature")

	// ErrDomain indicates an energy at or below the band edge.
	ErrDomain = errors.New("fermistat: energy outside density-of-states domain")

	// ErrConvergence indicates the quadrature exhausted its subinterval budget
	// without meeting the requested tolerance.
	ErrConvergence = errors.New("fermistat: quadrature did not converge")

	// ErrNumericOverflow indicates an intermediate or final value left the
	// finite float64 range.
	ErrNumericOverflow = errors.New("fermistat: numeric overflow")
)

// TemperatureError carries the rejected temperature.
type TemperatureError struct {
	T float64
}

func (e *TemperatureError) Error() string {
	return fmt.Sprintf("%v: T=%g K (must be >= 0)", ErrInvalidTemperature, e.T)
}

func (e *TemperatureError) Unwrap() error { return ErrInvalidTemperature }

// DomainError carries the energy and band edge that were rejected.
type DomainError struct {
	E  float64
	Ec float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%v: e=%g eV, ec=%g eV (need e > ec)", ErrDomain, e.E, e.Ec)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// ConvergenceError reports the best estimate reached before the
// subinterval budget ran out.
type ConvergenceError struct {
	XF           float64 // Reduced Fermi level being evaluated (NaN for raw Integrate calls)
	Estimate     float64 // Best integral estimate
	AbsErr       float64 // Achieved absolute error estimate
	Tolerance    float64 // Requested max(AbsTol, RelTol·|Estimate|)
	Subintervals int     // Subintervals used
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%v: xf=%g estimate=%.10g abserr=%.3g > tol=%.3g after %d subintervals",
		ErrConvergence, e.XF, e.Estimate, e.AbsErr, e.Tolerance, e.Subintervals)
}

func (e *ConvergenceError) Unwrap() error { return ErrConvergence }

// overflowError wraps ErrNumericOverflow with the quantity that overflowed.
func overflowError(what string, input float64) error {
	return fmt.Errorf("%w: %s at input %g", ErrNumericOverflow, what, input)
}
