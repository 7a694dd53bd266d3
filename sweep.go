package fermistat

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// SweepPoint is one evaluated reduced Fermi level.
type SweepPoint struct {
	XF           float64 // Reduced Fermi level (Ef − Ec)/(kB·T)
	Value        float64 // F½(xf)
	AbsErr       float64 // Quadrature error estimate
	Subintervals int     // Subintervals the quadrature used
	Boltzmann    float64 // Non-degenerate limit at xf (+Inf once it overflows)
}

// SweepConfig controls Sweep execution.
type SweepConfig struct {
	Workers int          `mapstructure:"workers" yaml:"workers" validate:"gte=0"` // Concurrent evaluations (0 = GOMAXPROCS)
	Logger  *slog.Logger `mapstructure:"-" yaml:"-" validate:"-"`                 // nil = slog.Default()
}

// DefaultSweepConfig returns a config sized to GOMAXPROCS.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{}
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
// It panics if n < 2.
func Linspace(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// Sweep evaluates F½ at every xf using up to cfg.Workers goroutines.
// Points are independent; each worker writes only its own index, so the
// result keeps the input order. The first failure cancels the remaining
// points and is returned wrapped with its index.
func (e *Evaluator) Sweep(ctx context.Context, xfs []float64, cfg SweepConfig) ([]SweepPoint, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	start := time.Now()
	points := make([]SweepPoint, len(xfs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, xf := range xfs {
		i, xf := i, xf
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := e.EvaluateDetailed(xf)
			if err != nil {
				logger.Warn("sweep point failed", "index", i, "xf", xf, "err", err)
				return sweepError(i, xf, err)
			}

			boltz, err := BoltzmannApprox(xf)
			if err != nil {
				boltz = math.Inf(1)
			}

			points[i] = SweepPoint{
				XF:           xf,
				Value:        res.Value,
				AbsErr:       res.AbsErr,
				Subintervals: res.Subintervals,
				Boltzmann:    boltz,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("sweep complete",
		"points", len(points),
		"workers", workers,
		"upper", e.cfg.Upper,
		"elapsed", time.Since(start))

	return points, nil
}

// Sweep runs Evaluator.Sweep with DefaultQuadratureConfig.
func Sweep(ctx context.Context, xfs []float64, cfg SweepConfig) ([]SweepPoint, error) {
	return defaultEvaluator.Sweep(ctx, xfs, cfg)
}

// Values extracts F½ from sweep points in order.
func Values(points []SweepPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}

func sweepError(i int, xf float64, err error) error {
	return fmt.Errorf("sweep point %d (xf=%g): %w", i, xf, err)
}
