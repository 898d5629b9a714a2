package inference

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/peter-kozarec/linreg/pkg/dataset"
	"github.com/peter-kozarec/linreg/pkg/errs"
	"github.com/peter-kozarec/linreg/pkg/models/ols"
	"gonum.org/v1/gonum/stat"
)

type BootstrapResult struct {
	Coefficient ols.Coefficient
	Estimate    float64
	StdErr      float64
	Interval    Interval
	Resamples   int
	Skipped     int // resamples whose predictor was constant
}

// Bootstrap resamples (x, y) pairs with replacement and returns the percentile
// interval of the refitted coefficient.
func Bootstrap(sample dataset.Sample, c ols.Coefficient, level float64, resamples int, rng *rand.Rand) (BootstrapResult, error) {
	if resamples < 1 {
		return BootstrapResult{}, fmt.Errorf("%w: resamples must be positive, got %d", errs.ErrInvalidArgument, resamples)
	}
	if !(level > 0 && level < 1) {
		return BootstrapResult{}, fmt.Errorf("%w: %v not in (0, 1)", errs.ErrInvalidLevel, level)
	}
	if rng == nil {
		return BootstrapResult{}, fmt.Errorf("%w: nil random source", errs.ErrInvalidArgument)
	}

	base, err := ols.Fit(sample)
	if err != nil {
		return BootstrapResult{}, err
	}

	n := sample.Len()
	xs := make([]float64, n)
	ys := make([]float64, n)
	estimates := make([]float64, 0, resamples)
	skipped := 0

	for r := 0; r < resamples; r++ {
		for i := 0; i < n; i++ {
			xs[i], ys[i] = sample.At(rng.Intn(n))
		}

		resampled, err := dataset.Load(xs, ys)
		if err != nil {
			skipped++
			continue
		}
		m, err := ols.Fit(resampled)
		if err != nil {
			skipped++
			continue
		}
		estimates = append(estimates, m.Estimate(c))
	}

	if len(estimates) < 2 {
		return BootstrapResult{}, fmt.Errorf("%w: %d of %d resamples were degenerate", errs.ErrInsufficientData, skipped, resamples)
	}

	sort.Float64s(estimates)
	alpha := (1 - level) / 2
	return BootstrapResult{
		Coefficient: c,
		Estimate:    base.Estimate(c),
		StdErr:      stat.StdDev(estimates, nil),
		Interval: Interval{
			Lower: quantile(estimates, alpha),
			Upper: quantile(estimates, 1-alpha),
			Level: level,
		},
		Resamples: resamples,
		Skipped:   skipped,
	}, nil
}

// quantile interpolates linearly between order statistics of sorted values.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[n-1]
	}

	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
