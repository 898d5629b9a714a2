// Package diagnostics checks the assumptions behind a fitted line: goodness of
// fit, normality and equal variance of residuals, and their independence.
//
// The tests follow the textbook definitions. Jarque-Bera uses population
// (biased) moments. Breusch-Pagan is the studentized form LM = n·R² of the
// auxiliary regression of squared residuals on a constant and the predictors.
package diagnostics

import (
	"fmt"
	"math"

	"github.com/peter-kozarec/linreg/pkg/errs"
	"github.com/peter-kozarec/linreg/pkg/inference"
	"github.com/peter-kozarec/linreg/pkg/models/ols"
)

type TestResult = inference.TestResult

// RSquared returns 1-SSR/SST. A constant response has no variance to explain,
// so the statistic is reported as undefined instead of dividing by zero.
func RSquared(m *ols.Model) (float64, error) {
	if m.SST == 0 {
		return math.NaN(), fmt.Errorf("%w: total sum of squares is zero", errs.ErrUndefinedStatistic)
	}
	return 1 - m.SSR/m.SST, nil
}

// DurbinWatson measures first order autocorrelation of residuals taken in
// observation order. Values near 2 indicate independence.
func DurbinWatson(residuals []float64) (float64, error) {
	if len(residuals) < 2 {
		return math.NaN(), fmt.Errorf("%w: need at least 2 residuals, got %d", errs.ErrInsufficientData, len(residuals))
	}

	var num, den float64
	for i, r := range residuals {
		den += r * r
		if i > 0 {
			d := r - residuals[i-1]
			num += d * d
		}
	}
	if den == 0 {
		return math.NaN(), fmt.Errorf("%w: residual sum of squares is zero", errs.ErrUndefinedStatistic)
	}
	return num / den, nil
}

// DurbinWatsonModel is undefined for an exact fit, whose residuals are round-off.
func DurbinWatsonModel(m *ols.Model) (float64, error) {
	if m.ExactFit() && m.N >= 2 {
		return math.NaN(), fmt.Errorf("%w: residuals of an exact fit are round-off", errs.ErrUndefinedStatistic)
	}
	return DurbinWatson(m.Residuals())
}
