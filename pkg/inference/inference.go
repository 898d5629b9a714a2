// Package inference derives confidence intervals and significance tests for
// the coefficients of a fitted line, using Student's t with N-2 degrees of freedom.
package inference

import (
	"fmt"
	"math"

	"github.com/peter-kozarec/linreg/pkg/distribution"
	"github.com/peter-kozarec/linreg/pkg/errs"
	"github.com/peter-kozarec/linreg/pkg/models/ols"
)

const DefaultLevel = 0.95

type Interval struct {
	Lower float64
	Upper float64
	Level float64
}

func (i Interval) Contains(v float64) bool { return v >= i.Lower && v <= i.Upper }

func (i Interval) Width() float64 { return i.Upper - i.Lower }

// TestResult is a test statistic with its p-value.
type TestResult struct {
	Statistic float64
	PValue    float64
	DF        float64
}

func ConfidenceInterval(m *ols.Model, c ols.Coefficient, level float64) (Interval, error) {
	tCrit, err := criticalValue(m, level)
	if err != nil {
		return Interval{}, err
	}

	estimate := m.Estimate(c)
	margin := tCrit * m.StdErr(c)
	return Interval{
		Lower: estimate - margin,
		Upper: estimate + margin,
		Level: level,
	}, nil
}

func TStatistic(m *ols.Model, c ols.Coefficient) (float64, error) {
	if err := checkDF(m); err != nil {
		return math.NaN(), err
	}

	estimate := m.Estimate(c)
	se := m.StdErr(c)
	if se == 0 {
		if estimate == 0 {
			return 0, nil
		}
		return math.Copysign(math.Inf(1), estimate), nil
	}
	return estimate / se, nil
}

// PValue is the two-sided p-value for the null hypothesis that the coefficient is zero.
func PValue(m *ols.Model, c ols.Coefficient) (float64, error) {
	res, err := Test(m, c)
	if err != nil {
		return math.NaN(), err
	}
	return res.PValue, nil
}

func Test(m *ols.Model, c ols.Coefficient) (TestResult, error) {
	t, err := TStatistic(m, c)
	if err != nil {
		return TestResult{}, err
	}

	df := float64(m.DF)
	p, err := distribution.TTwoSided(t, df)
	if err != nil {
		return TestResult{}, err
	}
	return TestResult{Statistic: t, PValue: p, DF: df}, nil
}

func criticalValue(m *ols.Model, level float64) (float64, error) {
	if !(level > 0 && level < 1) {
		return math.NaN(), fmt.Errorf("%w: %v not in (0, 1)", errs.ErrInvalidLevel, level)
	}
	if err := checkDF(m); err != nil {
		return math.NaN(), err
	}
	return distribution.TQuantile(1-(1-level)/2, float64(m.DF))
}

func checkDF(m *ols.Model) error {
	if m.DF < 1 {
		return fmt.Errorf("%w: %d observations leave %d residual degrees of freedom", errs.ErrInsufficientData, m.N, m.DF)
	}
	return nil
}
