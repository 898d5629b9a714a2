// Package distribution exposes the reference distributions used by the
// regression tests. Every function is pure and validates its degrees of freedom.
package distribution

import (
	"fmt"
	"math"

	"github.com/peter-kozarec/linreg/pkg/errs"
	"gonum.org/v1/gonum/stat/distuv"
)

// TQuantile returns the p-quantile of Student's t distribution with df degrees of freedom.
func TQuantile(p, df float64) (float64, error) {
	if err := checkDF(df); err != nil {
		return math.NaN(), err
	}
	if !(p > 0 && p < 1) {
		return math.NaN(), fmt.Errorf("%w: probability %v outside (0, 1)", errs.ErrInvalidArgument, p)
	}
	return studentsT(df).Quantile(p), nil
}

// TTwoSided returns P(|T| >= |t|) for T ~ t(df).
func TTwoSided(t, df float64) (float64, error) {
	if err := checkDF(df); err != nil {
		return math.NaN(), err
	}
	if math.IsNaN(t) {
		return math.NaN(), fmt.Errorf("%w: t statistic is NaN", errs.ErrInvalidArgument)
	}
	if math.IsInf(t, 0) {
		return 0, nil
	}
	return clamp(2 * studentsT(df).Survival(math.Abs(t))), nil
}

// ChiSquaredSurvival returns the upper tail P(X >= x) for X ~ chi2(df).
func ChiSquaredSurvival(x, df float64) (float64, error) {
	if err := checkDF(df); err != nil {
		return math.NaN(), err
	}
	if math.IsNaN(x) {
		return math.NaN(), fmt.Errorf("%w: chi-squared statistic is NaN", errs.ErrInvalidArgument)
	}
	if x <= 0 {
		return 1, nil
	}
	if math.IsInf(x, 1) {
		return 0, nil
	}
	return clamp(distuv.ChiSquared{K: df}.Survival(x)), nil
}

// FSurvival returns the upper tail P(X >= f) for X ~ F(d1, d2).
func FSurvival(f, d1, d2 float64) (float64, error) {
	if err := checkDF(d1); err != nil {
		return math.NaN(), err
	}
	if err := checkDF(d2); err != nil {
		return math.NaN(), err
	}
	if math.IsNaN(f) {
		return math.NaN(), fmt.Errorf("%w: F statistic is NaN", errs.ErrInvalidArgument)
	}
	if f <= 0 {
		return 1, nil
	}
	if math.IsInf(f, 1) {
		return 0, nil
	}
	return clamp(1 - distuv.F{D1: d1, D2: d2}.CDF(f)), nil
}

func studentsT(df float64) distuv.StudentsT {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
}

func checkDF(df float64) error {
	if !(df > 0) || math.IsInf(df, 0) {
		return fmt.Errorf("%w: degrees of freedom %v must be positive", errs.ErrInsufficientData, df)
	}
	return nil
}

func clamp(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
