package diagnostics

import (
	"fmt"

	"github.com/peter-kozarec/linreg/pkg/distribution"
	"github.com/peter-kozarec/linreg/pkg/errs"
	"github.com/peter-kozarec/linreg/pkg/models/ols"
)

const jarqueBeraDF = 2

// jbMinObservations keeps skewness and kurtosis from collapsing to constants.
const jbMinObservations = 3

type JarqueBeraResult struct {
	TestResult
	Skewness float64
	Kurtosis float64
}

func JarqueBera(residuals []float64) (JarqueBeraResult, error) {
	n := len(residuals)
	if n < jbMinObservations {
		return JarqueBeraResult{}, fmt.Errorf("%w: need at least %d residuals, got %d", errs.ErrInsufficientData, jbMinObservations, n)
	}

	mom := CentralMoments(residuals)
	if mom.Variance == 0 {
		return JarqueBeraResult{
			TestResult: TestResult{Statistic: 0, PValue: 1, DF: jarqueBeraDF},
		}, nil
	}

	excess := mom.Kurtosis - 3
	stat := float64(n) / 6 * (mom.Skewness*mom.Skewness + excess*excess/4)
	p, err := distribution.ChiSquaredSurvival(stat, jarqueBeraDF)
	if err != nil {
		return JarqueBeraResult{}, err
	}

	return JarqueBeraResult{
		TestResult: TestResult{Statistic: stat, PValue: p, DF: jarqueBeraDF},
		Skewness:   mom.Skewness,
		Kurtosis:   mom.Kurtosis,
	}, nil
}

// JarqueBeraModel tests the model's residuals. An exact fit leaves only
// round-off, which reports no departure from normality.
func JarqueBeraModel(m *ols.Model) (JarqueBeraResult, error) {
	if m.ExactFit() && m.N >= jbMinObservations {
		return JarqueBeraResult{
			TestResult: TestResult{Statistic: 0, PValue: 1, DF: jarqueBeraDF},
		}, nil
	}
	return JarqueBera(m.Residuals())
}
