package ols

import (
	"fmt"
	"math"

	"github.com/peter-kozarec/linreg/pkg/distribution"
	"github.com/peter-kozarec/linreg/pkg/errs"
)

// SSR at or below this fraction of the squared magnitude of the fitted terms
// is float64 round-off.
const exactFitTolerance = 1e-24

// ExactFit reports whether the line passes through every observation up to
// round-off. The residuals of such a fit carry no information about the noise.
func (m *Model) ExactFit() bool {
	if m.SSR == 0 {
		return true
	}
	n := float64(m.N)
	sumY2 := m.SST + n*m.MeanY*m.MeanY
	sumX2 := m.Sxx + n*m.MeanX*m.MeanX
	return m.SSR <= exactFitTolerance*(sumY2+m.Slope*m.Slope*sumX2)
}

func (m *Model) requireDF() error {
	if m.DF < 1 {
		return fmt.Errorf("%w: residual degrees of freedom is %d", errs.ErrInsufficientData, m.DF)
	}
	return nil
}

func (m *Model) AdjustedRSquared() (float64, error) {
	if err := m.requireDF(); err != nil {
		return math.NaN(), err
	}
	if m.SST == 0 {
		return math.NaN(), fmt.Errorf("%w: total sum of squares is zero", errs.ErrUndefinedStatistic)
	}
	return 1 - (m.SSR/float64(m.DF))/(m.SST/float64(m.N-1)), nil
}

// FStatistic tests the slope against the intercept-only model.
func (m *Model) FStatistic() (f, pValue float64, err error) {
	if err := m.requireDF(); err != nil {
		return math.NaN(), math.NaN(), err
	}
	if m.SSR == 0 {
		if m.SSE == 0 {
			return math.NaN(), math.NaN(), fmt.Errorf("%w: both sums of squares are zero", errs.ErrUndefinedStatistic)
		}
		return math.Inf(1), 0, nil
	}

	f = m.SSE / (m.SSR / float64(m.DF))
	pValue, err = distribution.FSurvival(f, NumParams-1, float64(m.DF))
	return f, pValue, err
}

// LogLikelihood is the Gaussian log-likelihood at the maximum likelihood variance SSR/N.
func (m *Model) LogLikelihood() (float64, error) {
	if err := m.requireDF(); err != nil {
		return math.NaN(), err
	}
	n := float64(m.N)
	return -n / 2 * (1 + math.Log(2*math.Pi*m.SSR/n)), nil
}

func (m *Model) AIC() (float64, error) {
	ll, err := m.LogLikelihood()
	if err != nil {
		return math.NaN(), err
	}
	return -2*ll + 2*NumParams, nil
}

func (m *Model) BIC() (float64, error) {
	ll, err := m.LogLikelihood()
	if err != nil {
		return math.NaN(), err
	}
	return -2*ll + NumParams*math.Log(float64(m.N)), nil
}
