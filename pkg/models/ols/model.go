// Package ols fits a straight line through paired observations by ordinary
// least squares. A Model is produced once per Fit call and never mutated.
package ols

import (
	"fmt"
	"math"

	"github.com/peter-kozarec/linreg/pkg/dataset"
	"github.com/peter-kozarec/linreg/pkg/errs"
)

// NumParams is the number of estimated coefficients.
const NumParams = 2

type Model struct {
	Intercept float64
	Slope     float64

	N  int
	DF int // residual degrees of freedom, N-2

	MeanX float64
	MeanY float64
	Sxx   float64
	Sxy   float64

	SSR float64 // residual sum of squares
	SSE float64 // explained sum of squares
	SST float64 // total sum of squares

	// NaN when DF is zero.
	ResidualVariance float64
	ResidualStdErr   float64
	InterceptStdErr  float64
	SlopeStdErr      float64

	// NaN when SST is zero.
	RSquared float64

	sample    dataset.Sample
	fitted    []float64
	residuals []float64
}

func Fit(sample dataset.Sample) (*Model, error) {
	if sample.IsZero() {
		return nil, fmt.Errorf("%w: empty sample", errs.ErrDegenerateInput)
	}

	n := sample.Len()
	x := sample.X()
	y := sample.Y()

	var meanX, meanY float64
	for i := 0; i < n; i++ {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= float64(n)
	meanY /= float64(n)

	var sxx, sxy, sst float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		sxx += dx * dx
		sxy += dx * dy
		sst += dy * dy
	}
	if sxx == 0 {
		return nil, fmt.Errorf("%w: predictor has zero variance", errs.ErrDegenerateInput)
	}

	m := &Model{
		N:     n,
		DF:    n - NumParams,
		MeanX: meanX,
		MeanY: meanY,
		Sxx:   sxx,
		Sxy:   sxy,
		SST:   sst,

		sample: sample,
	}
	m.Slope = sxy / sxx
	m.Intercept = meanY - m.Slope*meanX

	m.fitted = Predict(m, x)
	m.residuals = make([]float64, n)
	for i := 0; i < n; i++ {
		m.residuals[i] = y[i] - m.fitted[i]
		m.SSR += m.residuals[i] * m.residuals[i]
	}
	m.SSE = m.Slope * m.Slope * sxx

	if sst > 0 {
		m.RSquared = 1 - m.SSR/sst
	} else {
		m.RSquared = math.NaN()
	}

	if m.DF > 0 {
		m.ResidualVariance = m.SSR / float64(m.DF)
		m.ResidualStdErr = math.Sqrt(m.ResidualVariance)
		m.SlopeStdErr = math.Sqrt(m.ResidualVariance / sxx)
		m.InterceptStdErr = math.Sqrt(m.ResidualVariance * (1/float64(n) + meanX*meanX/sxx))
	} else {
		m.ResidualVariance = math.NaN()
		m.ResidualStdErr = math.NaN()
		m.SlopeStdErr = math.NaN()
		m.InterceptStdErr = math.NaN()
	}

	return m, nil
}

// Predict evaluates the fitted line at every x. Values outside the observed
// range are extrapolated.
func Predict(m *Model, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = m.Intercept + m.Slope*x
	}
	return out
}

func (m *Model) Sample() dataset.Sample { return m.sample }

func (m *Model) FittedValues() []float64 {
	out := make([]float64, len(m.fitted))
	copy(out, m.fitted)
	return out
}

func (m *Model) Residuals() []float64 {
	out := make([]float64, len(m.residuals))
	copy(out, m.residuals)
	return out
}

// Estimate returns NaN for an unknown coefficient.
func (m *Model) Estimate(c Coefficient) float64 {
	switch c {
	case Intercept:
		return m.Intercept
	case Slope:
		return m.Slope
	default:
		return math.NaN()
	}
}

func (m *Model) StdErr(c Coefficient) float64 {
	switch c {
	case Intercept:
		return m.InterceptStdErr
	case Slope:
		return m.SlopeStdErr
	default:
		return math.NaN()
	}
}
