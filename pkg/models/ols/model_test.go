package ols

import (
	"math"
	"testing"

	"github.com/peter-kozarec/linreg/pkg/dataset"
	"github.com/peter-kozarec/linreg/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func mustSample(t *testing.T, xs, ys []float64) dataset.Sample {
	t.Helper()
	s, err := dataset.Load(xs, ys)
	require.NoError(t, err)
	return s
}

func TestModelOls_FitExactLine(t *testing.T) {
	tests := []struct {
		name      string
		intercept float64
		slope     float64
		xs        []float64
	}{
		{name: "y=2x", intercept: 0, slope: 2, xs: []float64{1, 2, 3, 4, 5}},
		{name: "y=1+2x", intercept: 1, slope: 2, xs: []float64{0, 1, 2}},
		{name: "y=-3+0.5x", intercept: -3, slope: 0.5, xs: []float64{-10, -2, 0, 4, 7.5, 11}},
		{name: "Negative slope", intercept: 100, slope: -4.25, xs: []float64{1, 3, 9, 27}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ys := make([]float64, len(tt.xs))
			for i, x := range tt.xs {
				ys[i] = tt.intercept + tt.slope*x
			}

			m, err := Fit(mustSample(t, tt.xs, ys))
			require.NoError(t, err)

			assert.InDelta(t, tt.intercept, m.Intercept, tolerance)
			assert.InDelta(t, tt.slope, m.Slope, tolerance)
			assert.InDelta(t, 1.0, m.RSquared, tolerance)
			for i, r := range m.Residuals() {
				assert.InDelta(t, 0, r, tolerance, "residual %d", i)
			}
		})
	}
}

func TestModelOls_FitKnownValues(t *testing.T) {
	m, err := Fit(mustSample(t, []float64{1, 2, 3, 4, 5}, []float64{2, 4, 5, 4, 5}))
	require.NoError(t, err)

	assert.Equal(t, 5, m.N)
	assert.Equal(t, 3, m.DF)
	assert.InDelta(t, 0.6, m.Slope, tolerance)
	assert.InDelta(t, 2.2, m.Intercept, tolerance)
	assert.InDelta(t, 3.0, m.MeanX, tolerance)
	assert.InDelta(t, 4.0, m.MeanY, tolerance)
	assert.InDelta(t, 10.0, m.Sxx, tolerance)
	assert.InDelta(t, 2.4, m.SSR, tolerance)
	assert.InDelta(t, 6.0, m.SST, tolerance)
	assert.InDelta(t, 3.6, m.SSE, tolerance)
	assert.InDelta(t, 0.6, m.RSquared, tolerance)
	assert.InDelta(t, 0.8, m.ResidualVariance, tolerance)
	assert.InDelta(t, math.Sqrt(0.8), m.ResidualStdErr, tolerance)
	assert.InDelta(t, 0.282842712474619, m.SlopeStdErr, tolerance)
	assert.InDelta(t, 0.938083151964686, m.InterceptStdErr, tolerance)

	wantFitted := []float64{2.8, 3.4, 4.0, 4.6, 5.2}
	wantResiduals := []float64{-0.8, 0.6, 1.0, -0.6, -0.2}
	fitted := m.FittedValues()
	residuals := m.Residuals()
	for i := range wantFitted {
		assert.InDelta(t, wantFitted[i], fitted[i], tolerance)
		assert.InDelta(t, wantResiduals[i], residuals[i], tolerance)
	}
}

func TestModelOls_FitZeroSlope(t *testing.T) {
	m, err := Fit(mustSample(t, []float64{1, 2, 3}, []float64{5, 5, 5}))
	require.NoError(t, err)

	assert.InDelta(t, 0, m.Slope, tolerance)
	assert.InDelta(t, 5, m.Intercept, tolerance)
	assert.Equal(t, 0.0, m.SST)
	assert.True(t, math.IsNaN(m.RSquared), "R-squared must be flagged when SST is zero")

	_, err = m.AdjustedRSquared()
	assert.ErrorIs(t, err, errs.ErrUndefinedStatistic)
}

func TestModelOls_FitTwoObservations(t *testing.T) {
	m, err := Fit(mustSample(t, []float64{1, 3}, []float64{2, 8}))
	require.NoError(t, err)

	assert.Equal(t, 0, m.DF)
	assert.InDelta(t, 3, m.Slope, tolerance)
	assert.InDelta(t, -1, m.Intercept, tolerance)
	assert.True(t, math.IsNaN(m.ResidualVariance))
	assert.True(t, math.IsNaN(m.SlopeStdErr))
	assert.True(t, math.IsNaN(m.InterceptStdErr))

	_, err = m.AdjustedRSquared()
	assert.ErrorIs(t, err, errs.ErrInsufficientData)
	_, _, err = m.FStatistic()
	assert.ErrorIs(t, err, errs.ErrInsufficientData)
	_, err = m.AIC()
	assert.ErrorIs(t, err, errs.ErrInsufficientData)
}

func TestModelOls_FitDegenerate(t *testing.T) {
	_, err := Fit(dataset.Sample{})
	assert.ErrorIs(t, err, errs.ErrDegenerateInput)

	_, err = dataset.Load([]float64{3, 3, 3}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, errs.ErrDegenerateInput)
}

func TestModelOls_PredictMatchesFitted(t *testing.T) {
	xs := []float64{0.3, 1.7, 2.2, 5.9, 8.1, 13.4}
	ys := []float64{1.1, 2.9, 2.7, 8.8, 9.1, 17.0}
	s := mustSample(t, xs, ys)

	m, err := Fit(s)
	require.NoError(t, err)

	assert.Equal(t, m.FittedValues(), Predict(m, s.X()))
}

func TestModelOls_PredictExtrapolates(t *testing.T) {
	m, err := Fit(mustSample(t, []float64{1, 2, 3}, []float64{3, 5, 7}))
	require.NoError(t, err)

	got := Predict(m, []float64{-100, 0, 1000})
	assert.InDelta(t, -199, got[0], tolerance)
	assert.InDelta(t, 1, got[1], tolerance)
	assert.InDelta(t, 2001, got[2], tolerance)
	assert.Empty(t, Predict(m, nil))
}

func TestModelOls_RSquaredInvariance(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6, 7}
	ys := []float64{1.2, 1.9, 3.4, 3.9, 5.3, 5.8, 7.4}

	base, err := Fit(mustSample(t, xs, ys))
	require.NoError(t, err)

	for _, shift := range []float64{-50, 0.5, 1e3} {
		shifted := make([]float64, len(ys))
		for i := range ys {
			shifted[i] = ys[i] + shift
		}
		m, err := Fit(mustSample(t, xs, shifted))
		require.NoError(t, err)
		assert.InDelta(t, base.RSquared, m.RSquared, 1e-9, "shift %v", shift)
	}

	for _, scale := range []float64{-3, 0.01, 250} {
		scaled := make([]float64, len(ys))
		for i := range ys {
			scaled[i] = ys[i] * scale
		}
		m, err := Fit(mustSample(t, xs, scaled))
		require.NoError(t, err)
		assert.InDelta(t, base.RSquared, m.RSquared, 1e-9, "scale %v", scale)
	}
}

func TestModelOls_Summary(t *testing.T) {
	m, err := Fit(mustSample(t, []float64{1, 2, 3, 4, 5}, []float64{2, 4, 5, 4, 5}))
	require.NoError(t, err)

	adj, err := m.AdjustedRSquared()
	require.NoError(t, err)
	assert.InDelta(t, 1-0.8/1.5, adj, tolerance)

	f, p, err := m.FStatistic()
	require.NoError(t, err)
	assert.InDelta(t, 4.5, f, tolerance)
	assert.InDelta(t, 0.124027062657, p, 1e-6)

	ll, err := m.LogLikelihood()
	require.NoError(t, err)
	assert.InDelta(t, -5.259769728322863, ll, tolerance)

	aic, err := m.AIC()
	require.NoError(t, err)
	assert.InDelta(t, 14.519539456645726, aic, tolerance)

	bic, err := m.BIC()
	require.NoError(t, err)
	assert.InDelta(t, 13.738415281513927, bic, tolerance)
}

func TestModelOls_FStatisticPerfectFit(t *testing.T) {
	m, err := Fit(mustSample(t, []float64{1, 2, 4}, []float64{2, 4, 8}))
	require.NoError(t, err)

	if m.SSR == 0 {
		f, p, err := m.FStatistic()
		require.NoError(t, err)
		assert.True(t, math.IsInf(f, 1))
		assert.Equal(t, 0.0, p)
	}
}

func TestModelOls_Coefficient(t *testing.T) {
	m, err := Fit(mustSample(t, []float64{1, 2, 3, 4, 5}, []float64{2, 4, 5, 4, 5}))
	require.NoError(t, err)

	assert.Equal(t, m.Intercept, m.Estimate(Intercept))
	assert.Equal(t, m.Slope, m.Estimate(Slope))
	assert.Equal(t, m.InterceptStdErr, m.StdErr(Intercept))
	assert.Equal(t, m.SlopeStdErr, m.StdErr(Slope))

	for name, want := range map[string]Coefficient{
		"intercept": Intercept,
		"const":     Intercept,
		" Slope ":   Slope,
		"x":         Slope,
	} {
		got, err := ParseCoefficient(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err = ParseCoefficient("beta")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	assert.True(t, math.IsNaN(m.Estimate(Coefficient(7))))
	assert.True(t, math.IsNaN(m.StdErr(Coefficient(7))))

	assert.Equal(t, "intercept", Intercept.String())
	assert.Equal(t, "slope", Slope.String())
}

func TestModelOls_FitLargeOffset(t *testing.T) {
	for _, base := range []float64{1e12, 1e13, 1e15} {
		xs := []float64{base, base + 1, base + 2, base + 3}
		ys := make([]float64, len(xs))
		for i, x := range xs {
			ys[i] = 2 * x
		}

		m, err := Fit(mustSample(t, xs, ys))
		require.NoError(t, err, "base %g", base)
		assert.Equal(t, 5.0, m.Sxx)
		assert.Equal(t, 2.0, m.Slope)
		assert.Equal(t, 0.0, m.Intercept)
	}
}

func TestModelOls_ExactFit(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
		want bool
	}{
		{name: "Integer line", xs: []float64{1, 2, 3, 4}, ys: []float64{3, 5, 7, 9}, want: true},
		{name: "Fractional line", xs: []float64{0.1, 0.2, 0.3, 0.7, 1.1}, ys: []float64{0.37, 0.44, 0.51, 0.79, 1.07}, want: true},
		{name: "Offset line", xs: []float64{1.7e12, 1.7e12 + 6e4, 1.7e12 + 1.2e5}, ys: []float64{0.1, 0.22, 0.34}, want: true},
		{name: "Noisy", xs: []float64{1, 2, 3, 4, 5}, ys: []float64{2, 4, 5, 4, 5}, want: false},
		{name: "Tiny noise", xs: []float64{1, 2, 3, 4}, ys: []float64{1, 2 + 1e-6, 3, 4}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Fit(mustSample(t, tt.xs, tt.ys))
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.ExactFit())
		})
	}
}
