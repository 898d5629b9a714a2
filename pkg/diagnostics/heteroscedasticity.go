package diagnostics

import (
	"fmt"

	"github.com/peter-kozarec/linreg/pkg/distribution"
	"github.com/peter-kozarec/linreg/pkg/errs"
	"github.com/peter-kozarec/linreg/pkg/models/ols"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// BreuschPagan regresses the squared residuals on a constant and the exog
// columns. Each column holds one predictor across all observations.
func BreuschPagan(residuals []float64, exog [][]float64) (TestResult, error) {
	n := len(residuals)
	k := len(exog)
	if k == 0 {
		return TestResult{}, fmt.Errorf("%w: no exogenous columns", errs.ErrShape)
	}
	for j, col := range exog {
		if len(col) != n {
			return TestResult{}, fmt.Errorf("%w: exog column %d has %d rows, residuals have %d", errs.ErrShape, j, len(col), n)
		}
	}
	if n <= k+1 {
		return TestResult{}, fmt.Errorf("%w: auxiliary regression with %d regressors needs more than %d observations, got %d",
			errs.ErrInsufficientData, k+1, k+1, n)
	}

	squared := make([]float64, n)
	for i, r := range residuals {
		squared[i] = r * r
	}

	df := float64(k)
	r2, err := auxiliaryRSquared(squared, exog)
	if err != nil {
		return TestResult{}, err
	}
	if r2 == 0 {
		return TestResult{Statistic: 0, PValue: 1, DF: df}, nil
	}

	lm := float64(n) * r2
	p, err := distribution.ChiSquaredSurvival(lm, df)
	if err != nil {
		return TestResult{}, err
	}
	return TestResult{Statistic: lm, PValue: p, DF: df}, nil
}

// BreuschPaganModel runs the test against the predictor the model was fitted on.
// An exact fit leaves only round-off in the residuals and shows no evidence.
func BreuschPaganModel(m *ols.Model) (TestResult, error) {
	if m.ExactFit() && m.N > 2 {
		return TestResult{Statistic: 0, PValue: 1, DF: 1}, nil
	}
	return BreuschPagan(m.Residuals(), [][]float64{m.Sample().X()})
}

// auxiliaryRSquared fits y on [1, exog] by QR least squares. A response with no
// variance yields zero.
func auxiliaryRSquared(y []float64, exog [][]float64) (float64, error) {
	n := len(y)
	k := len(exog) + 1

	// Centred columns span the same space as raw ones next to the constant,
	// and keep a large offset such as a unix timestamp from ill-conditioning QR.
	means := make([]float64, len(exog))
	for j, col := range exog {
		means[j] = floats.Sum(col) / float64(n)
	}

	design := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		design.Set(i, 0, 1)
		for j, col := range exog {
			design.Set(i, j+1, col[i]-means[j])
		}
	}
	response := mat.NewVecDense(n, y)

	var qr mat.QR
	qr.Factorize(design)

	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, response); err != nil {
		return 0, fmt.Errorf("%w: auxiliary regression is singular: %v", errs.ErrDegenerateInput, err)
	}

	var fitted mat.VecDense
	fitted.MulVec(design, &beta)

	mean := floats.Sum(y) / float64(n)
	var ssr, sst float64
	for i := 0; i < n; i++ {
		e := y[i] - fitted.AtVec(i)
		d := y[i] - mean
		ssr += e * e
		sst += d * d
	}
	if sst == 0 {
		return 0, nil
	}

	r2 := 1 - ssr/sst
	if r2 < 0 {
		r2 = 0
	}
	return r2, nil
}
