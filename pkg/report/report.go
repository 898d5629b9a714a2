package report

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/peter-kozarec/linreg/pkg/dataset"
	"github.com/peter-kozarec/linreg/pkg/diagnostics"
	"github.com/peter-kozarec/linreg/pkg/errs"
	"github.com/peter-kozarec/linreg/pkg/inference"
	"github.com/peter-kozarec/linreg/pkg/models/ols"
	"github.com/peter-kozarec/linreg/pkg/utility"
)

const DefaultPrecision = 6

type Coefficient struct {
	Name       string
	Estimate   float64
	StdErr     float64
	TStatistic float64
	PValue     float64
	Interval   inference.Interval
}

type Report struct {
	ID          utility.ExecutionID
	Name        string
	CreatedAt   time.Time
	Fingerprint uint64
	Precision   int

	N     int
	DF    int
	Level float64

	Coefficients   []Coefficient
	ResidualStdErr float64

	RSquared         float64
	AdjustedRSquared float64
	FStatistic       float64
	FPValue          float64
	LogLikelihood    float64
	AIC              float64
	BIC              float64

	JarqueBera   diagnostics.JarqueBeraResult
	BreuschPagan diagnostics.TestResult
	DurbinWatson float64

	Bootstrap []inference.BootstrapResult

	// Statistics that have no value for this sample, e.g. R-squared of a constant response.
	Undefined []string

	sample dataset.Sample
	model  *ols.Model
}

func New(name string, sample dataset.Sample, model *ols.Model) *Report {
	return &Report{
		ID:          utility.NewExecutionID(),
		Name:        name,
		CreatedAt:   time.Now().UTC(),
		Fingerprint: sample.Fingerprint(),
		Precision:   DefaultPrecision,

		N:              model.N,
		DF:             model.DF,
		ResidualStdErr: model.ResidualStdErr,

		RSquared:         math.NaN(),
		AdjustedRSquared: math.NaN(),
		FStatistic:       math.NaN(),
		FPValue:          math.NaN(),
		LogLikelihood:    math.NaN(),
		AIC:              math.NaN(),
		BIC:              math.NaN(),
		DurbinWatson:     math.NaN(),

		sample: sample,
		model:  model,
	}
}

// Build loads, fits and fully analyses one dataset.
func Build(name string, xs, ys []float64, level float64) (*Report, error) {
	sample, err := dataset.Load(xs, ys)
	if err != nil {
		return nil, err
	}
	model, err := ols.Fit(sample)
	if err != nil {
		return nil, err
	}

	r := New(name, sample, model)
	if err := r.AddInference(level); err != nil {
		return nil, err
	}
	if err := r.AddDiagnostics(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Report) Model() *ols.Model { return r.model }

func (r *Report) Sample() dataset.Sample { return r.sample }

func (r *Report) AddInference(level float64) error {
	coefficients := make([]Coefficient, 0, len(ols.Coefficients))
	for _, c := range ols.Coefficients {
		test, err := inference.Test(r.model, c)
		if err != nil {
			return fmt.Errorf("%s test: %w", c, err)
		}
		ci, err := inference.ConfidenceInterval(r.model, c, level)
		if err != nil {
			return fmt.Errorf("%s confidence interval: %w", c, err)
		}
		coefficients = append(coefficients, Coefficient{
			Name:       c.String(),
			Estimate:   r.model.Estimate(c),
			StdErr:     r.model.StdErr(c),
			TStatistic: test.Statistic,
			PValue:     test.PValue,
			Interval:   ci,
		})
	}

	r.Level = level
	r.Coefficients = coefficients
	return nil
}

func (r *Report) AddDiagnostics() error {
	var err error

	if r.RSquared, err = diagnostics.RSquared(r.model); r.tolerate("r_squared", err) != nil {
		return err
	}
	if r.AdjustedRSquared, err = r.model.AdjustedRSquared(); r.tolerate("adj_r_squared", err) != nil {
		return err
	}
	if r.FStatistic, r.FPValue, err = r.model.FStatistic(); r.tolerate("f_statistic", err) != nil {
		return err
	}
	if r.LogLikelihood, err = r.model.LogLikelihood(); err != nil {
		return err
	}
	if r.AIC, err = r.model.AIC(); err != nil {
		return err
	}
	if r.BIC, err = r.model.BIC(); err != nil {
		return err
	}
	if r.JarqueBera, err = diagnostics.JarqueBeraModel(r.model); err != nil {
		return fmt.Errorf("jarque-bera: %w", err)
	}
	if r.BreuschPagan, err = diagnostics.BreuschPaganModel(r.model); err != nil {
		return fmt.Errorf("breusch-pagan: %w", err)
	}
	if r.DurbinWatson, err = diagnostics.DurbinWatsonModel(r.model); r.tolerate("durbin_watson", err) != nil {
		return err
	}
	return nil
}

func (r *Report) AddBootstrap(resamples int, rng *rand.Rand) error {
	level := r.Level
	if level == 0 {
		level = inference.DefaultLevel
	}

	results := make([]inference.BootstrapResult, 0, len(ols.Coefficients))
	for _, c := range ols.Coefficients {
		res, err := inference.Bootstrap(r.sample, c, level, resamples, rng)
		if err != nil {
			return fmt.Errorf("%s bootstrap: %w", c, err)
		}
		results = append(results, res)
	}
	r.Bootstrap = results
	return nil
}

func (r *Report) Coefficient(c ols.Coefficient) (Coefficient, bool) {
	for _, coef := range r.Coefficients {
		if coef.Name == c.String() {
			return coef, true
		}
	}
	return Coefficient{}, false
}

// tolerate records an undefined statistic and swallows the error; any other
// error is passed through.
func (r *Report) tolerate(name string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errs.ErrUndefinedStatistic) {
		r.Undefined = append(r.Undefined, name)
		return nil
	}
	return err
}
