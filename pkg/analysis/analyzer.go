package analysis

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/peter-kozarec/linreg/pkg/dataset"
	"github.com/peter-kozarec/linreg/pkg/datasource"
	"github.com/peter-kozarec/linreg/pkg/middleware"
	"github.com/peter-kozarec/linreg/pkg/models/ols"
	"github.com/peter-kozarec/linreg/pkg/report"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Job names one dataset. Source takes precedence over Xs and Ys when set.
type Job struct {
	Name   string
	Source datasource.PairSource
	Xs     []float64
	Ys     []float64
}

// Analysis is the state a single job carries through its stages.
type Analysis struct {
	Job    Job
	Sample dataset.Sample
	Model  *ols.Model
	Report *report.Report

	rng *rand.Rand
}

type Stage func(ctx context.Context, a *Analysis) error

type namedStage struct {
	name string
	run  Stage
}

type Analyzer struct {
	logger *zap.Logger
	cfg    Configuration
	wrap   func(middleware.StageHandler) middleware.StageHandler
	stages []namedStage
}

func NewAnalyzer(logger *zap.Logger, cfg Configuration, telemetry *middleware.Telemetry, monitor *middleware.Monitor) *Analyzer {
	a := &Analyzer{
		logger: logger,
		cfg:    cfg,
		wrap:   middleware.Chain(telemetry.WithStage, monitor.WithStage),
	}

	a.stages = []namedStage{
		{middleware.StageLoad, a.load},
		{middleware.StageFit, a.fit},
		{middleware.StageInference, a.inference},
		{middleware.StageDiagnostics, a.diagnostics},
	}
	if cfg.BootstrapResamples > 0 {
		a.stages = append(a.stages, namedStage{middleware.StageBootstrap, a.bootstrap})
	}
	return a
}

func (a *Analyzer) Analyze(ctx context.Context, job Job) (*report.Report, error) {
	return a.analyze(ctx, job, a.cfg.Seed)
}

// AnalyzeAll runs the jobs on at most Workers goroutines and returns their
// reports in job order. The first failure cancels the remaining jobs.
func (a *Analyzer) AnalyzeAll(ctx context.Context, jobs []Job) ([]*report.Report, error) {
	reports := make([]*report.Report, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if a.cfg.Workers > 0 {
		g.SetLimit(a.cfg.Workers)
	}

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			r, err := a.analyze(ctx, job, a.cfg.Seed+int64(i))
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (a *Analyzer) analyze(ctx context.Context, job Job, seed int64) (*report.Report, error) {
	state := &Analysis{
		Job: job,
		rng: rand.New(rand.NewSource(seed)),
	}

	for _, stage := range a.stages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", job.Name, err)
		}

		run := stage.run
		handler := a.wrap(func(ctx context.Context, _ string) error {
			return run(ctx, state)
		})
		if err := handler(ctx, stage.name); err != nil {
			return nil, fmt.Errorf("%s: %s stage: %w", job.Name, stage.name, err)
		}
	}

	a.logger.Debug("analysis finished",
		zap.String("name", job.Name),
		zap.String("id", state.Report.ID.String()),
		zap.Int("observations", state.Report.N))

	return state.Report, nil
}

func (a *Analyzer) load(_ context.Context, s *Analysis) error {
	xs, ys := s.Job.Xs, s.Job.Ys
	if s.Job.Source != nil {
		var err error
		if xs, ys, err = datasource.Collect(s.Job.Source); err != nil {
			return err
		}
	}

	sample, err := dataset.Load(xs, ys)
	if err != nil {
		return err
	}
	s.Sample = sample
	return nil
}

func (a *Analyzer) fit(_ context.Context, s *Analysis) error {
	model, err := ols.Fit(s.Sample)
	if err != nil {
		return err
	}
	s.Model = model
	s.Report = report.New(s.Job.Name, s.Sample, model)
	s.Report.Precision = a.cfg.Precision
	return nil
}

func (a *Analyzer) inference(_ context.Context, s *Analysis) error {
	return s.Report.AddInference(a.cfg.Level)
}

func (a *Analyzer) diagnostics(_ context.Context, s *Analysis) error {
	return s.Report.AddDiagnostics()
}

func (a *Analyzer) bootstrap(_ context.Context, s *Analysis) error {
	return s.Report.AddBootstrap(a.cfg.BootstrapResamples, s.rng)
}
