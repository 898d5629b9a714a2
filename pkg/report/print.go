package report

import (
	"fmt"
	"strings"

	"github.com/peter-kozarec/linreg/pkg/utility"
	"go.uber.org/zap"
)

func (r *Report) Print(logger *zap.Logger) {
	logger.Info("regression report",
		zap.String("id", r.ID.String()),
		zap.String("name", r.Name),
		zap.String("fingerprint", fmt.Sprintf("%016x", r.Fingerprint)),
		zap.Int("observations", r.N),
		zap.Int("df_resid", r.DF),
		zap.String("confidence_level", r.f(r.Level)),
	)

	for _, c := range r.Coefficients {
		logger.Info("coefficient",
			zap.String("name", c.Name),
			zap.String("estimate", r.f(c.Estimate)),
			zap.String("std_err", r.f(c.StdErr)),
			zap.String("t", r.f(c.TStatistic)),
			zap.String("p_value", r.f(c.PValue)),
			zap.String("ci_lower", r.f(c.Interval.Lower)),
			zap.String("ci_upper", r.f(c.Interval.Upper)),
		)
	}

	logger.Info("goodness of fit",
		zap.String("r_squared", r.f(r.RSquared)),
		zap.String("adj_r_squared", r.f(r.AdjustedRSquared)),
		zap.String("residual_std_err", r.f(r.ResidualStdErr)),
		zap.String("f_statistic", r.f(r.FStatistic)),
		zap.String("f_p_value", r.f(r.FPValue)),
		zap.String("log_likelihood", r.f(r.LogLikelihood)),
		zap.String("aic", r.f(r.AIC)),
		zap.String("bic", r.f(r.BIC)),
	)

	logger.Info("residual diagnostics",
		zap.String("jarque_bera", r.f(r.JarqueBera.Statistic)),
		zap.String("jarque_bera_p_value", r.f(r.JarqueBera.PValue)),
		zap.String("skew", r.f(r.JarqueBera.Skewness)),
		zap.String("kurtosis", r.f(r.JarqueBera.Kurtosis)),
		zap.String("breusch_pagan", r.f(r.BreuschPagan.Statistic)),
		zap.String("breusch_pagan_p_value", r.f(r.BreuschPagan.PValue)),
		zap.String("durbin_watson", r.f(r.DurbinWatson)),
	)

	for _, b := range r.Bootstrap {
		logger.Info("bootstrap",
			zap.String("name", b.Coefficient.String()),
			zap.Int("resamples", b.Resamples),
			zap.Int("skipped", b.Skipped),
			zap.String("std_err", r.f(b.StdErr)),
			zap.String("ci_lower", r.f(b.Interval.Lower)),
			zap.String("ci_upper", r.f(b.Interval.Upper)),
		)
	}

	if len(r.Undefined) > 0 {
		logger.Warn("undefined statistics", zap.String("names", strings.Join(r.Undefined, ",")))
	}
}

func (r *Report) f(v float64) string {
	return utility.FormatFixed(v, r.Precision)
}
