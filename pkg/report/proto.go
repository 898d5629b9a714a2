package report

import (
	"fmt"
	"math"
	"time"

	"github.com/peter-kozarec/linreg/pkg/inference"
	"github.com/peter-kozarec/linreg/pkg/utility"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Proto converts the report into a protobuf Struct. Non-finite values are
// encoded as strings because google.protobuf.Value cannot carry them.
func (r *Report) Proto() (*structpb.Struct, error) {
	coefficients := make([]interface{}, 0, len(r.Coefficients))
	for _, c := range r.Coefficients {
		coefficients = append(coefficients, map[string]interface{}{
			"name":     c.Name,
			"estimate": r.num(c.Estimate),
			"std_err":  r.num(c.StdErr),
			"t":        r.num(c.TStatistic),
			"p_value":  r.num(c.PValue),
			"interval": r.interval(c.Interval),
		})
	}

	bootstrap := make([]interface{}, 0, len(r.Bootstrap))
	for _, b := range r.Bootstrap {
		bootstrap = append(bootstrap, map[string]interface{}{
			"name":      b.Coefficient.String(),
			"resamples": b.Resamples,
			"skipped":   b.Skipped,
			"std_err":   r.num(b.StdErr),
			"interval":  r.interval(b.Interval),
		})
	}

	undefined := make([]interface{}, 0, len(r.Undefined))
	for _, u := range r.Undefined {
		undefined = append(undefined, u)
	}

	s, err := structpb.NewStruct(map[string]interface{}{
		"id":               r.ID.String(),
		"name":             r.Name,
		"created_at":       r.CreatedAt.Format(time.RFC3339Nano),
		"fingerprint":      fmt.Sprintf("%016x", r.Fingerprint),
		"observations":     r.N,
		"df_resid":         r.DF,
		"confidence_level": r.num(r.Level),
		"coefficients":     coefficients,
		"fit": map[string]interface{}{
			"r_squared":        r.num(r.RSquared),
			"adj_r_squared":    r.num(r.AdjustedRSquared),
			"residual_std_err": r.num(r.ResidualStdErr),
			"f_statistic":      r.num(r.FStatistic),
			"f_p_value":        r.num(r.FPValue),
			"log_likelihood":   r.num(r.LogLikelihood),
			"aic":              r.num(r.AIC),
			"bic":              r.num(r.BIC),
		},
		"diagnostics": map[string]interface{}{
			"jarque_bera": map[string]interface{}{
				"statistic": r.num(r.JarqueBera.Statistic),
				"p_value":   r.num(r.JarqueBera.PValue),
				"df":        r.num(r.JarqueBera.DF),
				"skew":      r.num(r.JarqueBera.Skewness),
				"kurtosis":  r.num(r.JarqueBera.Kurtosis),
			},
			"breusch_pagan": map[string]interface{}{
				"statistic": r.num(r.BreuschPagan.Statistic),
				"p_value":   r.num(r.BreuschPagan.PValue),
				"df":        r.num(r.BreuschPagan.DF),
			},
			"durbin_watson": r.num(r.DurbinWatson),
		},
		"bootstrap": bootstrap,
		"undefined": undefined,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to convert report %s: %w", r.ID, err)
	}
	return s, nil
}

func (r *Report) MarshalJSON() ([]byte, error) {
	s, err := r.Proto()
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(s)
}

func (r *Report) num(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return utility.FormatFixed(v, r.Precision)
	}
	return utility.Round(v, r.Precision)
}

func (r *Report) interval(i inference.Interval) map[string]interface{} {
	return map[string]interface{}{
		"lower": r.num(i.Lower),
		"upper": r.num(i.Upper),
		"level": r.num(i.Level),
	}
}
