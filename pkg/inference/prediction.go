package inference

import (
	"fmt"
	"math"
	"strings"

	"github.com/peter-kozarec/linreg/pkg/errs"
	"github.com/peter-kozarec/linreg/pkg/models/ols"
)

type PredictionKind uint8

const (
	MeanResponse PredictionKind = iota
	NewObservation
)

func (k PredictionKind) String() string {
	if k == NewObservation {
		return "observation"
	}
	return "mean"
}

func ParsePredictionKind(s string) (PredictionKind, error) {
	switch strings.ToLower(s) {
	case "mean", "":
		return MeanResponse, nil
	case "observation", "new":
		return NewObservation, nil
	default:
		return 0, fmt.Errorf("%w: unknown prediction kind %q", errs.ErrInvalidArgument, s)
	}
}

type Prediction struct {
	X        float64
	Value    float64
	StdErr   float64
	Interval Interval
}

// PredictionInterval brackets either the mean response at x0 or a single new
// observation drawn at x0.
func PredictionInterval(m *ols.Model, x0 float64, level float64, kind PredictionKind) (Prediction, error) {
	tCrit, err := criticalValue(m, level)
	if err != nil {
		return Prediction{}, err
	}

	dx := x0 - m.MeanX
	leverage := 1/float64(m.N) + dx*dx/m.Sxx
	if kind == NewObservation {
		leverage++
	}

	value := m.Intercept + m.Slope*x0
	se := m.ResidualStdErr * math.Sqrt(leverage)
	return Prediction{
		X:      x0,
		Value:  value,
		StdErr: se,
		Interval: Interval{
			Lower: value - tCrit*se,
			Upper: value + tCrit*se,
			Level: level,
		},
	}, nil
}
