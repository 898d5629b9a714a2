package analysis

import (
	"github.com/peter-kozarec/linreg/pkg/inference"
	"github.com/peter-kozarec/linreg/pkg/report"
)

type Configuration struct {
	Level              float64
	Precision          int
	BootstrapResamples int
	Seed               int64
	Workers            int
}

func DefaultConfiguration() Configuration {
	return Configuration{
		Level:     inference.DefaultLevel,
		Precision: report.DefaultPrecision,
		Seed:      1,
		Workers:   4,
	}
}
