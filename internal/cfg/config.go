package cfg

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/peter-kozarec/linreg/pkg/analysis"
)

const Prefix = "LINREG"

// Config is read from LINREG_* environment variables.
type Config struct {
	LogMode  string `envconfig:"LOG_MODE" default:"dev"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	ConfidenceLevel    float64 `envconfig:"CONFIDENCE_LEVEL" default:"0.95"`
	Precision          int     `envconfig:"PRECISION" default:"6"`
	Workers            int     `envconfig:"WORKERS" default:"4"`
	BootstrapResamples int     `envconfig:"BOOTSTRAP_RESAMPLES" default:"0"`
	Seed               int64   `envconfig:"SEED" default:"1"`
}

func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if !(c.ConfidenceLevel > 0 && c.ConfidenceLevel < 1) {
		return fmt.Errorf("confidence level must be in (0, 1), got %v", c.ConfidenceLevel)
	}
	if c.Precision < 0 {
		return fmt.Errorf("precision must not be negative, got %d", c.Precision)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.BootstrapResamples < 0 {
		return fmt.Errorf("bootstrap resamples must not be negative, got %d", c.BootstrapResamples)
	}
	return nil
}

func (c *Config) Analysis() analysis.Configuration {
	return analysis.Configuration{
		Level:              c.ConfidenceLevel,
		Precision:          c.Precision,
		BootstrapResamples: c.BootstrapResamples,
		Seed:               c.Seed,
		Workers:            c.Workers,
	}
}
