package ols

import (
	"fmt"
	"strings"

	"github.com/peter-kozarec/linreg/pkg/errs"
)

type Coefficient uint8

const (
	Intercept Coefficient = iota
	Slope
)

var Coefficients = []Coefficient{Intercept, Slope}

func (c Coefficient) String() string {
	switch c {
	case Intercept:
		return "intercept"
	case Slope:
		return "slope"
	default:
		return fmt.Sprintf("coefficient(%d)", uint8(c))
	}
}

// ParseCoefficient accepts the coefficient names used in regression summaries.
func ParseCoefficient(name string) (Coefficient, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "intercept", "const", "b0":
		return Intercept, nil
	case "slope", "x", "b1":
		return Slope, nil
	}
	return 0, fmt.Errorf("%w: unknown coefficient %q", errs.ErrInvalidArgument, name)
}
