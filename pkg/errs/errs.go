package errs

import "errors"

var (
	ErrShape              = errors.New("shape mismatch")
	ErrMissingValue       = errors.New("missing value")
	ErrDegenerateInput    = errors.New("degenerate input")
	ErrInsufficientData   = errors.New("insufficient data")
	ErrUndefinedStatistic = errors.New("undefined statistic")
	ErrInvalidLevel       = errors.New("invalid confidence level")
	ErrInvalidArgument    = errors.New("invalid argument")
)
