package dataset

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/peter-kozarec/linreg/pkg/errs"
)

// MinObservations is the smallest sample a line can be fitted through.
const MinObservations = 2

// Sample is an immutable set of paired (x, y) observations.
type Sample struct {
	x []float64
	y []float64
}

// Load validates the paired sequences and copies them into a Sample.
func Load(xs, ys []float64) (Sample, error) {
	if len(xs) != len(ys) {
		return Sample{}, fmt.Errorf("%w: len(x)=%d, len(y)=%d", errs.ErrShape, len(xs), len(ys))
	}
	if len(xs) < MinObservations {
		return Sample{}, fmt.Errorf("%w: need at least %d observations, got %d", errs.ErrShape, MinObservations, len(xs))
	}

	for i := range xs {
		if !isFinite(xs[i]) {
			return Sample{}, fmt.Errorf("%w: x[%d]=%v", errs.ErrMissingValue, i, xs[i])
		}
		if !isFinite(ys[i]) {
			return Sample{}, fmt.Errorf("%w: y[%d]=%v", errs.ErrMissingValue, i, ys[i])
		}
	}

	if IsConstant(xs) {
		return Sample{}, fmt.Errorf("%w: predictor has zero variance", errs.ErrDegenerateInput)
	}

	s := Sample{
		x: make([]float64, len(xs)),
		y: make([]float64, len(ys)),
	}
	copy(s.x, xs)
	copy(s.y, ys)
	return s, nil
}

// IsConstant reports whether every value is identical, i.e. has zero variance.
func IsConstant(values []float64) bool {
	if len(values) == 0 {
		return true
	}
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func (s Sample) Len() int { return len(s.x) }

func (s Sample) IsZero() bool { return s.x == nil }

func (s Sample) At(i int) (x, y float64) { return s.x[i], s.y[i] }

func (s Sample) X() []float64 {
	out := make([]float64, len(s.x))
	copy(out, s.x)
	return out
}

func (s Sample) Y() []float64 {
	out := make([]float64, len(s.y))
	copy(out, s.y)
	return out
}

// Fingerprint hashes the IEEE-754 bits of every pair in order.
func (s Sample) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [16]byte
	for i := range s.x {
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(s.x[i]))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(s.y[i]))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
