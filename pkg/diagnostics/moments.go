package diagnostics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type Moments struct {
	Mean     float64
	Variance float64 // population variance
	Skewness float64
	Kurtosis float64 // not excess; 3 for a normal distribution
}

// CentralMoments returns the population moments of values. Skewness and
// kurtosis are zero when the values have no variance.
func CentralMoments(values []float64) Moments {
	n := float64(len(values))
	if n == 0 {
		return Moments{}
	}

	mean := floats.Sum(values) / n

	var m2, m3, m4 float64
	for _, v := range values {
		d := v - mean
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	m2 /= n
	m3 /= n
	m4 /= n

	res := Moments{Mean: mean, Variance: m2}
	if m2 > 0 {
		res.Skewness = m3 / math.Pow(m2, 1.5)
		res.Kurtosis = m4 / (m2 * m2)
	}
	return res
}
