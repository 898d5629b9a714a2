package distribution

import (
	"math"
	"testing"

	"github.com/peter-kozarec/linreg/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistribution_TQuantile(t *testing.T) {
	tests := []struct {
		name string
		p    float64
		df   float64
		want float64
	}{
		{name: "df=1 97.5%", p: 0.975, df: 1, want: 12.706204736},
		{name: "df=3 97.5%", p: 0.975, df: 3, want: 3.182446305},
		{name: "df=10 95%", p: 0.95, df: 10, want: 1.812461123},
		{name: "df=30 97.5%", p: 0.975, df: 30, want: 2.042272456},
		{name: "Median", p: 0.5, df: 5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TQuantile(tt.p, tt.df)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestDistribution_TQuantileInvalid(t *testing.T) {
	_, err := TQuantile(0.975, 0)
	assert.ErrorIs(t, err, errs.ErrInsufficientData)

	_, err = TQuantile(0.975, -1)
	assert.ErrorIs(t, err, errs.ErrInsufficientData)

	_, err = TQuantile(1, 5)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = TQuantile(0, 5)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestDistribution_TTwoSided(t *testing.T) {
	p, err := TTwoSided(0, 10)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p, 1e-12)

	p, err = TTwoSided(2.228138852, 10)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, p, 1e-6)

	neg, err := TTwoSided(-2.228138852, 10)
	require.NoError(t, err)
	assert.InDelta(t, p, neg, 1e-12)

	p, err = TTwoSided(math.Inf(1), 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)

	_, err = TTwoSided(1, 0)
	assert.ErrorIs(t, err, errs.ErrInsufficientData)
}

func TestDistribution_TTwoSidedMonotone(t *testing.T) {
	prev := 1.0
	for ts := 0.0; ts <= 10; ts += 0.25 {
		p, err := TTwoSided(ts, 4)
		require.NoError(t, err)
		assert.LessOrEqual(t, p, prev)
		assert.GreaterOrEqual(t, p, 0.0)
		prev = p
	}
}

func TestDistribution_ChiSquaredSurvival(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		df   float64
		want float64
	}{
		{name: "df=2 closed form", x: 3, df: 2, want: math.Exp(-1.5)},
		{name: "df=1 critical", x: 3.841458821, df: 1, want: 0.05},
		{name: "df=2 critical", x: 5.991464547, df: 2, want: 0.05},
		{name: "Zero statistic", x: 0, df: 2, want: 1},
		{name: "Infinite statistic", x: math.Inf(1), df: 2, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ChiSquaredSurvival(tt.x, tt.df)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}

	_, err := ChiSquaredSurvival(1, 0)
	assert.ErrorIs(t, err, errs.ErrInsufficientData)
}

func TestDistribution_FSurvival(t *testing.T) {
	p, err := FSurvival(4.964602744, 1, 10)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, p, 1e-6)

	p, err = FSurvival(0, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)

	_, err = FSurvival(1, 1, 0)
	assert.ErrorIs(t, err, errs.ErrInsufficientData)
}
