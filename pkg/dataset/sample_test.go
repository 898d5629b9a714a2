package dataset

import (
	"math"
	"testing"

	"github.com/peter-kozarec/linreg/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample_Load(t *testing.T) {
	tests := []struct {
		name    string
		xs, ys  []float64
		wantErr error
	}{
		{name: "Valid sample", xs: []float64{1, 2, 3}, ys: []float64{2, 4, 6}},
		{name: "Two observations", xs: []float64{1, 2}, ys: []float64{1, 1}},
		{name: "Length mismatch", xs: []float64{1, 2, 3}, ys: []float64{1, 2}, wantErr: errs.ErrShape},
		{name: "Single observation", xs: []float64{1}, ys: []float64{1}, wantErr: errs.ErrShape},
		{name: "Empty", xs: nil, ys: nil, wantErr: errs.ErrShape},
		{name: "Constant predictor", xs: []float64{3, 3, 3}, ys: []float64{1, 2, 3}, wantErr: errs.ErrDegenerateInput},
		{name: "Zero predictor", xs: []float64{0, 0}, ys: []float64{1, 2}, wantErr: errs.ErrDegenerateInput},
		{name: "NaN in x", xs: []float64{1, math.NaN(), 3}, ys: []float64{1, 2, 3}, wantErr: errs.ErrMissingValue},
		{name: "Inf in y", xs: []float64{1, 2, 3}, ys: []float64{1, math.Inf(1), 3}, wantErr: errs.ErrMissingValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(tt.xs, tt.ys)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, s.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.xs), s.Len())
			assert.Equal(t, tt.xs, s.X())
			assert.Equal(t, tt.ys, s.Y())
		})
	}
}

func TestSample_LoadCopiesInput(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{4, 5, 6}

	s, err := Load(xs, ys)
	require.NoError(t, err)

	xs[0] = 100
	ys[0] = 100
	x, y := s.At(0)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 4.0, y)

	out := s.X()
	out[1] = 100
	x, _ = s.At(1)
	assert.Equal(t, 2.0, x)
}

func TestSample_IsConstant(t *testing.T) {
	assert.True(t, IsConstant(nil))
	assert.True(t, IsConstant([]float64{1e9, 1e9, 1e9}))
	assert.False(t, IsConstant([]float64{1e9, 1e9 + 1, 1e9}))
	assert.False(t, IsConstant([]float64{-1, 1}))
	assert.True(t, IsConstant([]float64{0.1, 0.1, 0.1}))
	assert.True(t, IsConstant([]float64{0, math.Copysign(0, -1)}))
	assert.False(t, IsConstant([]float64{1e13, 1e13 + 1, 1e13 + 2, 1e13 + 3}))
	assert.False(t, IsConstant([]float64{1e15, 1e15 + 1, 1e15 + 2, 1e15 + 3}))
}

func TestSample_LoadLargeOffset(t *testing.T) {
	for _, base := range []float64{1e12, 1e13, 1e15} {
		xs := []float64{base, base + 1, base + 2, base + 3}
		ys := make([]float64, len(xs))
		for i, x := range xs {
			ys[i] = 2 * x
		}

		s, err := Load(xs, ys)
		require.NoError(t, err, "base %g", base)
		assert.Equal(t, 4, s.Len())
	}
}

func TestSample_Fingerprint(t *testing.T) {
	a, err := Load([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	b, err := Load([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	c, err := Load([]float64{1, 2, 3}, []float64{2, 4, 7})
	require.NoError(t, err)
	swapped, err := Load([]float64{2, 4, 6}, []float64{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), swapped.Fingerprint())
}
