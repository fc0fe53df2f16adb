package kernel_test

import (
	"math"
	"testing"

	"github.com/shahzebanwar/mlkernels/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewChiSquared_InvalidExponent verifies that out-of-domain exponents
// fail with ErrInvalidParameter.
func TestNewChiSquared_InvalidExponent(t *testing.T) {
	for _, bad := range []float64{0, -1, 1.0001, math.NaN()} {
		k, err := kernel.NewChiSquared[float64](bad)
		assert.ErrorIs(t, err, kernel.ErrInvalidParameter, "t=%v must be rejected", bad)
		assert.Nil(t, k)
	}
}

// TestChiSquared_PhiOrigin verifies the removable singularity: φ(0,0) is
// exactly 0, never NaN.
func TestChiSquared_PhiOrigin(t *testing.T) {
	for _, exp := range []float64{0.3, 0.5, 1} {
		k, err := kernel.NewChiSquared[float64](exp)
		require.NoError(t, err)

		got := k.Phi(0, 0)
		assert.False(t, math.IsNaN(got), "t=%v: φ(0,0) must not be NaN", exp)
		assert.Equal(t, 0.0, got, "t=%v: φ(0,0) is defined as 0", exp)
	}
}

// TestChiSquared_PhiKnownValues pins hand-computed values for t=1:
// φ(3,1) = (3−1)²/(3+1) = 1, φ(x,x) = 0.
func TestChiSquared_PhiKnownValues(t *testing.T) {
	k, err := kernel.NewChiSquared[float64](1)
	require.NoError(t, err)

	assert.Equal(t, 1.0, k.Phi(3, 1))
	assert.Equal(t, 0.0, k.Phi(4, 4), "identical inputs")
	assert.Equal(t, 2.0, k.Phi(2, 0), "(2−0)²/(2+0) = 2")
}

// TestChiSquared_PhiGeneralFormula compares Phi against the textbook
// formula ((x−y)²/(x+y))^t on non-negative inputs.
func TestChiSquared_PhiGeneralFormula(t *testing.T) {
	for _, exp := range []float64{0.25, 0.5, 0.75, 1} {
		k, err := kernel.NewChiSquared[float64](exp)
		require.NoError(t, err)
		pairs := [][2]float64{{3, 1}, {0.5, 0.25}, {10, 0}, {0, 7}, {2, 2}}
		for _, p := range pairs {
			x, y := p[0], p[1]
			want := math.Pow((x-y)*(x-y)/(x+y), exp)
			assert.InDelta(t, want, k.Phi(x, y), floatTol, "t=%v at (%v,%v)", exp, x, y)
		}
	}
}

// TestChiSquared_Metadata verifies the algebraic predicates.
func TestChiSquared_Metadata(t *testing.T) {
	k, err := kernel.NewChiSquared[float64](1)
	require.NoError(t, err)

	assert.True(t, k.IsNegDef())
	assert.False(t, k.IsMercer())
	assert.Equal(t, kernel.RangeNonNegative, k.Range())
	assert.True(t, k.AttainsZero())
	assert.Equal(t, "ChiSquaredKernel{float64}(t=1)", k.Describe())
}
