package kernel_test

import (
	"testing"

	"github.com/shahzebanwar/mlkernels/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSum_AdditiveComposition verifies the per-dimension sum on a
// hand-computed case: Σ (xᵢ−yᵢ)² over x=[1,2,3], y=[1,0,1] is 0+4+4 = 8.
func TestSum_AdditiveComposition(t *testing.T) {
	k, err := kernel.NewSquaredDistance[float64](1)
	require.NoError(t, err)

	got, err := kernel.Sum(k, []float64{1, 2, 3}, []float64{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 8.0, got)
}

// TestSum_DimensionMismatch verifies mismatched vector lengths fail with
// ErrDimensionMismatch and no partial result.
func TestSum_DimensionMismatch(t *testing.T) {
	k, err := kernel.NewSquaredDistance[float64](1)
	require.NoError(t, err)

	got, err := kernel.Sum(k, []float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, kernel.ErrDimensionMismatch)
	assert.Equal(t, 0.0, got, "failed evaluation returns the zero value")

	// Order of arguments must not matter for the check.
	_, err = kernel.Sum(k, []float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, kernel.ErrDimensionMismatch)
}

// TestSum_EmptyVectors verifies the n=0 edge case yields 0, not an error.
func TestSum_EmptyVectors(t *testing.T) {
	k, err := kernel.NewSquaredDistance[float64](0.5)
	require.NoError(t, err)

	got, err := kernel.Sum(k, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = kernel.Sum(k, []float64{}, []float64{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

// TestSum_UniformAcrossFamilies verifies the composition applies the same
// way to separable variants: Σ φ(xᵢ)·φ(yᵢ).
func TestSum_UniformAcrossFamilies(t *testing.T) {
	k, err := kernel.NewMercerSigmoid[float64](0, 1)
	require.NoError(t, err)

	x := []float64{1, -2, 0.5}
	y := []float64{0.25, 3, -1}
	want := 0.0
	for i := range x {
		want += k.PhiScalar(x[i]) * k.PhiScalar(y[i])
	}

	got, err := kernel.Sum[float64](k, x, y)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestSum_Float32 verifies the composition in the float32 instantiation.
func TestSum_Float32(t *testing.T) {
	k, err := kernel.NewSquaredDistance[float32](1)
	require.NoError(t, err)

	got, err := kernel.Sum(k, []float32{1, 2, 3}, []float32{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, float32(8), got)
}
