package kernel_test

import (
	"testing"

	"github.com/shahzebanwar/mlkernels/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDescribe_EltypeDefault verifies the element-type annotation is
// present by default and reflects the instantiated type.
func TestDescribe_EltypeDefault(t *testing.T) {
	k64, err := kernel.NewSquaredDistance[float64](1)
	require.NoError(t, err)
	assert.Equal(t, "SquaredDistanceKernel{float64}(t=1)", k64.Describe())

	k32, err := kernel.NewSquaredDistance[float32](1)
	require.NoError(t, err)
	assert.Equal(t, "SquaredDistanceKernel{float32}(t=1)", k32.Describe())
}

// TestDescribe_WithoutEltype verifies the annotation can be switched off,
// and that WithEltype states the default explicitly.
func TestDescribe_WithoutEltype(t *testing.T) {
	k, err := kernel.NewSineSquared[float64](2, 0.5)
	require.NoError(t, err)

	assert.Equal(t, "SineSquaredKernel(p=2, t=0.5)", k.Describe(kernel.WithoutEltype()))
	assert.Equal(t, "SineSquaredKernel{float64}(p=2, t=0.5)", k.Describe(kernel.WithEltype()))
	assert.Equal(t, k.Describe(), k.Describe(kernel.WithEltype()), "WithEltype matches the default")
}

// TestDescribe_LastOptionWins verifies options apply in order.
func TestDescribe_LastOptionWins(t *testing.T) {
	k := kernel.NewScalarProduct[float64]()

	got := k.Describe(kernel.WithEltype(), kernel.WithoutEltype())
	assert.Equal(t, "ScalarProductKernel()", got)
}

// TestRange_String verifies the enumerated range tags render their names.
func TestRange_String(t *testing.T) {
	assert.Equal(t, "NonNegative", kernel.RangeNonNegative.String())
	assert.Equal(t, "AllReals", kernel.RangeAllReals.String())
}
