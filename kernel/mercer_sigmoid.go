package kernel

import "fmt"

var _ ScalarKernel[float64] = (*MercerSigmoid[float64])(nil) // Check that MercerSigmoid respects the ScalarKernel contract.

// MercerSigmoid is the separable kernel with per-scalar rule
//
//	φ(x) = tanh((x − d)/b),  d ∈ ℝ, b > 0
//
// a shifted, rescaled sigmoid squashing each coordinate into (−1, 1)
// before the product composition. Unlike the classical (non-PSD) sigmoid
// kernel tanh(a·xᵀy + c), the separable construction is Mercer by
// definition. It is not negative-definite.
//
// Instances are immutable; construct via NewMercerSigmoid.
type MercerSigmoid[T Float] struct {
	d T
	b T
}

// NewMercerSigmoid builds a MercerSigmoid kernel with shift d and scale b.
// d may be any finite real; b must be strictly positive and finite.
// Violations fail with ErrInvalidParameter. Both parameters are converted
// to T once, here.
func NewMercerSigmoid[T Float](d, b float64) (*MercerSigmoid[T], error) {
	if err := validateFinite("d", d); err != nil {
		return nil, err
	}
	if err := validatePositive("b", b); err != nil {
		return nil, err
	}

	return &MercerSigmoid[T]{d: T(d), b: T(b)}, nil
}

// Shift returns the stored shift d.
func (k *MercerSigmoid[T]) Shift() T { return k.d }

// Scale returns the stored scale b.
func (k *MercerSigmoid[T]) Scale() T { return k.b }

// PhiScalar evaluates φ(x) = tanh((x − d)/b).
func (k *MercerSigmoid[T]) PhiScalar(x T) T { return tanhT((x - k.d) / k.b) }

// Phi is the derived separable rule φ(x)·φ(y).
func (k *MercerSigmoid[T]) Phi(x, y T) T { return separablePhi[T](k, x, y) }

// IsNegDef reports false: MercerSigmoid is not negative-definite.
func (k *MercerSigmoid[T]) IsNegDef() bool { return false }

// IsMercer reports true: MercerSigmoid is positive semi-definite.
func (k *MercerSigmoid[T]) IsMercer() bool { return true }

// Range reports the declared output range tag.
func (k *MercerSigmoid[T]) Range() Range { return RangeNonNegative }

// AttainsZero reports true: φ(d) == 0.
func (k *MercerSigmoid[T]) AttainsZero() bool { return true }

// Describe returns the kernel name with its current parameters.
func (k *MercerSigmoid[T]) Describe(opts ...DescribeOption) string {
	return describe[T]("MercerSigmoidKernel", fmt.Sprintf("d=%v, b=%v", k.d, k.b), opts...)
}
