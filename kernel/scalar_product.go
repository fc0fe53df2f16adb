package kernel

var _ ScalarKernel[float64] = (*ScalarProduct[float64])(nil) // Check that ScalarProduct respects the ScalarKernel contract.

// ScalarProduct is the separable kernel with per-scalar rule φ(x) = x, so
// the derived pair rule is φ(x, y) = x·y and the additive composition over
// vectors is the ordinary dot product. It is Mercer (the canonical linear
// kernel) and not negative-definite.
//
// It takes no parameters; construct via NewScalarProduct.
type ScalarProduct[T Float] struct{}

// NewScalarProduct builds the parameterless linear kernel. It cannot fail.
func NewScalarProduct[T Float]() *ScalarProduct[T] {
	return &ScalarProduct[T]{}
}

// PhiScalar evaluates φ(x) = x.
func (k *ScalarProduct[T]) PhiScalar(x T) T { return x }

// Phi is the derived separable rule φ(x)·φ(y) = x·y.
func (k *ScalarProduct[T]) Phi(x, y T) T { return separablePhi[T](k, x, y) }

// IsNegDef reports false: ScalarProduct is not negative-definite.
func (k *ScalarProduct[T]) IsNegDef() bool { return false }

// IsMercer reports true: ScalarProduct is positive semi-definite.
func (k *ScalarProduct[T]) IsMercer() bool { return true }

// Range reports the declared output range tag.
func (k *ScalarProduct[T]) Range() Range { return RangeNonNegative }

// AttainsZero reports true: φ(0) == 0.
func (k *ScalarProduct[T]) AttainsZero() bool { return true }

// Describe returns the kernel name; there are no parameters to show.
func (k *ScalarProduct[T]) Describe(opts ...DescribeOption) string {
	return describe[T]("ScalarProductKernel", "", opts...)
}
