package kernel

import "fmt"

var _ PairKernel[float64] = (*SquaredDistance[float64])(nil) // Check that SquaredDistance respects the PairKernel contract.

// SquaredDistance is the additive kernel with per-dimension rule
//
//	φ(x, y) = ((x − y)²)^t,  t ∈ (0, 1]
//
// It is negative-definite (the classical building block for distance
// substitution) and not Mercer. Outputs lie in [0, +∞) and 0 is attained
// at x == y.
//
// Instances are immutable; construct via NewSquaredDistance.
type SquaredDistance[T Float] struct {
	t    T
	form exponentForm
}

// NewSquaredDistance builds a SquaredDistance kernel with exponent t.
// t must lie in (0, 1]; anything else (including NaN) fails with
// ErrInvalidParameter. The exponent is converted to T once, here, and the
// canonical-value fast path (t=1, t=0.5) is selected on the stored value.
func NewSquaredDistance[T Float](t float64) (*SquaredDistance[T], error) {
	if err := validateUnitExponent("t", t); err != nil {
		return nil, err
	}

	k := &SquaredDistance[T]{t: T(t)}
	k.form = classifyExponent(k.t)

	return k, nil
}

// Exponent returns the stored exponent t.
func (k *SquaredDistance[T]) Exponent() T { return k.t }

// Phi evaluates φ(x, y) = ((x − y)²)^t. The t=1 and t=0.5 branches are
// closed forms of the same expression; they change cost, never the result.
func (k *SquaredDistance[T]) Phi(x, y T) T {
	d := x - y
	switch k.form {
	case expOne:
		return d * d // ((x−y)²)^1
	case expHalf:
		return absT(d) // ((x−y)²)^½ = |x−y|
	default:
		return powT(d*d, k.t)
	}
}

// IsNegDef reports true: SquaredDistance is negative-definite.
func (k *SquaredDistance[T]) IsNegDef() bool { return true }

// IsMercer reports false: SquaredDistance is not positive semi-definite.
func (k *SquaredDistance[T]) IsMercer() bool { return false }

// Range reports the declared output range tag.
func (k *SquaredDistance[T]) Range() Range { return RangeNonNegative }

// AttainsZero reports true: φ(x, x) == 0.
func (k *SquaredDistance[T]) AttainsZero() bool { return true }

// Describe returns the kernel name with its current exponent.
func (k *SquaredDistance[T]) Describe(opts ...DescribeOption) string {
	return describe[T]("SquaredDistanceKernel", fmt.Sprintf("t=%v", k.t), opts...)
}
