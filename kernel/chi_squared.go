package kernel

import "fmt"

var _ PairKernel[float64] = (*ChiSquared[float64])(nil) // Check that ChiSquared respects the PairKernel contract.

// ChiSquared is the additive kernel with per-dimension rule
//
//	φ(x, y) = ((x − y)²/(x + y))^t,  t ∈ (0, 1]
//
// the symmetric chi-squared divergence raised to t, commonly used on
// histogram features. It is negative-definite, not Mercer; outputs lie in
// [0, +∞) and 0 is attained at x == y.
//
// The rule is defined over non-negative inputs. That restriction is a
// documented precondition, not checked at evaluation time: Phi stays a
// total, branch-light pure function, and histogram pipelines already
// guarantee x, y ≥ 0. The single removable singularity x = y = 0 is
// special-cased to 0, so no valid input produces NaN.
//
// Instances are immutable; construct via NewChiSquared.
type ChiSquared[T Float] struct {
	t    T
	form exponentForm
}

// NewChiSquared builds a ChiSquared kernel with exponent t. t must lie in
// (0, 1]; anything else fails with ErrInvalidParameter. The exponent is
// converted to T once, here; only t=1 has a closed-form fast path.
func NewChiSquared[T Float](t float64) (*ChiSquared[T], error) {
	if err := validateUnitExponent("t", t); err != nil {
		return nil, err
	}

	k := &ChiSquared[T]{t: T(t)}
	k.form = classifyExponent(k.t)

	return k, nil
}

// Exponent returns the stored exponent t.
func (k *ChiSquared[T]) Exponent() T { return k.t }

// Phi evaluates φ(x, y) = ((x − y)²/(x + y))^t over non-negative inputs.
// φ(0, 0) is 0 by definition, avoiding the 0/0 form.
func (k *ChiSquared[T]) Phi(x, y T) T {
	if x == 0 && y == 0 {
		return 0
	}

	d := x - y
	q := d * d / (x + y)
	if k.form == expOne {
		return q
	}

	return powT(q, k.t)
}

// IsNegDef reports true: ChiSquared is negative-definite.
func (k *ChiSquared[T]) IsNegDef() bool { return true }

// IsMercer reports false: ChiSquared is not positive semi-definite.
func (k *ChiSquared[T]) IsMercer() bool { return false }

// Range reports the declared output range tag.
func (k *ChiSquared[T]) Range() Range { return RangeNonNegative }

// AttainsZero reports true: φ(x, x) == 0.
func (k *ChiSquared[T]) AttainsZero() bool { return true }

// Describe returns the kernel name with its current exponent.
func (k *ChiSquared[T]) Describe(opts ...DescribeOption) string {
	return describe[T]("ChiSquaredKernel", fmt.Sprintf("t=%v", k.t), opts...)
}
