package kernel

import "fmt"

var _ PairKernel[float64] = (*SineSquared[float64])(nil) // Check that SineSquared respects the PairKernel contract.

// SineSquared is the additive kernel with per-dimension rule
//
//	φ(x, y) = (sin²(p·(x − y)))^t,  p > 0, t ∈ (0, 1]
//
// The period parameter p makes it the standard choice for inputs with
// periodic structure (angles, time of day). It is negative-definite, not
// Mercer; outputs lie in [0, +∞) and 0 is attained whenever p·(x−y) is a
// multiple of π.
//
// Instances are immutable; construct via NewSineSquared.
type SineSquared[T Float] struct {
	p    T
	t    T
	form exponentForm
}

// NewSineSquared builds a SineSquared kernel with period parameter p and
// exponent t. p must be strictly positive and finite, t must lie in (0, 1];
// violations fail with ErrInvalidParameter. Both parameters are converted
// to T once, here; the fast-path tag is selected on the stored exponent.
func NewSineSquared[T Float](p, t float64) (*SineSquared[T], error) {
	if err := validatePositive("p", p); err != nil {
		return nil, err
	}
	if err := validateUnitExponent("t", t); err != nil {
		return nil, err
	}

	k := &SineSquared[T]{p: T(p), t: T(t)}
	k.form = classifyExponent(k.t)

	return k, nil
}

// Period returns the stored period parameter p.
func (k *SineSquared[T]) Period() T { return k.p }

// Exponent returns the stored exponent t.
func (k *SineSquared[T]) Exponent() T { return k.t }

// Phi evaluates φ(x, y) = (sin²(p·(x − y)))^t with closed forms for the
// canonical exponents.
func (k *SineSquared[T]) Phi(x, y T) T {
	s := sinT(k.p * (x - y))
	switch k.form {
	case expOne:
		return s * s // sin²(p(x−y))
	case expHalf:
		return absT(s) // (sin²)^½ = |sin(p(x−y))|
	default:
		return powT(s*s, k.t)
	}
}

// IsNegDef reports true: SineSquared is negative-definite.
func (k *SineSquared[T]) IsNegDef() bool { return true }

// IsMercer reports false: SineSquared is not positive semi-definite.
func (k *SineSquared[T]) IsMercer() bool { return false }

// Range reports the declared output range tag.
func (k *SineSquared[T]) Range() Range { return RangeNonNegative }

// AttainsZero reports true: φ(x, x) == 0.
func (k *SineSquared[T]) AttainsZero() bool { return true }

// Describe returns the kernel name with its current parameters.
func (k *SineSquared[T]) Describe(opts ...DescribeOption) string {
	return describe[T]("SineSquaredKernel", fmt.Sprintf("p=%v, t=%v", k.p, k.t), opts...)
}
