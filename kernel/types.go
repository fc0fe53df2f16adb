// Package kernel: public contracts of the kernel taxonomy.
package kernel

// Float constrains the element type a kernel computes over. Parameters are
// converted to this type exactly once, at construction; evaluation never
// converts.
type Float interface {
	~float32 | ~float64
}

// Range enumerates the output range a kernel variant declares. It is part
// of the variant's algebraic metadata: fixed per variant, independent of
// parameter values, and consulted by downstream matrix-assembly and
// approximation code to pick computation strategies.
type Range int

const (
	// RangeNonNegative: every output lies in [0, +∞). All variants in the
	// current taxonomy declare this tag.
	RangeNonNegative Range = iota

	// RangeAllReals: outputs may take any real value. Reserved for future
	// variants; unused by the current taxonomy.
	RangeAllReals
)

// String returns the human-readable name of the range tag.
func (r Range) String() string {
	switch r {
	case RangeNonNegative:
		return "NonNegative"
	case RangeAllReals:
		return "AllReals"
	default:
		return "Unknown"
	}
}

// PairKernel is the additive-family contract: a scalar rule φ(x, y) applied
// per dimension, plus the algebraic metadata downstream algorithms key on.
//
// Phi must be a pure function of its arguments and the kernel's stored
// parameters: deterministic, side-effect free, no state mutation. Metadata
// predicates are constant per variant (Describe additionally reads the
// stored parameter values).
type PairKernel[T Float] interface {
	// Phi evaluates the per-dimension scalar rule φ(x, y).
	Phi(x, y T) T

	// IsNegDef reports whether the variant is a negative-definite kernel.
	IsNegDef() bool

	// IsMercer reports whether the variant is a Mercer (positive
	// semi-definite) kernel.
	IsMercer() bool

	// Range returns the declared output range tag.
	Range() Range

	// AttainsZero reports whether 0 is an attainable output value.
	AttainsZero() bool

	// Describe returns the kernel name with its current parameter values,
	// e.g. "SquaredDistanceKernel{float64}(t=0.5)". The element-type
	// annotation is controlled by DescribeOption (included by default).
	Describe(opts ...DescribeOption) string
}

// ScalarKernel is the separable-family contract: the pair rule factors into
// a product of one identical single-argument function per argument,
// φ(x, y) = φ(x)·φ(y). Variants implement only PhiScalar; their Phi is
// derived mechanically (see separablePhi), never reimplemented per variant.
type ScalarKernel[T Float] interface {
	PairKernel[T]

	// PhiScalar evaluates the single-argument rule φ(x).
	PhiScalar(x T) T
}

// exponentForm tags canonical exponent values detected at construction.
// The tag routes Phi to a closed-form fast path; each fast path equals the
// general formula under infinite precision, so the tag is an optimization,
// never a semantic switch.
type exponentForm uint8

const (
	// expGeneral: no canonical value matched; Phi uses the pow-based formula.
	expGeneral exponentForm = iota

	// expOne: t == 1; the outer exponent drops out.
	expOne

	// expHalf: t == 0.5; the outer exponent reduces to an absolute value.
	expHalf
)

// classifyExponent inspects the STORED exponent for canonical values. It
// runs on the value after conversion to T so the tag agrees with what Phi
// actually computes (1 and 0.5 are exact in both float32 and float64).
func classifyExponent[T Float](t T) exponentForm {
	switch t {
	case 1:
		return expOne
	case 0.5:
		return expHalf
	default:
		return expGeneral
	}
}
