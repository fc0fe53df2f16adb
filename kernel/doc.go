// Package kernel implements a closed taxonomy of additive and separable
// kernel functions over real vectors, for kernel-method machine learning
// (SVMs, Gaussian processes, kernel PCA).
//
// 🚀 What is an additive kernel?
//
//	A vector kernel built by applying a scalar rule φ independently to each
//	dimension and summing the results:
//	  k(x, y) = Σᵢ φ(xᵢ, yᵢ)
//	Separable kernels are the special case where the scalar rule itself
//	factors into a product of identical single-argument functions:
//	  φ(x, y) = φ(x)·φ(y)
//
// ✨ Variants:
//   - SquaredDistance — φ(x,y) = ((x−y)²)^t, t ∈ (0,1]
//   - SineSquared     — φ(x,y) = (sin²(p·(x−y)))^t, p > 0, t ∈ (0,1]
//   - ChiSquared      — φ(x,y) = ((x−y)²/(x+y))^t, t ∈ (0,1], non-negative inputs
//   - ScalarProduct   — φ(x) = x (separable)
//   - MercerSigmoid   — φ(x) = tanh((x−d)/b), b > 0 (separable)
//
// Every variant is an immutable value object: parameters are validated at
// construction (out-of-domain values fail with ErrInvalidParameter) and
// never change afterwards. Canonical exponents (t=1, t=0.5) are detected
// once at construction and routed to closed-form fast paths that agree
// exactly with the general formula.
//
// ⚙️ Usage:
//
//	import "github.com/shahzebanwar/mlkernels/kernel"
//
//	k, err := kernel.NewSquaredDistance[float64](0.5)
//	if err != nil {
//	  // handle ErrInvalidParameter
//	}
//	v, err := kernel.Sum(k, x, y) // Σᵢ φ(xᵢ, yᵢ); ErrDimensionMismatch on length skew
//
// Downstream matrix builders and approximation routines select their
// strategy from the algebraic metadata every kernel carries:
//
//	k.IsNegDef()    // negative-definite family (distance substitution)
//	k.IsMercer()    // positive semi-definite (valid Gram matrices)
//	k.Range()       // enumerated output range tag
//	k.AttainsZero() // whether 0 is an attainable output
//
// Performance:
//
//   - Phi:  O(1), allocation-free, fast-path dispatch via a stored tag
//   - Sum:  O(n) in the vector dimension, allocation-free
//
// All kernels are safe for unsynchronized concurrent evaluation: instances
// are immutable and evaluation is a pure function of its inputs.
package kernel
