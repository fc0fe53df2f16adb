// Package mlkernels is a small, pure-Go taxonomy of kernel functions for
// kernel-method machine learning — validated construction, per-pair
// evaluation, and the algebraic metadata downstream solvers key on.
//
// 🚀 What is mlkernels?
//
//	A library of additive and separable kernels over real vectors:
//		• Additive variants: SquaredDistance, SineSquared, ChiSquared
//		• Separable variants: ScalarProduct, MercerSigmoid
//		• Uniform vector composition: k(x, y) = Σᵢ φ(xᵢ, yᵢ)
//		• Per-variant metadata: negative-definiteness, Mercer property,
//		  output range, zero attainment
//
// ✨ Why choose mlkernels?
//
//   - Validated by construction – out-of-domain parameters fail immediately
//   - Immutable value objects – share freely across goroutines, no locks
//   - Canonical fast paths – t=1 and t=0.5 route to closed forms with no
//     change in result
//   - Generic element type – one code path for float32 and float64
//
// Everything lives in one subpackage:
//
//	kernel/ — the kernel taxonomy, composition rule and metadata registry
//
// Quick example:
//
//	k, err := kernel.NewSquaredDistance[float64](0.5)
//	if err != nil { ... }
//	v, err := kernel.Sum(k, x, y)
//
// Dive into examples/ for runnable demos, including Gram-matrix assembly
// with a spectral positive-semi-definiteness check.
//
//	go get github.com/shahzebanwar/mlkernels
package mlkernels
