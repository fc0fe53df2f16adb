package kernel

import "fmt"

// Sum — additive vector-kernel composition
//
// Description:
//
//	Combines the per-dimension scalar rule of any kernel in the taxonomy
//	into a full vector kernel:
//	  k(x, y) = Σᵢ φ(xᵢ, yᵢ)
//	The composition is uniform: every variant, additive or separable, is
//	composed this way and no variant overrides it.
//
// Semantics:
//  1. len(x) != len(y) fails with ErrDimensionMismatch; no partial sum is
//     returned.
//  2. Empty vectors (n = 0) yield 0.
//  3. The result is a pure function of the inputs and the kernel's stored
//     parameters; k is never mutated.
//
// Complexity:
//
//	Time   = O(n) in the vector dimension
//	Memory = O(1), allocation-free
//
// Errors:
//   - ErrDimensionMismatch — paired input vectors differ in length.
func Sum[T Float](k PairKernel[T], x, y []T) (T, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("len(x) = %d, len(y) = %d: %w", len(x), len(y), ErrDimensionMismatch)
	}

	var total T
	for i := range x {
		total += k.Phi(x[i], y[i])
	}

	return total, nil
}
