package kernel

// separablePhi derives the two-argument rule of a separable kernel from
// its single-argument rule:
//
//	φ(x, y) = φ(x)·φ(y)
//
// Every separable variant's Phi delegates here, so the derivation exists
// in exactly one place and a new separable variant only has to implement
// PhiScalar. The parameter is the minimal capability rather than the full
// ScalarKernel interface so the helper cannot accidentally depend on
// metadata.
func separablePhi[T Float](k interface{ PhiScalar(x T) T }, x, y T) T {
	return k.PhiScalar(x) * k.PhiScalar(y)
}
