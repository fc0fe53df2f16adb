package kernel

import "math"

// Scalar helpers routing generic float math through the float64 stdlib
// implementations. The round trip through float64 costs one conversion
// each way for float32 and is free for float64; it keeps every variant's
// Phi a single expression over T.

// powT computes x^p for a generic float element.
func powT[T Float](x, p T) T { return T(math.Pow(float64(x), float64(p))) }

// sinT computes sin(x) for a generic float element.
func sinT[T Float](x T) T { return T(math.Sin(float64(x))) }

// tanhT computes tanh(x) for a generic float element.
func tanhT[T Float](x T) T { return T(math.Tanh(float64(x))) }

// absT computes |x| without leaving T.
func absT[T Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
