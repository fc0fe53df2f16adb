// SPDX-License-Identifier: MIT
// Package kernel: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// kernel package. Constructors and evaluators MUST return these sentinels
// (wrapped with context) and tests MUST check them via errors.Is. No code
// path panics on user-triggered error conditions.

package kernel

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "kernel: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap these sentinels with
// fmt.Errorf("ctx: %w", ErrX) so the offending parameter or shape is named;
// callers still match with errors.Is.

var (
	// ErrInvalidParameter is returned by constructors when a kernel parameter
	// violates its documented domain (t ∉ (0,1], p ≤ 0, b ≤ 0, or a
	// non-finite value). The wrapping message names the parameter, its value
	// and the required domain.
	ErrInvalidParameter = errors.New("kernel: invalid parameter")

	// ErrDimensionMismatch is returned by Sum when the paired input vectors
	// differ in length. No partial result is produced.
	ErrDimensionMismatch = errors.New("kernel: dimension mismatch")
)
