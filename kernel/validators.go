// SPDX-License-Identifier: MIT
// Package kernel: canonical parameter validators.
//
// Purpose:
//   - Provide a single source of truth for the domain checks every
//     constructor performs.
//   - Keep constructors minimal by delegating domain checks here.
//   - Wrap the ErrInvalidParameter sentinel with the parameter name, the
//     offending value and the required domain, so the failure is
//     self-describing while errors.Is still matches.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//   - Validation runs once, at construction; evaluation never validates.

package kernel

import (
	"fmt"
	"math"
)

// invalidParameter wraps ErrInvalidParameter with the parameter name, the
// rejected value and the documented domain. Single formatting point so
// every constructor reports violations identically.
func invalidParameter(name string, value float64, domain string) error {
	return fmt.Errorf("%s = %v, must be in %s: %w", name, value, domain, ErrInvalidParameter)
}

// validateUnitExponent ensures an exponent lies in (0, 1].
//
// NaN fails both comparisons and is rejected with the same sentinel.
// Complexity: O(1).
func validateUnitExponent(name string, t float64) error {
	if !(t > 0 && t <= 1) {
		return invalidParameter(name, t, "(0, 1]")
	}

	return nil
}

// validatePositive ensures a scale-like parameter is finite and strictly
// positive. +Inf is rejected: the domain is the open interval (0, +Inf).
// Complexity: O(1).
func validatePositive(name string, v float64) error {
	if math.IsInf(v, 0) || !(v > 0) {
		return invalidParameter(name, v, "(0, +Inf)")
	}

	return nil
}

// validateFinite ensures an unconstrained real parameter (e.g. a shift) is
// an actual finite number. Complexity: O(1).
func validateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidParameter(name, v, "(-Inf, +Inf)")
	}

	return nil
}
