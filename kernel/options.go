// SPDX-License-Identifier: MIT
// Package kernel: functional configuration for Describe output.
// This file defines:
//   - DescribeOption (functional options with internal state),
//   - the documented default (constant),
//   - gatherDescribeOptions helper (internal) that applies defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: options cannot express an invalid state.
//   - Reusability: option state is unexported; Describe consumes ...DescribeOption.

package kernel

import "fmt"

// DefaultIncludeEltype controls whether Describe annotates the kernel name
// with the element type by default, e.g. "SquaredDistanceKernel{float64}(t=1)"
// versus "SquaredDistanceKernel(t=1)". This constant is the single source
// of truth for the zero-option behavior.
const DefaultIncludeEltype = true

// describeOptions is the internal, gathered option state.
type describeOptions struct {
	includeEltype bool
}

// DescribeOption mutates describeOptions; obtain values only via the WithX
// constructors below.
type DescribeOption func(*describeOptions)

// WithEltype makes Describe include the element-type annotation. This is
// the default; the option exists to state intent explicitly at call sites.
func WithEltype() DescribeOption {
	return func(o *describeOptions) { o.includeEltype = true }
}

// WithoutEltype makes Describe omit the element-type annotation, leaving
// only the kernel name and parameter values.
func WithoutEltype() DescribeOption {
	return func(o *describeOptions) { o.includeEltype = false }
}

// gatherDescribeOptions applies defaults, then every option in order.
func gatherDescribeOptions(opts ...DescribeOption) describeOptions {
	o := describeOptions{includeEltype: DefaultIncludeEltype}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// describe renders "Name{eltype}(params)" or "Name(params)" depending on
// the gathered options. Shared by every variant so all Describe output
// stays uniform.
func describe[T Float](name, params string, opts ...DescribeOption) string {
	o := gatherDescribeOptions(opts...)
	if o.includeEltype {
		var zero T

		return fmt.Sprintf("%s{%T}(%s)", name, zero, params)
	}

	return fmt.Sprintf("%s(%s)", name, params)
}
